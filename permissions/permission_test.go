package permissions_test

import (
	"fieldserve/permissions"
	"fieldserve/shared/constant"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	data, err := permissions.Parse([]byte(`{
		"skip": false,
		"endpoints": [
			{"path": "/v1/bookings/{id}/assign", "method": "POST", "permissions": ["admin"]},
			{"path": "/v1/bookings/{id}", "method": "GET", "permissions": []},
			{"path": "/v1/quotes", "method": "POST", "skip": true}
		]
	}`))
	require.NoError(t, err)

	assign := data.FindPermissions("/v1/bookings/{id}/assign", "POST")
	assert.True(t, assign.Allows(constant.RoleAdmin))
	assert.False(t, assign.Allows(constant.RoleCustomer))

	assert.True(t, data.FindPermissions("/v1/bookings/{id}", "GET").Allows(constant.RoleProvider))
	assert.True(t, data.FindPermissions("/v1/quotes", "POST").Allows(""))

	missing := data.FindPermissions("/v1/bookings/{id}/assign", "GET")
	assert.False(t, missing.Listed())
	assert.True(t, assign.Listed())

	_, err = permissions.Parse([]byte(`{"endpoints": [`))
	assert.Error(t, err)
}

func TestGet_Embedded(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	assert.False(t, data.Skip)
	assert.NotEmpty(t, data.Endpoints)

	start := data.FindPermissions("/v1/bookings/{id}/start", "POST")
	assert.Equal(t, []string{constant.RoleProvider}, start.Permissions)

	respond := data.FindPermissions("/v1/bookings/{id}/reschedule/respond", "POST")
	assert.True(t, respond.Allows(constant.RoleCustomer))
	assert.False(t, respond.Allows(constant.RoleAdmin))
}

func TestFindPermissions_Unindexed(t *testing.T) {
	data := &permissions.PermissionData{
		Endpoints: []permissions.Permission{
			{Path: "/v1/invoices/", Method: "GET", Permissions: []string{constant.RoleAdmin}},
		},
	}

	assert.True(t, data.FindPermissions("/v1/invoices/", "GET").Listed())
	assert.False(t, data.FindPermissions("/v1/invoices/", "POST").Listed())
}

func TestFindPermissions_TrailingSlash(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	tests := []struct {
		path   string
		method string
		role   string
	}{
		{"/v1/bookings", "POST", constant.RoleCustomer},
		{"/v1/bookings/", "POST", constant.RoleCustomer},
		{"/v1/bookings", "GET", constant.RoleAdmin},
		{"/v1/availability", "GET", constant.RoleAdmin},
		{"/v1/invoices/", "POST", constant.RoleAdmin},
		{"/v1/credit-notes", "POST", constant.RoleAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			permission := data.FindPermissions(tt.path, tt.method)
			assert.True(t, permission.Listed())
			assert.True(t, permission.Allows(tt.role))
		})
	}

	unindexed := &permissions.PermissionData{
		Endpoints: []permissions.Permission{{Path: "/v1/invoices/", Method: "GET"}},
	}
	assert.True(t, unindexed.FindPermissions("/v1/invoices", "GET").Listed())
}
