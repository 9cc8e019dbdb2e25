package router_test

import (
	"fieldserve/config"
	"fieldserve/infras/jwt"
	jwtMocks "fieldserve/infras/jwt/mocks"
	otelMocks "fieldserve/infras/otel/mocks"
	"fieldserve/permissions"
	"fieldserve/shared/constant"
	"fieldserve/transport/http/middleware"
	"fieldserve/transport/http/router"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEveryRouteHasPermissions(t *testing.T) {
	mux := chi.NewRouter()

	r := router.New(router.DomainHandlers{})
	r.SetupRoutes(mux)

	matrix := permissions.Get()
	require.NotNil(t, matrix)

	routes := 0

	err := chi.Walk(mux, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes++

		permission := matrix.FindPermissions(route, method)
		assert.NotEmpty(t, permission.Permissions, "%s %s has no role list", method, route)

		return nil
	})
	require.NoError(t, err)

	assert.Len(t, matrix.Endpoints, routes)
}

func TestRoutePatternsResolve(t *testing.T) {
	mux := chi.NewRouter()

	r := router.New(router.DomainHandlers{})
	r.SetupRoutes(mux)

	matrix := permissions.Get()
	require.NotNil(t, matrix)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/v1/bookings"},
		{http.MethodGet, "/v1/bookings"},
		{http.MethodGet, "/v1/bookings/mine"},
		{http.MethodPost, "/v1/bookings/b-1/reschedule/respond"},
		{http.MethodGet, "/v1/availability"},
		{http.MethodPost, "/v1/invoices"},
		{http.MethodGet, "/v1/invoices/booking/b-1"},
		{http.MethodPost, "/v1/credit-notes"},
		{http.MethodDelete, "/v1/availability/leaves/l-1"},
		{http.MethodPost, "/v1/quotes"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			pattern := mux.Find(chi.NewRouteContext(), tt.method, tt.path)
			require.NotEmpty(t, pattern)
			assert.True(t, matrix.FindPermissions(pattern, tt.method).Listed(), "%s resolved to unlisted %s", tt.path, pattern)
		})
	}
}

func TestCollectionRoutesAuthorize(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		role       string
		wantStatus int
	}{
		{"customer creates booking", http.MethodPost, "/v1/bookings", constant.RoleCustomer, http.StatusNoContent},
		{"customer creates booking with slash", http.MethodPost, "/v1/bookings/", constant.RoleCustomer, http.StatusNoContent},
		{"customer cannot list bookings", http.MethodGet, "/v1/bookings", constant.RoleCustomer, http.StatusForbidden},
		{"admin lists bookings", http.MethodGet, "/v1/bookings", constant.RoleAdmin, http.StatusNoContent},
		{"provider reads availability", http.MethodGet, "/v1/availability", constant.RoleProvider, http.StatusNoContent},
		{"admin issues invoice", http.MethodPost, "/v1/invoices", constant.RoleAdmin, http.StatusNoContent},
		{"admin issues credit note", http.MethodPost, "/v1/credit-notes", constant.RoleAdmin, http.StatusNoContent},
		{"customer cannot issue credit note", http.MethodPost, "/v1/credit-notes", constant.RoleCustomer, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			jwtService := jwtMocks.NewMockJWT(ctrl)
			jwtService.EXPECT().ValidateToken("token").Return(&jwt.Claims{UserID: "u-1", Role: tt.role}, nil)

			auth := middleware.NewAuthRoleMiddleware(jwtService, otelMocks.NewOtel(), permissions.Get(), &config.Config{})

			mux := chi.NewRouter()
			mux.Group(func(group chi.Router) {
				group.Use(auth.APIKey, auth.Auth, auth.RBAC, func(http.Handler) http.Handler {
					return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
						w.WriteHeader(http.StatusNoContent)
					})
				})

				r := router.New(router.DomainHandlers{})
				r.SetupRoutes(group)
			})

			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set(constant.RequestHeaderAuthorization, "Bearer token")

			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
