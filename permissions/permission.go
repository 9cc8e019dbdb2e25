// Package permissions holds the role matrix enforced by the RBAC middleware, keyed by chi route pattern.
package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

// Listed reports whether the entry came from the matrix.
func (p Permission) Listed() bool {
	return p.Path != ""
}

// Allows reports whether role may call the endpoint. An empty role list admits any authenticated caller.
func (p Permission) Allows(role string) bool {
	return p.Skip || len(p.Permissions) == 0 || slices.Contains(p.Permissions, role)
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`
	index     map[string]int
}

// normalize drops the trailing slash chi keeps on collection routes, so "/v1/bookings/"
// and "/v1/bookings" name the same endpoint.
func normalize(path string) string {
	if len(path) > 1 {
		return strings.TrimSuffix(path, "/")
	}

	return path
}

func key(path, method string) string {
	return method + " " + normalize(path)
}

// FindPermissions returns the entry for a route pattern such as "/v1/bookings/{id}/assign".
// The zero Permission is returned for unlisted routes.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	if r.index != nil {
		if idx, ok := r.index[key(path, method)]; ok {
			return r.Endpoints[idx]
		}

		return Permission{}
	}

	for _, endpoint := range r.Endpoints {
		if normalize(endpoint.Path) == normalize(path) && endpoint.Method == method {
			return endpoint
		}
	}

	return Permission{}
}

func (r *PermissionData) buildIndex() {
	r.index = make(map[string]int, len(r.Endpoints))

	for i, endpoint := range r.Endpoints {
		r.index[key(endpoint.Path, endpoint.Method)] = i
	}
}

func Parse(data []byte) (*PermissionData, error) {
	var permissions PermissionData

	if err := json.Unmarshal(data, &permissions); err != nil {
		return nil, err //nolint:wrapcheck
	}

	permissions.buildIndex()

	return &permissions, nil
}

// Get loads the embedded matrix. A broken matrix yields nil, which the RBAC middleware treats as deny-all.
func Get() *PermissionData {
	permissions, err := Parse(permissionsData)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return permissions
}
