package middleware_test

import (
	"errors"
	"fieldserve/config"
	"fieldserve/infras/jwt"
	jwtMocks "fieldserve/infras/jwt/mocks"
	otelMocks "fieldserve/infras/otel/mocks"
	"fieldserve/permissions"
	"fieldserve/shared/actor"
	cacheMocks "fieldserve/shared/cache/mocks"
	"fieldserve/shared/constant"
	"fieldserve/transport/http/middleware"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const apiKey = "internal-key"

type fixture struct {
	jwt    *jwtMocks.MockJWT
	cache  *cacheMocks.MockRedisCache
	router *chi.Mux
	seen   actor.Actor
}

func newFixture(t *testing.T, configure func(cfg *config.Config)) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		jwt:   jwtMocks.NewMockJWT(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.App.APIKey = apiKey
	if configure != nil {
		configure(cfg)
	}

	matrix, err := permissions.Parse([]byte(`{"endpoints": [
		{"path": "/v1/bookings/{id}/assign", "method": "POST", "permissions": ["admin"]},
		{"path": "/v1/bookings/{id}", "method": "GET", "permissions": ["admin", "customer"]}
	]}`))
	require.NoError(t, err)

	otl := otelMocks.NewOtel()
	auth := middleware.NewAuthRoleMiddleware(f.jwt, otl, matrix, cfg)
	app := middleware.NewAppMiddleware(otl, cfg, f.cache)

	handler := func(w http.ResponseWriter, r *http.Request) {
		f.seen = actor.FromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}

	f.router = chi.NewRouter()
	f.router.Group(func(r chi.Router) {
		r.Use(auth.APIKey, auth.Auth, auth.RBAC, app.RateLimit())
		r.Route("/v1/bookings", func(r chi.Router) {
			r.Post("/{id}/assign", handler)
			r.Get("/{id}", handler)
			r.Get("/{id}/history", handler)
		})
	})

	return f
}

func (f *fixture) do(method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	return rec
}

func bearer(token string) map[string]string {
	return map[string]string{constant.RequestHeaderAuthorization: "Bearer " + token}
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		headers    map[string]string
		setupMock  func(f *fixture)
		wantStatus int
		wantActor  actor.Actor
	}{
		{
			name:       "missing token",
			method:     http.MethodGet,
			path:       "/v1/bookings/b-1",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:    "expired token",
			method:  http.MethodGet,
			path:    "/v1/bookings/b-1",
			headers: bearer("old"),
			setupMock: func(f *fixture) {
				f.jwt.EXPECT().ValidateToken("old").Return(nil, jwt.ErrExpiredToken)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:    "role allowed",
			method:  http.MethodGet,
			path:    "/v1/bookings/b-1",
			headers: bearer("ok"),
			setupMock: func(f *fixture) {
				f.jwt.EXPECT().ValidateToken("ok").Return(&jwt.Claims{UserID: "c-1", Role: constant.RoleCustomer}, nil)
			},
			wantStatus: http.StatusNoContent,
			wantActor:  actor.Actor{ID: "c-1", Role: constant.RoleCustomer},
		},
		{
			name:    "role denied",
			method:  http.MethodPost,
			path:    "/v1/bookings/b-1/assign",
			headers: bearer("ok"),
			setupMock: func(f *fixture) {
				f.jwt.EXPECT().ValidateToken("ok").Return(&jwt.Claims{UserID: "c-1", Role: constant.RoleCustomer}, nil)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:    "unlisted route denied",
			method:  http.MethodGet,
			path:    "/v1/bookings/b-1/history",
			headers: bearer("ok"),
			setupMock: func(f *fixture) {
				f.jwt.EXPECT().ValidateToken("ok").Return(&jwt.Claims{UserID: "a-1", Role: constant.RoleAdmin}, nil)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "api key acts as system",
			method:     http.MethodPost,
			path:       "/v1/bookings/b-1/assign",
			headers:    map[string]string{constant.RequestHeaderAPIKey: apiKey},
			wantStatus: http.StatusNoContent,
			wantActor:  actor.System,
		},
		{
			name:       "wrong api key",
			method:     http.MethodPost,
			path:       "/v1/bookings/b-1/assign",
			headers:    map[string]string{constant.RequestHeaderAPIKey: "guess"},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			if tt.setupMock != nil {
				tt.setupMock(f)
			}

			rec := f.do(tt.method, tt.path, tt.headers)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantActor, f.seen)
		})
	}
}

func TestRateLimit(t *testing.T) {
	limited := func(cfg *config.Config) {
		cfg.App.RateLimiter.Enable = true
		cfg.App.RateLimiter.MaxRequests = 2
		cfg.App.RateLimiter.WindowSeconds = 60
	}

	customer := func(f *fixture) {
		f.jwt.EXPECT().ValidateToken("ok").Return(&jwt.Claims{UserID: "c-1", Role: constant.RoleCustomer}, nil)
	}

	t.Run("within limit", func(t *testing.T) {
		f := newFixture(t, limited)
		customer(f)
		f.cache.EXPECT().Increment(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, key string, _ any) (int64, error) {
				assert.Contains(t, key, "limiter:actor:c-1:")

				return 2, nil
			})

		rec := f.do(http.MethodGet, "/v1/bookings/b-1", bearer("ok"))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "2", rec.Header().Get(constant.RequestHeaderRateLimit))
		assert.Equal(t, "0", rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
	})

	t.Run("over limit", func(t *testing.T) {
		f := newFixture(t, limited)
		customer(f)
		f.cache.EXPECT().Increment(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(3), nil)

		rec := f.do(http.MethodGet, "/v1/bookings/b-1", bearer("ok"))

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	})

	t.Run("cache down fails open", func(t *testing.T) {
		f := newFixture(t, limited)
		customer(f)
		f.cache.EXPECT().Increment(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("redis down"))

		rec := f.do(http.MethodGet, "/v1/bookings/b-1", bearer("ok"))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("system actor is exempt", func(t *testing.T) {
		f := newFixture(t, limited)

		rec := f.do(http.MethodGet, "/v1/bookings/b-1", map[string]string{constant.RequestHeaderAPIKey: apiKey})

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
