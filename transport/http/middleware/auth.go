package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"fieldserve/config"
	"fieldserve/infras/jwt"
	"fieldserve/infras/otel"
	"fieldserve/permissions"
	"fieldserve/shared/actor"
	"fieldserve/shared/constant"
	"fieldserve/shared/failure"
	"fieldserve/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type trustedKey struct{}

// Auth resolves who is calling.
type Auth interface {
	Auth(http.Handler) http.Handler
	APIKey(http.Handler) http.Handler
}

// Role decides whether the resolved caller may use the matched route.
type Role interface {
	RBAC(http.Handler) http.Handler
}

type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	permission *permissions.PermissionData
	apiKey     []byte
}

func NewAuthRoleMiddleware(jwtService jwt.JWT, otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) AuthRole {
	return &authRoleImpl{
		jwtService: jwtService,
		otel:       otel,
		permission: permissions,
		apiKey:     []byte(cfg.App.APIKey),
	}
}

// trusted reports whether APIKey already admitted the request as the system actor.
func trusted(ctx context.Context) bool {
	ok, _ := ctx.Value(trustedKey{}).(bool)

	return ok
}

func routePattern(request *http.Request) string {
	rctx := chi.RouteContext(request.Context())
	if rctx == nil || rctx.Routes == nil {
		return request.URL.Path
	}

	if pattern := rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path); pattern != "" {
		return pattern
	}

	return request.URL.Path
}

func (m *authRoleImpl) endpoint(request *http.Request) permissions.Permission {
	if m.permission == nil {
		return permissions.Permission{}
	}

	return m.permission.FindPermissions(routePattern(request), request.Method)
}

func reject(writer http.ResponseWriter, scope otel.Scope, err error) {
	scope.TraceError(err)
	scope.End()
	response.WithError(writer, err)
}

// APIKey admits internal callers carrying the shared key as the system actor. Requests
// without the header pass through untouched for Auth to handle.
func (m *authRoleImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "api_key.middleware")

		presented := request.Header.Get(constant.RequestHeaderAPIKey)
		if presented == constant.Empty {
			scope.SetAttribute("http.source", "client")
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttribute("http.source", "internal")

		if len(m.apiKey) == 0 || subtle.ConstantTimeCompare([]byte(presented), m.apiKey) != 1 {
			log.Warn().Str("path", request.URL.Path).Msg("rejected api key")
			reject(writer, scope, failure.ForbiddenError)

			return
		}

		scope.End()

		ctx = context.WithValue(ctx, trustedKey{}, true)
		ctx = actor.WithContext(ctx, actor.System)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// Auth validates the bearer token and stores the caller on the request context.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		if trusted(ctx) || m.endpoint(request).Skip {
			next.ServeHTTP(writer, request)

			return
		}

		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "auth.middleware")
		scope.SetAttributes(map[string]any{
			"http.route":  routePattern(request),
			"http.method": request.Method,
		})

		token, err := jwt.ExtractTokenFromHeader(request.Header.Get(constant.RequestHeaderAuthorization))
		if err != nil {
			reject(writer, scope, failure.Unauthorized(err.Error()))

			return
		}

		claims, err := m.jwtService.ValidateToken(token)
		if err != nil {
			log.Warn().Err(err).Str("path", request.URL.Path).Msg("rejected access token")
			reject(writer, scope, failure.Unauthorized(tokenMessage(err)))

			return
		}

		scope.SetAttribute("user_role", claims.Role)
		scope.End()

		ctx = actor.WithContext(ctx, actor.Actor{ID: claims.UserID, Role: claims.Role})

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

func tokenMessage(err error) string {
	switch {
	case errors.Is(err, jwt.ErrExpiredToken):
		return "Token has expired"
	case errors.Is(err, jwt.ErrInvalidClaim):
		return "Invalid token claims"
	default:
		return "Invalid token"
	}
}

// RBAC checks the caller's role against the route's allowed roles. Must run after Auth.
// Routes missing from the matrix are denied, as is everything when no matrix loaded.
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		if trusted(ctx) {
			next.ServeHTTP(writer, request)

			return
		}

		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "rbac.middleware")

		if m.permission == nil {
			reject(writer, scope, failure.ForbiddenError)

			return
		}

		role := actor.FromContext(ctx).Role
		permission := m.endpoint(request)

		if m.permission.Skip || (permission.Listed() && permission.Allows(role)) {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttributes(map[string]any{
			"user_role":     role,
			"allowed_roles": permission.Permissions,
		})
		reject(writer, scope, failure.ForbiddenError)
	})
}
