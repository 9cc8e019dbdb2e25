package jwt

//go:generate go run go.uber.org/mock/mockgen -source=./jwt.go -destination=./mocks/jwt_mock.go -package=mocks

import (
	"errors"
	"fieldserve/config"
	"fieldserve/shared/constant"
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidClaim = errors.New("invalid token claim")
	ErrMissingToken = errors.New("authorization header is required")
	ErrMalformed    = errors.New("authorization header must use the Bearer scheme")
)

const bearerScheme = "bearer"

// tokenRoles are the roles a token may carry. The system role is reserved for API key callers.
var tokenRoles = []string{
	constant.RoleSuperAdmin,
	constant.RoleAdmin,
	constant.RoleCustomer,
	constant.RoleProvider,
}

// Claims are issued by the identity service. Only the subject and role are read here.
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWT verifies access tokens. Issuing them belongs to the identity service.
type JWT interface {
	ValidateToken(tokenString string) (*Claims, error)
}

type verifier struct {
	secret []byte
	parser *jwt.Parser
}

func New(cfg *config.Config) JWT {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{
			jwt.SigningMethodHS256.Alg(),
			jwt.SigningMethodHS384.Alg(),
			jwt.SigningMethodHS512.Alg(),
		}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(time.Duration(cfg.JWT.LeewaySeconds) * time.Second),
	}

	if cfg.JWT.Issuer != constant.Empty {
		opts = append(opts, jwt.WithIssuer(cfg.JWT.Issuer))
	}

	if cfg.JWT.Audience != constant.Empty {
		opts = append(opts, jwt.WithAudience(cfg.JWT.Audience))
	}

	return &verifier{
		secret: []byte(cfg.JWT.AccessSecret),
		parser: jwt.NewParser(opts...),
	}
}

func (v *verifier) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	_, err := v.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case err != nil:
		return nil, ErrInvalidToken
	}

	if claims.UserID == constant.Empty || !slices.Contains(tokenRoles, claims.Role) {
		return nil, ErrInvalidClaim
	}

	return claims, nil
}

// ExtractTokenFromHeader returns the credentials of a Bearer Authorization header.
// The scheme is matched case-insensitively.
func ExtractTokenFromHeader(authHeader string) (string, error) {
	if strings.TrimSpace(authHeader) == constant.Empty {
		return constant.Empty, ErrMissingToken
	}

	scheme, token, ok := strings.Cut(strings.TrimSpace(authHeader), " ")
	if !ok || !strings.EqualFold(scheme, bearerScheme) {
		return constant.Empty, ErrMalformed
	}

	token = strings.TrimSpace(token)
	if token == constant.Empty {
		return constant.Empty, ErrMalformed
	}

	return token, nil
}
