package jwt_test

import (
	"fieldserve/config"
	"fieldserve/infras/jwt"
	"testing"
	"time"

	jwtLib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.AccessSecret = secret
	cfg.JWT.Issuer = "identity"

	return cfg
}

func sign(t *testing.T, method jwtLib.SigningMethod, key any, claims jwt.Claims) string {
	t.Helper()

	token, err := jwtLib.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func claims(userID, role string, expiresIn time.Duration) jwt.Claims {
	return jwt.Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwtLib.RegisteredClaims{
			Issuer:    "identity",
			ExpiresAt: jwtLib.NewNumericDate(time.Now().Add(expiresIn)),
		},
	}
}

func TestValidateToken(t *testing.T) {
	verifier := jwt.New(newConfig())

	tests := []struct {
		name    string
		token   func(t *testing.T) string
		wantErr error
	}{
		{
			name: "valid",
			token: func(t *testing.T) string {
				return sign(t, jwtLib.SigningMethodHS256, []byte(secret), claims("u-1", "customer", time.Hour))
			},
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				return sign(t, jwtLib.SigningMethodHS256, []byte(secret), claims("u-1", "customer", -time.Hour))
			},
			wantErr: jwt.ErrExpiredToken,
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				return sign(t, jwtLib.SigningMethodHS256, []byte("other"), claims("u-1", "customer", time.Hour))
			},
			wantErr: jwt.ErrInvalidToken,
		},
		{
			name: "wrong issuer",
			token: func(t *testing.T) string {
				c := claims("u-1", "customer", time.Hour)
				c.Issuer = "someone-else"

				return sign(t, jwtLib.SigningMethodHS256, []byte(secret), c)
			},
			wantErr: jwt.ErrInvalidToken,
		},
		{
			name: "unsigned",
			token: func(t *testing.T) string {
				return sign(t, jwtLib.SigningMethodNone, jwtLib.UnsafeAllowNoneSignatureType, claims("u-1", "customer", time.Hour))
			},
			wantErr: jwt.ErrInvalidToken,
		},
		{
			name: "missing subject",
			token: func(t *testing.T) string {
				return sign(t, jwtLib.SigningMethodHS256, []byte(secret), claims("", "customer", time.Hour))
			},
			wantErr: jwt.ErrInvalidClaim,
		},
		{
			name: "system role is not issuable",
			token: func(t *testing.T) string {
				return sign(t, jwtLib.SigningMethodHS256, []byte(secret), claims("u-1", "system", time.Hour))
			},
			wantErr: jwt.ErrInvalidClaim,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := verifier.ValidateToken(tt.token(t))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "u-1", got.UserID)
			assert.Equal(t, "customer", got.Role)
		})
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr error
	}{
		{header: "Bearer abc", want: "abc"},
		{header: "bearer  abc ", want: "abc"},
		{header: "", wantErr: jwt.ErrMissingToken},
		{header: "Basic abc", wantErr: jwt.ErrMalformed},
		{header: "Bearer", wantErr: jwt.ErrMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := jwt.ExtractTokenFromHeader(tt.header)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.want, got)
		})
	}
}
