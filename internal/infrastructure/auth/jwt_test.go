package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_SignAndVerify(t *testing.T) {
	service := NewJWTService("test-secret")

	signed, err := service.Sign(&Claims{
		Email:       "amal@example.com",
		GivenName:   "Amal",
		FamilyName:  "Hassan",
		Permissions: []string{"admin:forum"},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: "ext-user-1",
		},
	})
	require.NoError(t, err)

	claims, err := service.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "ext-user-1", claims.ExternalUserID())
	assert.Equal(t, "amal@example.com", claims.Email)
	assert.Equal(t, []string{"admin:forum"}, claims.Permissions)
}

func TestJWTService_Verify_Errors(t *testing.T) {
	service := NewJWTService("test-secret")

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTService("other-secret")
		signed, err := other.Sign(&Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "ext-user-1"}})
		require.NoError(t, err)

		_, err = service.Verify(signed)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		signed, err := service.Sign(&Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "ext-user-1",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			},
		})
		require.NoError(t, err)

		_, err = service.Verify(signed)
		assert.Error(t, err)
	})

	t.Run("missing subject", func(t *testing.T) {
		signed, err := service.Sign(&Claims{})
		require.NoError(t, err)

		_, err = service.Verify(signed)
		assert.Error(t, err)
	})

	t.Run("garbage input", func(t *testing.T) {
		_, err := service.Verify("not-a-token")
		assert.Error(t, err)
	})
}
