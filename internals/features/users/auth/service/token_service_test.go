package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artspace_backend/internals/configs"
	repository "artspace_backend/internals/features/users/auth/repository"
)

func TestCreateTokenRoundTrip(t *testing.T) {
	configs.JWTSecret = "test-secret"
	configs.JWTExpiry = time.Hour

	cred := &repository.Credential{UserID: 17, Login: "alice", Role: "USER"}
	token, exp, err := CreateToken(cred)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	assert.Equal(t, "alice", claims["sub"])
	assert.Equal(t, "USER", claims["role"])
	assert.Equal(t, float64(17), claims["user_id"])
	assert.Equal(t, float64(exp.Unix()), claims["exp"])
}

func TestCreateTokenRequiresSecret(t *testing.T) {
	configs.JWTSecret = ""

	_, _, err := CreateToken(&repository.Credential{Login: "bob"})
	assert.Error(t, err)
}
