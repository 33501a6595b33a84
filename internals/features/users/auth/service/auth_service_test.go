package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campushub_backend/internals/configs"
	authModel "campushub_backend/internals/features/users/auth/model"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPassword(hash, "s3cret-pass"))
	assert.False(t, CheckPassword(hash, "wrong-pass"))
}

func TestIssueTokenClaims(t *testing.T) {
	configs.JWTSecret = "test-secret"
	t.Cleanup(func() { configs.JWTSecret = "" })

	designation := "Registrar"
	user := &authModel.UserModel{
		UserID:          uuid.New(),
		UserRole:        "admin",
		UserDesignation: &designation,
	}

	token, err := IssueToken(user)
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	assert.Equal(t, user.UserID.String(), claims["id"])
	assert.Equal(t, "admin", claims["role"])
	assert.Equal(t, "Registrar", claims["designation"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	ttl := time.Until(time.Unix(int64(exp), 0))
	assert.InDelta(t, AccessTokenTTL.Hours(), ttl.Hours(), 1, "tokens live for 30 days")
}

func TestIssueTokenRequiresSecret(t *testing.T) {
	configs.JWTSecret = ""
	_, err := IssueToken(&authModel.UserModel{UserID: uuid.New(), UserRole: "student"})
	assert.Error(t, err)
}

func TestTokenExpiryFallsBackWithoutClaims(t *testing.T) {
	exp := TokenExpiry("not-a-token")
	assert.WithinDuration(t, time.Now().Add(AccessTokenTTL), exp, time.Minute)
}
