package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *JWTService {
	t.Helper()
	svc, err := NewJWTService(JWTConfig{
		Secret:     "test-secret",
		Issuer:     "credora-gateway",
		Expiration: time.Hour,
	})
	require.NoError(t, err)
	return svc
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestService(t)

	userID := uuid.New()
	token, err := svc.GenerateToken(userID, "Ana Torres", []string{RoleAnalyst})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "Ana Torres", claims.Name)
	assert.True(t, claims.HasRole(RoleAnalyst))
	assert.False(t, claims.HasRole(RoleAdmin))
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc := newTestService(t)

	token, err := svc.GenerateToken(uuid.New(), "Ana Torres", []string{RoleAnalyst})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token + "x")
	assert.Error(t, err)
}

func TestJWTService_RejectsWrongIssuer(t *testing.T) {
	issuer, err := NewJWTService(JWTConfig{
		Secret:     "test-secret",
		Issuer:     "someone-else",
		Expiration: time.Hour,
	})
	require.NoError(t, err)

	token, err := issuer.GenerateToken(uuid.New(), "Ana Torres", []string{RoleAnalyst})
	require.NoError(t, err)

	svc := newTestService(t)
	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestNewJWTService_RequiresKeyMaterial(t *testing.T) {
	_, err := NewJWTService(JWTConfig{})
	assert.Error(t, err)
}
