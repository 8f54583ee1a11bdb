package auth

import (
	"testing"

	"pg-backend/internal/config"
	"pg-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTManager() *JWTManager {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpirationHours = 1
	cfg.JWT.Issuer = "pg-backend-test"
	return NewJWTManager(cfg)
}

func TestGenerateAndValidateToken(t *testing.T) {
	j := testJWTManager()
	user := &models.User{ID: 42, Username: "Asha", Role: models.RoleTenant}

	token, err := j.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := j.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "Asha", claims.Username)
	assert.Equal(t, models.RoleTenant, claims.Role)
	assert.Equal(t, "pg-backend-test", claims.Issuer)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	j := testJWTManager()
	_, err := j.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	j := testJWTManager()
	token, err := j.GenerateToken(&models.User{ID: 1, Username: "x", Role: models.RoleAdmin})
	require.NoError(t, err)

	other := &config.Config{}
	other.JWT.Secret = "different-secret"
	other.JWT.ExpirationHours = 1
	_, err = NewJWTManager(other).ValidateToken(token)
	assert.Error(t, err)
}

func TestTempTokenRoundTrip(t *testing.T) {
	j := testJWTManager()
	user := &models.User{ID: 7, Username: "Admin user", Role: models.RoleAdmin}

	temp, err := j.GenerateTempToken(user)
	require.NoError(t, err)

	claims, err := j.ValidateTempToken(temp)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "2fa_pending", claims.Type)

	// A full session token must not validate as a temp token
	full, err := j.GenerateToken(user)
	require.NoError(t, err)
	_, err = j.ValidateTempToken(full)
	assert.Error(t, err)
}
