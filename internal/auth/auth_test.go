package auth

import (
	"testing"

	"rental-backend/internal/config"
	"rental-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct-horse")
	assert.NoError(t, err)
	assert.NotEqual(t, "correct-horse", hash)

	assert.True(t, VerifyPassword(hash, "correct-horse"))
	assert.False(t, VerifyPassword(hash, "wrong"))
	assert.False(t, VerifyPassword("", "correct-horse"))
}

func TestJWTRoundTrip(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-not-for-production"
	cfg.JWT.ExpirationHours = 1
	cfg.JWT.Issuer = "rental-backend-test"
	manager := NewJWTManager(cfg)

	user := &models.User{ID: 7, Email: "staff@example.com", Role: "staff", IsActive: true}
	token, err := manager.GenerateToken(user)
	assert.NoError(t, err)

	claims, err := manager.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "staff@example.com", claims.Email)
	assert.Equal(t, "staff", claims.Role)
	assert.True(t, claims.IsActive)
	assert.Equal(t, "rental-backend-test", claims.Issuer)
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "secret-one"
	cfg.JWT.ExpirationHours = 1
	token, err := NewJWTManager(cfg).GenerateToken(&models.User{ID: 1})
	assert.NoError(t, err)

	other := &config.Config{}
	other.JWT.Secret = "secret-two"
	other.JWT.ExpirationHours = 1
	_, err = NewJWTManager(other).ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTRejectsGarbage(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpirationHours = 1
	_, err := NewJWTManager(cfg).ValidateToken("not.a.token")
	assert.Error(t, err)
}
