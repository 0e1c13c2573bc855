package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	raw, err := token.SignedString([]byte(secret))
	assert.NoError(t, err)
	return raw
}

func TestParse_ValidToken(t *testing.T) {
	profileID := uuid.New()
	raw := signToken(t, "test-secret", jwt.MapClaims{
		"profile_id": profileID.String(),
		"type":       "client",
		"exp":        time.Now().Add(time.Hour).Unix(),
	})

	parser := NewParser("test-secret")
	claims, err := parser.Parse(raw)

	assert.NoError(t, err)
	assert.Equal(t, profileID, claims.ProfileID)
	assert.Equal(t, "client", claims.Type)
}

func TestParse_WrongSecret(t *testing.T) {
	raw := signToken(t, "other-secret", jwt.MapClaims{
		"profile_id": uuid.New().String(),
	})

	parser := NewParser("test-secret")
	_, err := parser.Parse(raw)

	assert.Error(t, err)
}

func TestParse_Expired(t *testing.T) {
	raw := signToken(t, "test-secret", jwt.MapClaims{
		"profile_id": uuid.New().String(),
		"exp":        time.Now().Add(-time.Hour).Unix(),
	})

	parser := NewParser("test-secret")
	_, err := parser.Parse(raw)

	assert.Error(t, err)
}

func TestParse_BadProfileID(t *testing.T) {
	raw := signToken(t, "test-secret", jwt.MapClaims{
		"profile_id": "not-a-uuid",
	})

	parser := NewParser("test-secret")
	_, err := parser.Parse(raw)

	assert.Error(t, err)
}
