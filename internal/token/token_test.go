package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nadi/internal/models"
)

var testUser = &models.User{
	ID:    "u1",
	Email: "ahmad@tp.example.com",
	Role:  models.RoleTPAdmin,
}

func TestIssueAndParse(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	signed, jti, err := m.Issue(testUser)
	require.NoError(t, err)
	assert.NotEmpty(t, signed)
	assert.NotEmpty(t, jti)

	claims, err := m.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "ahmad@tp.example.com", claims.Email)
	assert.Equal(t, models.RoleTPAdmin, claims.Role)
	assert.Equal(t, jti, claims.ID)
}

func TestParseExpired(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)
	signed, _, err := m.Issue(testUser)
	require.NoError(t, err)

	_, err = m.Parse(signed)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseWrongSecret(t *testing.T) {
	signed, _, err := NewManager("secret-a", time.Hour).Issue(testUser)
	require.NoError(t, err)

	_, err = NewManager("secret-b", time.Hour).Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseGarbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	_, err := m.Parse("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
