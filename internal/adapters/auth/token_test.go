package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_IssueAndVerify(t *testing.T) {
	tokens := NewJWT("test-secret")

	token, err := tokens.Issue(123, "u@example.com", 24*time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, 123, userID)
}

func TestJWT_Issue_Claims(t *testing.T) {
	secret := "test-secret"
	tokens := NewJWT(secret)

	token, err := tokens.Issue(123, "u@example.com", 24*time.Hour)
	require.NoError(t, err)

	parsed, err := jwt.ParseWithClaims(token, &jwtClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	claims, ok := parsed.Claims.(*jwtClaims)
	require.True(t, ok)
	assert.Equal(t, "123", claims.Subject)
	assert.Equal(t, "u@example.com", claims.Email)
}

func TestJWT_Verify_WrongSecret(t *testing.T) {
	token, err := NewJWT("secret-a").Issue(1, "u@example.com", time.Hour)
	require.NoError(t, err)

	_, err = NewJWT("secret-b").Verify(token)
	assert.Error(t, err)
}

func TestJWT_Verify_Expired(t *testing.T) {
	tokens := NewJWT("test-secret")
	token, err := tokens.Issue(1, "u@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = tokens.Verify(token)
	assert.Error(t, err)
}

func TestJWT_Verify_Garbage(t *testing.T) {
	_, err := NewJWT("test-secret").Verify("not-a-jwt")
	assert.Error(t, err)
}
