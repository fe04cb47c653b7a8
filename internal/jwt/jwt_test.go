package jwt

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threadmind-dev/threadmind/internal/domain"
)

func testUser() *domain.User {
	return &domain.User{
		Id:        "u1",
		Name:      "John Doe",
		Email:     "john@example.com",
		CreatedAt: time.Unix(1700000000, 0),
	}
}

func TestTokenRoundTrip(t *testing.T) {
	svc := New("secret", time.Hour)

	tokenStr, err := svc.NewToken(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	token, err := svc.DecodeToken(tokenStr)
	require.NoError(t, err)

	claims, ok := token.Claims.(gojwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "u1", claims["uid"])
	assert.Equal(t, "John Doe", claims["name"])
	assert.Equal(t, "john@example.com", claims["email"])
}

func TestDecodeExpiredToken(t *testing.T) {
	svc := New("secret", -time.Minute)

	tokenStr, err := svc.NewToken(testUser())
	require.NoError(t, err)

	_, err = svc.DecodeToken(tokenStr)
	assert.Error(t, err)
}

func TestDecodeWrongKey(t *testing.T) {
	tokenStr, err := New("secret", time.Hour).NewToken(testUser())
	require.NoError(t, err)

	_, err = New("other", time.Hour).DecodeToken(tokenStr)
	assert.Error(t, err)
}

func TestDecodeGarbage(t *testing.T) {
	_, err := New("secret", time.Hour).DecodeToken("not.a.token")
	assert.Error(t, err)
}
