package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewService(t *testing.T) {
	service, err := NewService()
	assert.NoError(t, err)
	assert.NotNil(t, service)
	assert.NotEmpty(t, service.jwtSecret)
	assert.Equal(t, 30*24*time.Hour, service.tokenExp)
}

func TestService_HashAndCheckPassphrase(t *testing.T) {
	service, _ := NewService()

	hash, err := service.HashPassphrase("sakura-and-snow")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "sakura-and-snow", hash)

	service.passphraseHash = hash
	assert.True(t, service.CheckPassphrase("sakura-and-snow"))
	assert.False(t, service.CheckPassphrase("wrong"))
}

func TestService_CheckPassphraseOpenWhenUnconfigured(t *testing.T) {
	service, _ := NewService()
	service.passphraseHash = ""

	// no configured hash means open login for a private deployment
	assert.True(t, service.CheckPassphrase("anything"))
}

func TestService_GenerateAndValidateToken(t *testing.T) {
	service, _ := NewService()

	token, err := service.GenerateToken("Mia")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "Mia", claims.Name)
	assert.Greater(t, claims.Exp, time.Now().Unix())

	// the Bearer prefix is tolerated
	claims, err = service.ValidateToken("Bearer " + token)
	assert.NoError(t, err)
	assert.Equal(t, "Mia", claims.Name)
}

func TestService_ValidateToken_Invalid(t *testing.T) {
	service, _ := NewService()

	_, err := service.ValidateToken("not-a-token")
	assert.Equal(t, ErrInvalidToken, err)

	// a token signed with a different secret is rejected
	other := &Service{jwtSecret: []byte("someone-else"), tokenExp: time.Hour}
	token, _ := other.GenerateToken("Mia")
	_, err = service.ValidateToken(token)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestService_ValidateToken_Expired(t *testing.T) {
	service, _ := NewService()
	service.tokenExp = -time.Hour

	token, _ := service.GenerateToken("Mia")
	_, err := service.ValidateToken(token)
	assert.Equal(t, ErrExpiredToken, err)
}

func TestService_ExtractTokenFromHeader(t *testing.T) {
	service, _ := NewService()

	token, err := service.ExtractTokenFromHeader("Bearer abc123")
	assert.NoError(t, err)
	assert.Equal(t, "abc123", token)

	_, err = service.ExtractTokenFromHeader("")
	assert.Equal(t, ErrInvalidToken, err)

	_, err = service.ExtractTokenFromHeader("Basic abc123")
	assert.Equal(t, ErrInvalidToken, err)

	_, err = service.ExtractTokenFromHeader("Bearer ")
	assert.Equal(t, ErrInvalidToken, err)
}
