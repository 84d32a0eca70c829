package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"petcare/config"
)

func newTestHasher(t *testing.T) *bcryptHasher {
	t.Helper()

	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}}
	hasher, ok := NewBcryptHasher(cfg).(*bcryptHasher)
	require.True(t, ok)

	return hasher
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher(t)

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, hasher.Check("correct horse battery staple", hash))
	assert.False(t, hasher.Check("wrong password", hash))
}

func TestBcryptHasher_CheckInvalidHash(t *testing.T) {
	hasher := newTestHasher(t)

	assert.False(t, hasher.Check("anything", "not a bcrypt hash"))
}

func TestNewBcryptHasher_CostFallback(t *testing.T) {
	tests := []struct {
		name string
		auth *config.AuthConfig
		want int
	}{
		{name: "nil auth section", auth: nil, want: bcrypt.DefaultCost},
		{name: "cost below minimum", auth: &config.AuthConfig{BcryptCost: 1}, want: bcrypt.DefaultCost},
		{name: "cost above maximum", auth: &config.AuthConfig{BcryptCost: 99}, want: bcrypt.DefaultCost},
		{name: "valid cost", auth: &config.AuthConfig{BcryptCost: 6}, want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher, ok := NewBcryptHasher(&config.Config{Auth: tt.auth}).(*bcryptHasher)
			require.True(t, ok)
			assert.Equal(t, tt.want, hasher.cost)
		})
	}
}
