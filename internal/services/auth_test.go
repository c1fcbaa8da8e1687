package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeongjingoo/tech/internal/models"
	"github.com/jeongjingoo/tech/internal/repository/memory"
)

func newAuth(t *testing.T, techs ...models.Technician) *AuthService {
	t.Helper()
	log, _ := test.NewNullLogger()
	repo := memory.NewTechnicianRepository(memory.NewDB())
	for i := range techs {
		require.NoError(t, repo.Insert(context.Background(), &techs[i]))
	}
	return NewAuthService(repo, "test-secret", time.Hour, log)
}

func TestLogin(t *testing.T) {
	hash, err := HashPassword("pw1234")
	require.NoError(t, err)
	auth := newAuth(t, models.Technician{Name: "김기사", Team: "1팀", LoginID: "kim", Password: hash})

	tests := []struct {
		name     string
		id, pw   string
		expected error
	}{
		{"missing id", "", "pw1234", ErrMissingCredentials},
		{"missing password", "kim", "", ErrMissingCredentials},
		{"unknown id", "lee", "pw1234", ErrUnknownID},
		{"wrong password", "kim", "nope", ErrInvalidCredentials},
		{"ok", "kim", "pw1234", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile, token, err := auth.Login(context.Background(), tt.id, tt.pw)
			if tt.expected != nil {
				assert.ErrorIs(t, err, tt.expected)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, models.Profile{ID: "kim", Name: "김기사", Team: "1팀"}, profile)

			claims, err := auth.Parse(token)
			require.NoError(t, err)
			assert.Equal(t, profile, claims.Profile())
		})
	}
}

func TestLoginUpgradesPlaintext(t *testing.T) {
	log, hook := test.NewNullLogger()
	repo := memory.NewTechnicianRepository(memory.NewDB())
	require.NoError(t, repo.Insert(context.Background(), &models.Technician{LoginID: "old", Password: "plain"}))
	auth := NewAuthService(repo, "k", time.Hour, log)

	_, _, err := auth.Login(context.Background(), "old", "plain")
	require.NoError(t, err)

	stored, err := repo.FindByLoginID(context.Background(), "old")
	require.NoError(t, err)
	assert.True(t, IsHashed(stored.Password))
	assert.Equal(t, "upgraded plaintext password", hook.LastEntry().Message)

	// the hashed record keeps working
	_, _, err = auth.Login(context.Background(), "old", "plain")
	assert.NoError(t, err)
	_, _, err = auth.Login(context.Background(), "old", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestParseRejectsBadTokens(t *testing.T) {
	auth := newAuth(t)
	token, err := auth.Issue(models.Profile{ID: "kim"})
	require.NoError(t, err)

	other := newAuth(t)
	other.key = []byte("another-secret")
	_, err = other.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	auth.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = auth.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = auth.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)

	ok, legacy := VerifyPassword(hash, "secret")
	assert.True(t, ok)
	assert.False(t, legacy)

	ok, legacy = VerifyPassword("secret", "secret")
	assert.True(t, ok)
	assert.True(t, legacy)

	ok, _ = VerifyPassword("", "")
	assert.False(t, ok)
	assert.False(t, IsHashed("$2nothash"))
}

func TestHashPasswordLength(t *testing.T) {
	_, err := HashPassword(strings.Repeat("a", MaxPasswordBytes))
	assert.NoError(t, err)

	// 25 Hangul syllables are 75 bytes
	_, err = HashPassword(strings.Repeat("가", 25))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}
