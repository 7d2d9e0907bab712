package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCredentialsMatchPlaintext(t *testing.T) {
	t.Parallel()

	creds := Credentials{User: "admin", Pass: "admin@123"}

	tests := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{"correct pair", "admin", "admin@123", true},
		{"wrong password", "admin", "wrong", false},
		{"wrong username", "root", "admin@123", false},
		{"both wrong", "root", "wrong", false},
		{"empty", "", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, creds.Match(tc.username, tc.password))
		})
	}
}

func TestCredentialsMatchBcryptHash(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	// The hash wins over any plaintext fallback.
	creds := Credentials{User: "admin", Pass: "ignored", PassHash: string(hash)}

	assert.True(t, creds.Match("admin", "s3cret"))
	assert.False(t, creds.Match("admin", "ignored"))
	assert.False(t, creds.Match("admin", "wrong"))
	assert.False(t, creds.Match("root", "s3cret"))
}
