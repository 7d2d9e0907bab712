package session

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// Credentials holds the single shared admin identity. When PassHash is set it
// takes precedence over the plaintext Pass fallback.
type Credentials struct {
	User     string
	Pass     string
	PassHash string
}

// Match reports whether the submitted username/password pair is the admin
// credential. Comparisons are constant-time.
func (c Credentials) Match(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.User)) == 1

	if c.PassHash != "" {
		passOK := bcrypt.CompareHashAndPassword([]byte(c.PassHash), []byte(password)) == nil
		return userOK && passOK
	}

	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(c.Pass)) == 1
	return userOK && passOK
}
