// Package auth is the admin credential-verification capability. There is no
// server to ask, so the verifier is injected at wiring time; builds with no
// credentials configured deny every login.
package auth

import (
	"crypto/subtle"
	"errors"
)

var ErrInvalidCredentials = errors.New("auth: invalid credentials")

// Verifier decides whether an id/password pair belongs to the admin.
type Verifier interface {
	Verify(id, password string) bool
}

// DenyAll is the default verifier.
type DenyAll struct{}

func (DenyAll) Verify(string, string) bool { return false }

// Static compares against a fixed pair in constant time. It exists for dev
// setups that still configure a plaintext password; prefer Hashed.
type Static struct {
	ID       string
	Password string
}

func (s Static) Verify(id, password string) bool {
	idOK := subtle.ConstantTimeCompare([]byte(id), []byte(s.ID)) == 1
	pwOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.Password)) == 1
	return idOK && pwOK
}

// Hashed verifies the password against a stored argon2id (or legacy bcrypt)
// hash.
type Hashed struct {
	ID           string
	PasswordHash string
}

func (h Hashed) Verify(id, password string) bool {
	if subtle.ConstantTimeCompare([]byte(id), []byte(h.ID)) != 1 {
		return false
	}
	ok, err := VerifyPassword(password, h.PasswordHash)
	return err == nil && ok
}
