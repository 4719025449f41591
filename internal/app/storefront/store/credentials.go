package store

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Credentials is the configured admin user/password pair. The password is
// only kept as a bcrypt hash.
type Credentials struct {
	user string
	hash []byte
}

func NewCredentials(user, password string) (Credentials, error) {
	return NewCredentialsCost(user, password, bcrypt.DefaultCost)
}

// NewCredentialsCost lets tests trade hash strength for speed.
func NewCredentialsCost(user, password string, cost int) (Credentials, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return Credentials{}, fmt.Errorf("hash admin password: %w", err)
	}
	return Credentials{user: user, hash: hash}, nil
}

// Check compares a login attempt against the configured pair.
func (c Credentials) Check(user, password string) bool {
	if len(c.hash) == 0 {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(c.user)) == 1
	passOK := bcrypt.CompareHashAndPassword(c.hash, []byte(password)) == nil
	return userOK && passOK
}
