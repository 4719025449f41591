package domain

import (
	"net/mail"
	"strings"
)

// NormalizeEmail trims and lower-cases an address and checks it parses as a
// bare address.
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", ErrInvalidNewsletterMail
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(email[strings.LastIndex(email, "@")+1:], ".") {
		return "", ErrInvalidNewsletterMail
	}
	return email, nil
}
