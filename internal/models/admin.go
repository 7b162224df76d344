package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/siteadmin/internal/common"
)

// Admin is one entry of the account record. Password holds the encoded
// form produced by cryptox, never the plain text.
type Admin struct {
	Email    string `json:"email"`
	Password string `json:"pwd"`
}

// Credentials seeded on first run.
type Credentials struct {
	Email    string
	Password string
}

// DefaultAdmins are demo accounts; they are documented on the login prompt.
var DefaultAdmins = []Credentials{
	{Email: "admin1@site.test", Password: "admin123"},
	{Email: "admin2@site.test", Password: "admin456"},
}

// NormalizeEmail trims and lowercases an email so it can be used as a key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateAdmins checks emails are present and unique case-insensitively
// and that every account carries an encoded password.
func ValidateAdmins(admins []Admin) error {
	seen := make(map[string]struct{}, len(admins))
	for n, a := range admins {
		email := NormalizeEmail(a.Email)
		if email == "" {
			return fmt.Errorf("%w: admin #%d has no email", common.ErrValidation, n)
		}
		if a.Password == "" {
			return fmt.Errorf("%w: admin %q has no password", common.ErrValidation, email)
		}
		if _, ok := seen[email]; ok {
			return fmt.Errorf("%w: duplicate admin email %q", common.ErrValidation, email)
		}
		seen[email] = struct{}{}
	}
	return nil
}

// FindAdmin returns the index of the admin with the given email (compared
// after normalization), or -1.
func FindAdmin(admins []Admin, email string) int {
	email = NormalizeEmail(email)
	for i, a := range admins {
		if NormalizeEmail(a.Email) == email {
			return i
		}
	}
	return -1
}
