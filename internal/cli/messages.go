package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/siteadmin/internal/backup"
	"github.com/dmitrijs2005/siteadmin/internal/common"
)

// Console-level errors. Handlers translate service sentinels into these
// when the same sentinel needs different wording per command.
var (
	errNotLoggedIn        = common.ErrUnauthorized
	errProgramNotFound    = errors.New("program not found")
	errAdminNotFound      = errors.New("admin not found")
	errMissingCredentials = errors.New("email and password are required")
	errCancelled          = errors.New("cancelled")
)

type usageError string

func (u usageError) Error() string { return "usage: " + string(u) }

func usage(s string) error { return usageError(s) }

// userMessage renders err as the one-line message the console prints.
func userMessage(err error) string {
	var u usageError
	switch {
	case errors.As(err, &u):
		return "Usage: " + string(u)
	case errors.Is(err, errProgramNotFound):
		return "Program not found."
	case errors.Is(err, errAdminNotFound):
		return "Admin not found."
	case errors.Is(err, errMissingCredentials):
		return "Enter email and password."
	case errors.Is(err, errCancelled):
		return "Cancelled."
	case errors.Is(err, common.ErrUnauthorized):
		return "Please log in first."
	case errors.Is(err, common.ErrAuthFailure):
		return "Invalid credentials. For demo, try admin1@site.test / admin123"
	case errors.Is(err, common.ErrDuplicateEmail):
		return "User already exists."
	case errors.Is(err, common.ErrLastAdmin):
		return "Cannot remove the last admin account."
	case errors.Is(err, common.ErrParse):
		return "Invalid JSON file."
	case errors.Is(err, backup.ErrNotExist):
		return "Backup file not found."
	case errors.Is(err, common.ErrNotFound):
		return "Not found."
	case errors.Is(err, common.ErrValidation):
		return capitalize(err.Error()) + "."
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
