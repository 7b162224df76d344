package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/siteadmin/internal/backup"
	"github.com/dmitrijs2005/siteadmin/internal/common"
	"github.com/stretchr/testify/assert"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{errProgramNotFound, "Program not found."},
		{errAdminNotFound, "Admin not found."},
		{fmt.Errorf("x: %w", common.ErrDuplicateEmail), "User already exists."},
		{fmt.Errorf("%w: eof", common.ErrParse), "Invalid JSON file."},
		{common.ErrAuthFailure, "Invalid credentials. For demo, try admin1@site.test / admin123"},
		{common.ErrLastAdmin, "Cannot remove the last admin account."},
		{errMissingCredentials, "Enter email and password."},
		{common.ErrUnauthorized, "Please log in first."},
		{fmt.Errorf("%w: duplicate program id \"a\"", common.ErrValidation), "Validation error: duplicate program id \"a\"."},
		{fmt.Errorf("f: %w", backup.ErrNotExist), "Backup file not found."},
		{usage("x <y>"), "Usage: x <y>"},
		{errors.New("disk full"), "Error: disk full"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, userMessage(tc.err))
	}
}
