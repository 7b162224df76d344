package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/siteadmin/internal/common"
	"github.com/dmitrijs2005/siteadmin/internal/cryptox"
	"github.com/dmitrijs2005/siteadmin/internal/logging"
	"github.com/dmitrijs2005/siteadmin/internal/models"
	"github.com/dmitrijs2005/siteadmin/internal/repositories/accounts"
)

// AdminService edits the admin account list. Accounts are keyed by their
// normalized email, never by list position.
type AdminService interface {
	Add(ctx context.Context, email string, password []byte) error
	Remove(ctx context.Context, email string) error
	ChangePassword(ctx context.Context, email string, password []byte) error
	List(ctx context.Context) ([]models.Admin, error)
}

type adminService struct {
	accounts accounts.Repository
	scheme   cryptox.PasswordScheme
	logger   logging.Logger
}

func NewAdminService(repo accounts.Repository, scheme cryptox.PasswordScheme, logger logging.Logger) AdminService {
	return &adminService{accounts: repo, scheme: scheme, logger: logger}
}

// Add appends a new admin. Empty email or password is ErrValidation; an
// email already present (case-insensitively) is ErrDuplicateEmail.
func (s *adminService) Add(ctx context.Context, email string, password []byte) error {
	email = models.NormalizeEmail(email)
	if email == "" || len(password) == 0 {
		return fmt.Errorf("%w: email and password are required", common.ErrValidation)
	}

	admins, err := s.accounts.Load(ctx)
	if err != nil {
		return err
	}
	if models.FindAdmin(admins, email) >= 0 {
		return fmt.Errorf("%s: %w", email, common.ErrDuplicateEmail)
	}

	encoded, err := s.scheme.Encode(password)
	if err != nil {
		return fmt.Errorf("encode password: %w", err)
	}

	admins = append(admins, models.Admin{Email: email, Password: encoded})
	if err := s.accounts.Save(ctx, admins); err != nil {
		return fmt.Errorf("save admins: %w", err)
	}

	s.logger.Info(ctx, "admin added", "email", email, "scheme", s.scheme.Name())
	return nil
}

// Remove deletes the admin with the given email. The last remaining admin
// cannot be removed (ErrLastAdmin): nobody could sign in afterwards.
func (s *adminService) Remove(ctx context.Context, email string) error {
	admins, err := s.accounts.Load(ctx)
	if err != nil {
		return err
	}

	i := models.FindAdmin(admins, email)
	if i < 0 {
		return fmt.Errorf("admin %q: %w", models.NormalizeEmail(email), common.ErrNotFound)
	}
	if len(admins) == 1 {
		return common.ErrLastAdmin
	}

	removed := admins[i].Email
	admins = append(admins[:i], admins[i+1:]...)
	if err := s.accounts.Save(ctx, admins); err != nil {
		return fmt.Errorf("save admins: %w", err)
	}

	s.logger.Info(ctx, "admin removed", "email", removed)
	return nil
}

// ChangePassword re-encodes the password of an existing admin with the
// configured scheme.
func (s *adminService) ChangePassword(ctx context.Context, email string, password []byte) error {
	if len(password) == 0 {
		return fmt.Errorf("%w: password is required", common.ErrValidation)
	}

	admins, err := s.accounts.Load(ctx)
	if err != nil {
		return err
	}

	i := models.FindAdmin(admins, email)
	if i < 0 {
		return fmt.Errorf("admin %q: %w", models.NormalizeEmail(email), common.ErrNotFound)
	}

	encoded, err := s.scheme.Encode(password)
	if err != nil {
		return fmt.Errorf("encode password: %w", err)
	}
	admins[i].Password = encoded

	if err := s.accounts.Save(ctx, admins); err != nil {
		return fmt.Errorf("save admins: %w", err)
	}

	s.logger.Info(ctx, "admin password changed", "email", admins[i].Email)
	return nil
}

func (s *adminService) List(ctx context.Context) ([]models.Admin, error) {
	return s.accounts.Load(ctx)
}
