package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/siteadmin/internal/common"
	"github.com/dmitrijs2005/siteadmin/internal/cryptox"
	"github.com/dmitrijs2005/siteadmin/internal/logging"
	"github.com/dmitrijs2005/siteadmin/internal/models"
	"github.com/dmitrijs2005/siteadmin/internal/repositories/accounts"
)

// Session is the in-memory result of a successful login. It is never
// persisted and never expires; it lives as long as the process.
type Session struct {
	Email      string
	SignedInAt time.Time
}

// AuthService gates editing behind a credential check.
//
// This is a demo-grade guard: no lockout, no rate limiting, no tokens.
type AuthService interface {
	// Authenticate checks credentials without opening a session.
	Authenticate(ctx context.Context, email string, password []byte) (*models.Admin, error)
	// Login authenticates and, on success, stores the session.
	Login(ctx context.Context, email string, password []byte) (*Session, error)
	Logout(ctx context.Context)
	Current() *Session
	// Require returns common.ErrUnauthorized when nobody is logged in.
	Require() error
}

type authService struct {
	accounts accounts.Repository
	logger   logging.Logger
	now      func() time.Time
	session  *Session
}

func NewAuthService(accounts accounts.Repository, logger logging.Logger) AuthService {
	return &authService{accounts: accounts, logger: logger, now: time.Now}
}

// Authenticate normalizes the email, then scans the accounts in order and
// returns the first one whose email matches and whose stored password
// verifies. Email uniqueness is assumed here, not checked.
func (a *authService) Authenticate(ctx context.Context, email string, password []byte) (*models.Admin, error) {
	email = models.NormalizeEmail(email)

	admins, err := a.accounts.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load accounts: %w", err)
	}

	for _, admin := range admins {
		if models.NormalizeEmail(admin.Email) != email {
			continue
		}
		if cryptox.VerifyPassword(admin.Password, password) {
			found := admin
			return &found, nil
		}
	}
	return nil, common.ErrAuthFailure
}

func (a *authService) Login(ctx context.Context, email string, password []byte) (*Session, error) {
	admin, err := a.Authenticate(ctx, email, password)
	if err != nil {
		a.logger.Warn(ctx, "login failed", "email", models.NormalizeEmail(email))
		return nil, err
	}

	a.session = &Session{Email: models.NormalizeEmail(admin.Email), SignedInAt: a.now()}
	a.logger.Info(ctx, "login", "email", a.session.Email)

	s := *a.session
	return &s, nil
}

func (a *authService) Logout(ctx context.Context) {
	if a.session != nil {
		a.logger.Info(ctx, "logout", "email", a.session.Email)
	}
	a.session = nil
}

func (a *authService) Current() *Session {
	if a.session == nil {
		return nil
	}
	s := *a.session
	return &s
}

func (a *authService) Require() error {
	if a.session == nil {
		return common.ErrUnauthorized
	}
	return nil
}
