package cli

import (
	"context"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/dmitrijs2005/siteadmin/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	now           = time.Now
)

// Login prompts for credentials and opens a session. The password is wiped
// before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.opCtx(ctx)
	defer cancel()

	s, err := a.svc.Auth.Login(ctx, email, password)
	if err != nil {
		return err
	}

	a.printf("Signed in as %s.\n", s.Email)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.svc.Auth.Logout(ctx)
	a.println("Signed out.")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	s := a.svc.Auth.Current()
	if s == nil {
		return errNotLoggedIn
	}
	a.printf("%s, signed in %s\n", s.Email, humanize.RelTime(s.SignedInAt, now(), "ago", "from now"))
	return nil
}
