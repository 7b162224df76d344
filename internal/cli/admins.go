package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/siteadmin/internal/common"
)

func (a *App) ListAdmins(ctx context.Context) error {
	ctx, cancel := a.opCtx(ctx)
	defer cancel()

	admins, err := a.svc.Admins.List(ctx)
	if err != nil {
		return err
	}
	renderAdmins(a.out, admins)
	return nil
}

func (a *App) AddAdmin(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "New admin email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "New admin password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()
	if err := a.svc.Admins.Add(opCtx, email, password); err != nil {
		if errors.Is(err, common.ErrValidation) {
			return errMissingCredentials
		}
		return err
	}

	a.println("Admin added.")
	return a.ListAdmins(ctx)
}

func (a *App) DeleteAdmin(ctx context.Context, email string) error {
	ok, err := Confirm(a.reader, "Remove this admin?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		return errCancelled
	}

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()
	if err := a.svc.Admins.Remove(opCtx, email); err != nil {
		return adminErr(err)
	}

	a.println("Admin removed.")
	return a.ListAdmins(ctx)
}

func (a *App) ChangePassword(ctx context.Context, email string) error {
	password, err := getPassword(a.reader, "New password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()
	if err := a.svc.Admins.ChangePassword(opCtx, email, password); err != nil {
		return adminErr(err)
	}

	a.println("Password changed.")
	return nil
}

func adminErr(err error) error {
	if errors.Is(err, common.ErrNotFound) {
		return errAdminNotFound
	}
	return err
}
