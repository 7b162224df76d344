package cli

import (
	"context"

	"github.com/dmitrijs2005/siteadmin/internal/common"
)

// Export writes both records as one document to the backup target.
func (a *App) Export(ctx context.Context, name string) error {
	if name == "" {
		name = common.BackupFileName
	}

	ctx, cancel := a.opCtx(ctx)
	defer cancel()

	doc, err := a.svc.Backup.Export(ctx)
	if err != nil {
		return err
	}
	data, err := a.svc.Backup.Marshal(doc)
	if err != nil {
		return err
	}
	if err := a.target.Write(ctx, name, data); err != nil {
		return err
	}
	a.logger.Info(ctx, "backup exported", "location", a.target.Location(name), "bytes", len(data))

	a.printf("Backup written to %s\n", a.target.Location(name))
	return nil
}

// Import restores a document from the backup target. When signed in, every
// view is re-rendered from the stored records afterwards.
func (a *App) Import(ctx context.Context, name string) error {
	if name == "" {
		name = common.BackupFileName
	}

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()

	data, err := a.target.Read(opCtx, name)
	if err != nil {
		return err
	}
	if err := a.svc.Backup.Import(opCtx, data); err != nil {
		return err
	}

	a.println("Import successful.")
	if !a.isLoggedIn() {
		return nil
	}
	if err := a.Show(ctx); err != nil {
		return err
	}
	a.println()
	return a.ListAdmins(ctx)
}

// Reset deletes both records after confirmation and signs out, since the
// seeded demo accounts replace the current ones.
func (a *App) Reset(ctx context.Context) error {
	ok, err := Confirm(a.reader, "Delete all content and admin accounts and restore the defaults?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		return errCancelled
	}

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()
	if err := a.svc.Backup.Reset(opCtx); err != nil {
		return err
	}

	a.println("Records reset to defaults.")
	return a.Logout(ctx)
}
