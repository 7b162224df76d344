package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/siteadmin/internal/common"
	"github.com/dmitrijs2005/siteadmin/internal/models"
)

func (a *App) ListPrograms(ctx context.Context) error {
	ctx, cancel := a.opCtx(ctx)
	defer cancel()

	programs, err := a.svc.Programs.List(ctx)
	if err != nil {
		return err
	}
	renderPrograms(a.out, programs)
	return nil
}

func (a *App) readProgramFields(current models.ProgramFields) (models.ProgramFields, error) {
	var (
		out models.ProgramFields
		err error
	)
	if out.Title, err = GetWithDefault(a.reader, "Title", current.Title, a.out); err != nil {
		return out, err
	}
	if out.Description, err = GetWithDefault(a.reader, "Description", current.Description, a.out); err != nil {
		return out, err
	}
	if out.Icon, err = GetWithDefault(a.reader, "Icon", current.Icon, a.out); err != nil {
		return out, err
	}
	return out, nil
}

func (a *App) AddProgram(ctx context.Context) error {
	fields, err := a.readProgramFields(models.ProgramFields{})
	if err != nil {
		return err
	}

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()
	id, err := a.svc.Programs.Add(opCtx, fields)
	if err != nil {
		return err
	}

	a.printf("Program added: %s\n", id)
	return a.ListPrograms(ctx)
}

func (a *App) EditProgram(ctx context.Context, id string) error {
	opCtx, cancel := a.opCtx(ctx)
	p, err := a.svc.Programs.Get(opCtx, id)
	cancel()
	if err != nil {
		return programErr(err)
	}

	fields, err := a.readProgramFields(p.ProgramFields)
	if err != nil {
		return err
	}

	opCtx, cancel = a.opCtx(ctx)
	defer cancel()
	if err := a.svc.Programs.Update(opCtx, id, fields); err != nil {
		return programErr(err)
	}

	a.println("Program updated.")
	return a.ListPrograms(ctx)
}

func (a *App) DeleteProgram(ctx context.Context, id string) error {
	ok, err := Confirm(a.reader, "Delete this program?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		return errCancelled
	}

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()
	if err := a.svc.Programs.Remove(opCtx, id); err != nil {
		return programErr(err)
	}

	a.println("Program deleted.")
	return a.ListPrograms(ctx)
}

func programErr(err error) error {
	if errors.Is(err, common.ErrNotFound) {
		return errProgramNotFound
	}
	return err
}
