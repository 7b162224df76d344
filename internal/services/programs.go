package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/siteadmin/internal/common"
	"github.com/dmitrijs2005/siteadmin/internal/logging"
	"github.com/dmitrijs2005/siteadmin/internal/models"
	"github.com/dmitrijs2005/siteadmin/internal/repositories/content"
)

// ProgramService edits the ordered programs list inside the site content
// record. Every mutation is a read-modify-write of the whole record.
type ProgramService interface {
	Add(ctx context.Context, fields models.ProgramFields) (string, error)
	Update(ctx context.Context, id string, fields models.ProgramFields) error
	Remove(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*models.Program, error)
	List(ctx context.Context) ([]models.Program, error)
}

type programService struct {
	content content.Repository
	logger  logging.Logger
	newID   func() string
}

func NewProgramService(repo content.Repository, logger logging.Logger) ProgramService {
	return &programService{content: repo, logger: logger, newID: models.NewID}
}

// Add appends a program under a fresh id and returns that id.
func (s *programService) Add(ctx context.Context, fields models.ProgramFields) (string, error) {
	c, err := s.content.Load(ctx)
	if err != nil {
		return "", err
	}

	id := s.newID()
	for c.FindProgram(id) >= 0 {
		id = s.newID()
	}

	c.Programs = append(c.Programs, models.Program{ID: id, ProgramFields: fields})
	if err := s.content.Save(ctx, c); err != nil {
		return "", fmt.Errorf("save program: %w", err)
	}

	s.logger.Info(ctx, "program added", "id", id, "title", fields.Title)
	return id, nil
}

// Update replaces the mutable fields of the program with the given id.
func (s *programService) Update(ctx context.Context, id string, fields models.ProgramFields) error {
	c, err := s.content.Load(ctx)
	if err != nil {
		return err
	}

	i := c.FindProgram(id)
	if i < 0 {
		return fmt.Errorf("program %q: %w", id, common.ErrNotFound)
	}
	c.Programs[i].ProgramFields = fields

	if err := s.content.Save(ctx, c); err != nil {
		return fmt.Errorf("save program: %w", err)
	}

	s.logger.Info(ctx, "program updated", "id", id)
	return nil
}

// Remove drops the program with the given id. Asking the user for
// confirmation is the caller's job.
func (s *programService) Remove(ctx context.Context, id string) error {
	c, err := s.content.Load(ctx)
	if err != nil {
		return err
	}

	i := c.FindProgram(id)
	if i < 0 {
		return fmt.Errorf("program %q: %w", id, common.ErrNotFound)
	}
	c.Programs = append(c.Programs[:i], c.Programs[i+1:]...)

	if err := s.content.Save(ctx, c); err != nil {
		return fmt.Errorf("save program: %w", err)
	}

	s.logger.Info(ctx, "program removed", "id", id)
	return nil
}

func (s *programService) Get(ctx context.Context, id string) (*models.Program, error) {
	c, err := s.content.Load(ctx)
	if err != nil {
		return nil, err
	}
	i := c.FindProgram(id)
	if i < 0 {
		return nil, fmt.Errorf("program %q: %w", id, common.ErrNotFound)
	}
	p := c.Programs[i]
	return &p, nil
}

// List returns the programs in persisted order.
func (s *programService) List(ctx context.Context) ([]models.Program, error) {
	c, err := s.content.Load(ctx)
	if err != nil {
		return nil, err
	}
	return c.Programs, nil
}
