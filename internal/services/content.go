package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/siteadmin/internal/logging"
	"github.com/dmitrijs2005/siteadmin/internal/models"
	"github.com/dmitrijs2005/siteadmin/internal/repositories/content"
)

// ContentService edits the non-list parts of the site content record.
type ContentService interface {
	Get(ctx context.Context) (*models.SiteContent, error)
	UpdateHero(ctx context.Context, label, title, description string) error
	UpdateAbout(ctx context.Context, title, description string) error
	UpdateStats(ctx context.Context, stats models.Stats) error
	// SetHeroImage stores an already-embedded image (a data URL) as is.
	SetHeroImage(ctx context.Context, dataURL string) error
	ClearHeroImage(ctx context.Context) error
}

type contentService struct {
	content content.Repository
	logger  logging.Logger
}

func NewContentService(repo content.Repository, logger logging.Logger) ContentService {
	return &contentService{content: repo, logger: logger}
}

func (s *contentService) Get(ctx context.Context) (*models.SiteContent, error) {
	return s.content.Load(ctx)
}

// update is the read-modify-write shared by every edit.
func (s *contentService) update(ctx context.Context, what string, fn func(c *models.SiteContent)) error {
	c, err := s.content.Load(ctx)
	if err != nil {
		return err
	}
	fn(c)
	if err := s.content.Save(ctx, c); err != nil {
		return fmt.Errorf("save %s: %w", what, err)
	}
	s.logger.Info(ctx, "content saved", "section", what)
	return nil
}

func (s *contentService) UpdateHero(ctx context.Context, label, title, description string) error {
	return s.update(ctx, "hero", func(c *models.SiteContent) {
		c.Hero.Label = label
		c.Hero.Title = title
		c.Hero.Description = description
	})
}

func (s *contentService) UpdateAbout(ctx context.Context, title, description string) error {
	return s.update(ctx, "about", func(c *models.SiteContent) {
		c.About.Title = title
		c.About.Description = description
	})
}

func (s *contentService) UpdateStats(ctx context.Context, stats models.Stats) error {
	return s.update(ctx, "stats", func(c *models.SiteContent) {
		c.Stats = stats
	})
}

func (s *contentService) SetHeroImage(ctx context.Context, dataURL string) error {
	return s.update(ctx, "hero image", func(c *models.SiteContent) {
		c.Hero.BackgroundImage = &dataURL
	})
}

func (s *contentService) ClearHeroImage(ctx context.Context) error {
	return s.update(ctx, "hero image", func(c *models.SiteContent) {
		c.Hero.BackgroundImage = nil
	})
}
