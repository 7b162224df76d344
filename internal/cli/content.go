package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/siteadmin/internal/models"
)

// defaultPreviewFile is written by "preview" when no file name is given.
const defaultPreviewFile = "site_preview.html"

func (a *App) loadContent(ctx context.Context) (*models.SiteContent, error) {
	ctx, cancel := a.opCtx(ctx)
	defer cancel()
	return a.svc.Content.Get(ctx)
}

func (a *App) Show(ctx context.Context) error {
	c, err := a.loadContent(ctx)
	if err != nil {
		return err
	}
	renderContent(a.out, c)
	return nil
}

// EditHero prompts for the hero text fields, saves them and re-renders the
// hero from the stored record.
func (a *App) EditHero(ctx context.Context) error {
	c, err := a.loadContent(ctx)
	if err != nil {
		return err
	}

	label, err := GetWithDefault(a.reader, "Label", c.Hero.Label, a.out)
	if err != nil {
		return err
	}
	title, err := GetWithDefault(a.reader, "Title", c.Hero.Title, a.out)
	if err != nil {
		return err
	}
	description, err := GetWithDefault(a.reader, "Description", c.Hero.Description, a.out)
	if err != nil {
		return err
	}

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()
	if err := a.svc.Content.UpdateHero(opCtx, label, title, description); err != nil {
		return err
	}

	a.println("Content saved.")
	return a.showHero(ctx)
}

func (a *App) showHero(ctx context.Context) error {
	c, err := a.loadContent(ctx)
	if err != nil {
		return err
	}
	renderHero(a.out, c.Hero)
	return nil
}

func (a *App) EditAbout(ctx context.Context) error {
	c, err := a.loadContent(ctx)
	if err != nil {
		return err
	}

	title, err := GetWithDefault(a.reader, "Title", c.About.Title, a.out)
	if err != nil {
		return err
	}
	description, err := GetWithDefault(a.reader, "Description", c.About.Description, a.out)
	if err != nil {
		return err
	}

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()
	if err := a.svc.Content.UpdateAbout(opCtx, title, description); err != nil {
		return err
	}

	a.println("Content saved.")
	c, err = a.loadContent(ctx)
	if err != nil {
		return err
	}
	renderAbout(a.out, c.About)
	return nil
}

func (a *App) EditStats(ctx context.Context) error {
	c, err := a.loadContent(ctx)
	if err != nil {
		return err
	}

	s := c.Stats
	fields := []struct {
		prompt string
		value  *string
	}{
		{"Years", &s.Years},
		{"Pillars", &s.Pillars},
		{"Youth", &s.Youth},
		{"Committed", &s.Commit},
	}
	for _, f := range fields {
		v, err := GetWithDefault(a.reader, f.prompt, *f.value, a.out)
		if err != nil {
			return err
		}
		*f.value = v
	}

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()
	if err := a.svc.Content.UpdateStats(opCtx, s); err != nil {
		return err
	}

	a.println("Stats saved.")
	c, err = a.loadContent(ctx)
	if err != nil {
		return err
	}
	renderStats(a.out, c.Stats)
	return nil
}

// SetHeroImage embeds the file at path as a data URL.
func (a *App) SetHeroImage(ctx context.Context, path string) error {
	dataURL, err := imageDataURL(path)
	if err != nil {
		return err
	}

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()
	if err := a.svc.Content.SetHeroImage(opCtx, dataURL); err != nil {
		return err
	}

	a.println("Image saved.")
	return a.showHero(ctx)
}

func (a *App) ClearHeroImage(ctx context.Context) error {
	opCtx, cancel := a.opCtx(ctx)
	defer cancel()
	if err := a.svc.Content.ClearHeroImage(opCtx); err != nil {
		return err
	}

	a.println("Image removed.")
	return a.showHero(ctx)
}

// Preview writes a standalone HTML page rendering the current content.
func (a *App) Preview(ctx context.Context, path string) error {
	if path == "" {
		path = defaultPreviewFile
	}

	c, err := a.loadContent(ctx)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create preview: %w", err)
	}
	defer f.Close()

	if err := renderPreview(f, c); err != nil {
		return err
	}

	a.printf("Preview written to %s\n", path)
	return nil
}
