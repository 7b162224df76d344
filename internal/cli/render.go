package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/dmitrijs2005/siteadmin/internal/models"
)

func renderContent(w io.Writer, c *models.SiteContent) {
	renderHero(w, c.Hero)
	fmt.Fprintln(w)
	renderAbout(w, c.About)
	fmt.Fprintln(w)
	renderPrograms(w, c.Programs)
	fmt.Fprintln(w)
	renderStats(w, c.Stats)
}

func renderHero(w io.Writer, h models.Hero) {
	fmt.Fprintln(w, "== Hero ==")
	fmt.Fprintf(w, "Label:       %s\n", h.Label)
	fmt.Fprintf(w, "Title:       %s\n", h.Title)
	fmt.Fprintf(w, "Description: %s\n", h.Description)
	fmt.Fprintf(w, "Image:       %s\n", describeImage(h.BackgroundImage))
}

func renderAbout(w io.Writer, a models.About) {
	fmt.Fprintln(w, "== About ==")
	fmt.Fprintf(w, "Title:       %s\n", a.Title)
	fmt.Fprintf(w, "Description: %s\n", a.Description)
}

func renderStats(w io.Writer, s models.Stats) {
	fmt.Fprintln(w, "== Stats ==")
	fmt.Fprintf(w, "Years:     %s\n", s.Years)
	fmt.Fprintf(w, "Pillars:   %s\n", s.Pillars)
	fmt.Fprintf(w, "Youth:     %s\n", s.Youth)
	fmt.Fprintf(w, "Committed: %s\n", s.Commit)
}

func renderPrograms(w io.Writer, programs []models.Program) {
	fmt.Fprintf(w, "== Programs (%d) ==\n", len(programs))
	if len(programs) == 0 {
		fmt.Fprintln(w, "No programs.")
		return
	}
	for _, p := range programs {
		line := fmt.Sprintf("%s  %s", p.ID, p.Title)
		if p.Description != "" {
			line += " - " + p.Description
		}
		if p.Icon != "" {
			line += " [" + p.Icon + "]"
		}
		fmt.Fprintln(w, line)
	}
}

// renderAdmins lists emails only; encoded passwords are never printed.
func renderAdmins(w io.Writer, admins []models.Admin) {
	fmt.Fprintf(w, "== Admins (%d) ==\n", len(admins))
	for _, a := range admins {
		fmt.Fprintln(w, a.Email)
	}
}

func describeImage(img *string) string {
	if img == nil || *img == "" {
		return "(none)"
	}
	mime := "unknown"
	if rest, ok := strings.CutPrefix(*img, "data:"); ok {
		if i := strings.IndexAny(rest, ";,"); i > 0 {
			mime = rest[:i]
		}
	}
	return fmt.Sprintf("%s, %s embedded", mime, humanize.Bytes(uint64(len(*img))))
}
