// Package models defines the records kept by the site admin: the site
// content singleton, its programs, the admin accounts and the backup
// document that carries both.
package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/siteadmin/internal/common"
	"github.com/google/uuid"
)

// Hero is the top banner of the site.
type Hero struct {
	Label       string `json:"label"`
	Title       string `json:"title"`
	Description string `json:"description"`
	// BackgroundImage is an opaque data URL. The JSON name matches backups
	// exported by earlier versions of the panel.
	BackgroundImage *string `json:"bgBase64"`
}

type About struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Stats are free-form display strings ("20+", "1000s"), not numbers.
type Stats struct {
	Years   string `json:"years"`
	Pillars string `json:"pillars"`
	Youth   string `json:"youth"`
	Commit  string `json:"commit"`
}

// ProgramFields is the editable part of a Program.
type ProgramFields struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type Program struct {
	ID string `json:"id"`
	ProgramFields
}

// SiteContent is the singleton record stored under common.SiteContentKey.
type SiteContent struct {
	Hero     Hero      `json:"hero"`
	About    About     `json:"about"`
	Programs []Program `json:"programs"`
	Stats    Stats     `json:"stats"`
}

// NewID returns a fresh program identifier.
func NewID() string {
	return uuid.NewString()
}

// DefaultContent returns the built-in first-run content. Program ids are
// generated on every call.
func DefaultContent() *SiteContent {
	return &SiteContent{
		Hero: Hero{
			Label:       "Building a Better Future",
			Title:       "Empowering Youth for Sustainable Peace and Social Justice",
			Description: "Since 2002, Never Again Rwanda has been engaging society in embracing peace, human rights, and social justice.",
		},
		About: About{
			Title:       "Our Mission",
			Description: "Never Again Rwanda is a human rights and peacebuilding organization that aims to engage society in embracing peace and social justice.",
		},
		Programs: []Program{
			{ID: NewID(), ProgramFields: ProgramFields{
				Title:       "Peacebuilding",
				Description: "Facilitating dialogue, reconciliation, and conflict resolution.",
			}},
			{ID: NewID(), ProgramFields: ProgramFields{
				Title:       "Governance & Human Rights",
				Description: "Promoting democratic values, civic participation.",
			}},
		},
		Stats: Stats{
			Years:   "20+",
			Pillars: "5",
			Youth:   "1000s",
			Commit:  "100%",
		},
	}
}

// Validate checks that every program has a non-empty id that is unique
// within the collection. Ids are compared exactly, as FindProgram does, so
// ids with surrounding whitespace are rejected.
func (c *SiteContent) Validate() error {
	seen := make(map[string]struct{}, len(c.Programs))
	for n, p := range c.Programs {
		id := p.ID
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("%w: program #%d has no id", common.ErrValidation, n)
		}
		if id != strings.TrimSpace(id) {
			return fmt.Errorf("%w: program id %q has surrounding whitespace", common.ErrValidation, id)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: duplicate program id %q", common.ErrValidation, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// Clone returns a deep copy so callers never alias a stored record.
func (c *SiteContent) Clone() *SiteContent {
	out := *c
	if c.Hero.BackgroundImage != nil {
		img := *c.Hero.BackgroundImage
		out.Hero.BackgroundImage = &img
	}
	if c.Programs != nil {
		out.Programs = make([]Program, len(c.Programs))
		copy(out.Programs, c.Programs)
	}
	return &out
}

// FindProgram returns the index of the program with the given id, or -1.
func (c *SiteContent) FindProgram(id string) int {
	for i, p := range c.Programs {
		if p.ID == id {
			return i
		}
	}
	return -1
}
