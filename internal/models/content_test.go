package models

import (
	"encoding/json"
	"testing"

	"github.com/dmitrijs2005/siteadmin/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultContent_HasUniqueProgramIDs(t *testing.T) {
	c := DefaultContent()
	require.NoError(t, c.Validate())
	require.Len(t, c.Programs, 2)
	assert.NotEqual(t, c.Programs[0].ID, c.Programs[1].ID)
	assert.Equal(t, "20+", c.Stats.Years)
	assert.Nil(t, c.Hero.BackgroundImage)
}

func TestValidate_RejectsMissingAndDuplicateIDs(t *testing.T) {
	c := DefaultContent()
	c.Programs[1].ID = ""
	require.ErrorIs(t, c.Validate(), common.ErrValidation)

	c = DefaultContent()
	c.Programs[1].ID = c.Programs[0].ID
	require.ErrorIs(t, c.Validate(), common.ErrValidation)

	c = DefaultContent()
	c.Programs[1].ID = "   "
	require.ErrorIs(t, c.Validate(), common.ErrValidation)
}

func TestValidate_IDsMatchFindProgram(t *testing.T) {
	c := DefaultContent()
	c.Programs[0].ID = " p1"
	require.ErrorIs(t, c.Validate(), common.ErrValidation)

	c = DefaultContent()
	c.Programs[0].ID = "p1"
	c.Programs[1].ID = "P1"
	require.NoError(t, c.Validate())
	assert.Equal(t, 0, c.FindProgram("p1"))
	assert.Equal(t, 1, c.FindProgram("P1"))
}

func TestSiteContent_JSONLayout(t *testing.T) {
	img := "data:image/png;base64,AAAA"
	c := &SiteContent{
		Hero:     Hero{Label: "l", Title: "t", Description: "d", BackgroundImage: &img},
		Programs: []Program{{ID: "p1", ProgramFields: ProgramFields{Title: "T", Description: "D", Icon: "<svg/>"}}},
	}
	b, err := json.Marshal(c)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))

	hero := raw["hero"].(map[string]any)
	assert.Equal(t, img, hero["bgBase64"])

	programs := raw["programs"].([]any)
	p := programs[0].(map[string]any)
	assert.Equal(t, "p1", p["id"])
	assert.Equal(t, "T", p["title"])
	assert.Equal(t, "<svg/>", p["icon"])
}

func TestClone_DoesNotAlias(t *testing.T) {
	img := "data:x"
	c := DefaultContent()
	c.Hero.BackgroundImage = &img

	cp := c.Clone()
	cp.Programs[0].Title = "changed"
	*cp.Hero.BackgroundImage = "other"

	assert.Equal(t, "Peacebuilding", c.Programs[0].Title)
	assert.Equal(t, "data:x", *c.Hero.BackgroundImage)
}

func TestFindProgram(t *testing.T) {
	c := DefaultContent()
	assert.Equal(t, 1, c.FindProgram(c.Programs[1].ID))
	assert.Equal(t, -1, c.FindProgram("missing"))
}
