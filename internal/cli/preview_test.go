package cli

import (
	"bytes"
	"testing"

	"github.com/dmitrijs2005/siteadmin/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPreview_EscapesText(t *testing.T) {
	c := models.DefaultContent()
	c.Hero.Title = `<script>alert(1)</script>`
	img := "data:image/png;base64,AAAA"
	c.Hero.BackgroundImage = &img

	var buf bytes.Buffer
	require.NoError(t, renderPreview(&buf, c))

	html := buf.String()
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, `<img src="data:image/png;base64,AAAA"`)
	assert.Contains(t, html, "Governance &amp; Human Rights")
	assert.Contains(t, html, "Committed: 100%")
}

func TestRenderPreview_DropsNonImageURL(t *testing.T) {
	c := models.DefaultContent()
	bad := "javascript:alert(1)"
	c.Hero.BackgroundImage = &bad

	var buf bytes.Buffer
	require.NoError(t, renderPreview(&buf, c))
	assert.NotContains(t, buf.String(), "<img")
	assert.NotContains(t, buf.String(), "javascript")
}
