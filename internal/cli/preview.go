package cli

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/dmitrijs2005/siteadmin/internal/models"
)

var previewTemplate = template.Must(template.New("preview").Funcs(template.FuncMap{
	"imageURL": imageURL,
}).Parse(`<!doctype html>
<html><head><meta charset="utf-8"><meta name="viewport" content="width=device-width,initial-scale=1"><title>Preview</title>
<style>body{font-family:Arial,Helvetica,sans-serif;padding:24px;background:#fff;color:#111} .hero{padding:30px;border-radius:8px;background:#f3f4f6;margin-bottom:18px}</style>
</head><body>
<section class="hero">
  <p style="font-weight:600">{{.Hero.Label}}</p>
  <h1>{{.Hero.Title}}</h1>
  <p>{{.Hero.Description}}</p>
  {{- with imageURL .Hero.BackgroundImage}}
  <img src="{{.}}" style="max-width:320px;border-radius:8px">
  {{- end}}
</section>
<section>
  <h2>{{.About.Title}}</h2>
  <p>{{.About.Description}}</p>
</section>
<section>
  <h3>Programs</h3>
  <ul>
  {{- range .Programs}}
    <li><strong>{{.Title}}</strong> - {{.Description}}</li>
  {{- end}}
  </ul>
</section>
<section>
  <h3>Stats</h3>
  <ul>
    <li>Years: {{.Stats.Years}}</li>
    <li>Pillars: {{.Stats.Pillars}}</li>
    <li>Youth: {{.Stats.Youth}}</li>
    <li>Committed: {{.Stats.Commit}}</li>
  </ul>
</section>
</body></html>
`))

// imageURL passes through image data URLs only; anything else is dropped.
func imageURL(img *string) template.URL {
	if img == nil || !strings.HasPrefix(*img, "data:image/") {
		return ""
	}
	return template.URL(*img)
}

func renderPreview(w io.Writer, c *models.SiteContent) error {
	if err := previewTemplate.Execute(w, c); err != nil {
		return fmt.Errorf("render preview: %w", err)
	}
	return nil
}
