package cli

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/siteadmin/internal/backup"
	"github.com/dmitrijs2005/siteadmin/internal/common"
	"github.com/dmitrijs2005/siteadmin/internal/cryptox"
	"github.com/dmitrijs2005/siteadmin/internal/logging"
	"github.com/dmitrijs2005/siteadmin/internal/repositories/accounts"
	"github.com/dmitrijs2005/siteadmin/internal/repositories/content"
	"github.com/dmitrijs2005/siteadmin/internal/repositories/records"
	"github.com/dmitrijs2005/siteadmin/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	app   *App
	out   *bytes.Buffer
	store *records.MemoryRepository
	dir   string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	withTerminal(t, false, nil)

	store := records.NewMemoryRepository()
	scheme := cryptox.Argon2idScheme{Time: 1, Memory: 1024, Threads: 1, KeyLen: 32, SaltLen: 16}
	log := logging.Nop()
	c := content.NewRepository(store)
	a := accounts.NewRepository(store, scheme)

	dir := t.TempDir()
	out := &bytes.Buffer{}
	app := &App{
		svc: Services{
			Auth:     services.NewAuthService(a, log),
			Programs: services.NewProgramService(c, log),
			Admins:   services.NewAdminService(a, scheme, log),
			Content:  services.NewContentService(c, log),
			Backup:   services.NewBackupService(store, c, a, log),
		},
		target:  backup.NewFileTarget(dir),
		logger:  log,
		timeout: time.Second,
		out:     out,
	}
	return &harness{app: app, out: out, store: store, dir: dir}
}

// session feeds lines to the console as if typed and returns its output.
func (h *harness) session(t *testing.T, lines ...string) string {
	t.Helper()
	h.out.Reset()
	h.app.reader = bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
	runREPL(context.Background(), h.app, h.app.status, h.app.reader, h.out)
	return h.out.String()
}

func login(lines ...string) []string {
	return append([]string{"login", "Admin1@Site.Test", "admin123"}, lines...)
}

func TestApp_LoginFailureAndSuccess(t *testing.T) {
	h := newHarness(t)

	out := h.session(t, "login", "admin1@site.test", "wrong", "show")
	assert.Contains(t, out, "Invalid credentials. For demo, try admin1@site.test / admin123")
	assert.Contains(t, out, "Please log in first.")

	out = h.session(t, login("whoami", "show")...)
	assert.Contains(t, out, "Signed in as admin1@site.test.")
	assert.Contains(t, out, "admin1@site.test, signed in")
	assert.Contains(t, out, "Empowering Youth for Sustainable Peace and Social Justice")
	assert.Contains(t, out, "siteadmin (admin1@site.test)>")
}

func TestApp_EditHeroKeepsBlankFields(t *testing.T) {
	h := newHarness(t)

	out := h.session(t, login("hero", "New label", "", "-")...)
	assert.Contains(t, out, "Content saved.")
	assert.Contains(t, out, "Label:       New label")
	assert.Contains(t, out, "Title:       Empowering Youth")

	c, err := h.app.svc.Content.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "New label", c.Hero.Label)
	assert.Empty(t, c.Hero.Description)
}

func TestApp_StatsAndAbout(t *testing.T) {
	h := newHarness(t)

	out := h.session(t, login(
		"stats", "25+", "", "", "",
		"about", "Who we are", "",
	)...)
	assert.Contains(t, out, "Stats saved.")
	assert.Contains(t, out, "Years:     25+")
	assert.Contains(t, out, "Title:       Who we are")
}

func TestApp_ProgramLifecycle(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	out := h.session(t, login("addprogram", "Youth Clubs", "Weekly meetups", "star")...)
	assert.Contains(t, out, "Program added:")
	assert.Contains(t, out, "== Programs (3) ==")

	list, err := h.app.svc.Programs.List(ctx)
	require.NoError(t, err)
	id := list[2].ID

	out = h.session(t, login("editprogram "+id, "Youth Clubs 2", "", "")...)
	assert.Contains(t, out, "Program updated.")
	assert.Contains(t, out, "Youth Clubs 2 - Weekly meetups [star]")

	out = h.session(t, login("editprogram nope")...)
	assert.Contains(t, out, "Program not found.")

	out = h.session(t, login("delprogram "+id, "n")...)
	assert.Contains(t, out, "Cancelled.")

	out = h.session(t, login("delprogram "+id, "y", "delprogram "+id, "y")...)
	assert.Contains(t, out, "Program deleted.")
	assert.Contains(t, out, "== Programs (2) ==")
	assert.Contains(t, out, "Program not found.")
}

func TestApp_AdminLifecycle(t *testing.T) {
	h := newHarness(t)

	out := h.session(t, login(
		"addadmin", "", "",
		"addadmin", "ADMIN2@site.test", "x",
		"addadmin", "third@site.test", "pw3",
	)...)
	assert.Contains(t, out, "Enter email and password.")
	assert.Contains(t, out, "User already exists.")
	assert.Contains(t, out, "== Admins (3) ==")
	assert.NotContains(t, out, "pw3")

	out = h.session(t, login("passwd third@site.test", "pw4", "passwd ghost@site.test", "x")...)
	assert.Contains(t, out, "Password changed.")
	assert.Contains(t, out, "Admin not found.")

	out = h.session(t, "login", "third@site.test", "pw4")
	assert.Contains(t, out, "Signed in as third@site.test.")

	out = h.session(t, login(
		"deladmin admin2@site.test", "y",
		"deladmin third@site.test", "yes",
		"deladmin admin1@site.test", "y",
	)...)
	assert.Contains(t, out, "== Admins (1) ==")
	assert.Contains(t, out, "Cannot remove the last admin account.")
}

func TestApp_ExportImport(t *testing.T) {
	h := newHarness(t)

	out := h.session(t, login("export")...)
	path := filepath.Join(h.dir, common.BackupFileName)
	assert.Contains(t, out, "Backup written to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"exportedAt"`)

	edited := strings.Replace(string(data), "Our Mission", "Imported Mission", 1)
	require.NoError(t, os.WriteFile(path, []byte(edited), 0o600))

	out = h.session(t, login("import")...)
	assert.Contains(t, out, "Import successful.")
	assert.Contains(t, out, "Imported Mission")
	assert.Contains(t, out, "== Admins (2) ==")
}

func TestApp_ImportSignedOutAndInvalid(t *testing.T) {
	h := newHarness(t)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"content":`), 0o600))
	good := filepath.Join(t.TempDir(), "good.json")
	require.NoError(t, os.WriteFile(good, []byte(`{"users":[{"email":"solo@site.test","pwd":"c29sbw=="}]}`), 0o600))

	out := h.session(t, "import "+bad, "import missing.json", "import "+good, "login", "solo@site.test", "solo")
	assert.Contains(t, out, "Invalid JSON file.")
	assert.Contains(t, out, "Backup file not found.")
	assert.Contains(t, out, "Import successful.")
	assert.Contains(t, out, "Signed in as solo@site.test.")
}

func TestApp_HeroImageAndPreview(t *testing.T) {
	h := newHarness(t)
	img := writeFile(t, "hero.png", pngHeader)
	page := filepath.Join(t.TempDir(), "p.html")

	out := h.session(t, login("heroimage "+img, "preview "+page)...)
	assert.Contains(t, out, "Image saved.")
	assert.Contains(t, out, "image/png")
	assert.Contains(t, out, "Preview written to "+page)

	html, err := os.ReadFile(page)
	require.NoError(t, err)
	assert.Contains(t, string(html), "data:image/png;base64,")

	out = h.session(t, login("clearimage")...)
	assert.Contains(t, out, "Image removed.")
	assert.Contains(t, out, "Image:       (none)")
}

func TestApp_ResetSignsOut(t *testing.T) {
	h := newHarness(t)

	out := h.session(t, login("addadmin", "x@site.test", "x", "reset", "y", "admins")...)
	assert.Contains(t, out, "Records reset to defaults.")
	assert.Contains(t, out, "Signed out.")
	assert.Contains(t, out, "Please log in first.")

	admins, err := h.app.svc.Admins.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, admins, 2)
}
