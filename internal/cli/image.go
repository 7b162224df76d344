package cli

import (
	"encoding/base64"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
)

// maxImageSize caps embedded images; the data URL lives inside the content
// record and every export.
const maxImageSize = 5 << 20

// imageDataURL reads an image file and returns it as a base64 data URL.
func imageDataURL(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("read image: %s is empty", path)
	}
	if len(data) > maxImageSize {
		return "", fmt.Errorf("image is %s, limit is %s",
			humanize.IBytes(uint64(len(data))), humanize.IBytes(maxImageSize))
	}

	mt := http.DetectContentType(data)
	if !strings.HasPrefix(mt, "image/") {
		// Sniffing misses SVG; trust the extension for those.
		byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
		if !strings.HasPrefix(byExt, "image/") {
			return "", fmt.Errorf("%s is not an image (%s)", path, mt)
		}
		mt = byExt
	}
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}

	return "data:" + mt + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
