package icons

import (
	"fmt"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// DefaultDir is where icon assets are looked up when no directory is configured.
const DefaultDir = "assets/png"

// IDFromFilename returns the icon id for an asset file: the base name up to
// its first dot, so "clearsky_day.png" and "clearsky_day.v2.png" both map to
// "clearsky_day".
func IDFromFilename(name string) string {
	base := filepath.Base(name)
	if i := strings.IndexByte(base, '.'); i >= 0 {
		return base[:i]
	}
	return base
}

// LoadDir decodes every image file in dir into a catalog. Files that cannot
// be decoded are skipped with a warning. When two files share an id, the
// first in directory order is kept.
func LoadDir(dir string, logger *slog.Logger) (*Catalog, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if strings.TrimSpace(dir) == "" {
		dir = DefaultDir
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read icon dir: %w", err)
	}

	var entries []Entry
	seen := make(map[string]string, len(dirEntries))
	for _, de := range dirEntries {
		if !de.Type().IsRegular() {
			continue
		}
		id := IDFromFilename(de.Name())
		if id == "" {
			continue
		}
		if prev, ok := seen[id]; ok {
			logger.Warn("duplicate icon id", "id", id, "kept", prev, "skipped", de.Name())
			continue
		}

		path := filepath.Join(dir, de.Name())
		img, err := imaging.Open(path)
		if err != nil {
			logger.Warn("skipping icon", "path", path, "error", err)
			continue
		}
		seen[id] = de.Name()
		entries = append(entries, Entry{ID: id, Image: img})
	}

	logger.Debug("icons loaded", "dir", dir, "count", len(entries))
	return NewCatalog(entries...), nil
}
