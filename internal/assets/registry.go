// Package assets loads the fonts, templates and icon sprites used by stat cards.
//
// A Registry is built once at startup and is read-only afterwards, so it is
// safe to share between concurrent renders without locking.
package assets

import (
	"fmt"
	"image"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/sync/errgroup"

	"github.com/listenupapp/statcard/internal/media/images"
)

// Built-in font names.
const (
	FontRegular = "regular"
	FontBold    = "bold"
)

// fontDir is the asset subdirectory holding TrueType and OpenType fonts.
const fontDir = "fonts"

// Registry resolves fonts by name and images by slash separated key.
type Registry struct {
	fonts   map[string]*opentype.Font
	images  map[string]image.Image
	regular *opentype.Font
	bold    *opentype.Font
}

// NewRegistry builds a registry from already decoded assets. The maps are
// copied. The Go fonts back any font name that is not present.
func NewRegistry(fonts map[string]*opentype.Font, imgs map[string]image.Image) *Registry {
	r := &Registry{
		fonts:  make(map[string]*opentype.Font, len(fonts)),
		images: make(map[string]image.Image, len(imgs)),
	}
	for name, f := range fonts {
		if f != nil {
			r.fonts[strings.ToLower(name)] = f
		}
	}
	for key, img := range imgs {
		if img != nil {
			r.images[normalizeKey(key)] = img
		}
	}
	// The embedded Go fonts always parse. A nil fallback still renders with
	// the bitmap face.
	r.regular, _ = opentype.Parse(goregular.TTF)
	r.bold, _ = opentype.Parse(gobold.TTF)
	return r
}

// Font returns the named font. Unknown names fall back to the built-in bold
// face when the name mentions bold, and to the regular face otherwise.
func (r *Registry) Font(name string) *opentype.Font {
	name = strings.ToLower(name)
	if f, ok := r.fonts[name]; ok {
		return f
	}
	if strings.Contains(name, FontBold) {
		return r.bold
	}
	return r.regular
}

// Image returns the image stored under key, e.g. "skills/attack".
func (r *Registry) Image(key string) (image.Image, bool) {
	img, ok := r.images[normalizeKey(key)]
	return img, ok
}

// Counts returns the number of loaded fonts and images, built-ins excluded.
func (r *Registry) Counts() (fonts, imgs int) {
	return len(r.fonts), len(r.images)
}

func normalizeKey(key string) string {
	key = strings.ToLower(strings.Trim(path.Clean("/"+key), "/"))
	return strings.TrimSuffix(key, path.Ext(key))
}

// Load walks root and decodes every font under fonts/ and every image
// elsewhere. Files that fail to decode are logged and skipped, since a
// missing asset only drops one visual element. An empty root yields the
// built-in fonts only.
func Load(root string, logger *slog.Logger) (*Registry, error) {
	if root == "" {
		return NewRegistry(nil, nil), nil
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat assets root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("assets root %s is not a directory", root)
	}

	var fontFiles, imageFiles []string
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		ext := strings.ToLower(path.Ext(rel))
		switch {
		case strings.HasPrefix(rel, fontDir+"/") && (ext == ".ttf" || ext == ".otf"):
			fontFiles = append(fontFiles, rel)
		case images.Extensions[ext]:
			imageFiles = append(imageFiles, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk assets: %w", err)
	}

	fonts := make(map[string]*opentype.Font, len(fontFiles))
	for _, rel := range fontFiles {
		data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil {
			logger.Warn("failed to read font", "path", rel, "error", err)
			continue
		}
		f, err := opentype.Parse(data)
		if err != nil {
			logger.Warn("failed to parse font", "path", rel, "error", err)
			continue
		}
		name := strings.TrimSuffix(path.Base(rel), path.Ext(rel))
		fonts[name] = f
	}

	var (
		mu   sync.Mutex
		imgs = make(map[string]image.Image, len(imageFiles))
		g    errgroup.Group
	)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, rel := range imageFiles {
		g.Go(func() error {
			img, err := images.DecodeFile(filepath.Join(root, filepath.FromSlash(rel)))
			if err != nil {
				logger.Warn("skipping asset", "path", rel, "error", err)
				return nil
			}
			mu.Lock()
			imgs[rel] = img
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	reg := NewRegistry(fonts, imgs)
	logger.Info("assets loaded",
		"root", root,
		"fonts", len(reg.fonts),
		"images", len(reg.images),
	)
	return reg, nil
}
