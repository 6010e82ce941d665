package render

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/dtroode/gophframe/internal/logger"
	"github.com/dtroode/gophframe/internal/model"
)

// ErrFontUnavailable is returned by Preload for families not found on disk.
var ErrFontUnavailable = errors.New("font unavailable")

type faceKey struct {
	family string
	bold   bool
	italic bool
}

func keyFor(style model.FontStyle) faceKey {
	return faceKey{family: normalizeFamily(style.Family), bold: style.Bold(), italic: style.Italic()}
}

func normalizeFamily(family string) string {
	return strings.ToLower(strings.Join(strings.Fields(family), " "))
}

var substitutes = sync.OnceValue(func() map[faceKey]*opentype.Font {
	parse := func(b []byte) *opentype.Font {
		f, err := opentype.Parse(b)
		if err != nil {
			panic(fmt.Sprintf("parse embedded go font: %v", err))
		}
		return f
	}
	return map[faceKey]*opentype.Font{
		{bold: false, italic: false}: parse(goregular.TTF),
		{bold: true, italic: false}:  parse(gobold.TTF),
		{bold: false, italic: true}:  parse(goitalic.TTF),
		{bold: true, italic: true}:   parse(gobolditalic.TTF),
	}
})

// FontBook finds theme font families in a set of directories and falls back
// to the embedded Go fonts when a family is not installed. Parsed fonts are
// shared; faces are not safe for concurrent use, so every Face call returns
// a new one.
type FontBook struct {
	dirs []string
	log  *logger.Logger

	scanMu  sync.Mutex
	scanned bool

	mu    sync.RWMutex
	fonts map[faceKey]*opentype.Font
}

// NewFontBook creates a font book searching dirs. Directories that do not
// exist are skipped.
func NewFontBook(dirs []string, log *logger.Logger) *FontBook {
	return &FontBook{
		dirs:  dirs,
		log:   log,
		fonts: make(map[faceKey]*opentype.Font),
	}
}

// Preload makes sure the families of styles are indexed. It returns an error
// joining every family that could not be found; callers treat it as advisory
// since Face always has a substitute.
func (b *FontBook) Preload(ctx context.Context, styles ...model.FontStyle) error {
	if err := b.ensureScanned(ctx); err != nil {
		return err
	}

	var errs []error
	for _, s := range styles {
		if _, ok := b.lookup(keyFor(s)); !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrFontUnavailable, s))
		}
	}
	return errors.Join(errs...)
}

// Face returns a face for style. substituted is true when the requested
// family or variant was not available and another face was used.
func (b *FontBook) Face(style model.FontStyle) (face font.Face, substituted bool) {
	size := float64(style.Size)
	if size <= 0 {
		size = 16
		substituted = true
	}

	f, ok := b.lookup(keyFor(style))
	if !ok {
		f = substitutes()[faceKey{bold: style.Bold(), italic: style.Italic()}]
		substituted = true
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13, true
	}
	return face, substituted
}

// SansFace returns the embedded sans serif regular face at size px.
func SansFace(size float64) font.Face {
	face, err := opentype.NewFace(substitutes()[faceKey{}], &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}

// lookup returns the exact variant, or the regular face of the same family.
func (b *FontBook) lookup(k faceKey) (*opentype.Font, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if f, ok := b.fonts[k]; ok {
		return f, true
	}
	for _, alt := range []faceKey{
		{family: k.family, bold: k.bold},
		{family: k.family, italic: k.italic},
		{family: k.family},
	} {
		if f, ok := b.fonts[alt]; ok {
			return f, true
		}
	}
	return nil, false
}

// ensureScanned indexes the font directories once. An interrupted scan is
// not recorded, so the next caller scans again.
func (b *FontBook) ensureScanned(ctx context.Context) error {
	b.scanMu.Lock()
	defer b.scanMu.Unlock()

	if b.scanned {
		return nil
	}
	if err := b.scan(ctx); err != nil {
		return err
	}
	b.scanned = true
	return nil
}

func (b *FontBook) scan(ctx context.Context) error {
	found := 0
	for _, dir := range b.dirs {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
					return filepath.SkipDir
				}
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			ext := strings.ToLower(filepath.Ext(path))
			if ext != ".ttf" && ext != ".otf" {
				return nil
			}
			if b.index(path) {
				found++
			}
			return nil
		})
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			b.log.Warn("font directory scan failed", "dir", dir, "error", err)
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	b.log.Debug("font directories scanned", "dirs", b.dirs, "faces", found)
	return nil
}

func (b *FontBook) index(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		b.log.Debug("skipping unreadable font", "path", path, "error", err)
		return false
	}
	f, err := opentype.Parse(data)
	if err != nil {
		b.log.Debug("skipping unparsable font", "path", path, "error", err)
		return false
	}

	var buf sfnt.Buffer
	family, err := f.Name(&buf, sfnt.NameIDFamily)
	if err != nil || family == "" {
		return false
	}
	sub, _ := f.Name(&buf, sfnt.NameIDSubfamily)
	sub = strings.ToLower(sub)

	k := faceKey{
		family: normalizeFamily(family),
		bold:   strings.Contains(sub, "bold"),
		italic: strings.Contains(sub, "italic") || strings.Contains(sub, "oblique"),
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, dup := b.fonts[k]; dup {
		return false
	}
	b.fonts[k] = f
	return true
}
