// Package writer serializes theme documents to disk.
package writer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/tokyo-night-lod/tnl/internal/log"
	"github.com/tokyo-night-lod/tnl/internal/theme"
)

const (
	DefaultDir = "themes"
	suffix     = "-color-theme.json"
)

// Writer writes theme files below Dir on Fs.
type Writer struct {
	Fs  afero.Fs
	Dir string
}

// New returns a Writer for the OS filesystem. An empty dir means DefaultDir.
func New(dir string) *Writer {
	return NewWithFs(afero.NewOsFs(), dir)
}

func NewWithFs(fs afero.Fs, dir string) *Writer {
	if dir == "" {
		dir = DefaultDir
	}
	return &Writer{Fs: fs, Dir: dir}
}

// Path is the file a theme with the given slug is written to.
func (w *Writer) Path(slug string) string {
	return filepath.Join(w.Dir, slug+suffix)
}

// Encode renders doc the way VS Code theme files are laid out: two space
// indentation, no HTML escaping, trailing newline.
func Encode(doc *theme.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode theme %q: %w", doc.Name, err)
	}
	return buf.Bytes(), nil
}

// Write encodes doc into <Dir>/<slug>-color-theme.json and returns the path.
func (w *Writer) Write(slug string, doc *theme.Document) (string, error) {
	data, err := Encode(doc)
	if err != nil {
		return "", err
	}
	if err := w.Fs.MkdirAll(w.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", w.Dir, err)
	}
	path := w.Path(slug)
	if err := afero.WriteFile(w.Fs, path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	log.Infof("Wrote %s (%d colors, %d token rules)", path, len(doc.Colors), len(doc.TokenColors))
	return path, nil
}

// WriteFile writes doc to an explicit path, used when rewriting a file that
// was validated in place.
func (w *Writer) WriteFile(path string, doc *theme.Document) error {
	data, err := Encode(doc)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := w.Fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := afero.WriteFile(w.Fs, path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	log.Debugf("Rewrote %s", path)
	return nil
}

// Read loads and decodes a theme file.
func (w *Writer) Read(path string) (*theme.Document, error) {
	data, err := afero.ReadFile(w.Fs, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	doc, err := theme.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
