// Package drawings ships sample turtle scripts inside the binary.
package drawings

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"
)

// Ext is the extension of turtle scripts.
const Ext = ".turtle"

//go:embed *.turtle
var DrawingsFS embed.FS

// Load reads name from disk, falling back to the embedded drawing of the
// same base name. The extension is optional for embedded drawings.
func Load(name string) ([]byte, error) {
	data, err := os.ReadFile(name)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	if embedded, ok := lookup(name); ok {
		return fs.ReadFile(DrawingsFS, embedded)
	}
	return nil, fmt.Errorf("drawings: %s: %w", name, fs.ErrNotExist)
}

// OnDisk reports whether name refers to a file rather than an embedded
// drawing.
func OnDisk(name string) bool {
	info, err := os.Stat(name)
	return err == nil && !info.IsDir()
}

// Names lists the embedded drawings without their extension.
func Names() []string {
	entries, err := fs.ReadDir(DrawingsFS, ".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), Ext))
	}
	slices.Sort(names)
	return names
}

func lookup(name string) (string, bool) {
	clean := path.Base(strings.ReplaceAll(name, "\\", "/"))
	if !strings.HasSuffix(clean, Ext) {
		clean += Ext
	}
	if _, err := fs.Stat(DrawingsFS, clean); err != nil {
		return "", false
	}
	return clean, true
}
