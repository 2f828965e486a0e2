// Package result holds a generated opcode file and persists it.
package result

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/oisee/gbopcodes/pkg/inst"
)

// Result is the outcome of one generation run.
type Result struct {
	Unprefixed *inst.Catalog
	CBPrefixed *inst.Catalog
	Data       []byte // rendered file contents
}

// Catalogs returns both catalogs in output order.
func (r *Result) Catalogs() []*inst.Catalog {
	return []*inst.Catalog{r.Unprefixed, r.CBPrefixed}
}

// WriteFile replaces the file at path with the rendered data.
func (r *Result) WriteFile(path string) error {
	return WriteFile(path, r.Data)
}

// Diff compares the file at path with the rendered data.
func (r *Result) Diff(path string) (string, error) {
	return Diff(path, r.Data)
}

// WriteFile atomically replaces path with data: it writes a temporary file
// next to it and renames it into place, so readers never see a partial file.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return err
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer os.Remove(tmp) // no-op after a successful rename

	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Chmod(0o644); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Diff returns a unified diff from the file at path to want, or an empty
// string when they are identical. A missing file compares as empty.
func Diff(path string, want []byte) (string, error) {
	have, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}
	if bytes.Equal(have, want) {
		return "", nil
	}

	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(have)),
		B:        difflib.SplitLines(string(want)),
		FromFile: path,
		ToFile:   path + " (generated)",
		Context:  3,
	})
}
