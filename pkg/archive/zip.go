// Package archive packs a generated workspace into a downloadable zip.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// WriteTo writes a zip of every file under dir to w. Entry names are
// slash-separated paths relative to dir, so the archive unpacks to the same
// layout the workspace has on disk.
func WriteTo(dir string, w io.Writer) error {
	zw := zip.NewWriter(w)

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		entry, err := zw.Create(filepath.ToSlash(rel))
		if err != nil {
			return err
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		_, err = io.Copy(entry, f)
		return err
	})
	if err != nil {
		zw.Close()
		return fmt.Errorf("failed to pack %s: %w", dir, err)
	}

	return zw.Close()
}

// Pack creates "{base}.zip" in the current working directory and returns
// the archive file name. The workspace itself is left untouched either way.
func Pack(dir string) (string, error) {
	name := filepath.Base(filepath.Clean(dir)) + ".zip"

	f, err := os.Create(name)
	if err != nil {
		return "", fmt.Errorf("failed to create archive file: %w", err)
	}
	defer f.Close()

	if err := WriteTo(dir, f); err != nil {
		return "", err
	}
	return name, nil
}
