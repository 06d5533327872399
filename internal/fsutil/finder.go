// Package fsutil provides file system utility functions.
package fsutil

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
)

// FindScripts recursively searches the given root path for files ending
// with any of the specified extensions and returns their full paths in
// walk order.
func FindScripts(rootPath string, extensions ...string) ([]string, error) {
	if len(extensions) == 0 {
		return nil, errors.New("at least one script extension is required")
	}

	var scripts []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		for _, ext := range extensions {
			if strings.HasSuffix(d.Name(), ext) {
				scripts = append(scripts, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return scripts, nil
}
