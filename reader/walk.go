package reader

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// Walk enumerates candidate files under root.
//
// Paths are returned relative to root, slash-separated, in lexical order, so
// repeated walks of the same tree yield the same sequence regardless of the
// underlying filesystem's readdir order. Hidden files and directories
// (leading dot) are skipped.
func Walk(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == root {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	return paths, nil
}
