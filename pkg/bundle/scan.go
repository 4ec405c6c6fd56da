package bundle

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Scan walks root recursively and returns every regular file whose name
// ends in ".md", hidden subdirectories included. The result is sorted by
// full path string, which fixes the concatenation order. Sorting happens
// after the walk: WalkDir visits entries in per-directory lexical order,
// which is not the same as lexicographic order of complete paths when a
// file and a directory share a name prefix.
//
// Any traversal error, including permission failures on a subtree, aborts
// the scan; partial results are never returned.
func Scan(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("bundle: scan %s: %w", path, err)
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
