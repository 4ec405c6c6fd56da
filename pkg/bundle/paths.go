package bundle

import (
	"path/filepath"
	"strings"
)

// resolvePath returns the canonical absolute form of path, with symlinks
// evaluated. The path itself does not have to exist: for a not-yet-created
// file (the output on a first run) the parent directory is canonicalized
// and the base name reattached. When even the parent cannot be resolved
// the cleaned absolute path is returned, so two spellings of the same
// nonexistent path still compare equal.
func resolvePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}

	dir, base := filepath.Split(abs)
	if resolvedDir, err := filepath.EvalSymlinks(filepath.Clean(dir)); err == nil {
		return filepath.Join(resolvedDir, base), nil
	}

	return abs, nil
}

// displayLabel returns path relative to baseDir when the file lies inside
// it; otherwise the original path unchanged. Labels are not deduplicated.
func displayLabel(path, baseDir string) string {
	rel, err := filepath.Rel(baseDir, path)
	if err != nil {
		return path
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}
