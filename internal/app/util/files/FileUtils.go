package files

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ignoredExtensions marks partial or temporary-write files left behind by
// the recorder; they are never import candidates.
var ignoredExtensions = map[string]bool{
	".tmp":  true,
	".part": true,
}

// FindWavFiles returns all .wav files under root, recursively, sorted
// lexicographically by path so repeated runs process files in the same
// order. A missing root yields an empty result, not an error.
func FindWavFiles(root string) ([]string, error) {
	var found []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ignoredExtensions[ext] || ext != ".wav" {
			return nil
		}
		found = append(found, path)
		return nil
	})
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	sort.Strings(found)
	return found, nil
}

// CheckAndCreateDirectory creates dir and any missing parents.
func CheckAndCreateDirectory(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// PathWithin reports whether path lies inside root. It resolves the
// relation structurally, so a sibling directory that merely shares root as
// a string prefix does not count as contained.
func PathWithin(root, path string) bool {
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(path))
	if err != nil {
		return false
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return false
	}
	return !filepath.IsAbs(rel)
}
