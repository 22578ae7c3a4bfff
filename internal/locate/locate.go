// Package locate discovers skill descriptors on disk.
package locate

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/kennyg/scribe/internal/descriptor"
)

// Discover walks root recursively and returns every skill.json path,
// sorted lexicographically by full path. A directory holding a descriptor
// is still walked for nested units, so a skill may contain sub-skills.
// A missing root yields an empty result, not an error: no skills have
// been authored yet.
func Discover(root string) ([]string, error) {
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil, nil
	}

	var paths []string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() && entry.Name() == descriptor.DescriptorName {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	sort.Strings(paths)
	return paths, nil
}

// Resolve returns the working set for a run. An explicit path must exist
// and is returned as-is; otherwise everything under root is discovered.
func Resolve(root, explicit string) ([]string, error) {
	if explicit == "" {
		return Discover(root)
	}

	if _, err := os.Stat(explicit); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no such descriptor: %s", explicit)
		}
		return nil, fmt.Errorf("cannot access %s: %w", explicit, err)
	}

	return []string{explicit}, nil
}
