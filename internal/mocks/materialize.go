// Package mocks writes the virtual file sets of a test configuration to
// disk, one directory per resource role, so a task template can be exercised
// locally without the real input artifacts.
package mocks

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// PlaceholderFile is created for roles that declare no files, so every role
// still materializes as a non-empty directory.
const PlaceholderFile = ".placeholder"

// Materialize writes the mock-resource file sets under dir. Nested relative
// paths are allowed; paths that would escape their role directory are
// rejected. Returns the written file paths in sorted order.
func Materialize(dir string, resources map[string]map[string]string) ([]string, error) {
	roles := make([]string, 0, len(resources))
	for role := range resources {
		roles = append(roles, role)
	}
	sort.Strings(roles)

	var written []string
	for _, role := range roles {
		roleDir := filepath.Join(dir, role)
		if err := os.MkdirAll(roleDir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", roleDir, err)
		}

		files := resources[role]
		if len(files) == 0 {
			path := filepath.Join(roleDir, PlaceholderFile)
			if err := os.WriteFile(path, []byte("placeholder\n"), 0o644); err != nil {
				return nil, fmt.Errorf("write %s: %w", path, err)
			}
			written = append(written, path)
			continue
		}

		paths := make([]string, 0, len(files))
		for rel := range files {
			paths = append(paths, rel)
		}
		sort.Strings(paths)

		for _, rel := range paths {
			clean := filepath.Clean(rel)
			if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
				return nil, fmt.Errorf("mock file path %q escapes resource %s", rel, role)
			}
			path := filepath.Join(roleDir, clean)
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return nil, fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
			}
			if err := os.WriteFile(path, []byte(files[rel]), 0o644); err != nil {
				return nil, fmt.Errorf("write %s: %w", path, err)
			}
			written = append(written, path)
		}
	}
	return written, nil
}
