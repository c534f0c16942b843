package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ManifestNames are the file names recognised as a paper manifest, in order
// of preference.
var ManifestNames = []string{"aastex.yaml", "aastex.yml", "aastex.json"}

// ErrRootNotFound is returned when no manifest exists in the start directory
// or any of its parents.
var ErrRootNotFound = errors.New("manifest not found")

// FindRoot recursively looks upwards for a paper manifest.
// It returns the absolute directory holding the manifest and the manifest's
// full path.
func FindRoot(startDir string) (dir string, manifest string, err error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", "", err
	}

	dir = abs
	for {
		for _, name := range ManifestNames {
			if hasFile(dir, name) {
				return dir, filepath.Join(dir, name), nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	return "", "", fmt.Errorf("%w above %s", ErrRootNotFound, abs)
}

func hasFile(dir, name string) bool {
	info, err := os.Stat(filepath.Join(dir, name))
	return err == nil && !info.IsDir()
}
