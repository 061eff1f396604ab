package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rio-labs/riogen/internal/defs"
)

// Find locates the root of a Rio project by searching for rio.toml,
// starting at startDir and moving upward. An empty startDir means the
// current working directory.
func Find(startDir string) (string, error) {
	if startDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		startDir = wd
	}

	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	for {
		if info, err := os.Stat(filepath.Join(absDir, defs.RioTOML)); err == nil && !info.IsDir() {
			return absDir, nil
		}

		parent := filepath.Dir(absDir)
		if parent == absDir {
			return "", fmt.Errorf("%w: not in %s or any parent directory", ErrManifestNotFound, startDir)
		}
		absDir = parent
	}
}
