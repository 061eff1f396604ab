package catalog

import (
	"fmt"
	"io/fs"
	"path"

	"gopkg.in/yaml.v3"

	"github.com/rio-labs/riogen/internal/defs"
)

// maxMetaSize caps meta.yaml reads.
const maxMetaSize = 1 << 20

// templateMeta is the decoded form of a template's meta.yaml.
type templateMeta struct {
	Description  string            `yaml:"description"`
	Dependencies map[string]string `yaml:"dependencies"`
	OnAppStart   *string           `yaml:"on_app_start"`
}

// loadMeta reads meta.yaml from a template directory. A missing file yields
// empty metadata.
func loadMeta(fsys fs.FS, dir string) (*templateMeta, error) {
	p := path.Join(dir, defs.MetaYAML)
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		if isNotExist(err) {
			return &templateMeta{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", p, err)
	}
	if len(data) > maxMetaSize {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrInvalidTemplate, p, maxMetaSize)
	}

	var meta templateMeta
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrInvalidTemplate, p, err)
	}
	if meta.OnAppStart != nil && *meta.OnAppStart == "" {
		meta.OnAppStart = nil
	}
	return &meta, nil
}
