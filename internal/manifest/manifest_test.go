package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rio-labs/riogen/internal/template"
	"github.com/rio-labs/riogen/pkg/models"
)

func TestLoad_GeneratedManifest(t *testing.T) {
	fsys, err := template.EmbeddedTemplates()
	require.NoError(t, err)

	ctx := template.NewTemplateContext(
		template.WithProject("Shop Front"),
		template.WithAppType(models.AppTypeApp),
	)
	content, err := template.NewRenderer(fsys).Render(template.RioTOMLTemplate, ctx)
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rio.toml"), content, 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, models.AppTypeApp, cfg.App.AppType)
	assert.Equal(t, "shop_front", cfg.App.MainModule)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.ErrorIs(t, err, ErrManifestNotFound)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantErr    error
		wantType   models.AppType
		wantModule string
	}{
		{
			name:       "website",
			input:      "[app]\napp_type = \"website\"\nmain_module = \"blog\"\n",
			wantType:   models.AppTypeWebsite,
			wantModule: "blog",
		},
		{
			name:       "app type defaults to website",
			input:      "[app]\nmain_module = \"blog\"\n",
			wantType:   models.AppTypeWebsite,
			wantModule: "blog",
		},
		{
			name:    "missing main module",
			input:   "[app]\napp_type = \"app\"\n",
			wantErr: ErrInvalidManifest,
		},
		{
			name:    "unknown app type",
			input:   "[app]\napp_type = \"desktop\"\nmain_module = \"blog\"\n",
			wantErr: ErrInvalidManifest,
		},
		{
			name:    "syntax error",
			input:   "[app\nmain_module = \"blog\"\n",
			wantErr: ErrInvalidManifest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.input))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, cfg.App.AppType)
			assert.Equal(t, tt.wantModule, cfg.App.MainModule)
		})
	}
}

func TestParse_SyntaxErrorPosition(t *testing.T) {
	_, err := Parse([]byte("[app]\nmain_module = \n"))
	require.ErrorIs(t, err, ErrInvalidManifest)
	assert.Contains(t, err.Error(), "line 2")
}
