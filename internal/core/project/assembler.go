package project

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rio-labs/riogen/internal/defs"
	"github.com/rio-labs/riogen/internal/naming"
	"github.com/rio-labs/riogen/internal/snippet"
	"github.com/rio-labs/riogen/internal/template"
	"github.com/rio-labs/riogen/internal/theme"
	"github.com/rio-labs/riogen/pkg/models"
)

// CreateOptions configures a single project creation.
type CreateOptions struct {
	ParentDir string                   // Directory the project directory is created in.
	RawName   string                   // Human-supplied project name, e.g. "My Cool App".
	AppType   models.AppType           // "app" or "website".
	Template  *snippet.ProjectTemplate // Template to instantiate.

	// OnStage, if set, is called each time the run enters a new stage.
	OnStage func(Stage)
}

// CreateResult summarizes a successful project creation.
type CreateResult struct {
	ProjectDir      string   // Absolute path of the new project.
	ModuleName      string   // Python module name, e.g. "my_cool_app".
	DirectoryName   string   // Project directory name, e.g. "my-cool-app".
	AppType         models.AppType
	TemplateName    string
	CreatedDirs     []string // Relative to ProjectDir, slash-separated.
	CreatedFiles    []string // Relative to ProjectDir, slash-separated.
	HasDependencies bool     // Whether requirements.txt was written.
	Stage           Stage    // StageDone on success.
}

// Assembler instantiates project templates on disk.
type Assembler interface {
	// Create writes a new project for the given template. The project
	// directory must be empty or absent. Files written before a failure
	// are left in place.
	Create(opts CreateOptions) (*CreateResult, error)
}

// projectAssembler is the concrete implementation of Assembler.
type projectAssembler struct {
	renderer template.Renderer
	theme    theme.Theme
	logger   *slog.Logger
}

// NewAssembler creates an Assembler. The renderer executes the README,
// rio.toml and __main__.py templates; the theme colors the generated app.
func NewAssembler(renderer template.Renderer, th theme.Theme, logger *slog.Logger) Assembler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &projectAssembler{
		renderer: renderer,
		theme:    th,
		logger:   logger,
	}
}

// run tracks the state of one Create call.
type run struct {
	opts      CreateOptions
	tmpl      *snippet.ProjectTemplate
	moduleDir string // Relative to the project dir.
	result    *CreateResult
	logger    *slog.Logger
}

// @MX:ANCHOR: [AUTO] Create is the single entry point for project generation
// @MX:REASON: called by the create command and every end-to-end test
func (a *projectAssembler) Create(opts CreateOptions) (*CreateResult, error) {
	r := &run{
		opts:   opts,
		tmpl:   opts.Template,
		result: &CreateResult{AppType: opts.AppType, Stage: StageValidating},
		logger: a.logger,
	}

	steps := []struct {
		stage Stage
		fn    func() error
	}{
		{StageValidating, r.validate},
		{StageCreatingDirectories, r.createDirectories},
		{StageCopyingAssets, r.copyAssets},
		{StageWritingComponents, func() error { return r.writeComponents(defs.ComponentsDir, r.tmpl.ComponentSnippets) }},
		{StageWritingPages, func() error { return r.writeComponents(defs.PagesDir, r.tmpl.PageSnippets) }},
		{StageWritingRootFiles, func() error { return a.writeRootFiles(r) }},
	}

	for _, step := range steps {
		r.enter(step.stage)
		if err := step.fn(); err != nil {
			return nil, r.fail(err)
		}
	}
	r.enter(StageDone)

	a.logger.Info("project created",
		"dir", r.result.ProjectDir,
		"module", r.result.ModuleName,
		"template", r.result.TemplateName,
		"files", len(r.result.CreatedFiles),
	)
	return r.result, nil
}

// enter moves the run to the next stage.
func (r *run) enter(s Stage) {
	if s < r.result.Stage {
		panic(fmt.Sprintf("project: stage moved backward from %s to %s", r.result.Stage, s))
	}
	r.result.Stage = s
	r.logger.Debug("entering stage", "stage", s.String())
	if r.opts.OnStage != nil {
		r.opts.OnStage(s)
	}
}

// fail wraps err with the current stage unless it already carries one.
func (r *run) fail(err error) error {
	var stageErr *StageError
	if errors.As(err, &stageErr) {
		return err
	}
	return &StageError{Stage: r.result.Stage, Err: err}
}

func (r *run) failAt(rel string, err error) error {
	return &StageError{Stage: r.result.Stage, Path: rel, Err: err}
}

// classStem matches component and page file stems that derive a valid
// Python class name.
var classStem = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// validate checks the options without touching the filesystem.
func (r *run) validate() error {
	if !r.opts.AppType.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidAppType, r.opts.AppType)
	}
	if r.tmpl == nil {
		return fmt.Errorf("%w: no template given", ErrUnsupportedConfiguration)
	}
	switch n := len(r.tmpl.PageSnippets); {
	case n == 0:
		return fmt.Errorf("%w: template %q has no pages", ErrUnsupportedConfiguration, r.tmpl.Name)
	case n > 1:
		return fmt.Errorf("%w: template %q has %d pages, only one is supported", ErrUnsupportedConfiguration, r.tmpl.Name, n)
	}

	for _, group := range [][]*snippet.Snippet{r.tmpl.ComponentSnippets, r.tmpl.PageSnippets, r.tmpl.OtherSnippets} {
		for _, s := range group {
			if err := validateFileName(s.Name); err != nil {
				return err
			}
			if !strings.HasSuffix(s.Name, defs.PythonSuffix) {
				return fmt.Errorf("%w: code snippet %q is not a Python file", ErrUnsupportedConfiguration, s.Name)
			}
		}
	}
	for _, group := range [][]*snippet.Snippet{r.tmpl.ComponentSnippets, r.tmpl.PageSnippets} {
		for _, s := range group {
			if !classStem.MatchString(s.Stem()) {
				return fmt.Errorf("%w: %q does not name a Python class", ErrUnsupportedConfiguration, s.Name)
			}
		}
	}
	for _, s := range r.tmpl.AssetSnippets {
		if err := validateFileName(s.Name); err != nil {
			return err
		}
	}

	parent := r.opts.ParentDir
	if parent == "" {
		parent = "."
	}
	absParent, err := filepath.Abs(parent)
	if err != nil {
		return fmt.Errorf("resolve parent directory: %w", err)
	}

	module := naming.DeriveModuleName(r.opts.RawName)
	dirName := naming.DeriveDirectoryName(module)

	r.moduleDir = module
	r.result.ModuleName = module
	r.result.DirectoryName = dirName
	r.result.ProjectDir = filepath.Join(absParent, dirName)
	r.result.TemplateName = r.tmpl.Name

	r.logger.Info("creating project",
		"name", r.opts.RawName,
		"dir", r.result.ProjectDir,
		"type", r.opts.AppType,
		"template", r.tmpl.Name,
	)
	return nil
}

// validateFileName rejects names that are not a single path element.
func validateFileName(name string) error {
	if name == "" || name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrUnsafeFileName, name)
	}
	if strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0) {
		return fmt.Errorf("%w: %q", ErrUnsafeFileName, name)
	}
	return nil
}

// createDirectories creates the project directory, refusing to continue
// if it already has content, and the package layout below it.
func (r *run) createDirectories() error {
	projectDir := r.result.ProjectDir
	if err := os.MkdirAll(projectDir, defs.DirPerm); err != nil {
		return fmt.Errorf("create project directory: %w", err)
	}

	entries, err := os.ReadDir(projectDir)
	if err != nil {
		return fmt.Errorf("read project directory: %w", err)
	}
	if len(entries) > 0 {
		return &DirectoryNotEmptyError{Path: projectDir}
	}

	dirs := []string{
		r.moduleDir,
		path.Join(r.moduleDir, defs.AssetsDir),
		path.Join(r.moduleDir, defs.ComponentsDir),
		path.Join(r.moduleDir, defs.PagesDir),
	}
	for _, rel := range dirs {
		if err := os.Mkdir(r.abs(rel), defs.DirPerm); err != nil {
			return r.failAt(rel, fmt.Errorf("create directory: %w", err))
		}
		r.result.CreatedDirs = append(r.result.CreatedDirs, rel)
	}
	return nil
}

// copyAssets copies every asset byte for byte into the assets directory.
func (r *run) copyAssets() error {
	for _, asset := range r.tmpl.AssetSnippets {
		rel := path.Join(r.moduleDir, defs.AssetsDir, asset.Name)
		if err := r.copyAsset(asset, rel); err != nil {
			return r.failAt(rel, err)
		}
	}
	return nil
}

func (r *run) copyAsset(asset *snippet.Snippet, rel string) error {
	var (
		src io.ReadCloser
		err error
	)
	if r.tmpl.Source != nil {
		src, err = r.tmpl.Source.Open(asset.FilePath)
	} else {
		src, err = os.Open(asset.FilePath)
	}
	if err != nil {
		return fmt.Errorf("open asset: %w", err)
	}
	defer func() { _ = src.Close() }()

	dst, err := os.OpenFile(r.abs(rel), os.O_WRONLY|os.O_CREATE|os.O_EXCL, defs.FilePerm)
	if err != nil {
		return fmt.Errorf("create asset: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return fmt.Errorf("copy asset: %w", err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("close asset: %w", err)
	}

	r.record(rel)
	return nil
}

// writeComponents renders one file per snippet into the given subdirectory
// of the main module. Each file is rendered in full before it is created.
func (r *run) writeComponents(subdir string, snippets []*snippet.Snippet) error {
	for _, s := range snippets {
		rel := path.Join(r.moduleDir, subdir, s.Name)
		var buf bytes.Buffer
		if err := template.WriteComponentFile(&buf, s); err != nil {
			return r.failAt(rel, err)
		}
		if err := r.writeFile(rel, buf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

// writeRootFiles writes everything that ties the generated modules
// together, plus the project metadata files.
func (a *projectAssembler) writeRootFiles(r *run) error {
	for _, s := range r.tmpl.OtherSnippets {
		if err := r.writeFile(path.Join(r.moduleDir, s.Name), []byte(s.StrippedCode())); err != nil {
			return err
		}
	}

	ctx := template.NewTemplateContext(
		template.WithProject(r.opts.RawName),
		template.WithAppType(r.opts.AppType),
		template.WithTemplate(r.tmpl),
	)

	if err := a.renderFile(r, defs.RioTOML, template.RioTOMLTemplate, ctx); err != nil {
		return err
	}

	rootInit := path.Join(r.moduleDir, defs.InitPy)
	var buf bytes.Buffer
	err := template.WriteRootInit(&buf, template.RootInitData{
		RawName:    r.opts.RawName,
		Pages:      r.tmpl.PageSnippets,
		MainPage:   r.tmpl.PageSnippets[0],
		RootInit:   r.tmpl.RootInitSnippet,
		OnAppStart: r.tmpl.OnAppStart,
		Theme:      a.theme,
	})
	if err != nil {
		return r.failAt(rootInit, err)
	}
	if err := r.writeFile(rootInit, buf.Bytes()); err != nil {
		return err
	}

	barrels := []struct {
		subdir   string
		snippets []*snippet.Snippet
	}{
		{defs.ComponentsDir, r.tmpl.ComponentSnippets},
		{defs.PagesDir, r.tmpl.PageSnippets},
	}
	for _, b := range barrels {
		rel := path.Join(r.moduleDir, b.subdir, defs.InitPy)
		buf.Reset()
		if err := template.WriteBarrelFile(&buf, b.snippets); err != nil {
			return r.failAt(rel, err)
		}
		if err := r.writeFile(rel, buf.Bytes()); err != nil {
			return err
		}
	}

	buf.Reset()
	hasDeps, err := template.WriteRequirements(&buf, r.tmpl)
	if err != nil {
		return r.failAt(defs.RequirementsTXT, err)
	}
	if hasDeps {
		if err := r.writeFile(defs.RequirementsTXT, buf.Bytes()); err != nil {
			return err
		}
	}
	r.result.HasDependencies = hasDeps

	if err := a.renderFile(r, defs.ReadmeMD, template.ReadmeTemplate, ctx); err != nil {
		return err
	}

	if r.opts.AppType == models.AppTypeApp {
		rel := path.Join(r.moduleDir, defs.MainPy)
		if err := a.renderFile(r, rel, template.MainPyTemplate, ctx); err != nil {
			return err
		}
	}
	return nil
}

// renderFile executes a file template and writes the result.
func (a *projectAssembler) renderFile(r *run, rel, templateName string, data any) error {
	if a.renderer == nil {
		return r.failAt(rel, fmt.Errorf("render %s: %w", templateName, template.ErrTemplateNotFound))
	}
	content, err := a.renderer.Render(templateName, data)
	if err != nil {
		return r.failAt(rel, err)
	}
	return r.writeFile(rel, content)
}

// writeFile creates a new file below the project directory.
func (r *run) writeFile(rel string, content []byte) error {
	f, err := os.OpenFile(r.abs(rel), os.O_WRONLY|os.O_CREATE|os.O_EXCL, defs.FilePerm)
	if err != nil {
		return r.failAt(rel, fmt.Errorf("create file: %w", err))
	}
	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		return r.failAt(rel, fmt.Errorf("write file: %w", err))
	}
	if err := f.Close(); err != nil {
		return r.failAt(rel, fmt.Errorf("close file: %w", err))
	}
	r.record(rel)
	return nil
}

func (r *run) record(rel string) {
	r.result.CreatedFiles = append(r.result.CreatedFiles, rel)
	r.logger.Debug("wrote file", "path", rel)
}

// abs converts a slash-separated project-relative path to an OS path.
func (r *run) abs(rel string) string {
	return filepath.Join(r.result.ProjectDir, filepath.FromSlash(rel))
}
