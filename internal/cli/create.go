package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rio-labs/riogen/internal/cli/wizard"
	"github.com/rio-labs/riogen/internal/config"
	"github.com/rio-labs/riogen/internal/core/project"
	"github.com/rio-labs/riogen/internal/theme"
	"github.com/rio-labs/riogen/internal/ui"
	"github.com/rio-labs/riogen/pkg/models"
)

var createCmd = &cobra.Command{
	Use:   "create [project-name]",
	Short: "Create a new Rio project",
	Long: `Create a new Rio project from a template.

The project directory and Python module are derived from the project name:
"My Cool App" becomes ./my-cool-app/ containing the module my_cool_app.
The directory must not exist yet or be empty.

Examples:
  riogen create "My Cool App"                  Ask for the missing answers
  riogen create blog --type website            Create a website
  riogen create counter --template Counter     Start from the Counter template
  riogen create shop --non-interactive         Use configured defaults`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: validateCreateFlags,
	RunE:    runCreate,
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().StringP("type", "t", "", "Project type: app or website (default from config)")
	createCmd.Flags().String("template", "", "Template name, see \"riogen templates\" (default from config)")
	createCmd.Flags().String("dir", ".", "Directory to create the project in")
	createCmd.Flags().String("primary-color", "", "Primary theme colour, e.g. #01dffd")
	createCmd.Flags().String("secondary-color", "", "Secondary theme colour (default: derived from the primary colour)")
	createCmd.Flags().Bool("dark", false, "Generate a dark theme")
	createCmd.Flags().Bool("non-interactive", false, "Never prompt; use flags and configured defaults")
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// validateCreateFlags validates flag values before execution.
func validateCreateFlags(cmd *cobra.Command, _ []string) error {
	if t := getStringFlag(cmd, "type"); t != "" && !models.AppType(t).IsValid() {
		return fmt.Errorf("invalid --type value %q: must be one of: app, website", t)
	}
	for _, name := range []string{"primary-color", "secondary-color"} {
		if c := getStringFlag(cmd, name); c != "" {
			if _, err := theme.ParseColor(c); err != nil {
				return fmt.Errorf("invalid --%s value: %w", name, err)
			}
		}
	}
	return nil
}

// @MX:ANCHOR: [AUTO] runCreate drives project creation from the command line
// @MX:REASON: the only caller of the project assembler outside tests
// runCreate resolves the answers from arguments, flags, the wizard and the
// configured defaults, then writes the project.
func runCreate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	cfg := deps.Config.Get()

	known := wizard.WizardResult{
		AppType:  getStringFlag(cmd, "type"),
		Template: getStringFlag(cmd, "template"),
	}
	if len(args) > 0 {
		known.ProjectName = strings.TrimSpace(args[0])
	}

	answers, err := resolveAnswers(cmd, known)
	if err != nil {
		if errors.Is(err, wizard.ErrCancelled) {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Project creation cancelled.")
			return nil
		}
		return err
	}

	tmpl, err := deps.Catalog.Find(answers.Template)
	if err != nil {
		return err
	}

	th, err := buildTheme(cmd, cfg)
	if err != nil {
		return err
	}

	bar := ui.NewProgress(out, ui.Palette{
		Primary:   "#" + th.PrimaryHex(),
		Secondary: "#" + th.SecondaryHex(),
	}, deps.Headless).Start("Creating project", int(project.StageDone))

	result, err := deps.NewAssembler(th).Create(project.CreateOptions{
		ParentDir: getStringFlag(cmd, "dir"),
		RawName:   answers.ProjectName,
		AppType:   models.AppType(answers.AppType),
		Template:  tmpl,
		OnStage: func(s project.Stage) {
			bar.SetTitle(s.String())
			if s != project.StageValidating {
				bar.Increment(1)
			}
		},
	})
	if err != nil {
		var notEmpty *project.DirectoryNotEmptyError
		if errors.As(err, &notEmpty) {
			return fmt.Errorf("the project directory %s already exists and is not empty", notEmpty.Path)
		}
		return fmt.Errorf("create project: %w", err)
	}

	printCreateSummary(out, result)
	return nil
}

// resolveAnswers fills in the project name, type and template. Missing
// answers are asked interactively when a terminal is available and
// otherwise taken from the headless defaults.
func resolveAnswers(cmd *cobra.Command, known wizard.WizardResult) (wizard.WizardResult, error) {
	defaults := wizard.WizardResult{
		AppType:  deps.Headless.Default(ui.KeyAppType, config.DefaultAppType.String()),
		Template: deps.Headless.Default(ui.KeyTemplate, config.DefaultTemplate),
	}

	complete := known.ProjectName != "" && known.AppType != "" && known.Template != ""
	interactive := !getBoolFlag(cmd, "non-interactive") && !deps.Headless.IsHeadless()

	if interactive && !complete {
		choices := make([]wizard.TemplateChoice, 0)
		for _, t := range deps.Catalog.List() {
			choices = append(choices, wizard.TemplateChoice{Name: t.Name, Description: t.Description})
		}
		questions := wizard.DefaultQuestions(known, defaults, choices)
		result, err := wizard.Run(questions, &known)
		if err != nil {
			return wizard.WizardResult{}, err
		}
		known = *result
	}

	if known.ProjectName == "" {
		return wizard.WizardResult{}, errors.New("a project name is required: riogen create <project-name>")
	}
	if known.AppType == "" {
		known.AppType = defaults.AppType
	}
	if known.Template == "" {
		known.Template = defaults.Template
	}
	return known, nil
}

// buildTheme applies the colour flags on top of the configured theme.
func buildTheme(cmd *cobra.Command, cfg *config.Config) (theme.Theme, error) {
	th, err := cfg.BuildTheme()
	if err != nil {
		return theme.Theme{}, err
	}

	if primary := getStringFlag(cmd, "primary-color"); primary != "" {
		c, err := theme.ParseColor(primary)
		if err != nil {
			return theme.Theme{}, err
		}
		th.Primary = c
		th = th.WithSecondaryFromPrimary()
	}
	if secondary := getStringFlag(cmd, "secondary-color"); secondary != "" {
		c, err := theme.ParseColor(secondary)
		if err != nil {
			return theme.Theme{}, err
		}
		th.Secondary = c
	}
	if getBoolFlag(cmd, "dark") {
		th.Light = false
	}
	return th, nil
}

// printCreateSummary reports the new project and how to run it.
func printCreateSummary(w io.Writer, result *project.CreateResult) {
	details := renderKeyValueLines([]kvPair{
		{"Location", result.ProjectDir},
		{"Module", result.ModuleName},
		{"Type", result.AppType.String()},
		{"Template", result.TemplateName},
		{"Files", fmt.Sprintf("%d created", len(result.CreatedFiles))},
	})
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, renderSuccessCard("The project has been created!", details))
	_, _ = fmt.Fprintln(w)

	steps := []string{"cd " + shellQuote(result.ProjectDir)}
	if result.HasDependencies {
		steps = append(steps, "python -m pip install -r requirements.txt  "+cliMuted.Render("# Don't forget to install dependencies!"))
	}
	steps = append(steps, "rio run")

	_, _ = fmt.Fprintln(w, "To see your new project in action, run the following commands:")
	_, _ = fmt.Fprintln(w)
	for _, s := range steps {
		_, _ = fmt.Fprintf(w, "  %s %s\n", cliMuted.Render(">"), s)
	}
}

// shellQuote quotes p for POSIX shells when it contains special characters.
func shellQuote(p string) string {
	p = filepath.Clean(p)
	safe := strings.IndexFunc(p, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || strings.ContainsRune("_-./:", r))
	}) < 0
	if safe && p != "" {
		return p
	}
	return "'" + strings.ReplaceAll(p, "'", `'\''`) + "'"
}
