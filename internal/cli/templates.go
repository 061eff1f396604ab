package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/rio-labs/riogen/internal/snippet"
)

var templatesCmd = &cobra.Command{
	Use:   "templates [name]",
	Short: "List the available project templates",
	Long: `List the project templates riogen can create projects from.

With a template name, show the template's description, dependencies and
the files it contributes.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTemplates,
}

func init() {
	rootCmd.AddCommand(templatesCmd)

	templatesCmd.Flags().Bool("plain", false, "Print descriptions as raw Markdown")
}

func runTemplates(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) == 0 {
		return listTemplates(out)
	}

	tmpl, err := deps.Catalog.Find(args[0])
	if err != nil {
		return err
	}
	plain := getBoolFlag(cmd, "plain") || deps.Headless.IsHeadless()
	return showTemplate(out, tmpl, plain)
}

// listTemplates prints one line per template with the first line of its
// description.
func listTemplates(w io.Writer) error {
	templates := deps.Catalog.List()
	if len(templates) == 0 {
		_, _ = fmt.Fprintln(w, cliMuted.Render("No templates available."))
		return nil
	}

	width := 0
	for _, t := range templates {
		width = max(width, len(t.Name))
	}
	for _, t := range templates {
		summary := summaryLine(t.Description)
		_, _ = fmt.Fprintf(w, "  %s  %s\n", cliPrimary.Render(fmt.Sprintf("%-*s", width, t.Name)), cliMuted.Render(summary))
	}
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, cliMuted.Render(`Run "riogen templates <name>" for details.`))
	return nil
}

// showTemplate prints the details of a single template.
func showTemplate(w io.Writer, tmpl *snippet.ProjectTemplate, plain bool) error {
	pairs := []kvPair{
		{"Components", countOrNone(len(tmpl.ComponentSnippets))},
		{"Pages", countOrNone(len(tmpl.PageSnippets))},
		{"Assets", countOrNone(len(tmpl.AssetSnippets))},
		{"Dependencies", formatDependencies(tmpl)},
	}
	_, _ = fmt.Fprintln(w, renderCard(tmpl.Name, renderKeyValueLines(pairs)))

	desc := strings.TrimSpace(tmpl.Description)
	if desc == "" {
		return nil
	}
	_, _ = fmt.Fprintln(w)
	if plain {
		_, _ = fmt.Fprintln(w, desc)
		return nil
	}
	rendered, err := renderMarkdown(desc)
	if err != nil {
		return fmt.Errorf("render description of %s: %w", tmpl.Name, err)
	}
	_, _ = fmt.Fprint(w, rendered)
	return nil
}

// renderMarkdown renders a template description for the terminal.
func renderMarkdown(md string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}

// summaryLine returns the first non-empty line of a Markdown description
// with leading heading markers removed.
func summaryLine(md string) string {
	for line := range strings.SplitSeq(md, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "# "))
		if line != "" {
			return line
		}
	}
	return ""
}

func countOrNone(n int) string {
	if n == 0 {
		return "none"
	}
	return fmt.Sprint(n)
}

// formatDependencies lists dependencies in requirements.txt form.
func formatDependencies(tmpl *snippet.ProjectTemplate) string {
	names := tmpl.DependencyNames()
	if len(names) == 0 {
		return "none"
	}
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + tmpl.Dependencies[name]
	}
	return strings.Join(parts, ", ")
}
