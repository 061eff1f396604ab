package wizard

import (
	"fmt"
	"slices"

	"github.com/rio-labs/riogen/internal/naming"
)

// TemplateChoice is a template offered by the template question.
type TemplateChoice struct {
	Name        string
	Description string
}

// DefaultQuestions returns the questions of the create wizard. Questions
// whose answer is already set in known are skipped when the wizard runs.
// defaults supplies the preselected app type and template.
func DefaultQuestions(known, defaults WizardResult, templates []TemplateChoice) []Question {
	appTypes := []Option{
		{Label: "Website", Value: "website", Hint: "served over HTTP, opened in a browser"},
		{Label: "App", Value: "app", Hint: "runs locally in its own window"},
	}

	tmplOpts := make([]Option, 0, len(templates))
	for _, t := range templates {
		tmplOpts = append(tmplOpts, Option{Label: t.Name, Value: t.Name, Hint: firstLine(t.Description)})
	}

	return []Question{
		{
			ID:          QuestionProjectName,
			Title:       "Enter project name",
			Description: "Used as the app name. The directory and Python module are derived from it.",
			Validate:    validateProjectName,
			Condition:   func(*WizardResult) bool { return known.ProjectName == "" },
		},
		{
			ID:          QuestionAppType,
			Title:       "What kind of project is this?",
			Description: "Websites run on a server, apps run locally.",
			// Default option must be first to avoid huh v0.8.0 viewport YOffset bug.
			Options:   defaultFirst(appTypes, defaults.AppType),
			Default:   defaults.AppType,
			Condition: func(*WizardResult) bool { return known.AppType == "" },
		},
		{
			ID:          QuestionTemplate,
			Title:       "Select a template",
			Description: "Templates ship sample components and pages to start from.",
			Options:     defaultFirst(tmplOpts, defaults.Template),
			Default:     defaults.Template,
			Condition:   func(*WizardResult) bool { return known.Template == "" && len(templates) > 0 },
		},
	}
}

func validateProjectName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	return nil
}

// ProjectNamePreview describes what a project name turns into on disk.
func ProjectNamePreview(name string) string {
	module := naming.DeriveModuleName(name)
	return fmt.Sprintf("directory %s, module %s", naming.DeriveDirectoryName(module), module)
}

// defaultFirst moves the option with the given value to the front.
func defaultFirst(opts []Option, value string) []Option {
	i := slices.IndexFunc(opts, func(o Option) bool { return o.Value == value })
	if i <= 0 {
		return opts
	}
	out := make([]Option, 0, len(opts))
	out = append(out, opts[i])
	out = append(out, opts[:i]...)
	return append(out, opts[i+1:]...)
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}

// FilteredQuestions returns only questions whose conditions are met.
func FilteredQuestions(questions []Question, result *WizardResult) []Question {
	filtered := make([]Question, 0, len(questions))
	for _, q := range questions {
		if q.Condition == nil || q.Condition(result) {
			filtered = append(filtered, q)
		}
	}
	return filtered
}

// QuestionByID finds a question by its ID.
func QuestionByID(questions []Question, id string) *Question {
	for i := range questions {
		if questions[i].ID == id {
			return &questions[i]
		}
	}
	return nil
}
