// Package wizard provides the interactive huh-based prompts of
// "riogen create".
package wizard

import "errors"

// WizardResult holds the answers of the create wizard.
type WizardResult struct {
	ProjectName string // Human-supplied project name (required)
	AppType     string // "app" or "website"
	Template    string // Template name from the catalog
}

// Question IDs, one per WizardResult field.
const (
	QuestionProjectName = "project_name"
	QuestionAppType     = "app_type"
	QuestionTemplate    = "template"
)

// Question is one prompt of the wizard. Questions with options are asked
// as a selection, all others as free text input.
type Question struct {
	ID          string
	Title       string
	Description string
	Options     []Option
	Default     string
	// Validate checks a trimmed text answer. Nil accepts anything.
	Validate func(string) error
	// Condition hides the question when it returns false.
	Condition func(*WizardResult) bool
}

// IsSelect reports whether the question is answered by picking an option.
func (q *Question) IsSelect() bool {
	return len(q.Options) > 0
}

// Option is one choice of a selection question.
type Option struct {
	Label string
	Value string
	Hint  string // shown after the label
}

var (
	// ErrCancelled is returned when the user aborts the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrNoQuestions is returned when Run is called without questions.
	ErrNoQuestions = errors.New("no questions provided")
	// ErrEmptyName rejects a blank project name.
	ErrEmptyName = errors.New("the project needs a name")
)
