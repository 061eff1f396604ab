package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Run asks every visible question and returns the answers merged over
// initial, which is not modified.
// Each question runs as its own huh.Form; huh v0.8.x miscomputes the
// viewport offset when several groups share one form.
func Run(questions []Question, initial *WizardResult) (*WizardResult, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	result := &WizardResult{}
	if initial != nil {
		*result = *initial
	}
	theme := rioPalette.huhTheme()

	for i := range questions {
		q := &questions[i]
		if q.Condition != nil && !q.Condition(result) {
			continue
		}

		form := huh.NewForm(buildQuestionGroup(q, result)).
			WithTheme(theme).
			WithAccessible(false)
		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, ErrCancelled
			}
			return nil, fmt.Errorf("wizard: %s: %w", q.ID, err)
		}
	}
	return result, nil
}

// buildQuestionGroup wraps the field for q in a group.
func buildQuestionGroup(q *Question, result *WizardResult) *huh.Group {
	var field huh.Field
	if q.IsSelect() {
		field = buildSelectField(q, result)
	} else {
		field = buildInputField(q, result)
	}
	return huh.NewGroup(field)
}

// buildSelectField creates a selection with static options so the
// viewport stays sized to the list.
func buildSelectField(q *Question, result *WizardResult) *huh.Select[string] {
	selected := q.Default

	opts := make([]huh.Option[string], len(q.Options))
	for i, opt := range q.Options {
		label := opt.Label
		if opt.Hint != "" {
			label += " - " + opt.Hint
		}
		opts[i] = huh.NewOption(label, opt.Value)
	}

	id := q.ID
	return huh.NewSelect[string]().
		Title(q.Title).
		Description(q.Description).
		Options(opts...).
		Value(&selected).
		Validate(func(val string) error {
			saveAnswer(id, val, result)
			return nil
		})
}

// buildInputField creates a text input. An empty answer falls back to the
// question default. The project name question previews the derived names.
func buildInputField(q *Question, result *WizardResult) *huh.Input {
	value := q.Default
	inp := huh.NewInput().
		Title(q.Title).
		Value(&value)
	if q.Default != "" {
		inp = inp.Placeholder(q.Default)
	}

	id, def, validate := q.ID, q.Default, q.Validate
	inp = inp.Validate(func(val string) error {
		v := strings.TrimSpace(val)
		if v == "" {
			v = def
		}
		if validate != nil {
			if err := validate(v); err != nil {
				return err
			}
		}
		saveAnswer(id, v, result)
		return nil
	})

	if id != QuestionProjectName {
		return inp.Description(q.Description)
	}
	desc := q.Description
	return inp.DescriptionFunc(func() string {
		if strings.TrimSpace(value) == "" {
			return desc
		}
		return desc + "\n" + ProjectNamePreview(value)
	}, &value)
}

// saveAnswer stores an answer in the result.
func saveAnswer(id, value string, result *WizardResult) {
	switch id {
	case QuestionProjectName:
		result.ProjectName = value
	case QuestionAppType:
		result.AppType = value
	case QuestionTemplate:
		result.Template = value
	}
}

// palette holds the colours of the wizard.
type palette struct {
	accent, accentAlt, ok, bad, text, muted, border lipgloss.AdaptiveColor
}

// rioPalette follows the default theme of generated projects.
var rioPalette = palette{
	accent:    lipgloss.AdaptiveColor{Light: "#0083FF", Dark: "#01DFFD"},
	accentAlt: lipgloss.AdaptiveColor{Light: "#005FCC", Dark: "#0083FF"},
	ok:        lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"},
	bad:       lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"},
	text:      lipgloss.AdaptiveColor{Light: "#111827", Dark: "#F9FAFB"},
	muted:     lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"},
	border:    lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"},
}

// huhTheme builds a huh theme from the palette on top of huh.ThemeBase.
func (p palette) huhTheme() *huh.Theme {
	t := huh.ThemeBase()

	f := &t.Focused
	f.Base = f.Base.BorderForeground(p.border)
	f.Card = f.Base
	f.Title = f.Title.Foreground(p.accent).Bold(true)
	f.Description = f.Description.Foreground(p.muted)
	f.ErrorIndicator = f.ErrorIndicator.Foreground(p.bad)
	f.ErrorMessage = f.ErrorMessage.Foreground(p.bad)
	f.SelectSelector = f.SelectSelector.Foreground(p.accent).SetString("▸ ")
	f.Option = f.Option.Foreground(p.text)
	f.SelectedOption = f.SelectedOption.Foreground(p.ok)
	f.SelectedPrefix = lipgloss.NewStyle().Foreground(p.ok).SetString("◆ ")
	f.UnselectedOption = f.UnselectedOption.Foreground(p.text)
	f.UnselectedPrefix = lipgloss.NewStyle().Foreground(p.muted).SetString("◇ ")
	f.TextInput.Cursor = f.TextInput.Cursor.Foreground(p.accent)
	f.TextInput.Placeholder = f.TextInput.Placeholder.Foreground(p.muted)
	f.TextInput.Prompt = f.TextInput.Prompt.Foreground(p.accentAlt)
	f.FocusedButton = f.FocusedButton.Foreground(lipgloss.Color("#FFFFFF")).Background(p.accent)
	f.Next = f.FocusedButton

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Card = t.Blurred.Base

	t.Group.Title = t.Focused.Title
	t.Group.Description = t.Focused.Description
	return t
}
