// Package ui decides whether riogen may prompt the user and renders
// progress while a project is written.
package ui

import (
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
)

// Keys of the values used in headless mode.
const (
	KeyAppType  = "app_type"
	KeyTemplate = "template"
)

// EnvNonInteractive disables prompts when set to a true value.
const EnvNonInteractive = "RIOGEN_NONINTERACTIVE"

// HeadlessManager decides whether prompts may be shown and holds the
// answers used instead when they may not.
type HeadlessManager struct {
	forced   *bool
	defaults map[string]string
	getenv   func(string) string
	terminal func() bool
}

// NewHeadlessManager creates a HeadlessManager that prompts only when both
// stdin and stdout are terminals and neither RIOGEN_NONINTERACTIVE nor CI
// is set.
func NewHeadlessManager() *HeadlessManager {
	return &HeadlessManager{
		getenv:   os.Getenv,
		terminal: stdioIsTerminal,
	}
}

// IsHeadless reports whether prompts must not be shown.
func (h *HeadlessManager) IsHeadless() bool {
	if h.forced != nil {
		return *h.forced
	}
	if envTrue(h.getenv(EnvNonInteractive)) || envTrue(h.getenv("CI")) {
		return true
	}
	return !h.terminal()
}

// ForceHeadless overrides detection. Pass false to force prompts even
// without a terminal.
func (h *HeadlessManager) ForceHeadless(force bool) {
	h.forced = &force
}

// SetDefaults replaces the headless answers. Empty values are ignored.
func (h *HeadlessManager) SetDefaults(defaults map[string]string) {
	h.defaults = make(map[string]string, len(defaults))
	for k, v := range defaults {
		if v != "" {
			h.defaults[k] = v
		}
	}
}

// Default returns the headless answer for key, or fallback if none is set.
func (h *HeadlessManager) Default(key, fallback string) string {
	if v, ok := h.defaults[key]; ok {
		return v
	}
	return fallback
}

func stdioIsTerminal() bool {
	return isTerminal(os.Stdin.Fd()) && isTerminal(os.Stdout.Fd())
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func envTrue(v string) bool {
	b, err := strconv.ParseBool(v)
	return err == nil && b
}
