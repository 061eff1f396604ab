// Package project assembles a project template into a source tree on disk.
// It implements the core of the "riogen create" command: validation,
// directory scaffolding, snippet rendering and the root files tying the
// generated modules together.
package project

import (
	"errors"
	"fmt"
)

// Sentinel errors for the project package.
var (
	// ErrDirectoryNotEmpty indicates the target project directory already has content.
	ErrDirectoryNotEmpty = errors.New("project directory is not empty")

	// ErrUnsupportedConfiguration indicates a template the assembler cannot
	// handle yet, e.g. one with more than one page.
	ErrUnsupportedConfiguration = errors.New("unsupported configuration")

	// ErrInvalidAppType indicates an app type other than "app" or "website".
	ErrInvalidAppType = errors.New("invalid app type: must be app or website")

	// ErrUnsafeFileName indicates a snippet name that would escape its directory.
	ErrUnsafeFileName = errors.New("unsafe file name")
)

// DirectoryNotEmptyError reports the populated directory.
type DirectoryNotEmptyError struct {
	Path string
}

// Error implements the error interface.
func (e *DirectoryNotEmptyError) Error() string {
	return fmt.Sprintf("%v: %s", ErrDirectoryNotEmpty, e.Path)
}

// Unwrap returns ErrDirectoryNotEmpty.
func (e *DirectoryNotEmptyError) Unwrap() error {
	return ErrDirectoryNotEmpty
}

// StageError records the stage and path a project creation failed at.
type StageError struct {
	Stage Stage
	Path  string // Path relative to the project directory, if any.
	Err   error
}

// Error implements the error interface.
func (e *StageError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %v", e.Stage, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error.
func (e *StageError) Unwrap() error {
	return e.Err
}
