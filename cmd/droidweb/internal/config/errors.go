package config

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for configuration problems.
var (
	// ErrUnsupportedVersion indicates an Android version outside the supported set.
	ErrUnsupportedVersion = errors.New("config: unsupported android version")

	// ErrPrerequisiteMissing indicates a required external tool could not be found.
	ErrPrerequisiteMissing = errors.New("config: required tool not found")

	// ErrInvalidProject indicates an invalid project name or location.
	ErrInvalidProject = errors.New("config: invalid project")
)

// UnsupportedVersionError names the rejected value and the valid choices.
type UnsupportedVersionError struct {
	Value     string
	Supported []string
}

// Error implements the error interface.
func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported android version %q (valid choices: %s)",
		e.Value, strings.Join(e.Supported, ", "))
}

// Unwrap returns ErrUnsupportedVersion.
func (e *UnsupportedVersionError) Unwrap() error {
	return ErrUnsupportedVersion
}

// PrerequisiteError reports a missing external tool together with the
// locations that were checked and how to fix it.
type PrerequisiteError struct {
	Tool  string
	Tried []string
	Hint  string
}

// Error implements the error interface.
func (e *PrerequisiteError) Error() string {
	msg := fmt.Sprintf("%s not found", e.Tool)
	if len(e.Tried) > 0 {
		msg += fmt.Sprintf(" (tried: %s)", strings.Join(e.Tried, ", "))
	}
	return msg
}

// Unwrap returns ErrPrerequisiteMissing.
func (e *PrerequisiteError) Unwrap() error {
	return ErrPrerequisiteMissing
}
