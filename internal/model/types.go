// Package model defines the domain types for the cookgate CLI.
//
// All values here are transient — cookgate is a single-shot pre-merge gate,
// so every entity lives for exactly one pipeline run and is reconstructed
// from the repository working copy each time. There are no persistent
// state files.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CheckError) that carries exit codes for proper OS process exit handling.
package model

import (
	"fmt"
	"strings"
)

// RepoState represents the checkout state of the repository under validation.
// The CI integration always hands cookgate a detached checkout; any other
// state means the tool was invoked against the wrong workspace.
type RepoState string

const (
	// StateDetached indicates HEAD points directly at a commit rather than
	// at a named branch. This is the only state the gate accepts at startup.
	StateDetached RepoState = "detached"

	// StateOnBranch indicates HEAD points at a named branch.
	StateOnBranch RepoState = "on-branch"
)

// String returns the string representation of RepoState.
// This method satisfies the fmt.Stringer interface, enabling
// human-readable output in CLI commands and logging.
func (s RepoState) String() string {
	return string(s)
}

// IsValid checks whether the RepoState value is one of the
// predefined valid states.
func (s RepoState) IsValid() bool {
	switch s {
	case StateDetached, StateOnBranch:
		return true
	default:
		return false
	}
}

// ParseRepoState converts a string to a RepoState.
// Returns an error if the string does not match any valid state.
func ParseRepoState(s string) (RepoState, error) {
	state := RepoState(strings.ToLower(s))
	if !state.IsValid() {
		return "", fmt.Errorf("invalid repository state: %q (valid: detached, on-branch)", s)
	}
	return state, nil
}

// Report accumulates the confirmed value of each check as the pipeline
// advances. It replaces the process-global scratch variables the gate
// would otherwise need: every check writes its result here exactly once,
// and the CLI prints the whole report on success.
type Report struct {
	// State is the repository checkout state observed at startup.
	State RepoState `json:"state"`

	// Fields lists the metadata fields confirmed present and well-formed,
	// in check order.
	Fields []string `json:"fields,omitempty"`

	// VersionLine is the added diff line carrying the version declaration.
	VersionLine string `json:"versionLine,omitempty"`

	// Version is the dotted numeric token extracted from VersionLine
	// (e.g. "1.0.1").
	Version string `json:"version,omitempty"`

	// ChangelogOK records that Version was found in the changelog file.
	ChangelogOK bool `json:"changelogOk"`

	// Ticket is the first issue-tracker token found among the commit
	// subjects unique to the working branch (e.g. "PROJ-42").
	Ticket string `json:"ticket,omitempty"`
}

// ExitCode defines the CLI exit codes. The hard contract with the CI
// orchestrator is zero-vs-nonzero; the per-check codes on top of that
// let scripts identify which gate tripped without parsing stderr.
type ExitCode int

const (
	// ExitSuccess indicates every check passed.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitStateError indicates the repository was not in a detached HEAD
	// state when the gate started.
	ExitStateError ExitCode = 2

	// ExitGitError indicates a git operation (branch, checkout, diff, log)
	// failed at the tooling level.
	ExitGitError ExitCode = 3

	// ExitMissingFile indicates a required file (metadata or changelog)
	// is absent from the working tree.
	ExitMissingFile ExitCode = 4

	// ExitMetadataField indicates a required metadata field is missing
	// or malformed.
	ExitMetadataField ExitCode = 5

	// ExitVersionNotUpdated indicates the diff against the base branch
	// contains no added version-declaration line.
	ExitVersionNotUpdated ExitCode = 6

	// ExitVersionFormat indicates the added version line carries no
	// dotted numeric token.
	ExitVersionFormat ExitCode = 7

	// ExitChangelogMismatch indicates the extracted version does not
	// appear in the changelog file.
	ExitChangelogMismatch ExitCode = 8

	// ExitMissingTicket indicates no commit subject unique to the working
	// branch references an issue-tracker ticket.
	ExitMissingTicket ExitCode = 9
)

// CheckError is a custom error type that carries an exit code.
// This allows the CLI layer to translate pipeline failures into
// appropriate process exit codes.
type CheckError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable diagnostic. It states the required
	// format or condition so the PR author knows how to fix the failure.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CheckError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
// This follows Go's error wrapping convention introduced in Go 1.13.
func (e *CheckError) Unwrap() error {
	return e.Err
}

// NewCheckError creates a new CheckError with the given exit code and message.
func NewCheckError(code ExitCode, message string) *CheckError {
	return &CheckError{Code: code, Message: message}
}

// WrapCheckError creates a new CheckError that wraps an existing error.
func WrapCheckError(code ExitCode, message string, err error) *CheckError {
	return &CheckError{Code: code, Message: message, Err: err}
}
