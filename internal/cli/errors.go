// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Typed errors for the extractor's failure kinds.
//
// Every failure is caught exactly once at the top level, printed as a
// single user-facing line, and mapped to an exit code. Lower layers
// return plain errors; this package classifies them at the boundary.

package cli

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes. The extractor's contract is binary: zero for help and any
// graceful termination, one for every failure including interrupts.
const (
	ExitSuccess = 0
	ExitError   = 1
)

// ErrInterrupted is returned when the user aborts an interactive prompt.
var ErrInterrupted = errors.New("operation cancelled by user")

// ValidationError reports user-correctable input: a bad menu choice,
// range string, or selection number.
type ValidationError struct {
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Input Error: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("Input Error: %s", e.Reason)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// FileError reports a missing, unreadable, or malformed input file.
type FileError struct {
	Err error
}

func (e *FileError) Error() string { return fmt.Sprintf("File Error: %v", e.Err) }

func (e *FileError) Unwrap() error { return e.Err }

// ProcessingError reports an unexpected failure while classifying.
type ProcessingError struct {
	Err error
}

func (e *ProcessingError) Error() string { return fmt.Sprintf("Processing Error: %v", e.Err) }

func (e *ProcessingError) Unwrap() error { return e.Err }

// ExportError reports a failure while rendering, writing, or archiving.
type ExportError struct {
	Err error
}

func (e *ExportError) Error() string { return fmt.Sprintf("Export Error: %v", e.Err) }

func (e *ExportError) Unwrap() error { return e.Err }

// NewValidationError wraps a reason into a ValidationError.
func NewValidationError(reason string) error {
	return &ValidationError{Reason: reason}
}

// ExitCodeFor maps an error to the extractor's exit code contract.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return ExitError
}

// Report prints an error as one user-facing line on standard output.
// Errors outside the known kinds are labeled unexpected rather than
// re-raised.
func Report(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, ErrInterrupted) {
		fmt.Fprintln(os.Stdout, WarningStyle.Render("\nOperation cancelled by user."))
		return
	}

	var (
		validationErr *ValidationError
		fileErr       *FileError
		processingErr *ProcessingError
		exportErr     *ExportError
	)
	known := errors.As(err, &validationErr) ||
		errors.As(err, &fileErr) ||
		errors.As(err, &processingErr) ||
		errors.As(err, &exportErr)

	msg := err.Error()
	if !known {
		msg = fmt.Sprintf("Unexpected Error: %v", err)
	}
	fmt.Fprintln(os.Stdout, ErrorStyle.Render(msg))
}
