// Package errors provides structured error types for smartcrf operations.
package errors

import (
	"errors"
	"fmt"
	"os/exec"
)

// ErrorKind represents the category of an error.
type ErrorKind int

const (
	// KindIO represents I/O errors.
	KindIO ErrorKind = iota
	// KindPath represents path-related errors.
	KindPath
	// KindCommand represents external command execution errors.
	KindCommand
	// KindBitrateUnavailable represents a bitrate that could not be read.
	KindBitrateUnavailable
	// KindProbeParse represents unparseable probing tool output.
	KindProbeParse
	// KindPrediction represents invalid CRF prediction inputs.
	KindPrediction
	// KindRename represents filename annotation failures.
	KindRename
	// KindConfig represents configuration validation errors.
	KindConfig
	// KindDirectory represents directory enumeration failures.
	KindDirectory
	// KindCancelled represents user-cancelled operations.
	KindCancelled
)

// String returns a string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindIO:
		return "I/O error"
	case KindPath:
		return "Path error"
	case KindCommand:
		return "Command error"
	case KindBitrateUnavailable:
		return "Bitrate unavailable"
	case KindProbeParse:
		return "Probe parse error"
	case KindPrediction:
		return "Prediction error"
	case KindRename:
		return "Rename error"
	case KindConfig:
		return "Configuration error"
	case KindDirectory:
		return "Directory error"
	case KindCancelled:
		return "Operation cancelled"
	default:
		return "Unknown error"
	}
}

// CommandErrorKind represents the type of command error.
type CommandErrorKind int

const (
	// CommandStart means the command failed to start.
	CommandStart CommandErrorKind = iota
	// CommandTimeout means the command exceeded its deadline.
	CommandTimeout
	// CommandFailed means the command returned non-zero exit status.
	CommandFailed
)

// CommandError represents an error from executing an external command.
type CommandError struct {
	Command    string
	Kind       CommandErrorKind
	ExitCode   int
	Stderr     string
	Underlying error
}

func (e *CommandError) Error() string {
	switch e.Kind {
	case CommandStart:
		return fmt.Sprintf("failed to execute %s: %v", e.Command, e.Underlying)
	case CommandTimeout:
		return fmt.Sprintf("command %s timed out", e.Command)
	case CommandFailed:
		if e.Stderr != "" {
			return fmt.Sprintf("command %s failed with exit code %d: %s", e.Command, e.ExitCode, e.Stderr)
		}
		return fmt.Sprintf("command %s failed with exit code %d", e.Command, e.ExitCode)
	default:
		return fmt.Sprintf("command %s error: %v", e.Command, e.Underlying)
	}
}

func (e *CommandError) Unwrap() error {
	return e.Underlying
}

// CoreError is the main error type for smartcrf operations.
type CoreError struct {
	Kind       ErrorKind
	Message    string
	Underlying error
}

func (e *CoreError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Underlying)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *CoreError) Unwrap() error {
	return e.Underlying
}

// Is reports whether target matches this error's kind.
func (e *CoreError) Is(target error) bool {
	t, ok := target.(*CoreError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// NewIOError creates a new I/O error.
func NewIOError(message string, underlying error) *CoreError {
	return &CoreError{Kind: KindIO, Message: message, Underlying: underlying}
}

// NewPathError creates a new path-related error.
func NewPathError(message string) *CoreError {
	return &CoreError{Kind: KindPath, Message: message}
}

// NewBitrateUnavailableError creates an error for an unreadable bitrate.
func NewBitrateUnavailableError(path string, underlying error) *CoreError {
	return &CoreError{
		Kind:       KindBitrateUnavailable,
		Message:    fmt.Sprintf("cannot read bitrate of %s", path),
		Underlying: underlying,
	}
}

// NewProbeParseError creates an error for unparseable probe output.
func NewProbeParseError(message string) *CoreError {
	return &CoreError{Kind: KindProbeParse, Message: message}
}

// NewPredictionError creates an error for invalid prediction inputs.
func NewPredictionError(message string) *CoreError {
	return &CoreError{Kind: KindPrediction, Message: message}
}

// NewRenameError creates an error for a failed filename annotation.
func NewRenameError(message string, underlying error) *CoreError {
	return &CoreError{Kind: KindRename, Message: message, Underlying: underlying}
}

// NewConfigError creates a new configuration error.
func NewConfigError(message string) *CoreError {
	return &CoreError{Kind: KindConfig, Message: message}
}

// NewDirectoryError creates an error for a failed directory enumeration.
func NewDirectoryError(dir string, underlying error) *CoreError {
	return &CoreError{
		Kind:       KindDirectory,
		Message:    fmt.Sprintf("cannot list directory %s", dir),
		Underlying: underlying,
	}
}

// NewCancelledError creates an error for user-cancelled operations.
func NewCancelledError() *CoreError {
	return &CoreError{Kind: KindCancelled, Message: "operation was cancelled by the user"}
}

// NewCommandStartError creates an error for when a command fails to start.
func NewCommandStartError(cmd string, err error) *CoreError {
	cmdErr := &CommandError{Command: cmd, Kind: CommandStart, Underlying: err}
	return &CoreError{Kind: KindCommand, Message: cmdErr.Error(), Underlying: cmdErr}
}

// NewCommandTimeoutError creates an error for a command that exceeded its deadline.
func NewCommandTimeoutError(cmd string) *CoreError {
	cmdErr := &CommandError{Command: cmd, Kind: CommandTimeout}
	return &CoreError{Kind: KindCommand, Message: cmdErr.Error(), Underlying: cmdErr}
}

// NewCommandFailedError creates an error for when a command returns non-zero exit status.
func NewCommandFailedError(cmd string, exitCode int, stderr string) *CoreError {
	cmdErr := &CommandError{
		Command:  cmd,
		Kind:     CommandFailed,
		ExitCode: exitCode,
		Stderr:   stderr,
	}
	return &CoreError{Kind: KindCommand, Message: cmdErr.Error(), Underlying: cmdErr}
}

// IsKind checks if the error has the specified kind.
func IsKind(err error, kind ErrorKind) bool {
	var coreErr *CoreError
	if errors.As(err, &coreErr) {
		return coreErr.Kind == kind
	}
	return false
}

// IsCancelled checks if the error is a cancellation error.
func IsCancelled(err error) bool {
	return IsKind(err, KindCancelled)
}

// IsBitrateUnavailable checks if the error is an unreadable-bitrate error.
func IsBitrateUnavailable(err error) bool {
	return IsKind(err, KindBitrateUnavailable)
}

// WrapExecError wraps an exec.ExitError into a CoreError.
func WrapExecError(cmd string, err error, stderr string) *CoreError {
	if exitErr, ok := err.(*exec.ExitError); ok {
		return NewCommandFailedError(cmd, exitErr.ExitCode(), stderr)
	}
	return NewCommandStartError(cmd, err)
}
