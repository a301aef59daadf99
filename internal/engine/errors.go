// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrEngineClosed is returned by Submit after Shutdown.
	ErrEngineClosed = errors.New("engine is shut down")
	// ErrTaskFailed is wrapped by TaskError.
	ErrTaskFailed = errors.New("task failed")
	// ErrDependencyFailed is wrapped by DependencyError.
	ErrDependencyFailed = errors.New("dependency failed")
	// ErrShellNotFound is returned when the native shell is not installed.
	ErrShellNotFound = errors.New("shell not found")
)

type (
	// TaskError reports a command that exited with a non-zero status, or that
	// could not be started (Code is then 1 and Err holds the cause).
	TaskError struct {
		ID      string
		Command string
		Code    int
		Err     error
	}

	// DependencyError reports a task that never ran because an input file's
	// producing task failed.
	DependencyError struct {
		ID   string
		Path string
		Err  error
	}
)

// Error implements the error interface for TaskError.
func (e *TaskError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("task %s failed: %v", e.ID, e.Err)
	}
	return fmt.Sprintf("task %s exited with code %d: %s", e.ID, e.Code, e.Command)
}

// Unwrap returns ErrTaskFailed and the underlying cause, if any.
func (e *TaskError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrTaskFailed, e.Err}
	}
	return []error{ErrTaskFailed}
}

// Error implements the error interface for DependencyError.
func (e *DependencyError) Error() string {
	return fmt.Sprintf("task %s: input %s was not produced: %v", e.ID, e.Path, e.Err)
}

// Unwrap returns ErrDependencyFailed and the producer's error.
func (e *DependencyError) Unwrap() []error {
	return []error{ErrDependencyFailed, e.Err}
}

// ExitCode returns the exit code carried by err: the TaskError code, 1 for
// any other error, 0 for nil.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var taskErr *TaskError
	if errors.As(err, &taskErr) && taskErr.Code != 0 {
		return taskErr.Code
	}
	return 1
}
