// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"context"

	"github.com/invowk/cwltool/pkg/cwl"
)

type (
	// Future is the pending result of a submitted task. It implements
	// cwl.PendingResult.
	Future struct {
		id      string
		command string
		stdout  string
		stderr  string
		outputs []*OutputFuture

		done chan struct{}
		err  error
	}

	// OutputFuture is a declared output file of a task. It is a cwl.FileHandle
	// that stays pending until the task finishes, so it can be passed as an
	// input value to later invocations.
	OutputFuture struct {
		path   string
		future *Future
	}
)

var (
	_ cwl.PendingResult = (*Future)(nil)
	_ cwl.FileHandle    = (*OutputFuture)(nil)
)

// ID returns the task id.
func (f *Future) ID() string { return f.id }

// Command returns the command the task runs.
func (f *Future) Command() string { return f.command }

// Done is closed when the task finishes.
func (f *Future) Done() <-chan struct{} { return f.done }

// Wait blocks until the task finishes or ctx is done. It returns the task's
// failure (*TaskError or *DependencyError) or ctx's error.
func (f *Future) Wait(ctx context.Context) error {
	select {
	case <-f.done:
		return f.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stdout returns the resolved stdout path ("" when not redirected).
func (f *Future) Stdout() string { return f.stdout }

// Stderr returns the resolved stderr path ("" when not redirected).
func (f *Future) Stderr() string { return f.stderr }

// Outputs returns one pending handle per declared output file.
func (f *Future) Outputs() []cwl.FileHandle {
	out := make([]cwl.FileHandle, len(f.outputs))
	for i, o := range f.outputs {
		out[i] = o
	}
	return out
}

func (f *Future) finish(err error) {
	f.err = err
	close(f.done)
}

// Path returns the output file path.
func (o *OutputFuture) Path() string { return o.path }

// Pending reports whether the producing task is still running.
func (o *OutputFuture) Pending() bool {
	select {
	case <-o.future.done:
		return false
	default:
		return true
	}
}

// Wait blocks until the producing task finishes and returns its failure.
func (o *OutputFuture) Wait(ctx context.Context) error { return o.future.Wait(ctx) }

// String returns the output file path.
func (o *OutputFuture) String() string { return o.path }
