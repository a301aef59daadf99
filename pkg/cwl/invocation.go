// SPDX-License-Identifier: MPL-2.0

package cwl

import (
	"context"
	"fmt"
)

type (
	// Invocation is everything a task engine needs to run one tool call.
	Invocation struct {
		// Command is the rendered shell command line.
		Command string
		// Stdout is the path standard output is redirected to ("" for none).
		Stdout string
		// Stderr is the path standard error is redirected to ("" for none).
		Stderr string
		// InputFiles are the File values of File-typed inputs. Pending
		// handles among them are dependencies the engine must wait on.
		InputFiles []FileHandle
		// OutputFiles are the File values of declared File outputs.
		OutputFiles []FileHandle
	}

	// Engine runs invocations. Implementations own scheduling, execution and
	// exit-code handling; this package only hands invocations over.
	Engine interface {
		Submit(ctx context.Context, inv *Invocation) (PendingResult, error)
	}

	// PendingResult is the engine's handle to a submitted invocation.
	PendingResult interface {
		// Wait blocks until the task finishes and returns its failure, if any.
		Wait(ctx context.Context) error
		// Done is closed when the task finishes.
		Done() <-chan struct{}
		// Stdout returns the realized stdout path ("" for none).
		Stdout() string
		// Stderr returns the realized stderr path ("" for none).
		Stderr() string
		// Outputs returns one handle per declared output file. Each stays
		// pending until the task finishes and may be passed as an input value
		// to later invocations.
		Outputs() []FileHandle
	}
)

// Assemble maps values onto an Invocation.
//
// Declared stdout and stderr outputs require a value (a path string or a
// FileHandle) which becomes the redirection target; declared File outputs
// require a value. Every File-typed value present is type-checked and
// collected; non-handle values fail with *TypeMismatchError. The command is
// rendered by Command.
func (t *Tool) Assemble(values Values) (*Invocation, error) {
	inv := &Invocation{}

	for _, out := range t.outputs {
		value, supplied := lookup(values, out.ID)
		if !supplied && (out.IsStream() || out.IsFile()) {
			return nil, &MissingArgumentError{ID: out.ID}
		}

		switch out.Type {
		case OutputStdout:
			target, err := streamTarget(out.ID, value)
			if err != nil {
				return nil, err
			}
			inv.Stdout = target
		case OutputStderr:
			target, err := streamTarget(out.ID, value)
			if err != nil {
				return nil, err
			}
			inv.Stderr = target
		}
	}

	for _, arg := range t.inputs {
		if !arg.IsFile() {
			continue
		}
		files, err := collectFiles(values, arg.ID, arg.Array)
		if err != nil {
			return nil, err
		}
		inv.InputFiles = append(inv.InputFiles, files...)
	}

	for _, out := range t.outputs {
		if !out.IsFile() {
			continue
		}
		files, err := collectFiles(values, out.ID, out.Array)
		if err != nil {
			return nil, err
		}
		inv.OutputFiles = append(inv.OutputFiles, files...)
	}

	command, err := t.Command(values)
	if err != nil {
		return nil, err
	}
	inv.Command = command

	return inv, nil
}

// Submit assembles values and hands the invocation to eng.
func (t *Tool) Submit(ctx context.Context, eng Engine, values Values) (PendingResult, error) {
	inv, err := t.Assemble(values)
	if err != nil {
		return nil, err
	}
	return eng.Submit(ctx, inv)
}

func streamTarget(id string, value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case FileHandle:
		return v.Path(), nil
	default:
		return "", &TypeMismatchError{ID: id, Expected: "string or File", Actual: typeName(value)}
	}
}

// collectFiles returns the handles supplied for a File-typed id; an absent
// value yields none.
func collectFiles(values Values, id string, array bool) ([]FileHandle, error) {
	value, supplied := lookup(values, id)
	if !supplied {
		return nil, nil
	}

	if !array {
		f, ok := value.(FileHandle)
		if !ok {
			return nil, &TypeMismatchError{ID: id, Expected: "File", Actual: typeName(value)}
		}
		return []FileHandle{f}, nil
	}

	items := sequence(value)
	files := make([]FileHandle, 0, len(items))
	for _, item := range items {
		f, ok := item.(FileHandle)
		if !ok {
			return nil, &TypeMismatchError{ID: id, Expected: "list of File", Actual: "list containing " + typeName(item)}
		}
		files = append(files, f)
	}
	return files, nil
}

func typeName(v any) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprintf("%T", v)
}
