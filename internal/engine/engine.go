// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/invowk/cwltool/pkg/cwl"
)

const logPrefix = "engine"

type (
	// Engine runs invocations as local shell tasks. It implements cwl.Engine.
	Engine struct {
		cfg    Config
		runner Runner
		sem    *semaphore.Weighted
		logger *log.Logger

		// ctx is cancelled when Shutdown gives up waiting.
		ctx    context.Context
		cancel context.CancelFunc

		mu     sync.Mutex
		closed bool
		wg     sync.WaitGroup
	}

	// Option configures an Engine.
	Option func(*Engine)

	// waiter is implemented by pending file handles that can be waited on.
	waiter interface {
		Wait(ctx context.Context) error
	}
)

var _ cwl.Engine = (*Engine)(nil)

// WithLogger sets the engine logger.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		e.logger = logger.WithPrefix(logPrefix)
	}
}

// WithRunner replaces the runner selected by Config.Shell.
func WithRunner(runner Runner) Option {
	return func(e *Engine) {
		e.runner = runner
	}
}

// New creates an Engine for cfg.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine configuration: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	e := &Engine{
		cfg:    cfg,
		runner: newRunner(cfg.Shell),
		sem:    semaphore.NewWeighted(int64(cfg.Workers)),
		logger: log.NewWithOptions(os.Stderr, log.Options{Prefix: logPrefix, Level: log.WarnLevel}),
		ctx:    ctx,
		cancel: cancel,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() Config { return e.cfg }

// Submit schedules inv and returns its *Future at once. The task first waits
// for every pending input file, then runs when a worker is free. Errors
// returned here concern submission only; task failures are reported by
// Future.Wait.
func (e *Engine) Submit(ctx context.Context, inv *cwl.Invocation) (cwl.PendingResult, error) {
	return e.SubmitTask(ctx, inv)
}

// SubmitTask is Submit returning the concrete *Future.
func (e *Engine) SubmitTask(ctx context.Context, inv *cwl.Invocation) (*Future, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if inv == nil || inv.Command == "" {
		return nil, errors.New("invocation has no command")
	}
	if err := e.runner.Validate(inv.Command); err != nil {
		return nil, err
	}

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil, ErrEngineClosed
	}
	e.wg.Add(1)
	e.mu.Unlock()

	f := &Future{
		id:      uuid.NewString(),
		command: inv.Command,
		stdout:  e.resolve(inv.Stdout),
		stderr:  e.resolve(inv.Stderr),
		done:    make(chan struct{}),
	}
	for _, out := range inv.OutputFiles {
		f.outputs = append(f.outputs, &OutputFuture{path: out.Path(), future: f})
	}

	e.logger.Debug("task submitted", "id", f.id, "command", f.command, "inputs", len(inv.InputFiles))

	go e.run(f, inv.InputFiles)
	return f, nil
}

// Shutdown stops accepting tasks and waits for running ones. If ctx ends
// first, running tasks are cancelled and ctx's error is returned.
func (e *Engine) Shutdown(ctx context.Context) error {
	e.mu.Lock()
	e.closed = true
	e.mu.Unlock()

	done := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		e.cancel()
		return nil
	case <-ctx.Done():
		e.cancel()
		return ctx.Err()
	}
}

func (e *Engine) run(f *Future, inputs []cwl.FileHandle) {
	defer e.wg.Done()

	if err := e.execute(f, inputs); err != nil {
		e.logger.Warn("task failed", "id", f.id, "error", err)
		f.finish(err)
		return
	}

	e.logger.Debug("task finished", "id", f.id)
	f.finish(nil)
}

func (e *Engine) execute(f *Future, inputs []cwl.FileHandle) error {
	for _, in := range inputs {
		w, ok := in.(waiter)
		if !ok {
			continue
		}
		if err := w.Wait(e.ctx); err != nil {
			return &DependencyError{ID: f.id, Path: in.Path(), Err: err}
		}
	}

	if err := e.sem.Acquire(e.ctx, 1); err != nil {
		return &TaskError{ID: f.id, Command: f.command, Code: 1, Err: err}
	}
	defer e.sem.Release(1)

	stdout, closeStdout, err := openTarget(f.stdout)
	if err != nil {
		return &TaskError{ID: f.id, Command: f.command, Code: 1, Err: err}
	}
	defer closeStdout()

	stderr, closeStderr, err := openTarget(f.stderr)
	if err != nil {
		return &TaskError{ID: f.id, Command: f.command, Code: 1, Err: err}
	}
	defer closeStderr()

	e.logger.Debug("task started", "id", f.id, "runner", e.runner.Name())
	code, err := e.runner.Run(e.ctx, Task{
		Command: f.command,
		Dir:     e.cfg.WorkDir,
		Stdout:  stdout,
		Stderr:  stderr,
	})
	switch {
	case err != nil:
		return &TaskError{ID: f.id, Command: f.command, Code: code, Err: err}
	case code != 0:
		return &TaskError{ID: f.id, Command: f.command, Code: code}
	default:
		return nil
	}
}

// resolve makes a relative redirection path relative to the work directory.
func (e *Engine) resolve(path string) string {
	if path == "" || e.cfg.WorkDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(e.cfg.WorkDir, path)
}

// openTarget creates the redirection file at path, or discards output when
// path is empty. The parent directory must exist.
func openTarget(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	return f, func() { _ = f.Close() }, nil
}
