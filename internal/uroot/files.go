// SPDX-License-Identifier: MPL-2.0

package uroot

import (
	"io"
	"os"
	"path/filepath"
)

// inputFunc processes one input. name is the file argument, or "-" for stdin.
type inputFunc func(r io.Reader, name string) error

// eachInput calls fn for every file in args, resolving relative paths
// against dir, or once for stdin when args is empty.
func eachInput(args []string, stdin io.Reader, dir, cmdName string, fn inputFunc) error {
	if len(args) == 0 {
		return fn(stdin, "-")
	}

	for _, name := range args {
		if err := processFile(name, dir, cmdName, fn); err != nil {
			return err
		}
	}
	return nil
}

// processFile uses a named return so that a close error is not lost.
func processFile(name, dir, cmdName string, fn inputFunc) (err error) {
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return wrapError(cmdName, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = wrapError(cmdName, closeErr)
		}
	}()

	return fn(f, name)
}
