// SPDX-License-Identifier: MPL-2.0

// Package uroot provides the built-in utilities of the engine's virtual shell.
//
// cat and touch wrap the u-root implementations (github.com/u-root/u-root
// pkg/core); wc is implemented here. When the virtual shell runs a rendered
// tool command, the engine's exec handler checks the Registry first and
// falls back to host binaries for everything else (find, for example, needs
// GNU options such as -maxdepth that u-root does not provide).
//
// Errors from builtins are prefixed with "[uroot]":
//
//	[uroot] cat: /missing.txt: no such file or directory
package uroot
