// SPDX-License-Identifier: MPL-2.0

// Package engine runs assembled CWL invocations as local shell tasks.
//
// An Engine is an explicit value: there is no process-wide setup, and several
// engines with different configurations may run side by side. Submit returns
// a Future at once; the task waits for pending input files (outputs of earlier
// tasks), then runs under the engine's worker limit in either the virtual
// shell (mvdan.cc/sh with u-root builtins) or the host's /bin/sh.
package engine
