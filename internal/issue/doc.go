// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable errors and the catalog of Markdown help
// pages the CLI renders when a descriptor, an argument set or a task fails.
package issue
