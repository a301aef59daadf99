// SPDX-License-Identifier: MPL-2.0

package cwl

type (
	// FileHandle is an opaque reference to a filesystem artifact.
	//
	// Both ready files and the promised outputs of still-running tasks
	// implement it, so rendering and type checks treat them uniformly.
	// The package only ever reads Path; it never opens the artifact and
	// never waits for a pending handle.
	FileHandle interface {
		// Path returns the artifact's filesystem path.
		Path() string
		// Pending reports whether the artifact is still being produced.
		Pending() bool
	}

	// File is a FileHandle for an artifact that already exists (or is about
	// to be created by the task it is handed to).
	File struct {
		path string
	}
)

// NewFile returns a ready FileHandle for path.
func NewFile(path string) File {
	return File{path: path}
}

// Path returns the file path.
func (f File) Path() string { return f.path }

// Pending always returns false for a plain File.
func (f File) Pending() bool { return false }

// String returns the file path.
func (f File) String() string { return f.path }
