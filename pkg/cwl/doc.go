// SPDX-License-Identifier: MPL-2.0

// Package cwl turns Common Workflow Language CommandLineTool descriptors into
// shell invocations.
//
// A descriptor (a restricted subset of the CWL CommandLineTool class, as YAML
// or JSON) is decoded with its key order preserved, validated against an
// embedded CUE schema plus document-level rules, and normalized into an
// ordered, immutable argument model. A Tool built from that model renders a
// command line from caller-supplied Values and assembles the Invocation that
// is handed to an execution Engine.
//
// The package never executes processes, never touches the files behind
// FileHandle values and never waits on pending results; every Tool method is
// a pure function of the cached model and its arguments, and is safe for
// concurrent use.
//
//	tool, err := cwl.Parse("wc.cwl")
//	if err != nil {
//	    return err
//	}
//	inv, err := tool.Assemble(cwl.Values{
//	    "input_files": []cwl.FileHandle{cwl.NewFile("a.txt")},
//	    "stdout":      "out.txt",
//	    "stderr":      "err.txt",
//	})
package cwl
