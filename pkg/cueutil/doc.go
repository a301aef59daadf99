// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared CUE parsing and validation utilities.
//
// Two flows are supported. The 3-step parsing flow used for CUE source files
// (the configuration file):
//
//  1. Compile the embedded schema
//  2. Compile user data and unify with schema
//  3. Validate and decode to Go struct
//
// And the checking flow used for documents that were decoded from another
// format (YAML/JSON tool descriptors): a Go value is encoded into CUE,
// unified with one schema definition, and every violation is reported.
//
// # Usage
//
//	//go:embed descriptor_schema.cue
//	var schemaBytes []byte
//
//	schema, err := cueutil.CompileSchema(schemaBytes)
//	if err != nil {
//	    return err
//	}
//	for _, v := range schema.Check("#Input", record) {
//	    fmt.Println(v) // type: invalid value "bogus"
//	}
package cueutil
