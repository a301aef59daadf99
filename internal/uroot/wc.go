// SPDX-License-Identifier: MPL-2.0

package uroot

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"unicode"
)

type (
	// wcCommand implements wc (line, word and byte counts).
	wcCommand struct {
		flags []FlagInfo
	}

	wcCounts struct {
		lines, words, bytes, chars int64
	}

	wcColumns struct {
		lines, words, bytes, chars bool
	}
)

func newWcCommand() *wcCommand {
	return &wcCommand{
		flags: []FlagInfo{
			{Name: "l", Description: "print line count"},
			{Name: "w", Description: "print word count"},
			{Name: "c", Description: "print byte count"},
			{Name: "m", Description: "print character count"},
		},
	}
}

// Name returns the command name.
func (c *wcCommand) Name() string { return "wc" }

// SupportedFlags returns the flags supported by this command.
func (c *wcCommand) SupportedFlags() []FlagInfo { return c.flags }

// Run executes wc.
func (c *wcCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	var cols wcColumns
	fs := flag.NewFlagSet("wc", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolVar(&cols.lines, "l", false, "print line count")
	fs.BoolVar(&cols.words, "w", false, "print word count")
	fs.BoolVar(&cols.bytes, "c", false, "print byte count")
	fs.BoolVar(&cols.chars, "m", false, "print character count")
	_ = fs.Parse(args[1:]) //nolint:errcheck // unsupported flags are ignored

	if cols == (wcColumns{}) {
		cols = wcColumns{lines: true, words: true, bytes: true}
	}

	files := fs.Args()
	var total wcCounts
	err := eachInput(files, hc.Stdin, hc.Dir, c.Name(), func(r io.Reader, name string) error {
		counts, err := countInput(r)
		if err != nil {
			return wrapError(c.Name(), err)
		}
		total.add(counts)

		if name == "-" {
			name = ""
		}
		printCounts(hc.Stdout, counts, name, cols)
		return nil
	})
	if err != nil {
		return err
	}

	if len(files) > 1 {
		printCounts(hc.Stdout, total, "total", cols)
	}
	return nil
}

func (w *wcCounts) add(o wcCounts) {
	w.lines += o.lines
	w.words += o.words
	w.bytes += o.bytes
	w.chars += o.chars
}

// countInput streams r rune by rune.
func countInput(r io.Reader) (wcCounts, error) {
	var counts wcCounts
	reader := bufio.NewReader(r)
	inWord := false

	for {
		ru, size, err := reader.ReadRune()
		if errors.Is(err, io.EOF) {
			return counts, nil
		}
		if err != nil {
			return counts, fmt.Errorf("reading input: %w", err)
		}

		counts.bytes += int64(size)
		counts.chars++
		if ru == '\n' {
			counts.lines++
		}

		switch {
		case unicode.IsSpace(ru):
			inWord = false
		case !inWord:
			inWord = true
			counts.words++
		}
	}
}

// printCounts writes the selected columns; -c wins over -m.
func printCounts(out io.Writer, counts wcCounts, name string, cols wcColumns) {
	var parts []string
	if cols.lines {
		parts = append(parts, fmt.Sprintf("%7d", counts.lines))
	}
	if cols.words {
		parts = append(parts, fmt.Sprintf("%7d", counts.words))
	}
	if cols.bytes {
		parts = append(parts, fmt.Sprintf("%7d", counts.bytes))
	}
	if cols.chars && !cols.bytes {
		parts = append(parts, fmt.Sprintf("%7d", counts.chars))
	}

	line := strings.Join(parts, " ")
	if name != "" {
		line += " " + name
	}
	fmt.Fprintln(out, line)
}
