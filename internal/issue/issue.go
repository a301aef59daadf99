// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

const (
	DescriptorNotFoundId Id = iota + 1
	InvalidDescriptorId
	ToolNotFoundId
	InvalidArgumentsId
	TaskFailedId
	ConfigLoadFailedId
	ShellNotFoundId
)

type (
	// Id identifies a catalog entry.
	Id int

	// MarkdownMsg is Markdown help text.
	MarkdownMsg string

	// HttpLink is a documentation link.
	HttpLink string

	// Issue is a catalog entry rendered to the terminal when the matching
	// failure happens.
	Issue struct {
		id       Id
		mdMsg    MarkdownMsg
		docLinks []HttpLink
	}
)

// Id returns the catalog id.
func (i *Issue) Id() Id {
	return i.id
}

// MarkdownMsg returns the Markdown source.
func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// DocLinks returns a copy of the documentation links.
func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

// Render renders the help text with the glamour style at stylePath
// (a built-in style name such as "dark" or "notty", or a JSON style file).
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range i.docLinks {
			md.WriteString("- <" + string(link) + ">\n")
		}
	}
	return render(md.String(), stylePath)
}

var (
	render = glamour.Render

	cwlToolSpec HttpLink = "https://www.commonwl.org/v1.2/CommandLineTool.html"

	descriptorNotFoundIssue = &Issue{
		id: DescriptorNotFoundId,
		mdMsg: `
# Descriptor not found!

The tool argument is neither a readable file nor a built-in tool.

## Things you can try:
- Check the path to the ` + "`.cwl`" + ` file
- List the built-in tools:
~~~
$ cwltool tools
~~~`,
	}

	invalidDescriptorIssue = &Issue{
		id: InvalidDescriptorId,
		mdMsg: `
# Invalid CWL descriptor!

The descriptor does not follow the supported CommandLineTool subset. Every
violation is listed above.

## Rules to check:
- ` + "`cwlVersion`" + ` looks like ` + "`v1`, `v1.2` or `v1.2.0`" + `
- ` + "`class`" + ` is ` + "`CommandLineTool`" + `
- ` + "`baseCommand`" + ` is a string or a list of strings
- ` + "`inputs`" + ` declares at least one input, as a list with ` + "`id`" + ` fields or a mapping keyed by id
- input types are ` + "`boolean`, `int`, `long`, `float`, `double`, `string`, `File`" + ` with at most one ` + "`[]` or `?`" + ` suffix, or ` + "`array`" + ` with ` + "`items`" + `
- output types are ` + "`stdout`, `stderr`, `File`, `File[]`" + ` or ` + "`array`" + ` of ` + "`File`" + `

## Example:
~~~yaml
cwlVersion: v1.2
class: CommandLineTool
baseCommand: wc
inputs:
  text_file:
    type: File
    inputBinding:
      position: 1
outputs:
  stdout:
    type: stdout
~~~`,
		docLinks: []HttpLink{cwlToolSpec},
	}

	toolNotFoundIssue = &Issue{
		id: ToolNotFoundId,
		mdMsg: `
# Built-in tool not found!

No built-in descriptor matches that name or pattern.

## Things you can try:
~~~
$ cwltool tools
$ cwltool tools 'c*'
~~~`,
	}

	invalidArgumentsIssue = &Issue{
		id: InvalidArgumentsId,
		mdMsg: `
# Invalid arguments!

The values given for the tool's inputs and outputs could not be used.

## Things you can try:
- Show the command template and every argument:
~~~
$ cwltool describe <tool>
~~~
- Pass values as ` + "`--id=value`" + ` flags; lists use brackets: ` + "`--files=[a.txt, b.txt]`" + `
- Or pass a single YAML/JSON values file
- Declared ` + "`stdout`" + `, ` + "`stderr`" + ` and File outputs always need a value`,
	}

	taskFailedIssue = &Issue{
		id: TaskFailedId,
		mdMsg: `
# The tool exited with an error!

The command ran but returned a non-zero exit code. Its standard error is
shown above when the descriptor declares a ` + "`stderr`" + ` output.

## Things you can try:
- Print the exact command without running it:
~~~
$ cwltool render <tool> <values>
~~~
- Retry with the host shell:
~~~
$ CWLTOOL_ENGINE_SHELL=native cwltool run <tool> <values>
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

## Things you can try:
- Show the effective configuration:
~~~
$ cwltool config show
~~~
- Write a fresh default file:
~~~
$ cwltool config init
~~~`,
	}

	shellNotFoundIssue = &Issue{
		id: ShellNotFoundId,
		mdMsg: `
# Shell not found!

The ` + "`native`" + ` engine shell runs commands with ` + "`/bin/sh`" + `, which is not available.

## Things you can try:
~~~cue
engine: shell: "virtual"
~~~`,
	}

	issues = map[Id]*Issue{
		descriptorNotFoundIssue.Id(): descriptorNotFoundIssue,
		invalidDescriptorIssue.Id():  invalidDescriptorIssue,
		toolNotFoundIssue.Id():       toolNotFoundIssue,
		invalidArgumentsIssue.Id():   invalidArgumentsIssue,
		taskFailedIssue.Id():         taskFailedIssue,
		configLoadFailedIssue.Id():   configLoadFailedIssue,
		shellNotFoundIssue.Id():      shellNotFoundIssue,
	}
)

// Values returns every catalog entry ordered by id.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		out = append(out, i)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return out
}

// Get returns the catalog entry for id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}
