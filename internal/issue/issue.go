// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
)

const (
	DatabaseMalformedId Id = iota + 1
	DatabaseUnreadableId
	DatabaseMissingId
	HomeNotFoundId
	WorkdirUnavailableId
	ConfigLoadFailedId
)

type (
	Id int

	MarkdownMsg string

	HttpLink string

	Issue struct {
		id       Id
		mdMsg    MarkdownMsg
		docLinks []HttpLink
	}
)

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

// Render renders the issue with glamour using the given style ("dark",
// "light", "notty", ...).
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

	databaseMalformedIssue = &Issue{
		id: DatabaseMalformedId,
		mdMsg: `
# The override database could not be parsed

The prompt shows ` + "`default`" + ` until the file is fixed.

## Expected formats
- ` + "`~/.multirust/overrides`" + `: one ` + "`<path>;<toolchain>`" + ` record per line
- ` + "`~/.rustup/settings.toml`" + `: a TOML document with an ` + "`[overrides]`" + ` table of strings:
~~~toml
[overrides]
"/home/user/project" = "nightly-x86_64-unknown-linux-gnu"
~~~

## Things you can try
- Remove blank lines and lines without a ` + "`;`" + ` from the plain file
- Let rustup rewrite the file:
~~~
$ rustup override list
~~~`,
		docLinks: []HttpLink{"https://rust-lang.github.io/rustup/overrides.html"},
	}

	databaseUnreadableIssue = &Issue{
		id: DatabaseUnreadableId,
		mdMsg: `
# The override database exists but cannot be read

## Things you can try
- Check the permissions of ` + "`~/.multirust/overrides`" + `
- Make sure the path is a regular file, not a directory`,
	}

	databaseMissingIssue = &Issue{
		id: DatabaseMissingId,
		mdMsg: `
# No override database found

None of these files exist, so every directory resolves to ` + "`default`" + `:
1. ` + "`~/.multirust/overrides`" + `
2. ` + "`~/.rustup/settings.toml`" + `
3. ` + "`~/.multirust/settings.toml`" + `

## Things you can try
- Set an override for a project:
~~~
$ rustup override set nightly
~~~`,
		docLinks: []HttpLink{"https://rust-lang.github.io/rustup/overrides.html"},
	}

	homeNotFoundIssue = &Issue{
		id: HomeNotFoundId,
		mdMsg: `
# Home directory not found

## Things you can try
- Set ` + "`HOME`" + ` (or ` + "`USERPROFILE`" + ` on Windows)
- Pass ` + "`--home`" + ` or set ` + "`RUSTUP_PROMPT_HOME`",
	}

	workdirUnavailableIssue = &Issue{
		id: WorkdirUnavailableId,
		mdMsg: `
# The current directory is unavailable

It may have been removed while the shell was still inside it.

## Things you can try
- ` + "`cd`" + ` into an existing directory
- Pass ` + "`--dir`" + ` explicitly`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load the configuration

Defaults are used instead.

## Things you can try
- Check the CUE syntax of ` + "`config.cue`" + `
- Valid keys are ` + "`home`" + `, ` + "`verbose`" + ` and ` + "`log_level`",
	}

	issues = map[Id]*Issue{
		databaseMalformedIssue.Id():  databaseMalformedIssue,
		databaseUnreadableIssue.Id(): databaseUnreadableIssue,
		databaseMissingIssue.Id():    databaseMissingIssue,
		homeNotFoundIssue.Id():       homeNotFoundIssue,
		workdirUnavailableIssue.Id(): workdirUnavailableIssue,
		configLoadFailedIssue.Id():   configLoadFailedIssue,
	}
)

func Get(id Id) *Issue {
	return issues[id]
}
