package help

import "strings"

// Version is the diffmarks release version. `make build` and `make man`
// inject it with -ldflags "-X .../internal/help.Version=<git describe>".
// Defaults to "dev" when built without version injection (e.g. `go run`).
var Version = "dev"

// Flag describes a command-line flag.
type Flag struct {
	Name string // e.g. "-h, --help"
	Desc string
}

// Arg describes a positional argument.
type Arg struct {
	Name string // e.g. "input_file"
	Desc string
}

// Command describes a binary's invocation for usage, --help and man output.
type Command struct {
	Name        string // binary name
	Synopsis    string // one-line description (lowercase, for --help header)
	Usage       string // full usage line without the "Usage:" prefix
	Args        []Arg
	Flags       []Flag
	Description string   // multi-line prose (stored verbatim)
	Examples    []string // one per line, without leading 2-space indent
	ConfigPath  string   // shown in the footer and the FILES man section
}

// ManName returns the man page name. Spaces in Name become hyphens.
func (c Command) ManName() string {
	return strings.ReplaceAll(c.Name, " ", "-")
}

// Main is the diffmarks command.
var Main = Command{
	Name:     "diffmarks",
	Synopsis: "strip <ins> and <del> diff marks from a text file",
	Usage:    "diffmarks <input_file> <output_file>",
	Args: []Arg{
		{Name: "input_file", Desc: "Text file to read (zstd-decoded if it ends in .zst)"},
		{Name: "output_file", Desc: "File to write; replaced if it exists (zstd if .zst)"},
	},
	Flags: []Flag{
		{Name: "-h, --help", Desc: "Show this help"},
	},
	Description: `Reads input_file in full, unwraps every <ins>...</ins> span (the
markers go, the text stays), then removes every <del>...</del> span
together with its text, and writes the result to output_file.

Spans may cross line breaks. Each span ends at the first closing
marker after its opener, and an opener with no closer is left as is.
Markers are matched case-sensitively.

Exit status is 0 on success, 1 on an I/O or config error, and 2 when
the arguments do not name exactly one input and one output file.`,
	Examples: []string{
		"diffmarks draft.md clean.md        Strip marks from draft.md",
		"diffmarks review.txt.zst out.txt   Read a zstd-compressed input",
		"diffmarks notes.txt notes.txt      Rewrite a file in place",
	},
	ConfigPath: "~/.config/diffmarks/config.toml",
}
