package help

import (
	"fmt"
	"strings"
)

// FormatUsage renders the short usage message printed on a bad invocation:
// the word "usage" and the usage line, one per line.
func FormatUsage(c Command) string {
	return "usage\n" + c.Usage + "\n"
}

// FormatTerminal renders a command's help text for --help output.
func FormatTerminal(c Command) string {
	var sections []string

	// Header: "<name> \u2014 <synopsis>"
	sections = append(sections, fmt.Sprintf("%s \u2014 %s", c.Name, c.Synopsis))

	sections = append(sections, fmt.Sprintf("Usage: %s", c.Usage))

	// Args and flags share one description column.
	maxNameLen := 0
	for _, a := range c.Args {
		maxNameLen = max(maxNameLen, len(a.Name))
	}
	for _, f := range c.Flags {
		maxNameLen = max(maxNameLen, len(f.Name))
	}
	col := 2 + maxNameLen + 3

	if len(c.Args) > 0 {
		lines := []string{"Arguments:"}
		for _, a := range c.Args {
			lines = append(lines, columnLine(a.Name, a.Desc, col))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	if len(c.Flags) > 0 {
		lines := []string{"Flags:"}
		for _, f := range c.Flags {
			lines = append(lines, columnLine(f.Name, f.Desc, col))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	if c.Description != "" {
		sections = append(sections, c.Description)
	}

	if len(c.Examples) > 0 {
		lines := []string{"Examples:"}
		for _, e := range c.Examples {
			lines = append(lines, "  "+e)
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	if c.ConfigPath != "" {
		sections = append(sections, "Configuration: "+c.ConfigPath)
	}

	return strings.Join(sections, "\n\n") + "\n"
}

func columnLine(name, desc string, col int) string {
	gap := col - 2 - len(name)
	return "  " + name + strings.Repeat(" ", gap) + desc
}
