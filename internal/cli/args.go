package cli

import "errors"

var (
	// ErrUsage means the arguments do not name exactly one input and one output.
	ErrUsage = errors.New("usage: expected <input_file> <output_file>")
	// ErrHelp means the caller asked for the full help text.
	ErrHelp = errors.New("help requested")
)

// Paths is a validated input/output pair.
type Paths struct {
	Input  string
	Output string
}

// Parse validates the arguments that follow the program name.
func Parse(args []string) (Paths, error) {
	if len(args) == 1 && isHelp(args[0]) {
		return Paths{}, ErrHelp
	}
	if len(args) != 2 {
		return Paths{}, ErrUsage
	}
	if args[0] == "" || args[1] == "" {
		return Paths{}, ErrUsage
	}
	return Paths{Input: args[0], Output: args[1]}, nil
}

func isHelp(arg string) bool {
	switch arg {
	case "help", "--help", "-h":
		return true
	}
	return false
}
