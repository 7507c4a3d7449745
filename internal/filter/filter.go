package filter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/suykerbuyk/diffmarks/internal/cli"
	"github.com/suykerbuyk/diffmarks/internal/logging"
	"github.com/suykerbuyk/diffmarks/internal/sanitize"
	"github.com/suykerbuyk/diffmarks/internal/textio"
)

// Result holds the outcome of one strip run.
type Result struct {
	Input    string
	Output   string
	BytesIn  int
	BytesOut int
	sanitize.Stats
}

// Run reads paths.Input, strips diff marks and writes paths.Output.
// The output file is not touched unless the input was read in full.
// A nil logger discards.
func Run(ctx context.Context, paths cli.Paths, opts textio.WriteOptions, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := textio.ReadAll(paths.Input)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	stripped, stats := sanitize.Strip(string(raw))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := textio.WriteAll(paths.Output, []byte(stripped), opts); err != nil {
		return nil, fmt.Errorf("write output: %w", err)
	}

	res := &Result{
		Input:    paths.Input,
		Output:   paths.Output,
		BytesIn:  len(raw),
		BytesOut: len(stripped),
		Stats:    stats,
	}

	logger.Debug("strip.done",
		"input", res.Input,
		"output", res.Output,
		"bytes_in", res.BytesIn,
		"bytes_out", res.BytesOut,
		"insertions", res.Insertions,
		"deletions", res.Deletions,
	)

	return res, nil
}
