package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/barlingo/mandelplane/internal/plane"
)

// EscapeOptions holds flags for the escape command.
type EscapeOptions struct {
	*RootOptions
	Limit uint
}

// EscapeResult is the JSON payload of the escape command.
type EscapeResult struct {
	Point      string `json:"point"`
	Limit      uint   `json:"limit"`
	Escaped    bool   `json:"escaped"`
	Iterations uint   `json:"iterations,omitempty"`
}

// NewEscapeCommand creates the escape command.
func NewEscapeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EscapeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "escape <re,im>",
		Short: "Run the Mandelbrot escape-time test on a point",
		Long: `Iterate z = z*z + c from z = 0 and report the iteration at which |z|
first exceeds 2, or that it did not within the limit.

Negative coordinates need "--" so they are not read as flags.

Example:
  mandelplane escape 1,0
  mandelplane escape --limit 1000 -- -0.75,0.1`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEscape(opts, args[0], cmd)
		},
	}

	cmd.Flags().UintVar(&opts.Limit, "limit", 0, "iteration limit (default 255)")

	return cmd
}

func runEscape(opts *EscapeOptions, input string, cmd *cobra.Command) error {
	s, err := openSession(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	c, ok := plane.ParseComplex(input)
	if !ok {
		return s.out.Fail(ExitFailure, ErrCodeMalformedPair, fmt.Sprintf("point %q: want RE,IM", input))
	}

	limit := s.cfg.Limit
	if cmd.Flags().Changed("limit") {
		limit = opts.Limit
	}
	n, escaped := plane.EscapeTime(c, limit)

	result := EscapeResult{
		Point:      plane.FormatComplex(c),
		Limit:      limit,
		Escaped:    escaped,
		Iterations: n,
	}

	err = s.record("escape",
		map[string]string{"point": result.Point, "limit": strconv.FormatUint(uint64(limit), 10)},
		map[string]string{"escaped": strconv.FormatBool(escaped), "iterations": strconv.FormatUint(uint64(n), 10)},
	)
	if err != nil {
		return err
	}

	text := fmt.Sprintf("no escape within %d iterations\n", limit)
	if escaped {
		text = fmt.Sprintf("escaped after %d iterations\n", n)
	}
	return s.out.Success(result, text)
}
