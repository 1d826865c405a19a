package cli

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/barlingo/mandelplane/internal/pair"
)

// PairOptions holds flags for the pair command.
type PairOptions struct {
	*RootOptions
	Separator string
	Type      string // "int" | "float"
}

// PairResult is the JSON payload of the pair command.
type PairResult struct {
	Left  any `json:"left"`
	Right any `json:"right"`
}

// NewPairCommand creates the pair command.
func NewPairCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PairOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "pair <input>",
		Short: "Parse a two-field value",
		Long: `Parse "<left><sep><right>" into two numbers.

The input is trimmed of surrounding white space; the fields themselves are
not. Parsing fails if the separator is missing or either field is not a
number of the requested type.

Example:
  mandelplane pair 1000x750 --sep x
  mandelplane pair --type float -- "-1.25,0.5"`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPair(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Separator, "sep", ",", "separator character")
	cmd.Flags().StringVar(&opts.Type, "type", "int", "field type (int|float)")

	return cmd
}

func runPair(opts *PairOptions, input string, cmd *cobra.Command) error {
	s, err := openSession(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	sep, width := utf8.DecodeRuneInString(opts.Separator)
	if width != len(opts.Separator) || (sep == utf8.RuneError && width <= 1) {
		return s.out.Fail(ExitCommandError, ErrCodeGeneric, fmt.Sprintf("separator must be a single UTF-8 character, got %q", opts.Separator))
	}

	switch opts.Type {
	case "int":
		return reportPair(s, input, sep, pair.Int64)
	case "float":
		return reportPair(s, input, sep, pair.Float64)
	default:
		return s.out.Fail(ExitCommandError, ErrCodeGeneric, fmt.Sprintf("invalid type %q: must be int or float", opts.Type))
	}
}

func reportPair[T any](s *session, input string, sep rune, parse func(string) (T, error)) error {
	p, ok := pair.Parse(input, sep, parse)
	if !ok {
		return s.out.Fail(ExitFailure, ErrCodeMalformedPair, fmt.Sprintf("cannot parse %q as <left>%c<right>", input, sep))
	}

	err := s.record("pair",
		map[string]string{"input": input, "sep": string(sep)},
		map[string]string{"left": fmt.Sprint(p.Left), "right": fmt.Sprint(p.Right)},
	)
	if err != nil {
		return err
	}

	return s.out.Success(PairResult{Left: p.Left, Right: p.Right}, p.String()+"\n")
}
