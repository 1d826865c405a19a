package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/barlingo/mandelplane/internal/gcd"
)

// GCDResult is the JSON payload of the gcd command.
type GCDResult struct {
	Numbers []uint64 `json:"numbers"`
	GCD     uint64   `json:"gcd"`
}

// NewGCDCommand creates the gcd command.
func NewGCDCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gcd <number>...",
		Short: "Greatest common divisor of positive integers",
		Long: `Compute the greatest common divisor of one or more positive integers
using Euclid's algorithm.

Example:
  mandelplane gcd 42 56
  mandelplane gcd 34 221 --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGCD(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runGCD(opts *RootOptions, args []string, cmd *cobra.Command) error {
	s, err := openSession(opts, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	numbers, err := gcd.ParseArgs(args)
	if err != nil {
		return s.out.Fail(ExitFailure, ErrCodeInvalidNumber, err.Error())
	}

	d, err := gcd.Of(numbers)
	if err != nil {
		return s.out.Fail(ExitFailure, ErrCodeInvalidNumber, fmt.Sprintf("%v (usage: gcd NUMBER ...)", err))
	}

	err = s.record("gcd",
		map[string]string{"numbers": strings.Join(args, " ")},
		map[string]string{"gcd": strconv.FormatUint(d, 10)},
	)
	if err != nil {
		return err
	}

	return s.out.Success(
		GCDResult{Numbers: numbers, GCD: d},
		fmt.Sprintf("The greatest common divisor of %v is %d\n", numbers, d),
	)
}
