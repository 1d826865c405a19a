package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/barlingo/mandelplane/internal/plane"
)

// RegionResult is one entry of the regions command's JSON payload.
type RegionResult struct {
	Name       string `json:"name"`
	UpperLeft  string `json:"upper_left"`
	LowerRight string `json:"lower_right"`
}

// NewRegionsCommand creates the regions command.
func NewRegionsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "regions",
		Short:         "List named regions of the complex plane",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegions(rootOpts, cmd)
		},
	}

	return cmd
}

func runRegions(opts *RootOptions, cmd *cobra.Command) error {
	out := newFormatter(opts, cmd)

	var (
		results []RegionResult
		text    strings.Builder
	)
	for _, r := range plane.Regions() {
		rr := RegionResult{
			Name:       r.Name,
			UpperLeft:  plane.FormatComplex(r.UpperLeft),
			LowerRight: plane.FormatComplex(r.LowerRight),
		}
		results = append(results, rr)
		fmt.Fprintf(&text, "%-24s %-16s %s\n", rr.Name, rr.UpperLeft, rr.LowerRight)
	}

	return out.Success(results, text.String())
}
