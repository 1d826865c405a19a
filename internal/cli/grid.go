package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/barlingo/mandelplane/internal/plane"
)

// GridOptions holds flags for the grid command.
type GridOptions struct {
	*RootOptions
	planeFlags
}

// GridResult is the JSON payload of the grid command. A nil cell did not
// escape within the limit.
type GridResult struct {
	Bounds     string    `json:"bounds"`
	UpperLeft  string    `json:"upper_left"`
	LowerRight string    `json:"lower_right"`
	Limit      uint      `json:"limit"`
	Rows       [][]*uint `json:"rows"`
}

// NewGridCommand creates the grid command.
func NewGridCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GridOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Escape times for every pixel of a raster",
		Long: `Run the escape-time test for every pixel of a raster and print one
line per row: the escape iteration of each pixel, or "-" when it did not
escape within the limit.

Example:
  mandelplane grid --bounds 80x40 --region full --limit 50`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrid(opts, cmd)
		},
	}

	addPlaneFlags(cmd, &opts.planeFlags, true)

	return cmd
}

func runGrid(opts *GridOptions, cmd *cobra.Command) error {
	s, err := openSession(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	opts.LimitSet = cmd.Flags().Changed("limit")
	v, err := s.view(opts.planeFlags)
	if err != nil {
		return err
	}

	rows := plane.Sample(v.Bounds, v.Rect, v.Limit)

	result := GridResult{
		Bounds:     fmt.Sprintf("%dx%d", v.Bounds.X, v.Bounds.Y),
		UpperLeft:  plane.FormatComplex(v.Rect.UpperLeft),
		LowerRight: plane.FormatComplex(v.Rect.LowerRight),
		Limit:      v.Limit,
		Rows:       make([][]*uint, len(rows)),
	}

	var (
		text    strings.Builder
		escaped int
	)
	for y, row := range rows {
		cells := make([]string, len(row))
		result.Rows[y] = make([]*uint, len(row))
		for x, e := range row {
			if !e.Escaped {
				cells[x] = "-"
				continue
			}
			escaped++
			n := e.Count
			result.Rows[y][x] = &n
			cells[x] = strconv.FormatUint(uint64(n), 10)
		}
		text.WriteString(strings.Join(cells, " "))
		text.WriteByte('\n')
	}

	err = s.record("grid",
		map[string]string{
			"bounds":      result.Bounds,
			"upper_left":  result.UpperLeft,
			"lower_right": result.LowerRight,
			"limit":       strconv.FormatUint(uint64(v.Limit), 10),
		},
		map[string]string{
			"pixels":  strconv.Itoa(v.Bounds.X * v.Bounds.Y),
			"escaped": strconv.Itoa(escaped),
		},
	)
	if err != nil {
		return err
	}

	return s.out.Success(result, text.String())
}
