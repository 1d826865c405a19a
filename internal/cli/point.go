package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/barlingo/mandelplane/internal/plane"
)

// PointOptions holds flags for the point command.
type PointOptions struct {
	*RootOptions
	planeFlags
	Pixel string
}

// PointResult is the JSON payload of the point command. Coordinates are
// strings so non-finite results survive JSON encoding.
type PointResult struct {
	Bounds string `json:"bounds"`
	Pixel  string `json:"pixel"`
	Point  string `json:"point"`
}

// NewPointCommand creates the point command.
func NewPointCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PointOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "point",
		Short: "Map a pixel to a point of the complex plane",
		Long: `Map a pixel of a raster onto the rectangle of the complex plane the
raster covers. Row 0 is the top of the image.

Pixels outside the raster are extrapolated, not rejected.

Example:
  mandelplane point --bounds 100x200 --pixel 25,175 --upper-left=-1,1 --lower-right=1,-1
  mandelplane point --region seahorse-valley --pixel 0,0`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPoint(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Pixel, "pixel", "", "pixel COLUMN,ROW (required)")
	_ = cmd.MarkFlagRequired("pixel")
	addPlaneFlags(cmd, &opts.planeFlags, false)

	return cmd
}

func runPoint(opts *PointOptions, cmd *cobra.Command) error {
	s, err := openSession(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	pixel, ok := plane.ParsePixel(opts.Pixel)
	if !ok {
		return s.out.Fail(ExitFailure, ErrCodeMalformedPair, fmt.Sprintf("pixel %q: want COLUMN,ROW", opts.Pixel))
	}

	v, err := s.view(opts.planeFlags)
	if err != nil {
		return err
	}

	c := v.Rect.PixelToPoint(v.Bounds, pixel)
	result := PointResult{
		Bounds: fmt.Sprintf("%dx%d", v.Bounds.X, v.Bounds.Y),
		Pixel:  fmt.Sprintf("%d,%d", pixel.X, pixel.Y),
		Point:  plane.FormatComplex(c),
	}

	err = s.record("point",
		map[string]string{
			"bounds":      result.Bounds,
			"pixel":       result.Pixel,
			"upper_left":  plane.FormatComplex(v.Rect.UpperLeft),
			"lower_right": plane.FormatComplex(v.Rect.LowerRight),
		},
		map[string]string{"point": result.Point},
	)
	if err != nil {
		return err
	}

	return s.out.Success(result, result.Point+"\n")
}
