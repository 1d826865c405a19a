package cli

import (
	"context"
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/barlingo/mandelplane/internal/config"
	"github.com/barlingo/mandelplane/internal/plane"
	"github.com/barlingo/mandelplane/internal/store"
)

// session carries what a command needs after global flags are applied:
// the formatter, the layered config and, when enabled, the journal.
type session struct {
	ctx     context.Context
	out     *OutputFormatter
	cfg     config.Config
	journal *store.Store
	runID   string
}

// openSession loads the config file and opens the journal if one is
// configured. Failures are already reported through the formatter.
func openSession(opts *RootOptions, cmd *cobra.Command) (*session, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	s := &session{
		ctx: ctx,
		out: newFormatter(opts, cmd),
		cfg: config.Defaults(),
	}

	if opts.Config != "" {
		fileCfg, err := config.Load(opts.Config)
		if err != nil {
			return nil, s.out.FailWrap(ExitCommandError, ErrCodeConfig, "loading config", err)
		}
		s.cfg = s.cfg.Merge(fileCfg)
		s.out.VerboseLog("Loaded config from %s", opts.Config)
	}
	s.cfg = s.cfg.Merge(config.Config{Database: opts.Database})

	if s.cfg.Database == "" {
		return s, nil
	}

	st, err := store.Open(s.cfg.Database)
	if err != nil {
		return nil, s.out.FailWrap(ExitCommandError, ErrCodeStore, "opening journal", err)
	}

	gen := opts.RunIDs
	if gen == nil {
		gen = store.UUIDv7Generator{}
	}
	s.journal = st
	s.runID = gen.Generate()
	s.out.RunID = s.runID
	slog.Debug("journal opened", "path", s.cfg.Database, "run_id", s.runID)

	return s, nil
}

// Close releases the journal.
func (s *session) Close() {
	if s.journal == nil {
		return
	}
	if err := s.journal.Close(); err != nil {
		slog.Error("error closing journal", "error", err)
	}
}

// record appends a computation to the journal when one is open.
func (s *session) record(kind string, input, output map[string]string) error {
	if s.journal == nil {
		return nil
	}

	c, err := s.journal.Append(s.ctx, s.runID, kind, input, output)
	if err != nil {
		return s.out.FailWrap(ExitCommandError, ErrCodeStore, "recording "+kind, err)
	}
	slog.Debug("computation recorded", "kind", kind, "id", c.ID, "seq", c.Seq)
	return nil
}

// planeFlags are the per-command overrides of the plane settings.
type planeFlags struct {
	Bounds     string
	UpperLeft  string
	LowerRight string
	Region     string
	Limit      uint
	LimitSet   bool // --limit was given; 0 is a valid limit
}

// addPlaneFlags registers the raster and rectangle flags; the limit flag
// only when withLimit is set.
func addPlaneFlags(cmd *cobra.Command, f *planeFlags, withLimit bool) {
	cmd.Flags().StringVar(&f.Bounds, "bounds", "", "raster size WIDTHxHEIGHT (default 1000x750)")
	cmd.Flags().StringVar(&f.UpperLeft, "upper-left", "", "upper-left corner RE,IM")
	cmd.Flags().StringVar(&f.LowerRight, "lower-right", "", "lower-right corner RE,IM")
	cmd.Flags().StringVar(&f.Region, "region", "", "named region (see 'mandelplane regions')")
	if withLimit {
		cmd.Flags().UintVar(&f.Limit, "limit", 0, "iteration limit (default 255)")
	}
}

// view resolves config and flags into a raster over the plane.
func (s *session) view(f planeFlags) (config.View, error) {
	cfg := s.cfg.Merge(config.Config{
		Bounds:     f.Bounds,
		UpperLeft:  f.UpperLeft,
		LowerRight: f.LowerRight,
		Region:     f.Region,
	})

	v, err := cfg.Resolve()
	switch {
	case errors.Is(err, config.ErrUnknownRegion):
		return v, s.out.Fail(ExitCommandError, ErrCodeUnknownRegion, err.Error())
	case err != nil:
		return v, s.out.Fail(ExitFailure, ErrCodeMalformedPair, err.Error())
	}
	if f.LimitSet {
		v.Limit = f.Limit
	}

	s.out.VerboseLog("Raster %dx%d over %s .. %s", v.Bounds.X, v.Bounds.Y,
		plane.FormatComplex(v.Rect.UpperLeft), plane.FormatComplex(v.Rect.LowerRight))
	return v, nil
}
