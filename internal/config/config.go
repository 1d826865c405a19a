// Package config loads mandelplane settings from YAML or CUE files.
//
// Every file is validated against the closed #Config definition in
// schema.cue before it is decoded, so unknown keys and out-of-range values
// are rejected with the CUE position of the offending field.
//
// Settings are layered: built-in defaults, then the config file, then
// command-line flags. A layer that names a region discards the corners
// inherited from lower layers.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/barlingo/mandelplane/internal/plane"
)

//go:embed schema.cue
var schemaCUE string

var (
	// ErrInvalid wraps every configuration error.
	ErrInvalid = errors.New("invalid configuration")

	// ErrUnknownRegion is returned when a region name is not registered.
	ErrUnknownRegion = errors.New("unknown region")
)

// Config holds plane and journal settings. Zero values mean "not set".
type Config struct {
	Bounds     string `json:"bounds,omitempty"`      // "WxH"
	UpperLeft  string `json:"upper_left,omitempty"`  // "re,im"
	LowerRight string `json:"lower_right,omitempty"` // "re,im"
	Region     string `json:"region,omitempty"`
	Limit      uint   `json:"limit,omitempty"`
	Database   string `json:"database,omitempty"`
}

// View is a fully resolved raster over a rectangle of the plane.
type View struct {
	Bounds image.Point
	Rect   plane.Rect
	Limit  uint
}

// Defaults returns the built-in settings.
func Defaults() Config {
	return Config{
		Bounds: "1000x750",
		Region: plane.DefaultRegion,
		Limit:  255,
	}
}

// Merge returns c overridden by every field set in o.
func (c Config) Merge(o Config) Config {
	if o.Bounds != "" {
		c.Bounds = o.Bounds
	}
	if o.Region != "" {
		c.Region = o.Region
		c.UpperLeft, c.LowerRight = "", ""
	}
	if o.UpperLeft != "" {
		c.UpperLeft = o.UpperLeft
	}
	if o.LowerRight != "" {
		c.LowerRight = o.LowerRight
	}
	if o.Limit != 0 {
		c.Limit = o.Limit
	}
	if o.Database != "" {
		c.Database = o.Database
	}
	return c
}

// Resolve parses c into a View. Explicit corners take precedence over the
// region's corners.
func (c Config) Resolve() (View, error) {
	var v View

	bounds, ok := plane.ParseBounds(c.Bounds)
	if !ok {
		return v, fmt.Errorf("%w: bounds %q: want WIDTHxHEIGHT", ErrInvalid, c.Bounds)
	}
	v.Bounds = bounds

	if c.Region != "" {
		r, ok := plane.LookupRegion(c.Region)
		if !ok {
			return v, fmt.Errorf("%w %q", ErrUnknownRegion, c.Region)
		}
		v.Rect = r
	}

	if c.UpperLeft != "" {
		p, ok := plane.ParseComplex(c.UpperLeft)
		if !ok {
			return v, fmt.Errorf("%w: upper_left %q: want RE,IM", ErrInvalid, c.UpperLeft)
		}
		v.Rect.UpperLeft = p
	}
	if c.LowerRight != "" {
		p, ok := plane.ParseComplex(c.LowerRight)
		if !ok {
			return v, fmt.Errorf("%w: lower_right %q: want RE,IM", ErrInvalid, c.LowerRight)
		}
		v.Rect.LowerRight = p
	}

	v.Limit = c.Limit
	return v, nil
}

// Load reads a .yaml, .yml or .cue file, validates it against the schema and
// decodes it.
func Load(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	ctx := cuecontext.New()

	var val cue.Value
	switch filepath.Ext(path) {
	case ".cue":
		val = ctx.CompileBytes(data, cue.Filename(path))
	case ".yaml", ".yml":
		m := map[string]any{}
		if err := yaml.Unmarshal(data, &m); err != nil {
			return cfg, fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
		}
		val = ctx.Encode(m)
	default:
		return cfg, fmt.Errorf("%w: %s: unsupported extension (want .yaml, .yml or .cue)", ErrInvalid, path)
	}
	if err := val.Err(); err != nil {
		return cfg, fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
	}

	if err := validate(ctx, val); err != nil {
		return cfg, fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
	}

	if err := val.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("%w: %s: decode: %v", ErrInvalid, path, err)
	}
	return cfg, nil
}

// validate unifies val with #Config and requires a concrete result.
func validate(ctx *cue.Context, val cue.Value) error {
	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("schema: %w", err)
	}

	def := schema.LookupPath(cue.ParsePath("#Config"))
	unified := def.Unify(val)
	if err := unified.Err(); err != nil {
		return err
	}
	return unified.Validate(cue.Concrete(true))
}
