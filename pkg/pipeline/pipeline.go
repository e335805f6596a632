// Package pipeline turns scene documents into rendered artifacts.
//
// The same code path serves the CLI and the HTTP service: validate the
// scene, resolve it into a drawing plan, compose every shape and builder onto
// a canvas per output format, and cache the result when the scene is
// reproducible.
//
// # Usage
//
//	runner := pipeline.NewRunner(fileCache, nil, logger)
//	result, err := runner.Render(ctx, s, pipeline.Options{
//	    Formats: []string{"svg", "png"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Without a runner, [RenderScene] draws one format with no caching.
package pipeline

import (
	"math"
	"time"

	"github.com/matzehuels/sketchy/pkg/cache"
	"github.com/matzehuels/sketchy/pkg/errors"
	"github.com/matzehuels/sketchy/pkg/scene"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// DefaultScale is the PNG pixel density.
const DefaultScale = 2.0

// Options configures one pipeline run.
type Options struct {
	// Formats lists the outputs to produce. Empty means svg.
	Formats []string `json:"formats,omitempty"`
	// Scale is the PNG pixel density. Zero means DefaultScale.
	Scale float64 `json:"scale,omitempty"`
	// HideIndicators drops builder handles from the output.
	HideIndicators bool `json:"hide_indicators,omitempty"`
	// Style is merged over the scene style before rendering.
	Style *scene.Style `json:"style,omitempty"`
	// Refresh ignores cached artifacts but still stores the new ones.
	Refresh bool `json:"refresh,omitempty"`
}

// SetDefaults fills unset fields.
func (o *Options) SetDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
}

// Validate applies defaults and checks the formats and scale.
func (o *Options) Validate() error {
	o.SetDefaults()
	if err := errors.ValidateFormats(o.Formats); err != nil {
		return err
	}
	if !(o.Scale > 0) || math.IsInf(o.Scale, 0) {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %v", o.Scale)
	}
	return nil
}

// ArtifactKeyOpts returns the cache key options for format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format, Indicators: !o.HideIndicators}
	if format == FormatPNG {
		k.Scale = o.Scale
	}
	return k
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Artifacts maps each requested format to its encoded bytes.
	Artifacts map[string][]byte

	// SceneHash identifies the scene after overrides were applied.
	SceneHash string

	// Reproducible is false when some item drew with an unseeded RNG.
	// Such results are never cached.
	Reproducible bool

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains run statistics.
type Stats struct {
	Shapes     int
	Builders   int
	RenderTime time.Duration
}

// CacheInfo records which formats came from the cache.
type CacheInfo struct {
	Hits map[string]bool
}

// AllHit reports whether every format was served from the cache.
func (c CacheInfo) AllHit(formats []string) bool {
	for _, f := range formats {
		if !c.Hits[f] {
			return false
		}
	}
	return len(formats) > 0
}
