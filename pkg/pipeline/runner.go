package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sketchy/pkg/cache"
	"github.com/matzehuels/sketchy/pkg/errors"
	"github.com/matzehuels/sketchy/pkg/observability"
	"github.com/matzehuels/sketchy/pkg/scene"
)

const artifactKeyType = "artifact"

// Runner renders scenes with artifact caching.
//
// A Runner holds no per-run state, so one Runner may serve concurrent
// requests as long as its Cache is safe for concurrent use.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer
// selects the DefaultKeyer and a nil logger selects log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Render produces every format in opts for s.
//
// Reproducible scenes are looked up in the cache first and stored after
// rendering. Cache failures never fail the run: a failed read is a miss and a
// failed write is logged.
func (r *Runner) Render(ctx context.Context, s *scene.Scene, opts Options) (res *Result, err error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	s = s.WithOverrides(opts.Style)
	p, err := s.Plan()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	hooks := observability.Render()
	hooks.OnRenderStart(ctx, opts.Formats, len(p.Shapes)+len(p.Builders))
	defer func() { hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err) }()

	res = &Result{
		Artifacts:    make(map[string][]byte, len(opts.Formats)),
		SceneHash:    s.Hash(),
		Reproducible: s.Reproducible(),
		Stats:        Stats{Shapes: len(p.Shapes), Builders: len(p.Builders)},
		CacheInfo:    CacheInfo{Hits: make(map[string]bool, len(opts.Formats))},
	}

	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var key string
		if res.Reproducible {
			key = r.Keyer.ArtifactKey(res.SceneHash, opts.ArtifactKeyOpts(format))
			if data, ok := r.lookup(ctx, key, opts.Refresh); ok {
				res.Artifacts[format] = data
				res.CacheInfo.Hits[format] = true
				continue
			}
		}

		data, err := renderPlan(p, format, opts)
		if err != nil {
			return nil, err
		}
		res.Artifacts[format] = data

		if key != "" {
			r.store(ctx, key, data)
		}
	}

	res.Stats.RenderTime = time.Since(start)
	r.Logger.Info("rendered scene",
		"shapes", res.Stats.Shapes,
		"builders", res.Stats.Builders,
		"formats", opts.Formats,
		"cached", len(res.CacheInfo.Hits),
		"duration", res.Stats.RenderTime.Round(time.Microsecond))
	return res, nil
}

// RenderFormat renders a single format and reports whether it was cached.
func (r *Runner) RenderFormat(ctx context.Context, s *scene.Scene, format string, opts Options) ([]byte, bool, error) {
	if err := errors.ValidateFormat(format); err != nil {
		return nil, false, err
	}
	opts.Formats = []string{format}
	res, err := r.Render(ctx, s, opts)
	if err != nil {
		return nil, false, err
	}
	return res.Artifacts[format], res.CacheInfo.Hits[format], nil
}

func (r *Runner) lookup(ctx context.Context, key string, refresh bool) ([]byte, bool) {
	hooks := observability.Cache()
	if refresh {
		hooks.OnCacheMiss(ctx, artifactKeyType)
		return nil, false
	}
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Debug("cache read failed", "key", key, "err", err)
		hit = false
	}
	if !hit {
		hooks.OnCacheMiss(ctx, artifactKeyType)
		return nil, false
	}
	hooks.OnCacheHit(ctx, artifactKeyType)
	return data, true
}

func (r *Runner) store(ctx context.Context, key string, data []byte) {
	if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
		r.Logger.Debug("cache write failed", "key", key, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, artifactKeyType, len(data))
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
