package pipeline

import (
	"github.com/matzehuels/sketchy/pkg/compose"
	"github.com/matzehuels/sketchy/pkg/errors"
	"github.com/matzehuels/sketchy/pkg/render/sink"
	"github.com/matzehuels/sketchy/pkg/scene"
)

// RenderScene draws s in a single format without caching.
func RenderScene(s *scene.Scene, format string, opts Options) ([]byte, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	p, err := s.WithOverrides(opts.Style).Plan()
	if err != nil {
		return nil, err
	}
	return renderPlan(p, format, opts)
}

// Draw composes every shape and then every builder of p onto c.
func Draw(c sink.Canvas, p *scene.Plan) {
	for i := range p.Shapes {
		item := &p.Shapes[i]
		compose.Draw(c, item.Shape, &item.Options)
	}
	for i := range p.Builders {
		item := &p.Builders[i]
		compose.DrawBuilder(c, c, item.State, &item.Options)
	}
}

func renderPlan(p *scene.Plan, format string, opts Options) ([]byte, error) {
	c, err := sink.New(format, p.Width, p.Height, canvasOptions(p, opts)...)
	if err != nil {
		return nil, err
	}
	Draw(c, p)
	data, err := c.Encode()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode %s", format)
	}
	return data, nil
}

func canvasOptions(p *scene.Plan, opts Options) []sink.Option {
	out := []sink.Option{sink.WithScale(opts.Scale)}
	if p.Background != nil {
		out = append(out, sink.WithBackground(*p.Background))
	}
	if opts.HideIndicators {
		out = append(out, sink.WithoutIndicators())
	}
	return out
}
