package compose

import (
	"image/color"
	"math"
	"testing"

	"github.com/matzehuels/sketchy/pkg/bezpath"
	"github.com/matzehuels/sketchy/pkg/builders"
	"github.com/matzehuels/sketchy/pkg/geom"
	"github.com/matzehuels/sketchy/pkg/rough"
	"github.com/matzehuels/sketchy/pkg/shapes"
)

type drawOp struct {
	kind string // fill, stroke, push, pop, pos, vec
	path bezpath.Path
	pts  []geom.Point
}

// recorder captures draw calls with paths mapped to scene coordinates.
type recorder struct {
	ops   []drawOp
	stack []geom.Affine
}

func (r *recorder) current() geom.Affine {
	if len(r.stack) == 0 {
		return geom.Identity()
	}
	return r.stack[len(r.stack)-1]
}

func (r *recorder) Fill(p rough.FillPath, _ FillStyle) {
	r.ops = append(r.ops, drawOp{kind: "fill", path: p.Path.Transform(r.current())})
}

func (r *recorder) Stroke(p bezpath.Path, _ StrokeStyle) {
	r.ops = append(r.ops, drawOp{kind: "stroke", path: p.Transform(r.current())})
}

func (r *recorder) PushTransform(t geom.Affine) {
	r.stack = append(r.stack, r.current().Mul(t))
	r.ops = append(r.ops, drawOp{kind: "push"})
}

func (r *recorder) PopTransform() {
	r.stack = r.stack[:len(r.stack)-1]
	r.ops = append(r.ops, drawOp{kind: "pop"})
}

func (r *recorder) PosIndicator(_ PenState, pos geom.Point) {
	r.ops = append(r.ops, drawOp{kind: "pos", pts: []geom.Point{pos}})
}

func (r *recorder) VecIndicator(_ PenState, from, to geom.Point) {
	r.ops = append(r.ops, drawOp{kind: "vec", pts: []geom.Point{from, to}})
}

func (r *recorder) kinds() []string {
	out := make([]string, len(r.ops))
	for i, op := range r.ops {
		out[i] = op.kind
	}
	return out
}

func (r *recorder) count(kind string) int {
	n := 0
	for _, op := range r.ops {
		if op.kind == kind {
			n++
		}
	}
	return n
}

var (
	black = color.NRGBA{A: 0xff}
	red   = color.NRGBA{R: 0xff, A: 0xff}
)

func options(seed uint64) rough.Options {
	return rough.DefaultOptions().WithSeed(seed)
}

func sampleShapes() map[string]shapes.Shape {
	return map[string]shapes.Shape{
		"line":      shapes.Line{Start: geom.Pt(-40, 10), End: geom.Pt(160, 90)},
		"rectangle": shapes.NewRectangle(geom.Pt(50, 50), geom.Pt(80, 30), math.Pi/6),
		"ellipse":   shapes.NewEllipse(geom.Pt(-20, 30), geom.Pt(70, 25), -0.4),
		"quadbez":   shapes.QuadraticBezier{Start: geom.Pt(0, 0), Cp: geom.Pt(80, 140), End: geom.Pt(160, 10)},
		"cubbez":    shapes.CubicBezier{Start: geom.Pt(0, 0), Cp1: geom.Pt(30, 120), Cp2: geom.Pt(120, -90), End: geom.Pt(200, 20)},
	}
}

func TestUnitSquareScenario(t *testing.T) {
	o := options(42)
	sq := shapes.Rectangle{Transform: geom.Identity(), HalfExtents: geom.Pt(0.5, 0.5)}
	rec := &recorder{}
	Draw(rec, sq, &o)

	if got := rec.count("fill"); got != 0 {
		t.Errorf("fill ops = %d, want 0", got)
	}
	if got := rec.count("stroke"); got != 1 {
		t.Fatalf("stroke ops = %d, want 1", got)
	}
	var p bezpath.Path
	for _, op := range rec.ops {
		if op.kind == "stroke" {
			p = op.path
		}
	}
	if got := p.Subpaths(); got != 8 {
		t.Errorf("stroke sub-paths = %d, want 8", got)
	}
	m := 0.5 + rough.RoughBoundsMargin
	for _, pt := range p.Points() {
		if math.Abs(pt.X) > m || math.Abs(pt.Y) > m {
			t.Errorf("point %v outside [-%v, %v]", pt, m, m)
		}
	}

	o.DisableMultistroke = true
	rec = &recorder{}
	Draw(rec, sq, &o)
	if got := rec.ops[1].path.Subpaths(); got != 4 {
		t.Errorf("single stroke sub-paths = %d, want 4", got)
	}
}

func TestDraw_BoundsContainment(t *testing.T) {
	rougher := func(o *rough.Options) { o.Roughness = 3 }
	tests := []struct {
		name  string
		shape shapes.Shape
		tweak func(*rough.Options)
	}{
		{"ellipse r500", shapes.NewEllipse(geom.Pt(0, 0), geom.Pt(500, 500), 0), nil},
		{"ellipse 1000x300", shapes.NewEllipse(geom.Pt(200, -100), geom.Pt(1000, 300), 0.3), nil},
		{"line 5000", shapes.Line{Start: geom.Pt(0, 0), End: geom.Pt(5000, 0)}, nil},
		{"line 20000", shapes.Line{Start: geom.Pt(-10000, 40), End: geom.Pt(10000, -40)}, nil},
		{"rectangle 2000x800", shapes.NewRectangle(geom.Pt(0, 0), geom.Pt(1000, 400), 0.2), nil},
		{"cubbez long", shapes.CubicBezier{Start: geom.Pt(0, 0), Cp1: geom.Pt(2000, 3000), Cp2: geom.Pt(4000, -3000), End: geom.Pt(6000, 0)}, nil},
		{"ellipse rough", shapes.NewEllipse(geom.Pt(0, 0), geom.Pt(120, 60), 0), rougher},
		{"rectangle rough", shapes.NewRectangle(geom.Pt(0, 0), geom.Pt(90, 40), 0.5), rougher},
		{"quadbez rough", shapes.QuadraticBezier{Start: geom.Pt(0, 0), Cp: geom.Pt(80, 140), End: geom.Pt(160, 10)}, rougher},
		{"line bowed", shapes.Line{End: geom.Pt(800, 300)}, func(o *rough.Options) {
			o.Bowing = 6
			o.MaxRandomnessOffset = 10
		}},
		{"ellipse loose fit", shapes.NewEllipse(geom.Pt(0, 0), geom.Pt(300, 200), 0), func(o *rough.Options) {
			o.Roughness = 2
			o.CurveFitting = 0.5
		}},
		{"ellipse solid", shapes.NewEllipse(geom.Pt(0, 0), geom.Pt(400, 100), 0), func(o *rough.Options) {
			o.Roughness = 2.5
			o.FillStyle = rough.FillSolid
		}},
		{"rectangle cross-hatch", shapes.NewRectangle(geom.Pt(0, 0), geom.Pt(300, 300), 0), func(o *rough.Options) {
			o.Roughness = 4
			o.FillStyle = rough.FillCrossHatch
		}},
		{"ellipse single stroke", shapes.NewEllipse(geom.Pt(0, 0), geom.Pt(700, 50), 0), func(o *rough.Options) {
			o.DisableMultistroke = true
		}},
		{"ellipse exact", shapes.NewEllipse(geom.Pt(0, 0), geom.Pt(900, 900), 0), func(o *rough.Options) {
			o.Roughness = 0
		}},
	}
	for name, s := range sampleShapes() {
		tests = append(tests, struct {
			name  string
			shape shapes.Shape
			tweak func(*rough.Options)
		}{name, s, nil})
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := uint64(0); seed < 50; seed++ {
				o := options(seed)
				o.FillColor = &red
				if tt.tweak != nil {
					tt.tweak(&o)
				}
				b := Bounds(tt.shape, &o)
				rec := &recorder{}
				Draw(rec, tt.shape, &o)
				for _, op := range rec.ops {
					for _, pt := range op.path.Points() {
						if !b.Contains(pt) {
							t.Fatalf("seed %d: %s point %v outside %v", seed, op.kind, pt, b)
						}
					}
				}
			}
		})
	}
}

func TestBounds_SmallShapesUseFixedMargin(t *testing.T) {
	o := options(1)
	l := shapes.Line{End: geom.Pt(100, 0)}
	want := l.Bounds().Loosened(o.StrokeWidth/2 + rough.RoughBoundsMargin)
	if got := Bounds(l, &o); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}

func TestBounds_GrowWithSizeAndRoughness(t *testing.T) {
	big := shapes.NewEllipse(geom.Pt(0, 0), geom.Pt(500, 500), 0)
	o := options(1)
	margin := func(s shapes.Shape, o *rough.Options) float64 {
		return s.Bounds().Min.X - Bounds(s, o).Min.X
	}

	base := margin(big, &o)
	if base <= o.StrokeWidth/2+rough.RoughBoundsMargin {
		t.Errorf("large ellipse margin %v not above the fixed margin", base)
	}
	o.Roughness = 3
	if got := margin(big, &o); got <= base {
		t.Errorf("margin at roughness 3 = %v, want more than %v", got, base)
	}
}

func TestDraw_Deterministic(t *testing.T) {
	for name, s := range sampleShapes() {
		t.Run(name, func(t *testing.T) {
			o := options(7)
			o.FillColor = &red
			a, b := &recorder{}, &recorder{}
			Draw(a, s, &o)
			Draw(b, s, &o)
			if len(a.ops) != len(b.ops) {
				t.Fatalf("op counts differ: %d vs %d", len(a.ops), len(b.ops))
			}
			for i := range a.ops {
				if a.ops[i].path.SVG() != b.ops[i].path.SVG() {
					t.Errorf("op %d differs", i)
				}
			}

			o2 := options(8)
			o2.FillColor = &red
			c := &recorder{}
			Draw(c, s, &o2)
			same := true
			for i := range a.ops {
				if a.ops[i].path.SVG() != c.ops[i].path.SVG() {
					same = false
				}
			}
			if same {
				t.Error("different seeds produced identical output")
			}
		})
	}
}

func TestDraw_FillBeforeStroke(t *testing.T) {
	tests := []struct {
		name  string
		shape shapes.Shape
		want  []string
	}{
		{"rectangle", shapes.NewRectangle(geom.Pt(0, 0), geom.Pt(40, 20), 0), []string{"push", "fill", "stroke", "pop"}},
		{"ellipse", shapes.NewEllipse(geom.Pt(0, 0), geom.Pt(10, 10), 0), []string{"push", "fill", "stroke", "pop"}},
		{"line ignores fill", shapes.Line{End: geom.Pt(10, 0)}, []string{"stroke"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := options(1)
			o.FillColor = &red
			rec := &recorder{}
			Draw(rec, tt.shape, &o)
			got := rec.kinds()
			if len(got) != len(tt.want) {
				t.Fatalf("ops = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("ops = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestDraw_NoColors(t *testing.T) {
	o := options(1)
	o.StrokeColor = nil
	rec := &recorder{}
	Draw(rec, shapes.NewEllipse(geom.Pt(0, 0), geom.Pt(10, 10), 0), &o)
	if rec.count("stroke")+rec.count("fill") != 0 {
		t.Errorf("ops = %v, want only transform scope", rec.kinds())
	}
	if rec.count("push") != rec.count("pop") {
		t.Errorf("unbalanced transforms: %v", rec.kinds())
	}
}

func TestEllipseFillScenario(t *testing.T) {
	o := options(42)
	o.FillColor = &red
	e := shapes.NewEllipse(geom.Pt(0, 0), geom.Pt(10, 10), 0)

	res := rough.Ellipse(geom.Point{}, 10, 10, &o, rough.NewRNG(o.Seed))
	if len(res.EstimatedPoints) < 10 {
		t.Errorf("len(EstimatedPoints) = %d, want >= 10", len(res.EstimatedPoints))
	}

	rec := &recorder{}
	Draw(rec, e, &o)
	b := Bounds(e, &o)
	var fills int
	for _, op := range rec.ops {
		if op.kind != "fill" {
			continue
		}
		fills++
		if op.path.IsEmpty() {
			t.Error("empty fill path")
		}
		for _, pt := range op.path.Points() {
			if !b.Contains(pt) {
				t.Errorf("fill point %v outside %v", pt, b)
			}
		}
	}
	if fills != 1 {
		t.Errorf("fill ops = %d, want 1", fills)
	}
}

func TestWithTransform_PopsOnPanic(t *testing.T) {
	rec := &recorder{}
	func() {
		defer func() { _ = recover() }()
		WithTransform(rec, geom.Translate(geom.Pt(1, 1)), func() { panic("boom") })
	}()
	if got := rec.kinds(); len(got) != 2 || got[1] != "pop" {
		t.Errorf("ops = %v, want push then pop", got)
	}
}

func TestDrawBuilder_Indicators(t *testing.T) {
	p := func(x, y float64) geom.Point { return geom.Pt(x, y) }
	tests := []struct {
		name       string
		state      builders.State
		wantStroke int
		wantPos    int
		wantVec    int
	}{
		{"line", builders.Line{Start: p(0, 0), Current: p(30, 10)}, 1, 2, 0},
		{"rectangle", builders.Rectangle{Start: p(0, 0), Current: p(30, 10)}, 1, 2, 0},
		{"ellipse", builders.Ellipse{Start: p(0, 0), Current: p(30, 10)}, 1, 2, 0},
		{"foci first", builders.FociEllipseFirst{First: p(1, 1)}, 0, 1, 0},
		{"foci", builders.FociEllipseFoci{Foci: [2]geom.Point{p(0, 0), p(10, 0)}}, 0, 2, 0},
		{"foci and point", builders.FociEllipseFociAndPoint{Foci: [2]geom.Point{p(0, 0), p(10, 0)}, Point: p(5, 8)}, 1, 3, 2},
		{"quad start", builders.QuadBezStart{Start: p(0, 0)}, 0, 1, 0},
		{"quad cp", builders.QuadBezCp{Start: p(0, 0), Cp: p(5, 5)}, 0, 2, 1},
		{"quad end", builders.QuadBezEnd{Start: p(0, 0), Cp: p(5, 5), End: p(10, 0)}, 1, 3, 1},
		{"cubic start", builders.CubBezStart{Start: p(0, 0)}, 0, 1, 0},
		{"cubic cp1", builders.CubBezCp1{Start: p(0, 0), Cp1: p(5, 5)}, 0, 2, 1},
		{"cubic cp2", builders.CubBezCp2{Start: p(0, 0), Cp1: p(5, 5), Cp2: p(10, 0)}, 1, 3, 1},
		{"cubic end", builders.CubBezEnd{Start: p(0, 0), Cp1: p(5, 5), Cp2: p(10, 0), End: p(15, 5)}, 1, 4, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := options(3)
			rec := &recorder{}
			DrawBuilder(rec, rec, tt.state, &o)
			if got := rec.count("stroke"); got != tt.wantStroke {
				t.Errorf("strokes = %d, want %d", got, tt.wantStroke)
			}
			if got := rec.count("pos"); got != tt.wantPos {
				t.Errorf("pos indicators = %d, want %d", got, tt.wantPos)
			}
			if got := rec.count("vec"); got != tt.wantVec {
				t.Errorf("vec indicators = %d, want %d", got, tt.wantVec)
			}

			b := BuilderBounds(tt.state, &o)
			for _, op := range rec.ops {
				for _, pt := range op.path.Points() {
					if !b.Contains(pt) {
						t.Errorf("%s point %v outside %v", op.kind, pt, b)
					}
				}
				if op.kind == "pos" {
					r := PosIndicatorRadius + PosIndicatorOutlineWidth
					box := geom.FromHalfExtents(op.pts[0], geom.Pt(r, r))
					if !b.Contains(box.Min) || !b.Contains(box.Max) {
						t.Errorf("indicator at %v not contained in %v", op.pts[0], b)
					}
				}
			}
		})
	}
}
