// Package bezpath holds ordered sequences of path drawing commands.
//
// A [Path] is built from four verbs: move-to, line-to, cubic-to and close.
// It is the output format of the rough generators and the input format of
// the render sinks, which know how to stroke, fill and serialise it.
package bezpath

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/sketchy/pkg/geom"
)

// Verb identifies a path command.
type Verb uint8

const (
	MoveTo Verb = iota
	LineTo
	CubicTo
	Close
)

// String returns the SVG letter of the verb.
func (v Verb) String() string {
	switch v {
	case MoveTo:
		return "M"
	case LineTo:
		return "L"
	case CubicTo:
		return "C"
	case Close:
		return "Z"
	default:
		return "?"
	}
}

// PointCount returns the number of points the verb consumes.
func (v Verb) PointCount() int {
	switch v {
	case MoveTo, LineTo:
		return 1
	case CubicTo:
		return 3
	default:
		return 0
	}
}

// Cmd is one path command. Only the first Verb.PointCount() points are used;
// for CubicTo they are the two control points followed by the end point.
type Cmd struct {
	Verb Verb
	Pts  [3]geom.Point
}

// Points returns the used points of c.
func (c Cmd) Points() []geom.Point {
	return c.Pts[:c.Verb.PointCount()]
}

// Path is an ordered list of commands forming one or more sub-paths.
// The zero value is an empty path ready to use.
type Path struct {
	cmds []Cmd
}

// MoveTo starts a new sub-path at p.
func (p *Path) MoveTo(pt geom.Point) {
	p.cmds = append(p.cmds, Cmd{Verb: MoveTo, Pts: [3]geom.Point{pt}})
}

// LineTo adds a straight segment to pt.
func (p *Path) LineTo(pt geom.Point) {
	p.cmds = append(p.cmds, Cmd{Verb: LineTo, Pts: [3]geom.Point{pt}})
}

// CubicTo adds a cubic Bézier segment with control points c1, c2 ending at pt.
func (p *Path) CubicTo(c1, c2, pt geom.Point) {
	p.cmds = append(p.cmds, Cmd{Verb: CubicTo, Pts: [3]geom.Point{c1, c2, pt}})
}

// Close closes the current sub-path.
func (p *Path) Close() {
	p.cmds = append(p.cmds, Cmd{Verb: Close})
}

// Extend appends all commands of o to p.
func (p *Path) Extend(o Path) {
	p.cmds = append(p.cmds, o.cmds...)
}

// Cmds returns the commands of p. The slice must not be modified.
func (p Path) Cmds() []Cmd {
	return p.cmds
}

// Len returns the number of commands.
func (p Path) Len() int {
	return len(p.cmds)
}

// IsEmpty reports whether p has no commands.
func (p Path) IsEmpty() bool {
	return len(p.cmds) == 0
}

// Count returns how many commands of p use verb v.
func (p Path) Count(v Verb) int {
	n := 0
	for _, c := range p.cmds {
		if c.Verb == v {
			n++
		}
	}
	return n
}

// Subpaths returns the number of sub-paths, i.e. the number of move commands.
func (p Path) Subpaths() int {
	return p.Count(MoveTo)
}

// Points returns every point referenced by p, control points included, in order.
func (p Path) Points() []geom.Point {
	pts := make([]geom.Point, 0, len(p.cmds)*3)
	for _, c := range p.cmds {
		pts = append(pts, c.Points()...)
	}
	return pts
}

// Bounds returns the box containing every point of p, control points included.
// Since a cubic lies inside the hull of its control points this also contains
// the drawn curve.
func (p Path) Bounds() geom.AABB {
	return geom.FromPoints(p.Points()...)
}

// Transform returns a copy of p with every point mapped through a.
func (p Path) Transform(a geom.Affine) Path {
	out := Path{cmds: make([]Cmd, len(p.cmds))}
	for i, c := range p.cmds {
		for j := 0; j < c.Verb.PointCount(); j++ {
			c.Pts[j] = a.Apply(c.Pts[j])
		}
		out.cmds[i] = c
	}
	return out
}

// Finite reports whether every point of p has finite coordinates.
func (p Path) Finite() bool {
	for _, c := range p.cmds {
		for _, pt := range c.Points() {
			if !pt.Finite() {
				return false
			}
		}
	}
	return true
}

// SVG encodes p as an SVG path "d" attribute value.
func (p Path) SVG() string {
	var sb strings.Builder
	for i, c := range p.cmds {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.Verb.String())
		for _, pt := range c.Points() {
			sb.WriteByte(' ')
			sb.WriteString(formatCoord(pt.X))
			sb.WriteByte(' ')
			sb.WriteString(formatCoord(pt.Y))
		}
	}
	return sb.String()
}

// String implements fmt.Stringer using the SVG encoding.
func (p Path) String() string {
	return p.SVG()
}

func formatCoord(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		v = 0 // normalise -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type jsonCmd struct {
	Op  string       `json:"op"`
	Pts [][2]float64 `json:"pts,omitempty"`
}

// MarshalJSON encodes p as a list of {op, pts} objects.
func (p Path) MarshalJSON() ([]byte, error) {
	out := make([]jsonCmd, len(p.cmds))
	for i, c := range p.cmds {
		jc := jsonCmd{Op: c.Verb.String()}
		for _, pt := range c.Points() {
			jc.Pts = append(jc.Pts, [2]float64{pt.X, pt.Y})
		}
		out[i] = jc
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the format written by MarshalJSON.
func (p *Path) UnmarshalJSON(data []byte) error {
	var in []jsonCmd
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	p.cmds = p.cmds[:0]
	for i, jc := range in {
		var v Verb
		switch jc.Op {
		case "M":
			v = MoveTo
		case "L":
			v = LineTo
		case "C":
			v = CubicTo
		case "Z":
			v = Close
		default:
			return fmt.Errorf("command %d: unknown op %q", i, jc.Op)
		}
		if len(jc.Pts) != v.PointCount() {
			return fmt.Errorf("command %d: %s wants %d points, got %d", i, jc.Op, v.PointCount(), len(jc.Pts))
		}
		c := Cmd{Verb: v}
		for j, pt := range jc.Pts {
			c.Pts[j] = geom.Point{X: pt[0], Y: pt[1]}
		}
		p.cmds = append(p.cmds, c)
	}
	return nil
}
