package scene

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/sketchy/pkg/errors"
	"github.com/matzehuels/sketchy/pkg/geom"
)

// Document formats.
const (
	FormatTOML = "toml"
	FormatJSON = "json"
)

// Vec is a point written as a two element array.
type Vec [2]float64

// Point converts v to a geom.Point.
func (v Vec) Point() geom.Point { return geom.Pt(v[0], v[1]) }

// Scene is a decoded sketch document.
type Scene struct {
	Width      float64   `toml:"width" json:"width"`
	Height     float64   `toml:"height" json:"height"`
	Background string    `toml:"background,omitempty" json:"background,omitempty"`
	Options    Style     `toml:"options" json:"options"`
	Shapes     []Shape   `toml:"shape" json:"shape,omitempty"`
	Builders   []Builder `toml:"builder" json:"builder,omitempty"`
}

// Shape is one finished primitive. Which point fields are used depends on Kind.
type Shape struct {
	Kind        string  `toml:"kind" json:"kind"`
	Start       *Vec    `toml:"start,omitempty" json:"start,omitempty"`
	End         *Vec    `toml:"end,omitempty" json:"end,omitempty"`
	Cp          *Vec    `toml:"cp,omitempty" json:"cp,omitempty"`
	Cp1         *Vec    `toml:"cp1,omitempty" json:"cp1,omitempty"`
	Cp2         *Vec    `toml:"cp2,omitempty" json:"cp2,omitempty"`
	Center      *Vec    `toml:"center,omitempty" json:"center,omitempty"`
	HalfExtents *Vec    `toml:"half_extents,omitempty" json:"half_extents,omitempty"`
	Radii       *Vec    `toml:"radii,omitempty" json:"radii,omitempty"`
	Foci        []Vec   `toml:"foci,omitempty" json:"foci,omitempty"`
	Point       *Vec    `toml:"point,omitempty" json:"point,omitempty"`
	Angle       float64 `toml:"angle,omitempty" json:"angle,omitempty"`
	Options     *Style  `toml:"options,omitempty" json:"options,omitempty"`
}

// Builder is an in-progress primitive: the points placed so far.
type Builder struct {
	Kind    string `toml:"kind" json:"kind"`
	Points  []Vec  `toml:"points" json:"points"`
	Options *Style `toml:"options,omitempty" json:"options,omitempty"`
}

// Decode parses data as a scene document in format ("toml" or "json").
// An empty format guesses from the first non-blank byte. The returned scene
// has passed [Scene.Validate].
func Decode(data []byte, format string) (*Scene, error) {
	if format == "" {
		format = sniff(data)
	}

	var s Scene
	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&s)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidScene, "unknown key %q", undecoded[0].String())
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode json")
		}
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported scene format %q", format)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Read decodes a scene from r.
func Read(r io.Reader, format string) (*Scene, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read scene")
	}
	return Decode(data, format)
}

// Load reads the scene file at path. Files ending in .json are JSON,
// everything else is TOML.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scene %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}
	s, err := Decode(data, FormatForPath(path))
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "%s", filepath.Base(path))
	}
	return s, nil
}

// FormatForPath returns the document format implied by a file name.
func FormatForPath(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatTOML
}

func sniff(data []byte) string {
	if t := bytes.TrimLeft(data, " \t\r\n"); len(t) > 0 && t[0] == '{' {
		return FormatJSON
	}
	return FormatTOML
}

// Encode writes s in format.
func (s *Scene) Encode(w io.Writer, format string) error {
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(s)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}
	return errors.New(errors.ErrCodeUnsupported, "unsupported scene format %q", format)
}

// Hash identifies the scene content. Two documents that decode to the same
// scene hash equally regardless of their source format or layout.
func (s *Scene) Hash() string {
	data, _ := json.Marshal(s)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Reproducible reports whether every shape and builder draws with a fixed seed.
func (s *Scene) Reproducible() bool {
	if s.Options.Seed != nil {
		return true
	}
	if len(s.Shapes)+len(s.Builders) == 0 {
		return false
	}
	for _, sh := range s.Shapes {
		if sh.Options == nil || sh.Options.Seed == nil {
			return false
		}
	}
	for _, b := range s.Builders {
		if b.Options == nil || b.Options.Seed == nil {
			return false
		}
	}
	return true
}

// Validate checks the canvas and resolves every item once.
func (s *Scene) Validate() error {
	if !positive(s.Width) || !positive(s.Height) {
		return errors.New(errors.ErrCodeInvalidScene, "canvas size %vx%v must be positive", s.Width, s.Height)
	}
	_, err := s.Plan()
	return err
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// WithOverrides returns a copy of s whose scene style has over merged on top.
// Item level options still win over the merged style.
func (s *Scene) WithOverrides(over *Style) *Scene {
	if over == nil {
		return s
	}
	out := *s
	out.Options = s.Options.Merge(over)
	return &out
}
