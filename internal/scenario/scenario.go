package scenario

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmath/geom"
)

// Kind selects the kernel a scenario exercises.
type Kind string

const (
	KindSegment2        Kind = "segment2"
	KindLine2           Kind = "line2"
	KindSegment3        Kind = "segment3"
	KindLine3           Kind = "line3"
	KindRectPoint       Kind = "rect_point"
	KindRectRect        Kind = "rect_rect"
	KindMatrix3Inverse  Kind = "matrix3_inverse"
	KindMatrix4Inverse  Kind = "matrix4_inverse"
	KindQuaternionEuler Kind = "quaternion_euler"
	KindHalf            Kind = "half"
)

// arity lists the accepted lengths of a, b and expect.point per kind.
// A zero point length means the kind produces no point.
type arity struct {
	a, b      int
	bOptional bool
	point     int
	result    bool
}

var arities = map[Kind]arity{
	KindSegment2:        {a: 4, b: 4, point: 2},
	KindLine2:           {a: 4, b: 4, point: 2},
	KindSegment3:        {a: 6, b: 6, point: 3},
	KindLine3:           {a: 6, b: 6, point: 3},
	KindRectPoint:       {a: 4, b: 2, result: true},
	KindRectRect:        {a: 4, b: 4, result: true},
	KindMatrix3Inverse:  {a: 9, point: 9},
	KindMatrix4Inverse:  {a: 16, point: 16},
	KindQuaternionEuler: {a: 3, b: 3, bOptional: true, point: 3},
	KindHalf:            {a: 1, point: 1},
}

// Expect holds the checks applied to a scenario outcome. At least one must be set.
type Expect struct {
	Hit    *bool     `yaml:"hit,omitempty" json:"hit,omitempty"`
	Point  []float64 `yaml:"point,omitempty" json:"point,omitempty"`
	Result string    `yaml:"result,omitempty" json:"result,omitempty"`
	Raw    *uint16   `yaml:"raw,omitempty" json:"raw,omitempty"`
}

func (e Expect) isEmpty() bool {
	return e.Hit == nil && len(e.Point) == 0 && e.Result == "" && e.Raw == nil
}

// Scenario is one evaluation request.
type Scenario struct {
	Name   string    `yaml:"name"`
	Kind   Kind      `yaml:"kind"`
	A      []float64 `yaml:"a"`
	B      []float64 `yaml:"b,omitempty"`
	Expect Expect    `yaml:"expect"`
}

// File is the YAML document: an optional tolerance and the scenarios.
type File struct {
	Tolerance *float64   `yaml:"tolerance,omitempty"`
	Scenarios []Scenario `yaml:"scenarios"`
}

// Load decodes and validates a scenario file. Unknown keys are rejected.
func Load(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidScenario)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: open: %w", err)
	}
	defer fh.Close()
	return Load(fh)
}

// Validate checks the file and every scenario, returning the first problem.
func (f *File) Validate() error {
	if f.Tolerance != nil {
		if isNonFinite(*f.Tolerance) {
			return fmt.Errorf("tolerance: %w", ErrNaNInf)
		}
		if *f.Tolerance < 0 {
			return fmt.Errorf("%w: negative tolerance %g", ErrInvalidScenario, *f.Tolerance)
		}
	}
	if len(f.Scenarios) == 0 {
		return fmt.Errorf("%w: no scenarios", ErrInvalidScenario)
	}

	seen := make(map[string]int, len(f.Scenarios))
	for i, s := range f.Scenarios {
		if prev, dup := seen[s.Name]; dup {
			return scenarioErrorf(i, s.Name, fmt.Errorf("%w: name already used by scenario %d", ErrInvalidScenario, prev))
		}
		seen[s.Name] = i
		if err := s.Validate(); err != nil {
			return scenarioErrorf(i, s.Name, err)
		}
	}
	return nil
}

// Validate checks name, kind, input arity, finiteness and expectations.
func (s Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidScenario)
	}
	ar, ok := arities[s.Kind]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKind, s.Kind)
	}

	if len(s.A) != ar.a {
		return fmt.Errorf("%w: a has %d values, %s needs %d", ErrInvalidScenario, len(s.A), s.Kind, ar.a)
	}
	if len(s.B) != ar.b && !(ar.bOptional && len(s.B) == 0) {
		return fmt.Errorf("%w: b has %d values, %s needs %d", ErrInvalidScenario, len(s.B), s.Kind, ar.b)
	}
	if s.Expect.isEmpty() {
		return fmt.Errorf("%w: no expectation", ErrInvalidScenario)
	}
	if len(s.Expect.Point) > 0 && len(s.Expect.Point) != ar.point {
		return fmt.Errorf("%w: expect.point has %d values, %s yields %d", ErrInvalidScenario, len(s.Expect.Point), s.Kind, ar.point)
	}
	if s.Expect.Result != "" {
		if !ar.result {
			return fmt.Errorf("%w: expect.result is only valid for rect kinds", ErrInvalidScenario)
		}
		var r geom.IntersectionResult
		if err := r.UnmarshalText([]byte(s.Expect.Result)); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidScenario, err)
		}
	}
	if s.Expect.Raw != nil && s.Kind != KindHalf {
		return fmt.Errorf("%w: expect.raw is only valid for %s", ErrInvalidScenario, KindHalf)
	}

	for _, values := range [][]float64{s.A, s.B, s.Expect.Point} {
		for _, v := range values {
			if isNonFinite(v) {
				return ErrNaNInf
			}
		}
	}
	return nil
}

func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
