package scenario

import (
	"fmt"

	"github.com/katalvlaran/lvmath/geom"
	"github.com/katalvlaran/lvmath/half"
	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/quaternion"
	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vector"
)

// Result is the outcome of one scenario.
type Result struct {
	Name           string                   `json:"name"`
	Kind           Kind                     `json:"kind"`
	Pass           bool                     `json:"pass"`
	Hit            bool                     `json:"hit"`
	Point          []float64                `json:"point,omitempty"`
	Classification *geom.IntersectionResult `json:"classification,omitempty"`
	Raw            *uint16                  `json:"raw,omitempty"`
	Detail         string                   `json:"detail,omitempty"`
	Mismatches     []string                 `json:"mismatches,omitempty"`
}

// Evaluate runs s against the kernels with tolerance tol and checks its
// expectations. s must have passed Validate.
func Evaluate(s Scenario, tol float64) Result {
	res := Result{Name: s.Name, Kind: s.Kind}

	switch s.Kind {
	case KindSegment2:
		a := geom.NewSegment2(vec2(s.A[0:]), vec2(s.A[2:]))
		b := geom.NewSegment2(vec2(s.B[0:]), vec2(s.B[2:]))
		hit, err := a.Intersects(b, tol)
		res.setHit2(hit, err)
	case KindLine2:
		a := geom.NewLine2(vec2(s.A[0:]), vec2(s.A[2:]))
		b := geom.NewLine2(vec2(s.B[0:]), vec2(s.B[2:]))
		hit, err := a.Intersects(b, tol)
		res.setHit2(hit, err)
	case KindSegment3:
		a := geom.NewSegment3(vec3(s.A[0:]), vec3(s.A[3:]))
		b := geom.NewSegment3(vec3(s.B[0:]), vec3(s.B[3:]))
		hit, err := a.Intersects(b, tol)
		res.setHit3(hit, err)
	case KindLine3:
		a := geom.NewLine3(vec3(s.A[0:]), vec3(s.A[3:]))
		b := geom.NewLine3(vec3(s.B[0:]), vec3(s.B[3:]))
		hit, err := a.Intersects(b, tol)
		res.setHit3(hit, err)
	case KindRectPoint:
		c := rect(s.A).IsInside(s.B[0], s.B[1])
		res.setClassification(c)
	case KindRectRect:
		c := rect(s.A).IsInsideRect(rect(s.B))
		res.setClassification(c)
	case KindMatrix3Inverse:
		m := matrix.FromArray3([matrix.Matrix3ComponentCount]float64(s.A))
		det := m.Determinant()
		inv := m.GetInverted(tol).ToArray()
		res.Hit = !scalar.IsNearlyZero(det, tol)
		res.Point = inv[:]
		res.Detail = fmt.Sprintf("det=%g", det)
	case KindMatrix4Inverse:
		m := matrix.FromArray4([matrix.Matrix4ComponentCount]float64(s.A))
		det := m.Determinant()
		inv := m.GetInverted(tol).ToArray()
		res.Hit = !scalar.IsNearlyZero(det, tol)
		res.Point = inv[:]
		res.Detail = fmt.Sprintf("det=%g", det)
	case KindQuaternionEuler:
		angles := vec3(s.A)
		q := quaternion.FromEulerVector(angles)
		back := q.ToEulerAngles()
		res.Hit = back.IsNearlyEqual(angles, tol)
		out := back
		if len(s.B) == vector.Vector3ComponentCount {
			out = q.RotateVector(vec3(s.B))
		}
		res.Point = []float64{out.X, out.Y, out.Z}
		res.Detail = "q=" + q.String()
	case KindHalf:
		h := half.New(s.A[0])
		raw := h.Raw()
		res.Raw = &raw
		res.Hit = !h.IsNaN() && !h.IsInf(0)
		res.Point = []float64{h.Float64()}
		res.Detail = "half=" + h.String()
	}

	res.dropNonFinitePoint()
	res.check(s.Expect, tol)
	return res
}

func (r *Result) setHit2(hit geom.Hit2[float64], err error) {
	if err != nil {
		r.Detail = err.Error()
		return
	}
	r.Hit = true
	r.Point = []float64{hit.Point.X, hit.Point.Y}
}

func (r *Result) setHit3(hit geom.Hit3[float64], err error) {
	if err != nil {
		r.Detail = err.Error()
		return
	}
	r.Hit = true
	r.Point = []float64{hit.Point.X, hit.Point.Y, hit.Point.Z}
}

func (r *Result) setClassification(c geom.IntersectionResult) {
	r.Classification = &c
	r.Hit = c != geom.Outside
}

// dropNonFinitePoint removes a point JSON cannot carry.
func (r *Result) dropNonFinitePoint() {
	for _, v := range r.Point {
		if !scalar.IsFinite(v) {
			r.Point = nil
			r.Detail += " (non-finite point dropped)"
			return
		}
	}
}

func (r *Result) check(e Expect, tol float64) {
	if e.Hit != nil && *e.Hit != r.Hit {
		r.mismatch("hit: expected %t obtained %t", *e.Hit, r.Hit)
	}
	if len(e.Point) > 0 {
		if len(r.Point) != len(e.Point) {
			r.mismatch("point: expected %v obtained %v", e.Point, r.Point)
		} else {
			for i, want := range e.Point {
				if !scalar.IsNearlyEqual(r.Point[i], want, tol) {
					r.mismatch("point[%d]: expected %g obtained %g", i, want, r.Point[i])
				}
			}
		}
	}
	if e.Result != "" && (r.Classification == nil || r.Classification.String() != e.Result) {
		r.mismatch("result: expected %s obtained %v", e.Result, r.Classification)
	}
	if e.Raw != nil {
		switch {
		case r.Raw == nil:
			r.mismatch("raw: expected %#04x obtained none", *e.Raw)
		case *r.Raw != *e.Raw:
			r.mismatch("raw: expected %#04x obtained %#04x", *e.Raw, *r.Raw)
		}
	}
	r.Pass = len(r.Mismatches) == 0
}

func (r *Result) mismatch(format string, args ...any) {
	r.Mismatches = append(r.Mismatches, fmt.Sprintf(format, args...))
}

func vec2(v []float64) vector.Vector2d { return vector.New2(v[0], v[1]) }

func vec3(v []float64) vector.Vector3d { return vector.New3(v[0], v[1], v[2]) }

func rect(v []float64) geom.Rectd { return geom.NewRect(v[0], v[1], v[2], v[3]) }
