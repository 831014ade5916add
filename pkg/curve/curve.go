// Package curve evaluates the smooth enemy route through a list of control
// points and derives the evenly spaced polyline enemies actually walk on.
package curve

import (
	"errors"
	"math"

	"go-path-defense/pkg/geom"
)

// ErrInvalidPath is returned when a path has fewer than two control points.
var ErrInvalidPath = errors.New("curve: path needs at least two control points")

// Path is a Catmull-Rom style cubic Hermite spline through its control points.
type Path struct {
	points []geom.Vec
}

// New copies points into a Path.
func New(points []geom.Vec) (*Path, error) {
	if len(points) < 2 {
		return nil, ErrInvalidPath
	}
	cp := make([]geom.Vec, len(points))
	copy(cp, points)
	return &Path{points: cp}, nil
}

// Points returns a copy of the control points.
func (p *Path) Points() []geom.Vec {
	cp := make([]geom.Vec, len(p.points))
	copy(cp, p.points)
	return cp
}

// segment maps t in (0,1) onto a segment index and the local parameter.
func segment(n int, t float64) (int, float64) {
	segLen := 1 / float64(n-1)
	index := int(math.Floor(t / segLen))
	if index >= n-1 {
		index = n - 2
	}
	return index, (t - segLen*float64(index)) / segLen
}

// Evaluate returns the point on the curve at t. The curve passes through
// every control point; tangents are zero at both ends of the route and half
// the vector between the neighbours elsewhere.
func (p *Path) Evaluate(t float64) geom.Vec {
	pts := p.points
	n := len(pts)
	if t <= 0 {
		return pts[0]
	}
	if t >= 1 {
		return pts[n-1]
	}

	index, u := segment(n, t)
	p1, p2 := pts[index], pts[index+1]

	var m1, m2 geom.Vec
	if index > 0 {
		m1 = p2.Sub(pts[index-1]).Scale(0.5)
	}
	if index < n-2 {
		m2 = pts[index+2].Sub(p1).Scale(0.5)
	}

	u2 := u * u
	u3 := u2 * u
	h00 := 2*u3 - 3*u2 + 1
	h10 := u3 - 2*u2 + u
	h01 := -2*u3 + 3*u2
	h11 := u3 - u2

	return geom.Vec{
		X: h00*p1.X + h10*m1.X + h01*p2.X + h11*m2.X,
		Y: h00*p1.Y + h10*m1.Y + h01*p2.Y + h11*m2.Y,
	}
}

// DefaultStep is the parameter increment used when BuildLinear gets none.
const DefaultStep = 1e-5

// Linear is the arc-length-uniform approximation of a Path.
// Params[i] is the curve parameter Points[i] was sampled at.
type Linear struct {
	Points []geom.Vec
	Params []float64
}

// BuildLinear walks the curve in increments of step and keeps a sample each
// time it gets at least spacing away from the last kept one. The final
// control point is always included, so only the last pair may be shorter.
func (p *Path) BuildLinear(spacing, step float64) Linear {
	if step <= 0 {
		step = DefaultStep
	}
	first := p.points[0]
	lin := Linear{
		Points: []geom.Vec{first},
		Params: []float64{0},
	}
	var candidate geom.Vec
	t := 0.0
	for t < 1 {
		last := lin.Points[len(lin.Points)-1]
		for {
			t += step
			candidate = p.Evaluate(t)
			if t >= 1 || geom.Dist(candidate, last) >= spacing {
				break
			}
		}
		t = math.Min(t, 1)
		lin.Points = append(lin.Points, candidate)
		lin.Params = append(lin.Params, t)
	}
	return lin
}

// At interpolates linearly along the polyline.
func (l Linear) At(t float64) geom.Vec {
	return InterpolateLinear(l.Points, t)
}

// InterpolateLinear maps t onto a polyline using the same parametric
// convention as Evaluate: each segment covers 1/(n-1) of the range.
func InterpolateLinear(points []geom.Vec, t float64) geom.Vec {
	n := len(points)
	switch {
	case n == 0:
		return geom.Vec{}
	case n == 1 || t <= 0:
		return points[0]
	case t >= 1:
		return points[n-1]
	}
	index, u := segment(n, t)
	return geom.Lerp(points[index], points[index+1], u)
}
