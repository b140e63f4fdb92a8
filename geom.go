package sweep

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrVertical is returned for segments with equal endpoint x-coordinates.
	ErrVertical = errors.New("vertical segment")

	// ErrZeroLength is returned for segments with coinciding endpoints.
	ErrZeroLength = errors.New("zero-length segment")

	// ErrDuplicatePoint is returned when two segment endpoints coincide.
	ErrDuplicatePoint = errors.New("duplicate endpoint")

	// ErrCollinear is returned when two segments lie on the same line.
	ErrCollinear = errors.New("collinear segments")

	// ErrNotMonotone is returned when the event queue yields an event to the
	// left of the current sweep position, which indicates a bug in the sweep.
	ErrNotMonotone = errors.New("sweep line moved backwards")

	// ErrNotFound is returned when querying a segment that is not in the
	// sweep status.
	ErrNotFound = errors.New("segment not in sweep status")
)

// Point is a coordinate in 2D space.
type Point struct {
	X, Y float64
}

// Compare orders points by x-coordinate and then by y-coordinate. It returns
// -1 when p sorts before q, 1 when p sorts after q, and 0 when they are equal.
func (p Point) Compare(q Point) int {
	if p.X < q.X {
		return -1
	} else if q.X < p.X {
		return 1
	} else if p.Y < q.Y {
		return -1
	} else if q.Y < p.Y {
		return 1
	}
	return 0
}

// Round rounds both coordinates to the given number of decimals. Rounding an
// already rounded point is a no-op.
func (p Point) Round(decimals int) Point {
	scale := math.Pow10(decimals)
	return Point{
		X: math.Round(p.X*scale) / scale,
		Y: math.Round(p.Y*scale) / scale,
	}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// ccw returns twice the signed area of the triangle (p,q,r). It is positive
// when the triple makes a counter-clockwise turn, negative for clockwise, and
// zero when the points are collinear.
func ccw(p, q, r Point) float64 {
	return (p.X*q.Y - p.Y*q.X) + (q.X*r.Y - q.Y*r.X) + (p.Y*r.X - p.X*r.Y)
}

// Segment is a straight line segment between two points. The sweep requires
// that P.X != Q.X, which excludes vertical and zero-length segments.
type Segment struct {
	P, Q Point
}

// Lower returns the endpoint where the sweep line enters the segment.
func (s Segment) Lower() Point {
	if s.P.Compare(s.Q) <= 0 {
		return s.P
	}
	return s.Q
}

// Upper returns the endpoint where the sweep line leaves the segment.
func (s Segment) Upper() Point {
	if s.P.Compare(s.Q) <= 0 {
		return s.Q
	}
	return s.P
}

// Y returns the segment's y-value at the given x by linear interpolation
// along its supporting line. It is undefined for vertical segments.
func (s Segment) Y(x float64) float64 {
	m := (s.P.Y - s.Q.Y) / (s.P.X - s.Q.X)
	return m*(x-s.P.X) + s.P.Y
}

// Intersection returns the point where segments s and o cross. It returns
// false when the segments do not touch, and ErrCollinear when all four
// endpoints lie on the same line, for which an intersection point is not
// well-defined.
func (s Segment) Intersection(o Segment) (Point, bool, error) {
	ccwOP := ccw(s.P, s.Q, o.P)
	ccwOQ := ccw(s.P, s.Q, o.Q)
	if 0.0 < ccwOP*ccwOQ {
		return Point{}, false, nil // o lies fully on one side of s
	}

	ccwSP := ccw(o.P, o.Q, s.P)
	ccwSQ := ccw(o.P, o.Q, s.Q)
	if 0.0 < ccwSP*ccwSQ {
		return Point{}, false, nil
	}

	if ccwOP == 0.0 && ccwOQ == 0.0 && ccwSP == 0.0 && ccwSQ == 0.0 {
		return Point{}, false, fmt.Errorf("%w: %v and %v", ErrCollinear, s, o)
	}

	// The intersection divides o at the ratio of the two triangle areas that
	// s's supporting line cuts off at either endpoint of o.
	if ccwOP == 0.0 {
		return o.P, true, nil
	}
	r := math.Abs(ccwOQ / ccwOP)
	a := r / (r + 1.0)
	return Point{
		X: o.Q.X + a*(o.P.X-o.Q.X),
		Y: o.Q.Y + a*(o.P.Y-o.Q.Y),
	}, true, nil
}

func (s Segment) String() string {
	return fmt.Sprintf("%v--%v", s.P, s.Q)
}
