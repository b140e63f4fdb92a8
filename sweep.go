// Package sweep finds all pairwise intersection points among a set of
// non-vertical 2D line segments using the Bentley–Ottmann plane-sweep
// algorithm. A vertical sweep line moves from left to right over the plane
// and pauses at segment endpoints and crossings, so that with n segments and
// k intersections the work is in O((n+k) log n) instead of the quadratic
// pairwise comparison.
//
// Vertical segments, zero-length segments, and collinear overlapping segment
// pairs are not supported and return an error.
package sweep

import (
	"log"
	"os"
	"slices"
)

// Precision is the number of decimals that intersection points are rounded
// to. Rounding absorbs the floating-point jitter between repeated
// computations of the same geometric crossing by different segment pairs.
var Precision = 9

// SwapEpsilon is how far past a crossing the segments are sampled to decide
// their order after the swap.
var SwapEpsilon = 1e-9

// Warnings receives non-fatal anomalies encountered during the sweep. Set it
// to nil to suppress them.
var Warnings = log.New(os.Stderr, "sweep: ", 0)

func warnf(format string, args ...interface{}) {
	if Warnings != nil {
		Warnings.Printf(format, args...)
	}
}

// Intersections returns the intersection points between the given segments,
// rounded to Precision decimals, deduplicated, and sorted by x and then y.
// It returns an error when a segment is vertical or zero-length, when two
// endpoints coincide, or when two segments are collinear.
func Intersections(segments []Segment) ([]Point, error) {
	queue, err := NewEventQueue(segments)
	if err != nil {
		return nil, err
	}

	status := &SweepStatus{}
	points := []Point{}
	for {
		event, ok, err := queue.Pop()
		if err != nil {
			return nil, err
		} else if !ok {
			break
		}
		status.Update(event.Point.X)

		switch event.Kind {
		case BeginEvent:
			status.Insert(event.Point.Y, event.Segment)
			above, below, err := status.Neighbors(event.Segment)
			if err != nil {
				return nil, err
			}
			for _, neighbor := range [2]*SweepElement{above, below} {
				if neighbor == nil {
					continue
				}
				p, ok, err := event.Segment.Intersection(neighbor.Segment)
				if err != nil {
					return nil, err
				} else if ok {
					queue.AddIntersection(p, event.Segment, neighbor.Segment)
				}
			}
		case EndEvent:
			// The neighbors become adjacent once the segment is removed.
			above, below, err := status.Neighbors(event.Segment)
			if err != nil {
				return nil, err
			}
			if above != nil && below != nil {
				p, ok, err := below.Segment.Intersection(above.Segment)
				if err != nil {
					return nil, err
				} else if ok {
					queue.AddIntersection(p, below.Segment, above.Segment)
				}
			}
			status.Remove(event.Segment)
		case IntersectionEvent:
			swap, err := status.Swap(event.Segment, event.Other, event.Point)
			if err != nil {
				return nil, err
			}
			if swap.Above != nil {
				p, ok, err := swap.Bigger.Segment.Intersection(swap.Above.Segment)
				if err != nil {
					return nil, err
				} else if ok {
					queue.AddIntersection(p, swap.Bigger.Segment, swap.Above.Segment)
				}
			}
			if swap.Below != nil {
				p, ok, err := swap.Smaller.Segment.Intersection(swap.Below.Segment)
				if err != nil {
					return nil, err
				} else if ok {
					queue.AddIntersection(p, swap.Smaller.Segment, swap.Below.Segment)
				}
			}
			points = append(points, event.Point)
		}
	}

	slices.SortFunc(points, Point.Compare)
	return points, nil
}
