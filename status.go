package sweep

import (
	"fmt"
	"slices"
)

// SweepElement is a segment in the sweep status together with its y-value at
// the current sweep position.
type SweepElement struct {
	Y       float64
	Segment Segment
}

func (e SweepElement) String() string {
	return fmt.Sprintf("%g: %v", e.Y, e.Segment)
}

// SweepStatus is the ordered set of segments currently crossed by the sweep
// line, from top to bottom. Elements are kept in a sorted slice; the number
// of simultaneously active segments is small enough that re-sorting beats a
// balanced tree.
type SweepStatus struct {
	elements []SweepElement
}

// SwapResult describes the sweep status around two segments after their
// crossing has been processed. Bigger is the segment that now lies on top,
// Smaller the one below it; Above and Below are their new outer neighbors and
// may be nil at the boundary of the status.
type SwapResult struct {
	Below   *SweepElement
	Smaller SweepElement
	Bigger  SweepElement
	Above   *SweepElement
}

func (s *SweepStatus) find(segment Segment) int {
	return slices.IndexFunc(s.elements, func(e SweepElement) bool {
		return e.Segment == segment
	})
}

// sort restores the top-to-bottom invariant. The sort is stable so that
// segments meeting in a point keep their pre-crossing order until their
// intersection event resolves it.
func (s *SweepStatus) sort() {
	slices.SortStableFunc(s.elements, func(a, b SweepElement) int {
		if b.Y < a.Y {
			return -1
		} else if a.Y < b.Y {
			return 1
		}
		return 0
	})
}

// Len returns the number of active segments.
func (s *SweepStatus) Len() int {
	return len(s.elements)
}

// Insert adds a segment at the given y-value.
func (s *SweepStatus) Insert(y float64, segment Segment) {
	s.elements = append(s.elements, SweepElement{Y: y, Segment: segment})
	s.sort()
}

// Remove deletes the segment from the status. Removing a segment that is not
// present is a no-op.
func (s *SweepStatus) Remove(segment Segment) {
	if i := s.find(segment); i != -1 {
		s.elements = slices.Delete(s.elements, i, i+1)
	}
}

// Update recomputes every active segment's y-value at the given sweep
// position and restores the ordering. It must be called before querying
// neighbors after the sweep line has moved.
func (s *SweepStatus) Update(x float64) {
	for i := range s.elements {
		s.elements[i].Y = s.elements[i].Segment.Y(x)
	}
	s.sort()
}

// Neighbors returns the elements directly above and below the given segment,
// either of which is nil when the segment is the top or bottom of the status.
// Querying a segment that is not active is a logic error.
func (s *SweepStatus) Neighbors(segment Segment) (above, below *SweepElement, err error) {
	i := s.find(segment)
	if i == -1 {
		return nil, nil, fmt.Errorf("%w: %v", ErrNotFound, segment)
	}
	if 0 < i {
		above = &s.elements[i-1]
	}
	if i+1 < len(s.elements) {
		below = &s.elements[i+1]
	}
	return above, below, nil
}

// Swap reorders two segments that cross at the given point and returns their
// new positions and outer neighbors. The order is resolved by sampling both
// segments slightly past the crossing, since exactly at the crossing their
// y-values coincide. Segments that are not adjacent when they cross indicate
// a multiple crossing or accumulated floating-point drift; this is logged and
// the swap proceeds best-effort.
func (s *SweepStatus) Swap(a, b Segment, at Point) (SwapResult, error) {
	i, j := s.find(a), s.find(b)
	if i == -1 {
		return SwapResult{}, fmt.Errorf("%w: %v", ErrNotFound, a)
	} else if j == -1 {
		return SwapResult{}, fmt.Errorf("%w: %v", ErrNotFound, b)
	}
	if d := i - j; d < -1 || 1 < d {
		warnf("crossing segments too far apart in sweep status (%d and %d) at %v: %v and %v", i, j, at, a, b)
	}

	x := at.X + SwapEpsilon
	s.elements[i].Y = a.Y(x)
	s.elements[j].Y = b.Y(x)
	s.sort()

	i, j = s.find(a), s.find(b)
	if j < i {
		i, j = j, i
	}

	swap := SwapResult{
		Bigger:  s.elements[i],
		Smaller: s.elements[j],
	}
	if 0 < i {
		swap.Above = &s.elements[i-1]
	}
	if j+1 < len(s.elements) {
		swap.Below = &s.elements[j+1]
	}
	return swap, nil
}

func (s *SweepStatus) String() string {
	str := ""
	for i, e := range s.elements {
		if 0 < i {
			str += "\n"
		}
		str += e.String()
	}
	return str
}
