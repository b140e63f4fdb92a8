package sweep

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestSweepStatusOrder(t *testing.T) {
	top := Segment{Point{0.0, 3.0}, Point{4.0, 3.0}}
	mid := Segment{Point{0.0, 2.0}, Point{4.0, 2.0}}
	bottom := Segment{Point{0.0, 1.0}, Point{4.0, 1.0}}

	status := &SweepStatus{}
	status.Insert(1.0, bottom)
	status.Insert(3.0, top)
	status.Insert(2.0, mid)
	test.T(t, status.Len(), 3)

	above, below, err := status.Neighbors(mid)
	test.Error(t, err)
	test.T(t, above.Segment, top)
	test.T(t, below.Segment, bottom)

	above, below, err = status.Neighbors(top)
	test.Error(t, err)
	test.That(t, above == nil)
	test.T(t, below.Segment, mid)

	above, below, err = status.Neighbors(bottom)
	test.Error(t, err)
	test.T(t, above.Segment, mid)
	test.That(t, below == nil)
}

func TestSweepStatusNotFound(t *testing.T) {
	status := &SweepStatus{}
	status.Insert(1.0, Segment{Point{0.0, 1.0}, Point{4.0, 1.0}})
	_, _, err := status.Neighbors(Segment{Point{0.0, 2.0}, Point{4.0, 2.0}})
	test.That(t, errors.Is(err, ErrNotFound))
}

func TestSweepStatusRemove(t *testing.T) {
	a := Segment{Point{0.0, 1.0}, Point{4.0, 1.0}}
	b := Segment{Point{0.0, 2.0}, Point{4.0, 2.0}}

	status := &SweepStatus{}
	status.Insert(1.0, a)
	status.Insert(2.0, b)
	status.Remove(a)
	test.T(t, status.Len(), 1)

	// removing an absent segment is a no-op
	status.Remove(a)
	test.T(t, status.Len(), 1)
}

func TestSweepStatusUpdate(t *testing.T) {
	rising := Segment{Point{0.0, 0.0}, Point{4.0, 4.0}}
	falling := Segment{Point{0.0, 3.0}, Point{4.0, -1.0}}

	status := &SweepStatus{}
	status.Insert(0.0, rising)
	status.Insert(3.0, falling)

	status.Update(1.0) // before the crossing at x=1.5
	above, _, err := status.Neighbors(rising)
	test.Error(t, err)
	test.T(t, above.Segment, falling)

	status.Update(3.0) // after the crossing
	above, below, err := status.Neighbors(rising)
	test.Error(t, err)
	test.That(t, above == nil)
	test.T(t, below.Segment, falling)
}

func TestSweepStatusSwap(t *testing.T) {
	top := Segment{Point{0.0, 4.0}, Point{4.0, 4.0}}
	rising := Segment{Point{0.0, 0.0}, Point{4.0, 4.0}}
	falling := Segment{Point{0.0, 3.0}, Point{4.0, -1.0}}
	bottom := Segment{Point{0.0, -2.0}, Point{4.0, -2.0}}

	status := &SweepStatus{}
	for _, segment := range []Segment{top, rising, falling, bottom} {
		status.Insert(segment.Y(0.0), segment)
	}

	// rising and falling cross at (1.5,1.5)
	at := Point{1.5, 1.5}
	status.Update(at.X)
	swap, err := status.Swap(rising, falling, at)
	test.Error(t, err)
	test.T(t, swap.Bigger.Segment, rising)
	test.T(t, swap.Smaller.Segment, falling)
	test.T(t, swap.Above.Segment, top)
	test.T(t, swap.Below.Segment, bottom)
}

func TestSweepStatusSwapBoundary(t *testing.T) {
	rising := Segment{Point{0.0, 0.0}, Point{4.0, 4.0}}
	falling := Segment{Point{0.0, 3.0}, Point{4.0, -1.0}}

	status := &SweepStatus{}
	status.Insert(0.0, rising)
	status.Insert(3.0, falling)

	at := Point{1.5, 1.5}
	status.Update(at.X)
	swap, err := status.Swap(rising, falling, at)
	test.Error(t, err)
	test.T(t, swap.Bigger.Segment, rising)
	test.T(t, swap.Smaller.Segment, falling)
	test.That(t, swap.Above == nil)
	test.That(t, swap.Below == nil)
}

func TestSweepStatusSwapNonAdjacent(t *testing.T) {
	buf := bytes.Buffer{}
	warnings := Warnings
	Warnings = log.New(&buf, "", 0)
	defer func() { Warnings = warnings }()

	a := Segment{Point{0.0, 3.0}, Point{4.0, 3.0}}
	b := Segment{Point{0.0, 2.0}, Point{4.0, 2.0}}
	c := Segment{Point{0.0, 1.0}, Point{4.0, 1.0}}

	status := &SweepStatus{}
	status.Insert(3.0, a)
	status.Insert(2.0, b)
	status.Insert(1.0, c)

	// a and c are two apart; the swap proceeds best-effort and warns with
	// both indices
	_, err := status.Swap(a, c, Point{2.0, 2.0})
	test.Error(t, err)
	test.That(t, strings.Contains(buf.String(), "too far apart"))
	test.That(t, strings.Contains(buf.String(), "(0 and 2)"))
}

func TestSweepStatusSwapNotFound(t *testing.T) {
	a := Segment{Point{0.0, 1.0}, Point{4.0, 1.0}}
	b := Segment{Point{0.0, 2.0}, Point{4.0, 2.0}}

	status := &SweepStatus{}
	status.Insert(1.0, a)
	_, err := status.Swap(a, b, Point{2.0, 1.0})
	test.That(t, errors.Is(err, ErrNotFound))
}
