package sweep

import (
	"fmt"
	"math"
)

// EventKind is the type of a sweep event.
type EventKind int

const (
	BeginEvent        EventKind = iota // sweep line enters a segment
	EndEvent                           // sweep line leaves a segment
	IntersectionEvent                  // two segments cross
)

func (kind EventKind) String() string {
	switch kind {
	case BeginEvent:
		return "begin"
	case EndEvent:
		return "end"
	case IntersectionEvent:
		return "intersection"
	}
	return fmt.Sprintf("EventKind(%d)", int(kind))
}

// Event is a point of interest for the sweep line: a segment's lower
// endpoint, a segment's upper endpoint, or a crossing between Segment and
// Other. Other is set for intersection events only.
type Event struct {
	Kind    EventKind
	Point   Point
	Segment Segment
	Other   Segment
}

// Less orders events by their point. At equal points intersections sort
// before segment ends, so that a crossing at a segment's endpoint is handled
// while that segment is still in the sweep status.
func (e Event) Less(o Event) bool {
	if cmp := e.Point.Compare(o.Point); cmp != 0 {
		return cmp < 0
	}
	return e.Kind == IntersectionEvent && o.Kind == EndEvent
}

func (e Event) String() string {
	if e.Kind == IntersectionEvent {
		return fmt.Sprintf("%v %v of %v and %v", e.Kind, e.Point, e.Segment, e.Other)
	}
	return fmt.Sprintf("%v %v of %v", e.Kind, e.Point, e.Segment)
}

// EventQueue holds the pending sweep events in sweep order. Intersection
// points are deduplicated on their coordinates rounded to Precision decimals,
// so that segment pairs rediscovering the same geometric crossing do not
// schedule it twice.
type EventQueue struct {
	events    []Event
	endpoints map[Point]bool
	scheduled map[Point]bool // rounded intersection points already queued
	lastX     float64
}

// NewEventQueue returns an event queue with a begin and end event for every
// segment. Vertical segments, zero-length segments, and segments with
// coinciding endpoints violate the sweep's preconditions and return an error.
func NewEventQueue(segments []Segment) (*EventQueue, error) {
	q := &EventQueue{
		events:    make([]Event, 0, 2*len(segments)),
		endpoints: make(map[Point]bool, 2*len(segments)),
		scheduled: map[Point]bool{},
		lastX:     math.Inf(-1),
	}
	for _, segment := range segments {
		if segment.P == segment.Q {
			return nil, fmt.Errorf("%w: %v", ErrZeroLength, segment)
		} else if segment.P.X == segment.Q.X {
			return nil, fmt.Errorf("%w: %v", ErrVertical, segment)
		}

		begin := Event{Kind: BeginEvent, Point: segment.Lower(), Segment: segment}
		end := Event{Kind: EndEvent, Point: segment.Upper(), Segment: segment}
		for _, event := range []Event{begin, end} {
			if q.endpoints[event.Point] {
				return nil, fmt.Errorf("%w: %v", ErrDuplicatePoint, event.Point)
			}
			q.endpoints[event.Point] = true
			q.push(event)
		}
	}
	return q, nil
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Pop removes and returns the next event in sweep order, or false when the
// queue is empty. Events must come out with non-decreasing x-coordinates; a
// regression means the sweep's invariants no longer hold and is an error.
func (q *EventQueue) Pop() (Event, bool, error) {
	if len(q.events) == 0 {
		return Event{}, false, nil
	}
	event := q.pop()
	if event.Point.X < q.lastX {
		return Event{}, false, fmt.Errorf("%w: x=%g after x=%g", ErrNotMonotone, event.Point.X, q.lastX)
	}
	q.lastX = event.Point.X
	return event, true, nil
}

// AddIntersection schedules an intersection event between segment and other
// at p, rounded to Precision decimals. The event is dropped when the rounded
// point lies behind the sweep line or was already scheduled before; it
// reports whether the event was added.
func (q *EventQueue) AddIntersection(p Point, segment, other Segment) bool {
	p = p.Round(Precision)
	if p.X < q.lastX || q.scheduled[p] {
		return false
	}
	q.scheduled[p] = true
	q.push(Event{Kind: IntersectionEvent, Point: p, Segment: segment, Other: other})
	return true
}

// binary min-heap, from container/heap
func (q *EventQueue) push(event Event) {
	q.events = append(q.events, event)
	q.up(len(q.events) - 1)
}

func (q *EventQueue) pop() Event {
	n := len(q.events) - 1
	q.events[0], q.events[n] = q.events[n], q.events[0]
	q.down(0, n)

	event := q.events[n]
	q.events = q.events[:n]
	return event
}

func (q *EventQueue) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !q.events[j].Less(q.events[i]) {
			break
		}
		q.events[i], q.events[j] = q.events[j], q.events[i]
		j = i
	}
}

func (q *EventQueue) down(i0, n int) {
	i := i0
	for {
		j1 := 2*i + 1
		if n <= j1 || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && q.events[j2].Less(q.events[j1]) {
			j = j2 // = 2*i + 2  // right child
		}
		if !q.events[j].Less(q.events[i]) {
			break
		}
		q.events[i], q.events[j] = q.events[j], q.events[i]
		i = j
	}
}
