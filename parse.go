package sweep

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"

	parseStrconv "github.com/tdewolff/parse/v2/strconv"
)

func skipWhitespace(b []byte, i int) int {
	for i < len(b) && (b[i] == ' ' || b[i] == '\t' || b[i] == '\r') {
		i++
	}
	return i
}

// ParseSegment parses a segment from four whitespace-separated coordinates:
// x1 y1 x2 y2.
func ParseSegment(b []byte) (Segment, error) {
	var coords [4]float64
	i := skipWhitespace(b, 0)
	for j := range coords {
		f, n := parseStrconv.ParseFloat(b[i:])
		if n == 0 {
			return Segment{}, fmt.Errorf("expected four coordinates: %s", b)
		} else if math.IsInf(f, 0) || math.IsNaN(f) {
			return Segment{}, fmt.Errorf("coordinate not finite: %s", b)
		}
		coords[j] = f
		i = skipWhitespace(b, i+n)
	}
	if i != len(b) {
		return Segment{}, fmt.Errorf("unexpected data after coordinates: %s", b)
	}
	return Segment{
		P: Point{coords[0], coords[1]},
		Q: Point{coords[2], coords[3]},
	}, nil
}

// ParseSegments parses segments from b, one segment per line. Empty lines
// are skipped.
func ParseSegments(b []byte) ([]Segment, error) {
	segments := []Segment{}
	for line := 1; 0 < len(b); line++ {
		row := b
		if i := bytes.IndexByte(b, '\n'); i != -1 {
			row, b = b[:i], b[i+1:]
		} else {
			b = nil
		}
		if len(bytes.TrimSpace(row)) == 0 {
			continue
		}

		segment, err := ParseSegment(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		segments = append(segments, segment)
	}
	return segments, nil
}

// appendCoord writes v in the shortest decimal form that parses back to the
// same value.
func appendCoord(b []byte, v float64) []byte {
	return strconv.AppendFloat(b, v, 'f', -1, 64)
}

// WritePoints writes one point per line to w as two space-separated
// coordinates.
func WritePoints(w io.Writer, points []Point) error {
	b := make([]byte, 0, 64)
	for _, p := range points {
		b = appendCoord(b[:0], p.X)
		b = append(b, ' ')
		b = appendCoord(b, p.Y)
		b = append(b, '\n')
		if _, err := w.Write(b); err != nil {
			return err
		}
	}
	return nil
}

// WriteSegments writes one segment per line to w in the format that
// ParseSegments reads.
func WriteSegments(w io.Writer, segments []Segment) error {
	b := make([]byte, 0, 128)
	for _, segment := range segments {
		b = appendCoord(b[:0], segment.P.X)
		b = append(b, ' ')
		b = appendCoord(b, segment.P.Y)
		b = append(b, ' ')
		b = appendCoord(b, segment.Q.X)
		b = append(b, ' ')
		b = appendCoord(b, segment.Q.Y)
		b = append(b, '\n')
		if _, err := w.Write(b); err != nil {
			return err
		}
	}
	return nil
}

// ParsePoints parses points from b, one point per line as two
// whitespace-separated coordinates. It is the inverse of WritePoints.
func ParsePoints(b []byte) ([]Point, error) {
	points := []Point{}
	for line := 1; 0 < len(b); line++ {
		row := b
		if i := bytes.IndexByte(b, '\n'); i != -1 {
			row, b = b[:i], b[i+1:]
		} else {
			b = nil
		}
		if len(bytes.TrimSpace(row)) == 0 {
			continue
		}

		var coords [2]float64
		i := skipWhitespace(row, 0)
		for j := range coords {
			f, n := parseStrconv.ParseFloat(row[i:])
			if n == 0 {
				return nil, fmt.Errorf("line %d: expected two coordinates: %s", line, row)
			} else if math.IsInf(f, 0) || math.IsNaN(f) {
				return nil, fmt.Errorf("line %d: coordinate not finite: %s", line, row)
			}
			coords[j] = f
			i = skipWhitespace(row, i+n)
		}
		if i != len(row) {
			return nil, fmt.Errorf("line %d: unexpected data after coordinates: %s", line, row)
		}
		points = append(points, Point{coords[0], coords[1]})
	}
	return points, nil
}
