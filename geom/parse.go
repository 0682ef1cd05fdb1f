package geom

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Sentinel errors for point parsing.
var (
	// ErrFieldCount indicates a record without exactly three comma-separated fields.
	ErrFieldCount = errors.New("geom: record must have exactly 3 fields")

	// ErrBadCoordinate indicates a field that is not a floating-point number.
	ErrBadCoordinate = errors.New("geom: coordinate is not a number")
)

// fieldsPerRecord is the arity of an "x,y,z" record.
const fieldsPerRecord = 3

// axisNames label fields in error messages.
var axisNames = [fieldsPerRecord]string{"x", "y", "z"}

// ParsePoint parses a single "x,y,z" record. Whitespace around the record and
// around each field is ignored.
//
// Errors: ErrFieldCount, ErrBadCoordinate (wrapped with the offending axis).
func ParsePoint(line string) (Point, error) {
	fields := strings.Split(strings.TrimSpace(line), ",")
	if len(fields) != fieldsPerRecord {
		return Point{}, fmt.Errorf("%q has %d fields: %w", line, len(fields), ErrFieldCount)
	}

	var coords [fieldsPerRecord]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return Point{}, fmt.Errorf("%s=%q: %w", axisNames[i], f, ErrBadCoordinate)
		}
		coords[i] = v
	}

	return Point{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}

// ReadPoints reads one point per line from r until EOF. Blank lines are
// skipped. The first malformed record aborts the read; the returned error
// carries its 1-based line number and wraps ErrFieldCount or ErrBadCoordinate.
//
// Complexity: O(L) in the input length.
func ReadPoints(r io.Reader) ([]Point, error) {
	var (
		points []Point
		lineNo int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		p, err := ParsePoint(line)
		if err != nil {
			return nil, fmt.Errorf("geom: line %d: %w", lineNo, err)
		}
		points = append(points, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("geom: read points: %w", err)
	}

	return points, nil
}

// WritePoints writes one "x,y,z" record per point, the format ReadPoints reads.
func WritePoints(w io.Writer, points []Point) error {
	bw := bufio.NewWriter(w)
	for _, p := range points {
		if _, err := fmt.Fprintf(bw, "%s,%s,%s\n", formatCoord(p.X), formatCoord(p.Y), formatCoord(p.Z)); err != nil {
			return fmt.Errorf("geom: write points: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("geom: write points: %w", err)
	}
	return nil
}
