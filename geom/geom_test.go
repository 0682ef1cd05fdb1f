package geom_test

import (
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/junctionbox/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDistance_Basic checks a 3-4-5 triangle and a full 3-D diagonal.
func TestDistance_Basic(t *testing.T) {
	a := geom.Point{X: 0, Y: 0, Z: 0}
	b := geom.Point{X: 3, Y: 4, Z: 0}
	assert.Equal(t, 5.0, geom.Distance(a, b))

	c := geom.Point{X: 1, Y: 2, Z: 2}
	assert.Equal(t, 3.0, geom.Distance(a, c))
}

// TestDistance_SymmetricAndZero verifies distance(a,b)==distance(b,a) and distance(a,a)==0.
func TestDistance_SymmetricAndZero(t *testing.T) {
	pts := []geom.Point{
		{X: 162, Y: 817, Z: 812},
		{X: -57, Y: 618, Z: 57.5},
		{X: 906, Y: -360, Z: 560},
		{X: 0, Y: 0, Z: 0},
	}
	for i, a := range pts {
		assert.Zero(t, geom.Distance(a, a), "self distance of #%d", i)
		for _, b := range pts {
			assert.Equal(t, geom.Distance(a, b), geom.Distance(b, a))
			assert.GreaterOrEqual(t, geom.Distance(a, b), 0.0)
		}
	}
}

// TestDistance_LargeCoordinates makes sure squaring does not overflow for puzzle-sized inputs.
func TestDistance_LargeCoordinates(t *testing.T) {
	a := geom.Point{X: 1e9, Y: 1e9, Z: 1e9}
	b := geom.Point{X: -1e9, Y: -1e9, Z: -1e9}
	d := geom.Distance(a, b)
	assert.False(t, math.IsInf(d, 0))
	assert.InDelta(t, 2e9*math.Sqrt(3), d, 1)
}

// TestDistance_ExtremeMagnitudes covers differences whose squares overflow or
// underflow a float64.
func TestDistance_ExtremeMagnitudes(t *testing.T) {
	tests := []struct {
		name string
		a, b geom.Point
		want float64
	}{
		{name: "squares overflow", a: geom.Point{}, b: geom.Point{X: 1e200}, want: 1e200},
		{name: "diagonal overflow", a: geom.Point{}, b: geom.Point{X: 3e200, Y: 4e200}, want: 5e200},
		{name: "near the float64 limit", a: geom.Point{X: -1e308}, b: geom.Point{X: 0.5e308}, want: 1.5e308},
		{name: "squares underflow", a: geom.Point{}, b: geom.Point{Y: 3e-200, Z: 4e-200}, want: 5e-200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := geom.Distance(tt.a, tt.b)
			assert.InEpsilon(t, tt.want, d, 1e-12)
			assert.Equal(t, d, geom.Distance(tt.b, tt.a))
		})
	}

	// Not representable at all.
	assert.True(t, math.IsInf(geom.Distance(geom.Point{X: -math.MaxFloat64}, geom.Point{X: math.MaxFloat64}), 1))
	// Non-finite input never yields a finite distance.
	assert.True(t, math.IsInf(geom.Distance(geom.Point{X: math.Inf(1)}, geom.Point{}), 1))
	assert.True(t, math.IsNaN(geom.Distance(geom.Point{Y: math.NaN()}, geom.Point{})))
}

func TestPoint_EqualAndFinite(t *testing.T) {
	p := geom.Point{X: 1, Y: 2, Z: 3}
	assert.True(t, p.Equal(geom.Point{X: 1, Y: 2, Z: 3}))
	assert.False(t, p.Equal(geom.Point{X: 1, Y: 2, Z: 3.0000001}))
	assert.True(t, p.Finite())
	assert.False(t, geom.Point{X: math.NaN()}.Finite())
	assert.False(t, geom.Point{Z: math.Inf(-1)}.Finite())
}

func TestPoint_String(t *testing.T) {
	assert.Equal(t, "(x=216, y=146, z=977)", geom.Point{X: 216, Y: 146, Z: 977}.String())
	assert.Equal(t, "(x=-0.5, y=0, z=1000000)", geom.Point{X: -0.5, Z: 1e6}.String())
}

// TestParsePoint covers well-formed and malformed records.
func TestParsePoint(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    geom.Point
		wantErr error
	}{
		{name: "ints", line: "162,817,812", want: geom.Point{X: 162, Y: 817, Z: 812}},
		{name: "floats and spaces", line: "  1.5, -2 ,3e2 ", want: geom.Point{X: 1.5, Y: -2, Z: 300}},
		{name: "two fields", line: "1,2", wantErr: geom.ErrFieldCount},
		{name: "four fields", line: "1,2,3,4", wantErr: geom.ErrFieldCount},
		{name: "empty field", line: "1,,3", wantErr: geom.ErrBadCoordinate},
		{name: "word", line: "1,two,3", wantErr: geom.ErrBadCoordinate},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := geom.ParsePoint(tc.line)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestReadPoints reads a small file with a blank line and a trailing newline.
func TestReadPoints(t *testing.T) {
	in := "0,0,0\n3,4,0\n\n1,1,1\n"
	pts, err := geom.ReadPoints(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []geom.Point{{}, {X: 3, Y: 4}, {X: 1, Y: 1, Z: 1}}, pts)
}

// TestReadPoints_ReportsLine checks that the failing line number is carried in the error.
func TestReadPoints_ReportsLine(t *testing.T) {
	in := "0,0,0\n1,2,3\nbad\n"
	pts, err := geom.ReadPoints(strings.NewReader(in))
	assert.Nil(t, pts)
	assert.ErrorIs(t, err, geom.ErrFieldCount)
	assert.Contains(t, err.Error(), "line 3")
}

func TestReadPoints_Empty(t *testing.T) {
	pts, err := geom.ReadPoints(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, pts)
}

// TestWritePoints_RoundTrip writes points and reads them back unchanged.
func TestWritePoints_RoundTrip(t *testing.T) {
	pts := []geom.Point{{X: 162, Y: 817, Z: 812}, {X: -0.25, Y: 1e6, Z: 3}}
	var sb strings.Builder
	require.NoError(t, geom.WritePoints(&sb, pts))
	assert.Equal(t, "162,817,812\n-0.25,1000000,3\n", sb.String())

	back, err := geom.ReadPoints(strings.NewReader(sb.String()))
	require.NoError(t, err)
	assert.Equal(t, pts, back)
}
