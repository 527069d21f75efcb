package autoscroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testHotspot(t EdgeType) Hotspot {
	return Hotspot{Type: t, RelativeEdge: 0.2, MaxEdge: NoMax}
}

func testSpeed(relativePerSecond float64) Speed {
	return Speed{
		Relative: relativePerSecond / 1000,
		Min:      315.0 / 1000,
		Max:      1575.0 / 1000,
	}
}

func TestSignal(t *testing.T) {
	tests := []struct {
		name       string
		hotspot    Hotspot
		coordinate float64
		scrolling  bool
		want       float64
	}{
		{name: "middle of the view", hotspot: testHotspot(EdgeInsideExtend), coordinate: 500, want: 0},
		{name: "leading boundary", hotspot: testHotspot(EdgeInsideExtend), coordinate: 0, want: -1},
		{name: "trailing boundary", hotspot: testHotspot(EdgeInsideExtend), coordinate: 1000, want: 1},
		{name: "halfway into leading hotspot", hotspot: testHotspot(EdgeInsideExtend), coordinate: 100, want: -0.5},
		{name: "halfway into trailing hotspot", hotspot: testHotspot(EdgeInsideExtend), coordinate: 900, want: 0.5},
		{name: "inner edge of hotspot", hotspot: testHotspot(EdgeInsideExtend), coordinate: 200, want: 0},
		{name: "outside while idle", hotspot: testHotspot(EdgeInsideExtend), coordinate: -10, want: 0},
		{name: "outside while scrolling extends", hotspot: testHotspot(EdgeInsideExtend), coordinate: -10, scrolling: true, want: -1},
		{name: "outside past trailing edge while scrolling", hotspot: testHotspot(EdgeInsideExtend), coordinate: 1010, scrolling: true, want: 1},
		{name: "inside edge stops outside", hotspot: testHotspot(EdgeInside), coordinate: -10, scrolling: true, want: 0},
		{name: "max edge caps hotspot", hotspot: Hotspot{Type: EdgeInside, RelativeEdge: 0.2, MaxEdge: 50}, coordinate: 100, want: 0},
		{name: "max edge ramp", hotspot: Hotspot{Type: EdgeInside, RelativeEdge: 0.2, MaxEdge: 50}, coordinate: 25, want: -0.5},
		{name: "zero edge disables hotspot", hotspot: Hotspot{Type: EdgeInside, RelativeEdge: RelativeUnspecified, MaxEdge: NoMax}, coordinate: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Signal(tt.hotspot, tt.coordinate, 1000, tt.scrolling)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestVelocityClampsToMinimumNearInnerEdge(t *testing.T) {
	v := Velocity(testHotspot(EdgeInsideExtend), testSpeed(1), 199.999, 1000, false)

	assert.InDelta(t, -0.315, v, 1e-9)
}

func TestVelocityAtBoundaryUsesRelativeTarget(t *testing.T) {
	v := Velocity(testHotspot(EdgeInsideExtend), testSpeed(1), 1000, 1000, false)

	assert.InDelta(t, 1.0, v, 1e-9)
}

func TestVelocityOutsideBoundsReachesMaximum(t *testing.T) {
	v := Velocity(testHotspot(EdgeInsideExtend), testSpeed(2), -25, 1000, true)

	assert.InDelta(t, -1.575, v, 1e-9)
}

func TestVelocityZeroSignalIgnoresMinimum(t *testing.T) {
	s := testSpeed(1)
	s.Min = 5

	assert.Equal(t, 0.0, Velocity(testHotspot(EdgeInside), s, 500, 1000, false))
	assert.Equal(t, 0.0, VelocityFor(0, s, 1000))
}

func TestVelocityIsDeterministic(t *testing.T) {
	h := testHotspot(EdgeInsideExtend)
	s := testSpeed(1.5)

	for _, c := range []float64{-3, 0, 17.25, 150, 420, 999.5, 1003} {
		first := Velocity(h, s, c, 1000, true)
		second := Velocity(h, s, c, 1000, true)
		assert.Equal(t, first, second, "coordinate %v", c)
	}
}

func TestEdgeTypeString(t *testing.T) {
	assert.Equal(t, "inside", EdgeInside.String())
	assert.Equal(t, "inside_extend", EdgeInsideExtend.String())
	assert.Equal(t, "unknown", EdgeType(42).String())
}

func TestParseEdgeType(t *testing.T) {
	for _, in := range []string{"inside", " INSIDE "} {
		got, err := ParseEdgeType(in)
		assert.NoError(t, err)
		assert.Equal(t, EdgeInside, got)
	}
	for _, in := range []string{"inside_extend", "Inside-Extend"} {
		got, err := ParseEdgeType(in)
		assert.NoError(t, err)
		assert.Equal(t, EdgeInsideExtend, got)
	}
	got, err := ParseEdgeType("outside")
	assert.Error(t, err)
	assert.Equal(t, EdgeInsideExtend, got)
}
