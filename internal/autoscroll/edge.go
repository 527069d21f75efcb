// Package autoscroll maps a pointer position near the edge of a view to a
// scroll velocity and turns that velocity into per-frame scroll deltas.
package autoscroll

import (
	"fmt"
	"math"
	"strings"
)

// EdgeType selects how a hotspot behaves once the pointer leaves the view.
type EdgeType int

const (
	// EdgeInside responds to pointers inside the view bounds only.
	// Moving outside the bounds stops scrolling.
	EdgeInside EdgeType = iota
	// EdgeInsideExtend responds like EdgeInside, but once scrolling has
	// started a pointer outside the bounds keeps scrolling at full speed.
	EdgeInsideExtend
)

// String returns the config spelling of the edge type.
func (t EdgeType) String() string {
	switch t {
	case EdgeInside:
		return "inside"
	case EdgeInsideExtend:
		return "inside_extend"
	default:
		return "unknown"
	}
}

// ParseEdgeType reads the config spelling of an edge type.
func ParseEdgeType(s string) (EdgeType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inside":
		return EdgeInside, nil
	case "inside_extend", "inside-extend", "insideextend":
		return EdgeInsideExtend, nil
	}
	return EdgeInsideExtend, fmt.Errorf("unknown edge type %q", s)
}

const (
	// NoMax leaves an upper bound unconstrained.
	NoMax = math.MaxFloat32
	// NoMin leaves a lower bound unconstrained.
	NoMin = 0.0
	// RelativeUnspecified disables a relative value.
	RelativeUnspecified = 0.0
)

// Hotspot describes the bands at both ends of the scroll axis that
// activate auto-scrolling. Leading and trailing bands share one size.
type Hotspot struct {
	Type EdgeType
	// RelativeEdge is the band size as a fraction of the axis extent.
	RelativeEdge float64
	// MaxEdge caps the computed band size.
	MaxEdge float64
}

// Speed holds scroll velocity constraints, all in units per millisecond.
type Speed struct {
	// Relative is the target velocity as a fraction of the axis extent.
	Relative float64
	Min      float64
	Max      float64
}

// Signal returns the hotspot activation for coordinate on an axis of the
// given size, in [-1, 1]. Negative values scroll towards the start of the
// content, positive values towards the end, and zero means no hotspot is
// active. scrolling reports whether auto-scrolling is already running.
func Signal(h Hotspot, coordinate, size float64, scrolling bool) float64 {
	edge := constrain(h.RelativeEdge*size, 0, h.MaxEdge)
	leading := edgeResponse(h.Type, coordinate, edge, scrolling)
	trailing := edgeResponse(h.Type, size-coordinate, edge, scrolling)
	value := trailing - leading
	if value == 0 {
		return 0
	}
	return constrain(value, -1, 1)
}

// VelocityFor converts a hotspot signal into a signed velocity.
func VelocityFor(signal float64, s Speed, size float64) float64 {
	if signal == 0 {
		return 0
	}
	target := s.Relative * size
	if signal > 0 {
		return constrain(signal*target, s.Min, s.Max)
	}
	return -constrain(-signal*target, s.Min, s.Max)
}

// Velocity is Signal followed by VelocityFor.
func Velocity(h Hotspot, s Speed, coordinate, size float64, scrolling bool) float64 {
	return VelocityFor(Signal(h, coordinate, size, scrolling), s, size)
}

// edgeResponse ramps linearly from 1 at the view boundary to 0 at the inner
// edge of the hotspot.
func edgeResponse(t EdgeType, distance, edge float64, scrolling bool) float64 {
	if edge == 0 {
		return 0
	}
	if distance < edge {
		if distance >= 0 {
			return 1 - distance/edge
		}
		if scrolling && t == EdgeInsideExtend {
			return 1
		}
	}
	return 0
}

func constrain(value, min, max float64) float64 {
	if value > max {
		return max
	}
	return math.Max(value, min)
}
