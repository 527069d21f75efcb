package dragselect

import "github.com/cristianoliveira/dragselect/internal/autoscroll"

// Default configuration values. Velocities are in units per second.
const (
	DefaultMinVelocity      = 315.0
	DefaultMaxVelocity      = 1575.0
	DefaultRelativeVelocity = 1.0
	DefaultRelativeEdge     = 0.2
	DefaultMaxEdge          = autoscroll.NoMax
	DefaultEdgeType         = autoscroll.EdgeInsideExtend
)

// Config holds the tunables of a Helper. Build one with NewConfig and the
// With methods; each returns a modified copy.
type Config struct {
	EdgeType autoscroll.EdgeType
	// RelativeEdge is the hotspot size as a fraction of the view extent.
	RelativeEdge float64
	// MaxEdge caps the hotspot size, in view units.
	MaxEdge float64
	// RelativeVelocity is the target speed as a fraction of the view extent
	// per second.
	RelativeVelocity float64
	MinVelocity      float64
	MaxVelocity      float64
	// AutoEnterSlide returns to the slide state instead of the normal state
	// when a drag that started in the normal state is released.
	AutoEnterSlide bool
	// AllowDragInSlide lets ActiveDragSelect start a drag while in the slide
	// state.
	AllowDragInSlide bool
	// SlideStart and SlideEnd bound the slide area on the cross axis,
	// exclusive at both ends.
	SlideStart float64
	SlideEnd   float64
}

// NewConfig returns the default configuration.
func NewConfig() Config {
	return Config{
		EdgeType:         DefaultEdgeType,
		RelativeEdge:     DefaultRelativeEdge,
		MaxEdge:          DefaultMaxEdge,
		RelativeVelocity: DefaultRelativeVelocity,
		MinVelocity:      DefaultMinVelocity,
		MaxVelocity:      DefaultMaxVelocity,
	}
}

func (c Config) WithEdgeType(t autoscroll.EdgeType) Config {
	c.EdgeType = t
	return c
}

func (c Config) WithRelativeHotspotEdges(ratio float64) Config {
	c.RelativeEdge = ratio
	return c
}

func (c Config) WithMaximumHotspotEdges(max float64) Config {
	c.MaxEdge = max
	return c
}

func (c Config) WithRelativeVelocity(v float64) Config {
	c.RelativeVelocity = v
	return c
}

func (c Config) WithMinimumVelocity(v float64) Config {
	c.MinVelocity = v
	return c
}

func (c Config) WithMaximumVelocity(v float64) Config {
	c.MaxVelocity = v
	return c
}

func (c Config) WithAutoEnterSlide(enabled bool) Config {
	c.AutoEnterSlide = enabled
	return c
}

func (c Config) WithAllowDragInSlide(enabled bool) Config {
	c.AllowDragInSlide = enabled
	return c
}

func (c Config) WithSlideArea(start, end float64) Config {
	c.SlideStart = start
	c.SlideEnd = end
	return c
}

func (c Config) hotspot() autoscroll.Hotspot {
	return autoscroll.Hotspot{
		Type:         c.EdgeType,
		RelativeEdge: c.RelativeEdge,
		MaxEdge:      c.MaxEdge,
	}
}

// speed converts the per-second velocities into per-millisecond ones.
func (c Config) speed() autoscroll.Speed {
	return autoscroll.Speed{
		Relative: c.RelativeVelocity / 1000,
		Min:      c.MinVelocity / 1000,
		Max:      c.MaxVelocity / 1000,
	}
}

func (c Config) inSlideArea(location float64) bool {
	return location > c.SlideStart && location < c.SlideEnd
}
