package pcaplot

// The chart model is the boundary between this package and whatever does the
// actual drawing. Assemblers return a *Chart (marks, encodings, facets and
// a little theming) and a Renderer turns it into pixels or vector output.
// Reshaping and validation stay testable without ever touching a canvas.

// LegendPosition places the legend (or color bar) relative to the plot area.
type LegendPosition int

const (
	// LegendBottom places the legend below the plot area. Default for every
	// assembler in this package.
	LegendBottom LegendPosition = iota

	// LegendRight places the legend to the right of the plot area.
	LegendRight

	// LegendNone suppresses the legend.
	LegendNone
)

// Tick is an explicit axis tick: a value on the axis and its label.
type Tick struct {
	Value float64
	Label string
}

// ColorScale describes a continuous color encoding over [Min, Max]. The
// reference renderer maps it onto the diverging dark-red → yellow →
// dark-green scale; values outside the range are dropped, not clamped.
type ColorScale struct {
	Min, Max float64
	Label    string
}

// Panel is one facet of a chart. Single-panel charts use a 1×1 grid. XVar
// and YVar carry the facet strip text; a diagonal density facet leaves YVar
// empty.
type Panel struct {
	XVar, YVar string
	Marks      []Mark
}

// Mark is one layer of geometry within a panel.
type Mark interface {
	mark()
}

// LineMark is a connected line through (X[i], Y[i]), optionally with a
// marker glyph at each vertex.
type LineMark struct {
	X, Y    []float64
	Markers bool
}

// PointMark is a scatter of (X[i], Y[i]). When Color is non-nil it is a
// parallel vector of values encoded through the chart's ColorScale.
type PointMark struct {
	X, Y  []float64
	Color []float64
}

// LabelMark annotates points with text.
type LabelMark struct {
	X, Y   []float64
	Labels []string
}

// DensityMark is a 1-D kernel density curve of Values, with the curve height
// rescaled into [Min, Max] so it overlays the value range it describes.
type DensityMark struct {
	Values   []float64
	Min, Max float64
}

func (LineMark) mark()    {}
func (PointMark) mark()   {}
func (LabelMark) mark()   {}
func (DensityMark) mark() {}

// Chart is a renderable chart specification. It is immutable by convention
// once an assembler returns it.
type Chart struct {
	Title          string
	XLabel, YLabel string

	// IncludeZeroY forces the y-axis to include zero.
	IncludeZeroY bool

	// XTicks, when non-nil, replaces automatic x ticks. Minor gridlines are
	// never drawn by the reference renderer.
	XTicks []Tick

	Legend LegendPosition

	// Color is the shared continuous color encoding for PointMark layers,
	// nil when the chart has none.
	Color *ColorScale

	// Panels is the facet grid, row-major. Entries may be nil (empty cell).
	Panels [][]*Panel
}

// Rows returns the number of facet rows.
func (c *Chart) Rows() int {
	return len(c.Panels)
}

// Cols returns the number of facet columns.
func (c *Chart) Cols() int {
	if len(c.Panels) == 0 {
		return 0
	}
	return len(c.Panels[0])
}

// Renderer turns a chart specification into an output file. Implementations
// own all drawing concerns; assemblers never touch them.
type Renderer interface {
	Render(c *Chart, path string) error
}
