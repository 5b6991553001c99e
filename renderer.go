package linechart

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

type Baseline int

const (
	BaselineTop Baseline = iota
	BaselineMiddle
	BaselineBottom
)

type TextStyle struct {
	Font     Font
	Color    string
	Align    Align
	Baseline Baseline
}

// Renderer is the drawing surface a graph is painted on. Its methods mirror
// a 2D canvas: a path is built with MoveTo and LineTo and painted by Stroke,
// which also starts a new path.
type Renderer interface {
	// Size returns the displayed size of the surface, in pixels.
	Size() (float64, float64)
	Clear()

	FillRect(x, y, w, h float64, color string)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke(color string, dash ...float64)
	FillCircle(x, y, radius float64, color string)
	FillText(str string, x, y float64, style TextStyle)
	MeasureText(str string, font Font) float64

	Save()
	Translate(x, y float64)
	Rotate(angle float64)
	Restore()
}

// Resizer is implemented by surfaces that can change their displayed size.
type Resizer interface {
	Resize(width, height float64) error
}

// Draw paints a graph with everything computed in ctx.
func Draw(ctx *Context) {
	var (
		mapper = ctx.Mapper()
		plan   = ctx.Labels()
	)
	drawBackground(ctx)
	drawAxis(ctx)
	drawZeroLine(ctx, mapper)
	drawXLabels(ctx, plan.Labels(mapper))
	drawYLabels(ctx, mapper.Ticks())
	drawLine(ctx, mapper)
	drawDots(ctx, mapper)
	drawTitles(ctx)
}

func drawBackground(ctx *Context) {
	ctx.renderer.FillRect(0, 0, ctx.Metrics.Width, ctx.Metrics.Height, ctx.Colors.BackgroundColor())
}

func drawLine(ctx *Context, mapper Mapper) {
	for i, pt := range mapper.Points() {
		if i == 0 {
			ctx.renderer.MoveTo(pt.X, pt.Y)
		} else {
			ctx.renderer.LineTo(pt.X, pt.Y)
		}
	}
	ctx.renderer.Stroke(ctx.Colors.GraphLineColor())
}
