package linechart

import (
	"math"
)

const (
	axisLabelMargin = 5
	titleOffset     = 3
)

var guideDash = []float64{1, 5}

func drawAxis(ctx *Context) {
	var (
		m  = ctx.Metrics
		rd = ctx.renderer
	)
	rd.MoveTo(m.Left(), m.Bottom())
	rd.LineTo(m.Right(), m.Bottom())
	rd.Stroke(ctx.Colors.AxisColor())

	rd.MoveTo(m.Left(), m.Top())
	rd.LineTo(m.Left(), m.Bottom())
	rd.Stroke(ctx.Colors.AxisColor())
}

func drawZeroLine(ctx *Context, mapper Mapper) {
	y, ok := mapper.ZeroLine()
	if !ok {
		return
	}
	m := ctx.Metrics
	ctx.renderer.MoveTo(m.Left(), y)
	ctx.renderer.LineTo(m.Right(), y)
	ctx.renderer.Stroke(ctx.Colors.ZeroLineColor())
}

// drawXLabels draws a dotted guide line for each label and writes the index
// below the axis, one digit per line.
func drawXLabels(ctx *Context, labels []Label) {
	var (
		m     = ctx.Metrics
		rd    = ctx.renderer
		size  = ctx.Fonts.LabelSize()
		top   = m.Bottom() + math.Ceil(size/2)
		style = TextStyle{
			Font:     ctx.Fonts.LabelFont(),
			Color:    ctx.Colors.LabelColor(),
			Align:    AlignCenter,
			Baseline: BaselineTop,
		}
	)
	for _, lb := range labels {
		x := lb.Point.X
		rd.MoveTo(x, m.Bottom())
		rd.LineTo(x, m.Top())
		rd.Stroke(ctx.Colors.AxisColor(), guideDash...)

		for i, c := range lb.Text {
			rd.FillText(string(c), x, top+float64(i)*size, style)
		}
	}
}

func drawYLabels(ctx *Context, ticks []Tick) {
	var (
		x     = ctx.Metrics.Left() - axisLabelMargin
		style = TextStyle{
			Font:     ctx.Fonts.LabelFont(),
			Color:    ctx.Colors.LabelColor(),
			Align:    AlignRight,
			Baseline: BaselineMiddle,
		}
	)
	for _, tk := range ticks {
		ctx.renderer.FillText(tk.Text(), x, tk.Y, style)
	}
}

func drawTitles(ctx *Context) {
	var (
		m     = ctx.Metrics
		rd    = ctx.renderer
		font  = ctx.Fonts.TitleFont()
		style = TextStyle{
			Font:     font,
			Color:    ctx.Colors.TitleColor(),
			Align:    AlignCenter,
			Baseline: BaselineBottom,
		}
	)
	title := ctx.Titles.XAxis()
	rd.Save()
	rd.Translate(m.Left()+rd.MeasureText(title, font)/2, m.Bottom()+font.Size*titleOffset)
	rd.FillText(title, 0, 0, style)
	rd.Restore()

	title = ctx.Titles.YAxis()
	rd.Save()
	rd.Translate(m.Left()-font.Size*titleOffset, m.Top()+m.RenderHeight/2)
	rd.Rotate(-math.Pi / 2)
	rd.FillText(title, 0, 0, style)
	rd.Restore()
}
