package linechart

// DotRadius is the radius of the dot drawn on every data point.
const DotRadius = 3.0

func drawDots(ctx *Context, mapper Mapper) {
	color := ctx.Colors.GraphDotColor()
	for _, pt := range mapper.Points() {
		ctx.renderer.FillCircle(pt.X, pt.Y, DotRadius, color)
	}
}
