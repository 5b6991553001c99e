package linechart

// Point is a position on the drawing surface, in pixels.
type Point struct {
	X float64
	Y float64
}

func NewPoint(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}
