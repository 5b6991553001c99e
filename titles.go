package linechart

const (
	XAxis = "xAxis"
	YAxis = "yAxis"
)

const (
	DefaultXTitle = "Index"
	DefaultYTitle = "Values"
)

type AxisTitles struct {
	x string
	y string
}

func DefaultAxisTitles() AxisTitles {
	return NewAxisTitles(DefaultXTitle, DefaultYTitle)
}

func NewAxisTitles(x, y string) AxisTitles {
	return AxisTitles{
		x: x,
		y: y,
	}
}

func (a AxisTitles) XAxis() string {
	return a.x
}

func (a AxisTitles) YAxis() string {
	return a.y
}

var titleRequest = shape{
	Allowed: []string{XAxis, YAxis},
	MinLen:  1,
}

// mergeTitles applies a partial update: titles missing from the request
// keep their current value.
func mergeTitles(curr AxisTitles, req any) (AxisTitles, error) {
	fs, err := titleRequest.validate("axis titles", req)
	if err != nil {
		return curr, err
	}
	if err := expect(fs, KindString, XAxis, YAxis); err != nil {
		return curr, err
	}
	next := curr
	if x, ok := fs[XAxis]; ok {
		next.x = x.(string)
	}
	if y, ok := fs[YAxis]; ok {
		next.y = y.(string)
	}
	return next, nil
}
