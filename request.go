package linechart

// Request is a typed settings request. Setters accept it in place of decoded
// Fields and validate it the same way. Nil fields are left out of the request.
type Request interface {
	Fields() Fields
}

type TitlesRequest struct {
	XAxis *string `json:"xAxis,omitempty" yaml:"xAxis,omitempty"`
	YAxis *string `json:"yAxis,omitempty" yaml:"yAxis,omitempty"`
}

func (r *TitlesRequest) Fields() Fields {
	if r == nil {
		return nil
	}
	fs := make(Fields)
	if r.XAxis != nil {
		fs[XAxis] = *r.XAxis
	}
	if r.YAxis != nil {
		fs[YAxis] = *r.YAxis
	}
	return fs
}

type FontRequest struct {
	Family    *string  `json:"fontFamily,omitempty" yaml:"fontFamily,omitempty"`
	LabelSize *float64 `json:"labelFontSize,omitempty" yaml:"labelFontSize,omitempty"`
	TitleSize *float64 `json:"titleFontSize,omitempty" yaml:"titleFontSize,omitempty"`
}

func (r *FontRequest) Fields() Fields {
	if r == nil {
		return nil
	}
	fs := make(Fields)
	if r.Family != nil {
		fs[FontFamily] = *r.Family
	}
	if r.LabelSize != nil {
		fs[LabelFontSize] = *r.LabelSize
	}
	if r.TitleSize != nil {
		fs[TitleFontSize] = *r.TitleSize
	}
	return fs
}

// ColorRequest sets a single color, eg ColorRequest{Field: AxisColor, Color: "red"}.
// SetColors takes a slice of them.
type ColorRequest struct {
	Field string
	Color string
}

func (r *ColorRequest) Fields() Fields {
	if r == nil {
		return nil
	}
	return Fields{r.Field: r.Color}
}

// Ptr returns a pointer to v, to fill the optional fields of a request.
func Ptr[T any](v T) *T {
	return &v
}
