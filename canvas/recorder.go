package canvas

import (
	"fmt"

	"github.com/midbel/linechart"
)

const (
	CallClear      = "clear"
	CallFillRect   = "fillRect"
	CallMoveTo     = "moveTo"
	CallLineTo     = "lineTo"
	CallStroke     = "stroke"
	CallFillCircle = "fillCircle"
	CallFillText   = "fillText"
	CallSave       = "save"
	CallTranslate  = "translate"
	CallRotate     = "rotate"
	CallRestore    = "restore"
	CallResize     = "resize"
)

type Call struct {
	Name  string
	Args  []float64
	Color string
	Dash  []float64
	Text  string
	Style linechart.TextStyle
}

// Recorder keeps every primitive it receives instead of drawing it. Text is
// measured as half of the font size per rune.
type Recorder struct {
	width  float64
	height float64
	Calls  []Call
}

func NewRecorder(width, height float64) *Recorder {
	return &Recorder{
		width:  width,
		height: height,
	}
}

func (r *Recorder) Size() (float64, float64) {
	return r.width, r.height
}

func (r *Recorder) Resize(width, height float64) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: recorder size must be positive (%gx%g)", linechart.ErrInvalidSurface, width, height)
	}
	r.width, r.height = width, height
	r.record(Call{Name: CallResize, Args: []float64{width, height}})
	return nil
}

func (r *Recorder) Clear() {
	r.record(Call{Name: CallClear})
}

func (r *Recorder) FillRect(x, y, w, h float64, color string) {
	r.record(Call{Name: CallFillRect, Args: []float64{x, y, w, h}, Color: color})
}

func (r *Recorder) MoveTo(x, y float64) {
	r.record(Call{Name: CallMoveTo, Args: []float64{x, y}})
}

func (r *Recorder) LineTo(x, y float64) {
	r.record(Call{Name: CallLineTo, Args: []float64{x, y}})
}

func (r *Recorder) Stroke(color string, dash ...float64) {
	c := Call{
		Name:  CallStroke,
		Color: color,
	}
	if len(dash) > 0 {
		c.Dash = append(c.Dash, dash...)
	}
	r.record(c)
}

func (r *Recorder) FillCircle(x, y, radius float64, color string) {
	r.record(Call{Name: CallFillCircle, Args: []float64{x, y, radius}, Color: color})
}

func (r *Recorder) FillText(str string, x, y float64, style linechart.TextStyle) {
	r.record(Call{
		Name:  CallFillText,
		Args:  []float64{x, y},
		Text:  str,
		Color: style.Color,
		Style: style,
	})
}

func (r *Recorder) MeasureText(str string, font linechart.Font) float64 {
	return float64(len([]rune(str))) * font.Size / 2
}

func (r *Recorder) Save() {
	r.record(Call{Name: CallSave})
}

func (r *Recorder) Translate(x, y float64) {
	r.record(Call{Name: CallTranslate, Args: []float64{x, y}})
}

func (r *Recorder) Rotate(angle float64) {
	r.record(Call{Name: CallRotate, Args: []float64{angle}})
}

func (r *Recorder) Restore() {
	r.record(Call{Name: CallRestore})
}

// Names returns the name of every recorded call, in order.
func (r *Recorder) Names() []string {
	var list []string
	for _, c := range r.Calls {
		list = append(list, c.Name)
	}
	return list
}

// Filter returns the recorded calls with the given name.
func (r *Recorder) Filter(name string) []Call {
	var list []Call
	for _, c := range r.Calls {
		if c.Name == name {
			list = append(list, c)
		}
	}
	return list
}

func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

func (r *Recorder) record(c Call) {
	r.Calls = append(r.Calls, c)
}
