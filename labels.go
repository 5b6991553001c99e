package linechart

import (
	"math"
	"strconv"

	"github.com/midbel/slices"
)

const (
	// YLabels is the number of steps on the y axis. It is not configurable:
	// the vertical scale of the mapper depends on it.
	YLabels = 10

	DefaultMaxXLabels = 20
	MaxXLabelsLimit   = 50
)

// LabelCount reduces the adjusted length of a dataset by repeated halving
// until it fits in budget. Halving uses integer division.
func LabelCount(adjusted, budget int) int {
	n := adjusted
	for n > budget && n > 0 {
		n /= 2
	}
	return n
}

// LabelPlan lists the dataset indices that get a label on the x axis.
type LabelPlan struct {
	Count   int
	Step    int
	Indices []int
}

// PlanLabels walks the dataset from index 0 in steps of
// max(ceil(length/count), 1), drawing at most count+1 labels. When the next
// step would go past the end of the dataset, the last index is labelled
// instead so that the rightmost point always carries a label.
func PlanLabels(length, adjusted, budget int) LabelPlan {
	var plan LabelPlan
	if length <= 0 {
		return plan
	}
	plan.Count = LabelCount(adjusted, budget)
	plan.Step = length
	if plan.Count > 0 {
		plan.Step = int(math.Ceil(float64(length) / float64(plan.Count)))
	}
	if plan.Step < 1 {
		plan.Step = 1
	}
	last := length - 1
	for n := 0; ; n++ {
		ix := n * plan.Step
		plan.Indices = append(plan.Indices, ix)
		if ix+plan.Step > last {
			if slices.Lst(plan.Indices) != last {
				plan.Indices = append(plan.Indices, last)
			}
			break
		}
		if n+1 > plan.Count {
			break
		}
	}
	return plan
}

// Label is a tick label on the x axis, positioned on the point it refers to.
type Label struct {
	Index int
	Text  string
	Point Point
}

func (p LabelPlan) Labels(m Mapper) []Label {
	list := make([]Label, 0, len(p.Indices))
	for _, ix := range p.Indices {
		if ix < 0 || ix >= m.Len() {
			continue
		}
		lb := Label{
			Index: ix,
			Text:  strconv.Itoa(ix),
			Point: m.At(ix),
		}
		list = append(list, lb)
	}
	return list
}

// Tick is a tick label on the y axis.
type Tick struct {
	Value float64
	Y     float64
}

func (t Tick) Text() string {
	return formatValue(t.Value)
}

// Ticks returns the ticks+1 labels of the y axis, from the bottom of the
// render area to its top.
func (m Mapper) Ticks() []Tick {
	var (
		list   = make([]Tick, 0, m.ticks+1)
		height = m.metrics.RenderHeight
		bottom = m.metrics.Bottom()
	)
	for n := 0; n <= m.ticks; n++ {
		tk := Tick{
			Value: m.domain.Min() + float64(n)*m.yRangeScale,
			Y:     bottom - float64(n)/float64(m.ticks)*height,
		}
		list = append(list, tk)
	}
	return list
}

func formatValue(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
