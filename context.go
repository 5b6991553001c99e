package linechart

import (
	"fmt"
)

// Settings is a snapshot of the configuration of a Graph.
type Settings struct {
	Titles     AxisTitles
	Colors     ColorSettings
	Fonts      FontSettings
	MaxXLabels int
}

func DefaultSettings() Settings {
	return Settings{
		Titles:     DefaultAxisTitles(),
		Colors:     DefaultColorSettings(),
		Fonts:      DefaultFontSettings(),
		MaxXLabels: DefaultMaxXLabels,
	}
}

// Context groups everything a render pass needs. It is built once at the
// start of the pass and never modified afterwards.
type Context struct {
	Settings
	Metrics SurfaceMetrics
	Stats   Statistics
	Dataset []float64
	YLabels int

	renderer Renderer
}

func NewContext(r Renderer, dataset []float64, settings Settings) (*Context, error) {
	if r == nil {
		return nil, argumentError("renderer must not be nil")
	}
	if err := checkDataset(dataset, 2); err != nil {
		return nil, err
	}
	if settings.MaxXLabels < 0 || settings.MaxXLabels > MaxXLabelsLimit {
		reason := fmt.Sprintf("max number of x labels must be between 0 and %d, got %d", MaxXLabelsLimit, settings.MaxXLabels)
		return nil, argumentError(reason)
	}
	stats, err := NewStatistics(dataset)
	if err != nil {
		return nil, err
	}
	metrics, err := NewSurfaceMetrics(r.Size())
	if err != nil {
		return nil, err
	}
	ctx := Context{
		Settings: settings,
		Metrics:  metrics,
		Stats:    stats,
		Dataset:  make([]float64, len(dataset)),
		YLabels:  YLabels,
		renderer: r,
	}
	copy(ctx.Dataset, dataset)
	return &ctx, nil
}

func (c *Context) Mapper() Mapper {
	return NewMapper(c.Dataset, c.Stats, c.Metrics, c.YLabels)
}

func (c *Context) Labels() LabelPlan {
	return PlanLabels(len(c.Dataset), c.Stats.AdjustedLength, c.MaxXLabels)
}
