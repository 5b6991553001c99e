package linechart

import (
	"fmt"
	"sync"
)

// Graph renders a dataset as a line graph on a surface. Settings are
// immutable values: setters validate a request, build new settings and swap
// them, so a render in progress always works on a consistent snapshot.
type Graph struct {
	mu       sync.Mutex
	settings Settings
	size     Size
	viewport Point

	draw    sync.Mutex
	surface Renderer
}

type Option func(*Graph) error

// WithViewport sets the area percentages given to SetSize are relative to.
// It defaults to the size of the surface when the graph is created.
func WithViewport(width, height float64) Option {
	return func(g *Graph) error {
		if _, err := NewSurfaceMetrics(width, height); err != nil {
			return err
		}
		g.viewport = NewPoint(width, height)
		return nil
	}
}

func WithMaxXLabels(n int) Option {
	return func(g *Graph) error {
		return g.setMaxXLabels(n)
	}
}

func New(surface Renderer, options ...Option) (*Graph, error) {
	if surface == nil {
		return nil, argumentError("surface must not be nil")
	}
	g := Graph{
		settings: DefaultSettings(),
		size:     DefaultSize(),
		surface:  surface,
	}
	g.viewport = NewPoint(surface.Size())
	for _, o := range options {
		if err := o(&g); err != nil {
			return nil, err
		}
	}
	return &g, nil
}

// Render clears the surface of the graph and draws dataset on it. Nothing is
// drawn when the dataset, the surface or the settings are invalid.
func (g *Graph) Render(dataset []float64) error {
	if err := checkDataset(dataset, 2); err != nil {
		return err
	}
	g.mu.Lock()
	var (
		settings = g.settings
		size     = g.size
		viewport = g.viewport
	)
	g.mu.Unlock()

	g.draw.Lock()
	defer g.draw.Unlock()

	if err := g.resize(size, viewport); err != nil {
		return err
	}
	ctx, err := NewContext(g.surface, dataset, settings)
	if err != nil {
		return err
	}
	g.surface.Clear()
	Draw(ctx)
	return nil
}

func (g *Graph) resize(size Size, viewport Point) error {
	rs, ok := g.surface.(Resizer)
	if !ok {
		return nil
	}
	width, height := size.Resolve(viewport.X, viewport.Y)
	if _, err := NewSurfaceMetrics(width, height); err != nil {
		return err
	}
	if w, h := g.surface.Size(); w == width && h == height {
		return nil
	}
	return rs.Resize(width, height)
}

func (g *Graph) Clear() {
	g.draw.Lock()
	defer g.draw.Unlock()
	g.surface.Clear()
}

// SetAxisTitles updates one or both axis titles, eg Fields{"xAxis": "Time"}
// or &TitlesRequest{XAxis: Ptr("Time")}. Titles not present keep their value.
func (g *Graph) SetAxisTitles(req any) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	titles, err := mergeTitles(g.settings.Titles, req)
	if err != nil {
		return err
	}
	g.settings.Titles = titles
	return nil
}

// SetColors applies a list of single color updates, eg
// []Fields{{"graphLineColor": "purple"}, {"backgroundColor": "gray"}} or
// []ColorRequest{{Field: GraphLineColor, Color: "purple"}}.
func (g *Graph) SetColors(req any) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	colors, err := mergeColors(g.settings.Colors, req)
	if err != nil {
		return err
	}
	g.settings.Colors = colors
	return nil
}

// SetFontSettings replaces the fonts. The request, Fields or *FontRequest,
// must carry fontFamily, labelFontSize and titleFontSize.
func (g *Graph) SetFontSettings(req any) error {
	fonts, err := makeFonts(req)
	if err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.settings.Fonts = fonts
	return nil
}

// SetSize sets the size of the graph as CSS lengths, eg "100%" or "250px".
// It takes effect on the next render, on surfaces that can be resized.
func (g *Graph) SetSize(width, height string) error {
	size, err := ParseSize(width, height)
	if err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.size = size
	return nil
}

func (g *Graph) SetMaxXLabels(n int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.setMaxXLabels(n)
}

func (g *Graph) setMaxXLabels(n int) error {
	if n < 0 || n > MaxXLabelsLimit {
		return argumentError(fmt.Sprintf("max number of x labels must be between 0 and %d, got %d", MaxXLabelsLimit, n))
	}
	g.settings.MaxXLabels = n
	return nil
}

// SetDotSize is reserved: the size of the data points can not be changed.
func (g *Graph) SetDotSize(size float64) error {
	return fmt.Errorf("%w: dot size configuration", ErrNotImplemented)
}

func (g *Graph) AxisTitles() AxisTitles {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.settings.Titles
}

func (g *Graph) Colors() ColorSettings {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.settings.Colors
}

func (g *Graph) Fonts() FontSettings {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.settings.Fonts
}

func (g *Graph) Size() Size {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.size
}

func (g *Graph) Settings() Settings {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.settings
}

func (g *Graph) MaxXLabels() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.settings.MaxXLabels
}

func (g *Graph) YLabels() int {
	return YLabels
}
