package canvas

import (
	"fmt"
	"strings"
	"sync"

	"github.com/midbel/linechart"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const dpi = 72

type faceKey struct {
	mono bool
	size float64
}

// Faces hands out font faces for linechart fonts. Only the Go fonts are
// embedded: monospace families use Go Mono, everything else Go Regular.
// Faces are not safe for concurrent drawing: every canvas owns its Faces.
type Faces struct {
	mu      sync.Mutex
	regular *opentype.Font
	mono    *opentype.Font
	cache   map[faceKey]font.Face
}

func NewFaces() *Faces {
	return &Faces{
		cache: make(map[faceKey]font.Face),
	}
}

func (f *Faces) Face(ft linechart.Font) (font.Face, error) {
	if ft.Size <= 0 {
		return nil, fmt.Errorf("font size must be positive, got %g", ft.Size)
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	key := faceKey{
		mono: isMonospace(ft.Family),
		size: ft.Size,
	}
	if face, ok := f.cache[key]; ok {
		return face, nil
	}
	src, err := f.load(key.mono)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    ft.Size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	f.cache[key] = face
	return face, nil
}

func (f *Faces) load(mono bool) (*opentype.Font, error) {
	var err error
	if mono {
		if f.mono == nil {
			f.mono, err = opentype.Parse(gomono.TTF)
		}
		return f.mono, err
	}
	if f.regular == nil {
		f.regular, err = opentype.Parse(goregular.TTF)
	}
	return f.regular, err
}

// Measure returns the advance width of str, in pixels.
func (f *Faces) Measure(str string, ft linechart.Font) float64 {
	face, err := f.Face(ft)
	if err != nil {
		return 0
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	adv := font.MeasureString(face, str)
	return float64(adv) / 64
}

func isMonospace(family string) bool {
	family = strings.ToLower(family)
	return strings.Contains(family, "mono") || strings.Contains(family, "courier")
}
