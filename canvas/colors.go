package canvas

import (
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// RGBA returns the color for a CSS color name. Unknown names give black.
func RGBA(name string) color.RGBA {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return colornames.Black
	}
	return c
}
