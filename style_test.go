package linechart

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFontSettings(t *testing.T) {
	f := DefaultFontSettings()
	assert.Equal(t, "Arial", f.Family())
	assert.Equal(t, 12.0, f.LabelSize())
	assert.Equal(t, 16.0, f.TitleSize())
	assert.Equal(t, "12px Arial", f.Label())
	assert.Equal(t, "16px Arial", f.Title())
	assert.Equal(t, Font{Family: "Arial", Size: 16}, f.TitleFont())
}

func TestNewFontSettings(t *testing.T) {
	f, err := NewFontSettings("Verdana", 10.5, 0)
	require.NoError(t, err)
	assert.Equal(t, "10.5px Verdana", f.Label())
	assert.Equal(t, "0px Verdana", f.Title())

	_, err = NewFontSettings("", -1, math.NaN())
	var ae ArgumentError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, []string{FontFamily, LabelFontSize, TitleFontSize}, ae.Fields)

	_, err = NewFontSettings("Arial", 12, math.Inf(1))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestMakeFonts(t *testing.T) {
	f, err := makeFonts(Fields{
		FontFamily:    "Courier",
		LabelFontSize: 9,
		TitleFontSize: 14.5,
	})
	require.NoError(t, err)
	assert.Equal(t, "9px Courier", f.Label())
	assert.Equal(t, "14.5px Courier", f.Title())

	f, err = makeFonts(map[string]any{
		FontFamily:    "Arial",
		LabelFontSize: uint8(8),
		TitleFontSize: int64(20),
	})
	require.NoError(t, err)
	assert.Equal(t, 20.0, f.TitleSize())
}

func TestMakeFontsInvalid(t *testing.T) {
	data := []struct {
		Name   string
		Req    any
		Fields []string
	}{
		{
			Name:   "partial",
			Req:    Fields{FontFamily: "Arial"},
			Fields: []string{LabelFontSize, TitleFontSize},
		},
		{
			Name:   "string size",
			Req:    Fields{FontFamily: "Arial", LabelFontSize: "12", TitleFontSize: 16},
			Fields: []string{LabelFontSize},
		},
		{
			Name:   "negative sizes",
			Req:    Fields{FontFamily: "Arial", LabelFontSize: -12, TitleFontSize: -16},
			Fields: []string{LabelFontSize, TitleFontSize},
		},
		{
			Name:   "family not a string",
			Req:    Fields{FontFamily: 12, LabelFontSize: 12, TitleFontSize: 16},
			Fields: []string{FontFamily},
		},
		{
			Name:   "empty family",
			Req:    Fields{FontFamily: "", LabelFontSize: 12, TitleFontSize: 16},
			Fields: []string{FontFamily},
		},
		{
			Name:   "unknown field",
			Req:    Fields{FontFamily: "Arial", LabelFontSize: 12, TitleFontSize: 16, "fontWeight": "bold"},
			Fields: []string{"fontWeight"},
		},
		{
			Name: "not an object",
			Req:  []any{"Arial", 12, 16},
		},
	}
	for _, d := range data {
		t.Run(d.Name, func(t *testing.T) {
			_, err := makeFonts(d.Req)
			require.ErrorIs(t, err, ErrInvalidArgument)

			var ae ArgumentError
			require.True(t, errors.As(err, &ae))
			assert.Equal(t, d.Fields, ae.Fields)
		})
	}
}
