package linechart

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTitlesRequest(t *testing.T) {
	curr := NewAxisTitles("x", "y")

	next, err := mergeTitles(curr, &TitlesRequest{XAxis: Ptr("Time")})
	require.NoError(t, err)
	assert.Equal(t, NewAxisTitles("Time", "y"), next)

	next, err = mergeTitles(next, &TitlesRequest{XAxis: Ptr(""), YAxis: Ptr("Load")})
	require.NoError(t, err)
	assert.Equal(t, NewAxisTitles("", "Load"), next)

	_, err = mergeTitles(curr, &TitlesRequest{})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	var nilReq *TitlesRequest
	_, err = mergeTitles(curr, nilReq)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestFontRequest(t *testing.T) {
	f, err := makeFonts(&FontRequest{
		Family:    Ptr("Courier"),
		LabelSize: Ptr(9.0),
		TitleSize: Ptr(14.5),
	})
	require.NoError(t, err)
	assert.Equal(t, "9px Courier", f.Label())
	assert.Equal(t, "14.5px Courier", f.Title())

	_, err = makeFonts(&FontRequest{Family: Ptr("Arial")})
	require.ErrorIs(t, err, ErrInvalidArgument)

	var ae ArgumentError
	require.True(t, errors.As(err, &ae))
	assert.ElementsMatch(t, []string{LabelFontSize, TitleFontSize}, ae.Fields)

	_, err = makeFonts(&FontRequest{
		Family:    Ptr("Arial"),
		LabelSize: Ptr(-1.0),
		TitleSize: Ptr(16.0),
	})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestColorRequest(t *testing.T) {
	curr := DefaultColorSettings()

	next, err := mergeColors(curr, []ColorRequest{
		{Field: GraphLineColor, Color: "purple"},
		{Field: BackgroundColor, Color: "GRAY"},
	})
	require.NoError(t, err)
	assert.Equal(t, "purple", next.GraphLineColor())
	assert.Equal(t, "gray", next.BackgroundColor())

	data := []struct {
		Name string
		Req  []ColorRequest
	}{
		{Name: "nil", Req: nil},
		{Name: "empty", Req: []ColorRequest{}},
		{Name: "unknown field", Req: []ColorRequest{{Field: "lineColor", Color: "red"}}},
		{Name: "no field", Req: []ColorRequest{{Color: "red"}}},
		{Name: "out of palette", Req: []ColorRequest{{Field: AxisColor, Color: "chartreuse"}}},
	}
	for _, d := range data {
		t.Run(d.Name, func(t *testing.T) {
			next, err := mergeColors(curr, d.Req)
			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.Equal(t, curr, next)
		})
	}
}
