package render

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPaletteDistinctRanks(t *testing.T) {
	colors := Palette([]float64{5.9, 1.2, 9.0, 5.1})

	// 5.9 and 5.1 truncate to the same rank and must share a color.
	require.Len(t, colors, 3)
	require.NotEqual(t, colors[1], colors[9])

	for _, hex := range colors {
		require.Regexp(t, `^#[0-9a-f]{6}$`, hex)
	}
}

func TestPaletteSingleValue(t *testing.T) {
	colors := Palette([]float64{3.0})
	require.Len(t, colors, 1)
	require.Regexp(t, `^#[0-9a-f]{6}$`, colors[3])
}

func TestPaletteEmpty(t *testing.T) {
	require.Empty(t, Palette(nil))
}

func TestPaletteCheaperIsLighter(t *testing.T) {
	colors := Palette([]float64{1, 100})
	cheap := cubehelixColor(0, lightnessHigh)
	costly := cubehelixColor(1, lightnessLow)
	require.Equal(t, cheap.Hex(), colors[1])
	require.Equal(t, costly.Hex(), colors[100])

	_, _, lCheap := cheap.Hsl()
	_, _, lCostly := costly.Hsl()
	require.Greater(t, lCheap, lCostly)
}
