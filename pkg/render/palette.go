package render

import (
	"math"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Cubehelix parameters tuned for readable box fills: a short rotation from a
// cool starting hue, with lightness kept high enough for black label text.
const (
	cubehelixStart = 0.5
	cubehelixRot   = -0.75
	cubehelixHue   = 0.8
	lightnessHigh  = 0.85
	lightnessLow   = 0.65
)

// Palette maps each distinct cumulative time to a hex fill color. Times are
// truncated to whole milliseconds and ranked ascending; cheaper functions get
// lighter fills, so equal times always share a color.
func Palette(times []float64) map[int]string {
	ranks := make([]int, 0, len(times))
	seen := make(map[int]bool, len(times))
	for _, t := range times {
		v := int(t)
		if !seen[v] {
			seen[v] = true
			ranks = append(ranks, v)
		}
	}
	sort.Ints(ranks)

	colors := make(map[int]string, len(ranks))
	for i, v := range ranks {
		frac := 0.0
		if len(ranks) > 1 {
			frac = float64(i) / float64(len(ranks)-1)
		}
		light := lightnessHigh - frac*(lightnessHigh-lightnessLow)
		colors[v] = cubehelixColor(frac, light).Hex()
	}
	return colors
}

// cubehelixColor evaluates the cubehelix color scheme at fraction t in [0,1]
// with the given lightness.
func cubehelixColor(t, light float64) colorful.Color {
	angle := 2 * math.Pi * (cubehelixStart/3 + cubehelixRot*t)
	amp := cubehelixHue * light * (1 - light) / 2
	r := light + amp*(-0.14861*math.Cos(angle)+1.78277*math.Sin(angle))
	g := light + amp*(-0.29227*math.Cos(angle)-0.90649*math.Sin(angle))
	b := light + amp*(1.97294*math.Cos(angle))
	return colorful.Color{R: r, G: g, B: b}.Clamped()
}
