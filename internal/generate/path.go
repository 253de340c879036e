package generate

import (
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/marcus/contrastcolors/internal/colorspace"
	"github.com/marcus/contrastcolors/internal/contrast"
)

const (
	// Tolerance is how close a resolved color's ratio must come to the target.
	Tolerance = 0.01
	// MaxIterations caps the bisection on a single segment.
	MaxIterations = 64

	// The emitted color is the 8-bit color on the segment, within snapWindow
	// of the bisection result, whose ratio is closest to the target.
	snapWindow = 0.02
	snapSteps  = 200
)

// path is a piecewise interpolation curve through colors in one space.
type path struct {
	space  colorspace.Space
	points []colorspace.Triplet
}

// lightnessOrder returns keys sorted lightest first, anchored by white and black.
func lightnessOrder(keys []colorful.Color) []colorful.Color {
	sorted := make([]colorful.Color, len(keys))
	copy(sorted, keys)
	sort.SliceStable(sorted, func(i, j int) bool {
		return contrast.Luminance(sorted[i]) > contrast.Luminance(sorted[j])
	})

	out := make([]colorful.Color, 0, len(sorted)+2)
	out = append(out, contrast.White)
	out = append(out, sorted...)
	return append(out, contrast.Black)
}

func newPath(space colorspace.Space, colors []colorful.Color) *path {
	p := &path{space: space, points: make([]colorspace.Triplet, len(colors))}
	for i, c := range colors {
		p.points[i] = colorspace.To(space, c)
	}
	return p
}

// at returns the sRGB color at parameter t of segment i, clamped to the gamut.
func (p *path) at(i int, t float64) colorful.Color {
	c := colorspace.From(p.space, colorspace.Interpolate(p.space, p.points[i], p.points[i+1], t))
	return finite(c).Clamped()
}

// sample returns the color at position pos in [0,1] along the whole path, with
// every segment given equal length.
func (p *path) sample(pos float64) colorful.Color {
	if len(p.points) == 1 {
		return finite(colorspace.From(p.space, p.points[0])).Clamped()
	}
	segments := float64(len(p.points) - 1)
	scaled := math.Max(0, math.Min(1, pos)) * segments
	i := int(scaled)
	if i >= len(p.points)-1 {
		i = len(p.points) - 2
	}
	return p.at(i, scaled-float64(i))
}

// resolve finds the 8-bit color on the path whose signed ratio against base is
// closest to r, falling back to black or white when no segment reaches it.
func (p *path) resolve(r float64, base colorful.Color) colorful.Color {
	target := coordinate(r)
	coord := func(c colorful.Color) float64 {
		return coordinate(contrast.Signed(c, base))
	}

	for i := 0; i < len(p.points)-1; i++ {
		lo, hi := coord(p.at(i, 0)), coord(p.at(i, 1))
		// Endpoints carry conversion error, so the bracket is widened by Tolerance.
		if target < math.Min(lo, hi)-Tolerance || target > math.Max(lo, hi)+Tolerance {
			continue
		}
		var t float64
		switch {
		case math.Abs(lo-target) < Tolerance:
			t = 0
		case math.Abs(hi-target) < Tolerance:
			t = 1
		default:
			t = p.bisect(i, target, lo-target, coord)
		}
		return p.snap(i, t, target, coord)
	}
	return contrast.Extreme(r, base)
}

// bisect returns the parameter on segment i where coord reaches target.
func (p *path) bisect(i int, target, fLo float64, coord func(colorful.Color) float64) float64 {
	tLo, tHi := 0.0, 1.0
	mid := 0.0
	for n := 0; n < MaxIterations; n++ {
		mid = (tLo + tHi) / 2
		f := coord(p.at(i, mid)) - target
		if math.Abs(f) < Tolerance {
			break
		}
		if (f < 0) == (fLo < 0) {
			tLo, fLo = mid, f
		} else {
			tHi = mid
		}
	}
	return mid
}

// snap scans segment i outward from t and returns the quantized color whose
// coordinate is nearest target. Ties keep the color nearest t.
func (p *path) snap(i int, t, target float64, coord func(colorful.Color) float64) colorful.Color {
	best := quantize(p.at(i, t))
	bestDiff := math.Abs(coord(best) - target)
	for k := 1; k <= snapSteps; k++ {
		step := snapWindow * float64(k) / snapSteps
		for _, tt := range [2]float64{t - step, t + step} {
			if tt < 0 || tt > 1 {
				continue
			}
			c := quantize(p.at(i, tt))
			if d := math.Abs(coord(c) - target); d < bestDiff {
				best, bestDiff = c, d
			}
		}
	}
	return best
}

func quantize(c colorful.Color) colorful.Color {
	r, g, b := c.Clamped().RGB255()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// coordinate maps a signed ratio onto a scale that is continuous across the
// base: ratios of +1 and -1 both sit at zero. Magnitudes below 1 count as 1.
func coordinate(r float64) float64 {
	m := math.Max(math.Abs(r)-1, 0)
	if r < 0 {
		return -m
	}
	return m
}

func finite(c colorful.Color) colorful.Color {
	for _, v := range []*float64{&c.R, &c.G, &c.B} {
		if math.IsNaN(*v) {
			*v = 0
		}
	}
	return c
}
