package contrast

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// darkThreshold is the base luminance below which ratios count lighter colors as positive.
const darkThreshold = 0.5

// Luminance returns relative luminance (0-1) using the WCAG sRGB formula.
func Luminance(c colorful.Color) float64 {
	c = c.Clamped()
	r := linearize(c.R)
	g := linearize(c.G)
	b := linearize(c.B)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func linearize(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// Ratio returns the WCAG 2.0 contrast ratio between two colors (1 to 21).
func Ratio(fg, bg colorful.Color) float64 {
	return ratio(Luminance(fg), Luminance(bg))
}

func ratio(l1, l2 float64) float64 {
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// IsDark reports whether base is dark enough that lighter foregrounds carry positive ratios.
func IsDark(base colorful.Color) bool {
	return Luminance(base) < darkThreshold
}

// Signed returns the contrast ratio of fg against base, negated when fg moves toward
// the extreme the base is already close to. On a dark base lighter colors are
// positive; on a light base darker colors are. A color with the base's luminance
// is +1 on a dark base and -1 on a light one.
func Signed(fg, base colorful.Color) float64 {
	lf := Luminance(fg)
	lb := Luminance(base)
	r := ratio(lf, lb)
	if lb < darkThreshold {
		if lf >= lb {
			return r
		}
		return -r
	}
	if lf < lb {
		return r
	}
	return -r
}

// Extreme returns the gamut extreme reached by moving from base in the direction
// of r's sign: black or white.
func Extreme(r float64, base colorful.Color) colorful.Color {
	dark := IsDark(base)
	if (r > 0) == dark {
		return White
	}
	return Black
}
