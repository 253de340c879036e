package colorspace

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// achromaticEpsilon is the chroma (or saturation) below which a polar color's hue is
// treated as undefined.
const achromaticEpsilon = 1e-3

// Triplet is a color's coordinates in one space. Polar spaces store the hue in
// degrees at index 0 and chroma or saturation at index 1.
type Triplet [3]float64

type converter struct {
	to    func(colorful.Color) Triplet
	from  func(Triplet) colorful.Color
	polar bool
}

var converters = map[Space]converter{
	CAM02: {
		to:   camToUCS,
		from: camFromUCS,
	},
	LAB: {
		to:   labD50,
		from: fromLabD50,
	},
	LCH: {
		to:    lchD50,
		from:  fromLchD50,
		polar: true,
	},
	HSL: {
		to: func(c colorful.Color) Triplet {
			h, s, l := c.Hsl()
			return Triplet{h, s, l}
		},
		from:  func(t Triplet) colorful.Color { return colorful.Hsl(t[0], t[1], t[2]) },
		polar: true,
	},
	HSLuv: {
		to: func(c colorful.Color) Triplet {
			h, s, l := c.HSLuv()
			return Triplet{h, s, l}
		},
		from:  func(t Triplet) colorful.Color { return colorful.HSLuv(t[0], t[1], t[2]) },
		polar: true,
	},
	HSV: {
		to: func(c colorful.Color) Triplet {
			h, s, v := c.Hsv()
			return Triplet{h, s, v}
		},
		from:  func(t Triplet) colorful.Color { return colorful.Hsv(t[0], t[1], t[2]) },
		polar: true,
	},
	RGB: {
		to:   func(c colorful.Color) Triplet { return Triplet{c.R, c.G, c.B} },
		from: func(t Triplet) colorful.Color { return colorful.Color{R: t[0], G: t[1], B: t[2]} },
	},
}

func lookup(s Space) converter {
	conv, ok := converters[s]
	if !ok {
		panic("colorspace: unknown " + s.String())
	}
	return conv
}

// To converts an sRGB color to s. It panics if s is not a declared space.
func To(s Space, c colorful.Color) Triplet {
	return lookup(s).to(c)
}

// From converts coordinates in s back to sRGB. The result may lie outside the
// sRGB gamut; callers clamp before formatting.
func From(s Space, t Triplet) colorful.Color {
	return lookup(s).from(t)
}

// Interpolate linearly interpolates between a and b at t in [0,1], coordinate by
// coordinate. Hues take the shorter arc, and an achromatic endpoint borrows the
// hue of the other one.
func Interpolate(s Space, a, b Triplet, t float64) Triplet {
	var out Triplet
	for i := range out {
		out[i] = a[i] + (b[i]-a[i])*t
	}
	if !lookup(s).polar {
		return out
	}

	ha, hb := a[0], b[0]
	switch {
	case a[1] < achromaticEpsilon && b[1] >= achromaticEpsilon:
		ha = hb
	case b[1] < achromaticEpsilon && a[1] >= achromaticEpsilon:
		hb = ha
	}
	out[0] = interpolateHue(ha, hb, t)
	return out
}

func interpolateHue(a, b, t float64) float64 {
	delta := math.Mod(b-a+540, 360) - 180
	h := math.Mod(a+delta*t, 360)
	if h < 0 {
		h += 360
	}
	return h
}
