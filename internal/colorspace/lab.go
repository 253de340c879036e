package colorspace

import "github.com/lucasb-eyer/go-colorful"

// LAB and LCH use CIE L*a*b* relative to a D50 white. sRGB's D65 XYZ is
// adapted with the Bradford transform, and grays map to a = b = 0 exactly.

var (
	bradfordD65ToD50 = mat3{
		{1.0478112, 0.0228866, -0.0501270},
		{0.0295424, 0.9904844, -0.0170491},
		{-0.0092345, 0.0150436, 0.7521316},
	}
	bradfordD50ToD65 = bradfordD65ToD50.inverse()
)

func labD50(c colorful.Color) Triplet {
	x, y, z := c.Xyz()
	v := bradfordD65ToD50.mul([3]float64{x, y, z})
	l, a, b := colorful.XyzToLabWhiteRef(v[0], v[1], v[2], colorful.D50)
	if c.R == c.G && c.G == c.B {
		a, b = 0, 0
	}
	return Triplet{l, a, b}
}

func fromLabD50(t Triplet) colorful.Color {
	x, y, z := colorful.LabToXyzWhiteRef(t[0], t[1], t[2], colorful.D50)
	v := bradfordD50ToD65.mul([3]float64{x, y, z})
	return colorful.Xyz(v[0], v[1], v[2])
}

func lchD50(c colorful.Color) Triplet {
	lab := labD50(c)
	h, ch, l := colorful.LabToHcl(lab[0], lab[1], lab[2])
	return Triplet{h, ch, l}
}

func fromLchD50(t Triplet) colorful.Color {
	l, a, b := colorful.HclToLab(t[0], t[1], t[2])
	return fromLabD50(Triplet{l, a, b})
}
