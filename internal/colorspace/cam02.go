package colorspace

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// CIECAM02-UCS under average surround with a D65 white, adapting luminance
// 64/pi/5 cd/m2 and a 20% background. Coordinates are (J', a', b').

type mat3 [3][3]float64

func (m mat3) mul(v [3]float64) [3]float64 {
	var out [3]float64
	for i := range m {
		out[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}
	return out
}

func (m mat3) times(o mat3) mat3 {
	var out mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j] + m[i][2]*o[2][j]
		}
	}
	return out
}

func (m mat3) inverse() mat3 {
	a, b, c := m[0][0], m[0][1], m[0][2]
	d, e, f := m[1][0], m[1][1], m[1][2]
	g, h, i := m[2][0], m[2][1], m[2][2]
	det := a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
	return mat3{
		{(e*i - f*h) / det, (c*h - b*i) / det, (b*f - c*e) / det},
		{(f*g - d*i) / det, (a*i - c*g) / det, (c*d - a*f) / det},
		{(d*h - e*g) / det, (b*g - a*h) / det, (a*e - b*d) / det},
	}
}

var (
	mCAT02 = mat3{
		{0.7328, 0.4296, -0.1624},
		{-0.7036, 1.6975, 0.0061},
		{0.0030, 0.0136, 0.9834},
	}
	mHPE = mat3{
		{0.38971, 0.68898, -0.07868},
		{-0.22981, 1.18340, 0.04641},
		{0.0, 0.0, 1.0},
	}
)

const (
	ucsC1 = 0.007
	ucsC2 = 0.0228
)

type viewingConditions struct {
	catInv  mat3
	toHPE   mat3
	fromHPE mat3
	dRGB    [3]float64 // per-channel degree of adaptation factor
	fl      float64
	n       float64
	nbb     float64
	z       float64
	c       float64
	nc      float64
	aw      float64
}

var cam02VC = newViewingConditions([3]float64{95.047, 100.0, 108.883}, 64/math.Pi/5, 20.0)

func newViewingConditions(white [3]float64, la, yb float64) viewingConditions {
	const (
		f  = 1.0
		c  = 0.69
		nc = 1.0
	)
	vc := viewingConditions{c: c, nc: nc}
	vc.catInv = mCAT02.inverse()
	vc.toHPE = mHPE.times(vc.catInv)
	vc.fromHPE = mCAT02.times(mHPE.inverse())

	d := f * (1 - (1/3.6)*math.Exp((-la-42)/92))
	d = math.Max(0, math.Min(1, d))
	rgbW := mCAT02.mul(white)
	for i := range rgbW {
		vc.dRGB[i] = white[1]*d/rgbW[i] + 1 - d
	}

	k := 1 / (5*la + 1)
	k4 := k * k * k * k
	vc.fl = 0.2*k4*(5*la) + 0.1*(1-k4)*(1-k4)*math.Cbrt(5*la)
	vc.n = yb / white[1]
	vc.nbb = 0.725 * math.Pow(vc.n, -0.2)
	vc.z = 1.48 + math.Sqrt(vc.n)

	aw := vc.adapted(white)
	vc.aw = (2*aw[0] + aw[1] + aw[2]/20 - 0.305) * vc.nbb
	return vc
}

// adapted returns the post-adaptation cone responses for XYZ on a 0-100 scale.
func (vc viewingConditions) adapted(xyz [3]float64) [3]float64 {
	rgb := mCAT02.mul(xyz)
	for i := range rgb {
		rgb[i] *= vc.dRGB[i]
	}
	hpe := vc.toHPE.mul(rgb)
	for i, v := range hpe {
		x := math.Pow(vc.fl*math.Abs(v)/100, 0.42)
		hpe[i] = math.Copysign(400*x/(27.13+x), v) + 0.1
	}
	return hpe
}

func (vc viewingConditions) unadapted(ra [3]float64) [3]float64 {
	var hpe [3]float64
	for i, v := range ra {
		v -= 0.1
		x := math.Abs(v)
		hpe[i] = math.Copysign(100/vc.fl*math.Pow(27.13*x/(400-x), 1/0.42), v)
	}
	rgb := vc.fromHPE.mul(hpe)
	for i := range rgb {
		rgb[i] /= vc.dRGB[i]
	}
	return vc.catInv.mul(rgb)
}

func camToUCS(col colorful.Color) Triplet {
	vc := cam02VC
	x, y, z := col.Xyz()
	ra := vc.adapted([3]float64{x * 100, y * 100, z * 100})

	a := ra[0] - 12*ra[1]/11 + ra[2]/11
	b := (ra[0] + ra[1] - 2*ra[2]) / 9
	h := math.Atan2(b, a)

	et := 0.25 * (math.Cos(h+2) + 3.8)
	achromatic := math.Max(0, (2*ra[0]+ra[1]+ra[2]/20-0.305)*vc.nbb)
	j := 100 * math.Pow(achromatic/vc.aw, vc.c*vc.z)

	t := (50000.0 / 13 * vc.nc * vc.nbb * et * math.Hypot(a, b)) / (ra[0] + ra[1] + 21.0/20*ra[2])
	chroma := math.Pow(t, 0.9) * math.Sqrt(j/100) * math.Pow(1.64-math.Pow(0.29, vc.n), 0.73)
	m := chroma * math.Pow(vc.fl, 0.25)

	jp := (1 + 100*ucsC1) * j / (1 + ucsC1*j)
	mp := math.Log(1+ucsC2*m) / ucsC2
	return Triplet{jp, mp * math.Cos(h), mp * math.Sin(h)}
}

func camFromUCS(tr Triplet) colorful.Color {
	vc := cam02VC
	jp, ap, bp := tr[0], tr[1], tr[2]
	j := jp / (1 + 100*ucsC1 - ucsC1*jp)
	if j <= 0 {
		return colorful.Color{}
	}

	mp := math.Hypot(ap, bp)
	h := math.Atan2(bp, ap)
	m := (math.Exp(ucsC2*mp) - 1) / ucsC2
	chroma := m / math.Pow(vc.fl, 0.25)

	t := math.Pow(chroma/(math.Sqrt(j/100)*math.Pow(1.64-math.Pow(0.29, vc.n), 0.73)), 1/0.9)
	et := 0.25 * (math.Cos(h+2) + 3.8)
	achromatic := vc.aw * math.Pow(j/100, 1/(vc.c*vc.z))

	p1 := 50000.0 / 13 * vc.nc * vc.nbb * et
	p2 := achromatic/vc.nbb + 0.305

	var a, b float64
	if t != 0 {
		gamma := 23 * p2 * t / (23*p1 + 11*t*math.Cos(h) + 108*t*math.Sin(h))
		a = gamma * math.Cos(h)
		b = gamma * math.Sin(h)
	}

	ra := [3]float64{
		(460*p2 + 451*a + 288*b) / 1403,
		(460*p2 - 891*a - 261*b) / 1403,
		(460*p2 - 220*a - 6300*b) / 1403,
	}
	xyz := vc.unadapted(ra)
	return colorful.Xyz(xyz[0]/100, xyz[1]/100, xyz[2]/100)
}
