package contrast

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const hexDigits = "0123456789abcdef"

// White and Black are the sRGB gamut extremes.
var (
	White = colorful.Color{R: 1, G: 1, B: 1}
	Black = colorful.Color{R: 0, G: 0, B: 0}
)

// InvalidColorError reports a color string that is not a hex color.
type InvalidColorError struct {
	Value string
	Err   error
}

func (e *InvalidColorError) Error() string {
	return fmt.Sprintf("invalid color %q", e.Value)
}

func (e *InvalidColorError) Unwrap() error {
	return e.Err
}

// Parse converts a hex color (#rrggbb or #rgb, hash optional, any case) to a color.
func Parse(hex string) (colorful.Color, error) {
	s := strings.ToLower(strings.TrimSpace(hex))
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) == 4 {
		s = "#" + strings.Repeat(s[1:2], 2) + strings.Repeat(s[2:3], 2) + strings.Repeat(s[3:4], 2)
	}
	if len(s) != 7 || strings.Trim(s[1:], hexDigits) != "" {
		return colorful.Color{}, &InvalidColorError{Value: hex}
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, &InvalidColorError{Value: hex, Err: err}
	}
	return c, nil
}

// MustParse is like Parse but panics on invalid input. Intended for constants.
func MustParse(hex string) colorful.Color {
	c, err := Parse(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// Format clamps c to the sRGB gamut and returns it as #rrggbb lowercase.
func Format(c colorful.Color) string {
	return c.Clamped().Hex()
}

// Normalize parses and re-formats a hex color.
func Normalize(hex string) (string, error) {
	c, err := Parse(hex)
	if err != nil {
		return "", err
	}
	return Format(c), nil
}

// Distance returns euclidean distance in 0-255 RGB space (0-441.67).
func Distance(a, b colorful.Color) float64 {
	a, b = a.Clamped(), b.Clamped()
	dr := (a.R - b.R) * 255
	dg := (a.G - b.G) * 255
	db := (a.B - b.B) * 255
	return math.Sqrt(dr*dr + dg*dg + db*db)
}
