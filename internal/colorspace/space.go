// Package colorspace maps sRGB colors to and from the perceptual spaces ramps are
// interpolated in.
package colorspace

import (
	"fmt"
	"strings"
)

// Space identifies an interpolation colorspace.
type Space int

const (
	CAM02 Space = iota + 1
	LAB
	LCH
	HSL
	HSLuv
	HSV
	RGB
)

// Default is used when no colorspace is requested.
const Default = LAB

var names = map[Space]string{
	CAM02: "CAM02",
	LAB:   "LAB",
	LCH:   "LCH",
	HSL:   "HSL",
	HSLuv: "HSLuv",
	HSV:   "HSV",
	RGB:   "RGB",
}

// All lists every supported space in declaration order.
func All() []Space {
	return []Space{CAM02, LAB, LCH, HSL, HSLuv, HSV, RGB}
}

func (s Space) String() string {
	if name, ok := names[s]; ok {
		return name
	}
	return fmt.Sprintf("Space(%d)", int(s))
}

// Valid reports whether s is one of the declared spaces.
func (s Space) Valid() bool {
	_, ok := names[s]
	return ok
}

// InvalidColorspaceError reports an unrecognized colorspace name.
type InvalidColorspaceError struct {
	Name string
}

func (e *InvalidColorspaceError) Error() string {
	return fmt.Sprintf("invalid colorspace %q (want one of CAM02, LAB, LCH, HSL, HSLuv, HSV, RGB)", e.Name)
}

// Parse resolves a colorspace name case-insensitively. An empty name yields Default.
func Parse(name string) (Space, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Default, nil
	}
	for _, s := range All() {
		if strings.EqualFold(names[s], trimmed) {
			return s, nil
		}
	}
	return 0, &InvalidColorspaceError{Name: name}
}
