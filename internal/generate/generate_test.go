package generate

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/marcus/contrastcolors/internal/colorspace"
	"github.com/marcus/contrastcolors/internal/contrast"
)

var blueKeys = []string{"#2451FF", "#C9FEFE", "#012676"}

// maxDrift is how far results may land from reference colors produced by a
// discretized 3000-swatch search. Both searches emit 8-bit colors, so they
// may disagree by a unit per channel.
const maxDrift = 2.0

// quantizationSlack bounds how far an emitted 8-bit color's ratio may sit
// from the requested one.
const quantizationSlack = 0.03

func distance(t *testing.T, a, b string) float64 {
	t.Helper()
	return contrast.Distance(contrast.MustParse(a), contrast.MustParse(b))
}

func TestColorsReferenceScenarios(t *testing.T) {
	tests := []struct {
		name   string
		opts   Options
		want   []string
		strict bool
	}{
		{
			name: "CAM02 interpolation",
			opts: Options{ColorKeys: blueKeys, Base: "#f5f5f5", Ratios: []float64{3, 4.5}, Colorspace: "CAM02"},
			want: []string{"#5490e0", "#2c66f1"},
		},
		{
			name:   "LAB interpolation",
			opts:   Options{ColorKeys: blueKeys, Base: "#f5f5f5", Ratios: []float64{3, 4.5}, Colorspace: "LAB"},
			want:   []string{"#7383ff", "#435eff"},
			strict: true,
		},
		{
			name: "LCH interpolation",
			opts: Options{ColorKeys: blueKeys, Base: "#f5f5f5", Ratios: []float64{3, 4.5}, Colorspace: "LCH"},
			want: []string{"#008fff", "#0065ff"},
		},
		{
			name: "HSL interpolation",
			opts: Options{ColorKeys: blueKeys, Base: "#f5f5f5", Ratios: []float64{3, 4.5}, Colorspace: "HSL"},
			want: []string{"#478cfe", "#2d62ff"},
		},
		{
			name: "HSV interpolation",
			opts: Options{ColorKeys: blueKeys, Base: "#f5f5f5", Ratios: []float64{3, 4.5}, Colorspace: "HSV"},
			want: []string{"#478cff", "#2d62ff"},
		},
		{
			name: "RGB interpolation",
			opts: Options{ColorKeys: blueKeys, Base: "#f5f5f5", Ratios: []float64{3, 4.5}, Colorspace: "RGB"},
			want: []string{"#5988ff", "#3360ff"},
		},
		{
			name: "HSLuv interpolation",
			opts: Options{ColorKeys: blueKeys, Base: "#f5f5f5", Ratios: []float64{3, 4.5}, Colorspace: "HSLuv"},
			want: []string{"#1896dc", "#066aea"},
		},
		{
			name: "dark background",
			opts: Options{ColorKeys: blueKeys, Base: "#323232", Ratios: []float64{3, 4.5}, Colorspace: "LCH"},
			want: []string{"#0074ff", "#009fff"},
		},
		{
			name: "bidirectional on light background",
			opts: Options{ColorKeys: []string{"#012676"}, Base: "#D8D8D8", Ratios: []float64{-1.25, 4.5}, Colorspace: "LCH"},
			want: []string{"#efeff6", "#56599a"},
		},
		{
			name: "bidirectional on dark background",
			opts: Options{ColorKeys: []string{"#012676"}, Base: "#323232", Ratios: []float64{-1.25, 4.5}, Colorspace: "LCH"},
			want: []string{"#101c51", "#9695c0"},
		},
		{
			name:   "black when ratio darker than available colors",
			opts:   Options{ColorKeys: blueKeys, Base: "#d8d8d8", Ratios: []float64{21}, Colorspace: "LCH"},
			want:   []string{"#000000"},
			strict: true,
		},
		{
			name:   "white when ratio lighter than available colors",
			opts:   Options{ColorKeys: blueKeys, Base: "#323232", Ratios: []float64{21}, Colorspace: "LCH"},
			want:   []string{"#ffffff"},
			strict: true,
		},
		{
			name:   "white when negative ratio lighter than available colors",
			opts:   Options{ColorKeys: blueKeys, Base: "#f5f5f5", Ratios: []float64{-21}, Colorspace: "LCH"},
			want:   []string{"#ffffff"},
			strict: true,
		},
		{
			name:   "black when negative ratio darker than available colors",
			opts:   Options{ColorKeys: blueKeys, Base: "#323232", Ratios: []float64{-21}, Colorspace: "LCH"},
			want:   []string{"#000000"},
			strict: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Colors(tt.opts)
			if err != nil {
				t.Fatalf("Colors failed: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d colors, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if tt.strict {
					if got[i] != tt.want[i] {
						t.Errorf("color %d = %s, want %s", i, got[i], tt.want[i])
					}
					continue
				}
				if d := distance(t, got[i], tt.want[i]); d > maxDrift {
					t.Errorf("color %d = %s, want ~%s (distance %.2f)", i, got[i], tt.want[i], d)
				}
			}
		})
	}
}

func TestColorsAchieveRatios(t *testing.T) {
	bases := []string{"#f5f5f5", "#323232", "#d8d8d8"}
	ratios := []float64{1.5, 3, 4.5, 7}
	for _, space := range colorspace.All() {
		for _, base := range bases {
			got, err := Colors(Options{ColorKeys: blueKeys, Base: base, Ratios: ratios, Colorspace: space.String()})
			if err != nil {
				t.Fatalf("%s on %s: %v", space, base, err)
			}
			b := contrast.MustParse(base)
			for i, hex := range got {
				if hex == "#000000" || hex == "#ffffff" {
					continue
				}
				measured := contrast.Signed(contrast.MustParse(hex), b)
				if math.Abs(measured-ratios[i]) > quantizationSlack {
					t.Errorf("%s on %s: ratio %.2f resolved to %s measuring %.3f", space, base, ratios[i], hex, measured)
				}
			}
		}
	}
}

func TestColorsPreservesLengthAndOrder(t *testing.T) {
	ratios := []float64{7, 1.5, -1.05, 4.5, 3, 21, 10}
	got, err := Colors(Options{ColorKeys: blueKeys, Base: "#f5f5f5", Ratios: ratios})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(ratios) {
		t.Fatalf("got %d colors, want %d", len(got), len(ratios))
	}

	measured, err := Ratios(got, "#f5f5f5")
	if err != nil {
		t.Fatal(err)
	}
	// Higher requested ratios on a light base must never come out lighter.
	for i := range ratios {
		for j := range ratios {
			if ratios[i] > ratios[j] && measured[i] < measured[j] {
				t.Errorf("ratio %.2f measured %.2f but ratio %.2f measured %.2f", ratios[i], measured[i], ratios[j], measured[j])
			}
		}
	}
	if got[5] != "#000000" {
		t.Errorf("ratio 21 on a light base = %s, want #000000", got[5])
	}
}

func TestColorsBidirectional(t *testing.T) {
	for _, base := range []string{"#d8d8d8", "#323232", "#808080"} {
		got, err := Colors(Options{ColorKeys: []string{"#012676"}, Base: base, Ratios: []float64{2, -2}, Colorspace: "LCH"})
		if err != nil {
			t.Fatal(err)
		}
		b := contrast.Luminance(contrast.MustParse(base))
		pos := contrast.Luminance(contrast.MustParse(got[0]))
		neg := contrast.Luminance(contrast.MustParse(got[1]))
		if (pos-b)*(neg-b) >= 0 {
			t.Errorf("base %s: %s and %s do not straddle the base", base, got[0], got[1])
		}
		if got[0] == got[1] {
			t.Errorf("base %s: both directions resolved to %s", base, got[0])
		}
	}
}

func TestColorsRoundTrip(t *testing.T) {
	for _, space := range colorspace.All() {
		got, err := Colors(Options{ColorKeys: blueKeys, Base: "#f5f5f5", Ratios: []float64{2, 3, 4.5, 7}, Colorspace: space.String()})
		if err != nil {
			t.Fatal(err)
		}
		for _, hex := range got {
			c := contrast.MustParse(hex)
			back := contrast.Format(colorspace.From(space, colorspace.To(space, c)))
			if d := distance(t, hex, back); d > math.Sqrt(3) {
				t.Errorf("%s: %s round-tripped to %s", space, hex, back)
			}
		}
	}
}

func TestColorsIdempotent(t *testing.T) {
	opts := Options{ColorKeys: blueKeys, Base: "#f5f5f5", Ratios: []float64{3, 4.5}, Colorspace: "HSLuv"}
	first, err := Colors(opts)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Colors(opts)
	if err != nil {
		t.Fatal(err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("call 2 color %d = %s, call 1 = %s", i, second[i], first[i])
		}
	}
	if opts.ColorKeys[0] != "#2451FF" {
		t.Error("Colors mutated its key colors")
	}
}

func TestColorsConcurrent(t *testing.T) {
	opts := Options{ColorKeys: blueKeys, Base: "#323232", Ratios: []float64{3, 4.5, 7}, Colorspace: "CAM02"}
	want, err := Colors(opts)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := Colors(opts)
			if err != nil {
				errs <- err.Error()
				return
			}
			for j := range got {
				if got[j] != want[j] {
					errs <- got[j] + " != " + want[j]
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for msg := range errs {
		t.Error(msg)
	}
}

func TestColorsDefaultColorspace(t *testing.T) {
	opts := Options{ColorKeys: blueKeys, Base: "#f5f5f5", Ratios: []float64{3, 4.5}}
	def, err := Colors(opts)
	if err != nil {
		t.Fatal(err)
	}
	opts.Colorspace = "LAB"
	lab, err := Colors(opts)
	if err != nil {
		t.Fatal(err)
	}
	for i := range def {
		if def[i] != lab[i] {
			t.Errorf("default color %d = %s, LAB = %s", i, def[i], lab[i])
		}
	}
}

func TestColorsKeepOrder(t *testing.T) {
	got, err := Colors(Options{ColorKeys: []string{"#012676"}, Base: "#D8D8D8", Ratios: []float64{-1.25, 4.5}, Colorspace: "LCH", KeepOrder: true})
	if err != nil {
		t.Fatal(err)
	}
	// A single key has no segments, so every ratio clamps.
	if got[0] != "#ffffff" || got[1] != "#000000" {
		t.Errorf("single key in order = %v, want [#ffffff #000000]", got)
	}

	ordered, err := Colors(Options{ColorKeys: blueKeys, Base: "#f5f5f5", Ratios: []float64{3, 4.5}, KeepOrder: true})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"#7383ff", "#435eff"}
	for i := range ordered {
		if ordered[i] != want[i] {
			t.Errorf("in-order color %d = %s, want %s", i, ordered[i], want[i])
		}
	}
}

func TestColorsTinyRatios(t *testing.T) {
	got, err := Colors(Options{ColorKeys: blueKeys, Base: "#f5f5f5", Ratios: []float64{0.5, 1}})
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != got[1] {
		t.Errorf("ratio 0.5 = %s, ratio 1 = %s; magnitudes below 1 should act as 1", got[0], got[1])
	}

	// On the gamut extremes the base itself sits at the end of the path, so
	// every ratio of magnitude 1 or less resolves to it.
	for _, base := range []string{"#ffffff", "#000000"} {
		for _, space := range colorspace.All() {
			got, err := Colors(Options{ColorKeys: []string{"#2451ff"}, Base: base, Ratios: []float64{1, 0.5, 0, -1}, Colorspace: space.String()})
			if err != nil {
				t.Fatalf("%s on %s: %v", space, base, err)
			}
			for i, hex := range got {
				if hex != base {
					t.Errorf("%s on %s: ratio %d = %s, want %s", space, base, i, hex, base)
				}
			}
		}
	}
}

func TestColorsInvalidRatio(t *testing.T) {
	for _, r := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		got, err := Colors(Options{ColorKeys: blueKeys, Base: "#f5f5f5", Ratios: []float64{3, r}})
		if got != nil {
			t.Errorf("ratio %v: got colors %v, want none", r, got)
		}
		var bad *InvalidRatioError
		if !errors.As(err, &bad) {
			t.Errorf("ratio %v: error = %v, want *InvalidRatioError", r, err)
		}
	}
}

func TestColorsMissingInput(t *testing.T) {
	tests := []struct {
		name  string
		opts  Options
		field string
	}{
		{"missing colorKeys", Options{Base: "#f5f5f5", Ratios: []float64{3, 4.5}}, "colorKeys"},
		{"empty colorKeys", Options{ColorKeys: []string{}, Base: "#f5f5f5", Ratios: []float64{3}}, "colorKeys"},
		{"missing ratios", Options{ColorKeys: blueKeys, Base: "#f5f5f5"}, "ratios"},
		{"missing base", Options{ColorKeys: blueKeys, Ratios: []float64{3, 4.5}}, "base"},
		{"nothing", Options{}, "colorKeys"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Colors(tt.opts)
			if got != nil {
				t.Errorf("got colors %v, want none", got)
			}
			var missing *MissingInputError
			if !errors.As(err, &missing) {
				t.Fatalf("error = %v, want *MissingInputError", err)
			}
			if missing.Field != tt.field {
				t.Errorf("Field = %q, want %q", missing.Field, tt.field)
			}
		})
	}
}

func TestColorsInvalidInput(t *testing.T) {
	_, err := Colors(Options{ColorKeys: blueKeys, Base: "#f5f5f5", Ratios: []float64{3}, Colorspace: "OKLAB"})
	var badSpace *colorspace.InvalidColorspaceError
	if !errors.As(err, &badSpace) {
		t.Errorf("unknown colorspace error = %v, want *InvalidColorspaceError", err)
	}

	_, err = Colors(Options{ColorKeys: []string{"#2451FF", "blue"}, Base: "#f5f5f5", Ratios: []float64{3}})
	var badColor *contrast.InvalidColorError
	if !errors.As(err, &badColor) || badColor.Value != "blue" {
		t.Errorf("bad key error = %v, want *InvalidColorError for blue", err)
	}

	got, err := Colors(Options{ColorKeys: blueKeys, Base: "#zzzzzz", Ratios: []float64{3}})
	if !errors.As(err, &badColor) || got != nil {
		t.Errorf("bad base = %v, %v; want *InvalidColorError and no colors", got, err)
	}
}
