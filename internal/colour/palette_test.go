package colour

import (
	"image/color"
	"math"
	"strings"
	"testing"
)

func testColours() []DominantColour {
	rgbs := []RGB{
		{R: 255, G: 0, B: 0},
		{R: 0, G: 255, B: 0},
		{R: 0, G: 0, B: 255},
	}
	frequencies := []float64{50, 30, 20}

	colours := make([]DominantColour, len(rgbs))
	for i, rgb := range rgbs {
		colours[i] = DominantColour{
			Hex:         rgb.Hex(),
			RGB:         rgb,
			Lab:         rgb.Lab(),
			Frequency:   frequencies[i],
			ClusterSize: 1,
		}
	}
	return colours
}

func TestNewPalette(t *testing.T) {
	palette := NewPalette(testColours())

	if palette == nil {
		t.Fatal("NewPalette returned nil")
	}

	if palette.Len() != 3 {
		t.Errorf("Expected palette length 3, got %d", palette.Len())
	}
}

func TestPaletteLen(t *testing.T) {
	tests := []struct {
		name    string
		colours []DominantColour
		want    int
	}{
		{
			name:    "empty palette",
			colours: []DominantColour{},
			want:    0,
		},
		{
			name:    "single colour",
			colours: testColours()[:1],
			want:    1,
		},
		{
			name:    "multiple colours",
			colours: testColours(),
			want:    3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			palette := NewPalette(tt.colours)
			if got := palette.Len(); got != tt.want {
				t.Errorf("Len() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestToRGB(t *testing.T) {
	tests := []struct {
		name  string
		color color.Color
		want  RGB
	}{
		{
			name:  "red",
			color: color.RGBA{R: 255, G: 0, B: 0, A: 255},
			want:  RGB{R: 255, G: 0, B: 0},
		},
		{
			name:  "green",
			color: color.RGBA{R: 0, G: 255, B: 0, A: 255},
			want:  RGB{R: 0, G: 255, B: 0},
		},
		{
			name:  "blue",
			color: color.RGBA{R: 0, G: 0, B: 255, A: 255},
			want:  RGB{R: 0, G: 0, B: 255},
		},
		{
			name:  "white",
			color: color.RGBA{R: 255, G: 255, B: 255, A: 255},
			want:  RGB{R: 255, G: 255, B: 255},
		},
		{
			name:  "non-RGBA colour model",
			color: color.Gray{Y: 128},
			want:  RGB{R: 128, G: 128, B: 128},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToRGB(tt.color)
			if got != tt.want {
				t.Errorf("ToRGB() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRGBHex(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want string
	}{
		{
			name: "red",
			rgb:  RGB{R: 255, G: 0, B: 0},
			want: "#ff0000",
		},
		{
			name: "green",
			rgb:  RGB{R: 0, G: 255, B: 0},
			want: "#00ff00",
		},
		{
			name: "blue",
			rgb:  RGB{R: 0, G: 0, B: 255},
			want: "#0000ff",
		},
		{
			name: "white",
			rgb:  RGB{R: 255, G: 255, B: 255},
			want: "#ffffff",
		},
		{
			name: "black",
			rgb:  RGB{R: 0, G: 0, B: 0},
			want: "#000000",
		},
		{
			name: "grey",
			rgb:  RGB{R: 128, G: 128, B: 128},
			want: "#808080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rgb.Hex()
			if got != tt.want {
				t.Errorf("Hex() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRGBString(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want string
	}{
		{
			name: "red",
			rgb:  RGB{R: 255, G: 0, B: 0},
			want: "rgb(255, 0, 0)",
		},
		{
			name: "grey",
			rgb:  RGB{R: 128, G: 128, B: 128},
			want: "rgb(128, 128, 128)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rgb.String()
			if got != tt.want {
				t.Errorf("String() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRGBLab(t *testing.T) {
	// Reference values for the D65 two-degree observer.
	tests := []struct {
		name string
		rgb  RGB
		want Lab
	}{
		{
			name: "black",
			rgb:  RGB{R: 0, G: 0, B: 0},
			want: Lab{L: 0, A: 0, B: 0},
		},
		{
			name: "white",
			rgb:  RGB{R: 255, G: 255, B: 255},
			want: Lab{L: 100.0000, A: -0.0025, B: -0.0139},
		},
		{
			name: "red",
			rgb:  RGB{R: 255, G: 0, B: 0},
			want: Lab{L: 53.2371, A: 80.0882, B: 67.1996},
		},
		{
			name: "green",
			rgb:  RGB{R: 0, G: 255, B: 0},
			want: Lab{L: 87.7355, A: -86.1834, B: 83.1800},
		},
		{
			name: "blue",
			rgb:  RGB{R: 0, G: 0, B: 255},
			want: Lab{L: 32.3009, A: 79.1939, B: -107.8688},
		},
	}

	const tolerance = 0.01

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rgb.Lab()
			if math.Abs(got.L-tt.want.L) > tolerance ||
				math.Abs(got.A-tt.want.A) > tolerance ||
				math.Abs(got.B-tt.want.B) > tolerance {
				t.Errorf("Lab() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRGBLabDeterministic(t *testing.T) {
	rgb := RGB{R: 37, G: 142, B: 219}

	first := rgb.Lab()
	for i := 0; i < 5; i++ {
		if got := rgb.Lab(); got != first {
			t.Fatalf("Lab() = %+v on repeat call, want %+v", got, first)
		}
	}
}

func TestPaletteToHex(t *testing.T) {
	palette := NewPalette(testColours())
	hexColours := palette.ToHex()

	want := []string{"#ff0000", "#00ff00", "#0000ff"}

	if len(hexColours) != len(want) {
		t.Fatalf("ToHex() returned %d colours, want %d", len(hexColours), len(want))
	}

	for i, got := range hexColours {
		if got != want[i] {
			t.Errorf("ToHex()[%d] = %s, want %s", i, got, want[i])
		}
	}
}

func TestPaletteToRGBSlice(t *testing.T) {
	palette := NewPalette(testColours())
	rgbColours := palette.ToRGBSlice()

	want := []RGB{
		{R: 255, G: 0, B: 0},
		{R: 0, G: 255, B: 0},
		{R: 0, G: 0, B: 255},
	}

	if len(rgbColours) != len(want) {
		t.Fatalf("ToRGBSlice() returned %d colours, want %d", len(rgbColours), len(want))
	}

	for i, got := range rgbColours {
		if got != want[i] {
			t.Errorf("ToRGBSlice()[%d] = %+v, want %+v", i, got, want[i])
		}
	}
}

func TestPaletteToJSON(t *testing.T) {
	palette := NewPalette(testColours()[:2])
	jsonBytes, err := palette.ToJSON()

	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	jsonStr := string(jsonBytes)
	expectedStrings := []string{
		`"count": 2`,
		`"color": "#ff0000"`,
		`"color": "#00ff00"`,
		`"r": 255`,
		`"frequency": 50`,
		`"clusterSize": 1`,
	}

	for _, expected := range expectedStrings {
		if !strings.Contains(jsonStr, expected) {
			t.Errorf("ToJSON() output missing expected string: %s", expected)
		}
	}
}

func TestPaletteGet(t *testing.T) {
	palette := NewPalette(testColours())

	tests := []struct {
		name    string
		index   int
		wantErr bool
	}{
		{
			name:    "valid index 0",
			index:   0,
			wantErr: false,
		},
		{
			name:    "valid index 2",
			index:   2,
			wantErr: false,
		},
		{
			name:    "negative index",
			index:   -1,
			wantErr: true,
		},
		{
			name:    "index out of bounds",
			index:   3,
			wantErr: true,
		},
		{
			name:    "index far out of bounds",
			index:   100,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := palette.Get(tt.index)
			if (err != nil) != tt.wantErr {
				t.Errorf("Get() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && c.Hex == "" {
				t.Errorf("Get(%d) returned an empty colour", tt.index)
			}
		})
	}
}

func TestPaletteAll(t *testing.T) {
	colours := testColours()
	palette := NewPalette(colours)

	count := 0
	palette.All()(func(i int, c DominantColour) bool {
		if i != count {
			t.Errorf("Expected index %d, got %d", count, i)
		}
		if c.Hex != colours[i].Hex {
			t.Errorf("Colour at index %d = %s, want %s", i, c.Hex, colours[i].Hex)
		}
		count++
		return true
	})

	if count != 3 {
		t.Errorf("Expected to iterate over 3 colours, got %d", count)
	}
}

func TestPaletteAllStopsEarly(t *testing.T) {
	palette := NewPalette(testColours())

	count := 0
	palette.All()(func(int, DominantColour) bool {
		count++
		if count == 2 {
			return false
		}
		return true
	})

	if count != 2 {
		t.Errorf("Expected iteration to stop after 2 colours, got %d", count)
	}
}

func TestPaletteString(t *testing.T) {
	tests := []struct {
		name    string
		colours []DominantColour
		want    string
	}{
		{
			name:    "empty palette",
			colours: []DominantColour{},
			want:    "Empty palette",
		},
		{
			name:    "single colour",
			colours: testColours()[:1],
			want:    "#ff0000",
		},
		{
			name:    "multiple colours",
			colours: testColours(),
			want:    "Palette with 3 colours",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			palette := NewPalette(tt.colours)
			str := palette.String()
			if !strings.Contains(str, tt.want) {
				t.Errorf("String() = %q, want it to contain %q", str, tt.want)
			}
		})
	}
}
