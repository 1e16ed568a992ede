// Package colour implements dominant colour extraction from decoded images.
package colour

import (
	"encoding/json"
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB represents a colour in 8-bit RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a lowercase hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// Lab returns the colour converted to CIE LAB under the D65 reference white.
// The conversion is a pure function of the RGB value: identical inputs always
// produce identical outputs.
func (rgb RGB) Lab() Lab {
	l, a, b := rgb.colorful().Lab()
	return Lab{L: l * 100, A: a * 100, B: b * 100}
}

// colorful returns the colour in go-colorful's [0,1] component space.
func (rgb RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(rgb.R) / 255.0,
		G: float64(rgb.G) / 255.0,
		B: float64(rgb.B) / 255.0,
	}
}

// ToRGB converts a color.Color to RGB.
func ToRGB(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255]
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// Lab represents a colour in CIE LAB space: lightness L in [0,100] and the
// two chroma axes a and b, roughly [-128,127]. Lab values are always derived
// from an RGB source and never mutated on their own.
type Lab struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// DominantColour is one extracted colour together with its area-weighted
// share of the image.
type DominantColour struct {
	// Hex is the canonical lowercase #rrggbb form of the colour.
	Hex string `json:"color"`

	RGB RGB `json:"rgb"`
	Lab Lab `json:"lab"`

	// Frequency is the colour's share of the image as a percentage. Before
	// the significance filter the frequencies of a palette sum to 100; after
	// it they sum to at most 100.
	Frequency float64 `json:"frequency"`

	// ClusterSize is the number of source colours folded into this entry by
	// the conservative merge (at least 1).
	ClusterSize int `json:"clusterSize"`
}

// Palette represents the ordered result of an extraction, sorted by
// frequency descending.
type Palette struct {
	Colours []DominantColour
}

// NewPalette creates a new Palette with the given colours.
func NewPalette(colours []DominantColour) *Palette {
	return &Palette{
		Colours: colours,
	}
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	return len(p.Colours)
}

// ToHex returns the palette as hex colour codes (e.g., ["#1a2b3c", "#4d5e6f"]).
func (p *Palette) ToHex() []string {
	hexColours := make([]string, len(p.Colours))
	for i, c := range p.Colours {
		hexColours[i] = c.Hex
	}
	return hexColours
}

// ToRGBSlice returns the palette colours as RGB structs.
func (p *Palette) ToRGBSlice() []RGB {
	rgbColours := make([]RGB, len(p.Colours))
	for i, c := range p.Colours {
		rgbColours[i] = c.RGB
	}
	return rgbColours
}

// paletteJSON is the wire shape of a palette.
type paletteJSON struct {
	Count   int              `json:"count"`
	Colours []DominantColour `json:"colors"`
}

// ToJSON converts the palette to indented JSON.
func (p *Palette) ToJSON() ([]byte, error) {
	return json.MarshalIndent(paletteJSON{
		Count:   len(p.Colours),
		Colours: p.Colours,
	}, "", "  ")
}

// String returns a human-readable string representation of the palette.
func (p *Palette) String() string {
	if len(p.Colours) == 0 {
		return "Empty palette"
	}

	result := fmt.Sprintf("Palette with %d colours:\n", len(p.Colours))
	for i, c := range p.Colours {
		result += fmt.Sprintf("  %2d: %s (%s) %.1f%%\n", i+1, c.Hex, c.RGB.String(), c.Frequency)
	}
	return result
}

// Get returns the colour at the specified index.
// Returns an error if the index is out of bounds.
func (p *Palette) Get(index int) (DominantColour, error) {
	if index < 0 || index >= len(p.Colours) {
		return DominantColour{}, fmt.Errorf("index out of bounds: %d (palette has %d colours)", index, len(p.Colours))
	}
	return p.Colours[index], nil
}

// All returns an iterator over all colours in the palette.
func (p *Palette) All() func(func(int, DominantColour) bool) {
	return func(yield func(int, DominantColour) bool) {
		for i, c := range p.Colours {
			if !yield(i, c) {
				return
			}
		}
	}
}
