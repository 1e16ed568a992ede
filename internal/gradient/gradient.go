// Package gradient turns extracted palettes into CSS gradient strings and
// rendered wallpaper images.
package gradient

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/SaiGuruInukurthi/Pallet-extractor-Gradient-generator/internal/colour"
)

// ErrEmptyPalette reports that there are no colours to build a gradient from.
var ErrEmptyPalette = errors.New("palette has no colours")

// DefaultAngle is the default direction of a linear gradient in CSS degrees.
const DefaultAngle = 135.0

// Stop is one colour stop on a gradient axis. Position is a percentage in
// [0,100] along the gradient line.
type Stop struct {
	Colour   colour.RGB
	Position float64
}

// Stops lays the palette's colours out along a gradient axis. Each colour
// claims a band proportional to its frequency and its stop sits at the band's
// centre, except the first and last stops which pin to 0% and 100% so the
// gradient begins and ends on real palette colours. A single-colour palette
// becomes two identical stops.
func Stops(p *colour.Palette) ([]Stop, error) {
	if p == nil || p.Len() == 0 {
		return nil, ErrEmptyPalette
	}

	colours := p.Colours
	if len(colours) == 1 {
		c := colours[0].RGB
		return []Stop{{Colour: c, Position: 0}, {Colour: c, Position: 100}}, nil
	}

	var total float64
	for _, c := range colours {
		total += c.Frequency
	}

	stops := make([]Stop, len(colours))
	var cumulative float64
	for i, c := range colours {
		share := c.Frequency
		if total <= 0 {
			// Frequencies can all be zero for hand-built palettes; fall
			// back to equal bands.
			share = 100.0 / float64(len(colours))
		} else {
			share = share / total * 100
		}

		switch i {
		case 0:
			stops[i] = Stop{Colour: c.RGB, Position: 0}
		case len(colours) - 1:
			stops[i] = Stop{Colour: c.RGB, Position: 100}
		default:
			stops[i] = Stop{Colour: c.RGB, Position: cumulative + share/2}
		}
		cumulative += share
	}

	return stops, nil
}

// CSS renders the stops as a CSS linear-gradient value, e.g.
// "linear-gradient(135deg, #112233 0%, #445566 100%)".
func CSS(stops []Stop, angle float64) (string, error) {
	if len(stops) == 0 {
		return "", ErrEmptyPalette
	}

	var b strings.Builder
	fmt.Fprintf(&b, "linear-gradient(%sdeg", formatNumber(angle))
	writeStopList(&b, stops)
	b.WriteString(")")

	return b.String(), nil
}

// CSSRadial renders the stops as a CSS radial-gradient value radiating from
// the centre.
func CSSRadial(stops []Stop) (string, error) {
	if len(stops) == 0 {
		return "", ErrEmptyPalette
	}

	var b strings.Builder
	b.WriteString("radial-gradient(circle")
	writeStopList(&b, stops)
	b.WriteString(")")

	return b.String(), nil
}

// writeStopList appends ", #rrggbb p%" for every stop.
func writeStopList(b *strings.Builder, stops []Stop) {
	for _, s := range stops {
		fmt.Fprintf(b, ", %s %s%%", s.Colour.Hex(), formatNumber(s.Position))
	}
}

// formatNumber renders a CSS number with at most one decimal place and no
// trailing ".0", so 50 stays "50" and a third becomes "33.3".
func formatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}
