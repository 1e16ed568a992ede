package colour

import "sort"

// selectSignificant applies the final significance filter and cap, returning
// the ordered palette. Entries below minFrequency are dropped; if the
// remainder fits within maxColours all of it is returned, never padded,
// otherwise the top maxColours entries win. The stable sort keeps equal
// frequencies in merge order so repeated runs tie-break identically.
func selectSignificant(groups []mergedColour, maxColours int, minFrequency float64) *Palette {
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].frequency > groups[j].frequency })

	colours := make([]DominantColour, 0, min(len(groups), maxColours))
	for _, g := range groups {
		if g.frequency < minFrequency {
			continue
		}
		if len(colours) == maxColours {
			break
		}
		colours = append(colours, DominantColour{
			Hex:         g.rgb.Hex(),
			RGB:         g.rgb,
			Lab:         g.lab,
			Frequency:   g.frequency,
			ClusterSize: g.size,
		})
	}

	return NewPalette(colours)
}
