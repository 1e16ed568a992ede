package colour

import (
	"sort"

	"github.com/hashicorp/go-hclog"
)

// weightedColour is one colour's accumulated area-weighted frequency across
// all sections, before merging.
type weightedColour struct {
	rgb    RGB
	weight float64
}

// aggregate folds the per-section histograms into one image-wide frequency
// list. Each section's local percentages are scaled by its area weight
// (sectionArea / cellSize²) so edge and corner remainders contribute in
// proportion to their true size rather than being over-counted. Colours
// whose accumulated contribution stays below noiseFloor are dropped, and the
// survivors are normalized so their frequencies sum to exactly 100.
//
// The reduction runs single-threaded in section order; combined with each
// histogram's own first-encounter order this fixes a deterministic global
// colour order that stable sorts preserve through the rest of the pipeline.
func aggregate(hists []sectionHistogram, sections []gridSection, cellSize int, log hclog.Logger) []weightedColour {
	standardArea := float64(cellSize * cellSize)

	weights := make(map[RGB]float64)
	var order []RGB

	for i := range hists {
		h := &hists[i]
		if h.effective == 0 {
			continue
		}

		areaWeight := float64(sections[i].area()) / standardArea
		denominator := float64(h.effective)

		for _, c := range h.order {
			localPct := float64(h.counts[c]) / denominator * 100
			if _, seen := weights[c]; !seen {
				order = append(order, c)
			}
			weights[c] += localPct * areaWeight
		}
	}

	var total float64
	for _, c := range order {
		if weights[c] >= noiseFloor {
			total += weights[c]
		}
	}
	if total == 0 {
		return nil
	}

	entries := make([]weightedColour, 0, len(order))
	for _, c := range order {
		w := weights[c]
		if w < noiseFloor {
			continue
		}
		entries = append(entries, weightedColour{
			rgb:    c,
			weight: w / total * 100,
		})
	}

	log.Trace("normalized global frequencies", "colours", len(entries), "rawTotal", total)

	// The merge scans in frequency order; the stable sort keeps equal
	// weights in first-encounter order.
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].weight > entries[j].weight })

	return entries
}
