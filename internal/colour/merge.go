package colour

import (
	"math"

	"github.com/hashicorp/go-hclog"
)

// isSalientRed reports whether a colour falls in the saturated red region.
// Reds sit perceptually close to oranges and browns under CIE94, so they
// merge under the tighter threshold to keep a genuinely distinct accent
// colour from being absorbed.
func isSalientRed(c RGB) bool {
	return c.R > 180 && c.G < 100 && c.B < 100
}

// deltaE94 returns the CIE94 graphic-arts colour difference between two
// colours on the conventional 0..100 Lab scale. The reference operand's
// chroma drives the S_C and S_H weighting terms, so the distance is not
// symmetric; callers always pass the higher-frequency colour first.
func deltaE94(reference, sample RGB) float64 {
	return reference.colorful().DistanceCIE94(sample.colorful()) * 100
}

// mergedColour is one group produced by the conservative merge: the
// frequency-weighted RGB average of its members, the group's combined
// frequency, and the member count.
type mergedColour struct {
	rgb       RGB
	lab       Lab
	frequency float64
	size      int
}

// mergeColours collapses perceptually near-duplicate colours. Input must be
// sorted by frequency descending. In a single deterministic pass, each
// not-yet-merged colour in turn becomes a base; every later unmerged colour
// within the base's threshold folds into a frequency-weighted running RGB
// average and is marked merged. Distances are always measured from the
// base's original colour, and the group's hex and Lab are recomputed from
// the averaged RGB once its scan finishes. No new bases form past maxGroups;
// leftover colours are dropped.
func mergeColours(entries []weightedColour, maxGroups int, log hclog.Logger) []mergedColour {
	merged := make([]bool, len(entries))
	groups := make([]mergedColour, 0, min(maxGroups, len(entries)))

	for i := range entries {
		if merged[i] {
			continue
		}
		if len(groups) >= maxGroups {
			break
		}
		merged[i] = true
		base := entries[i]

		threshold := mergeThreshold
		if isSalientRed(base.rgb) {
			threshold = redMergeThreshold
		}

		sumR := float64(base.rgb.R) * base.weight
		sumG := float64(base.rgb.G) * base.weight
		sumB := float64(base.rgb.B) * base.weight
		total := base.weight
		size := 1

		for j := i + 1; j < len(entries); j++ {
			if merged[j] {
				continue
			}

			candidate := entries[j]
			distance := deltaE94(base.rgb, candidate.rgb)
			if distance >= threshold {
				continue
			}

			log.Trace("merging colour",
				"base", base.rgb.Hex(),
				"candidate", candidate.rgb.Hex(),
				"deltaE", distance,
				"threshold", threshold)

			sumR += float64(candidate.rgb.R) * candidate.weight
			sumG += float64(candidate.rgb.G) * candidate.weight
			sumB += float64(candidate.rgb.B) * candidate.weight
			total += candidate.weight
			size++
			merged[j] = true
		}

		averaged := RGB{
			R: uint8(math.Round(sumR / total)),
			G: uint8(math.Round(sumG / total)),
			B: uint8(math.Round(sumB / total)),
		}

		groups = append(groups, mergedColour{
			rgb:       averaged,
			lab:       averaged.Lab(),
			frequency: total,
			size:      size,
		})
	}

	return groups
}
