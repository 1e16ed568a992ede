package colour

import "github.com/anthonynsimon/bild/parallel"

// sectionHistogram holds exact opaque-pixel counts for one grid section.
type sectionHistogram struct {
	counts map[RGB]int

	// order records each colour at first encounter during the row-major
	// scan, so later stages can walk the histogram deterministically.
	order []RGB

	// effective is the number of opaque pixels counted, used as the local
	// normalization denominator. It equals the section area minus the
	// pixels skipped by the alpha test.
	effective int
}

// buildHistogram counts every sufficiently opaque pixel of one section in a
// row-major RGBA buffer. Pixels with alpha below opacityThreshold are
// excluded entirely: they contribute to neither the counts nor the effective
// total.
func buildHistogram(pix []byte, stride int, s gridSection) sectionHistogram {
	h := sectionHistogram{counts: make(map[RGB]int)}

	for y := s.startY; y < s.endY; y++ {
		rowOffset := y * stride
		for x := s.startX; x < s.endX; x++ {
			offset := rowOffset + x*4
			if pix[offset+3] < opacityThreshold {
				continue
			}

			c := RGB{R: pix[offset], G: pix[offset+1], B: pix[offset+2]}
			if _, seen := h.counts[c]; !seen {
				h.order = append(h.order, c)
			}
			h.counts[c]++
			h.effective++
		}
	}

	return h
}

// buildHistograms computes one histogram per section. Sections are
// independent, so the scan fans out across CPUs; every goroutine writes only
// its own pre-allocated slots and the caller reduces the slice in section
// order, so the result is identical to a sequential pass.
func buildHistograms(pix []byte, width int, sections []gridSection) []sectionHistogram {
	hists := make([]sectionHistogram, len(sections))
	stride := width * 4

	parallel.Line(len(sections), func(start, end int) {
		for i := start; i < end; i++ {
			hists[i] = buildHistogram(pix, stride, sections[i])
		}
	})

	return hists
}
