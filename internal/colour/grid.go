package colour

// gridSection is a half-open pixel rectangle [startX,endX) x [startY,endY).
// The sections produced for one image tile it exactly: no gaps, no overlap,
// every pixel in exactly one section.
type gridSection struct {
	startX, endX int
	startY, endY int
}

func (s gridSection) width() int  { return s.endX - s.startX }
func (s gridSection) height() int { return s.endY - s.startY }
func (s gridSection) area() int   { return s.width() * s.height() }

// gridSections tiles a width x height image into cellSize-square sections:
// full cells in row-major order, then one right-edge remainder per row, one
// bottom-edge remainder per column, and finally the corner remainder. An
// image smaller than one cell in either dimension becomes a single section
// covering the whole image.
func gridSections(width, height, cellSize int) []gridSection {
	if width < cellSize || height < cellSize {
		return []gridSection{{startX: 0, endX: width, startY: 0, endY: height}}
	}

	fullCols := width / cellSize
	fullRows := height / cellSize
	remWidth := width % cellSize
	remHeight := height % cellSize

	sections := make([]gridSection, 0, fullRows*fullCols+fullRows+fullCols+1)

	for row := 0; row < fullRows; row++ {
		for col := 0; col < fullCols; col++ {
			sections = append(sections, gridSection{
				startX: col * cellSize,
				endX:   (col + 1) * cellSize,
				startY: row * cellSize,
				endY:   (row + 1) * cellSize,
			})
		}
	}

	if remWidth > 0 {
		for row := 0; row < fullRows; row++ {
			sections = append(sections, gridSection{
				startX: fullCols * cellSize,
				endX:   width,
				startY: row * cellSize,
				endY:   (row + 1) * cellSize,
			})
		}
	}

	if remHeight > 0 {
		for col := 0; col < fullCols; col++ {
			sections = append(sections, gridSection{
				startX: col * cellSize,
				endX:   (col + 1) * cellSize,
				startY: fullRows * cellSize,
				endY:   height,
			})
		}
	}

	if remWidth > 0 && remHeight > 0 {
		sections = append(sections, gridSection{
			startX: fullCols * cellSize,
			endX:   width,
			startY: fullRows * cellSize,
			endY:   height,
		})
	}

	return sections
}
