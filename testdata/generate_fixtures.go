// Fixture generator creating sample images for testing colour extraction and gradients
package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

func main() {
	save("testdata/halves.png", halves(400, 400))
	save("testdata/quadrants.png", quadrants(400, 400))
	save("testdata/checker_alpha.png", checkerAlpha(200, 200))
	save("testdata/near_reds.png", nearReds(300, 300))
}

// halves is split horizontally: top half pure red, bottom half pure blue.
func halves(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		c := color.NRGBA{R: 255, A: 255}
		if y >= h/2 {
			c = color.NRGBA{B: 255, A: 255}
		}
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// quadrants holds four equal blocks: red, green, blue, white.
func quadrants(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var c color.NRGBA
			switch {
			case x < w/2 && y < h/2:
				c = color.NRGBA{R: 255, A: 255}
			case x >= w/2 && y < h/2:
				c = color.NRGBA{G: 255, A: 255}
			case x < w/2:
				c = color.NRGBA{B: 255, A: 255}
			default:
				c = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// checkerAlpha alternates opaque teal with fully transparent pixels, so half
// the image should be ignored by extraction.
func checkerAlpha(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				img.SetNRGBA(x, y, color.NRGBA{G: 128, B: 128, A: 255})
			} else {
				img.SetNRGBA(x, y, color.NRGBA{})
			}
		}
	}
	return img
}

// nearReds is split between two reds close enough to merge perceptually,
// with a blue stripe that must stay separate.
func nearReds(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		var c color.NRGBA
		switch {
		case y < h*2/5:
			c = color.NRGBA{R: 200, G: 30, B: 30, A: 255}
		case y < h*4/5:
			c = color.NRGBA{R: 200, G: 32, B: 32, A: 255}
		default:
			c = color.NRGBA{B: 220, A: 255}
		}
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func save(path string, img image.Image) {
	file, err := os.Create(path)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		panic(err)
	}

	println("Fixture created:", path)
}
