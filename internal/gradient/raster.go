package gradient

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/parallel"
	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/SaiGuruInukurthi/Pallet-extractor-Gradient-generator/internal/colour"
)

// Style selects how a gradient is painted across the output image.
type Style string

const (
	// StyleLinear paints a straight gradient along the configured angle.
	StyleLinear Style = "linear"

	// StyleSoft is StyleLinear followed by a Gaussian blur pass, hiding
	// banding on large single-hue spans.
	StyleSoft Style = "soft"

	// StyleRadial paints the gradient outward from the image centre.
	StyleRadial Style = "radial"
)

// ParseStyle maps a user-supplied style name onto a Style.
func ParseStyle(s string) (Style, error) {
	switch Style(s) {
	case StyleLinear, StyleSoft, StyleRadial:
		return Style(s), nil
	default:
		return "", fmt.Errorf("unknown gradient style %q (valid: linear, soft, radial)", s)
	}
}

// RasterOptions configures wallpaper rendering.
type RasterOptions struct {
	// Style selects the paint mode. Defaults to StyleLinear.
	Style Style

	// Angle is the CSS-convention gradient direction in degrees for the
	// linear and soft styles: 0 points up, 90 right, 135 toward the
	// bottom-right corner.
	Angle float64

	// BlurRadius is the Gaussian radius in pixels for StyleSoft. Zero
	// derives a radius from the output size.
	BlurRadius float64

	// Supersample renders at twice the requested size and downsamples with
	// a Lanczos filter, smoothing diagonal banding.
	Supersample bool
}

// DefaultRasterOptions returns the default rendering options.
func DefaultRasterOptions() RasterOptions {
	return RasterOptions{
		Style: StyleLinear,
		Angle: DefaultAngle,
	}
}

// rampSize is the resolution of the precomputed colour ramp. Blending in Lab
// per ramp entry instead of per pixel keeps rendering linear in image size.
const rampSize = 1024

// Rasterize renders the gradient described by stops into a width x height
// image. Interpolation between stops happens in Lab space so the midpoints
// stay perceptually between their endpoints instead of dipping through grey.
func Rasterize(stops []Stop, width, height int, opts RasterOptions) (image.Image, error) {
	if len(stops) == 0 {
		return nil, ErrEmptyPalette
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid raster size %dx%d", width, height)
	}

	style := opts.Style
	if style == "" {
		style = StyleLinear
	}
	if _, err := ParseStyle(string(style)); err != nil {
		return nil, err
	}

	renderW, renderH := width, height
	if opts.Supersample {
		renderW, renderH = width*2, height*2
	}

	ramp := buildRamp(stops)

	var img image.Image
	switch style {
	case StyleRadial:
		img = paintRadial(ramp, renderW, renderH)
	default:
		img = paintLinear(ramp, renderW, renderH, opts.Angle)
	}

	if style == StyleSoft {
		radius := opts.BlurRadius
		if radius <= 0 {
			radius = float64(max(renderW, renderH)) / 32
		}
		img = blur.Gaussian(img, radius)
	}

	if opts.Supersample {
		img = imaging.Resize(img, width, height, imaging.Lanczos)
	}

	return img, nil
}

// SavePNG writes an image to path as PNG.
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path) // #nosec G304 - User-specified output path, intended to be written
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode png: %w", err)
	}

	return f.Close()
}

// buildRamp precomputes the gradient's colour at rampSize points along its
// axis. Outside the first and last stop the ramp holds those stops' exact
// colours, so gradient endpoints always land on real palette entries.
func buildRamp(stops []Stop) []colour.RGB {
	ramp := make([]colour.RGB, rampSize)
	for i := range ramp {
		t := float64(i) / float64(rampSize-1) * 100
		ramp[i] = colourAt(stops, t)
	}
	return ramp
}

// colourAt evaluates the piecewise gradient at position t in [0,100].
func colourAt(stops []Stop, t float64) colour.RGB {
	if t <= stops[0].Position {
		return stops[0].Colour
	}
	last := stops[len(stops)-1]
	if t >= last.Position {
		return last.Colour
	}

	for i := 0; i < len(stops)-1; i++ {
		a, b := stops[i], stops[i+1]
		if t > b.Position {
			continue
		}
		span := b.Position - a.Position
		if span <= 0 {
			return b.Colour
		}
		local := (t - a.Position) / span
		blended := toColorful(a.Colour).BlendLab(toColorful(b.Colour), local).Clamped()
		r, g, bb := blended.RGB255()
		return colour.RGB{R: r, G: g, B: bb}
	}

	return last.Colour
}

// toColorful converts to go-colorful's [0,1] component space.
func toColorful(c colour.RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// paintLinear fills an image by projecting each pixel onto the gradient
// axis. Rows are independent, so the fill fans out across CPUs.
func paintLinear(ramp []colour.RGB, width, height int, angle float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	// CSS angles measure clockwise from "up" in screen coordinates.
	rad := angle * math.Pi / 180
	dx := math.Sin(rad)
	dy := -math.Cos(rad)

	// Projection extremes over the four corners normalize t to [0,1].
	minProj := math.Inf(1)
	maxProj := math.Inf(-1)
	for _, corner := range [4][2]float64{{0, 0}, {float64(width - 1), 0}, {0, float64(height - 1)}, {float64(width - 1), float64(height - 1)}} {
		p := corner[0]*dx + corner[1]*dy
		minProj = math.Min(minProj, p)
		maxProj = math.Max(maxProj, p)
	}
	span := maxProj - minProj
	if span <= 0 {
		span = 1
	}

	parallel.Line(height, func(start, end int) {
		for y := start; y < end; y++ {
			rowProj := float64(y) * dy
			offset := y * img.Stride
			for x := 0; x < width; x++ {
				t := (float64(x)*dx + rowProj - minProj) / span
				c := ramp[rampIndex(t)]
				img.Pix[offset+0] = c.R
				img.Pix[offset+1] = c.G
				img.Pix[offset+2] = c.B
				img.Pix[offset+3] = 0xff
				offset += 4
			}
		}
	})

	return img
}

// paintRadial fills an image with the gradient radiating from the centre to
// the farthest corner.
func paintRadial(ramp []colour.RGB, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	cx := float64(width-1) / 2
	cy := float64(height-1) / 2
	maxDist := math.Hypot(math.Max(cx, float64(width-1)-cx), math.Max(cy, float64(height-1)-cy))
	if maxDist <= 0 {
		maxDist = 1
	}

	parallel.Line(height, func(start, end int) {
		for y := start; y < end; y++ {
			dy := float64(y) - cy
			offset := y * img.Stride
			for x := 0; x < width; x++ {
				t := math.Hypot(float64(x)-cx, dy) / maxDist
				c := ramp[rampIndex(t)]
				img.Pix[offset+0] = c.R
				img.Pix[offset+1] = c.G
				img.Pix[offset+2] = c.B
				img.Pix[offset+3] = 0xff
				offset += 4
			}
		}
	})

	return img
}

// rampIndex maps t in [0,1] onto a ramp slot, clamping out-of-range values.
func rampIndex(t float64) int {
	i := int(t * float64(rampSize-1))
	if i < 0 {
		return 0
	}
	if i >= rampSize {
		return rampSize - 1
	}
	return i
}
