package colour

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/hashicorp/go-hclog"
)

// Default extraction parameters.
const (
	DefaultMaxColours   = 5
	DefaultCellSize     = 200
	DefaultMinFrequency = 0.5
)

const (
	// opacityThreshold is the minimum alpha for a pixel to be counted.
	opacityThreshold = 128

	// noiseFloor is the minimum accumulated weighted contribution a colour
	// needs to enter the normalization base.
	noiseFloor = 0.1

	// mergeThreshold and redMergeThreshold are the CIE94 delta-E bounds
	// below which two colours collapse into one.
	mergeThreshold    = 3.0
	redMergeThreshold = 1.5

	// mergeGroupFactor sets the merge cap to mergeGroupFactor*MaxColours,
	// leaving headroom above the final selection.
	mergeGroupFactor = 3
)

// Options configures dominant colour extraction.
type Options struct {
	// MaxColours is the upper bound on returned colours. The result may
	// hold fewer entries; it is never padded to a fixed size.
	MaxColours int

	// CellSize is the edge length in pixels of the standard grid cell used
	// as the unit of local frequency measurement.
	CellSize int

	// MinFrequency is the significance threshold in percent; merged colours
	// below it are discarded.
	MinFrequency float64

	// Logger receives structured trace output. Nil means silent.
	Logger hclog.Logger
}

// DefaultOptions returns the default extraction options.
func DefaultOptions() Options {
	return Options{
		MaxColours:   DefaultMaxColours,
		CellSize:     DefaultCellSize,
		MinFrequency: DefaultMinFrequency,
	}
}

// Validate checks the options against their allowed ranges.
func (o Options) Validate() error {
	if o.MaxColours < 1 {
		return fmt.Errorf("%w: maxColours must be at least 1, got %d", ErrInvalidParameters, o.MaxColours)
	}
	if o.CellSize <= 0 {
		return fmt.Errorf("%w: cellSize must be positive, got %d", ErrInvalidParameters, o.CellSize)
	}
	if o.MinFrequency < 0 || o.MinFrequency > 100 {
		return fmt.Errorf("%w: minFrequency must be within [0,100], got %g", ErrInvalidParameters, o.MinFrequency)
	}
	return nil
}

// Extractor computes dominant colours from decoded pixel data using exact
// per-pixel counting over a grid partition. It holds no mutable state, so a
// single Extractor is safe for concurrent use; every call builds its result
// from scratch and shares nothing with other calls.
type Extractor struct {
	opts Options
	log  hclog.Logger
}

// NewExtractor creates an Extractor with the given options.
func NewExtractor(opts Options) (*Extractor, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	log := opts.Logger
	if log == nil {
		log = hclog.NewNullLogger()
	}

	return &Extractor{opts: opts, log: log}, nil
}

// Extract computes the dominant colours of a decoded image. pix is a
// row-major RGBA buffer, four bytes per pixel, at the image's original
// resolution; the engine never downscales. Pixels below the opacity
// threshold are skipped, and an image with no opaque pixels yields an empty
// palette rather than an error.
func (e *Extractor) Extract(pix []byte, width, height int) (*Palette, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: image dimensions %dx%d", ErrEnvironmentUnavailable, width, height)
	}
	if need := width * height * 4; pix == nil || len(pix) < need {
		return nil, fmt.Errorf("%w: pixel buffer holds %d bytes, need %d", ErrEnvironmentUnavailable, len(pix), need)
	}

	sections := gridSections(width, height, e.opts.CellSize)
	e.log.Debug("partitioned image",
		"width", width, "height", height,
		"cellSize", e.opts.CellSize, "sections", len(sections))

	hists := buildHistograms(pix, width, sections)

	entries := aggregate(hists, sections, e.opts.CellSize, e.log)
	e.log.Debug("aggregated colours", "distinct", len(entries))

	groups := mergeColours(entries, e.opts.MaxColours*mergeGroupFactor, e.log)
	e.log.Debug("merged colours", "groups", len(groups))

	return selectSignificant(groups, e.opts.MaxColours, e.opts.MinFrequency), nil
}

// ExtractImage computes the dominant colours of any image.Image by reading
// it into a non-premultiplied RGBA buffer first. The image is processed at
// its native size.
func (e *Extractor) ExtractImage(img image.Image) (*Palette, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrEnvironmentUnavailable)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	nrgba, ok := img.(*image.NRGBA)
	if !ok || bounds.Min != (image.Point{}) || nrgba.Stride != width*4 {
		dst := image.NewNRGBA(image.Rect(0, 0, width, height))
		draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
		nrgba = dst
	}

	return e.Extract(nrgba.Pix, width, height)
}

// Extract is a convenience wrapper that builds an Extractor for a single
// call. See Extractor.Extract.
func Extract(pix []byte, width, height int, opts Options) (*Palette, error) {
	e, err := NewExtractor(opts)
	if err != nil {
		return nil, err
	}
	return e.Extract(pix, width, height)
}

// ExtractImage is a convenience wrapper that builds an Extractor for a
// single call. See Extractor.ExtractImage.
func ExtractImage(img image.Image, opts Options) (*Palette, error) {
	e, err := NewExtractor(opts)
	if err != nil {
		return nil, err
	}
	return e.ExtractImage(img)
}
