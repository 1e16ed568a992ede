package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/SaiGuruInukurthi/Pallet-extractor-Gradient-generator/internal/colour"
	"github.com/SaiGuruInukurthi/Pallet-extractor-Gradient-generator/internal/config"
	"github.com/SaiGuruInukurthi/Pallet-extractor-Gradient-generator/internal/gradient"
)

// newGradientCmd builds the gradient command.
func newGradientCmd(app *appState) *cobra.Command {
	var (
		output      string
		cssOnly     bool
		supersample bool
		cacheRemote bool
	)

	cmd := &cobra.Command{
		Use:   "gradient <image>",
		Short: "Build a gradient from an image's dominant colours",
		Long: `Build a gradient from an image's dominant colours.

The gradient command extracts the dominant palette, places colour stops in
proportion to how much of the image each colour covers, and emits the result
as a CSS gradient string. With --output it also renders the gradient as a
PNG wallpaper, blending between stops in LAB space.

Styles: linear (hard direction), soft (linear with a gaussian blur),
radial (centre outwards)

Examples:
  # Print the palette as a CSS linear-gradient
  pallet gradient wallpaper.jpg

  # Write a 4K wallpaper blending the palette at 45 degrees
  pallet gradient --size 3840x2160 --angle 45 -o wall.png wallpaper.jpg

  # Soft wallpaper with antialiased colour transitions
  pallet gradient --style soft --supersample -o wall.png wallpaper.jpg

  # Radial gradient CSS only
  pallet gradient --style radial --css-only wallpaper.jpg`,
		Args: cobra.ExactArgs(1),
		PreRun: func(cmd *cobra.Command, args []string) {
			bindFlags(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGradient(app, cmd, args[0], output, cssOnly, supersample, cacheRemote)
		},
	}

	// Define flags for the gradient command
	cmd.Flags().IntP("max-colours", "c", colour.DefaultMaxColours, "maximum number of colours in the gradient")
	cmd.Flags().Int("cell-size", colour.DefaultCellSize, "grid cell edge length in pixels")
	cmd.Flags().Float64("min-frequency", colour.DefaultMinFrequency, "minimum share in percent a colour needs to be included")
	cmd.Flags().Float64("angle", gradient.DefaultAngle, "gradient direction in CSS degrees (0 = up, 90 = right)")
	cmd.Flags().String("style", config.DefaultStyle, "gradient style (linear, soft, radial)")
	cmd.Flags().String("size", config.DefaultSize, "wallpaper size as WIDTHxHEIGHT")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the rendered wallpaper PNG to this path")
	cmd.Flags().BoolVar(&cssOnly, "css-only", false, "emit only the CSS string, never render")
	cmd.Flags().BoolVar(&supersample, "supersample", false, "render at twice the size and downscale for smoother edges")
	cmd.Flags().BoolVar(&cacheRemote, "cache-remote", false, "cache remote images on disk before decoding")

	return cmd
}

// runGradient executes the gradient command.
func runGradient(app *appState, cmd *cobra.Command, imagePath, output string, cssOnly, supersample, cacheRemote bool) error {
	opts := config.ExtractorOptions()
	opts.Logger = app.logger.Named("extract")
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	style, err := gradient.ParseStyle(viper.GetString(config.KeyStyle))
	if err != nil {
		return err
	}
	angle := viper.GetFloat64(config.KeyAngle)

	img, _, err := loadInput(cmd.Context(), app, imagePath, cacheRemote)
	if err != nil {
		return err
	}

	palette, err := colour.ExtractImage(img, opts)
	if err != nil {
		return fmt.Errorf("failed to extract colours: %w", err)
	}

	stops, err := gradient.Stops(palette)
	if err != nil {
		return fmt.Errorf("failed to build gradient stops: %w", err)
	}

	var css string
	if style == gradient.StyleRadial {
		css, err = gradient.CSSRadial(stops)
	} else {
		css, err = gradient.CSS(stops, angle)
	}
	if err != nil {
		return err
	}

	if cssOnly {
		return writeOutput(cmd, output, css+"\n")
	}

	if !app.quiet {
		fmt.Fprintln(cmd.OutOrStdout(), css)
	}

	if output == "" {
		return nil
	}

	width, height, err := config.ParseSize(viper.GetString(config.KeySize))
	if err != nil {
		return err
	}

	ropts := gradient.DefaultRasterOptions()
	ropts.Style = style
	ropts.Angle = angle
	ropts.Supersample = supersample

	app.logger.Debug("rendering wallpaper",
		"width", width, "height", height,
		"style", string(style), "angle", angle, "stops", len(stops))

	wall, err := gradient.Rasterize(stops, width, height, ropts)
	if err != nil {
		return fmt.Errorf("failed to render gradient: %w", err)
	}

	if err := gradient.SavePNG(wall, output); err != nil {
		return fmt.Errorf("failed to write wallpaper: %w", err)
	}

	app.logger.Info("wallpaper written", "path", output, "width", width, "height", height)
	return nil
}
