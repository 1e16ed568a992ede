// Package cli provides the command-line interface for Pallet.
package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/SaiGuruInukurthi/Pallet-extractor-Gradient-generator/internal/colour"
	"github.com/SaiGuruInukurthi/Pallet-extractor-Gradient-generator/internal/config"
	"github.com/SaiGuruInukurthi/Pallet-extractor-Gradient-generator/internal/gradient"
)

// previewStripWidth is the character width of the --preview frequency strip.
const previewStripWidth = 60

// swatchWidth is the character width of per-colour swatches in tables and
// hex listings.
const swatchWidth = 6

// newExtractCmd builds the extract command.
func newExtractCmd(app *appState) *cobra.Command {
	var (
		output      string
		preview     bool
		cacheRemote bool
	)

	cmd := &cobra.Command{
		Use:   "extract <image>",
		Short: "Extract the dominant colour palette from an image",
		Long: `Extract the dominant colour palette from an image.

The extract command grids the image into cells, counts every opaque pixel
exactly, merges perceptually indistinguishable colours in LAB space, and
reports the colours that cover a significant share of the image together
with that share.

Supported image formats: JPEG, PNG, GIF, WebP
Sources: local files, directories (a random member image), HTTPS URLs

Examples:
  # Extract the dominant palette from an image
  pallet extract wallpaper.jpg

  # Report up to 8 colours with a terminal preview
  pallet extract --preview -c 8 wallpaper.png

  # Emit JSON for scripting
  pallet extract -f json wallpaper.jpg

  # Emit the palette as a CSS linear-gradient
  pallet extract -f css wallpaper.jpg

  # Pick a random image from a directory and save the palette
  pallet extract -o palette.txt ~/Pictures/wallpapers

  # Measure local frequencies in smaller cells
  pallet extract --cell-size 100 wallpaper.jpg`,
		Args: cobra.ExactArgs(1),
		PreRun: func(cmd *cobra.Command, args []string) {
			bindFlags(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(app, cmd, args[0], output, preview, cacheRemote)
		},
	}

	// Define flags for the extract command
	cmd.Flags().IntP("max-colours", "c", colour.DefaultMaxColours, "maximum number of colours to report")
	cmd.Flags().Int("cell-size", colour.DefaultCellSize, "grid cell edge length in pixels")
	cmd.Flags().Float64("min-frequency", colour.DefaultMinFrequency, "minimum share in percent a colour needs to be reported")
	cmd.Flags().StringP("format", "f", config.DefaultFormat, "output format (table, hex, json, css)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&preview, "preview", false, "show colour previews in the terminal")
	cmd.Flags().BoolVar(&cacheRemote, "cache-remote", false, "cache remote images on disk before decoding")

	return cmd
}

// runExtract executes the extract command.
func runExtract(app *appState, cmd *cobra.Command, imagePath, output string, preview, cacheRemote bool) error {
	opts := config.ExtractorOptions()
	opts.Logger = app.logger.Named("extract")
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	img, _, err := loadInput(cmd.Context(), app, imagePath, cacheRemote)
	if err != nil {
		return err
	}

	palette, err := colour.ExtractImage(img, opts)
	if err != nil {
		return fmt.Errorf("failed to extract colours: %w", err)
	}
	app.logger.Debug("palette extracted", "colours", palette.Len())

	formatted, err := formatPalette(palette, viper.GetString(config.KeyFormat), preview)
	if err != nil {
		return err
	}

	return writeOutput(cmd, output, formatted)
}

// formatPalette formats the palette according to the specified format.
func formatPalette(palette *colour.Palette, format string, showPreview bool) (string, error) {
	switch format {
	case "table":
		return formatTable(palette, showPreview), nil
	case "hex":
		return formatHex(palette, showPreview), nil
	case "json":
		jsonBytes, err := palette.ToJSON()
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(jsonBytes) + "\n", nil
	case "css":
		stops, err := gradient.Stops(palette)
		if err != nil {
			return "", err
		}
		css, err := gradient.CSS(stops, viper.GetFloat64(config.KeyAngle))
		if err != nil {
			return "", err
		}
		return css + "\n", nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: table, hex, json, css)", format)
	}
}

// formatTable formats the palette as an aligned text table, optionally with
// a frequency strip and per-colour swatches.
func formatTable(palette *colour.Palette, showPreview bool) string {
	if palette.Len() == 0 {
		return "No significant colours found.\n"
	}

	headers := []string{"#", "Hex", "RGB", "Lab", "Share", "Cluster"}
	if showPreview {
		headers = append([]string{""}, headers...)
	}

	t := NewTable(headers)
	offset := 0
	if showPreview {
		offset = 1
	}
	t.SetRightAlign(offset)     // #
	t.SetRightAlign(offset + 4) // Share
	t.SetRightAlign(offset + 5) // Cluster

	for i, c := range palette.Colours {
		row := []string{
			strconv.Itoa(i + 1),
			c.Hex,
			c.RGB.String(),
			fmt.Sprintf("%.1f %.1f %.1f", c.Lab.L, c.Lab.A, c.Lab.B),
			fmt.Sprintf("%.2f%%", c.Frequency),
			strconv.Itoa(c.ClusterSize),
		}
		if showPreview {
			row = append([]string{colour.ColourPreview(c.RGB, swatchWidth)}, row...)
		}
		t.AddRow(row)
	}

	out := t.Render()
	if showPreview {
		out = colour.PreviewStrip(palette.Colours, previewStripWidth) + "\n\n" + out
	}
	return out
}

// formatHex formats the palette as hex colour codes, one per line.
func formatHex(palette *colour.Palette, showPreview bool) string {
	var b strings.Builder
	for _, c := range palette.Colours {
		if showPreview {
			b.WriteString(colour.FormatColourWithPreview(c.RGB, swatchWidth))
		} else {
			b.WriteString(c.Hex)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// writeOutput writes formatted output to the given file, or to the command's
// stdout when path is empty.
func writeOutput(cmd *cobra.Command, path, content string) error {
	if path == "" {
		fmt.Fprint(cmd.OutOrStdout(), content)
		return nil
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
