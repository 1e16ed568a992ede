// Pallet - dominant colour palettes and gradients from images
//
// Pallet extracts the dominant colours of an image with exact per-pixel
// counting and perceptual merging, and renders them as palettes, CSS
// gradients, and wallpapers.
package main

import (
	"os"

	"github.com/SaiGuruInukurthi/Pallet-extractor-Gradient-generator/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
