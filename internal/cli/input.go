package cli

import (
	"context"
	"fmt"
	"image"

	imageutil "github.com/SaiGuruInukurthi/Pallet-extractor-Gradient-generator/internal/image"
	"github.com/SaiGuruInukurthi/Pallet-extractor-Gradient-generator/internal/util/imagecache"
)

// loadInput resolves and decodes the image argument shared by the extract and
// gradient commands. A directory resolves to a randomly selected member
// image, an HTTPS URL is fetched (optionally through the on-disk cache), and
// a plain file is decoded directly.
func loadInput(ctx context.Context, app *appState, path string, cacheRemote bool) (image.Image, string, error) {
	if err := imageutil.ValidateImagePath(path); err != nil {
		return nil, "", fmt.Errorf("invalid image path: %w", err)
	}

	resolved, err := imageutil.ResolveImagePath(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to resolve image path: %w", err)
	}
	if resolved != path {
		app.logger.Debug("selected image from directory", "dir", path, "image", resolved)
	}

	if cacheRemote && imageutil.IsURL(resolved) {
		cached, err := imagecache.DownloadAndCache(ctx, resolved, imagecache.CacheOptions{})
		if err != nil {
			return nil, "", fmt.Errorf("failed to cache remote image: %w", err)
		}
		app.logger.Debug("using cached remote image", "url", resolved, "file", cached)
		resolved = cached
	}

	img, err := app.loader.Load(resolved)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load image: %w", err)
	}

	bounds := img.Bounds()
	app.logger.Debug("image loaded", "path", resolved, "width", bounds.Dx(), "height", bounds.Dy())

	return img, resolved, nil
}
