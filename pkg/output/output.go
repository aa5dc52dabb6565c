// Package output persists finished renders: PNG files on disk, a preview
// thumbnail, and an optional S3 upload.
package output

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

// SavePNG writes the rendered image to path as a lossless PNG
func SavePNG(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("saving render to %s: %w", path, err)
	}
	return nil
}

// SaveThumbnail writes a downscaled preview of the render to path. Height
// is derived from the aspect ratio.
func SaveThumbnail(img image.Image, path string, width uint) error {
	thumb := resize.Resize(width, 0, img, resize.Lanczos3)
	if err := imaging.Save(thumb, path); err != nil {
		return fmt.Errorf("saving thumbnail to %s: %w", path, err)
	}
	return nil
}
