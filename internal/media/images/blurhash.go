// Package images decodes asset images and encodes finished cards.
package images

import (
	"fmt"
	"image"

	"github.com/bbrks/go-blurhash"
	"github.com/disintegration/imaging"
)

// blurHashSize is the target size for BlurHash computation.
// A small thumbnail produces nearly identical hashes in a fraction of the time.
const blurHashSize = 64

// ComputeBlurHash generates a BlurHash placeholder for img.
// Uses 4x3 components, which keeps the hash around 20-30 characters.
func ComputeBlurHash(img image.Image) (string, error) {
	if img == nil || img.Bounds().Empty() {
		return "", fmt.Errorf("compute blurhash: empty image")
	}

	hash, err := blurhash.Encode(4, 3, thumbnailForBlurHash(img))
	if err != nil {
		return "", fmt.Errorf("encode blurhash: %w", err)
	}
	return hash, nil
}

// thumbnailForBlurHash downsizes img to fit blurHashSize, keeping aspect ratio.
// Images already small enough are used directly.
func thumbnailForBlurHash(img image.Image) image.Image {
	b := img.Bounds()
	if b.Dx() <= blurHashSize && b.Dy() <= blurHashSize {
		return img
	}
	return imaging.Fit(img, blurHashSize, blurHashSize, imaging.Box)
}
