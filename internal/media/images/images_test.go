package images

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 255 / w), G: uint8(y * 255 / h), B: 0x80, A: 0xff})
		}
	}
	return img
}

func TestComputeBlurHash(t *testing.T) {
	t.Run("hashes a large image through a thumbnail", func(t *testing.T) {
		hash, err := ComputeBlurHash(gradient(1200, 700))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(hash), 20)
	})

	t.Run("same image gives same hash", func(t *testing.T) {
		a, err := ComputeBlurHash(gradient(300, 200))
		require.NoError(t, err)
		b, err := ComputeBlurHash(gradient(300, 200))
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("rejects empty image", func(t *testing.T) {
		_, err := ComputeBlurHash(image.NewNRGBA(image.Rect(0, 0, 0, 0)))
		assert.Error(t, err)
	})
}

func TestThumbnailForBlurHash(t *testing.T) {
	small := gradient(40, 30)
	assert.Same(t, image.Image(small), thumbnailForBlurHash(small))

	thumb := thumbnailForBlurHash(gradient(1620, 810))
	assert.Equal(t, image.Pt(64, 32), thumb.Bounds().Size())
}

func TestEncodePNG_RoundTrip(t *testing.T) {
	src := gradient(32, 16)

	data, err := EncodePNG(src)
	require.NoError(t, err)

	decoded, err := Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, src.Bounds(), decoded.Bounds())
	assert.Equal(t, src.At(5, 7), color.NRGBAModel.Convert(decoded.At(5, 7)))
}

func TestDecodeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "icon.jpg")

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, imaging.New(20, 10, color.White), nil))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	img, err := DecodeFile(path)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(20, 10), img.Bounds().Size())

	_, err = DecodeFile(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "junk.png"), []byte("not an image"), 0o644))
	_, err = DecodeFile(filepath.Join(dir, "junk.png"))
	assert.Error(t, err)
}
