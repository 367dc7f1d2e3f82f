package identicon

import (
	"bytes"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/bmp"
)

func TestProcess_EncodesGeneratedImageAsPNG(t *testing.T) {
	assert := assert.New(t)

	p := &Processor{}
	var buf bytes.Buffer

	err := p.Process("blake", &buf)
	assert.NoError(err)

	img, err := png.Decode(&buf)
	assert.NoError(err)
	assert.Equal(ImageSize, img.Bounds().Dx())
	assert.Equal(ImageSize, img.Bounds().Dy())

	r, g, b, _ := img.At(10, 10).RGBA()
	assert.Equal(color.NRGBA{R: 58, G: 164, B: 158, A: 0xff},
		color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 0xff})
}

func TestProcess_OutputIsByteIdentical(t *testing.T) {
	assert := assert.New(t)

	p := &Processor{}
	var first, second bytes.Buffer

	assert.NoError(p.Process("jane@example.com", &first))
	assert.NoError(p.Process("jane@example.com", &second))

	assert.True(bytes.Equal(first.Bytes(), second.Bytes()))
}

func TestProcess_FileDestinationFormats(t *testing.T) {
	assert := assert.New(t)

	p := &Processor{}
	dir := t.TempDir()

	// The encoder is picked based on the destination file extension.
	for _, name := range []string{"avatar.png", "avatar.jpeg", "avatar.bmp"} {
		dst := filepath.Join(dir, name)
		f, err := os.Create(dst)
		assert.NoError(err)

		assert.NoError(p.Process("blake", f))
		assert.NoError(f.Close())

		out, err := os.Open(dst)
		assert.NoError(err)

		switch filepath.Ext(name) {
		case ".png":
			img, err := png.Decode(out)
			assert.NoError(err)
			assert.Equal(ImageSize, img.Bounds().Dx())
		case ".jpeg":
			img, err := jpeg.Decode(out)
			assert.NoError(err)
			assert.Equal(ImageSize, img.Bounds().Dx())
		case ".bmp":
			img, err := bmp.Decode(out)
			assert.NoError(err)
			assert.Equal(ImageSize, img.Bounds().Dx())
		}
		assert.NoError(out.Close())
	}
}

func TestProcess_UnsupportedFileFormat(t *testing.T) {
	assert := assert.New(t)

	p := &Processor{}
	f, err := os.Create(filepath.Join(t.TempDir(), "avatar.tiff"))
	assert.NoError(err)
	defer f.Close()

	assert.Error(p.Process("blake", f))
}
