package identicon

import (
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
)

// encodeImg encodes the generated image to a destination of type io.Writer.
// When the destination is a file the encoder is picked based on the file
// extension, defaulting to PNG for extensionless files. Any other writer,
// pipes included, receives PNG encoded output.
func encodeImg(w io.Writer, img *image.NRGBA) error {
	switch w := w.(type) {
	case *os.File:
		ext := filepath.Ext(w.Name())
		switch ext {
		case "", ".png":
			return png.Encode(w, img)
		case ".jpg", ".jpeg":
			return jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
		case ".bmp":
			return bmp.Encode(w, img)
		default:
			return errors.New("unsupported image format")
		}
	default:
		return png.Encode(w, img)
	}
}
