package identicon

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
)

// background is the canvas color the cell rectangles are painted over.
// Avatars are meant to be embedded anywhere, so the background is opaque
// white rather than transparent.
var background = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// Rasterize paints the rectangles with the fill color onto a new square
// canvas and returns the resulting image. Rectangles outside the canvas
// bounds are clipped, overlapping ones simply paint the same pixels twice.
func Rasterize(rects []image.Rectangle, fill color.NRGBA) *image.NRGBA {
	canvas := imaging.New(ImageSize, ImageSize, background)
	for _, r := range rects {
		draw.Draw(canvas, r, image.NewUniform(fill), image.Point{}, draw.Src)
	}
	return canvas
}
