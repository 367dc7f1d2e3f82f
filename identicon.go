package identicon

import "image"

const (
	// GridSize is the number of cells per grid row and column.
	GridSize = 5

	// CellSize is the width and height of a single grid cell in pixels.
	CellSize = 50

	// ImageSize is the width and height of the generated avatar in pixels.
	ImageSize = GridSize * CellSize
)

// Generate derives the avatar image for the input string. It chains the
// generation stages together: the input is hashed, the digest is expanded
// into the mirrored cell grid, the odd valued cells are dropped and the
// remaining ones are mapped to rectangles and painted with the digest color.
// The same input always yields the same image.
func Generate(input string) *image.NRGBA {
	digest := Sum(input)
	cells := FilterCells(digest.Grid())

	return Rasterize(PixelMap(cells), digest.Color())
}
