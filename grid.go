package identicon

import "image/color"

// chunkLen is the number of digest bytes consumed per grid row.
const chunkLen = 3

// Cell pairs a digest derived value with its position in the flattened grid.
// The index is retained across the filtering stage, so a cell always maps
// back to the same grid slot no matter how many of its neighbours are
// discarded.
type Cell struct {
	Value uint8
	Index int
}

// Color extracts the avatar fill color from the first three digest bytes,
// taken as the red, green and blue channels. The alpha channel is always
// fully opaque.
func (d Digest) Color() color.NRGBA {
	return color.NRGBA{R: d[0], G: d[1], B: d[2], A: 0xff}
}

// Grid expands the digest into the flattened cell grid. The digest is
// consumed in chunks of three bytes, each chunk being mirrored around its
// last byte to a full row of five, which gives the avatar its left-right
// symmetry. Trailing bytes which cannot form a complete chunk are discarded.
func (d Digest) Grid() []Cell {
	cells := make([]Cell, 0, len(d)/chunkLen*GridSize)
	for i := 0; i+chunkLen <= len(d); i += chunkLen {
		row := mirrorRow(d[i], d[i+1], d[i+2])
		for _, v := range row {
			cells = append(cells, Cell{Value: v, Index: len(cells)})
		}
	}
	return cells
}

// mirrorRow reflects a three byte chunk into a palindromic row of five.
func mirrorRow(a, b, c uint8) [GridSize]uint8 {
	return [GridSize]uint8{a, b, c, b, a}
}

// FilterCells returns the cells to be painted, which are the ones holding an
// even value. The relative order and the grid indices of the kept cells are
// left untouched.
func FilterCells(cells []Cell) []Cell {
	filtered := make([]Cell, 0, len(cells))
	for _, c := range cells {
		if c.Value%2 == 0 {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
