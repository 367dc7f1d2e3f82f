package identicon

import "image"

// PixelMap translates grid cells to the pixel rectangles they cover on the
// output canvas. Each cell index is split into its column and row position
// and scaled up by the cell size, producing axis aligned, non overlapping
// squares in left to right, top to bottom order.
func PixelMap(cells []Cell) []image.Rectangle {
	rects := make([]image.Rectangle, 0, len(cells))
	for _, c := range cells {
		col, row := c.Index%GridSize, c.Index/GridSize
		x, y := col*CellSize, row*CellSize
		rects = append(rects, image.Rect(x, y, x+CellSize, y+CellSize))
	}
	return rects
}
