package identicon

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigest_ColorIsTakenFromFirstThreeBytes(t *testing.T) {
	assert := assert.New(t)

	d := Sum("blake")
	assert.Equal(color.NRGBA{R: 58, G: 164, B: 158, A: 0xff}, d.Color())

	d = Digest{0x01, 0x02, 0x03}
	assert.Equal(color.NRGBA{R: 0x01, G: 0x02, B: 0x03, A: 0xff}, d.Color())
}

func TestDigest_GridHoldsAllCells(t *testing.T) {
	assert := assert.New(t)

	cells := Sum("blake").Grid()
	assert.Len(cells, GridSize*GridSize)

	// The index of each cell must match its position in the flattened grid.
	for i, c := range cells {
		assert.Equal(i, c.Index)
	}
}

func TestDigest_GridRowsAreMirrored(t *testing.T) {
	assert := assert.New(t)

	d := Sum("jane@example.com")
	cells := d.Grid()

	for row := 0; row < GridSize; row++ {
		first := cells[row*GridSize : (row+1)*GridSize]

		// The first three cells carry the digest bytes of the chunk.
		assert.Equal(d[row*chunkLen], first[0].Value)
		assert.Equal(d[row*chunkLen+1], first[1].Value)
		assert.Equal(d[row*chunkLen+2], first[2].Value)

		// The last two mirror the first two.
		assert.Equal(first[0].Value, first[4].Value)
		assert.Equal(first[1].Value, first[3].Value)
	}
}

func TestDigest_GridFirstRowOfKnownInput(t *testing.T) {
	cells := Sum("blake").Grid()

	expected := []Cell{
		{Value: 58, Index: 0},
		{Value: 164, Index: 1},
		{Value: 158, Index: 2},
		{Value: 164, Index: 3},
		{Value: 58, Index: 4},
	}
	assert.Equal(t, expected, cells[:GridSize])
}

func TestDigest_GridDiscardsTrailingByte(t *testing.T) {
	d1 := Sum("blake")
	d2 := d1
	d2[len(d2)-1]++

	// The last digest byte cannot form a complete chunk,
	// so it must not influence the grid.
	assert.Equal(t, d1.Grid(), d2.Grid())
}

func TestFilterCells_KeepsEvenValuesOnly(t *testing.T) {
	assert := assert.New(t)

	cells := Sum("blake").Grid()
	filtered := FilterCells(cells)

	assert.NotEmpty(filtered)
	for _, c := range filtered {
		assert.Zero(c.Value % 2)
	}
	assert.Equal(Cell{Value: 58, Index: 0}, filtered[0])
}

func TestFilterCells_PreservesOrderAndIndices(t *testing.T) {
	cells := []Cell{
		{Value: 1, Index: 0},
		{Value: 2, Index: 1},
		{Value: 4, Index: 2},
		{Value: 7, Index: 3},
	}

	expected := []Cell{
		{Value: 2, Index: 1},
		{Value: 4, Index: 2},
	}
	assert.Equal(t, expected, FilterCells(cells))
}

func TestFilterCells_EmptyInput(t *testing.T) {
	assert.Empty(t, FilterCells(nil))
}
