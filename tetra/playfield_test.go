package tetra

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fill(f *Playfield, x, y int) {
	f.cells[y][x] = KindI.Token()
}

func fillRow(f *Playfield, y int) {
	for x := 0; x < f.Width; x++ {
		f.cells[y][x] = KindI.Token()
	}
}

func countFilled(f *Playfield) int {
	n := 0
	for _, row := range f.cells {
		for _, c := range row {
			if c != 0 {
				n++
			}
		}
	}
	return n
}

func TestIsCollision(t *testing.T) {
	t.Run("empty board", func(t *testing.T) {
		f := NewPlayfield(10, 20)
		p := NewPiece(KindT, f)
		assert.False(t, f.IsCollision(p))
	})

	t.Run("side walls", func(t *testing.T) {
		f := NewPlayfield(10, 20)
		p := NewPiece(KindT, f)
		p.X = -1
		assert.True(t, f.IsCollision(p))
		p.X = f.Width - 2
		assert.True(t, f.IsCollision(p))
	})

	t.Run("bottom bound", func(t *testing.T) {
		f := NewPlayfield(10, 20)
		p := NewPiece(KindT, f)
		p.Y = f.Height - 1
		assert.True(t, f.IsCollision(p))
	})

	t.Run("negative rows never collide", func(t *testing.T) {
		f := NewPlayfield(10, 20)
		p := NewPiece(KindT, f)
		p.Y = -2
		assert.False(t, f.IsCollision(p))
	})

	t.Run("overlap with locked cell", func(t *testing.T) {
		f := NewPlayfield(10, 20)
		fill(f, 4, 1)
		p := NewPiece(KindT, f)
		assert.True(t, f.IsCollision(p))
	})
}

func TestLockAndBoardClear(t *testing.T) {
	f := NewPlayfield(10, 20)
	assert.True(t, f.IsBoardClear())

	p := NewPiece(KindT, f)
	p.Y = 18
	f.Lock(p)

	assert.False(t, f.IsBoardClear())
	assert.Equal(t, 4, countFilled(f))
	for _, c := range p.Cells() {
		assert.Equal(t, KindT.Token(), f.CellAt(c.X, c.Y))
	}
}

func TestFindFullRowsBottomToTop(t *testing.T) {
	f := NewPlayfield(10, 20)
	fillRow(f, 5)
	fillRow(f, 12)
	assert.Equal(t, []int{12, 5}, f.FindFullRows())

	f.cells[12][0] = 0
	assert.Equal(t, []int{5}, f.FindFullRows())
}

func TestClearRowsBatch(t *testing.T) {
	f := NewPlayfield(10, 20)
	fillRow(f, 3)
	fillRow(f, 5)
	fillRow(f, 7)

	// Markers shift down by the number of cleared rows below them.
	fill(f, 0, 2)  // above all three -> lands on row 5
	fill(f, 1, 4)  // above rows 5 and 7 -> lands on row 6
	fill(f, 2, 6)  // above row 7 only -> lands on row 7
	fill(f, 3, 19) // below all three -> stays put

	f.ClearRows([]int{7, 5, 3})

	assert.Equal(t, 4, countFilled(f))
	assert.NotZero(t, f.CellAt(0, 5))
	assert.NotZero(t, f.CellAt(1, 6))
	assert.NotZero(t, f.CellAt(2, 7))
	assert.NotZero(t, f.CellAt(3, 19))
	for y := 0; y < 3; y++ {
		for x := 0; x < f.Width; x++ {
			assert.Zero(t, f.CellAt(x, y))
		}
	}
}

func TestCellFilledOutOfBounds(t *testing.T) {
	f := NewPlayfield(10, 20)
	assert.True(t, f.CellFilled(-1, 0))
	assert.True(t, f.CellFilled(10, 0))
	assert.True(t, f.CellFilled(0, -1))
	assert.True(t, f.CellFilled(0, 20))
	assert.False(t, f.CellFilled(0, 0))
}

func TestColumnHeightsAndHoles(t *testing.T) {
	f := NewPlayfield(10, 20)
	fill(f, 0, 19)
	fill(f, 0, 17)
	fill(f, 2, 10)

	heights := f.ColumnHeights()
	assert.Equal(t, 3, heights[0])
	assert.Equal(t, 0, heights[1])
	assert.Equal(t, 10, heights[2])

	// One covered gap in column 0, nine below the block in column 2.
	assert.Equal(t, 10, f.Holes())
}

func TestCloneIsIndependent(t *testing.T) {
	f := NewPlayfield(10, 20)
	fill(f, 4, 19)

	c := f.Clone()
	c.cells[19][4] = 0
	fill(c, 0, 0)

	assert.NotZero(t, f.CellAt(4, 19))
	assert.Zero(t, f.CellAt(0, 0))
	assert.NotEqual(t, f.hash(), c.hash())
}
