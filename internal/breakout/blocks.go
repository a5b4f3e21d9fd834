package breakout

import (
	"fmt"

	"github.com/chamale-rac/breakout/internal/core"
)

// Block is one destructible cell of the grid. Destroyed blocks flip
// Active to false; the slot itself is never removed.
type Block struct {
	Bounds core.RectF
	Active bool
}

// BlockArena is the fixed-capacity block grid. The backing storage is
// allocated once at game construction and re-seeded in place on every
// restart; the slot count never changes while the game runs.
type BlockArena struct {
	blocks []Block
	rows   int
	cols   int
}

// NewBlockArena lays out a rows x cols grid across the field width.
// Block width is derived from the field width, the column count, and
// the gap between blocks. Construction is the one fallible setup step:
// a grid with no slots cannot host a game.
func NewBlockArena(rows, cols int, fieldW, top, height, gap float64) (*BlockArena, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("block grid must have positive dimensions, got %dx%d", rows, cols)
	}

	blockW := (fieldW - float64(cols+1)*gap) / float64(cols)
	if blockW <= 0 {
		return nil, fmt.Errorf("field width %v leaves no room for %d block columns", fieldW, cols)
	}

	a := &BlockArena{
		blocks: make([]Block, rows*cols),
		rows:   rows,
		cols:   cols,
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x := gap + float64(col)*(blockW+gap)
			y := top + float64(row)*(height+gap)
			a.blocks[row*cols+col] = Block{
				Bounds: core.NewRectF(x, y, blockW, height),
			}
		}
	}

	a.Seed()
	return a, nil
}

// Seed reactivates every block slot. Bounds are laid out once at
// construction; restarting only flips the active flags back on.
func (a *BlockArena) Seed() {
	for i := range a.blocks {
		a.blocks[i].Active = true
	}
}

// Len returns the total number of block slots.
func (a *BlockArena) Len() int {
	return len(a.blocks)
}

// At returns the block at slot i for inspection or mutation.
func (a *BlockArena) At(i int) *Block {
	return &a.blocks[i]
}

// Rows returns the grid row count.
func (a *BlockArena) Rows() int {
	return a.rows
}

// Cols returns the grid column count.
func (a *BlockArena) Cols() int {
	return a.cols
}

// ActiveCount returns the number of blocks still standing.
func (a *BlockArena) ActiveCount() int {
	count := 0
	for i := range a.blocks {
		if a.blocks[i].Active {
			count++
		}
	}
	return count
}
