package zobrist

import (
	"testing"

	"github.com/matryer/is"

	"github.com/tengen-go/tengen/board"
	"github.com/tengen-go/tengen/move"
)

func TestIncrementalMatchesFull(t *testing.T) {
	is := is.New(t)
	z := &Zobrist{}
	z.Initialize(7)

	b := board.SampleBoard(board.SampleKo)
	h := z.Hash(b, board.White)

	// white takes the ko
	m := move.NewPlacementMove(board.White, board.Position{Row: 2, Col: 2})
	captured := []board.Position{{Row: 2, Col: 3}}
	b.Set(m.Position(), board.White)
	b.Set(captured[0], board.Empty)
	h1 := z.AddMove(h, m, captured)
	is.Equal(h1, z.Hash(b, board.Black))
	is.True(h1 != h)

	// black retakes; the position repeats with white to move
	m2 := move.NewPlacementMove(board.Black, board.Position{Row: 2, Col: 3})
	b.Set(m2.Position(), board.Black)
	b.Set(board.Position{Row: 2, Col: 2}, board.Empty)
	h2 := z.AddMove(h1, m2, []board.Position{{Row: 2, Col: 2}})
	is.Equal(h2, h)
}

func TestPassOnlyFlipsTurn(t *testing.T) {
	is := is.New(t)
	z := &Zobrist{}
	z.Initialize(5)
	b := board.MakeBoard(5)
	h := z.Hash(b, board.Black)
	h1 := z.AddMove(h, move.NewPassMove(board.Black), nil)
	is.Equal(h1, z.Hash(b, board.White))
	is.Equal(z.Flip(h1), h)
}
