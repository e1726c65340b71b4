package zobrist

import (
	"lukechampine.com/frand"

	"github.com/tengen-go/tengen/board"
	"github.com/tengen-go/tengen/move"
)

const bignum = 1<<63 - 2

// generate a zobrist hash for a go position.
// https://en.wikipedia.org/wiki/Zobrist_hashing
type Zobrist struct {
	whiteToMove uint64

	// posTable[i][0] is a white stone at intersection i, [1] a black stone.
	posTable [][2]uint64

	boardDim int
}

func (z *Zobrist) Initialize(boardDim int) {
	z.boardDim = boardDim
	z.posTable = make([][2]uint64, boardDim*boardDim)
	for i := 0; i < boardDim*boardDim; i++ {
		for j := 0; j < 2; j++ {
			z.posTable[i][j] = frand.Uint64n(bignum) + 1
		}
	}
	z.whiteToMove = frand.Uint64n(bignum) + 1
}

func (z *Zobrist) key(p board.Position, s board.Stone) uint64 {
	idx := p.Row*z.boardDim + p.Col
	if s == board.White {
		return z.posTable[idx][0]
	}
	return z.posTable[idx][1]
}

// Hash computes the key for a whole position from scratch.
func (z *Zobrist) Hash(g board.Grid, toMove board.Stone) uint64 {
	key := uint64(0)
	board.Positions(g, func(p board.Position) {
		if s := g.Get(p); s != board.Empty {
			key ^= z.key(p, s)
		}
	})
	if toMove == board.White {
		key ^= z.whiteToMove
	}
	return key
}

// AddMove updates key for a move that has been applied, given the stones it
// captured. Every move flips the side to move.
func (z *Zobrist) AddMove(key uint64, m *move.Move, captured []board.Position) uint64 {
	if m.Action() == move.MoveTypePlace {
		key ^= z.key(m.Position(), m.Color())
		opp := m.Color().Opponent()
		for _, p := range captured {
			key ^= z.key(p, opp)
		}
	}
	key ^= z.whiteToMove
	return key
}

// Flip toggles only the side to move. Consecutive handicap stones are placed
// by the same player, so the game uses this to undo the turn change that
// AddMove applies.
func (z *Zobrist) Flip(key uint64) uint64 {
	return key ^ z.whiteToMove
}
