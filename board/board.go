package board

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

const (
	MinDim = 2
	MaxDim = 25
	// DefaultDim is the size of the board when nothing else is configured.
	DefaultDim = 7
)

var ErrBadDimension = errors.New("board dimension out of range")

// Grid is the read-only view of a board. Both Board and Overlay satisfy it,
// so group analysis and scoring can run on hypothetical positions.
type Grid interface {
	Dim() int
	Get(p Position) Stone
	InBounds(p Position) bool
}

// MutableGrid is a Grid that can also have stones placed and removed.
type MutableGrid interface {
	Grid
	Set(p Position, s Stone)
}

// A Board is a square N x N grid of intersections. Every in-bounds position
// maps to exactly one cell of the backing slice.
type Board struct {
	dim   int
	cells []Stone
}

// New creates an empty board of the given dimension.
func New(dim int) (*Board, error) {
	if dim < MinDim || dim > MaxDim {
		return nil, fmt.Errorf("%w: %d (must be %d-%d)", ErrBadDimension, dim, MinDim, MaxDim)
	}
	return &Board{dim: dim, cells: make([]Stone, dim*dim)}, nil
}

// MakeBoard is New for callers that have already validated the dimension.
func MakeBoard(dim int) *Board {
	b, err := New(dim)
	if err != nil {
		panic(err)
	}
	return b
}

func (b *Board) Dim() int {
	return b.dim
}

func (b *Board) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < b.dim && p.Col >= 0 && p.Col < b.dim
}

func (b *Board) idx(p Position) int {
	return p.Row*b.dim + p.Col
}

// Get returns the stone at p. Out-of-bounds positions read as Empty; callers
// that care must check InBounds first.
func (b *Board) Get(p Position) Stone {
	if !b.InBounds(p) {
		return Empty
	}
	return b.cells[b.idx(p)]
}

// Set writes exactly one intersection. It does no rule checking.
func (b *Board) Set(p Position, s Stone) {
	if !b.InBounds(p) {
		log.Error().Int("row", p.Row).Int("col", p.Col).Msg("set-out-of-bounds")
		return
	}
	b.cells[b.idx(p)] = s
}

func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i] = Empty
	}
}

func (b *Board) Copy() *Board {
	nb := &Board{dim: b.dim, cells: make([]Stone, len(b.cells))}
	copy(nb.cells, b.cells)
	return nb
}

// CopyFrom copies the contents of another board of the same size into b
// without allocating.
func (b *Board) CopyFrom(other *Board) {
	if len(b.cells) != len(other.cells) {
		b.dim = other.dim
		b.cells = make([]Stone, len(other.cells))
	}
	copy(b.cells, other.cells)
}

func (b *Board) Equals(other *Board) bool {
	if b.dim != other.dim {
		log.Debug().Int("dim", b.dim).Int("otherdim", other.dim).Msg("dims not equal")
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Count returns how many intersections hold the given stone.
func (b *Board) Count(s Stone) int {
	ct := 0
	for _, c := range b.cells {
		if c == s {
			ct++
		}
	}
	return ct
}

// Snapshot returns a row-major copy of the board that the caller owns.
func (b *Board) Snapshot() [][]Stone {
	rows := make([][]Stone, b.dim)
	for r := 0; r < b.dim; r++ {
		rows[r] = make([]Stone, b.dim)
		copy(rows[r], b.cells[r*b.dim:(r+1)*b.dim])
	}
	return rows
}

// Positions calls fn for every intersection in row-major order.
func Positions(g Grid, fn func(p Position)) {
	n := g.Dim()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			fn(Position{r, c})
		}
	}
}

// Neighbors returns the in-bounds orthogonal neighbours of p.
func Neighbors(g Grid, p Position) []Position {
	nbs := make([]Position, 0, 4)
	for _, a := range p.adjacent() {
		if g.InBounds(a) {
			nbs = append(nbs, a)
		}
	}
	return nbs
}
