// Package rules decides whether a stone may be placed and resolves the
// captures it makes.
package rules

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/tengen-go/tengen/board"
	"github.com/tengen-go/tengen/move"
)

var (
	ErrInvalidPosition = errors.New("position is off the board")
	ErrOccupied        = errors.New("intersection is occupied")
	ErrIllegalMove     = errors.New("illegal move")
	// ErrSuicide and ErrKo are both ErrIllegalMove for errors.Is.
	ErrSuicide = fmt.Errorf("%w: suicide", ErrIllegalMove)
	ErrKo      = fmt.Errorf("%w: ko", ErrIllegalMove)
)

// A Verdict is the outcome of checking a placement.
type Verdict struct {
	// IsKo is set when the move captures exactly one stone and the opponent
	// could immediately recapture it to restore the current position.
	IsKo bool
	// Captures are the opponent stones the move would remove.
	Captures []board.Position
}

// Check validates placing m on b without touching b. Checks run in order:
// bounds, occupancy, suicide, ko. koActive is whether the previous move took
// a ko; only then is a ko move rejected.
func Check(b *board.Board, m *move.Move, koActive bool) (Verdict, error) {
	pos := m.Position()
	if !b.InBounds(pos) {
		return Verdict{}, fmt.Errorf("%w: %v", ErrInvalidPosition, pos)
	}
	if b.Get(pos) != board.Empty {
		return Verdict{}, fmt.Errorf("%w: %v", ErrOccupied, pos)
	}
	color := m.Color()
	if color != board.Black && color != board.White {
		return Verdict{}, fmt.Errorf("%w: no colour to play", ErrIllegalMove)
	}

	o := board.NewOverlay(b)
	o.Set(pos, color)
	captures := removeDeadNeighbors(o, pos, color.Opponent())

	if len(captures) == 0 {
		own := board.FindGroup(o, pos)
		if !board.HasLiberties(o, own) {
			log.Debug().Int("row", pos.Row).Int("col", pos.Col).Msg("suicide")
			return Verdict{}, fmt.Errorf("%w at %v", ErrSuicide, pos)
		}
	}

	v := Verdict{Captures: captures}
	if len(captures) == 1 {
		// Let the opponent retake on the freed point. If that brings back
		// the position from before this move, it's a ko.
		freed := captures[0]
		o.Set(freed, color.Opponent())
		removeDeadNeighbors(o, freed, color)
		v.IsKo = o.SameAsBase()
	}
	if v.IsKo && koActive {
		log.Debug().Int("row", pos.Row).Int("col", pos.Col).Msg("ko-retake")
		return Verdict{}, fmt.Errorf("%w at %v", ErrKo, pos)
	}
	return v, nil
}

// IsLegal is Check without the details.
func IsLegal(b *board.Board, m *move.Move, koActive bool) bool {
	_, err := Check(b, m, koActive)
	return err == nil
}

// removeDeadNeighbors removes every group of color adjacent to pos that has
// no liberties left, and returns the removed positions. Each group is
// removed before the next neighbour is looked at, so a group touching pos
// on two sides is only counted once.
func removeDeadNeighbors(g board.MutableGrid, pos board.Position, color board.Stone) []board.Position {
	removed := []board.Position{}
	for _, nb := range board.Neighbors(g, pos) {
		if g.Get(nb) != color {
			continue
		}
		grp := board.FindGroup(g, nb)
		if board.HasLiberties(g, grp) {
			continue
		}
		board.RemoveGroup(g, grp)
		removed = append(removed, grp.Stones...)
	}
	return removed
}
