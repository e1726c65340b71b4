package rules

import (
	"github.com/rs/zerolog/log"

	"github.com/tengen-go/tengen/board"
	"github.com/tengen-go/tengen/move"
)

// PrisonerCounter is credited with the stones a player captures.
type PrisonerCounter interface {
	AddPrisoners(capturer board.Stone, n int)
}

// ApplyCapture removes the opponent groups that m left without liberties
// and credits them to the mover. It must only be called after Check
// accepted m and the stone has been placed on b. The returned slice is
// empty, not nil, when nothing was captured.
func ApplyCapture(b *board.Board, m *move.Move, prisoners PrisonerCounter) []board.Position {
	captured := removeDeadNeighbors(b, m.Position(), m.Color().Opponent())
	if len(captured) > 0 {
		prisoners.AddPrisoners(m.Color(), len(captured))
		log.Debug().Str("by", m.Color().String()).Int("stones", len(captured)).
			Msg("captured")
	}
	m.SetCaptured(len(captured))
	return captured
}
