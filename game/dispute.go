package game

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/tengen-go/tengen/board"
	"github.com/tengen-go/tengen/move"
)

func (g *Game) enterDispute() {
	g.phase = PhaseDispute
	g.awaitingConfirm = false
	g.pendingDead = board.Group{}
	log.Info().Str("onturn", g.colorOnTurn().String()).Msg("both players passed; marking dead stones")
}

// MarkGroupDead proposes that the opponent group containing (row, col) is
// dead. Only the player on turn may propose, and only during the dispute.
// The opponent then answers with ConfirmDead; until then nothing else is
// accepted. It returns the stones of the proposed group.
func (g *Game) MarkGroupDead(row, col int) ([]board.Position, error) {
	if g.phase != PhaseDispute {
		return nil, fmt.Errorf("%w: dead stones can only be marked in a dispute, not during %v",
			ErrWrongPhase, g.phase)
	}
	if g.awaitingConfirm {
		return nil, fmt.Errorf("%w: a dead-stone proposal is waiting for an answer", ErrWrongPhase)
	}
	pos := board.Position{Row: row, Col: col}
	if !g.board.InBounds(pos) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPosition, pos)
	}
	grp := board.FindGroup(g.board, pos)
	if grp.Empty() {
		return nil, fmt.Errorf("%w: no stone at %v", ErrIllegalMove, pos)
	}
	marker := g.colorOnTurn()
	if grp.Color != marker.Opponent() {
		return nil, fmt.Errorf("%w: %v can only mark %v stones dead", ErrIllegalMove,
			marker, marker.Opponent())
	}
	g.pendingDead = grp
	g.marker = g.onturn
	g.awaitingConfirm = true
	g.history = append(g.history, move.NewBookkeepingMove(move.MoveTypeMarkDead, marker, pos))
	log.Debug().Str("by", marker.String()).Int("stones", grp.Size()).Msg("marked-dead")

	stones := make([]board.Position, len(grp.Stones))
	copy(stones, grp.Stones)
	return stones, nil
}

// ConfirmDead answers the pending dead-stone proposal. Accepting removes
// the group and credits its stones to the proposer as prisoners. Refusing
// drops the proposal and returns to normal play with the board as it is and
// the proposer still on turn, so the disagreement can be settled by
// playing on.
func (g *Game) ConfirmDead(accept bool) (State, error) {
	if !g.awaitingConfirm {
		return g.State(), fmt.Errorf("%w: there is no dead-stone proposal to answer", ErrWrongPhase)
	}
	grp := g.pendingDead
	anchor := grp.Stones[0]
	answerer := g.players[otherPlayer(g.marker)].color
	g.awaitingConfirm = false
	g.pendingDead = board.Group{}
	g.consecutivePasses = 0

	if accept {
		board.RemoveGroup(g.board, grp)
		g.AddPrisoners(g.players[g.marker].color, grp.Size())
		g.history = append(g.history,
			move.NewBookkeepingMove(move.MoveTypeConfirmDead, answerer, anchor))
		log.Debug().Int("stones", grp.Size()).Msg("dead stones removed")
	} else {
		g.phase = PhasePlaying
		g.history = append(g.history,
			move.NewBookkeepingMove(move.MoveTypeRefuseDead, answerer, anchor))
		log.Info().Msg("dead stones refused; back to play")
	}
	g.onturn = g.marker
	g.hash = g.zobrist.Hash(g.board, g.colorOnTurn())
	return g.State(), nil
}

// AbandonDispute is for when the players cannot agree on dead stones. The
// game ends and the board is counted as it stands.
func (g *Game) AbandonDispute() (State, error) {
	if g.phase != PhaseDispute {
		return g.State(), fmt.Errorf("%w: no dispute in progress", ErrWrongPhase)
	}
	g.awaitingConfirm = false
	g.pendingDead = board.Group{}
	log.Info().Msg("dispute not successful")
	g.endGame()
	return g.State(), nil
}

// PendingDead returns the stones of the proposal awaiting an answer, if
// any.
func (g *Game) PendingDead() []board.Position {
	return g.pendingDead.Stones
}
