package game

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/tengen-go/tengen/board"
)

var disputeRows = []string{
	"..X..",
	".OX..",
	"XXX..",
	"...OO",
	"...O.",
}

func disputeGame(t *testing.T) *Game {
	t.Helper()
	is := is.New(t)
	g := newTestGame(t, 5, DefaultHandicap())
	setPosition(t, g, disputeRows, board.Black)
	_, err := g.Pass()
	is.NoErr(err)
	st, err := g.Pass()
	is.NoErr(err)
	is.Equal(st.Phase, PhaseDispute)
	is.Equal(st.OnTurn, board.Black)
	return g
}

func TestMarkOnlyInDispute(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t, 5, DefaultHandicap())
	setPosition(t, g, disputeRows, board.Black)
	_, err := g.MarkGroupDead(1, 1)
	is.True(errors.Is(err, ErrWrongPhase))
	_, err = g.ConfirmDead(true)
	is.True(errors.Is(err, ErrWrongPhase))
	_, err = g.AbandonDispute()
	is.True(errors.Is(err, ErrWrongPhase))
}

func TestMarkBadTargets(t *testing.T) {
	is := is.New(t)
	g := disputeGame(t)
	_, err := g.MarkGroupDead(7, 0)
	is.True(errors.Is(err, ErrInvalidPosition))
	_, err = g.MarkGroupDead(0, 0)
	is.True(errors.Is(err, ErrIllegalMove))
	// own stones
	_, err = g.MarkGroupDead(2, 2)
	is.True(errors.Is(err, ErrIllegalMove))
	is.True(!g.State().AwaitingConfirmation)
}

func TestMarkAndConfirm(t *testing.T) {
	is := is.New(t)
	g := disputeGame(t)

	stones, err := g.MarkGroupDead(1, 1)
	is.NoErr(err)
	is.Equal(stones, []board.Position{{Row: 1, Col: 1}})
	is.True(g.State().AwaitingConfirmation)
	is.Equal(g.PendingDead(), stones)

	// nothing else goes while the proposal is open
	_, err = g.PlaceStone(0, 0)
	is.True(errors.Is(err, ErrWrongPhase))
	_, err = g.Pass()
	is.True(errors.Is(err, ErrWrongPhase))
	_, err = g.MarkGroupDead(3, 3)
	is.True(errors.Is(err, ErrWrongPhase))

	st, err := g.ConfirmDead(true)
	is.NoErr(err)
	is.Equal(st.Phase, PhaseDispute)
	is.True(!st.AwaitingConfirmation)
	is.Equal(st.OnTurn, board.Black)
	is.Equal(g.Board().Get(board.Position{Row: 1, Col: 1}), board.Empty)
	is.Equal(g.Prisoners(board.Black), 1)

	_, err = g.Pass()
	is.NoErr(err)
	st, err = g.Pass()
	is.NoErr(err)
	is.Equal(st.Phase, PhaseEnded)

	s1, s2, err := g.CurrentScores()
	is.NoErr(err)
	// white: 1 point at the corner, less the stone black took, plus komi
	is.Equal(s1, 6.5)
	// black: the four-point corner
	is.Equal(s2, 4.0)
	is.Equal(st.Winner, board.White)

	bd, err := g.ScoreBreakdown()
	is.NoErr(err)
	is.Equal(bd.Player2.Territory, 4)
	is.Equal(bd.Player2.Prisoners, 1)
}

func TestRefuseKeepsBoardAndPrisoners(t *testing.T) {
	is := is.New(t)
	g := disputeGame(t)

	_, err := g.MarkGroupDead(1, 1)
	is.NoErr(err)
	_, err = g.ConfirmDead(true)
	is.NoErr(err)
	is.Equal(g.Prisoners(board.Black), 1)
	before := g.Board().Copy()

	stones, err := g.MarkGroupDead(3, 3)
	is.NoErr(err)
	is.Equal(len(stones), 3)

	st, err := g.ConfirmDead(false)
	is.NoErr(err)
	is.Equal(st.Phase, PhasePlaying)
	is.Equal(st.OnTurn, board.Black)
	is.True(!st.AwaitingConfirmation)
	is.Equal(len(g.PendingDead()), 0)
	is.True(g.Board().Equals(before))
	// the accepted removal stands
	is.Equal(g.Board().Get(board.Position{Row: 1, Col: 1}), board.Empty)
	is.Equal(g.Prisoners(board.Black), 1)
	is.Equal(g.Board().Get(board.Position{Row: 3, Col: 3}), board.White)

	// back to normal play
	res, err := g.PlaceStone(0, 0)
	is.NoErr(err)
	is.True(res.Accepted)
	is.Equal(g.Prisoners(board.Black), 1)
}

func TestAbandonDispute(t *testing.T) {
	is := is.New(t)
	g := disputeGame(t)
	_, err := g.MarkGroupDead(1, 1)
	is.NoErr(err)
	st, err := g.AbandonDispute()
	is.NoErr(err)
	is.Equal(st.Phase, PhaseEnded)
	is.True(!st.AwaitingConfirmation)
	// the white stone was never removed, so the corner is neutral
	bd, err := g.ScoreBreakdown()
	is.NoErr(err)
	is.Equal(bd.Player2.Territory, 0)
	is.Equal(g.Board().Get(board.Position{Row: 1, Col: 1}), board.White)
}

func TestResignDuringDispute(t *testing.T) {
	is := is.New(t)
	g := disputeGame(t)
	_, err := g.MarkGroupDead(1, 1)
	is.NoErr(err)
	st, err := g.Resign()
	is.NoErr(err)
	is.True(st.Resigned)
	is.Equal(st.Winner, board.White)
	is.Equal(len(g.PendingDead()), 0)
}
