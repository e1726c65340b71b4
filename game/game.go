// Package game encapsulates the main mechanics for a game of Go: turn
// order, handicap placement, passing, the dead-stone dispute at the end of
// the game, and final scoring.
package game

import (
	"errors"
	"fmt"

	"github.com/lithammer/shortuuid"
	"github.com/rs/zerolog/log"

	"github.com/tengen-go/tengen/board"
	"github.com/tengen-go/tengen/move"
	"github.com/tengen-go/tengen/rules"
	"github.com/tengen-go/tengen/scoring"
	"github.com/tengen-go/tengen/zobrist"
)

var (
	ErrInvalidPosition = rules.ErrInvalidPosition
	ErrOccupied        = rules.ErrOccupied
	ErrIllegalMove     = rules.ErrIllegalMove
	ErrSuicide         = rules.ErrSuicide
	ErrKo              = rules.ErrKo
	ErrWrongPhase      = errors.New("not allowed in the current phase")
	ErrConfig          = errors.New("bad game configuration")
)

// Phase is where the game is in its lifecycle.
type Phase int

const (
	PhaseHandicapPlacement Phase = iota
	PhasePlaying
	PhaseDispute
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseHandicapPlacement:
		return "handicap placement"
	case PhasePlaying:
		return "playing"
	case PhaseDispute:
		return "dispute"
	case PhaseEnded:
		return "ended"
	}
	return "unknown"
}

// State is a read-only summary of the game.
type State struct {
	Phase Phase
	// OnTurn is the colour that acts next. Empty once the game has ended.
	OnTurn board.Stone
	// HandicapRemaining is the number of handicap stones still to place.
	HandicapRemaining int
	// AwaitingConfirmation is set in a dispute while a dead-stone proposal
	// waits for the opponent's answer.
	AwaitingConfirmation bool
	// Score1 and Score2 are only meaningful once the game has ended.
	Score1 float64
	Score2 float64
	// Winner is Empty for a tie or an unfinished game.
	Winner   board.Stone
	Resigned bool
}

// PlacementResult is the outcome of a PlaceStone request.
type PlacementResult struct {
	Accepted bool
	Captured []board.Position
	State    State
}

// Game is the internal game structure that controls the entire business
// logic of a game. It doesn't care how it's played: human players, a shell,
// or an engine handle all drive it through the same methods. A Game is not
// safe for concurrent use.
type Game struct {
	rules *GameRules
	uid   string

	board *board.Board

	phase        Phase
	handicapLeft int
	// consecutivePasses ends Playing and Dispute when it reaches 2.
	consecutivePasses int
	koActive          bool
	onturn            int
	turnnum           int
	players           playerStates

	// dispute sub-state
	awaitingConfirm bool
	pendingDead     board.Group
	marker          int

	history []*move.Move

	zobrist     *zobrist.Zobrist
	hash        uint64
	seen        map[uint64]int
	repetitions int

	final    scoring.Breakdown
	winner   board.Stone
	resigned bool
}

// NewGame is how one instantiates a brand new game. It is ready to play.
func NewGame(r *GameRules) (*Game, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: no rules", ErrConfig)
	}
	b, err := board.New(r.BoardDim())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	g := &Game{
		rules: r,
		board: b,
		players: playerStates{
			newPlayerState(r.playerNames[0], board.White),
			newPlayerState(r.playerNames[1], board.Black),
		},
		zobrist: &zobrist.Zobrist{},
	}
	g.zobrist.Initialize(r.BoardDim())
	g.StartGame()
	return g, nil
}

// StartGame clears everything and puts the game into its first phase.
// Reset is the same thing.
func (g *Game) StartGame() {
	g.board.Clear()
	g.players.resetScore()
	g.uid = shortuuid.New()
	g.koActive = false
	g.consecutivePasses = 0
	g.turnnum = 0
	g.history = nil
	g.awaitingConfirm = false
	g.pendingDead = board.Group{}
	g.final = scoring.Breakdown{}
	g.winner = board.Empty
	g.resigned = false
	g.repetitions = 0

	h := g.rules.Handicap()
	if n := h.Pieces(); n > 0 {
		g.phase = PhaseHandicapPlacement
		g.handicapLeft = n
		g.onturn = playerIdx(h.Player)
	} else {
		g.phase = PhasePlaying
		g.handicapLeft = 0
		g.onturn = playerIdx(board.Black)
	}
	g.hash = g.zobrist.Hash(g.board, g.colorOnTurn())
	g.seen = map[uint64]int{g.hash: 1}
	log.Debug().Str("uid", g.uid).Int("dim", g.board.Dim()).
		Str("handicap", h.String()).Str("phase", g.phase.String()).Msg("game-started")
}

// Reset throws away the current game and starts over with the same rules.
func (g *Game) Reset() State {
	g.StartGame()
	return g.State()
}

func (g *Game) colorOnTurn() board.Stone {
	return g.players[g.onturn].color
}

func (g *Game) AddPrisoners(capturer board.Stone, n int) {
	g.players[playerIdx(capturer)].prisoners += n
}

func (g *Game) switchTurn() {
	g.onturn = otherPlayer(g.onturn)
	g.turnnum++
}

// PlaceStone plays a stone for the player on turn. Nothing changes unless
// the move is legal; the error then says why (ErrInvalidPosition,
// ErrOccupied, ErrIllegalMove or ErrWrongPhase).
func (g *Game) PlaceStone(row, col int) (PlacementResult, error) {
	if g.phase != PhasePlaying && g.phase != PhaseHandicapPlacement {
		return PlacementResult{State: g.State()},
			fmt.Errorf("%w: cannot place a stone during %v", ErrWrongPhase, g.phase)
	}
	m := move.NewPlacementMove(g.colorOnTurn(), board.Position{Row: row, Col: col})
	verdict, err := rules.Check(g.board, m, g.koActive)
	if err != nil {
		return PlacementResult{State: g.State()}, err
	}

	g.board.Set(m.Position(), m.Color())
	captured := rules.ApplyCapture(g.board, m, g)
	g.koActive = verdict.IsKo
	g.consecutivePasses = 0
	g.history = append(g.history, m)
	g.hash = g.zobrist.AddMove(g.hash, m, captured)

	if g.phase == PhaseHandicapPlacement {
		g.handicapLeft--
		if g.handicapLeft == 0 {
			g.phase = PhasePlaying
			g.switchTurn()
			log.Info().Str("first", g.colorOnTurn().String()).Msg("handicap placed; play starts")
		} else {
			// same player again
			g.hash = g.zobrist.Flip(g.hash)
			g.turnnum++
		}
	} else {
		g.switchTurn()
	}
	g.trackRepetition()

	log.Debug().Str("move", m.ShortDescription()).Bool("ko", g.koActive).
		Int("turn", g.turnnum).Msg("placed")
	return PlacementResult{Accepted: true, Captured: captured, State: g.State()}, nil
}

// trackRepetition logs positions that come back. Only the simple ko rule is
// enforced, so longer cycles are allowed but worth knowing about.
func (g *Game) trackRepetition() {
	g.seen[g.hash]++
	if g.seen[g.hash] > 1 {
		g.repetitions++
		log.Warn().Uint64("hash", g.hash).Int("times", g.seen[g.hash]).
			Int("turn", g.turnnum).Msg("position repeated")
	}
}

// Pass gives up the turn. Two passes in a row during play start the dead
// stone dispute; two passes in a row during the dispute end the game.
func (g *Game) Pass() (State, error) {
	switch {
	case g.phase == PhaseHandicapPlacement, g.phase == PhaseEnded:
		return g.State(), fmt.Errorf("%w: cannot pass during %v", ErrWrongPhase, g.phase)
	case g.awaitingConfirm:
		return g.State(), fmt.Errorf("%w: a dead-stone proposal is waiting for an answer", ErrWrongPhase)
	}
	m := move.NewPassMove(g.colorOnTurn())
	g.history = append(g.history, m)
	g.consecutivePasses++
	g.koActive = false
	g.hash = g.zobrist.AddMove(g.hash, m, nil)
	g.switchTurn()
	log.Debug().Str("move", m.ShortDescription()).Int("passes", g.consecutivePasses).Msg("passed")

	if g.consecutivePasses >= 2 {
		g.consecutivePasses = 0
		switch g.phase {
		case PhasePlaying:
			g.enterDispute()
		case PhaseDispute:
			g.endGame()
		}
	}
	return g.State(), nil
}

// PreviewLegality reports whether the player on turn could place a stone at
// (row, col) right now. It never changes the game.
func (g *Game) PreviewLegality(row, col int) bool {
	if g.phase != PhasePlaying && g.phase != PhaseHandicapPlacement {
		return false
	}
	m := move.NewPlacementMove(g.colorOnTurn(), board.Position{Row: row, Col: col})
	return rules.IsLegal(g.board, m, g.koActive)
}

// Resign ends the game immediately; the other player wins. The board is
// still counted so both scores are available.
func (g *Game) Resign() (State, error) {
	if g.phase == PhaseEnded {
		return g.State(), fmt.Errorf("%w: game is already over", ErrWrongPhase)
	}
	resigner := g.colorOnTurn()
	g.history = append(g.history, move.NewBookkeepingMove(move.MoveTypeResign, resigner, board.Position{}))
	g.awaitingConfirm = false
	g.pendingDead = board.Group{}
	g.endGame()
	g.resigned = true
	g.winner = resigner.Opponent()
	log.Info().Str("resigned", resigner.String()).Msg("game over by resignation")
	return g.State(), nil
}

func (g *Game) endGame() {
	bonusPlayer, bonusPoints := g.rules.Handicap().Bonus()
	g.final = scoring.Compute(g.board,
		g.players[playerIdx(board.White)].prisoners,
		g.players[playerIdx(board.Black)].prisoners,
		g.rules.Handicap().Komi, g.rules.ScoringRule(),
		scoring.Bonus{Player: bonusPlayer, Points: bonusPoints})
	g.phase = PhaseEnded
	s1, s2 := g.final.Totals()
	switch {
	case s1 > s2:
		g.winner = board.White
	case s2 > s1:
		g.winner = board.Black
	default:
		g.winner = board.Empty
	}
	log.Info().Float64("score1", s1).Float64("score2", s2).
		Str("winner", g.winner.String()).Msg("game over")
}

// CurrentScores returns the frozen final scores of player 1 and player 2.
func (g *Game) CurrentScores() (float64, float64, error) {
	if g.phase != PhaseEnded {
		return 0, 0, fmt.Errorf("%w: scores are only final once the game has ended", ErrWrongPhase)
	}
	s1, s2 := g.final.Totals()
	return s1, s2, nil
}

// ScoreBreakdown explains the final scores.
func (g *Game) ScoreBreakdown() (scoring.Breakdown, error) {
	if g.phase != PhaseEnded {
		return scoring.Breakdown{}, fmt.Errorf("%w: game has not ended", ErrWrongPhase)
	}
	return g.final, nil
}

func (g *Game) State() State {
	st := State{
		Phase:                g.phase,
		HandicapRemaining:    g.handicapLeft,
		AwaitingConfirmation: g.awaitingConfirm,
	}
	if g.phase == PhaseEnded {
		st.Score1, st.Score2 = g.final.Totals()
		st.Winner = g.winner
		st.Resigned = g.resigned
	} else {
		st.OnTurn = g.colorOnTurn()
	}
	return st
}

// BoardSnapshot returns a copy of the board for rendering.
func (g *Game) BoardSnapshot() [][]board.Stone {
	return g.board.Snapshot()
}

func (g *Game) Board() *board.Board {
	return g.board
}

func (g *Game) Uid() string {
	return g.uid
}

func (g *Game) Phase() Phase {
	return g.phase
}

func (g *Game) Turn() int {
	return g.turnnum
}

// PlayerOnTurn returns the colour to act next.
func (g *Game) PlayerOnTurn() board.Stone {
	return g.colorOnTurn()
}

// NickOnTurn is the name of the player to act next.
func (g *Game) NickOnTurn() string {
	return g.players[g.onturn].Nickname
}

// Prisoners returns how many stones the given player has taken.
func (g *Game) Prisoners(c board.Stone) int {
	if c != board.White && c != board.Black {
		return 0
	}
	return g.players[playerIdx(c)].prisoners
}

func (g *Game) PlayerName(c board.Stone) string {
	if c != board.White && c != board.Black {
		return ""
	}
	return g.players[playerIdx(c)].Nickname
}

func (g *Game) KoActive() bool {
	return g.koActive
}

// Repetitions counts how many times a position came back during the game.
func (g *Game) Repetitions() int {
	return g.repetitions
}

// History returns the moves played so far, oldest first.
func (g *Game) History() []*move.Move {
	return g.history
}
