// Package engine keeps any number of games alive at once behind opaque
// handles. It is the surface a front end (the shell, a server, a GUI) uses
// to drive games without holding on to *game.Game values itself.
package engine

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/lithammer/shortuuid"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/tengen-go/tengen/board"
	"github.com/tengen-go/tengen/game"
	"github.com/tengen-go/tengen/scoring"
)

// Handle identifies one game owned by an Engine.
type Handle string

var ErrUnknownHandle = errors.New("unknown game handle")

type entry struct {
	sync.Mutex
	g *game.Game
}

// Engine is safe for concurrent use. Calls on the same handle are
// serialised; calls on different handles run independently.
type Engine struct {
	sync.Mutex
	games map[Handle]*entry
}

// Option adjusts the rules of a game created with NewGame.
type Option func(*options)

type options struct {
	rule  scoring.Rule
	names [2]string
}

// WithScoringRule picks territory or area counting. Territory is the
// default.
func WithScoringRule(r scoring.Rule) Option {
	return func(o *options) {
		o.rule = r
	}
}

// WithPlayerNames names player 1 (White) and player 2 (Black).
func WithPlayerNames(p1, p2 string) Option {
	return func(o *options) {
		o.names = [2]string{p1, p2}
	}
}

func New() *Engine {
	return &Engine{games: make(map[Handle]*entry)}
}

// NewGame starts a game on a size x size board. Handicap stones, if any,
// are the first thing the returned game expects.
func (e *Engine) NewGame(size int, h game.HandicapConfig, opts ...Option) (Handle, error) {
	o := &options{rule: scoring.TerritoryRule}
	for _, opt := range opts {
		opt(o)
	}
	r, err := game.NewBasicGameRules(size, h, o.rule)
	if err != nil {
		return "", err
	}
	if o.names[0] != "" || o.names[1] != "" {
		r.SetPlayerNames(o.names[0], o.names[1])
	}
	g, err := game.NewGame(r)
	if err != nil {
		return "", err
	}
	hdl := Handle(shortuuid.New())

	e.Lock()
	e.games[hdl] = &entry{g: g}
	n := len(e.games)
	e.Unlock()

	log.Debug().Str("handle", string(hdl)).Int("size", size).Int("open", n).Msg("new-game")
	return hdl, nil
}

func (e *Engine) get(h Handle) (*entry, error) {
	e.Lock()
	defer e.Unlock()
	en, ok := e.games[h]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownHandle, h)
	}
	return en, nil
}

// with runs fn while holding the game's lock.
func (e *Engine) with(h Handle, fn func(g *game.Game) error) error {
	en, err := e.get(h)
	if err != nil {
		return err
	}
	en.Lock()
	defer en.Unlock()
	return fn(en.g)
}

func (e *Engine) PlaceStone(h Handle, row, col int) (game.PlacementResult, error) {
	var res game.PlacementResult
	err := e.with(h, func(g *game.Game) error {
		var err error
		res, err = g.PlaceStone(row, col)
		return err
	})
	return res, err
}

func (e *Engine) Pass(h Handle) (game.State, error) {
	var st game.State
	err := e.with(h, func(g *game.Game) error {
		var err error
		st, err = g.Pass()
		return err
	})
	return st, err
}

// PreviewLegality is false for an unknown handle.
func (e *Engine) PreviewLegality(h Handle, row, col int) bool {
	legal := false
	_ = e.with(h, func(g *game.Game) error {
		legal = g.PreviewLegality(row, col)
		return nil
	})
	return legal
}

func (e *Engine) MarkGroupDead(h Handle, row, col int) ([]board.Position, error) {
	var stones []board.Position
	err := e.with(h, func(g *game.Game) error {
		var err error
		stones, err = g.MarkGroupDead(row, col)
		return err
	})
	return stones, err
}

func (e *Engine) ConfirmDead(h Handle, accept bool) (game.State, error) {
	var st game.State
	err := e.with(h, func(g *game.Game) error {
		var err error
		st, err = g.ConfirmDead(accept)
		return err
	})
	return st, err
}

func (e *Engine) AbandonDispute(h Handle) (game.State, error) {
	var st game.State
	err := e.with(h, func(g *game.Game) error {
		var err error
		st, err = g.AbandonDispute()
		return err
	})
	return st, err
}

func (e *Engine) Resign(h Handle) (game.State, error) {
	var st game.State
	err := e.with(h, func(g *game.Game) error {
		var err error
		st, err = g.Resign()
		return err
	})
	return st, err
}

func (e *Engine) CurrentScores(h Handle) (float64, float64, error) {
	var s1, s2 float64
	err := e.with(h, func(g *game.Game) error {
		var err error
		s1, s2, err = g.CurrentScores()
		return err
	})
	return s1, s2, err
}

func (e *Engine) ScoreBreakdown(h Handle) (scoring.Breakdown, error) {
	var bd scoring.Breakdown
	err := e.with(h, func(g *game.Game) error {
		var err error
		bd, err = g.ScoreBreakdown()
		return err
	})
	return bd, err
}

func (e *Engine) BoardSnapshot(h Handle) ([][]board.Stone, error) {
	var snap [][]board.Stone
	err := e.with(h, func(g *game.Game) error {
		snap = g.BoardSnapshot()
		return nil
	})
	return snap, err
}

func (e *Engine) State(h Handle) (game.State, error) {
	var st game.State
	err := e.with(h, func(g *game.Game) error {
		st = g.State()
		return nil
	})
	return st, err
}

func (e *Engine) NickOnTurn(h Handle) (string, error) {
	var nick string
	err := e.with(h, func(g *game.Game) error {
		nick = g.NickOnTurn()
		return nil
	})
	return nick, err
}

// Display renders the game the way the shell shows it.
func (e *Engine) Display(h Handle) (string, error) {
	var txt string
	err := e.with(h, func(g *game.Game) error {
		txt = g.ToDisplayText()
		return nil
	})
	return txt, err
}

// Reset starts the game over with the same rules. The handle stays valid.
func (e *Engine) Reset(h Handle) (game.State, error) {
	var st game.State
	err := e.with(h, func(g *game.Game) error {
		st = g.Reset()
		return nil
	})
	return st, err
}

// Close forgets the game.
func (e *Engine) Close(h Handle) error {
	e.Lock()
	defer e.Unlock()
	if _, ok := e.games[h]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownHandle, h)
	}
	delete(e.games, h)
	log.Debug().Str("handle", string(h)).Int("open", len(e.games)).Msg("closed-game")
	return nil
}

// Handles lists the open games in a stable order.
func (e *Engine) Handles() []Handle {
	e.Lock()
	hs := lo.Keys(e.games)
	e.Unlock()
	sort.Slice(hs, func(i, j int) bool { return hs[i] < hs[j] })
	return hs
}
