package game

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/tengen-go/tengen/board"
	"github.com/tengen-go/tengen/config"
	"github.com/tengen-go/tengen/scoring"
)

// GameRules is a simple struct that encapsulates everything fixed about a
// game before the first stone is played.
type GameRules struct {
	boardDim    int
	scoringRule scoring.Rule
	handicap    HandicapConfig
	playerNames [2]string
}

func (g GameRules) BoardDim() int {
	return g.boardDim
}

func (g GameRules) ScoringRule() scoring.Rule {
	return g.scoringRule
}

func (g GameRules) Handicap() HandicapConfig {
	return g.handicap
}

// SetPlayerNames sets the names of player 1 (White) and player 2 (Black).
func (g *GameRules) SetPlayerNames(p1, p2 string) {
	g.playerNames = [2]string{p1, p2}
}

// NewBasicGameRules checks that the board and handicap fit together.
func NewBasicGameRules(boardDim int, handicap HandicapConfig, rule scoring.Rule) (*GameRules, error) {
	if boardDim < board.MinDim || boardDim > board.MaxDim {
		return nil, fmt.Errorf("%w: board size %d must be %d-%d", ErrConfig,
			boardDim, board.MinDim, board.MaxDim)
	}
	if handicap.Pieces() >= boardDim*boardDim {
		return nil, fmt.Errorf("%w: %d handicap stones do not fit on a %dx%d board",
			ErrConfig, handicap.Pieces(), boardDim, boardDim)
	}
	return &GameRules{
		boardDim:    boardDim,
		scoringRule: rule,
		handicap:    handicap,
		playerNames: [2]string{"White Player", "Black Player"},
	}, nil
}

// NewGameRulesFromConfig builds rules from loaded settings. A malformed
// handicap or scoring rule is not fatal: the rules fall back to an even
// game with default komi (or territory scoring) and the returned error
// wraps ErrConfig. A nil rules value means the config was unusable.
func NewGameRulesFromConfig(cfg *config.Config) (*GameRules, error) {
	var softErr error

	handicap, err := ParseHandicap(cfg.GetInt(config.ConfigHandicapPlayer),
		cfg.GetString(config.ConfigHandicapType),
		cfg.GetString(config.ConfigHandicapValue),
		cfg.GetString(config.ConfigKomi))
	if err != nil {
		log.Warn().Err(err).Msg("using default handicap")
		softErr = err
	}
	rule, err := scoring.ParseRule(cfg.GetString(config.ConfigScoringRule))
	if err != nil {
		log.Warn().Err(err).Msg("using territory scoring")
		softErr = fmt.Errorf("%w: %w", ErrConfig, err)
	}
	rules, err := NewBasicGameRules(cfg.GetInt(config.ConfigBoardSize), handicap, rule)
	if err != nil {
		return nil, err
	}
	rules.SetPlayerNames(cfg.GetString(config.ConfigPlayer1Name),
		cfg.GetString(config.ConfigPlayer2Name))
	return rules, softErr
}
