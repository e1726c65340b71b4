package scoring

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tengen-go/tengen/board"
)

// Rule selects how the final score is counted.
type Rule int

const (
	TerritoryRule Rule = iota
	AreaRule
)

var ErrUnknownRule = errors.New("unknown scoring rule")

func (r Rule) String() string {
	if r == AreaRule {
		return "area"
	}
	return "territory"
}

// ParseRule accepts "territory"/"japanese" and "area"/"chinese". An empty
// string is the territory rule.
func ParseRule(s string) (Rule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "territory", "japanese":
		return TerritoryRule, nil
	case "area", "chinese":
		return AreaRule, nil
	}
	return TerritoryRule, fmt.Errorf("%w: %q", ErrUnknownRule, s)
}

// PlayerBreakdown is one player's side of the final count.
type PlayerBreakdown struct {
	Territory int     `yaml:"territory"`
	Prisoners int     `yaml:"prisoners"`
	Stones    int     `yaml:"stones"`
	Komi      float64 `yaml:"komi,omitempty"`
	Handicap  float64 `yaml:"handicap,omitempty"`
	Total     float64 `yaml:"total"`
}

// Breakdown is the full result of counting a finished board.
type Breakdown struct {
	Rule    string          `yaml:"rule"`
	Player1 PlayerBreakdown `yaml:"player1"`
	Player2 PlayerBreakdown `yaml:"player2"`
}

// Bonus is a fixed number of points added to one player's score, used for
// points handicaps.
type Bonus struct {
	Player board.Stone
	Points float64
}

// Compute counts the board and produces both scores. prisoners1 and
// prisoners2 are the stones captured by player 1 and player 2.
func Compute(b *board.Board, prisoners1, prisoners2 int, komi float64,
	rule Rule, bonus Bonus) Breakdown {

	t1, t2 := CountTerritory(b)
	bd := Breakdown{
		Rule: rule.String(),
		Player1: PlayerBreakdown{
			Territory: t1,
			Prisoners: prisoners1,
			Stones:    b.Count(board.White),
			Komi:      komi,
		},
		Player2: PlayerBreakdown{
			Territory: t2,
			Prisoners: prisoners2,
			Stones:    b.Count(board.Black),
		},
	}
	switch rule {
	case AreaRule:
		bd.Player1.Total, bd.Player2.Total = AreaScore(t1, t2,
			bd.Player1.Stones, bd.Player2.Stones, komi)
	default:
		bd.Player1.Total, bd.Player2.Total = TerritoryScore(t1, t2,
			prisoners1, prisoners2, komi)
	}
	switch bonus.Player {
	case board.White:
		bd.Player1.Handicap = bonus.Points
		bd.Player1.Total += bonus.Points
	case board.Black:
		bd.Player2.Handicap = bonus.Points
		bd.Player2.Total += bonus.Points
	}
	return bd
}

// Totals returns the two final scores.
func (b Breakdown) Totals() (float64, float64) {
	return b.Player1.Total, b.Player2.Total
}
