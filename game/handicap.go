package game

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tengen-go/tengen/board"
)

type HandicapKind int

const (
	HandicapNone HandicapKind = iota
	HandicapPoints
	HandicapPieces
)

const (
	DefaultKomi       = 6.5
	MaxKomi           = 10.0
	MaxHandicapPoints = 15.0
	MaxHandicapPieces = 5
)

func (k HandicapKind) String() string {
	switch k {
	case HandicapPoints:
		return "Points"
	case HandicapPieces:
		return "Pieces"
	}
	return "None"
}

// HandicapConfig describes the compensation agreed on before a game. It is
// fixed once the game starts.
type HandicapConfig struct {
	// Player receives the handicap; Empty means nobody does.
	Player board.Stone
	Kind   HandicapKind
	// Value is a number of points, or a number of stones for Pieces.
	Value float64
	// Komi always goes to player 1 (White).
	Komi float64
}

// DefaultHandicap is an even game with the default komi.
func DefaultHandicap() HandicapConfig {
	return HandicapConfig{Komi: DefaultKomi}
}

// Pieces returns the number of handicap stones to place before play starts.
func (h HandicapConfig) Pieces() int {
	if h.Kind != HandicapPieces || h.Player == board.Empty {
		return 0
	}
	return int(h.Value)
}

// Bonus returns the points handicap, if any.
func (h HandicapConfig) Bonus() (board.Stone, float64) {
	if h.Kind != HandicapPoints || h.Player == board.Empty {
		return board.Empty, 0
	}
	return h.Player, h.Value
}

func (h HandicapConfig) String() string {
	if h.Player == board.Empty || h.Kind == HandicapNone {
		return fmt.Sprintf("no handicap, komi %.1f", h.Komi)
	}
	return fmt.Sprintf("%v %v to %v, komi %.1f", h.Value, h.Kind, h.Player, h.Komi)
}

func halfSteps(v float64) bool {
	return math.Mod(v*2, 1) == 0
}

// ParseHandicap turns the raw values chosen by a player into a
// HandicapConfig. player is 0 (nobody), 1 (White) or 2 (Black); kind is
// "Points", "Pieces" or empty; an empty komi means the default. On any
// malformed input it returns DefaultHandicap along with an error wrapping
// ErrConfig, so callers can carry on with an even game.
func ParseHandicap(player int, kind, value, komi string) (HandicapConfig, error) {
	fail := func(format string, args ...any) (HandicapConfig, error) {
		return DefaultHandicap(), fmt.Errorf("%w: "+format, append([]any{ErrConfig}, args...)...)
	}
	h := HandicapConfig{Komi: DefaultKomi}

	if k := strings.TrimSpace(komi); k != "" {
		kv, err := strconv.ParseFloat(k, 64)
		if err != nil {
			return fail("komi %q is not a number", komi)
		}
		if kv < 0 || kv > MaxKomi || !halfSteps(kv) {
			return fail("komi %v must be between 0 and %v in steps of 0.5", kv, MaxKomi)
		}
		h.Komi = kv
	}

	switch player {
	case 0:
		return h, nil
	case int(board.White), int(board.Black):
		h.Player = board.Stone(player)
	default:
		return fail("handicap player %d must be 0, 1 or 2", player)
	}

	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", "none":
		h.Player = board.Empty
		return h, nil
	case "points":
		h.Kind = HandicapPoints
	case "pieces":
		h.Kind = HandicapPieces
	default:
		return fail("unknown handicap type %q", kind)
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fail("handicap value %q is not a number", value)
	}
	switch h.Kind {
	case HandicapPoints:
		if v <= 0 || v > MaxHandicapPoints || !halfSteps(v) {
			return fail("points handicap %v must be between 0.5 and %v in steps of 0.5",
				v, MaxHandicapPoints)
		}
	case HandicapPieces:
		if v < 1 || v > MaxHandicapPieces || v != math.Trunc(v) {
			return fail("pieces handicap %v must be a whole number from 1 to %d",
				v, MaxHandicapPieces)
		}
	}
	h.Value = v
	return h, nil
}
