package board

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

var (
	ColorSupport = os.Getenv("TENGEN_DISABLE_COLOR") != "on"
)

// A Stone is the content of a single intersection. The numeric values double
// as player numbers: player 1 is White and player 2 is Black.
type Stone uint8

const (
	Empty Stone = iota
	White
	Black
)

func init() {
	if ColorSupport {
		log.Debug().Msg("Terminal color support is on.")
	}
}

// Opponent returns the other colour. Empty has no opponent.
func (s Stone) Opponent() Stone {
	switch s {
	case White:
		return Black
	case Black:
		return White
	}
	return Empty
}

func (s Stone) String() string {
	switch s {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return "empty"
}

// Symbol is the plaintext representation used by FromRows.
func (s Stone) Symbol() byte {
	switch s {
	case White:
		return 'O'
	case Black:
		return 'X'
	}
	return '.'
}

func (s Stone) displayString() string {
	sym := string(s.Symbol())
	if !ColorSupport || s == Empty {
		return sym
	}
	switch s {
	case Black:
		return fmt.Sprintf("\033[1;30;47m%s\033[0m", sym)
	default:
		return fmt.Sprintf("\033[1;97m%s\033[0m", sym)
	}
}

// StoneFromSymbol parses X/B as black, O/W as white and ./+ as empty.
func StoneFromSymbol(c byte) (Stone, error) {
	switch c {
	case 'X', 'x', 'B', 'b':
		return Black, nil
	case 'O', 'o', 'W', 'w':
		return White, nil
	case '.', '+', ' ':
		return Empty, nil
	}
	return Empty, fmt.Errorf("unrecognized stone symbol %q", c)
}

// A Position addresses one intersection. Row 0 is the top of the board.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// adjacent returns the four orthogonal neighbours, some of which may be off
// the board.
func (p Position) adjacent() [4]Position {
	return [4]Position{
		{p.Row - 1, p.Col},
		{p.Row + 1, p.Col},
		{p.Row, p.Col - 1},
		{p.Row, p.Col + 1},
	}
}
