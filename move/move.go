package move

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/tengen-go/tengen/board"
)

// MoveType is a type of move; a stone placement, a pass, etc.
type MoveType uint8

const (
	MoveTypePlace MoveType = iota
	MoveTypePass
	MoveTypeResign
	// MoveTypeMarkDead and MoveTypeConfirmDead are only recorded in the
	// history; they do not go through the validator.
	MoveTypeMarkDead
	MoveTypeConfirmDead
	MoveTypeRefuseDead
)

var ErrBadCoords = errors.New("cannot parse coordinates")

// Move is a transient description of one action by one player.
type Move struct {
	action MoveType
	color  board.Stone
	pos    board.Position
	// captured is filled in once a placement has been applied.
	captured int
}

var reColFirst, reRowFirst *regexp.Regexp

func init() {
	reColFirst = regexp.MustCompile(`^(?P<col>[A-Z])(?P<row>[0-9]+)$`)
	reRowFirst = regexp.MustCompile(`^(?P<row>[0-9]+)(?P<col>[A-Z])$`)
}

func NewPlacementMove(color board.Stone, pos board.Position) *Move {
	return &Move{action: MoveTypePlace, color: color, pos: pos}
}

func NewPassMove(color board.Stone) *Move {
	return &Move{action: MoveTypePass, color: color}
}

// NewBookkeepingMove creates a move of a type that is only kept for the
// game record, e.g. a resignation or a dead-stone decision.
func NewBookkeepingMove(t MoveType, color board.Stone, pos board.Position) *Move {
	return &Move{action: t, color: color, pos: pos}
}

// String provides a string just for debugging purposes.
func (m *Move) String() string {
	switch m.action {
	case MoveTypePlace:
		return fmt.Sprintf("<%p action: place color: %v at: %v captured: %d>",
			m, m.color, m.BoardCoords(), m.captured)
	default:
		return fmt.Sprintf("<%p action: %v color: %v>", m, m.MoveTypeString(), m.color)
	}
}

func (m *Move) MoveTypeString() string {
	switch m.action {
	case MoveTypePlace:
		return "Place"
	case MoveTypePass:
		return "Pass"
	case MoveTypeResign:
		return "Resign"
	case MoveTypeMarkDead:
		return "MarkDead"
	case MoveTypeConfirmDead:
		return "ConfirmDead"
	case MoveTypeRefuseDead:
		return "RefuseDead"
	}
	return "Unknown"
}

// ShortDescription provides a short description, useful for logging or
// user display.
func (m *Move) ShortDescription() string {
	switch m.action {
	case MoveTypePlace:
		if m.captured > 0 {
			return fmt.Sprintf("%v %s x%d", m.color, m.BoardCoords(), m.captured)
		}
		return fmt.Sprintf("%v %s", m.color, m.BoardCoords())
	case MoveTypeMarkDead, MoveTypeConfirmDead, MoveTypeRefuseDead:
		return fmt.Sprintf("%v %s %s", m.color, m.MoveTypeString(), m.BoardCoords())
	}
	return fmt.Sprintf("%v (%s)", m.color, strings.ToLower(m.MoveTypeString()))
}

func (m *Move) Action() MoveType {
	return m.action
}

func (m *Move) Color() board.Stone {
	return m.color
}

func (m *Move) Position() board.Position {
	return m.pos
}

func (m *Move) Captured() int {
	return m.captured
}

func (m *Move) SetCaptured(n int) {
	m.captured = n
}

func (m *Move) BoardCoords() string {
	return ToBoardGameCoords(m.pos.Row, m.pos.Col)
}

// ToBoardGameCoords turns a 0-based row and column into a coordinate like
// "C5": column letter, then 1-based row counted from the top.
func ToBoardGameCoords(row int, col int) string {
	return string(board.ColumnLetter(col)) + strconv.Itoa(row+1)
}

// FromBoardGameCoords parses "C5" or "5C" (case-insensitive) into a 0-based
// position. It does not check the position against any board size.
func FromBoardGameCoords(c string) (board.Position, error) {
	c = strings.ToUpper(strings.TrimSpace(c))
	var rowStr, colStr string
	if m := reColFirst.FindStringSubmatch(c); len(m) == 3 {
		colStr, rowStr = m[1], m[2]
	} else if m := reRowFirst.FindStringSubmatch(c); len(m) == 3 {
		rowStr, colStr = m[1], m[2]
	} else {
		return board.Position{}, fmt.Errorf("%w: %q", ErrBadCoords, c)
	}
	row, err := strconv.Atoi(rowStr)
	if err != nil {
		return board.Position{}, fmt.Errorf("%w: %q: %w", ErrBadCoords, c, err)
	}
	return board.Position{Row: row - 1, Col: int(colStr[0] - 'A')}, nil
}
