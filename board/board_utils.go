package board

import (
	"fmt"
	"strings"
)

// ColumnLetter returns the letter used for column c in display text and
// coordinates.
func ColumnLetter(c int) byte {
	return byte('A' + c)
}

func (b *Board) ToDisplayText() string {
	var str strings.Builder
	n := b.Dim()
	row := "   "
	for i := 0; i < n; i++ {
		row = row + string(ColumnLetter(i)) + " "
	}
	str.WriteString(row + "\n")
	str.WriteString("   " + strings.Repeat("-", n*2) + "\n")
	for i := 0; i < n; i++ {
		row := fmt.Sprintf("%2d|", i+1)
		for j := 0; j < n; j++ {
			row = row + b.cells[b.idx(Position{i, j})].displayString() + " "
		}
		row = row + "|"
		str.WriteString(row + "\n")
	}
	str.WriteString("   " + strings.Repeat("-", n*2) + "\n")
	return "\n" + str.String()
}

// String is the plaintext form of the board, one row per line, using the
// same symbols FromRows accepts.
func (b *Board) String() string {
	var str strings.Builder
	for r := 0; r < b.dim; r++ {
		for c := 0; c < b.dim; c++ {
			str.WriteByte(b.cells[r*b.dim+c].Symbol())
		}
		str.WriteByte('\n')
	}
	return str.String()
}

// SetRow sets a whole row from its plaintext form.
func (b *Board) SetRow(rowNum int, stones string) error {
	if rowNum < 0 || rowNum >= b.dim {
		return fmt.Errorf("row %d out of range", rowNum)
	}
	if len(stones) != b.dim {
		return fmt.Errorf("row %d has %d intersections, want %d", rowNum, len(stones), b.dim)
	}
	for c := 0; c < b.dim; c++ {
		s, err := StoneFromSymbol(stones[c])
		if err != nil {
			return err
		}
		b.Set(Position{rowNum, c}, s)
	}
	return nil
}

// FromRows builds a board from plaintext rows, e.g.
//
//	".X."
//	"XOX"
//	".X."
func FromRows(rows []string) (*Board, error) {
	b, err := New(len(rows))
	if err != nil {
		return nil, err
	}
	for r, line := range rows {
		if err := b.SetRow(r, line); err != nil {
			return nil, err
		}
	}
	return b, nil
}
