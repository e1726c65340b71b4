package board

// This file contains some sample positions, used mostly for testing.

import "strings"

// Sample is a plaintext board, one row per line.
type Sample string

const (
	// SampleKo has a ko shape in the middle. White captures the black stone
	// at (2,3) by playing (2,2); black retaking at (2,3) would recreate this
	// position.
	SampleKo Sample = `
.......
..XO...
.X.XO..
..XO...
.......
.......
.......
`
	// SamplePocket is a black wall enclosing a 2x2 empty area in the corner.
	SamplePocket Sample = `
..X....
..X....
XXX....
.......
.......
.......
.......
`
	// SampleSplit has a white corner and a black corner with a neutral strip
	// in between.
	SampleSplit Sample = `
.O...X.
OO...XX
.......
.......
.......
.......
.......
`
	// SampleAtari is a three stone black chain with a single liberty at
	// (2,4).
	SampleAtari Sample = `
.......
.OOO...
OXXX...
.OOO...
.......
.......
.......
`
)

// Rows splits a sample into the rows accepted by FromRows.
func (s Sample) Rows() []string {
	return strings.Fields(string(s))
}

// SampleBoard builds the board for a sample, panicking on a malformed one.
func SampleBoard(s Sample) *Board {
	b, err := FromRows(s.Rows())
	if err != nil {
		panic(err)
	}
	return b
}
