package board

import (
	"errors"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func TestNewBoardBounds(t *testing.T) {
	is := is.New(t)
	_, err := New(1)
	is.True(errors.Is(err, ErrBadDimension))
	_, err = New(26)
	is.True(errors.Is(err, ErrBadDimension))

	b, err := New(9)
	is.NoErr(err)
	is.Equal(b.Dim(), 9)
	is.Equal(b.Count(Empty), 81)
}

func TestInBounds(t *testing.T) {
	is := is.New(t)
	b := MakeBoard(9)
	is.True(b.InBounds(Position{0, 0}))
	is.True(b.InBounds(Position{8, 8}))
	is.True(!b.InBounds(Position{-1, 0}))
	is.True(!b.InBounds(Position{0, 9}))
	is.True(!b.InBounds(Position{9, 9}))
}

func TestSetTouchesOneCell(t *testing.T) {
	is := is.New(t)
	b := MakeBoard(5)
	b.Set(Position{2, 3}, Black)
	is.Equal(b.Get(Position{2, 3}), Black)
	is.Equal(b.Count(Black), 1)
	is.Equal(b.Count(Empty), 24)
	// out of bounds writes are dropped
	b.Set(Position{5, 0}, White)
	is.Equal(b.Count(White), 0)
}

func TestCopyAndEquals(t *testing.T) {
	is := is.New(t)
	b := SampleBoard(SampleKo)
	c := b.Copy()
	is.True(b.Equals(c))
	c.Set(Position{0, 0}, White)
	is.True(!b.Equals(c))
	c.CopyFrom(b)
	is.True(b.Equals(c))
}

func TestSnapshotIsIndependent(t *testing.T) {
	is := is.New(t)
	b := SampleBoard(SampleKo)
	snap := b.Snapshot()
	is.Equal(len(snap), 7)
	is.Equal(snap[1][2], Black)
	is.Equal(snap[1][3], White)
	snap[0][0] = Black
	is.Equal(b.Get(Position{0, 0}), Empty)
}

func TestFromRowsAndString(t *testing.T) {
	is := is.New(t)
	rows := []string{".X.", "XOX", ".X."}
	b, err := FromRows(rows)
	is.NoErr(err)
	is.Equal(b.String(), ".X.\nXOX\n.X.\n")

	_, err = FromRows([]string{"..", "..."})
	is.True(err != nil)
	_, err = FromRows([]string{"..", ".Z"})
	is.True(err != nil)
}

func TestFindGroup(t *testing.T) {
	is := is.New(t)
	b := SampleBoard(SampleAtari)
	g := FindGroup(b, Position{2, 2})
	is.Equal(g.Color, Black)
	is.Equal(g.Size(), 3)
	assert.ElementsMatch(t, []Position{{2, 1}, {2, 2}, {2, 3}}, g.Stones)

	wg := FindGroup(b, Position{1, 1})
	is.Equal(wg.Color, White)
	is.Equal(wg.Size(), 3)

	is.True(FindGroup(b, Position{0, 0}).Empty())
	is.True(FindGroup(b, Position{-1, 3}).Empty())
}

func TestFindGroupFullBoard(t *testing.T) {
	is := is.New(t)
	b := MakeBoard(MaxDim)
	Positions(b, func(p Position) { b.Set(p, Black) })
	g := FindGroup(b, Position{12, 12})
	is.Equal(g.Size(), MaxDim*MaxDim)
	is.Equal(Liberties(b, g), 0)
	is.True(!HasLiberties(b, g))
}

func TestLiberties(t *testing.T) {
	is := is.New(t)
	b := SampleBoard(SampleAtari)
	g := FindGroup(b, Position{2, 1})
	is.Equal(Liberties(b, g), 1)
	is.True(HasLiberties(b, g))

	// shared liberties are counted once
	b2, err := FromRows([]string{
		"...",
		"XX.",
		"...",
	})
	is.NoErr(err)
	g2 := FindGroup(b2, Position{1, 0})
	is.Equal(Liberties(b2, g2), 5)

	// corner stone
	b3 := MakeBoard(5)
	b3.Set(Position{0, 0}, White)
	is.Equal(Liberties(b3, FindGroup(b3, Position{0, 0})), 2)
	is.Equal(Liberties(b3, Group{}), 0)
}

func TestRemoveGroup(t *testing.T) {
	is := is.New(t)
	b := SampleBoard(SampleAtari)
	RemoveGroup(b, FindGroup(b, Position{2, 2}))
	is.Equal(b.Count(Black), 0)
	is.Equal(b.Count(White), 7)
}

func TestNeighbors(t *testing.T) {
	is := is.New(t)
	b := MakeBoard(3)
	is.Equal(len(Neighbors(b, Position{0, 0})), 2)
	is.Equal(len(Neighbors(b, Position{0, 1})), 3)
	is.Equal(len(Neighbors(b, Position{1, 1})), 4)
}

func TestDisplayText(t *testing.T) {
	is := is.New(t)
	ColorSupport = false
	b, err := FromRows([]string{"X.", ".O"})
	is.NoErr(err)
	is.Equal(b.ToDisplayText(), "\n   A B \n   ----\n 1|X . |\n 2|. O |\n   ----\n")
}
