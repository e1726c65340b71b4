package game

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/tengen-go/tengen/board"
)

func TestParseHandicap(t *testing.T) {
	is := is.New(t)
	for _, tc := range []struct {
		player      int
		kind, value string
		komi        string
		expected    HandicapConfig
	}{
		{0, "", "", "", HandicapConfig{Komi: DefaultKomi}},
		{0, "Points", "3", "0.5", HandicapConfig{Komi: 0.5}},
		{2, "Points", "4.5", "", HandicapConfig{Player: board.Black, Kind: HandicapPoints, Value: 4.5, Komi: DefaultKomi}},
		{1, "pieces", "2", "0", HandicapConfig{Player: board.White, Kind: HandicapPieces, Value: 2, Komi: 0}},
		{2, "PIECES", " 5 ", "10", HandicapConfig{Player: board.Black, Kind: HandicapPieces, Value: 5, Komi: 10}},
		{2, "none", "3", "", HandicapConfig{Komi: DefaultKomi}},
	} {
		h, err := ParseHandicap(tc.player, tc.kind, tc.value, tc.komi)
		is.NoErr(err)
		is.Equal(h, tc.expected)
	}
}

func TestParseHandicapErrors(t *testing.T) {
	is := is.New(t)
	for _, tc := range []struct {
		player      int
		kind, value string
		komi        string
	}{
		{3, "Points", "3", ""},
		{-1, "Points", "3", ""},
		{2, "Stones", "3", ""},
		{2, "Points", "abc", ""},
		{2, "Points", "0", ""},
		{2, "Points", "15.5", ""},
		{2, "Points", "2.25", ""},
		{2, "Pieces", "0", ""},
		{2, "Pieces", "6", ""},
		{2, "Pieces", "1.5", ""},
		{0, "", "", "abc"},
		{0, "", "", "-0.5"},
		{0, "", "", "10.5"},
		{0, "", "", "6.2"},
	} {
		h, err := ParseHandicap(tc.player, tc.kind, tc.value, tc.komi)
		is.True(errors.Is(err, ErrConfig))
		is.Equal(h, DefaultHandicap())
	}
}

func TestHandicapHelpers(t *testing.T) {
	is := is.New(t)
	h := HandicapConfig{Player: board.Black, Kind: HandicapPieces, Value: 3, Komi: 0.5}
	is.Equal(h.Pieces(), 3)
	p, pts := h.Bonus()
	is.Equal(p, board.Empty)
	is.Equal(pts, 0.0)

	h = HandicapConfig{Player: board.White, Kind: HandicapPoints, Value: 2.5, Komi: 6.5}
	is.Equal(h.Pieces(), 0)
	p, pts = h.Bonus()
	is.Equal(p, board.White)
	is.Equal(pts, 2.5)

	is.Equal(DefaultHandicap().String(), "no handicap, komi 6.5")
}
