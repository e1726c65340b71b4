package game

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/tengen-go/tengen/move"
)

func splitSubN(s string, n int) []string {
	sub := ""
	subs := []string{}

	runes := bytes.Runes([]byte(s))
	l := len(runes)
	for i, r := range runes {
		sub = sub + string(r)
		if (i+1)%n == 0 {
			subs = append(subs, sub)
			sub = ""
		} else if (i + 1) == l {
			subs = append(subs, sub)
		}
	}

	return subs
}

func addText(lines []string, row int, hpad int, text string) []string {
	maxTextSize := 42
	sp := splitSubN(text, maxTextSize)

	for _, chunk := range sp {
		for row >= len(lines) {
			lines = append(lines, "")
		}
		lines[row] = lines[row] + strings.Repeat(" ", hpad) + chunk
		row++
	}
	return lines
}

// ToDisplayText turns the current state of the game into a displayable
// string: the board with the players, prisoners and phase next to it.
func (g *Game) ToDisplayText() string {
	bt := g.board.ToDisplayText()
	bts := strings.Split(bt, "\n")
	hpadding := 3
	vpadding := 1

	for pi := 0; pi < 2; pi++ {
		bts = addText(bts, vpadding+pi, hpadding,
			g.players[pi].stateString(g.phase != PhaseEnded && g.onturn == pi))
	}

	status := fmt.Sprintf("Phase: %v", g.phase)
	switch {
	case g.phase == PhaseHandicapPlacement:
		status += fmt.Sprintf(" (%d to place)", g.handicapLeft)
	case g.awaitingConfirm:
		status += fmt.Sprintf(" (%d stones proposed dead, %v to answer)",
			g.pendingDead.Size(), g.players[otherPlayer(g.marker)].color)
	}
	bts = addText(bts, vpadding+3, hpadding, status)
	if g.koActive {
		bts = addText(bts, vpadding+4, hpadding, "Ko is active.")
	}

	bts = addText(bts, vpadding+5, hpadding, fmt.Sprintf("Turn %d:", g.turnnum))
	recent := g.history[max(0, len(g.history)-3):]
	bts = addText(bts, vpadding+6, hpadding, strings.Join(
		lo.Map(recent, func(m *move.Move, _ int) string { return m.ShortDescription() }), ", "))

	if g.phase == PhaseEnded {
		s1, s2 := g.final.Totals()
		bts = addText(bts, vpadding+8, hpadding, fmt.Sprintf("Game is over. %.1f - %.1f", s1, s2))
		if g.resigned {
			bts = addText(bts, vpadding+9, hpadding, fmt.Sprintf("%v wins by resignation.", g.winner))
		}
	}

	return strings.Join(bts, "\n")
}
