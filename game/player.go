package game

import (
	"fmt"

	"github.com/tengen-go/tengen/board"
)

type playerState struct {
	Nickname string

	color board.Stone
	// prisoners are the opponent stones this player has captured or had
	// confirmed dead.
	prisoners int
}

func newPlayerState(nickname string, color board.Stone) *playerState {
	return &playerState{Nickname: nickname, color: color}
}

func (p *playerState) resetScore() {
	p.prisoners = 0
}

func (p *playerState) stateString(myturn bool) string {
	onturn := ""
	if myturn {
		onturn = "-> "
	}
	return fmt.Sprintf("%4v%20v%7v %4v", onturn, p.Nickname, "("+p.color.String()+")", p.prisoners)
}

// playerStates is indexed by player number minus one: White, then Black.
type playerStates []*playerState

func (p playerStates) resetScore() {
	for idx := range p {
		p[idx].resetScore()
	}
}
