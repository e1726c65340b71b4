// Package scoring counts territory and turns the counts into final scores
// under territory (Japanese) or area (Chinese) rules.
package scoring

import (
	"github.com/samber/lo"

	"github.com/tengen-go/tengen/board"
)

// A Region is a maximal connected set of empty intersections. Owner is the
// single colour bordering it, or Empty if it touches both colours or none.
type Region struct {
	Owner  board.Stone
	Points []board.Position
}

const (
	bordersWhite = 1 << iota
	bordersBlack
)

// Regions flood-fills every empty area of the board.
func Regions(g board.Grid) []Region {
	n := g.Dim()
	visited := make([]bool, n*n)
	regions := []Region{}

	board.Positions(g, func(start board.Position) {
		if visited[start.Row*n+start.Col] || g.Get(start) != board.Empty {
			return
		}
		visited[start.Row*n+start.Col] = true
		stack := []board.Position{start}
		var points []board.Position
		borders := 0

		for len(stack) > 0 {
			p := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			points = append(points, p)
			for _, nb := range board.Neighbors(g, p) {
				switch g.Get(nb) {
				case board.White:
					borders |= bordersWhite
				case board.Black:
					borders |= bordersBlack
				default:
					if !visited[nb.Row*n+nb.Col] {
						visited[nb.Row*n+nb.Col] = true
						stack = append(stack, nb)
					}
				}
			}
		}

		owner := board.Empty
		switch borders {
		case bordersWhite:
			owner = board.White
		case bordersBlack:
			owner = board.Black
		}
		regions = append(regions, Region{Owner: owner, Points: points})
	})
	return regions
}

func ownedBy(regions []Region, c board.Stone) int {
	return lo.SumBy(regions, func(r Region) int {
		if r.Owner != c {
			return 0
		}
		return len(r.Points)
	})
}

// CountTerritory returns the territory of player 1 (White) and player 2
// (Black). Neutral regions count for nobody. An empty board has no
// territory at all since nothing borders it.
func CountTerritory(g board.Grid) (int, int) {
	regions := Regions(g)
	return ownedBy(regions, board.White), ownedBy(regions, board.Black)
}

// TerritoryScore is Japanese counting: territory minus the player's own
// stones taken by the opponent. Komi goes to player 1.
//
// taken1 and taken2 are the prisoners held by player 1 and player 2.
func TerritoryScore(t1, t2, taken1, taken2 int, komi float64) (float64, float64) {
	s1 := float64(t1-taken2) + komi
	s2 := float64(t2 - taken1)
	return s1, s2
}

// AreaScore is Chinese counting: territory plus stones on the board. Komi
// goes to player 1.
func AreaScore(t1, t2, stones1, stones2 int, komi float64) (float64, float64) {
	s1 := float64(t1+stones1) + komi
	s2 := float64(t2 + stones2)
	return s1, s2
}
