package board

// A Group is a maximal set of orthogonally connected stones of one colour.
// Groups are recomputed on demand and never stored.
type Group struct {
	Color  Stone
	Stones []Position
}

func (g Group) Size() int {
	return len(g.Stones)
}

func (g Group) Empty() bool {
	return len(g.Stones) == 0
}

// FindGroup returns the group containing pos. An empty or out-of-bounds
// position yields an empty group. The walk uses an explicit worklist and a
// visited set sized to the board, so it terminates on any shape and never
// grows the call stack.
func FindGroup(g Grid, pos Position) Group {
	if !g.InBounds(pos) {
		return Group{}
	}
	color := g.Get(pos)
	if color == Empty {
		return Group{}
	}
	n := g.Dim()
	visited := make([]bool, n*n)
	visited[pos.Row*n+pos.Col] = true
	stack := []Position{pos}
	group := Group{Color: color}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		group.Stones = append(group.Stones, p)
		for _, a := range p.adjacent() {
			if !g.InBounds(a) || visited[a.Row*n+a.Col] {
				continue
			}
			if g.Get(a) == color {
				visited[a.Row*n+a.Col] = true
				stack = append(stack, a)
			}
		}
	}
	return group
}

// Liberties counts the distinct empty intersections orthogonally adjacent to
// any stone of the group.
func Liberties(g Grid, grp Group) int {
	if grp.Empty() {
		return 0
	}
	n := g.Dim()
	seen := make([]bool, n*n)
	libs := 0
	for _, s := range grp.Stones {
		for _, a := range s.adjacent() {
			if !g.InBounds(a) || seen[a.Row*n+a.Col] {
				continue
			}
			if g.Get(a) == Empty {
				seen[a.Row*n+a.Col] = true
				libs++
			}
		}
	}
	return libs
}

// HasLiberties is Liberties(g, grp) > 0, but stops at the first liberty.
func HasLiberties(g Grid, grp Group) bool {
	for _, s := range grp.Stones {
		for _, a := range s.adjacent() {
			if g.InBounds(a) && g.Get(a) == Empty {
				return true
			}
		}
	}
	return false
}

// RemoveGroup empties every intersection of the group.
func RemoveGroup(g MutableGrid, grp Group) {
	for _, s := range grp.Stones {
		g.Set(s, Empty)
	}
}
