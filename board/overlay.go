package board

// An Overlay is a set of tentative changes layered over a base board. Reads
// fall through to the base unless the position was changed; the base is
// never written. This lets the validator try a move, its captures and the
// ko recapture without copying the whole board.
type Overlay struct {
	base  *Board
	delta map[Position]Stone
}

func NewOverlay(base *Board) *Overlay {
	return &Overlay{base: base, delta: make(map[Position]Stone, 8)}
}

func (o *Overlay) Dim() int {
	return o.base.Dim()
}

func (o *Overlay) InBounds(p Position) bool {
	return o.base.InBounds(p)
}

func (o *Overlay) Get(p Position) Stone {
	if s, ok := o.delta[p]; ok {
		return s
	}
	return o.base.Get(p)
}

func (o *Overlay) Set(p Position, s Stone) {
	if !o.base.InBounds(p) {
		return
	}
	o.delta[p] = s
}

// SameAsBase reports whether the overlay currently shows exactly the base
// position. Only changed intersections need to be compared.
func (o *Overlay) SameAsBase() bool {
	for p, s := range o.delta {
		if o.base.Get(p) != s {
			return false
		}
	}
	return true
}
