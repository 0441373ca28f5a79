package segment

import "errors"

// ErrNotEnoughSpace is returned when grouping needs more slots than cells.
var ErrNotEnoughSpace = errors.New("segment: not enough space to group bitmap")

// Group lists the cells sharing the same non-zero mask, left to right.
type Group struct {
	Bits    uint8
	indexes [CellCount]int
	n       int
}

// Indexes returns the cell indexes of the group in scan order.
func (g *Group) Indexes() []int {
	return g.indexes[:g.n]
}

func (g *Group) push(index int) error {
	if g.n == len(g.indexes) {
		return ErrNotEnoughSpace
	}
	g.indexes[g.n] = index
	g.n++
	return nil
}

// Groups is a fixed capacity map from mask to the cells showing it. Groups
// keep the order in which their mask was first seen.
type Groups struct {
	groups [CellCount]Group
	n      int
}

// Len returns the number of distinct non-zero masks.
func (gs *Groups) Len() int {
	return gs.n
}

// At returns the i-th group.
func (gs *Groups) At(i int) *Group {
	return &gs.groups[i]
}

// Get returns the cells lit with bits.
func (gs *Groups) Get(bits uint8) ([]int, bool) {
	if g := gs.find(bits); g != nil {
		return g.Indexes(), true
	}
	return nil, false
}

func (gs *Groups) find(bits uint8) *Group {
	for i := 0; i < gs.n; i++ {
		if gs.groups[i].Bits == bits {
			return &gs.groups[i]
		}
	}
	return nil
}

func (gs *Groups) insert(bits uint8, index int) error {
	if g := gs.find(bits); g != nil {
		return g.push(index)
	}
	if gs.n == len(gs.groups) {
		return ErrNotEnoughSpace
	}
	g := &gs.groups[gs.n]
	*g = Group{Bits: bits}
	gs.n++
	return g.push(index)
}

// Group collects the cells of b by mask. Blank cells need no drive cycle
// and are skipped.
func (b Bitmap) Group() (Groups, error) {
	var gs Groups
	for index, bits := range b {
		if bits == 0 {
			continue
		}
		if err := gs.insert(bits, index); err != nil {
			return Groups{}, err
		}
	}
	return gs, nil
}
