package tileset

import "github.com/milk9111/levelview/common"

// BoundaryKey is the reserved cell key that records which layer is being
// painted. It aliases cell (0xFFFF, 0xFFFF), which therefore can never be
// claimed.
const BoundaryKey uint32 = 0xFFFFFFFF

// Occupancy records, for the redraw in progress, which layer owns each cell
// painted so far. Tilesets read it to pick edge and corner variants so that
// neighbouring objects stitch together.
//
// Values are stored as layer+1. A cache is only meaningful inside the
// redraw that filled it.
type Occupancy struct {
	cells map[uint32]int
}

// NewOccupancy returns an empty cache.
func NewOccupancy() *Occupancy {
	return &Occupancy{cells: make(map[uint32]int)}
}

// CellKey packs a cell position into a cache key. Cells outside
// [0, common.MaxCoord] share keys with cells inside it; use inRange first.
func CellKey(x, y int) uint32 {
	return uint32(y&0xFFFF)<<16 | uint32(x&0xFFFF)
}

func inRange(x, y int) bool {
	return x >= 0 && x <= common.MaxCoord && y >= 0 && y <= common.MaxCoord
}

// Reset drops every entry, including the layer boundary.
func (o *Occupancy) Reset() {
	clear(o.cells)
}

// MarkLayerBoundary records that the following objects belong to layer.
func (o *Occupancy) MarkLayerBoundary(layer int) {
	o.cells[BoundaryKey] = layer + 1
}

// ActiveLayer returns the layer recorded by the last MarkLayerBoundary.
func (o *Occupancy) ActiveLayer() (int, bool) {
	v, ok := o.cells[BoundaryKey]
	if !ok {
		return 0, false
	}
	return v - 1, true
}

// Owner returns the layer that claimed the cell, if any. Cells outside the
// coordinate range are never owned.
func (o *Occupancy) Owner(x, y int) (int, bool) {
	if !inRange(x, y) {
		return 0, false
	}
	key := CellKey(x, y)
	if key == BoundaryKey {
		return 0, false
	}
	v, ok := o.cells[key]
	if !ok {
		return 0, false
	}
	return v - 1, true
}

// Claim marks the cell as owned by the active layer. It reports false when
// no layer boundary has been marked, the cell is outside the coordinate
// range or it aliases the boundary key.
func (o *Occupancy) Claim(x, y int) bool {
	if !inRange(x, y) {
		return false
	}
	v, ok := o.cells[BoundaryKey]
	if !ok {
		return false
	}
	key := CellKey(x, y)
	if key == BoundaryKey {
		return false
	}
	o.cells[key] = v
	return true
}

// Len returns the number of claimed cells.
func (o *Occupancy) Len() int {
	n := len(o.cells)
	if _, ok := o.cells[BoundaryKey]; ok {
		n--
	}
	return n
}
