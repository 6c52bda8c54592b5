package tileset

import "github.com/milk9111/levelview/common"

const (
	maskN uint8 = 1 << iota
	maskNE
	maskE
	maskSE
	maskS
	maskSW
	maskW
	maskNW
)

// 47-tile autotile mask order (ascending valid masks with corner constraints).
var auto47MaskOrder = []uint8{
	28, 124, 112, 16, 247, 223, 125, 31, 255, 241, 17, 253, 127, 95, 7, 199, 193, 1, 117, 87, 245, 4, 68, 64, 0, 213, 93, 215, 23, 209, 116, 92, 20, 84, 80, 29, 113, 197, 71, 21, 85, 81, 221, 119, 5, 69, 65,
}

// Variants is the number of stitching variants per tile.
var Variants = len(auto47MaskOrder)

var auto47MaskToIndex = initAuto47MaskToIndex()

func initAuto47MaskToIndex() []int {
	lookup := make([]int, 256)
	for i := range lookup {
		lookup[i] = -1
	}
	for idx, mask := range auto47MaskOrder {
		lookup[int(mask)] = idx
	}
	return lookup
}

// VariantForMask returns the autotile column for a neighbour mask, or -1
// when the mask breaks the corner constraints.
func VariantForMask(mask uint8) int {
	return auto47MaskToIndex[int(mask)]
}

// NeighborMask computes the 8-neighbour mask of cell (x, y). Corners only
// count when both adjacent edges are connected.
func NeighborMask(x, y int, connected func(x, y int) bool) uint8 {
	var mask uint8
	n := connected(x, y-1)
	e := connected(x+1, y)
	s := connected(x, y+1)
	w := connected(x-1, y)
	if n {
		mask |= maskN
	}
	if e {
		mask |= maskE
	}
	if s {
		mask |= maskS
	}
	if w {
		mask |= maskW
	}
	if n && e && connected(x+1, y-1) {
		mask |= maskNE
	}
	if s && e && connected(x+1, y+1) {
		mask |= maskSE
	}
	if s && w && connected(x-1, y+1) {
		mask |= maskSW
	}
	if n && w && connected(x-1, y-1) {
		mask |= maskNW
	}
	return mask
}

// Cell is one footprint cell of an object together with its stitching mask.
type Cell struct {
	X, Y int
	Mask uint8
}

// Stitch claims the w x h footprint at (x, y) in grid for the active layer
// and returns every footprint cell with its neighbour mask. A neighbour is
// connected when it is claimed by the same layer, either by this object or
// by an object painted earlier in the redraw; cells owned by deeper layers
// are open edges. Footprints larger than the coordinate range yield no
// cells.
func Stitch(grid *Occupancy, x, y, w, h int) []Cell {
	if w <= 0 || h <= 0 || w > common.MaxCoord || h > common.MaxCoord {
		return nil
	}
	layer, ok := grid.ActiveLayer()
	for cy := y; cy < y+h; cy++ {
		for cx := x; cx < x+w; cx++ {
			grid.Claim(cx, cy)
		}
	}
	inside := func(cx, cy int) bool {
		return cx >= x && cx < x+w && cy >= y && cy < y+h
	}
	connected := func(cx, cy int) bool {
		if inside(cx, cy) {
			return true
		}
		if !ok {
			return false
		}
		owner, claimed := grid.Owner(cx, cy)
		return claimed && owner == layer
	}
	cells := make([]Cell, 0, w*h)
	for cy := y; cy < y+h; cy++ {
		for cx := x; cx < x+w; cx++ {
			cells = append(cells, Cell{X: cx, Y: cy, Mask: NeighborMask(cx, cy, connected)})
		}
	}
	return cells
}
