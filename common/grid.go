package common

import "image"

const (
	// CellSize is the on-screen size of one grid cell in pixels.
	CellSize = 20
	// FineUnitsPerCell is the number of annotation units in one cell.
	FineUnitsPerCell = 16
	// MaxCoord is the largest cell coordinate an object can hold.
	MaxCoord = 0xFFFF
)

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// CellToPixel converts a cell coordinate to the pixel coordinate of the cell's top-left corner.
func CellToPixel(c int) int {
	return c * CellSize
}

// PixelToCell converts a surface pixel coordinate to the cell containing it.
func PixelToCell(p int) int {
	return floorDiv(p, CellSize)
}

// PixelToCellPoint converts a surface pixel position to a cell position.
func PixelToCellPoint(p image.Point) image.Point {
	return image.Pt(PixelToCell(p.X), PixelToCell(p.Y))
}

// FineToPixel converts a fine annotation unit to pixels. Annotations snap to
// the cell grid: floor(f/16)*20.
func FineToPixel(f int) int {
	return floorDiv(f, FineUnitsPerCell) * CellSize
}

// FinePoint converts a fine-unit position to a pixel position.
func FinePoint(x, y int) image.Point {
	return image.Pt(FineToPixel(x), FineToPixel(y))
}

// CellRect returns the pixel bounds of a w x h cell block at (x, y).
func CellRect(x, y, w, h int) image.Rectangle {
	px, py := CellToPixel(x), CellToPixel(y)
	return image.Rect(px, py, px+w*CellSize, py+h*CellSize)
}

// FineRect returns the pixel bounds of a rectangle given in fine units. Each
// component is converted on its own, so the size is snapped independently
// of the position.
func FineRect(x, y, w, h int) image.Rectangle {
	p := FinePoint(x, y)
	return image.Rect(p.X, p.Y, p.X+FineToPixel(w), p.Y+FineToPixel(h))
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
