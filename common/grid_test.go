package common

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPixelToCell(t *testing.T) {
	cases := []struct {
		name string
		px   int
		want int
	}{
		{"origin", 0, 0},
		{"inside_first", 19, 0},
		{"second_cell", 20, 1},
		{"scenario_press", 50, 2},
		{"scenario_move", 90, 4},
		{"negative_floors", -1, -1},
		{"negative_exact", -20, -1},
		{"negative_past", -21, -2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, PixelToCell(c.px))
		})
	}
}

func TestFineToPixel(t *testing.T) {
	cases := []struct {
		name string
		f    int
		want int
	}{
		{"zero", 0, 0},
		{"sub_cell_snaps_down", 15, 0},
		{"one_cell", 16, 20},
		{"between", 40, 40},
		{"negative", -1, -20},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, FineToPixel(c.f))
		})
	}
}

func TestRects(t *testing.T) {
	assert.Equal(t, image.Rect(40, 40, 100, 100), CellRect(2, 2, 3, 3))
	assert.Equal(t, image.Rect(20, 20, 20, 20), CellRect(1, 1, 0, 0))
	assert.Equal(t, image.Rect(20, 40, 60, 60), FineRect(16, 32, 32, 16))
	// position and size snap independently
	assert.Equal(t, image.Rect(20, 20, 40, 40), FineRect(31, 31, 31, 31))
}

func TestDrawAndPickAgree(t *testing.T) {
	for cx := -3; cx < 5; cx++ {
		r := CellRect(cx, 0, 1, 1)
		for px := r.Min.X; px < r.Max.X; px++ {
			assert.Equal(t, cx, PixelToCell(px), "pixel %d", px)
		}
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-50, 0, MaxCoord))
	assert.Equal(t, MaxCoord, Clamp(100000, 0, MaxCoord))
	assert.Equal(t, 7, Clamp(7, 0, MaxCoord))
}
