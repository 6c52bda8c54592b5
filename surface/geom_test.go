package surface

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCornerInset(t *testing.T) {
	tests := []struct {
		name   string
		r      image.Rectangle
		radius float64
		want   int
	}{
		{"marker", image.Rect(0, 0, 20, 20), 3, 3},
		{"rounds half up", image.Rect(0, 0, 20, 20), 2.5, 3},
		{"clamped to half the short side", image.Rect(0, 0, 40, 5), 4, 2},
		{"thin rect", image.Rect(0, 0, 40, 1), 4, 0},
		{"no radius", image.Rect(0, 0, 20, 20), 0, 0},
		{"negative radius", image.Rect(0, 0, 20, 20), -3, 0},
		{"empty", image.Rectangle{}, 4, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CornerInset(tt.r, tt.radius))
		})
	}
}

func TestChamferBandsCoverOnce(t *testing.T) {
	r := image.Rect(10, 10, 30, 24)
	bands := ChamferBands(r, 3)
	assert.Len(t, bands, 3)

	covered := map[image.Point]int{}
	for _, b := range bands {
		assert.True(t, b.In(r))
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				covered[image.Pt(x, y)]++
			}
		}
	}
	for p, n := range covered {
		assert.Equal(t, 1, n, "pixel %v", p)
	}
	// four 3x3 corners are cut away
	assert.Len(t, covered, r.Dx()*r.Dy()-4*9)
	assert.NotContains(t, covered, r.Min)
}

func TestChamferBandsDegenerate(t *testing.T) {
	assert.Nil(t, ChamferBands(image.Rectangle{}, 3))
	r := image.Rect(0, 0, 8, 8)
	assert.Equal(t, []image.Rectangle{r}, ChamferBands(r, 0))
	// chamfered down to its centre nothing is left
	assert.Empty(t, ChamferBands(r, 4))
}

func TestStrokeCenter(t *testing.T) {
	x, y, w, h := StrokeCenter(image.Rect(0, 0, 10, 10), 1)
	assert.Equal(t, []float64{0.5, 0.5, 9, 9}, []float64{x, y, w, h})

	x, y, w, h = StrokeCenter(image.Rect(4, 6, 24, 16), 2)
	assert.Equal(t, []float64{5, 7, 18, 8}, []float64{x, y, w, h})
}
