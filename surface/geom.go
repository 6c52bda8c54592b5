package surface

import "image"

// CornerInset is the chamfer size that stands in for a corner of radius,
// limited to half the short side of r.
func CornerInset(r image.Rectangle, radius float64) int {
	k := int(radius + 0.5)
	if m := min(r.Dx(), r.Dy()) / 2; k > m {
		k = m
	}
	return max(k, 0)
}

// ChamferBands splits a rounded rectangle fill into non-overlapping
// rectangles, so a translucent fill blends once per pixel.
func ChamferBands(r image.Rectangle, radius float64) []image.Rectangle {
	if r.Empty() {
		return nil
	}
	k := CornerInset(r, radius)
	if k == 0 {
		return []image.Rectangle{r}
	}
	bands := []image.Rectangle{
		image.Rect(r.Min.X+k, r.Min.Y, r.Max.X-k, r.Min.Y+k),
		image.Rect(r.Min.X, r.Min.Y+k, r.Max.X, r.Max.Y-k),
		image.Rect(r.Min.X+k, r.Max.Y-k, r.Max.X-k, r.Max.Y),
	}
	out := bands[:0]
	for _, b := range bands {
		if !b.Empty() {
			out = append(out, b)
		}
	}
	return out
}

// StrokeCenter returns the rectangle traced by the centre of a stroke of
// width that stays inside r: min corner x, y and size w, h.
func StrokeCenter(r image.Rectangle, width float64) (x, y, w, h float64) {
	return float64(r.Min.X) + width/2, float64(r.Min.Y) + width/2,
		float64(r.Dx()) - width, float64(r.Dy()) - width
}
