// Package tileset rasterizes placed tile objects and keeps the per-redraw
// occupancy cache used to stitch neighbouring objects together.
package tileset

import (
	"errors"
	"fmt"

	"github.com/milk9111/levelview/surface"
)

// Slots is the number of tilesets a level can reference (2-bit index).
const Slots = 4

// ErrMissing is returned when an object references a tileset slot that has
// nothing loaded.
var ErrMissing = errors.New("tileset not loaded")

// Tileset draws one placed object. x, y, w and h are in cells. The
// implementation claims the cells it paints in grid and may consult it for
// already painted neighbours.
type Tileset interface {
	DrawObject(dst surface.Surface, grid *Occupancy, tileID, x, y, w, h, layer int)
}

// Registry holds the tilesets of a level by slot.
type Registry struct {
	sets [Slots]Tileset
}

// Set installs ts in slot i. A nil ts empties the slot.
func (r *Registry) Set(i int, ts Tileset) error {
	if i < 0 || i >= Slots {
		return fmt.Errorf("tileset: slot %d out of range 0..%d", i, Slots-1)
	}
	r.sets[i] = ts
	return nil
}

// Lookup returns the tileset in slot i.
func (r *Registry) Lookup(i int) (Tileset, error) {
	if i < 0 || i >= Slots || r.sets[i] == nil {
		return nil, fmt.Errorf("tileset %d: %w", i, ErrMissing)
	}
	return r.sets[i], nil
}

// Loaded reports how many slots are filled.
func (r *Registry) Loaded() int {
	n := 0
	for _, ts := range r.sets {
		if ts != nil {
			n++
		}
	}
	return n
}
