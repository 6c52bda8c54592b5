package view

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/milk9111/levelview/common"
	"github.com/milk9111/levelview/levels"
	"github.com/milk9111/levelview/surface"
)

// drawLayers paints tile layers from the deepest up to layer 0. Inside a
// layer objects are painted last to first, so earlier objects end up on top.
func (v *View) drawLayers(dst surface.Surface, redraw image.Rectangle) {
	for l := levels.NumLayers - 1; l >= 0; l-- {
		if !v.LayerVisible(l) {
			continue
		}
		v.grid.MarkLayerBoundary(l)

		objs := v.level.Objects[l]
		for i := len(objs) - 1; i >= 0; i-- {
			obj := objs[i]

			// culling is per object; tiles of a partly visible object are all drawn
			if !common.CellRect(obj.X, obj.Y, obj.Width, obj.Height).Overlaps(redraw) {
				continue
			}

			ts, err := v.tilesets.Lookup(obj.TilesetIndex())
			if err != nil {
				v.logger.Debug("skip object",
					slog.String("id", fmt.Sprintf("%04X", obj.ID)),
					slog.Int("layer", l),
					slog.Int("index", i),
					slog.Any("err", err))
				continue
			}
			ts.DrawObject(dst, v.grid, obj.TileID(), obj.X, obj.Y, obj.Width, obj.Height, l)
		}
	}
}
