package levels

import "github.com/milk9111/levelview/common"

// NumLayers is the number of tile object layers in a level. Layer 0 is drawn
// on top.
const NumLayers = 2

// Level is the in-memory scene the view draws and edits.
type Level struct {
	// Objects holds the placed tile objects of each layer in storage order.
	Objects   [NumLayers][]Object `json:"objects"`
	Locations []Location          `json:"locations,omitempty"`
	Sprites   []Sprite            `json:"sprites,omitempty"`
	Entrances []Entrance          `json:"entrances,omitempty"`
	Zones     []Zone              `json:"zones,omitempty"`
	Paths     []Path              `json:"paths,omitempty"`
}

// Object is a rectangular block of tiles placed on a layer. Position and
// size are in cells.
type Object struct {
	ID     uint16 `json:"id"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"w"`
	Height int    `json:"h"`
}

// TilesetIndex returns the tileset slot encoded in bits 12-13 of the id.
func (o Object) TilesetIndex() int {
	return int(o.ID>>12) & 0x3
}

// TileID returns the object number inside its tileset (bits 0-11).
func (o Object) TileID() int {
	return int(o.ID & 0x0FFF)
}

// Contains reports whether the cell (cx, cy) lies inside the object.
func (o Object) Contains(cx, cy int) bool {
	return cx >= o.X && cx < o.X+o.Width && cy >= o.Y && cy < o.Y+o.Height
}

// SetPosition moves the object, clamping each axis to the valid cell range.
func (o *Object) SetPosition(x, y int) {
	o.X = common.Clamp(x, 0, common.MaxCoord)
	o.Y = common.Clamp(y, 0, common.MaxCoord)
}

// Location is a rectangular area in fine units.
type Location struct {
	ID     int `json:"id"`
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"w"`
	Height int `json:"h"`
}

// Sprite is an actor placement. X and Y are fine units; Width and Height
// are the marker size in pixels.
type Sprite struct {
	ID     int `json:"id"`
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"w"`
	Height int `json:"h"`
}

// Entrance is a spawn point in fine units.
type Entrance struct {
	ID int `json:"id"`
	X  int `json:"x"`
	Y  int `json:"y"`
}

// Zone is a camera/bounds area in fine units.
type Zone struct {
	ID     int `json:"id"`
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"w"`
	Height int `json:"h"`
}

// PathNode is one point of a progress path in fine units.
type PathNode struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Path is an ordered polyline of nodes.
type Path struct {
	ID    int        `json:"id"`
	Nodes []PathNode `json:"nodes"`
}

// ObjectCount returns the total number of placed objects over all layers.
func (l *Level) ObjectCount() int {
	n := 0
	for i := range l.Objects {
		n += len(l.Objects[i])
	}
	return n
}
