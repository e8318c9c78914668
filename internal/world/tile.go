package world

import "fmt"

// TileType enumerates the materials a cell can hold.
type TileType uint8

const (
	Air TileType = iota
	Dirt
	DirtRamp
	Stone
	Wood
	WoodRamp
	Lava
)

var tileTypeNames = [...]string{
	Air:      "air",
	Dirt:     "dirt",
	DirtRamp: "dirt_ramp",
	Stone:    "stone",
	Wood:     "wood",
	WoodRamp: "wood_ramp",
	Lava:     "lava",
}

func (t TileType) String() string {
	if int(t) < len(tileTypeNames) {
		return tileTypeNames[t]
	}
	return fmt.Sprintf("tile(%d)", uint8(t))
}

// IsRampType reports whether t is one of the sloped variants.
func (t TileType) IsRampType() bool {
	return t == DirtRamp || t == WoodRamp
}

// Direction is the facing of a ramp: the side(s) it rises toward.
type Direction uint8

const (
	None Direction = iota
	XP
	XN
	ZP
	ZN
	XPZP
	XNZN
	XPZN
	XNZP
)

var directionNames = [...]string{
	None: "none",
	XP:   "+x",
	XN:   "-x",
	ZP:   "+z",
	ZN:   "-z",
	XPZP: "+x+z",
	XNZN: "-x-z",
	XPZN: "+x-z",
	XNZP: "-x+z",
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}

// IsDiagonal reports whether d names two axes.
func (d Direction) IsDiagonal() bool {
	return d >= XPZP && d <= XNZP
}

// Tile is one cell of the grid. The zero value is air.
type Tile struct {
	Type      TileType
	Direction Direction
	IsRamp    bool
	IsFull    bool // occupies the whole cell and blocks occlusion
}

func (t Tile) String() string {
	if t.IsRamp {
		return fmt.Sprintf("%s(%s)", t.Type, t.Direction)
	}
	return t.Type.String()
}

// Solid returns a full block of the given material.
func Solid(t TileType) Tile {
	return Tile{Type: t, IsFull: true}
}

// Ramp returns a ramp of the given material facing d.
func Ramp(t TileType, d Direction) Tile {
	return Tile{Type: t, Direction: d, IsRamp: true}
}
