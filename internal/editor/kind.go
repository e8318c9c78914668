package editor

import (
	"fmt"

	"isoworld/internal/world"
)

// BlockKind is a placeable block, in the order the placement cursor cycles
// through them.
type BlockKind int

const (
	KindEmpty BlockKind = iota
	KindWood
	KindWoodRampXP
	KindWoodRampZP
	KindWoodRampZN
	KindWoodRampXN
	kindCount
)

var kindTiles = [kindCount]world.Tile{
	KindEmpty:      {},
	KindWood:       world.Solid(world.Wood),
	KindWoodRampXP: world.Ramp(world.WoodRamp, world.XP),
	KindWoodRampZP: world.Ramp(world.WoodRamp, world.ZP),
	KindWoodRampZN: world.Ramp(world.WoodRamp, world.ZN),
	KindWoodRampXN: world.Ramp(world.WoodRamp, world.XN),
}

var kindNames = [kindCount]string{
	KindEmpty:      "empty",
	KindWood:       "wood",
	KindWoodRampXP: "wood_ramp+x",
	KindWoodRampZP: "wood_ramp+z",
	KindWoodRampZN: "wood_ramp-z",
	KindWoodRampXN: "wood_ramp-x",
}

func (k BlockKind) Valid() bool {
	return k >= 0 && k < kindCount
}

func (k BlockKind) String() string {
	if k.Valid() {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Tile returns the tile record written when k is placed.
func (k BlockKind) Tile() (world.Tile, bool) {
	if !k.Valid() {
		return world.Tile{}, false
	}
	return kindTiles[k], true
}

// NextKind cycles to the next placeable kind, wrapping back to empty.
func NextKind(k BlockKind) BlockKind {
	next := k + 1
	if !next.Valid() {
		return KindEmpty
	}
	return next
}
