// Package world provides the tile grid, carving kernel, and distance field
// used by map generation.
package world

// Tile represents a single map tile.
type Tile uint8

const (
	// TileSolid is terrain the player can grapple onto.
	TileSolid Tile = iota
	// TileEmpty is open tunnel space.
	TileEmpty
	// TileHazard is a freeze tile lining the tunnel walls.
	TileHazard
	// TilePlatform is a standable ledge placed inside open areas.
	TilePlatform
	// TileStart marks the map start. Exactly one per accepted map.
	TileStart
	// TileFinish marks the map finish. Exactly one per accepted map.
	TileFinish
)

// IsSolid returns true for terrain tiles.
func (t Tile) IsSolid() bool {
	return t == TileSolid
}

// IsTraversable returns true if the player can occupy the tile without
// failing the run.
func (t Tile) IsTraversable() bool {
	switch t {
	case TileEmpty, TilePlatform, TileStart, TileFinish:
		return true
	default:
		return false
	}
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	switch t {
	case TileSolid:
		return '#'
	case TileEmpty:
		return ' '
	case TileHazard:
		return '*'
	case TilePlatform:
		return '='
	case TileStart:
		return 'S'
	case TileFinish:
		return 'F'
	default:
		return '?'
	}
}

// String returns a human-readable tile name.
func (t Tile) String() string {
	switch t {
	case TileSolid:
		return "solid"
	case TileEmpty:
		return "empty"
	case TileHazard:
		return "hazard"
	case TilePlatform:
		return "platform"
	case TileStart:
		return "start"
	case TileFinish:
		return "finish"
	default:
		return "unknown"
	}
}
