package domain

// Wall is a fixed rectangular block of tiles. It never changes after
// construction.
type Wall struct {
	tiles []Tile
}

// NewWall covers every field tile in the inclusive rectangle spanned by
// the corners a and b. The corners may be given in any order.
func NewWall(field *Field, a, b Tile) *Wall {
	minX, maxX := min(a.X, b.X), max(a.X, b.X)
	minY, maxY := min(a.Y, b.Y), max(a.Y, b.Y)

	w := &Wall{}
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			t := Tile{X: x, Y: y}
			if field.Contains(t) {
				w.tiles = append(w.tiles, t)
			}
		}
	}
	return w
}

// BorderWalls returns the four walls along the field edges. The corner
// tiles belong to the top and bottom walls.
func BorderWalls(field *Field) []*Wall {
	right, bottom := field.Width-1, field.Height-1
	walls := []*Wall{NewWall(field, Tile{0, 0}, Tile{right, 0})}
	if bottom > 0 {
		walls = append(walls, NewWall(field, Tile{0, bottom}, Tile{right, bottom}))
	}
	if bottom > 1 {
		walls = append(walls,
			NewWall(field, Tile{0, 1}, Tile{0, bottom - 1}),
			NewWall(field, Tile{right, 1}, Tile{right, bottom - 1}),
		)
	}
	return walls
}

func (w *Wall) Tiles() []Tile {
	result := make([]Tile, len(w.tiles))
	copy(result, w.tiles)
	return result
}

func (w *Wall) Contains(t Tile) bool {
	for _, wt := range w.tiles {
		if wt.Equals(t) {
			return true
		}
	}
	return false
}
