package domain

import "fmt"

// Tile addresses one cell of the field.
type Tile struct {
	X int
	Y int
}

func (t Tile) Add(other Tile) Tile {
	return Tile{
		X: t.X + other.X,
		Y: t.Y + other.Y,
	}
}

func (t Tile) Equals(other Tile) bool {
	return t.X == other.X && t.Y == other.Y
}

func (t Tile) String() string {
	return fmt.Sprintf("(%d,%d)", t.X, t.Y)
}
