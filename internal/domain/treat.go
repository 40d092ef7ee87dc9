package domain

import "math/rand"

// Treat is a single tile that lets the snake grow when eaten.
type Treat struct {
	field *Field
	tile  Tile
}

func NewTreat(field *Field, at Tile) *Treat {
	return &Treat{
		field: field,
		tile:  field.Normalize(at),
	}
}

func (t *Treat) Tile() Tile {
	return t.tile
}

func (t *Treat) Tiles() []Tile {
	return []Tile{t.tile}
}

// Regenerate moves the treat to a tile chosen uniformly among the tiles
// not covered by any of the given entities. When no tile is free it
// returns ErrFieldFull and the treat stays where it is.
func (t *Treat) Regenerate(rng *rand.Rand, entities ...Entity) error {
	occupied := make([]bool, t.field.Area())
	for _, e := range entities {
		if e == nil {
			continue
		}
		for _, et := range e.Tiles() {
			if t.field.Contains(et) {
				occupied[t.field.Index(et)] = true
			}
		}
	}

	free := 0
	for _, o := range occupied {
		if !o {
			free++
		}
	}
	if free == 0 {
		return ErrFieldFull
	}

	idx := rng.Intn(free)
	for i, o := range occupied {
		if o {
			continue
		}
		if idx == 0 {
			t.tile = t.field.TileAt(i)
			return nil
		}
		idx--
	}

	return ErrFieldFull
}
