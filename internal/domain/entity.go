package domain

// Entity is anything that occupies tiles on the field. Tiles returns a
// copy; entities are only changed through their own methods.
type Entity interface {
	Tiles() []Tile
}

// Occupies reports whether any of the entities covers t.
func Occupies(t Tile, entities ...Entity) bool {
	for _, e := range entities {
		if e == nil {
			continue
		}
		for _, et := range e.Tiles() {
			if et.Equals(t) {
				return true
			}
		}
	}
	return false
}
