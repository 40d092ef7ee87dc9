package domain

import "fmt"

const initialSnakeLength = 3

// Snake is the player's body on the field. The head is Tiles()[0].
//
// The body lives in a ring buffer so a step is a head push plus a tail
// pop regardless of length. The tail dropped by the last step is kept as
// the phantom tile, which Feed puts back to grow the snake by one.
type Snake struct {
	field *Field

	ring   []Tile
	head   int
	length int

	direction    Direction
	oldDirection Direction

	phantom    Tile
	hasPhantom bool
}

// NewSnake places a snake of three tiles with its head at (x, y) and the
// body trailing downwards.
func NewSnake(field *Field, x, y int) *Snake {
	tiles := make([]Tile, 0, initialSnakeLength)
	for i := 0; i < initialSnakeLength; i++ {
		tiles = append(tiles, field.Normalize(Tile{X: x, Y: y + i}))
	}
	s, _ := NewSnakeFromTiles(field, tiles)
	return s
}

func NewSnakeFromTiles(field *Field, tiles []Tile) (*Snake, error) {
	if len(tiles) == 0 {
		return nil, ErrEmptySnake
	}
	for _, t := range tiles {
		if !field.Contains(t) {
			return nil, fmt.Errorf("snake tile %v outside %dx%d field", t, field.Width, field.Height)
		}
	}

	ring := make([]Tile, len(tiles), 2*len(tiles))
	copy(ring, tiles)
	ring = ring[:cap(ring)]

	return &Snake{
		field:        field,
		ring:         ring,
		length:       len(tiles),
		direction:    DirectionNone,
		oldDirection: DirectionNone,
	}, nil
}

func (s *Snake) at(i int) Tile {
	return s.ring[(s.head+i)%len(s.ring)]
}

func (s *Snake) Head() Tile {
	return s.at(0)
}

func (s *Snake) Tail() Tile {
	return s.at(s.length - 1)
}

func (s *Snake) Len() int {
	return s.length
}

func (s *Snake) Tiles() []Tile {
	result := make([]Tile, s.length)
	for i := range result {
		result[i] = s.at(i)
	}
	return result
}

func (s *Snake) Contains(t Tile) bool {
	for i := 0; i < s.length; i++ {
		if s.at(i).Equals(t) {
			return true
		}
	}
	return false
}

// HitsItself reports whether the head shares a tile with another segment.
func (s *Snake) HitsItself() bool {
	head := s.Head()
	for i := 1; i < s.length; i++ {
		if s.at(i).Equals(head) {
			return true
		}
	}
	return false
}

func (s *Snake) Direction() Direction {
	return s.direction
}

func (s *Snake) OldDirection() Direction {
	return s.oldDirection
}

// SetDirection sets the direction of the next step unconditionally. The
// reversal rule is enforced by Game.Steer.
func (s *Snake) SetDirection(d Direction) {
	s.direction = d
}

// PhantomTile returns the tail position saved by the last step, if it has
// not been consumed by Feed yet.
func (s *Snake) PhantomTile() (Tile, bool) {
	return s.phantom, s.hasPhantom
}

// DoStep moves the snake one tile in its direction. Every segment takes the
// position of its predecessor and the head wraps around the field edges.
// It does nothing while the direction is DirectionNone.
func (s *Snake) DoStep() {
	if s.direction == DirectionNone {
		return
	}

	s.phantom = s.Tail()
	s.hasPhantom = true

	newHead := s.field.Move(s.Head(), s.direction)
	s.head = (s.head - 1 + len(s.ring)) % len(s.ring)
	s.ring[s.head] = newHead

	s.oldDirection = s.direction
}

// Feed appends the phantom tile as the new tail.
func (s *Snake) Feed() error {
	if !s.hasPhantom {
		return ErrNoPhantomTile
	}

	if s.length == len(s.ring) {
		s.grow()
	}
	s.ring[(s.head+s.length)%len(s.ring)] = s.phantom
	s.length++

	s.phantom = Tile{}
	s.hasPhantom = false
	return nil
}

func (s *Snake) grow() {
	ring := make([]Tile, 2*len(s.ring))
	for i := 0; i < s.length; i++ {
		ring[i] = s.at(i)
	}
	s.ring = ring
	s.head = 0
}
