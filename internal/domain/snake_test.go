package domain

import (
	"errors"
	"math/rand"
	"testing"
)

func mustField(t *testing.T, w, h int) *Field {
	t.Helper()
	f, err := NewField(w, h)
	if err != nil {
		t.Fatalf("NewField(%d, %d): %v", w, h, err)
	}
	return f
}

func mustSnake(t *testing.T, f *Field, tiles ...Tile) *Snake {
	t.Helper()
	s, err := NewSnakeFromTiles(f, tiles)
	if err != nil {
		t.Fatalf("NewSnakeFromTiles: %v", err)
	}
	return s
}

func equalTiles(a, b []Tile) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equals(b[i]) {
			return false
		}
	}
	return true
}

func TestNewSnake(t *testing.T) {
	f := mustField(t, 33, 33)
	s := NewSnake(f, 16, 16)

	want := []Tile{{16, 16}, {16, 17}, {16, 18}}
	if got := s.Tiles(); !equalTiles(got, want) {
		t.Errorf("Tiles() = %v, want %v", got, want)
	}
	if s.Direction() != DirectionNone || s.OldDirection() != DirectionNone {
		t.Errorf("expected no direction, got %v/%v", s.Direction(), s.OldDirection())
	}
	if _, ok := s.PhantomTile(); ok {
		t.Error("new snake should not have a phantom tile")
	}
}

func TestNewSnakeWrapsBody(t *testing.T) {
	f := mustField(t, 5, 5)
	s := NewSnake(f, 1, 4)

	want := []Tile{{1, 4}, {1, 0}, {1, 1}}
	if got := s.Tiles(); !equalTiles(got, want) {
		t.Errorf("Tiles() = %v, want %v", got, want)
	}
}

func TestNewSnakeFromTilesRejectsBadInput(t *testing.T) {
	f := mustField(t, 5, 5)

	if _, err := NewSnakeFromTiles(f, nil); !errors.Is(err, ErrEmptySnake) {
		t.Errorf("empty body: got %v, want ErrEmptySnake", err)
	}
	if _, err := NewSnakeFromTiles(f, []Tile{{5, 0}}); err == nil {
		t.Error("tile outside the field should be rejected")
	}
}

func TestDoStepWithoutDirection(t *testing.T) {
	f := mustField(t, 5, 5)
	s := mustSnake(t, f, Tile{2, 2}, Tile{2, 3}, Tile{2, 4})
	before := s.Tiles()

	for i := 0; i < 10; i++ {
		s.DoStep()
	}

	if got := s.Tiles(); !equalTiles(got, before) {
		t.Errorf("Tiles() = %v, want unchanged %v", got, before)
	}
	if _, ok := s.PhantomTile(); ok {
		t.Error("a step without direction must not save a phantom tile")
	}
}

func TestDoStepExample(t *testing.T) {
	f := mustField(t, 5, 5)
	s := mustSnake(t, f, Tile{2, 2}, Tile{2, 3}, Tile{2, 4})
	s.SetDirection(DirectionUp)

	s.DoStep()

	want := []Tile{{2, 1}, {2, 2}, {2, 3}}
	if got := s.Tiles(); !equalTiles(got, want) {
		t.Errorf("Tiles() = %v, want %v", got, want)
	}
	if s.OldDirection() != DirectionUp {
		t.Errorf("OldDirection() = %v, want UP", s.OldDirection())
	}
	if p, ok := s.PhantomTile(); !ok || !p.Equals(Tile{2, 4}) {
		t.Errorf("PhantomTile() = %v, %v, want (2,4), true", p, ok)
	}
}

func TestDoStepWrapsAround(t *testing.T) {
	tests := []struct {
		name string
		head Tile
		dir  Direction
		want Tile
	}{
		{"left edge", Tile{0, 2}, DirectionLeft, Tile{4, 2}},
		{"right edge", Tile{4, 2}, DirectionRight, Tile{0, 2}},
		{"top edge", Tile{2, 0}, DirectionUp, Tile{2, 4}},
		{"bottom edge", Tile{2, 4}, DirectionDown, Tile{2, 0}},
		{"inside", Tile{2, 2}, DirectionRight, Tile{3, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := mustField(t, 5, 5)
			s := mustSnake(t, f, tt.head)
			s.SetDirection(tt.dir)
			s.DoStep()
			if got := s.Head(); !got.Equals(tt.want) {
				t.Errorf("Head() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFeedWithoutStep(t *testing.T) {
	f := mustField(t, 5, 5)
	s := mustSnake(t, f, Tile{2, 2}, Tile{2, 3})
	before := s.Tiles()

	if err := s.Feed(); !errors.Is(err, ErrNoPhantomTile) {
		t.Fatalf("Feed() = %v, want ErrNoPhantomTile", err)
	}
	if got := s.Tiles(); !equalTiles(got, before) {
		t.Errorf("Tiles() = %v, want unchanged %v", got, before)
	}
}

func TestFeedRestoresTail(t *testing.T) {
	f := mustField(t, 5, 5)
	s := mustSnake(t, f, Tile{2, 2}, Tile{2, 3}, Tile{2, 4})
	s.SetDirection(DirectionUp)
	oldTail := s.Tail()

	s.DoStep()
	if err := s.Feed(); err != nil {
		t.Fatalf("Feed() = %v", err)
	}

	if s.Len() != 4 {
		t.Errorf("Len() = %d, want 4", s.Len())
	}
	if got := s.Tail(); !got.Equals(oldTail) {
		t.Errorf("Tail() = %v, want %v", got, oldTail)
	}
	if _, ok := s.PhantomTile(); ok {
		t.Error("Feed should consume the phantom tile")
	}
	if err := s.Feed(); !errors.Is(err, ErrNoPhantomTile) {
		t.Errorf("second Feed() = %v, want ErrNoPhantomTile", err)
	}
}

// naiveSnake is the straightforward slice based model the ring buffer must
// agree with.
type naiveSnake struct {
	tiles   []Tile
	phantom *Tile
}

func (n *naiveSnake) step(f *Field, d Direction) {
	tail := n.tiles[len(n.tiles)-1]
	n.phantom = &tail
	for i := len(n.tiles) - 1; i > 0; i-- {
		n.tiles[i] = n.tiles[i-1]
	}
	n.tiles[0] = f.Move(n.tiles[0], d)
}

func (n *naiveSnake) feed() {
	n.tiles = append(n.tiles, *n.phantom)
	n.phantom = nil
}

func TestSnakeMatchesNaiveModel(t *testing.T) {
	f := mustField(t, 7, 6)
	start := []Tile{{3, 3}, {3, 4}, {3, 5}}
	s := mustSnake(t, f, start...)
	model := &naiveSnake{tiles: append([]Tile(nil), start...)}

	rng := rand.New(rand.NewSource(42))
	dirs := []Direction{DirectionUp, DirectionRight, DirectionDown, DirectionLeft}

	for i := 0; i < 500; i++ {
		d := dirs[rng.Intn(len(dirs))]
		pre := s.Tiles()

		s.SetDirection(d)
		s.DoStep()
		model.step(f, d)

		got := s.Tiles()
		for j := 1; j < len(got); j++ {
			if !got[j].Equals(pre[j-1]) {
				t.Fatalf("step %d: tile %d = %v, want pre-step tile %v", i, j, got[j], pre[j-1])
			}
		}
		if want := f.Normalize(pre[0].Add(d.Delta())); !got[0].Equals(want) {
			t.Fatalf("step %d: head = %v, want %v", i, got[0], want)
		}

		if rng.Intn(3) == 0 {
			if err := s.Feed(); err != nil {
				t.Fatalf("step %d: Feed() = %v", i, err)
			}
			model.feed()
		}

		if !equalTiles(s.Tiles(), model.tiles) {
			t.Fatalf("step %d: Tiles() = %v, want %v", i, s.Tiles(), model.tiles)
		}
	}
}

func TestHitsItself(t *testing.T) {
	f := mustField(t, 5, 5)
	s := mustSnake(t, f, Tile{2, 2}, Tile{3, 2}, Tile{3, 3}, Tile{2, 3}, Tile{1, 3})
	if s.HitsItself() {
		t.Fatal("fresh snake should not hit itself")
	}

	s.SetDirection(DirectionDown)
	s.DoStep()

	if !s.HitsItself() {
		t.Errorf("head %v should overlap body %v", s.Head(), s.Tiles())
	}
}

func TestTilesReturnsCopy(t *testing.T) {
	f := mustField(t, 5, 5)
	s := mustSnake(t, f, Tile{2, 2}, Tile{2, 3})

	tiles := s.Tiles()
	tiles[0] = Tile{0, 0}

	if got := s.Head(); !got.Equals(Tile{2, 2}) {
		t.Errorf("Head() = %v after mutating the copy, want (2,2)", got)
	}
}
