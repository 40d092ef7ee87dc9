package domain

import (
	"errors"
	"math/rand"
	"testing"
)

func newTestGame(t *testing.T, w, h int, snake []Tile, treat Tile, walls ...*Wall) *Game {
	t.Helper()
	f := mustField(t, w, h)
	s := mustSnake(t, f, snake...)
	return newGame(f, s, NewTreat(f, treat), walls, rand.New(rand.NewSource(1)))
}

func TestNewGameDefaults(t *testing.T) {
	cfg := DefaultGameConfig()
	g, err := NewGame(cfg, rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatalf("NewGame() = %v", err)
	}

	if g.State() != StateWaiting {
		t.Errorf("State() = %v, want WAITING", g.State())
	}
	if g.Snake().Len() != 3 {
		t.Errorf("snake length = %d, want 3", g.Snake().Len())
	}
	if got := g.Snake().Head(); !got.Equals(Tile{16, 16}) {
		t.Errorf("snake head = %v, want (16,16)", got)
	}
	if len(g.Walls()) != 4 {
		t.Errorf("got %d walls, want 4 border walls", len(g.Walls()))
	}
	if Occupies(g.Treat().Tile(), g.occupants()...) {
		t.Errorf("treat %v placed on an occupied tile", g.Treat().Tile())
	}
	if len(g.Entities()) != 6 {
		t.Errorf("Entities() has %d items, want 6", len(g.Entities()))
	}
}

func TestNewGameWithoutBorders(t *testing.T) {
	cfg := DefaultGameConfig()
	cfg.Borders = false

	g, err := NewGame(cfg, rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatalf("NewGame() = %v", err)
	}
	if len(g.Walls()) != 0 {
		t.Errorf("got %d walls, want none", len(g.Walls()))
	}
}

func TestNewGameInvalidConfig(t *testing.T) {
	cfg := DefaultGameConfig()
	cfg.Width = 3

	if _, err := NewGame(cfg, rand.New(rand.NewSource(1))); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("NewGame() = %v, want ErrInvalidConfig", err)
	}
}

func TestWaitingState(t *testing.T) {
	g := newTestGame(t, 5, 5, []Tile{{2, 2}, {2, 3}, {2, 4}}, Tile{0, 0})
	before := g.Snake().Tiles()

	g.Update()
	if g.State() != StateWaiting || !equalTiles(g.Snake().Tiles(), before) {
		t.Fatal("Update while waiting must not change anything")
	}

	if g.Steer(DirectionNone) || g.Steer(Direction(9)) {
		t.Error("non directional input must be ignored")
	}
	if g.State() != StateWaiting {
		t.Fatalf("State() = %v, want WAITING", g.State())
	}
	if g.TogglePause() {
		t.Error("pause must be ignored while waiting")
	}

	if !g.Steer(DirectionUp) {
		t.Fatal("Steer(UP) rejected while waiting")
	}
	if g.State() != StateRunning {
		t.Fatalf("State() = %v, want RUNNING", g.State())
	}
	if !equalTiles(g.Snake().Tiles(), before) {
		t.Error("steering must not move the snake before the next tick")
	}
}

func TestSteerRejectsReversal(t *testing.T) {
	g := newTestGame(t, 5, 5, []Tile{{2, 2}, {2, 3}, {2, 4}}, Tile{0, 0})
	g.Steer(DirectionUp)
	g.Update()

	want := []Tile{{2, 1}, {2, 2}, {2, 3}}
	if got := g.Snake().Tiles(); !equalTiles(got, want) {
		t.Fatalf("Tiles() = %v, want %v", got, want)
	}

	if !g.Steer(DirectionLeft) {
		t.Error("LEFT after UP should be accepted")
	}
	if !g.Steer(DirectionRight) {
		t.Error("RIGHT after UP should be accepted")
	}
	if g.Steer(DirectionDown) {
		t.Error("DOWN after UP should be rejected")
	}
	if got := g.Snake().Direction(); got != DirectionRight {
		t.Errorf("Direction() = %v, want RIGHT", got)
	}
}

func TestEatTreat(t *testing.T) {
	g := newTestGame(t, 5, 5, []Tile{{2, 2}, {2, 3}, {2, 4}}, Tile{2, 1})
	g.Steer(DirectionUp)

	g.Update()

	want := []Tile{{2, 1}, {2, 2}, {2, 3}, {2, 4}}
	if got := g.Snake().Tiles(); !equalTiles(got, want) {
		t.Errorf("Tiles() = %v, want %v", got, want)
	}
	if g.Score() != 1 {
		t.Errorf("Score() = %d, want 1", g.Score())
	}
	if g.Snake().Contains(g.Treat().Tile()) {
		t.Errorf("treat regenerated onto the snake at %v", g.Treat().Tile())
	}
	if g.State() != StateRunning {
		t.Errorf("State() = %v, want RUNNING", g.State())
	}
}

func TestSelfCollisionEndsGame(t *testing.T) {
	g := newTestGame(t, 5, 5, []Tile{{2, 2}, {3, 2}, {3, 3}, {2, 3}, {1, 3}}, Tile{0, 0})
	g.Steer(DirectionDown)

	g.Update()

	if g.State() != StateGameOver {
		t.Fatalf("State() = %v, want GAME OVER", g.State())
	}
}

func TestWallCollisionEndsGame(t *testing.T) {
	f := mustField(t, 5, 5)
	g := newTestGame(t, 5, 5, []Tile{{2, 1}, {2, 2}, {2, 3}}, Tile{3, 3}, BorderWalls(f)...)
	g.Steer(DirectionUp)

	g.Update()

	if g.State() != StateGameOver {
		t.Fatalf("State() = %v, want GAME OVER", g.State())
	}
}

func TestGameOverIsIdempotent(t *testing.T) {
	g := newTestGame(t, 5, 5, []Tile{{2, 2}, {3, 2}, {3, 3}, {2, 3}, {1, 3}}, Tile{0, 0})
	g.Steer(DirectionDown)
	g.Update()

	tiles := g.Snake().Tiles()
	treat := g.Treat().Tile()
	result := g.Result()

	for i := 0; i < 5; i++ {
		g.Update()
		if g.Steer(DirectionLeft) {
			t.Fatal("input accepted after game over")
		}
	}

	if g.State() != StateGameOver {
		t.Errorf("State() = %v, want GAME OVER", g.State())
	}
	if !equalTiles(g.Snake().Tiles(), tiles) || !g.Treat().Tile().Equals(treat) {
		t.Error("tiles changed after game over")
	}
	if g.Result() != result {
		t.Errorf("Result() = %+v, want %+v", g.Result(), result)
	}
}

func TestWrapAroundWithoutWalls(t *testing.T) {
	g := newTestGame(t, 5, 5, []Tile{{0, 2}, {1, 2}, {2, 2}}, Tile{4, 4})
	g.Steer(DirectionLeft)

	g.Update()

	if got := g.Snake().Head(); !got.Equals(Tile{4, 2}) {
		t.Errorf("Head() = %v, want (4,2)", got)
	}
	if g.State() != StateRunning {
		t.Errorf("State() = %v, want RUNNING", g.State())
	}
}

func TestFullBoardWins(t *testing.T) {
	g := newTestGame(t, 3, 1, []Tile{{1, 0}, {2, 0}}, Tile{0, 0})
	g.Steer(DirectionLeft)

	g.Update()

	if g.State() != StateWon {
		t.Fatalf("State() = %v, want WON", g.State())
	}
	if g.Snake().Len() != 3 {
		t.Errorf("snake length = %d, want 3", g.Snake().Len())
	}
	if g.Score() != 1 {
		t.Errorf("Score() = %d, want 1", g.Score())
	}
}

func TestPause(t *testing.T) {
	g := newTestGame(t, 5, 5, []Tile{{2, 2}, {2, 3}, {2, 4}}, Tile{0, 0})
	g.Steer(DirectionUp)

	if !g.TogglePause() || g.State() != StatePaused {
		t.Fatalf("State() = %v, want PAUSED", g.State())
	}

	before := g.Snake().Tiles()
	g.Update()
	if !equalTiles(g.Snake().Tiles(), before) {
		t.Error("snake moved while paused")
	}
	if g.Steer(DirectionLeft) {
		t.Error("input accepted while paused")
	}

	if !g.TogglePause() || g.State() != StateRunning {
		t.Fatalf("State() = %v, want RUNNING", g.State())
	}
	g.Update()
	if got := g.Snake().Head(); !got.Equals(Tile{2, 1}) {
		t.Errorf("Head() = %v, want (2,1)", got)
	}
	if g.Ticks() != 1 {
		t.Errorf("Ticks() = %d, want 1", g.Ticks())
	}
}
