package domain

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
)

// Game is a single-player round: one snake, one treat and a set of walls
// on a field, driven by Update once per tick.
type Game struct {
	field *Field
	snake *Snake
	treat *Treat
	walls []*Wall

	state GameState
	score int
	ticks int

	rng *rand.Rand
}

func NewGame(cfg *GameConfig, rng *rand.Rand) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	field, err := NewField(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("create field: %w", err)
	}

	var walls []*Wall
	if cfg.Borders {
		walls = BorderWalls(field)
	}

	snake := NewSnake(field, field.Width/2, field.Height/2)
	treat := NewTreat(field, Tile{})

	g := newGame(field, snake, treat, walls, rng)
	if err := treat.Regenerate(rng, g.occupants()...); err != nil {
		return nil, fmt.Errorf("place treat: %w", err)
	}
	return g, nil
}

func newGame(field *Field, snake *Snake, treat *Treat, walls []*Wall, rng *rand.Rand) *Game {
	return &Game{
		field: field,
		snake: snake,
		treat: treat,
		walls: walls,
		state: StateWaiting,
		rng:   rng,
	}
}

func (g *Game) State() GameState {
	return g.state
}

func (g *Game) Field() *Field {
	return g.field
}

func (g *Game) Snake() *Snake {
	return g.snake
}

func (g *Game) Treat() *Treat {
	return g.treat
}

func (g *Game) Walls() []*Wall {
	return g.walls
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) Ticks() int {
	return g.ticks
}

// Entities lists everything on the field, snake first.
func (g *Game) Entities() []Entity {
	entities := make([]Entity, 0, len(g.walls)+2)
	entities = append(entities, g.snake, g.treat)
	for _, w := range g.walls {
		entities = append(entities, w)
	}
	return entities
}

// occupants are the entities a treat must not be placed on.
func (g *Game) occupants() []Entity {
	entities := make([]Entity, 0, len(g.walls)+1)
	entities = append(entities, g.snake)
	for _, w := range g.walls {
		entities = append(entities, w)
	}
	return entities
}

func (g *Game) Result() RunResult {
	return RunResult{
		Score:  g.score,
		Length: g.snake.Len(),
		Ticks:  g.ticks,
		State:  g.state,
	}
}

// Steer applies a directional input. While waiting any direction starts
// the game; while running a reversal of the last step is ignored. It
// reports whether the input was taken.
func (g *Game) Steer(d Direction) bool {
	if !d.Valid() {
		return false
	}

	switch g.state {
	case StateWaiting:
		g.snake.SetDirection(d)
		g.state = StateRunning
		return true

	case StateRunning:
		if d.IsOpposite(g.snake.OldDirection()) {
			return false
		}
		g.snake.SetDirection(d)
		return true
	}

	return false
}

// TogglePause switches between running and paused.
func (g *Game) TogglePause() bool {
	switch g.state {
	case StateRunning:
		g.state = StatePaused
		return true
	case StatePaused:
		g.state = StateRunning
		return true
	}
	return false
}

// Update advances the game by one tick. Outside the running state it
// changes nothing.
func (g *Game) Update() {
	if g.state != StateRunning {
		return
	}

	g.ticks++
	g.snake.DoStep()

	boardFull := false
	if g.snake.Head().Equals(g.treat.Tile()) {
		if err := g.snake.Feed(); err != nil {
			log.Printf("Game: feed failed: %v", err)
		} else {
			g.score++
		}

		if err := g.treat.Regenerate(g.rng, g.occupants()...); err != nil {
			if !errors.Is(err, ErrFieldFull) {
				log.Printf("Game: regenerate treat: %v", err)
			}
			boardFull = true
		}
	}

	if g.collided() {
		g.state = StateGameOver
		log.Printf("Game over at %v after %d ticks, score %d", g.snake.Head(), g.ticks, g.score)
		return
	}

	if boardFull {
		g.state = StateWon
		log.Printf("Board full after %d ticks, score %d", g.ticks, g.score)
	}
}

func (g *Game) collided() bool {
	if g.snake.HitsItself() {
		return true
	}
	head := g.snake.Head()
	for _, w := range g.walls {
		if w.Contains(head) {
			return true
		}
	}
	return false
}
