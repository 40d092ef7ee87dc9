package app

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/Link87/snake/internal/domain"
)

// App is one play session: the current game, its tick cadence and the
// history of finished runs. All methods must be called from the host's
// update goroutine.
type App struct {
	cfg     *domain.GameConfig
	rng     *rand.Rand
	game    *domain.Game
	ticker  *Ticker
	history *History

	framesPerSecond int
	runNumber       int
	recorded        bool

	eventCh chan AppEvent
}

type AppEvent struct {
	Type    AppEventType
	Payload interface{}
}

type AppEventType int

const (
	AppEventGameOver AppEventType = iota
	AppEventWon
	AppEventRestarted
	AppEventReconfigured
)

func NewApp(cfg *domain.GameConfig, framesPerSecond int) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &App{
		cfg:             cfg.Copy(),
		rng:             newRand(cfg.Seed),
		history:         NewHistory(),
		framesPerSecond: framesPerSecond,
		eventCh:         make(chan AppEvent, 100),
	}

	if err := a.newGame(); err != nil {
		return nil, err
	}

	log.Printf("Session started: %dx%d field, %d ticks/s, borders=%v",
		a.cfg.Width, a.cfg.Height, a.cfg.TickRate, a.cfg.Borders)

	return a, nil
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func (a *App) newGame() error {
	game, err := domain.NewGame(a.cfg, a.rng)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	a.game = game
	a.ticker = NewTicker(a.cfg.TickRate, a.framesPerSecond)
	a.runNumber++
	a.recorded = false
	return nil
}

func (a *App) Game() *domain.Game {
	return a.game
}

func (a *App) Config() *domain.GameConfig {
	return a.cfg.Copy()
}

func (a *App) History() *History {
	return a.history
}

func (a *App) RunNumber() int {
	return a.runNumber
}

func (a *App) Events() <-chan AppEvent {
	return a.eventCh
}

// Frame is called once per host frame and runs the game ticks that are
// due.
func (a *App) Frame() {
	for n := a.ticker.Advance(); n > 0; n-- {
		a.game.Update()
		if a.game.State().Finished() {
			break
		}
	}
	a.checkFinished()
}

func (a *App) Steer(d domain.Direction) bool {
	return a.game.Steer(d)
}

// TogglePause pauses or resumes the game. Partial tick progress is
// discarded so a resumed game waits a full tick before moving.
func (a *App) TogglePause() bool {
	if !a.game.TogglePause() {
		return false
	}
	a.ticker.Reset()
	return true
}

// Restart discards the current game and starts a new one with the same
// config. An unfinished game is not recorded.
func (a *App) Restart() error {
	if err := a.newGame(); err != nil {
		return err
	}
	log.Printf("Session: run #%d started", a.runNumber)
	a.publish(AppEvent{Type: AppEventRestarted, Payload: a.runNumber})
	return nil
}

// Reconfigure validates cfg and restarts with it.
func (a *App) Reconfigure(cfg *domain.GameConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	prevCfg, prevRng := a.cfg, a.rng
	a.cfg = cfg.Copy()
	if cfg.Seed != prevCfg.Seed {
		a.rng = newRand(cfg.Seed)
	}

	if err := a.newGame(); err != nil {
		a.cfg, a.rng = prevCfg, prevRng
		return err
	}

	log.Printf("Session reconfigured: %dx%d field, %d ticks/s, borders=%v",
		a.cfg.Width, a.cfg.Height, a.cfg.TickRate, a.cfg.Borders)
	a.publish(AppEvent{Type: AppEventReconfigured, Payload: a.cfg.Copy()})
	return nil
}

func (a *App) checkFinished() {
	if a.recorded || !a.game.State().Finished() {
		return
	}
	a.recorded = true

	run := RunInfo{
		Number:     a.runNumber,
		Result:     a.game.Result(),
		Width:      a.cfg.Width,
		Height:     a.cfg.Height,
		Borders:    a.cfg.Borders,
		FinishedAt: time.Now(),
	}
	a.history.Record(run)

	eventType := AppEventGameOver
	if run.Result.State == domain.StateWon {
		eventType = AppEventWon
	}
	a.publish(AppEvent{Type: eventType, Payload: run})
}

func (a *App) publish(event AppEvent) {
	select {
	case a.eventCh <- event:
	default:
		log.Println("Session: event channel full, dropping event")
	}
}
