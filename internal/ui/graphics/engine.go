package graphics

import (
	"fmt"
	"log"
	"sync/atomic"

	"github.com/Link87/snake/internal/app"
	"github.com/Link87/snake/internal/domain"
	"github.com/Link87/snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	DefaultWidth  = 1024
	DefaultHeight = 768
)

// Engine drives the session from ebiten's update loop. UI events are
// handled on the same goroutine that advances the game.
type Engine struct {
	width  int
	height int

	currentScreen types.ScreenType
	screenMap     map[types.ScreenType]types.Screen

	session *app.App

	stopped atomic.Bool
	quit    bool
}

func NewEngine(session *app.App) *Engine {
	types.InitFonts()

	return &Engine{
		width:         DefaultWidth,
		height:        DefaultHeight,
		currentScreen: types.ScreenMenu,
		screenMap:     make(map[types.ScreenType]types.Screen),
		session:       session,
	}
}

func (e *Engine) RegisterScreens(
	menu types.Screen,
	config types.Screen,
	scores types.Screen,
	game types.Screen,
) {
	e.screenMap[types.ScreenMenu] = menu
	e.screenMap[types.ScreenConfig] = config
	e.screenMap[types.ScreenScores] = scores
	e.screenMap[types.ScreenGame] = game
}

func (e *Engine) Run() error {
	ebiten.SetWindowSize(e.width, e.height)
	ebiten.SetWindowTitle("Snake")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(e)
}

// Stop asks the engine to leave the run loop on the next update. Safe to
// call from any goroutine.
func (e *Engine) Stop() {
	e.stopped.Store(true)
}

func (e *Engine) Update() error {
	if e.stopped.Load() || e.quit {
		return ebiten.Termination
	}

	e.width, e.height = ebiten.WindowSize()

	screen := e.screenMap[e.currentScreen]
	if screen == nil {
		return nil
	}
	e.handleEvent(screen.Update())

	if e.currentScreen == types.ScreenGame {
		e.session.Frame()
	}
	e.drainSessionEvents()

	if e.quit {
		return ebiten.Termination
	}
	return nil
}

func (e *Engine) Draw(screen *ebiten.Image) {
	currentScreen := e.screenMap[e.currentScreen]
	if currentScreen == nil {
		return
	}

	if updater, ok := currentScreen.(GameUpdater); ok {
		best := 0
		if run, ok := e.session.History().Best(); ok {
			best = run.Result.Score
		}
		updater.SetGame(e.session.Game(), e.session.RunNumber(), best)
	}

	if updater, ok := currentScreen.(HistoryUpdater); ok {
		updater.SetHistory(e.session.History(), e.session.RunNumber())
	}

	currentScreen.Draw(screen)
}

func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func (e *Engine) Size() (int, int) {
	return e.width, e.height
}

func (e *Engine) SetScreen(screen types.ScreenType) {
	if e.currentScreen != screen {
		if s := e.screenMap[e.currentScreen]; s != nil {
			s.OnExit()
		}
		e.currentScreen = screen
		if s := e.screenMap[e.currentScreen]; s != nil {
			if updater, ok := s.(ConfigUpdater); ok {
				updater.SetConfig(e.session.Config())
			}
			s.OnEnter()
		}
	}
}

func (e *Engine) SetError(err string) {
	if s, ok := e.screenMap[e.currentScreen].(ErrorSetter); ok {
		s.SetError(err)
	}
}

func (e *Engine) SetMessage(msg string) {
	if s, ok := e.screenMap[e.currentScreen].(MessageSetter); ok {
		s.SetMessage(msg)
	}
}

func (e *Engine) handleEvent(event types.UIEvent) {
	switch event.Type {
	case types.UIEventNone:
		return

	case types.UIEventShowMenu:
		e.SetScreen(types.ScreenMenu)

	case types.UIEventShowConfig:
		e.SetScreen(types.ScreenConfig)

	case types.UIEventShowScores:
		e.SetScreen(types.ScreenScores)

	case types.UIEventStartGame:
		if e.session.Game().State().Finished() {
			e.restart()
		}
		e.SetScreen(types.ScreenGame)

	case types.UIEventApplyConfig:
		data, ok := event.Payload.(types.ApplyConfigData)
		if !ok || data.Config == nil {
			log.Printf("Engine: unexpected payload %T for apply config", event.Payload)
			return
		}
		if err := e.session.Reconfigure(data.Config); err != nil {
			e.SetError(err.Error())
			return
		}
		e.SetScreen(types.ScreenGame)

	case types.UIEventSteer:
		if data, ok := event.Payload.(types.SteerData); ok {
			e.session.Steer(data.Direction)
		}

	case types.UIEventPause:
		e.session.TogglePause()

	case types.UIEventRestart:
		e.restart()

	case types.UIEventExitGame:
		if e.session.Game().State() == domain.StateRunning {
			e.session.TogglePause()
		}
		e.SetScreen(types.ScreenMenu)

	case types.UIEventQuit:
		e.quit = true

	default:
		log.Printf("Engine: unhandled UI event %d", event.Type)
	}
}

func (e *Engine) restart() {
	if err := e.session.Restart(); err != nil {
		log.Printf("Engine: restart failed: %v", err)
		e.SetError(err.Error())
	}
}

func (e *Engine) drainSessionEvents() {
	for {
		select {
		case event := <-e.session.Events():
			e.handleSessionEvent(event)
		default:
			return
		}
	}
}

func (e *Engine) handleSessionEvent(event app.AppEvent) {
	switch event.Type {
	case app.AppEventGameOver:
		if run, ok := event.Payload.(app.RunInfo); ok {
			e.SetError(fmt.Sprintf("Game over, score %d", run.Result.Score))
		}
	case app.AppEventWon:
		if run, ok := event.Payload.(app.RunInfo); ok {
			e.SetMessage(fmt.Sprintf("Board cleared, score %d", run.Result.Score))
		}
	case app.AppEventRestarted:
		e.SetMessage(fmt.Sprintf("Run #%v", event.Payload))
	case app.AppEventReconfigured:
		cfg := e.session.Config()
		e.SetMessage(fmt.Sprintf("New field %dx%d", cfg.Width, cfg.Height))
	}
}

func (e *Engine) GetCurrentScreen() types.ScreenType {
	return e.currentScreen
}

type GameUpdater interface {
	SetGame(game *domain.Game, runNumber, best int)
}

type HistoryUpdater interface {
	SetHistory(history *app.History, current int)
}

type ConfigUpdater interface {
	SetConfig(cfg *domain.GameConfig)
}

type ErrorSetter interface {
	SetError(err string)
}

type MessageSetter interface {
	SetMessage(msg string)
}
