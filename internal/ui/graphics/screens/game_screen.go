package screens

import (
	"fmt"

	"github.com/Link87/snake/internal/domain"
	"github.com/Link87/snake/internal/ui/graphics/components"
	"github.com/Link87/snake/internal/ui/graphics/input"
	"github.com/Link87/snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	headerHeight = 45
	footerHeight = 30
)

type GameScreen struct {
	ctx types.ScreenContext

	fieldRenderer *components.FieldRenderer
	keyboard      *input.KeyboardHandler

	game      *domain.Game
	runNumber int
	best      int

	showDebug bool
	message   string
	errorMsg  string
}

func NewGameScreen(ctx types.ScreenContext) *GameScreen {
	return &GameScreen{
		ctx:           ctx,
		fieldRenderer: components.NewFieldRenderer(),
		keyboard:      input.NewKeyboardHandler(),
	}
}

func (s *GameScreen) SetGame(game *domain.Game, runNumber, best int) {
	s.game = game
	s.runNumber = runNumber
	s.best = best
}

func (s *GameScreen) Update() types.UIEvent {
	if input.IsEscapePressed() {
		return types.UIEvent{Type: types.UIEventExitGame}
	}

	if input.IsDebugTogglePressed() {
		s.showDebug = !s.showDebug
	}

	if input.IsRestartPressed() {
		return types.UIEvent{Type: types.UIEventRestart}
	}

	if input.IsPausePressed() {
		return types.UIEvent{Type: types.UIEventPause}
	}

	if dir := s.keyboard.Update(); dir != domain.DirectionNone {
		return types.UIEvent{
			Type:    types.UIEventSteer,
			Payload: types.SteerData{Direction: dir},
		}
	}

	return types.UIEvent{Type: types.UIEventNone}
}

func (s *GameScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	w, h := s.ctx.Size()
	fonts := types.GetFonts()

	if s.game == nil {
		msg := "No game loaded"
		text.Draw(screen, msg, fonts.Normal, types.CenteredX(fonts.Normal, msg, w), h/2, types.ColorTextDim)
		return
	}

	field := s.game.Field()
	s.fieldRenderer.CalculateLayout(0, headerHeight, w, h-headerHeight-footerHeight, field)
	s.fieldRenderer.DrawField(screen, field)
	s.fieldRenderer.DrawEntities(screen, s.game.Entities())

	s.drawHeader(screen, w)
	s.drawFooter(screen, w, h)
	s.drawOverlay(screen, w, h)

	if s.showDebug {
		s.drawDebug(screen)
	}
}

func (s *GameScreen) drawHeader(screen *ebiten.Image, w int) {
	fonts := types.GetFonts()

	state := s.game.State()
	stateColor := types.ColorTextHighlight
	switch state {
	case domain.StateGameOver:
		stateColor = types.ColorError
	case domain.StateWon:
		stateColor = types.ColorSuccess
	}
	text.Draw(screen, "["+state.String()+"]", fonts.Normal, 20, 30, stateColor)

	field := s.game.Field()
	info := fmt.Sprintf("Run #%d  |  %dx%d  |  Length: %d  |  Best: %d",
		s.runNumber, field.Width, field.Height, s.game.Snake().Len(), s.best)
	text.Draw(screen, info, fonts.Normal, 130, 30, types.ColorText)

	scoreText := fmt.Sprintf("Score: %d", s.game.Score())
	bounds := text.BoundString(fonts.Normal, scoreText)
	text.Draw(screen, scoreText, fonts.Normal, w-bounds.Dx()-20, 30, types.ColorTextHighlight)
}

func (s *GameScreen) drawFooter(screen *ebiten.Image, w, h int) {
	fonts := types.GetFonts()

	hint := "W/A/S/D or Arrows to move  |  P pause  |  R restart  |  ESC menu"
	text.Draw(screen, hint, fonts.Small, 20, h-12, types.ColorTextDim)

	if s.errorMsg != "" {
		bounds := text.BoundString(fonts.Normal, s.errorMsg)
		text.Draw(screen, s.errorMsg, fonts.Normal, w-bounds.Dx()-20, h-12, types.ColorError)
	} else if s.message != "" {
		bounds := text.BoundString(fonts.Normal, s.message)
		text.Draw(screen, s.message, fonts.Normal, w-bounds.Dx()-20, h-12, types.ColorSuccess)
	}
}

func (s *GameScreen) drawOverlay(screen *ebiten.Image, w, h int) {
	var title, sub string
	titleColor := types.ColorTextHighlight

	switch s.game.State() {
	case domain.StateWaiting:
		title = "READY"
		sub = "Press a direction to start"
	case domain.StatePaused:
		title = "PAUSED"
		sub = "Press P to continue"
	case domain.StateGameOver:
		title = "GAME OVER"
		sub = fmt.Sprintf("Score %d  |  R to restart, ESC for menu", s.game.Score())
		titleColor = types.ColorError
	case domain.StateWon:
		title = "BOARD CLEARED"
		sub = fmt.Sprintf("Score %d  |  R to restart, ESC for menu", s.game.Score())
		titleColor = types.ColorSuccess
	default:
		return
	}

	fonts := types.GetFonts()
	boxW, boxH := 360, 70
	x, y := (w-boxW)/2, (h-boxH)/2

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), types.ColorOverlay, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), 1, types.ColorGrid, false)

	text.Draw(screen, title, fonts.Normal, types.CenteredX(fonts.Normal, title, w), y+28, titleColor)
	text.Draw(screen, sub, fonts.Small, types.CenteredX(fonts.Small, sub, w), y+52, types.ColorText)
}

func (s *GameScreen) drawDebug(screen *ebiten.Image) {
	snake := s.game.Snake()
	msg := fmt.Sprintf("TPS: %0.1f  FPS: %0.1f\ntick: %d\nhead: %v dir: %v last: %v\ntreat: %v\ntile: %0.1fpx",
		ebiten.ActualTPS(), ebiten.ActualFPS(),
		s.game.Ticks(),
		snake.Head(), snake.Direction(), snake.OldDirection(),
		s.game.Treat().Tile(),
		s.fieldRenderer.TileSize())
	ebitenutil.DebugPrintAt(screen, msg, 10, headerHeight+5)
}

func (s *GameScreen) OnEnter() {
	s.errorMsg = ""
	s.message = ""
}

func (s *GameScreen) OnExit() {}

func (s *GameScreen) SetError(err string) {
	s.errorMsg = err
}

func (s *GameScreen) SetMessage(msg string) {
	s.message = msg
	s.errorMsg = ""
}
