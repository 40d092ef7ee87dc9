package screens

import (
	"github.com/Link87/snake/internal/ui/graphics/components"
	"github.com/Link87/snake/internal/ui/graphics/input"
	"github.com/Link87/snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

type MenuScreen struct {
	ctx types.ScreenContext

	btnPlay     *components.Button
	btnSettings *components.Button
	btnScores   *components.Button
	btnQuit     *components.Button
}

func NewMenuScreen(ctx types.ScreenContext) *MenuScreen {
	return &MenuScreen{
		ctx:         ctx,
		btnPlay:     components.NewButton(0, 0, 250, 50, "Play"),
		btnSettings: components.NewButton(0, 0, 250, 50, "Settings"),
		btnScores:   components.NewButton(0, 0, 250, 50, "Scores"),
		btnQuit:     components.NewButton(0, 0, 250, 50, "Quit"),
	}
}

func (s *MenuScreen) Update() types.UIEvent {
	w, h := s.ctx.Size()
	centerX := w / 2
	centerY := h / 2

	s.btnPlay.SetPosition(centerX-125, centerY-110)
	s.btnSettings.SetPosition(centerX-125, centerY-50)
	s.btnScores.SetPosition(centerX-125, centerY+10)
	s.btnQuit.SetPosition(centerX-125, centerY+70)

	if s.btnPlay.Update() || input.IsEnterPressed() {
		return types.UIEvent{Type: types.UIEventStartGame}
	}

	if s.btnSettings.Update() {
		return types.UIEvent{Type: types.UIEventShowConfig}
	}

	if s.btnScores.Update() {
		return types.UIEvent{Type: types.UIEventShowScores}
	}

	if s.btnQuit.Update() || input.IsEscapePressed() {
		return types.UIEvent{Type: types.UIEventQuit}
	}

	return types.UIEvent{Type: types.UIEventNone}
}

func (s *MenuScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	fonts := types.GetFonts()
	w, h := s.ctx.Size()

	title := "SNAKE"
	x := types.CenteredX(fonts.Normal, title, w)

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			text.Draw(screen, title, fonts.Normal, x+dx, 100+dy, types.ColorTextHighlight)
		}
	}
	text.Draw(screen, title, fonts.Normal, x, 100, types.ColorTextHighlight)

	subtitle := "Eat the treats, avoid the walls and yourself"
	x = types.CenteredX(fonts.Normal, subtitle, w)
	text.Draw(screen, subtitle, fonts.Normal, x, 130, types.ColorTextDim)

	s.btnPlay.Draw(screen)
	s.btnSettings.Draw(screen)
	s.btnScores.Draw(screen)
	s.btnQuit.Draw(screen)

	hint := "ENTER to play, ESC to quit"
	x = types.CenteredX(fonts.Small, hint, w)
	text.Draw(screen, hint, fonts.Small, x, h-30, types.ColorTextDim)
}

func (s *MenuScreen) OnEnter() {}

func (s *MenuScreen) OnExit() {}
