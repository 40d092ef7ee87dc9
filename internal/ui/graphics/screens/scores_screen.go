package screens

import (
	"fmt"

	"github.com/Link87/snake/internal/app"
	"github.com/Link87/snake/internal/ui/graphics/components"
	"github.com/Link87/snake/internal/ui/graphics/input"
	"github.com/Link87/snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// ScoresScreen shows the finished runs of the session, either ranked by
// score or most recent first.
type ScoresScreen struct {
	ctx types.ScreenContext

	history *app.History
	current int
	ranked  bool

	board     *components.Scoreboard
	btnToggle *components.Button
	btnPlay   *components.Button
	btnBack   *components.Button
}

func NewScoresScreen(ctx types.ScreenContext) *ScoresScreen {
	return &ScoresScreen{
		ctx:       ctx,
		ranked:    true,
		board:     components.NewScoreboard(0, 0, 0, 0, ""),
		btnToggle: components.NewButton(0, 0, 140, 40, "Recent"),
		btnPlay:   components.NewButton(0, 0, 120, 40, "Play"),
		btnBack:   components.NewButton(0, 0, 120, 40, "Back"),
	}
}

func (s *ScoresScreen) SetHistory(history *app.History, current int) {
	s.history = history
	s.current = current
}

func (s *ScoresScreen) Update() types.UIEvent {
	w, h := s.ctx.Size()

	s.btnToggle.SetPosition(50, h-85)
	s.btnPlay.SetPosition(w-270, h-85)
	s.btnBack.SetPosition(w-140, h-85)

	if s.btnToggle.Update() || inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		s.ranked = !s.ranked
	}

	if s.btnBack.Update() || input.IsEscapePressed() {
		return types.UIEvent{Type: types.UIEventShowMenu}
	}

	if s.btnPlay.Update() || input.IsEnterPressed() {
		return types.UIEvent{Type: types.UIEventStartGame}
	}

	return types.UIEvent{Type: types.UIEventNone}
}

func (s *ScoresScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	fonts := types.GetFonts()
	w, h := s.ctx.Size()

	title := "SCORES"
	text.Draw(screen, title, fonts.Normal, types.CenteredX(fonts.Normal, title, w), 50, types.ColorTextHighlight)

	var runs []app.RunInfo
	if s.history != nil {
		if s.ranked {
			runs = s.history.Ranked()
		} else {
			runs = s.history.Runs()
		}
	}

	s.board.X = 50
	s.board.Y = 80
	s.board.Width = w - 100
	s.board.Height = h - 190
	if s.ranked {
		s.board.Title = "BEST RUNS"
		s.btnToggle.Text = "Recent"
	} else {
		s.board.Title = "RECENT RUNS"
		s.btnToggle.Text = "Best"
	}
	s.board.Draw(screen, runs, s.current)

	if s.history != nil {
		if best, ok := s.history.Best(); ok {
			summary := fmt.Sprintf("%d runs  |  best score %d (run #%d)", s.history.Len(), best.Result.Score, best.Number)
			text.Draw(screen, summary, fonts.Normal, 50, h-95, types.ColorText)
		}
	}

	s.btnToggle.Draw(screen)
	s.btnPlay.Draw(screen)
	s.btnBack.Draw(screen)

	hint := "TAB to switch view, ENTER to play"
	text.Draw(screen, hint, fonts.Small, 50, h-25, types.ColorTextDim)
}

func (s *ScoresScreen) OnEnter() {}

func (s *ScoresScreen) OnExit() {}
