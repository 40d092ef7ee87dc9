package components

import (
	"fmt"

	"github.com/Link87/snake/internal/app"
	"github.com/Link87/snake/internal/domain"
	"github.com/Link87/snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type Scoreboard struct {
	X, Y          int
	Width, Height int
	Title         string
}

func NewScoreboard(x, y, width, height int, title string) *Scoreboard {
	return &Scoreboard{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		Title:  title,
	}
}

// Draw lists runs in the given order. The run numbered current is
// highlighted.
func (sb *Scoreboard) Draw(screen *ebiten.Image, runs []app.RunInfo, current int) {
	vector.DrawFilledRect(screen,
		float32(sb.X), float32(sb.Y),
		float32(sb.Width), float32(sb.Height),
		types.Darken(types.ColorFieldBg, 0.8), false)

	vector.StrokeRect(screen,
		float32(sb.X), float32(sb.Y),
		float32(sb.Width), float32(sb.Height),
		1, types.ColorGrid, false)

	fonts := types.GetFonts()

	text.Draw(screen, sb.Title, fonts.Normal, sb.X+10, sb.Y+20, types.ColorTextHighlight)

	if len(runs) == 0 {
		text.Draw(screen, "No finished runs yet", fonts.Normal, sb.X+10, sb.Y+45, types.ColorTextDim)
		return
	}

	y := sb.Y + 45
	for i, run := range runs {
		if y > sb.Y+sb.Height-10 {
			break
		}

		marker := types.ColorError
		if run.Result.State == domain.StateWon {
			marker = types.ColorSuccess
		}
		vector.DrawFilledRect(screen,
			float32(sb.X+10), float32(y-10),
			10, 10,
			marker, false)

		textColor := types.ColorText
		if run.Number == current {
			textColor = types.ColorTextHighlight
		}

		line := fmt.Sprintf("%2d. run #%d  score %d  len %d  %d ticks",
			i+1, run.Number, run.Result.Score, run.Result.Length, run.Result.Ticks)
		text.Draw(screen, line, fonts.Normal, sb.X+28, y, textColor)

		info := fmt.Sprintf("%dx%d %s", run.Width, run.Height, run.FinishedAt.Format("15:04:05"))
		text.Draw(screen, info, fonts.Small, sb.X+sb.Width-130, y, types.ColorTextDim)

		y += 22
	}
}
