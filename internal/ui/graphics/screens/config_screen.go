package screens

import (
	"fmt"
	"strconv"

	"github.com/Link87/snake/internal/domain"
	"github.com/Link87/snake/internal/ui/graphics/components"
	"github.com/Link87/snake/internal/ui/graphics/input"
	"github.com/Link87/snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// ConfigScreen edits the configuration used for the next game.
type ConfigScreen struct {
	ctx types.ScreenContext

	inputWidth    *components.TextInput
	inputHeight   *components.TextInput
	inputTickRate *components.TextInput
	inputSeed     *components.TextInput
	borders       bool

	btnBorders *components.Button
	btnApply   *components.Button
	btnBack    *components.Button

	errorMsg string
}

func NewConfigScreen(ctx types.ScreenContext) *ConfigScreen {
	s := &ConfigScreen{
		ctx:           ctx,
		inputWidth:    components.NewNumberInput(0, 0, 140, 35, "33", 3),
		inputHeight:   components.NewNumberInput(0, 0, 140, 35, "33", 3),
		inputTickRate: components.NewNumberInput(0, 0, 140, 35, "20", 2),
		inputSeed:     components.NewNumberInput(0, 0, 140, 35, "0", 18),
		btnBorders:    components.NewButton(0, 0, 300, 40, ""),
		btnApply:      components.NewButton(0, 0, 140, 45, "Apply"),
		btnBack:       components.NewButton(0, 0, 140, 45, "Back"),
	}
	s.SetConfig(domain.DefaultGameConfig())

	return s
}

// SetConfig fills the inputs from cfg.
func (s *ConfigScreen) SetConfig(cfg *domain.GameConfig) {
	s.inputWidth.SetInt(cfg.Width)
	s.inputHeight.SetInt(cfg.Height)
	s.inputTickRate.SetInt(cfg.TickRate)
	s.inputSeed.Text = strconv.FormatInt(cfg.Seed, 10)
	s.borders = cfg.Borders
}

func (s *ConfigScreen) Update() types.UIEvent {
	w, _ := s.ctx.Size()
	centerX := w / 2
	startY := 120

	s.inputWidth.SetPosition(centerX-150, startY)
	s.inputHeight.SetPosition(centerX+10, startY)
	s.inputTickRate.SetPosition(centerX-150, startY+60)
	s.inputSeed.SetPosition(centerX+10, startY+60)
	s.btnBorders.SetPosition(centerX-150, startY+110)
	s.btnBack.SetPosition(centerX-150, startY+180)
	s.btnApply.SetPosition(centerX+10, startY+180)

	s.inputWidth.Update()
	s.inputHeight.Update()
	s.inputTickRate.Update()
	s.inputSeed.Update()

	if input.IsTabPressed() {
		s.cycleFocus()
	}

	if s.btnBorders.Update() {
		s.borders = !s.borders
	}

	if s.btnBack.Update() || input.IsEscapePressed() {
		return types.UIEvent{Type: types.UIEventShowMenu}
	}

	if s.btnApply.Update() || input.IsEnterPressed() {
		return s.applyConfig()
	}

	return types.UIEvent{Type: types.UIEventNone}
}

func (s *ConfigScreen) cycleFocus() {
	inputs := []*components.TextInput{
		s.inputWidth, s.inputHeight,
		s.inputTickRate, s.inputSeed,
	}

	currentIdx := -1
	for i, inp := range inputs {
		if inp.Focused {
			currentIdx = i
			inp.Focused = false
			break
		}
	}

	nextIdx := (currentIdx + 1) % len(inputs)
	inputs[nextIdx].Focused = true
}

func (s *ConfigScreen) applyConfig() types.UIEvent {
	cfg, err := s.readConfig()
	if err != nil {
		s.errorMsg = err.Error()
		return types.UIEvent{Type: types.UIEventNone}
	}

	return types.UIEvent{
		Type:    types.UIEventApplyConfig,
		Payload: types.ApplyConfigData{Config: cfg},
	}
}

func (s *ConfigScreen) readConfig() (*domain.GameConfig, error) {
	width, err := s.inputWidth.Int()
	if err != nil {
		return nil, fmt.Errorf("width must be a number")
	}
	height, err := s.inputHeight.Int()
	if err != nil {
		return nil, fmt.Errorf("height must be a number")
	}
	tickRate, err := s.inputTickRate.Int()
	if err != nil {
		return nil, fmt.Errorf("tick rate must be a number")
	}
	seed, err := strconv.ParseInt(s.inputSeed.Text, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("seed must be a number")
	}

	cfg := &domain.GameConfig{
		Width:    width,
		Height:   height,
		TickRate: tickRate,
		Borders:  s.borders,
		Seed:     seed,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (s *ConfigScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	fonts := types.GetFonts()
	w, h := s.ctx.Size()
	centerX := w / 2
	startY := 120

	title := "SETTINGS"
	bounds := text.BoundString(fonts.Normal, title)
	text.Draw(screen, title, fonts.Normal, (w-bounds.Dx())/2, 60, types.ColorTextHighlight)

	sizeRange := fmt.Sprintf("(%d-%d):", domain.MinFieldSize, domain.MaxFieldSize)
	text.Draw(screen, "Width "+sizeRange, fonts.Normal, centerX-150, startY-15, types.ColorText)
	text.Draw(screen, "Height "+sizeRange, fonts.Normal, centerX+10, startY-15, types.ColorText)
	text.Draw(screen, fmt.Sprintf("Ticks/s (%d-%d):", domain.MinTickRate, domain.MaxTickRate),
		fonts.Normal, centerX-150, startY+45, types.ColorText)
	text.Draw(screen, "Seed (0 = random):", fonts.Normal, centerX+10, startY+45, types.ColorText)

	s.inputWidth.Draw(screen)
	s.inputHeight.Draw(screen)
	s.inputTickRate.Draw(screen)
	s.inputSeed.Draw(screen)

	if s.borders {
		s.btnBorders.Text = "Border walls: ON"
	} else {
		s.btnBorders.Text = "Border walls: OFF"
	}
	s.btnBorders.Draw(screen)

	s.btnBack.Draw(screen)
	s.btnApply.Draw(screen)

	if s.errorMsg != "" {
		bounds := text.BoundString(fonts.Normal, s.errorMsg)
		text.Draw(screen, s.errorMsg, fonts.Normal, (w-bounds.Dx())/2, startY+260, types.ColorError)
	}

	hint := "TAB to switch fields, ENTER to apply, ESC to go back"
	bounds = text.BoundString(fonts.Small, hint)
	text.Draw(screen, hint, fonts.Small, (w-bounds.Dx())/2, h-30, types.ColorTextDim)
}

func (s *ConfigScreen) OnEnter() {
	s.errorMsg = ""
	s.inputWidth.Focused = true
}

func (s *ConfigScreen) OnExit() {
	s.inputWidth.Focused = false
	s.inputHeight.Focused = false
	s.inputTickRate.Focused = false
	s.inputSeed.Focused = false
}

func (s *ConfigScreen) SetError(err string) {
	s.errorMsg = err
}
