package domain

import "fmt"

const (
	MinFieldSize    = 10
	MaxFieldSize    = 100
	MinTickRate     = 1
	MaxTickRate     = 60
	DefaultTickRate = 20
)

type GameConfig struct {
	Width    int
	Height   int
	TickRate int
	Borders  bool
	// Seed for treat placement. Zero picks a time based seed.
	Seed int64
}

func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Width:    33,
		Height:   33,
		TickRate: DefaultTickRate,
		Borders:  true,
		Seed:     0,
	}
}

func (c *GameConfig) Validate() error {
	if c.Width < MinFieldSize || c.Width > MaxFieldSize {
		return fmt.Errorf("%w: width %d not in %d-%d", ErrInvalidConfig, c.Width, MinFieldSize, MaxFieldSize)
	}
	if c.Height < MinFieldSize || c.Height > MaxFieldSize {
		return fmt.Errorf("%w: height %d not in %d-%d", ErrInvalidConfig, c.Height, MinFieldSize, MaxFieldSize)
	}
	if c.TickRate < MinTickRate || c.TickRate > MaxTickRate {
		return fmt.Errorf("%w: tick rate %d not in %d-%d", ErrInvalidConfig, c.TickRate, MinTickRate, MaxTickRate)
	}
	return nil
}

func (c *GameConfig) Copy() *GameConfig {
	return &GameConfig{
		Width:    c.Width,
		Height:   c.Height,
		TickRate: c.TickRate,
		Borders:  c.Borders,
		Seed:     c.Seed,
	}
}
