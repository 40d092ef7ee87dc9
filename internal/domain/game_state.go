package domain

type GameState int

const (
	StateWaiting GameState = iota
	StateRunning
	StatePaused
	StateGameOver
	StateWon
)

func (s GameState) String() string {
	switch s {
	case StateWaiting:
		return "WAITING"
	case StateRunning:
		return "RUNNING"
	case StatePaused:
		return "PAUSED"
	case StateGameOver:
		return "GAME OVER"
	case StateWon:
		return "WON"
	}
	return "UNKNOWN"
}

// Finished reports whether s is terminal.
func (s GameState) Finished() bool {
	return s == StateGameOver || s == StateWon
}

// RunResult summarises one game.
type RunResult struct {
	Score  int
	Length int
	Ticks  int
	State  GameState
}
