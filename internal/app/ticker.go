package app

// Ticker converts host frames into game ticks. The host calls Advance
// once per frame; the remainder is carried so that over time exactly
// ticksPerSecond ticks happen per framesPerSecond frames.
type Ticker struct {
	ticksPerSecond  int
	framesPerSecond int
	acc             int
}

func NewTicker(ticksPerSecond, framesPerSecond int) *Ticker {
	return &Ticker{
		ticksPerSecond:  max(ticksPerSecond, 1),
		framesPerSecond: max(framesPerSecond, 1),
	}
}

// Advance returns the number of game ticks due in this frame.
func (t *Ticker) Advance() int {
	t.acc += t.ticksPerSecond
	n := t.acc / t.framesPerSecond
	t.acc %= t.framesPerSecond
	return n
}

func (t *Ticker) Reset() {
	t.acc = 0
}
