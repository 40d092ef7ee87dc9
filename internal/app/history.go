package app

import (
	"sort"
	"sync"
	"time"

	"github.com/Link87/snake/internal/domain"
)

const maxHistory = 50

// RunInfo describes one finished game of the session.
type RunInfo struct {
	Number     int
	Result     domain.RunResult
	Width      int
	Height     int
	Borders    bool
	FinishedAt time.Time
}

// History keeps the most recent finished runs of the session.
type History struct {
	runs []RunInfo
	mu   sync.RWMutex
}

func NewHistory() *History {
	return &History{
		runs: make([]RunInfo, 0, maxHistory),
	}
}

func (h *History) Record(run RunInfo) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.runs) == maxHistory {
		h.runs = h.runs[1:]
	}
	h.runs = append(h.runs, run)
}

func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.runs)
}

// Runs returns the recorded runs, newest first.
func (h *History) Runs() []RunInfo {
	h.mu.RLock()
	defer h.mu.RUnlock()

	result := make([]RunInfo, len(h.runs))
	for i, run := range h.runs {
		result[len(h.runs)-1-i] = run
	}
	return result
}

// Ranked returns the recorded runs ordered by score, then by the number
// of ticks it took, then by age.
func (h *History) Ranked() []RunInfo {
	h.mu.RLock()
	result := make([]RunInfo, len(h.runs))
	copy(result, h.runs)
	h.mu.RUnlock()

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Result.Score != result[j].Result.Score {
			return result[i].Result.Score > result[j].Result.Score
		}
		return result[i].Result.Ticks < result[j].Result.Ticks
	})
	return result
}

func (h *History) Best() (RunInfo, bool) {
	ranked := h.Ranked()
	if len(ranked) == 0 {
		return RunInfo{}, false
	}
	return ranked[0], true
}
