package types

import (
	"github.com/Link87/snake/internal/domain"
)

type UIEvent struct {
	Type    UIEventType
	Payload interface{}
}

type UIEventType int

const (
	UIEventNone UIEventType = iota
	UIEventStartGame
	UIEventApplyConfig
	UIEventExitGame
	UIEventSteer
	UIEventPause
	UIEventRestart
	UIEventQuit
	UIEventShowScores
	UIEventShowConfig
	UIEventShowMenu
)

type ApplyConfigData struct {
	Config *domain.GameConfig
}

type SteerData struct {
	Direction domain.Direction
}
