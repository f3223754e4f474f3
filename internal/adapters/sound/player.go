package sound

import (
	"fmt"

	"github.com/renato0307/pitmaster/internal/domain"
)

// Player implements ports.AlarmPlayer with the system sounds of the platform
type Player struct{}

// NewPlayer creates a new sound player
func NewPlayer() *Player {
	return &Player{}
}

// Play plays the sound for alarm. Platform-specific implementations are in
// player_*.go files with build tags; all fall back to the terminal bell.
func (p *Player) Play(alarm domain.Alarm) error {
	return playForAlarm(alarm)
}

// terminalBell outputs a terminal bell character as fallback
func terminalBell() error {
	fmt.Print("\a")
	return nil
}
