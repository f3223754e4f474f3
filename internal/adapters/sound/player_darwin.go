//go:build darwin

package sound

import (
	"os/exec"

	"github.com/renato0307/pitmaster/internal/domain"
)

// playForAlarm plays sounds on macOS using afplay
func playForAlarm(alarm domain.Alarm) error {
	var soundFiles []string

	switch alarm {
	case domain.AlarmAlmostDone:
		soundFiles = []string{
			"/System/Library/Sounds/Glass.aiff",
			"/System/Library/Sounds/Hero.aiff",
		}
	case domain.AlarmWrap:
		soundFiles = []string{
			"/System/Library/Sounds/Ping.aiff",
			"/System/Library/Sounds/Pop.aiff",
		}
	case domain.AlarmStall:
		soundFiles = []string{
			"/System/Library/Sounds/Submarine.aiff",
			"/System/Library/Sounds/Purr.aiff",
		}
	default:
		soundFiles = []string{"/System/Library/Sounds/Tink.aiff"}
	}

	for _, soundFile := range soundFiles {
		if err := exec.Command("afplay", soundFile).Run(); err == nil {
			return nil
		}
	}
	return terminalBell()
}
