//go:build windows

package sound

import (
	"os/exec"

	"github.com/renato0307/pitmaster/internal/domain"
)

// playForAlarm plays sounds on Windows using PowerShell
func playForAlarm(alarm domain.Alarm) error {
	var soundCommands []string

	switch alarm {
	case domain.AlarmAlmostDone:
		soundCommands = []string{"[System.Media.SystemSounds]::Asterisk.Play()"}
	case domain.AlarmWrap:
		soundCommands = []string{"[System.Media.SystemSounds]::Exclamation.Play()"}
	case domain.AlarmStall:
		soundCommands = []string{"[System.Media.SystemSounds]::Question.Play()"}
	}
	soundCommands = append(soundCommands, "[System.Media.SystemSounds]::Beep.Play()")

	for _, soundCmd := range soundCommands {
		if err := exec.Command("powershell", "-c", soundCmd).Run(); err == nil {
			return nil
		}
	}
	return terminalBell()
}
