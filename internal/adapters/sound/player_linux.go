//go:build linux

package sound

import (
	"os/exec"

	"github.com/renato0307/pitmaster/internal/domain"
)

const freedesktopSounds = "/usr/share/sounds/freedesktop/stereo/"

// playForAlarm plays sounds on Linux using paplay (PulseAudio) or aplay (ALSA)
func playForAlarm(alarm domain.Alarm) error {
	name := "bell"
	switch alarm {
	case domain.AlarmAlmostDone:
		name = "complete"
	case domain.AlarmWrap:
		name = "message"
	case domain.AlarmStall:
		name = "dialog-information"
	}

	for _, sound := range []struct {
		cmd  string
		file string
	}{
		{"paplay", freedesktopSounds + name + ".oga"},
		{"aplay", freedesktopSounds + name + ".wav"},
	} {
		if err := exec.Command(sound.cmd, sound.file).Run(); err == nil {
			return nil
		}
	}
	return terminalBell()
}
