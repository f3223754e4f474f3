//go:build !darwin && !linux && !windows

package sound

import "github.com/renato0307/pitmaster/internal/domain"

// playForAlarm falls back to terminal bell on unsupported platforms
func playForAlarm(domain.Alarm) error {
	return terminalBell()
}
