package ports

import "github.com/renato0307/pitmaster/internal/domain"

// AlarmPlayer makes an alarm heard
type AlarmPlayer interface {
	Play(alarm domain.Alarm) error
}
