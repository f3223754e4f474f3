package ui

import (
	"github.com/renato0307/pitmaster/internal/domain"
	"github.com/renato0307/pitmaster/internal/session"
)

// stateMsg carries a new controller state into the program
type stateMsg struct {
	state session.State
}

// feedClosedMsg is sent when the controller subscription ends
type feedClosedMsg struct{}

// actionDoneMsg reports the outcome of a façade call
type actionDoneMsg struct {
	action string
	err    error
}

// presetsLoadedMsg carries the equipment presets for the setup form
type presetsLoadedMsg struct {
	err     error
	presets []domain.EquipmentPreset
}
