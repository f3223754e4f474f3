package domain

// Alarm is an audible cue raised as the cook reaches a milestone
type Alarm string

const (
	AlarmAlmostDone Alarm = "almost_done"
	AlarmStall      Alarm = "stall"
	AlarmWrap       Alarm = "wrap"
)
