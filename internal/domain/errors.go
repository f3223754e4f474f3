package domain

import "errors"

var (
	ErrCookNotFound     = errors.New("cook not found")
	ErrInvalidSetup     = errors.New("invalid cook setup")
	ErrInvalidWrapType  = errors.New("invalid wrap type")
	ErrNoActiveSession  = errors.New("no active cook session")
	ErrOutOfRange       = errors.New("value out of range")
	ErrTempOutOfRange   = errors.New("probe temperature out of range")
	ErrUnknownEventKind = errors.New("unknown event kind")
)
