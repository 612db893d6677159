package game

import "errors"

// Rejection taxonomy. Every rejected action maps to exactly one of these and
// is reported to the originating session only; room state never changes on a
// rejection.
var (
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidTransition = errors.New("invalid-transition")
	ErrNotFound          = errors.New("not-found")
	ErrInvalidArgument   = errors.New("invalid-argument")
	ErrAlreadyExists     = errors.New("already-exists")
	ErrDrawExhausted     = errors.New("draw-exhausted")
	ErrRoomNotJoinable   = errors.New("room-not-joinable")
)

var ErrSendBufferFull = errors.New("send-buffer-full")
