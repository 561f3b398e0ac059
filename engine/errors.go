package engine

import "errors"

// Caller-facing errors, all recoverable, the rejected call leaves state unchanged
var (
	// ErrEmptyText is returned for empty or whitespace-only text, callers substitute a default
	ErrEmptyText = errors.New("empty text")

	// ErrInvalidFontSize is returned for non-positive or oversized fonts
	ErrInvalidFontSize = errors.New("invalid font size")

	// ErrInvalidWidth is returned for a non-positive wrap width
	ErrInvalidWidth = errors.New("invalid wrap width")

	// ErrUnknownEffect is returned for effect kinds outside the fixed set
	ErrUnknownEffect = errors.New("unknown effect")

	// ErrInvalidTransition is returned when a trigger is not allowed from the current state
	ErrInvalidTransition = errors.New("invalid state transition")

	// ErrLoopRunning is returned by Run on a loop that is already running
	ErrLoopRunning = errors.New("loop already running")
)
