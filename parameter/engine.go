package parameter

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the fixed simulation and render interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// EventQueueSize is the buffer of the terminal event channel
	EventQueueSize = 256
)

// Key hold emulation
// Terminals report key presses and auto-repeat, never releases
const (
	// KeyHoldInitial keeps a freshly pressed key held until auto-repeat starts
	KeyHoldInitial = 200 * time.Millisecond

	// KeyHoldRepeat extends a held key on every auto-repeat press
	KeyHoldRepeat = 60 * time.Millisecond
)
