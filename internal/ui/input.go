package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/diegok/paddleball/internal/game"
)

// KeyToControl converts a key event to a paddle control.
// Arrows drive the right paddle, w/s drive the left one.
func KeyToControl(key tcell.Key, r rune) (game.Control, bool) {
	switch key {
	case tcell.KeyUp:
		return game.ControlP2Up, true
	case tcell.KeyDown:
		return game.ControlP2Down, true
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return game.ControlP1Up, true
		case 's', 'S':
			return game.ControlP1Down, true
		}
	}
	return 0, false
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}

// KeySink receives key edges
type KeySink interface {
	HandleKey(c game.Control, pressed bool)
}

// KeyTracker turns the press-only key stream of a terminal into press and
// release edges. A held control is released after releaseTicks frames with
// no repeat from the terminal.
type KeyTracker struct {
	releaseTicks int
	remaining    map[game.Control]int
}

// NewKeyTracker creates a tracker with the given release timeout in frames
func NewKeyTracker(releaseTicks int) *KeyTracker {
	if releaseTicks < 1 {
		releaseTicks = 1
	}
	return &KeyTracker{
		releaseTicks: releaseTicks,
		remaining:    make(map[game.Control]int),
	}
}

// Press records a key press (or terminal repeat) and forwards it
func (k *KeyTracker) Press(c game.Control, sink KeySink) {
	k.remaining[c] = k.releaseTicks
	sink.HandleKey(c, true)
}

// Tick counts down held controls and sends a release for each that timed
// out. Call it once per frame.
func (k *KeyTracker) Tick(sink KeySink) {
	for _, c := range game.Controls() {
		left, ok := k.remaining[c]
		if !ok {
			continue
		}
		left--
		if left > 0 {
			k.remaining[c] = left
			continue
		}
		delete(k.remaining, c)
		sink.HandleKey(c, false)
	}
}

// Held reports whether the tracker considers c held
func (k *KeyTracker) Held(c game.Control) bool {
	_, ok := k.remaining[c]
	return ok
}
