package input

import (
	"sort"
	"time"
)

// HoldTracker infers key-up for frontends that only report presses
// A key counts as released once no press or auto-repeat arrives within the hold window
type HoldTracker struct {
	initial time.Duration
	repeat  time.Duration
	held    map[string]*hold
}

type hold struct {
	last    time.Time
	repeats int
}

// NewHoldTracker creates a tracker; initial covers the auto-repeat delay, repeat the repeat interval
func NewHoldTracker(initial, repeat time.Duration) *HoldTracker {
	return &HoldTracker{
		initial: initial,
		repeat:  repeat,
		held:    make(map[string]*hold),
	}
}

// Press records a press or auto-repeat of key
// Returns the key-down event for a fresh press, ok=false for a repeat
func (h *HoldTracker) Press(key string, now time.Time) (Event, bool) {
	key = NormalizeKey(key)
	if st, ok := h.held[key]; ok {
		st.last = now
		st.repeats++
		return Event{}, false
	}
	h.held[key] = &hold{last: now}
	return KeyDown(key), true
}

// Expire returns key-up events for keys silent past their window, sorted by key
func (h *HoldTracker) Expire(now time.Time) []Event {
	var released []string
	for key, st := range h.held {
		window := h.repeat
		if st.repeats == 0 {
			window = h.initial
		}
		if now.Sub(st.last) > window {
			released = append(released, key)
		}
	}
	if len(released) == 0 {
		return nil
	}

	sort.Strings(released)
	events := make([]Event, 0, len(released))
	for _, key := range released {
		delete(h.held, key)
		events = append(events, KeyUp(key))
	}
	return events
}

// ReleaseAll returns key-up events for every held key
func (h *HoldTracker) ReleaseAll() []Event {
	keys := make([]string, 0, len(h.held))
	for key := range h.held {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	events := make([]Event, 0, len(keys))
	for _, key := range keys {
		delete(h.held, key)
		events = append(events, KeyUp(key))
	}
	return events
}

// Held reports whether key is currently considered down
func (h *HoldTracker) Held(key string) bool {
	_, ok := h.held[NormalizeKey(key)]
	return ok
}
