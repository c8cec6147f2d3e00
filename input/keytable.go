package input

import "strings"

// KeyTable maps lowercase key names to actions
type KeyTable map[string]Action

// DefaultKeyTable returns the default bindings
func DefaultKeyTable() KeyTable {
	return KeyTable{
		"a": ActionLeft,
		"d": ActionRight,
		"w": ActionUp,
		"s": ActionDown,

		"left":  ActionLeft,
		"right": ActionRight,
		"up":    ActionUp,
		"down":  ActionDown,

		"space": ActionProvoke,

		"escape": ActionQuit,
		"q":      ActionQuit,
		"r":      ActionRestart,
	}
}

// Lookup returns the action bound to key, ActionNone if unbound
func (kt KeyTable) Lookup(key string) Action {
	return kt[NormalizeKey(key)]
}

// Clone returns an independent copy
func (kt KeyTable) Clone() KeyTable {
	c := make(KeyTable, len(kt))
	for k, v := range kt {
		c[k] = v
	}
	return c
}

// NormalizeKey lowercases names and maps a literal space to "space"
// Single uppercase letters fold to lowercase so shifted presses still steer
func NormalizeKey(key string) string {
	if key == " " {
		return "space"
	}
	return strings.ToLower(key)
}
