package input

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// keymapFile is the standalone keymap layout: a single [keys] table
type keymapFile struct {
	Keys map[string]string `toml:"keys"`
}

// LoadKeyConfig parses TOML keymap data into a sparse override KeyTable
// Only keys present in TOML are populated
// Returns error on unknown action names or parse failure
func LoadKeyConfig(data []byte) (KeyTable, error) {
	var f keymapFile
	if _, err := toml.Decode(string(data), &f); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}
	return ParseBindings(f.Keys)
}

// ParseBindings resolves key name → action name pairs
func ParseBindings(bindings map[string]string) (KeyTable, error) {
	kt := make(KeyTable, len(bindings))
	for keyStr, actionName := range bindings {
		key := NormalizeKey(strings.TrimSpace(keyStr))
		if key == "" {
			return nil, fmt.Errorf("[keys] empty key name")
		}

		action, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
		}
		kt[key] = action
	}
	return kt, nil
}

// resolveAction converts an action name string to an Action
func resolveAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	action, ok := ActionByName(name)
	if !ok {
		return ActionNone, fmt.Errorf("unknown action: %q", name)
	}
	return action, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden by override
// Override entries bound to "none" delete the key from the result
func MergeKeyTable(base, override KeyTable) KeyTable {
	result := base.Clone()
	for k, v := range override {
		if v == ActionNone {
			delete(result, k)
		} else {
			result[k] = v
		}
	}
	return result
}

// ResolveKeyTable merges config bindings over the defaults
func ResolveKeyTable(bindings map[string]string) (KeyTable, error) {
	if len(bindings) == 0 {
		return DefaultKeyTable(), nil
	}
	override, err := ParseBindings(bindings)
	if err != nil {
		return nil, err
	}
	return MergeKeyTable(DefaultKeyTable(), override), nil
}

// LoadKeyFile reads a standalone keymap file and merges it over base
func LoadKeyFile(path string, base KeyTable) (KeyTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("keymap %s: %w", path, err)
	}
	override, err := LoadKeyConfig(data)
	if err != nil {
		return nil, fmt.Errorf("keymap %s: %w", path, err)
	}
	return MergeKeyTable(base, override), nil
}
