package input

// actionRegistry maps canonical action names to actions
// Used by keymap config loader to resolve TOML action strings to bindings
var actionRegistry = map[string]Action{
	// Unbind sentinel
	"none": ActionNone,

	"left":    ActionLeft,
	"right":   ActionRight,
	"up":      ActionUp,
	"down":    ActionDown,
	"provoke": ActionProvoke,
	"quit":    ActionQuit,
	"restart": ActionRestart,
}

var actionNames = func() map[Action]string {
	m := make(map[Action]string, len(actionRegistry))
	for name, a := range actionRegistry {
		m[a] = name
	}
	return m
}()

// ActionByName resolves a canonical action name
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}
