// Package keymap maps window key names to game actions. Names follow
// ebiten's Key.String(); the package does not import ebiten so the
// bindings build and test without cgo.
package keymap

import "github.com/vovakirdan/stonesnake/internal/core"

var bindings = map[string]core.Action{
	"ArrowUp":    core.ActionUp,
	"W":          core.ActionUp,
	"ArrowDown":  core.ActionDown,
	"S":          core.ActionDown,
	"ArrowLeft":  core.ActionLeft,
	"A":          core.ActionLeft,
	"ArrowRight": core.ActionRight,
	"D":          core.ActionRight,
	"P":          core.ActionPause,
	"Escape":     core.ActionPause,
	"Q":          core.ActionQuit,
}

// Action returns the action bound to a key name, or ActionNone.
func Action(name string) core.Action {
	if a, ok := bindings[name]; ok {
		return a
	}
	return core.ActionNone
}

// Fill records the actions bound to pressed in the order given, skipping
// unbound keys.
func Fill(frame *core.InputFrame, pressed []string) {
	for _, name := range pressed {
		if a := Action(name); a != core.ActionNone {
			frame.Set(a)
		}
	}
}
