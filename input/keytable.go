package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Named special keys accepted in bindings
var specialKeyNames = map[string]tcell.Key{
	"left":   tcell.KeyLeft,
	"right":  tcell.KeyRight,
	"up":     tcell.KeyUp,
	"down":   tcell.KeyDown,
	"esc":    tcell.KeyEscape,
	"escape": tcell.KeyEscape,
	"enter":  tcell.KeyEnter,
	"ctrl+c": tcell.KeyCtrlC,
	"ctrl+q": tcell.KeyCtrlQ,
}

// KeyMap translates terminal key events to actions
type KeyMap struct {
	keys  map[tcell.Key]Action
	runes map[rune]Action
}

// NewKeyMap creates an empty KeyMap
func NewKeyMap() *KeyMap {
	return &KeyMap{
		keys:  make(map[tcell.Key]Action),
		runes: make(map[rune]Action),
	}
}

// DefaultKeyMap binds arrows, hjkl and wasd for movement; q, Esc and Ctrl-C quit
// Letter keys follow screen direction; the grid mapping lives in ActionDelta
func DefaultKeyMap() *KeyMap {
	km := NewKeyMap()

	km.keys[tcell.KeyLeft] = ActionLeft
	km.keys[tcell.KeyRight] = ActionRight
	km.keys[tcell.KeyUp] = ActionUp
	km.keys[tcell.KeyDown] = ActionDown
	km.keys[tcell.KeyEscape] = ActionQuit
	km.keys[tcell.KeyCtrlC] = ActionQuit

	for r, a := range map[rune]Action{
		'h': ActionLeft, 'l': ActionRight, 'k': ActionUp, 'j': ActionDown,
		'a': ActionLeft, 'd': ActionRight, 'w': ActionUp, 's': ActionDown,
		'q': ActionQuit,
	} {
		km.runes[r] = a
	}
	return km
}

// Bind adds a binding such as "x", "left" or "ctrl+c" for action
func (km *KeyMap) Bind(binding string, a Action) error {
	if a == ActionNone {
		return fmt.Errorf("binding %q: cannot bind action none", binding)
	}
	if utf8.RuneCountInString(binding) == 1 {
		r, _ := utf8.DecodeRuneInString(binding)
		km.runes[r] = a
		return nil
	}
	key, ok := specialKeyNames[strings.ToLower(binding)]
	if !ok {
		return fmt.Errorf("binding %q: unknown key name", binding)
	}
	km.keys[key] = a
	return nil
}

// Lookup returns the action bound to ev, ActionNone if unbound
func (km *KeyMap) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		return km.runes[ev.Rune()]
	}
	return km.keys[ev.Key()]
}
