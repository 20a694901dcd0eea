package input

import (
	"fmt"
	"strings"
)

// Action is a logical control the simulation understands
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionQuit
)

var actionNames = map[Action]string{
	ActionNone:  "none",
	ActionLeft:  "left",
	ActionRight: "right",
	ActionUp:    "up",
	ActionDown:  "down",
	ActionQuit:  "quit",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// ParseAction resolves a case-insensitive action name
func ParseAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, n := range actionNames {
		if n == name {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("unknown action %q", name)
}
