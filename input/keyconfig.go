package input

import (
	"fmt"
	"sort"
)

// LoadKeyConfig layers extra bindings over DefaultKeyMap
// bindings maps an action name to the keys that trigger it
// Returns error on unknown action names or key names
func LoadKeyConfig(bindings map[string][]string) (*KeyMap, error) {
	km := DefaultKeyMap()

	// Sorted for deterministic override order when two actions claim one key
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		a, err := ParseAction(name)
		if err != nil {
			return nil, fmt.Errorf("keys: %w", err)
		}
		for _, b := range bindings[name] {
			if err := km.Bind(b, a); err != nil {
				return nil, fmt.Errorf("keys.%s: %w", name, err)
			}
		}
	}
	return km, nil
}
