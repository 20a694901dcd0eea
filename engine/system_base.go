package engine

// SystemBase provides common dependencies for systems
// Embed in a system struct to skip the world plumbing
type SystemBase struct {
	World     *World
	Resource  *Resource
	Component *ComponentStore
}

// NewSystemBase initializes the base from a world, call once in a system constructor
func NewSystemBase(w *World) SystemBase {
	return SystemBase{
		World:     w,
		Resource:  w.Resource,
		Component: &w.Component,
	}
}
