package engine

import (
	"github.com/lixenwraith/gridsnake/core"
)

// AnyStore provides type-erased operations so World can manage lifecycle
// across stores without knowing their component types
type AnyStore interface {
	Remove(e core.Entity)
	Has(e core.Entity) bool
	Count() int
	Clear()
}

// QueryableStore extends AnyStore with iteration for query intersection
type QueryableStore interface {
	AnyStore
	All() []core.Entity
}
