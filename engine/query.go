package engine

import (
	"sort"

	"github.com/lixenwraith/gridsnake/core"
)

// QueryBuilder finds entities present in every added store
// Starts from the smallest store and filters through the larger ones
type QueryBuilder struct {
	stores   []QueryableStore
	executed bool
	results  []core.Entity
}

// Query starts a component intersection query
//
//	segments := world.Query().
//	    With(world.Component.Segment).
//	    With(world.Component.Position).
//	    Execute()
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{
		stores: make([]QueryableStore, 0, 4),
	}
}

// With adds a store to the filter; panics after Execute
func (qb *QueryBuilder) With(store QueryableStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed")
	}
	qb.stores = append(qb.stores, store)
	return qb
}

// Execute returns entities in all stores, sorted by ID for deterministic iteration
// Repeated calls return the cached result
func (qb *QueryBuilder) Execute() []core.Entity {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	if len(qb.stores) == 0 {
		qb.results = make([]core.Entity, 0)
		return qb.results
	}

	sort.Slice(qb.stores, func(i, j int) bool {
		return qb.stores[i].Count() < qb.stores[j].Count()
	})

	candidates := qb.stores[0].All()
	for _, store := range qb.stores[1:] {
		n := 0
		for _, e := range candidates {
			if store.Has(e) {
				candidates[n] = e
				n++
			}
		}
		candidates = candidates[:n]
		if n == 0 {
			break
		}
	}

	sort.Slice(candidates, func(i, j int) bool { return candidates[i] < candidates[j] })
	qb.results = candidates
	return qb.results
}
