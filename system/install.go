package system

import (
	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/engine"
)

// Options configures the simulation installed into a GameContext
type Options struct {
	SeedLength       int
	InitialDirection core.Point
	Origin           core.Point

	// RNGSeed drives treat placement
	RNGSeed uint64

	// PresetTreats are tried before random cells
	PresetTreats []core.Point

	// Chimer receives growth cues, nil for silence
	Chimer Chimer
}

// Installed exposes the systems wired by Install for callers that drive them directly
type Installed struct {
	Head   core.Entity
	Growth *GrowthSystem
	Spawn  *SpawnSystem
}

// Install seeds the chain, registers every system and handler, and places the first treats
func Install(ctx *engine.GameContext, opts Options) (*Installed, error) {
	w := ctx.World

	var head core.Entity
	var err error
	w.RunSafe(func() {
		head, err = SeedChain(w, opts.SeedLength, opts.InitialDirection, opts.Origin)
	})
	if err != nil {
		return nil, err
	}

	growth := NewGrowthSystem(w)
	spawn := NewSpawnSystem(w, opts.RNGSeed, opts.PresetTreats)

	w.AddSystem(NewInputSystem(w))
	w.AddSystem(NewChainSystem(w))
	w.AddSystem(NewTreatSystem(w))
	w.AddSystem(spawn)
	w.AddSystem(NewInterpolationSystem(w))

	ctx.RegisterEventHandler(growth)
	ctx.RegisterEventHandler(NewAudioSystem(opts.Chimer))

	w.RunSafe(func() {
		spawn.Fill()
	})

	return &Installed{Head: head, Growth: growth, Spawn: spawn}, nil
}
