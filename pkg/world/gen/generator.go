package gen

import (
	"maps"
	"slices"

	"github.com/OCharnyshevich/heightmap/pkg/world/grid"
)

// Strategy names accepted by DefaultRegistry.
const (
	StrategyLinearFault = "linear-fault"
	StrategyRandom      = "random"
	StrategyFlat        = "flat"
	StrategySimplex     = "simplex"
)

// Generator produces a raw, unclassified elevation grid.
// All randomness must come from src so that output is reproducible per seed.
type Generator interface {
	Name() string
	GenerateRaw(width, height int, src *Source) *grid.Grid[float64]
}

// Constructor builds a Generator from the iteration count of a run.
// Variants that have no use for iterations ignore it.
type Constructor func(iterations int) Generator

// Registry maps strategy names to constructors. It is read-only once built.
type Registry struct {
	ctors map[string]Constructor
}

// NewRegistry creates a Registry from the given entries. The map is copied.
func NewRegistry(entries map[string]Constructor) *Registry {
	return &Registry{ctors: maps.Clone(entries)}
}

// DefaultRegistry returns the registry of all built-in strategies.
func DefaultRegistry() *Registry {
	return NewRegistry(map[string]Constructor{
		StrategyLinearFault: func(iterations int) Generator { return NewLinearFault(iterations) },
		StrategyRandom:      func(int) Generator { return NewRandom() },
		StrategyFlat:        func(int) Generator { return NewFlat() },
		StrategySimplex:     func(iterations int) Generator { return NewSimplex(iterations) },
	})
}

// Lookup returns the constructor registered under name.
func (r *Registry) Lookup(name string) (Constructor, bool) {
	c, ok := r.ctors[name]
	return c, ok
}

// Names returns the registered strategy names in sorted order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.ctors))
}
