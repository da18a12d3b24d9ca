package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/lumina/components"
)

// HoverSystem resolves which interaction hint applies under the pointer.
// Interactive widgets register their on-screen bounds as entities each frame;
// the marker reads the resolved hint instead of a shared global.
type HoverSystem struct {
	world  *ecs.World
	mapper *ecs.Map2[components.Bounds, components.HintRegion]
	filter *ecs.Filter2[components.Bounds, components.HintRegion]

	entities []ecs.Entity
}

// NewHoverSystem creates a hover system with its own ECS world.
func NewHoverSystem() *HoverSystem {
	world := ecs.NewWorld()
	return &HoverSystem{
		world:  world,
		mapper: ecs.NewMap2[components.Bounds, components.HintRegion](world),
		filter: ecs.NewFilter2[components.Bounds, components.HintRegion](world),
	}
}

// Add registers an interactive region.
func (s *HoverSystem) Add(bounds components.Bounds, region components.HintRegion) ecs.Entity {
	e := s.mapper.NewEntity(&bounds, &region)
	s.entities = append(s.entities, e)
	return e
}

// Clear removes every registered region.
func (s *HoverSystem) Clear() {
	for _, e := range s.entities {
		s.world.RemoveEntity(e)
	}
	s.entities = s.entities[:0]
}

// Count returns the number of registered regions.
func (s *HoverSystem) Count() int {
	return len(s.entities)
}

// Lookup returns the top-most region containing (x, y).
// Ties on the same layer go to the region registered last.
func (s *HoverSystem) Lookup(x, y float32) (components.HintRegion, bool) {
	var best components.HintRegion
	found := false

	query := s.filter.Query()
	for query.Next() {
		bounds, region := query.Get()
		if !bounds.Contains(x, y) {
			continue
		}
		if !found || region.Layer >= best.Layer {
			best = *region
			found = true
		}
	}
	return best, found
}

// Resolve returns the hint for (x, y), HintDefault when nothing is hit.
func (s *HoverSystem) Resolve(x, y float32) components.Hint {
	region, ok := s.Lookup(x, y)
	if !ok {
		return components.HintDefault
	}
	return region.Hint
}
