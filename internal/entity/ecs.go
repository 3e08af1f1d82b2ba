// internal/entity/ecs.go
package entity

import (
	"go-fog-of-war/internal/component"
	"go-fog-of-war/internal/types"
)

type ECS struct {
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Renderables map[types.EntityID]*component.Renderable
	Players     map[types.EntityID]*component.Player
	Camera      *component.Camera
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Players:     make(map[types.EntityID]*component.Player),
		Camera:      &component.Camera{FollowLerp: 1},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Player возвращает единственного игрока. Если игроков несколько, берётся
// сущность с наименьшим ID, чтобы результат не зависел от порядка обхода map.
func (ecs *ECS) Player() (types.EntityID, *component.Player, bool) {
	var (
		bestID types.EntityID
		best   *component.Player
	)
	for id, p := range ecs.Players {
		if best == nil || id < bestID {
			bestID, best = id, p
		}
	}
	return bestID, best, best != nil
}
