// internal/system/movement.go
package system

import (
	"go-fog-of-war/internal/entity"
	"go-fog-of-war/internal/utils"
)

// MovementSystem обновляет позиции сущностей
type MovementSystem struct {
	ecs    *entity.ECS
	input  Input
	bounds Bounds // может быть nil — тогда мир не ограничен
}

func NewMovementSystem(ecs *entity.ECS, input Input, bounds Bounds) *MovementSystem {
	return &MovementSystem{ecs: ecs, input: input, bounds: bounds}
}

func (s *MovementSystem) Update(deltaTime float64) {
	// Направление игрока задаётся вводом
	if s.input != nil {
		dx, dy := utils.Normalize(s.input.MoveAxis())
		for id := range s.ecs.Players {
			if vel, ok := s.ecs.Velocities[id]; ok {
				vel.DX, vel.DY = dx, dy
			}
		}
	}

	for id, pos := range s.ecs.Positions {
		vel, hasVel := s.ecs.Velocities[id]
		if !hasVel || (vel.DX == 0 && vel.DY == 0) {
			continue
		}
		pos.X += vel.DX * vel.Speed * deltaTime
		pos.Y += vel.DY * vel.Speed * deltaTime

		if s.bounds != nil {
			minX, minY, maxX, maxY := s.bounds.Bounds()
			margin := 0.0
			if r, ok := s.ecs.Renderables[id]; ok {
				margin = float64(r.Radius)
			}
			pos.X = utils.Clamp(pos.X, minX+margin, maxX-margin)
			pos.Y = utils.Clamp(pos.Y, minY+margin, maxY-margin)
		}
	}
}
