// internal/system/camera.go
package system

import (
	"math"

	"go-fog-of-war/internal/entity"
	"go-fog-of-war/internal/utils"
)

// CameraSystem плавно ведёт камеру за игроком.
type CameraSystem struct {
	ecs *entity.ECS
}

func NewCameraSystem(ecs *entity.ECS) *CameraSystem {
	return &CameraSystem{ecs: ecs}
}

// CenterOnPlayer ставит камеру точно на игрока, без сглаживания.
func (s *CameraSystem) CenterOnPlayer() {
	id, _, ok := s.ecs.Player()
	if !ok {
		return
	}
	if pos, ok := s.ecs.Positions[id]; ok {
		s.ecs.Camera.X, s.ecs.Camera.Y = pos.X, pos.Y
	}
}

func (s *CameraSystem) Update() {
	id, _, ok := s.ecs.Player()
	if !ok {
		return
	}
	pos, ok := s.ecs.Positions[id]
	if !ok {
		return
	}

	cam := s.ecs.Camera
	cam.X = utils.Lerp(cam.X, pos.X, cam.FollowLerp)
	cam.Y = utils.Lerp(cam.Y, pos.Y, cam.FollowLerp)

	// Привязка к пикселям, чтобы тайлы не «дрожали»
	if cam.PixelSnap {
		cam.X = math.Round(cam.X)
		cam.Y = math.Round(cam.Y)
	}
}
