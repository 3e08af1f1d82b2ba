// internal/system/fog.go
package system

import (
	"go-fog-of-war/internal/entity"
	"go-fog-of-war/internal/event"
	"go-fog-of-war/internal/utils"
	"go-fog-of-war/pkg/fog"

	"golang.org/x/image/math/f32"
)

// FogSystem держит снимок параметров тумана на текущий кадр. Снимок
// перезаписывается один раз в Update, после движения; отрисовка только читает.
type FogSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	maxRadius  float64
	params     fog.Params
}

func NewFogSystem(ecs *entity.ECS, dispatcher *event.Dispatcher, maxRadius float64) *FogSystem {
	return &FogSystem{ecs: ecs, dispatcher: dispatcher, maxRadius: maxRadius}
}

func (s *FogSystem) Update() {
	id, player, ok := s.ecs.Player()
	if !ok {
		return
	}
	pos, ok := s.ecs.Positions[id]
	if !ok {
		return
	}
	s.params = fog.Params{
		PlayerPos:    f32.Vec2{float32(pos.X), float32(pos.Y)},
		VisionRadius: float32(player.VisionRadius),
	}
}

// Params возвращает снимок, сделанный последним Update.
func (s *FogSystem) Params() fog.Params {
	return s.params
}

// View возвращает вид камеры для экрана заданного размера.
func (s *FogSystem) View(width, height int) fog.View {
	cam := s.ecs.Camera
	return fog.View{
		Center: f32.Vec2{float32(cam.X), float32(cam.Y)},
		Width:  width,
		Height: height,
	}
}

// AdjustRadius меняет радиус видимости игрока на delta в пределах [0, maxRadius].
// Новый радиус попадёт в снимок на следующем Update.
func (s *FogSystem) AdjustRadius(delta float64) {
	_, player, ok := s.ecs.Player()
	if !ok {
		return
	}
	old := player.VisionRadius
	player.VisionRadius = utils.Clamp(old+delta, 0, s.maxRadius)
	if player.VisionRadius == old || s.dispatcher == nil {
		return
	}
	s.dispatcher.Dispatch(event.Event{
		Type: event.VisionRadiusChanged,
		Data: event.VisionRadiusData{Old: old, New: player.VisionRadius},
	})
}
