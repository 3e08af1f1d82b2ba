// pkg/render/entity_renderer.go
package render

import (
	"sort"

	"go-fog-of-war/internal/entity"
	"go-fog-of-war/internal/types"
	"go-fog-of-war/pkg/fog"

	"github.com/hajimehoshi/ebiten/v2"
)

// EntityRenderer рисует сущности с Renderable поверх карты
type EntityRenderer struct {
	ecs *entity.ECS
	ids []types.EntityID
}

func NewEntityRenderer(ecs *entity.ECS) *EntityRenderer {
	return &EntityRenderer{ecs: ecs}
}

func (r *EntityRenderer) Draw(screen *ebiten.Image, v fog.View) {
	// Порядок обхода map случаен, сортируем по Y, чтобы нижние сущности были сверху
	r.ids = r.ids[:0]
	for id := range r.ecs.Renderables {
		if _, ok := r.ecs.Positions[id]; ok {
			r.ids = append(r.ids, id)
		}
	}
	sort.Slice(r.ids, func(i, j int) bool {
		pi, pj := r.ecs.Positions[r.ids[i]], r.ecs.Positions[r.ids[j]]
		if pi.Y != pj.Y {
			return pi.Y < pj.Y
		}
		return r.ids[i] < r.ids[j]
	})

	for _, id := range r.ids {
		pos := r.ecs.Positions[id]
		rend := r.ecs.Renderables[id]
		if rend.HasStroke {
			DrawCircle(screen, v, pos.X, pos.Y, rend.Radius, rend.Color, rend.StrokeColor)
		} else {
			DrawCircle(screen, v, pos.X, pos.Y, rend.Radius, rend.Color, nil)
		}
	}
}
