package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/hophop/pkg/components"
	"github.com/decker502/hophop/pkg/ecs"
)

// RenderSystem 绘制矩形和图片实体
// 实体按ID（创建顺序）绘制，后放置的对象在上层
type RenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{entityManager: em}
}

// Draw 绘制所有可见实体
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith1[*components.PositionComponent](s.entityManager) {
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		if rect, ok := ecs.GetComponent[*components.RectComponent](s.entityManager, id); ok && rect.Fill != nil {
			x, y := rectOrigin(pos, rect)
			vector.DrawFilledRect(screen, float32(x), float32(y), float32(rect.Width), float32(rect.Height), rect.Fill, false)
		}

		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok && sprite.Image != nil {
			op := &ebiten.DrawImageOptions{}
			op.GeoM = spriteGeoM(pos, sprite, sprite.Image.Bounds().Dx(), sprite.Image.Bounds().Dy())
			op.Filter = ebiten.FilterLinear
			screen.DrawImage(sprite.Image, op)
		}
	}
}

// rectOrigin 返回以实体位置为中心的矩形左上角
func rectOrigin(pos *components.PositionComponent, rect *components.RectComponent) (float64, float64) {
	return pos.X - rect.Width/2, pos.Y - rect.Height/2
}

// spriteGeoM 计算图片的变换：以图片中心对齐实体位置，再按 Scale 缩放
func spriteGeoM(pos *components.PositionComponent, sprite *components.SpriteComponent, w, h int) ebiten.GeoM {
	scale := sprite.Scale
	if scale <= 0 {
		scale = 1
	}

	var geoM ebiten.GeoM
	geoM.Translate(-float64(w)/2, -float64(h)/2)
	geoM.Scale(scale, scale)
	geoM.Translate(pos.X, pos.Y)
	return geoM
}
