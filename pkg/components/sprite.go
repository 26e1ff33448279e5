package components

import "github.com/hajimehoshi/ebiten/v2"

// SpriteComponent 以实体位置为中心绘制的图片
type SpriteComponent struct {
	Image      *ebiten.Image // 可为 nil（无头场景），此时只保留资源ID和缩放
	ResourceID string
	Scale      float64
}
