package scenes

import (
	"image"
	"image/color"
	"log"

	"github.com/decker502/hophop/pkg/components"
	"github.com/decker502/hophop/pkg/ecs"
	"github.com/decker502/hophop/pkg/game"
	"github.com/decker502/hophop/pkg/placement"
)

// ImageSource 提供图片资源
// *game.ResourceManager 实现了该接口
type ImageSource interface {
	LoadImageByID(resourceID string) (*game.ImageAsset, error)
	ContentBounds(resourceID string) (image.Rectangle, error)
}

// EcsScene 把放置操作映射为 ECS 实体
//
// 每个场景对象是一个实体，placement.Handle 的值就是实体ID，
// 系统可以用放置记录中的句柄直接查询组件。
type EcsScene struct {
	em     *ecs.EntityManager
	images ImageSource
}

// NewEcsScene 创建基于 ECS 的场景
func NewEcsScene(em *ecs.EntityManager, images ImageSource) *EcsScene {
	return &EcsScene{em: em, images: images}
}

// EntityOf 返回句柄对应的实体ID
func EntityOf(h placement.Handle) ecs.EntityID {
	return ecs.EntityID(h)
}

// CreateRectangle 创建实心矩形实体
func (s *EcsScene) CreateRectangle(cx, cy, w, h float64, fill color.Color) placement.Handle {
	id := s.em.CreateEntity()
	s.em.AddComponent(id, &components.PositionComponent{X: cx, Y: cy})
	s.em.AddComponent(id, &components.RectComponent{Width: w, Height: h, Fill: fill})
	return placement.Handle(id)
}

// CreateImage 创建图片实体
// 图片加载失败时仍然创建实体（不绘制），错误记录到日志
func (s *EcsScene) CreateImage(cx, cy float64, resourceID string, scale float64) placement.Handle {
	id := s.em.CreateEntity()
	s.em.AddComponent(id, &components.PositionComponent{X: cx, Y: cy})

	sprite := &components.SpriteComponent{ResourceID: resourceID, Scale: scale}
	if asset, err := s.images.LoadImageByID(resourceID); err != nil {
		log.Printf("[EcsScene] Warning: image %s unavailable: %v", resourceID, err)
	} else {
		sprite.Image = asset.Texture
	}
	s.em.AddComponent(id, sprite)
	return placement.Handle(id)
}

// AttachCollisionBody 添加碰撞体
// 碰撞体都是 immovable：静态平台不动，动态平台只由移动平台系统驱动
func (s *EcsScene) AttachCollisionBody(h placement.Handle, isStatic bool) {
	id := EntityOf(h)
	if !s.em.Exists(id) {
		return
	}
	if body, ok := ecs.GetComponent[*components.CollisionComponent](s.em, id); ok {
		body.Static = isStatic
		return
	}
	s.em.AddComponent(id, &components.CollisionComponent{Static: isStatic, Immovable: true})
}

// AddToCollisionGroup 把碰撞体加入分组
func (s *EcsScene) AddToCollisionGroup(h placement.Handle, group string) {
	body, ok := ecs.GetComponent[*components.CollisionComponent](s.em, EntityOf(h))
	if !ok {
		log.Printf("[EcsScene] Warning: entity %d has no collision body, ignoring group %s", h, group)
		return
	}
	if !body.InGroup(group) {
		body.Groups = append(body.Groups, group)
	}
}

// Destroy 标记实体待删除，下一次 RemoveMarkedEntities 时清理
func (s *EcsScene) Destroy(h placement.Handle) {
	s.em.DestroyEntity(EntityOf(h))
}

// ContentBounds 返回图片非透明像素的包围盒
func (s *EcsScene) ContentBounds(resourceID string) (image.Rectangle, error) {
	return s.images.ContentBounds(resourceID)
}
