package placement

import (
	"image"
	"image/color"
)

// Handle 是场景对象的不透明句柄
// 由 Scene 实现分配，0 保留为无效句柄
type Handle uint64

// Scene 是放置系统依赖的外部渲染/物理引擎能力集合
//
// 放置系统只通过此接口创建和销毁对象，不关心底层引擎。
// 游戏中由 ECS 场景实现，命令行工具和测试中由记录型场景实现。
type Scene interface {
	// CreateRectangle 在 (cx, cy) 处创建中心对齐的实心矩形
	CreateRectangle(cx, cy, width, height float64, fill color.Color) Handle
	// CreateImage 在 (cx, cy) 处创建中心对齐的图片对象
	CreateImage(cx, cy float64, resourceID string, scale float64) Handle
	// AttachCollisionBody 为对象添加静态或动态碰撞体
	AttachCollisionBody(h Handle, isStatic bool)
	// AddToCollisionGroup 将对象加入碰撞分组（如 "platforms"）
	AddToCollisionGroup(h Handle, group string)
	// Destroy 销毁对象及其碰撞体
	Destroy(h Handle)
	// ContentBounds 返回图片资源中非透明像素的包围盒
	ContentBounds(resourceID string) (image.Rectangle, error)
}
