package components

// CollisionComponent 描述实体的碰撞体
//
// 本项目不做物理模拟，这里只记录碰撞体的类型和分组，
// 供移动平台系统和调试绘制使用。
type CollisionComponent struct {
	Static    bool     // 静态碰撞体（平台）；false 表示由系统驱动的动态碰撞体
	Immovable bool     // 不被其它碰撞体推动
	Groups    []string // 碰撞分组，如 "platforms"
}

// InGroup 判断碰撞体是否属于指定分组
func (c *CollisionComponent) InGroup(group string) bool {
	for _, g := range c.Groups {
		if g == group {
			return true
		}
	}
	return false
}
