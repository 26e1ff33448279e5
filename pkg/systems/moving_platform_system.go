package systems

import (
	"github.com/decker502/hophop/pkg/components"
	"github.com/decker502/hophop/pkg/ecs"
	"github.com/decker502/hophop/pkg/placement"
)

// MovingPlatformSystem 每帧推进移动平台
//
// 往返区间和速度来自放置记录的 Oscillation，当前方向保存在实体的
// OscillationComponent 上。放置记录的实际几何不随移动更新。
type MovingPlatformSystem struct {
	entityManager *ecs.EntityManager
	registry      *placement.Registry
}

// NewMovingPlatformSystem 创建移动平台系统
func NewMovingPlatformSystem(em *ecs.EntityManager, registry *placement.Registry) *MovingPlatformSystem {
	return &MovingPlatformSystem{
		entityManager: em,
		registry:      registry,
	}
}

// Update 推进所有移动平台
func (s *MovingPlatformSystem) Update(deltaTime float64) {
	s.registry.Each(func(obj *placement.PlacedObject) bool {
		if obj.Oscillation == nil {
			return true
		}
		for _, h := range obj.Handles {
			s.advance(ecs.EntityID(h), *obj.Oscillation, deltaTime)
		}
		return true
	})
}

func (s *MovingPlatformSystem) advance(id ecs.EntityID, osc placement.Oscillation, deltaTime float64) {
	if s.entityManager.IsMarkedForDestroy(id) {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return
	}

	motion, ok := ecs.GetComponent[*components.OscillationComponent](s.entityManager, id)
	if !ok {
		// 第一帧：从放置时的初始方向开始
		motion = &components.OscillationComponent{Direction: osc.Direction}
		s.entityManager.AddComponent(id, motion)
	}

	pos.X, motion.Direction = osc.Step(pos.X, motion.Direction, deltaTime)
}
