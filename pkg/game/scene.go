package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 是一个可更新、可绘制的场景（一个关卡布局就是一个场景）
type Scene interface {
	// Update 推进场景逻辑，deltaTime 为距上一帧的秒数
	Update(deltaTime float64)

	// Draw 绘制场景到 screen
	Draw(screen *ebiten.Image)
}

// Saveable 是可选接口：窗口关闭时保存场景状态
type Saveable interface {
	// SaveOnExit 保存状态
	// 返回 false 表示保存失败（程序仍会正常退出）
	SaveOnExit() bool
}
