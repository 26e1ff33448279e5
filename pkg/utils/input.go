// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Corner 屏幕角落
type Corner int

const (
	CornerNone Corner = iota
	CornerTopLeft
	CornerTopRight
	CornerBottomLeft
	CornerBottomRight
)

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置，触摸优先
func IsJustTouchedOrClicked() (bool, int, int) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// CornerAt 判断 (x, y) 落在 w×h 画面的哪个角落（边长 size 的正方形区域）
// 移动端没有键盘，用点击角落代替调试快捷键
func CornerAt(x, y, w, h, size int) Corner {
	left := x < size
	right := x >= w-size
	top := y < size
	bottom := y >= h-size

	switch {
	case top && left:
		return CornerTopLeft
	case top && right:
		return CornerTopRight
	case bottom && left:
		return CornerBottomLeft
	case bottom && right:
		return CornerBottomRight
	}
	return CornerNone
}
