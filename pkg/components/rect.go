package components

import "image/color"

// RectComponent 以实体位置为中心的实心矩形
type RectComponent struct {
	Width  float64
	Height float64
	Fill   color.Color
}
