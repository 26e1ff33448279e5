package utils

import (
	"image"
	"image/color"
)

// AlphaBounds 返回图片中非透明像素（alpha > 0）的最小包围盒
//
// 拼接块图片通常带有透明边距，放置时按内容区域而不是整张图片计算缩放。
// 图片完全透明时返回空矩形。
//
// 坐标使用图片自身的坐标系（与 img.Bounds() 一致）。
func AlphaBounds(img image.Image) image.Rectangle {
	if img == nil {
		return image.Rectangle{}
	}

	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1

	opaque := opaqueFunc(img)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if !opaque(x, y) {
				continue
			}
			minX = min(minX, x)
			maxX = max(maxX, x)
			minY = min(minY, y)
			maxY = max(maxY, y)
		}
	}

	if maxX < minX || maxY < minY {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}

// opaqueFunc 返回按像素判断 alpha > 0 的函数
// 常见格式直接读像素数据，避免逐像素的 color.Color 接口转换
func opaqueFunc(img image.Image) func(x, y int) bool {
	switch src := img.(type) {
	case *image.NRGBA:
		return func(x, y int) bool { return src.NRGBAAt(x, y).A > 0 }
	case *image.RGBA:
		return func(x, y int) bool { return src.RGBAAt(x, y).A > 0 }
	case *image.Paletted:
		// 调色板最多 256 色，预先算出每个索引是否不透明；超出调色板的索引视为透明
		var table [256]bool
		for i, c := range src.Palette {
			if i >= len(table) {
				break
			}
			if c == nil {
				continue
			}
			_, _, _, a := c.RGBA()
			table[i] = a > 0
		}
		return func(x, y int) bool { return table[src.ColorIndexAt(x, y)] }
	}
	return func(x, y int) bool {
		return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA).A > 0
	}
}
