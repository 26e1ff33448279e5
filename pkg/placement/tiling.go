package placement

import (
	"fmt"
	"image"
	"math"

	"github.com/decker502/hophop/pkg/grid"
)

// Tiling 拼接块布局
type Tiling struct {
	Scale       float64      // 拼接块缩放比例
	PieceWidth  float64      // 缩放后的拼接块内容宽度
	PieceHeight float64      // 缩放后的拼接块内容高度
	Centers     []grid.Point // 每个拼接块的中心
}

// PieceScale 计算让拼接块内容适配单个格子的缩放比例
// content 是图片非透明像素的包围盒（透明边距已去除）
func PieceScale(content image.Rectangle, cellSize float64) (float64, error) {
	pw, ph := content.Dx(), content.Dy()
	if pw <= 0 || ph <= 0 {
		return 0, ErrEmptyPiece
	}
	return cellSize / float64(max(pw, ph)), nil
}

// TileSpan 计算用拼接块从左到右填满区域所需的布局
//
// 计算公式：
//
//	scale       = cellSize / max(pw, ph)
//	scaledWidth = pw * scale
//	n           = ceil(span.Width / scaledWidth)
//	x[i]        = span.Left + scaledWidth/2 + i*scaledWidth
//	y[i]        = span.Center.Y
//
// 最后一块不裁剪，可能超出区域右边缘（不足一块宽度）
func TileSpan(span grid.Span, content image.Rectangle, cellSize float64) (Tiling, error) {
	scale, err := PieceScale(content, cellSize)
	if err != nil {
		return Tiling{}, err
	}

	scaledWidth := float64(content.Dx()) * scale
	scaledHeight := float64(content.Dy()) * scale
	n := int(math.Ceil(span.Width / scaledWidth))
	if n < 1 {
		return Tiling{}, fmt.Errorf("span %s-%s too small to tile", span.Start, span.End)
	}

	centers := make([]grid.Point, n)
	startX := span.Left() + scaledWidth/2
	for i := range centers {
		centers[i] = grid.Point{X: startX + float64(i)*scaledWidth, Y: span.Center.Y}
	}

	return Tiling{
		Scale:       scale,
		PieceWidth:  scaledWidth,
		PieceHeight: scaledHeight,
		Centers:     centers,
	}, nil
}
