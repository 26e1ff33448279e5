package grid

import "strconv"

// Coord 表示一个网格格子
// 列以 0 为起点（A=0, B=1 ...），行以 1 为起点（第 1 行位于屏幕顶部）
//
// Coord 是不可变的值类型，可直接用 == 比较
type Coord struct {
	col int
	row int
}

// Col 返回 0 起始的列索引
func (c Coord) Col() int { return c.col }

// Row 返回 1 起始的行号
func (c Coord) Row() int { return c.row }

// Letter 返回列字母
func (c Coord) Letter() byte { return byte('A' + c.col) }

// String 返回坐标的文本形式，如 "B12"
func (c Coord) String() string {
	return string(rune('A'+c.col)) + strconv.Itoa(c.row)
}

// Point 表示像素坐标（屏幕坐标系，Y 轴向下）
type Point struct {
	X float64
	Y float64
}

// Span 是覆盖两个坐标的最小矩形区域
//
// Start 总是左上角格子，End 总是右下角格子，与传入顺序无关。
type Span struct {
	Start   Coord
	End     Coord
	ColSpan int
	RowSpan int
	Center  Point   // 区域中心的像素坐标
	Width   float64 // 区域像素宽度
	Height  float64 // 区域像素高度
}

// Left 返回区域左边缘的像素 X
func (s Span) Left() float64 { return s.Center.X - s.Width/2 }

// Right 返回区域右边缘的像素 X
func (s Span) Right() float64 { return s.Center.X + s.Width/2 }

// Top 返回区域上边缘的像素 Y
func (s Span) Top() float64 { return s.Center.Y - s.Height/2 }

// Bottom 返回区域下边缘的像素 Y
func (s Span) Bottom() float64 { return s.Center.Y + s.Height/2 }

// Contains 判断格子是否位于区域内
func (s Span) Contains(c Coord) bool {
	return c.col >= s.Start.col && c.col <= s.End.col &&
		c.row >= s.Start.row && c.row <= s.End.row
}
