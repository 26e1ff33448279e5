// Package grid 实现关卡编辑用的国际象棋式网格坐标系统
//
// # 坐标系统概述
//
// 游戏画面被划分为 Columns × Rows 个格子：
//   - 列用大写字母表示：A 是最左列，A+Columns-1 是最右列
//   - 行用 1 起始的数字表示：第 1 行位于屏幕顶部，行号增大则像素 Y 增大
//   - 文本形式为 "<列字母><行号>"，如 "A1"、"B12"、"J18"
//
// # 核心转换公式
//
//	x = col*CellWidth + CellWidth/2
//	y = (row-1)*CellHeight + CellHeight/2
//
// 反向转换：
//
//	col = floor(x / CellWidth)
//	row = floor(y / CellHeight) + 1
//
// # 错误处理
//
// 解析失败返回 *CoordinateError，可用 errors.Is 匹配 ErrInvalidFormat、
// ErrInvalidColumn、ErrInvalidRow 或统一的 ErrInvalidCoordinate。
// ToCoordinate 与 IsValid 从不返回错误，用于"是否在网格内"的探测。
package grid

import (
	"errors"
	"fmt"
	"image"
	"math"
	"regexp"
	"strconv"
)

// 坐标文本格式：单个大写字母 + 1~2 位数字
// 字母范围不限于已配置的列，这样 "K1" 能被识别为列越界而不是格式错误
var coordPattern = regexp.MustCompile(`^([A-Z])(\d{1,2})$`)

const (
	// MaxColumns 列字母只支持 A-Z
	MaxColumns = 26
	// MaxRows 行号最多两位数
	MaxRows = 99
)

// ErrInvalidConfig 表示网格配置不合法
var ErrInvalidConfig = errors.New("invalid grid config")

// Config 网格配置
// 各字段相互独立，不从其中一个推导另一个
type Config struct {
	Width      float64 // 游戏画面像素宽度
	Height     float64 // 游戏画面像素高度
	CellWidth  float64 // 格子像素宽度
	CellHeight float64 // 格子像素高度
	Columns    int     // 列数（A 开始）
	Rows       int     // 行数（1 开始）
}

// DefaultConfig 返回标准配置：10 列 × 18 行，32×32 像素格子
func DefaultConfig() Config {
	return Config{
		Width:      320,
		Height:     576,
		CellWidth:  32,
		CellHeight: 32,
		Columns:    10,
		Rows:       18,
	}
}

// Validate 检查配置是否合法
func (c Config) Validate() error {
	if c.CellWidth <= 0 || c.CellHeight <= 0 {
		return fmt.Errorf("%w: cell size must be positive, got %vx%v", ErrInvalidConfig, c.CellWidth, c.CellHeight)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: screen size must be positive, got %vx%v", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Columns < 1 || c.Columns > MaxColumns {
		return fmt.Errorf("%w: columns must be within 1-%d, got %d", ErrInvalidConfig, MaxColumns, c.Columns)
	}
	if c.Rows < 1 || c.Rows > MaxRows {
		return fmt.Errorf("%w: rows must be within 1-%d, got %d", ErrInvalidConfig, MaxRows, c.Rows)
	}
	return nil
}

// Grid 是不可变的网格坐标系统
// 构造后只读，可在多个 goroutine 间共享
type Grid struct {
	cfg        Config
	lastLetter byte
}

// New 根据配置创建网格
func New(cfg Config) (*Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Grid{
		cfg:        cfg,
		lastLetter: byte('A' + cfg.Columns - 1),
	}, nil
}

// NewDefault 使用 DefaultConfig 创建网格
func NewDefault() *Grid {
	g, err := New(DefaultConfig())
	if err != nil {
		// DefaultConfig 总是合法的
		panic(err)
	}
	return g
}

// Config 返回网格配置
func (g *Grid) Config() Config { return g.cfg }

// Columns 返回列数
func (g *Grid) Columns() int { return g.cfg.Columns }

// Rows 返回行数
func (g *Grid) Rows() int { return g.cfg.Rows }

// CellSize 返回格子的像素宽高
func (g *Grid) CellSize() (w, h float64) { return g.cfg.CellWidth, g.cfg.CellHeight }

// Letters 返回所有列字母，如 "ABCDEFGHIJ"
func (g *Grid) Letters() string {
	b := make([]byte, g.cfg.Columns)
	for i := range b {
		b[i] = byte('A' + i)
	}
	return string(b)
}

// Bounds 返回网格覆盖的像素矩形
func (g *Grid) Bounds() image.Rectangle {
	return image.Rect(0, 0,
		int(math.Ceil(float64(g.cfg.Columns)*g.cfg.CellWidth)),
		int(math.Ceil(float64(g.cfg.Rows)*g.cfg.CellHeight)))
}

func (g *Grid) columnHint() string {
	return fmt.Sprintf("use A-%c", g.lastLetter)
}

func (g *Grid) rowHint() string {
	return fmt.Sprintf("use 1-%d", g.cfg.Rows)
}

// Parse 解析坐标文本
//
// 返回：
//   - Coord: 解析出的格子
//   - error: *CoordinateError，格式错误 / 列越界 / 行越界
func (g *Grid) Parse(text string) (Coord, error) {
	m := coordPattern.FindStringSubmatch(text)
	if m == nil {
		return Coord{}, &CoordinateError{Text: text, Hint: "use format like 'B12' or 'D5'", Err: ErrInvalidFormat}
	}

	col := int(m[1][0] - 'A')
	if col >= g.cfg.Columns {
		return Coord{}, &CoordinateError{Text: text, Hint: g.columnHint(), Err: ErrInvalidColumn}
	}

	// 正则保证了 1~2 位数字，Atoi 不会失败
	row, _ := strconv.Atoi(m[2])
	if row < 1 || row > g.cfg.Rows {
		return Coord{}, &CoordinateError{Text: text, Hint: g.rowHint(), Err: ErrInvalidRow}
	}

	return Coord{col: col, row: row}, nil
}

// MustParse 与 Parse 相同，但解析失败时 panic
// 仅用于测试和硬编码的关卡数据
func (g *Grid) MustParse(text string) Coord {
	c, err := g.Parse(text)
	if err != nil {
		panic(err)
	}
	return c
}

// IsValid 判断坐标文本是否合法，从不返回错误
func (g *Grid) IsValid(text string) bool {
	_, err := g.Parse(text)
	return err == nil
}

// CellCenter 返回格子中心的像素坐标
func (g *Grid) CellCenter(c Coord) Point {
	return Point{
		X: float64(c.col)*g.cfg.CellWidth + g.cfg.CellWidth/2,
		Y: float64(c.row-1)*g.cfg.CellHeight + g.cfg.CellHeight/2,
	}
}

// ToPixel 将坐标文本转换为格子中心的像素坐标
func (g *Grid) ToPixel(text string) (Point, error) {
	c, err := g.Parse(text)
	if err != nil {
		return Point{}, err
	}
	return g.CellCenter(c), nil
}

// ToCoordinate 将像素坐标转换为格子
// 超出网格范围或坐标为 NaN/Inf 时返回 false（不是错误）
func (g *Grid) ToCoordinate(x, y float64) (Coord, bool) {
	fx := math.Floor(x / g.cfg.CellWidth)
	fy := math.Floor(y / g.cfg.CellHeight)

	// 先在浮点范围内判断：NaN、Inf 和超大值转换为 int 的结果依赖平台
	if math.IsNaN(fx) || math.IsNaN(fy) ||
		fx < 0 || fx >= float64(g.cfg.Columns) || fy < 0 || fy >= float64(g.cfg.Rows) {
		return Coord{}, false
	}
	return Coord{col: int(fx), row: int(fy) + 1}, true
}

// normalize 解析两个坐标并返回规范化后的左上角和右下角
func (g *Grid) normalize(startText, endText string) (Coord, Coord, error) {
	a, err := g.Parse(startText)
	if err != nil {
		return Coord{}, Coord{}, err
	}
	b, err := g.Parse(endText)
	if err != nil {
		return Coord{}, Coord{}, err
	}

	topLeft := Coord{col: min(a.col, b.col), row: min(a.row, b.row)}
	bottomRight := Coord{col: max(a.col, b.col), row: max(a.row, b.row)}
	return topLeft, bottomRight, nil
}

// SpanOf 计算两个已解析格子覆盖的区域
func (g *Grid) SpanOf(a, b Coord) Span {
	topLeft := Coord{col: min(a.col, b.col), row: min(a.row, b.row)}
	bottomRight := Coord{col: max(a.col, b.col), row: max(a.row, b.row)}

	colSpan := bottomRight.col - topLeft.col + 1
	rowSpan := bottomRight.row - topLeft.row + 1
	width := float64(colSpan) * g.cfg.CellWidth
	height := float64(rowSpan) * g.cfg.CellHeight

	return Span{
		Start:   topLeft,
		End:     bottomRight,
		ColSpan: colSpan,
		RowSpan: rowSpan,
		Center: Point{
			X: float64(topLeft.col)*g.cfg.CellWidth + width/2,
			Y: float64(topLeft.row-1)*g.cfg.CellHeight + height/2,
		},
		Width:  width,
		Height: height,
	}
}

// Span 计算两个坐标覆盖的最小矩形区域
// 两个坐标的顺序不影响结果：Span(a, b) == Span(b, a)
func (g *Grid) Span(startText, endText string) (Span, error) {
	topLeft, bottomRight, err := g.normalize(startText, endText)
	if err != nil {
		return Span{}, err
	}
	return g.SpanOf(topLeft, bottomRight), nil
}

// CellsInSpan 按行优先顺序列出区域内的所有格子
// 先列出第 minRow 行的所有列，再列出 minRow+1 行，依此类推
func (g *Grid) CellsInSpan(startText, endText string) ([]Coord, error) {
	topLeft, bottomRight, err := g.normalize(startText, endText)
	if err != nil {
		return nil, err
	}

	cells := make([]Coord, 0, (bottomRight.col-topLeft.col+1)*(bottomRight.row-topLeft.row+1))
	for row := topLeft.row; row <= bottomRight.row; row++ {
		for col := topLeft.col; col <= bottomRight.col; col++ {
			cells = append(cells, Coord{col: col, row: row})
		}
	}
	return cells, nil
}
