package placement

import (
	"fmt"
	"image/color"
	"math"
	"slices"

	"github.com/decker502/hophop/pkg/grid"
)

// Kind 放置方式
type Kind string

const (
	KindPoint      Kind = "point"      // 单格放置
	KindMoving     Kind = "moving"     // 单格放置 + 水平往返移动
	KindSpan       Kind = "span"       // 区域放置（单个矩形）
	KindMultiPiece Kind = "multiPiece" // 区域放置（重复拼接块）
)

// ObjectKind 单格放置时创建的视觉对象类型
type ObjectKind string

const (
	ObjectRectangle ObjectKind = "rectangle" // 实心矩形
	ObjectImage     ObjectKind = "image"     // 外部图片资源
	ObjectSprite    ObjectKind = "sprite"    // ObjectImage 的别名
	ObjectGift      ObjectKind = "gift"      // 终点礼物，使用 "gift" 图片资源
)

// 默认值
const (
	DefaultPieceResource = "block"
	DefaultGiftResource  = "gift"
	DefaultGroup         = "platforms"
	DefaultMovingSpeed   = 120.0 // 与玩家移动速度一致（像素/秒）
)

var (
	defaultSpanFill  = color.NRGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff}
	defaultPointFill = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Geometry 对象的中心位置和尺寸（像素）
type Geometry struct {
	Center grid.Point
	Width  float64
	Height float64
}

// Oscillation 移动平台的水平往返参数
//
// 放置系统只保存这些参数，不驱动时钟；
// 引擎每帧调用 Step 推进位置。
type Oscillation struct {
	StartX    float64 // 起点格子中心X
	EndX      float64 // 终点格子中心X
	Speed     float64 // 像素/秒，带符号：负数表示初始向左
	Direction int     // 初始方向：1 向右，-1 向左
}

// Step 推进一帧，返回新的X坐标和方向
// 到达区间端点时反向，位置被限制在区间内
func (o Oscillation) Step(x float64, dir int, dt float64) (float64, int) {
	lo, hi := min(o.StartX, o.EndX), max(o.StartX, o.EndX)
	if dir == 0 {
		dir = 1
	}

	x += math.Abs(o.Speed) * float64(dir) * dt
	if x >= hi {
		return hi, -1
	}
	if x <= lo {
		return lo, 1
	}
	return x, dir
}

// PlacedObject 一次放置的记录
//
// 几何信息在创建时确定；Actual 只能通过 Registry.SetActual 修改，
// 用于记录引擎在外部移动对象后的实际几何。Registry 对外返回的都是副本。
type PlacedObject struct {
	ID         string
	Kind       Kind
	ObjectKind ObjectKind // 仅单格放置

	// 源坐标：单格放置使用 Coord，区域放置使用 StartCoord/EndCoord，
	// 移动平台额外使用 FromCoord/ToCoord
	Coord      string
	StartCoord string
	EndCoord   string
	FromCoord  string
	ToCoord    string

	Position    grid.Point   // 单格放置的像素位置
	Span        grid.Span    // 区域放置的网格区域
	Actual      Geometry     // 实际几何
	Pieces      []grid.Point // 拼接块中心
	PieceScale  float64      // 拼接块缩放
	Oscillation *Oscillation // 仅移动平台

	Handles []Handle
}

// clone 复制放置记录，切片和往返参数不与原记录共享
func (p *PlacedObject) clone() *PlacedObject {
	c := *p
	c.Handles = slices.Clone(p.Handles)
	c.Pieces = slices.Clone(p.Pieces)
	if p.Oscillation != nil {
		osc := *p.Oscillation
		c.Oscillation = &osc
	}
	return &c
}

// Location 返回放置的源坐标文本，如 "B12"、"B2-D4"、"E8 (D8-H8)"
func (p *PlacedObject) Location() string {
	switch {
	case p.IsSpan():
		return p.StartCoord + "-" + p.EndCoord
	case p.Kind == KindMoving:
		return fmt.Sprintf("%s (%s-%s)", p.Coord, p.FromCoord, p.ToCoord)
	default:
		return p.Coord
	}
}

// IsSpan 判断是否为区域放置
func (p *PlacedObject) IsSpan() bool {
	return p.Kind == KindSpan || p.Kind == KindMultiPiece
}

// SpanOptions PlaceSpan 的选项
type SpanOptions struct {
	ID            string      // 为空时使用 "span_<start>_<end>"
	UseMultiPiece bool        // 使用重复拼接块填充区域
	PieceResource string      // 拼接块图片资源，默认 "block"
	Fill          color.Color // 矩形颜色，默认绿色
	NoPhysics     bool        // 不添加碰撞体（默认添加静态碰撞体）
	Group         string      // 碰撞分组，默认 "platforms"
}

// PointOptions PlacePoint 的选项
type PointOptions struct {
	ID       string     // 为空时使用 "<kind>_<coord>"
	Kind     ObjectKind // 必填
	Resource string     // 图片资源ID（image/sprite）
	Scale    float64    // 图片缩放，默认 1
	Width    float64    // 矩形宽度，默认格子宽度
	Height   float64    // 矩形高度，默认格子高度
	Fill     color.Color
	Physics  bool   // 是否添加碰撞体
	Static   bool   // 碰撞体是否静态
	Group    string // 碰撞分组，为空时不加入分组
}

// MovingOptions PlaceMovingPoint 的选项
type MovingOptions struct {
	ID            string  // 为空时使用 "moving_<coord>_<from>_<to>"
	Speed         float64 // 默认 120 像素/秒，可为负数表示初始向左
	PieceResource string  // 默认 "block"
	NoPhysics     bool
	Group         string // 默认 "platforms"
}
