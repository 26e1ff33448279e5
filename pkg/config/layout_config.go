package config

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"path"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/decker502/hophop/pkg/grid"
	"github.com/decker502/hophop/pkg/placement"
)

// 放置条目类型
const (
	PlacementSpan   = "span"
	PlacementPoint  = "point"
	PlacementMoving = "moving"
)

// ErrInvalidLayout 布局脚本结构错误
var ErrInvalidLayout = errors.New("invalid layout")

// LayoutConfig 关卡布局脚本（data/levels/*.yaml）
//
// 布局只是关卡的编辑输入：按顺序执行其中的放置操作，不会写回文件。
//
// 示例：
//
//	name: First Hops
//	placements:
//	  - type: span
//	    id: ground
//	    start: A18
//	    end: J18
//	    multiPiece: true
//	  - type: point
//	    id: goal
//	    at: J3
//	    kind: gift
//	  - type: moving
//	    at: E10
//	    from: C10
//	    to: H10
type LayoutConfig struct {
	ID         string            `yaml:"id"` // 为空时使用文件名
	Name       string            `yaml:"name"`
	Placements []PlacementConfig `yaml:"placements"`
}

// PlacementConfig 单条放置操作
type PlacementConfig struct {
	Type string `yaml:"type"` // span / point / moving
	ID   string `yaml:"id"`   // 为空时由放置系统生成

	// span
	Start      string `yaml:"start"`
	End        string `yaml:"end"`
	MultiPiece bool   `yaml:"multiPiece"`

	// point / moving
	At   string `yaml:"at"`
	From string `yaml:"from"`
	To   string `yaml:"to"`

	Kind     string  `yaml:"kind"`     // point: rectangle / image / sprite / gift
	Resource string  `yaml:"resource"` // 图片或拼接块资源ID
	Scale    float64 `yaml:"scale"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Color    string  `yaml:"color"` // "#rrggbb"
	Speed    float64 `yaml:"speed"`

	Physics *bool  `yaml:"physics"` // span/moving 默认开启，point 默认关闭
	Static  bool   `yaml:"static"`
	Group   string `yaml:"group"`
}

// LoadLayoutConfig 加载布局脚本
func LoadLayoutConfig(filePath string) (*LayoutConfig, error) {
	data, err := readFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file %s: %w", filePath, err)
	}

	layout, err := ParseLayoutConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid layout in %s: %w", filePath, err)
	}
	if layout.ID == "" {
		layout.ID = strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))
	}
	return layout, nil
}

// ParseLayoutConfig 解析并验证布局脚本
func ParseLayoutConfig(data []byte) (*LayoutConfig, error) {
	var layout LayoutConfig
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return nil, fmt.Errorf("failed to parse layout YAML: %w", err)
	}

	applyLayoutDefaults(&layout)

	if err := validateLayout(&layout); err != nil {
		return nil, err
	}
	return &layout, nil
}

// applyLayoutDefaults 统一大小写并补全缺省类型
func applyLayoutDefaults(layout *LayoutConfig) {
	for i := range layout.Placements {
		p := &layout.Placements[i]
		p.Type = strings.ToLower(strings.TrimSpace(p.Type))
		if p.Type == PlacementPoint && p.Kind == "" {
			p.Kind = string(placement.ObjectRectangle)
		}
	}
}

// validateLayout 检查每条放置的必填字段
// 坐标是否落在网格内由 CheckCoordinates 检查，需要具体的网格配置
func validateLayout(layout *LayoutConfig) error {
	for i, p := range layout.Placements {
		switch p.Type {
		case PlacementSpan:
			if p.Start == "" || p.End == "" {
				return fmt.Errorf("%w: placement %d: span requires start and end", ErrInvalidLayout, i)
			}
		case PlacementPoint:
			if p.At == "" {
				return fmt.Errorf("%w: placement %d: point requires at", ErrInvalidLayout, i)
			}
		case PlacementMoving:
			if p.At == "" || p.From == "" || p.To == "" {
				return fmt.Errorf("%w: placement %d: moving requires at, from and to", ErrInvalidLayout, i)
			}
		default:
			return fmt.Errorf("%w: placement %d: unknown type %q (use span, point or moving)", ErrInvalidLayout, i, p.Type)
		}

		if p.Color != "" {
			if _, err := parseColor(p.Color); err != nil {
				return fmt.Errorf("%w: placement %d: %v", ErrInvalidLayout, i, err)
			}
		}
		if p.Scale < 0 || p.Width < 0 || p.Height < 0 {
			return fmt.Errorf("%w: placement %d: scale and size cannot be negative", ErrInvalidLayout, i)
		}
	}
	return nil
}

// Coordinates 返回放置引用的所有坐标文本
func (p PlacementConfig) Coordinates() []string {
	switch p.Type {
	case PlacementSpan:
		return []string{p.Start, p.End}
	case PlacementMoving:
		return []string{p.At, p.From, p.To}
	}
	return []string{p.At}
}

// CheckCoordinates 检查所有坐标在指定网格中是否合法，返回全部错误
func (l *LayoutConfig) CheckCoordinates(g *grid.Grid) error {
	var errs []error
	for i, p := range l.Placements {
		for _, text := range p.Coordinates() {
			if _, err := g.Parse(text); err != nil {
				errs = append(errs, fmt.Errorf("placement %d (%s): %w", i, p.Type, err))
			}
		}
	}
	return errors.Join(errs...)
}

// Apply 按顺序执行布局中的放置操作
// 遇到第一个错误即停止，已完成的放置保留在 registry 中
func (l *LayoutConfig) Apply(r *placement.Registry) ([]*placement.PlacedObject, error) {
	log.Printf("[Layout] Applying layout %s (%d placements)", l.ID, len(l.Placements))

	placed := make([]*placement.PlacedObject, 0, len(l.Placements))
	for i, p := range l.Placements {
		obj, err := p.apply(r)
		if err != nil {
			return placed, fmt.Errorf("layout %s placement %d: %w", l.ID, i, err)
		}
		placed = append(placed, obj)
	}
	return placed, nil
}

func (p PlacementConfig) apply(r *placement.Registry) (*placement.PlacedObject, error) {
	fill, _ := parseColor(p.Color)

	switch p.Type {
	case PlacementSpan:
		return r.PlaceSpan(p.Start, p.End, placement.SpanOptions{
			ID:            p.ID,
			UseMultiPiece: p.MultiPiece,
			PieceResource: p.Resource,
			Fill:          fill,
			NoPhysics:     p.Physics != nil && !*p.Physics,
			Group:         p.Group,
		})
	case PlacementPoint:
		return r.PlacePoint(p.At, placement.PointOptions{
			ID:       p.ID,
			Kind:     placement.ObjectKind(p.Kind),
			Resource: p.Resource,
			Scale:    p.Scale,
			Width:    p.Width,
			Height:   p.Height,
			Fill:     fill,
			Physics:  p.Physics != nil && *p.Physics,
			Static:   p.Static,
			Group:    p.Group,
		})
	case PlacementMoving:
		return r.PlaceMovingPoint(p.At, p.From, p.To, placement.MovingOptions{
			ID:            p.ID,
			Speed:         p.Speed,
			PieceResource: p.Resource,
			NoPhysics:     p.Physics != nil && !*p.Physics,
			Group:         p.Group,
		})
	}
	return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidLayout, p.Type)
}

// parseColor 解析 "#rrggbb"，空字符串返回 nil（使用放置系统的默认颜色）
func parseColor(s string) (color.Color, error) {
	if s == "" {
		return nil, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}
