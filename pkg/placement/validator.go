package placement

import (
	"fmt"
	"log"
	"math"

	"github.com/decker502/hophop/pkg/grid"
)

// Tolerance 几何比较的绝对容差（像素），各轴独立比较
const Tolerance = 1.0

// Result 单个放置的校验结果
//
// 校验是报告型操作：ID 不存在或坐标非法时 Valid=false，原因记录在 Err 中，
// 不会作为错误返回。
type Result struct {
	ID            string
	Valid         bool
	Expected      Geometry
	Actual        Geometry
	PositionMatch bool
	SizeMatch     *bool // 仅区域校验时有值
	Err           error
}

// Validator 放置校验器
type Validator struct {
	grid     *grid.Grid
	registry *Registry
}

// NewValidator 创建放置校验器
func NewValidator(g *grid.Grid, registry *Registry) *Validator {
	return &Validator{grid: g, registry: registry}
}

func within(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Validate 校验放置记录的实际几何是否与坐标重新计算的几何一致
//
// expectedEnd 非空时按区域校验（中心和尺寸），否则按单格校验（仅中心）。
func (v *Validator) Validate(id, expectedStart, expectedEnd string) Result {
	obj, exists := v.registry.Get(id)
	if !exists {
		return Result{ID: id, Err: fmt.Errorf("object %s: %w", id, ErrNotFound)}
	}
	actual := obj.Actual

	if expectedEnd != "" {
		span, err := v.grid.Span(expectedStart, expectedEnd)
		if err != nil {
			return Result{ID: id, Actual: actual, Err: err}
		}
		expected := Geometry{Center: span.Center, Width: span.Width, Height: span.Height}

		positionMatch := within(actual.Center.X, expected.Center.X) && within(actual.Center.Y, expected.Center.Y)
		sizeMatch := within(actual.Width, expected.Width) && within(actual.Height, expected.Height)
		return Result{
			ID:            id,
			Valid:         positionMatch && sizeMatch,
			Expected:      expected,
			Actual:        actual,
			PositionMatch: positionMatch,
			SizeMatch:     &sizeMatch,
		}
	}

	pos, err := v.grid.ToPixel(expectedStart)
	if err != nil {
		return Result{ID: id, Actual: actual, Err: err}
	}
	expected := Geometry{Center: pos, Width: actual.Width, Height: actual.Height}

	positionMatch := within(actual.Center.X, pos.X) && within(actual.Center.Y, pos.Y)
	return Result{
		ID:            id,
		Valid:         positionMatch,
		Expected:      expected,
		Actual:        actual,
		PositionMatch: positionMatch,
	}
}

// ValidateAll 用每条记录自身保存的坐标校验所有放置（自洽性检查）
// 可发现网格配置在放置后被修改，或实际几何被引擎在外部修改的情况
func (v *Validator) ValidateAll() []Result {
	type target struct {
		id, start, end string
	}

	var targets []target
	v.registry.Each(func(obj *PlacedObject) bool {
		if obj.IsSpan() {
			targets = append(targets, target{obj.ID, obj.StartCoord, obj.EndCoord})
		} else {
			targets = append(targets, target{obj.ID, obj.Coord, ""})
		}
		return true
	})

	log.Printf("[GridValidator] Validating %d placed objects...", len(targets))
	results := make([]Result, 0, len(targets))
	for _, t := range targets {
		res := v.Validate(t.id, t.start, t.end)
		if res.Valid {
			log.Printf("[GridValidator]   %s: VALID", res.ID)
		} else {
			log.Printf("[GridValidator]   %s: INVALID", res.ID)
			if res.Err != nil {
				log.Printf("[GridValidator]     Error: %v", res.Err)
			}
		}
		results = append(results, res)
	}
	return results
}

// Summary 统计校验通过和失败的数量
func Summary(results []Result) (passed, failed int) {
	for _, r := range results {
		if r.Valid {
			passed++
		} else {
			failed++
		}
	}
	return passed, failed
}
