package config_test

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/decker502/hophop/pkg/config"
	"github.com/decker502/hophop/pkg/grid"
	"github.com/decker502/hophop/pkg/placement"
	"github.com/decker502/hophop/pkg/scenes"
)

const sampleLayout = `
name: First Hops
placements:
  - type: span
    id: ground
    start: A18
    end: J18
    multiPiece: true
  - type: Span
    id: ledge
    start: B12
    end: D12
    color: "#ff8000"
    physics: false
  - type: point
    id: goal
    at: J3
    kind: gift
  - type: point
    id: marker
    at: E5
  - type: moving
    id: lift
    at: E10
    from: C10
    to: H10
    speed: -60
`

// TestParseLayoutConfig 测试布局脚本解析与默认值
func TestParseLayoutConfig(t *testing.T) {
	layout, err := config.ParseLayoutConfig([]byte(sampleLayout))
	if err != nil {
		t.Fatalf("ParseLayoutConfig() error: %v", err)
	}

	if layout.Name != "First Hops" || len(layout.Placements) != 5 {
		t.Fatalf("layout = %+v", layout)
	}
	if layout.Placements[1].Type != config.PlacementSpan {
		t.Errorf("type should be normalized, got %q", layout.Placements[1].Type)
	}
	if layout.Placements[3].Kind != string(placement.ObjectRectangle) {
		t.Errorf("point kind default = %q, want rectangle", layout.Placements[3].Kind)
	}
}

// TestParseLayoutConfigInvalid 测试布局脚本结构错误
func TestParseLayoutConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"未知类型", "placements:\n  - type: circle\n    at: A1\n"},
		{"区域缺少终点", "placements:\n  - type: span\n    start: A1\n"},
		{"单格缺少坐标", "placements:\n  - type: point\n    kind: gift\n"},
		{"移动平台缺少区间", "placements:\n  - type: moving\n    at: C3\n    from: A3\n"},
		{"颜色格式错误", "placements:\n  - type: point\n    at: A1\n    color: green\n"},
		{"负数缩放", "placements:\n  - type: point\n    at: A1\n    kind: sprite\n    scale: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.ParseLayoutConfig([]byte(tt.yaml))
			if !errors.Is(err, config.ErrInvalidLayout) {
				t.Errorf("ParseLayoutConfig() error = %v, want ErrInvalidLayout", err)
			}
		})
	}
}

// TestCheckCoordinates 测试坐标合法性检查收集全部错误
func TestCheckCoordinates(t *testing.T) {
	layout, err := config.ParseLayoutConfig([]byte(`
placements:
  - type: span
    start: A1
    end: K1
  - type: point
    at: A19
  - type: point
    at: b5
  - type: point
    at: C3
`))
	if err != nil {
		t.Fatalf("ParseLayoutConfig() error: %v", err)
	}

	err = layout.CheckCoordinates(grid.NewDefault())
	for _, want := range []error{grid.ErrInvalidColumn, grid.ErrInvalidRow, grid.ErrInvalidFormat} {
		if !errors.Is(err, want) {
			t.Errorf("CheckCoordinates() error = %v, want it to include %v", err, want)
		}
	}

	ok, _ := config.ParseLayoutConfig([]byte(sampleLayout))
	if err := ok.CheckCoordinates(grid.NewDefault()); err != nil {
		t.Errorf("CheckCoordinates(sample) unexpected error: %v", err)
	}
}

// TestApplyLayout 测试按顺序执行布局并通过校验
func TestApplyLayout(t *testing.T) {
	layout, err := config.ParseLayoutConfig([]byte(sampleLayout))
	if err != nil {
		t.Fatalf("ParseLayoutConfig() error: %v", err)
	}

	rec := scenes.NewRecorder(nil)
	registry := placement.NewRegistry(grid.NewDefault(), rec)

	placed, err := layout.Apply(registry)
	if err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	if len(placed) != 5 {
		t.Fatalf("Apply() placed %d, want 5", len(placed))
	}

	wantIDs := []string{"ground", "ledge", "goal", "marker", "lift"}
	for i, id := range registry.List() {
		if id != wantIDs[i] {
			t.Errorf("List()[%d] = %s, want %s", i, id, wantIDs[i])
		}
	}

	// ground: 10 个 32×32 拼接块
	if got := len(placed[0].Handles); got != 10 {
		t.Errorf("ground pieces = %d, want 10", got)
	}

	// ledge: 自定义颜色，无碰撞体
	ledge, _ := rec.Get(placed[1].Handles[0])
	if ledge.Fill != (color.NRGBA{R: 0xff, G: 0x80, A: 0xff}) || ledge.Body {
		t.Errorf("ledge = %+v", ledge)
	}

	// lift: 负速度表示初始向左
	if osc := placed[4].Oscillation; osc == nil || osc.Direction != -1 || osc.StartX != 80 || osc.EndX != 240 {
		t.Errorf("lift oscillation = %+v", placed[4].Oscillation)
	}

	passed, failed := placement.Summary(placement.NewValidator(registry.Grid(), registry).ValidateAll())
	if passed != 5 || failed != 0 {
		t.Errorf("Summary = %d/%d, want 5/0", passed, failed)
	}
}

// TestApplyLayoutStopsOnError 测试遇到错误停止，已完成的放置保留
func TestApplyLayoutStopsOnError(t *testing.T) {
	layout, err := config.ParseLayoutConfig([]byte(`
placements:
  - type: point
    id: first
    at: A1
  - type: point
    id: broken
    at: Z9
  - type: point
    id: never
    at: B1
`))
	if err != nil {
		t.Fatalf("ParseLayoutConfig() error: %v", err)
	}

	registry := placement.NewRegistry(grid.NewDefault(), scenes.NewRecorder(nil))
	placed, err := layout.Apply(registry)
	if !errors.Is(err, grid.ErrInvalidColumn) {
		t.Errorf("Apply() error = %v, want ErrInvalidColumn", err)
	}
	if len(placed) != 1 || registry.Len() != 1 {
		t.Errorf("placed = %d, registry = %d, want 1/1", len(placed), registry.Len())
	}
}

// TestLoadLayoutConfig 测试从文件加载时使用文件名作为ID
func TestLoadLayoutConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "level7.yaml")
	if err := os.WriteFile(path, []byte(sampleLayout), 0644); err != nil {
		t.Fatalf("write layout: %v", err)
	}

	layout, err := config.LoadLayoutConfig(path)
	if err != nil {
		t.Fatalf("LoadLayoutConfig() error: %v", err)
	}
	if layout.ID != "level7" {
		t.Errorf("ID = %q, want level7", layout.ID)
	}
}
