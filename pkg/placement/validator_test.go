package placement

import (
	"errors"
	"testing"

	"github.com/decker502/hophop/pkg/grid"
)

// TestValidateSpan 测试区域校验
func TestValidateSpan(t *testing.T) {
	r, _ := newTestRegistry()
	v := NewValidator(r.Grid(), r)

	if _, err := r.PlaceSpan("B2", "D4", SpanOptions{ID: "p1"}); err != nil {
		t.Fatalf("PlaceSpan() unexpected error: %v", err)
	}

	tests := []struct {
		name      string
		shift     float64
		grow      float64
		wantValid bool
		wantPos   bool
		wantSize  bool
	}{
		{"未修改", 0, 0, true, true, true},
		{"容差内偏移", 0.5, 0, true, true, true},
		{"超出容差偏移", 1.5, 0, false, false, true},
		{"刚好等于容差", 1.0, 0, false, false, true},
		{"尺寸变化", 0, 4, false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r.SetActual("p1", Geometry{
				Center: grid.Point{X: 80 + tt.shift, Y: 80},
				Width:  96 + tt.grow,
				Height: 96,
			})

			res := v.Validate("p1", "B2", "D4")
			if res.Err != nil {
				t.Fatalf("Validate() unexpected error: %v", res.Err)
			}
			if res.Valid != tt.wantValid || res.PositionMatch != tt.wantPos {
				t.Errorf("Valid=%v PositionMatch=%v, want %v/%v", res.Valid, res.PositionMatch, tt.wantValid, tt.wantPos)
			}
			if res.SizeMatch == nil || *res.SizeMatch != tt.wantSize {
				t.Errorf("SizeMatch = %v, want %v", res.SizeMatch, tt.wantSize)
			}
			if res.Expected.Center != (grid.Point{X: 80, Y: 80}) || res.Expected.Width != 96 {
				t.Errorf("Expected = %+v", res.Expected)
			}
		})
	}
}

// TestValidateSpanReversedCorners 测试区域校验与角点顺序无关
func TestValidateSpanReversedCorners(t *testing.T) {
	r, _ := newTestRegistry()
	v := NewValidator(r.Grid(), r)

	r.PlaceSpan("B2", "D4", SpanOptions{ID: "p1", UseMultiPiece: true})
	if res := v.Validate("p1", "D4", "B2"); !res.Valid {
		t.Errorf("Validate(D4, B2) = %+v, want valid", res)
	}
	if res := v.Validate("p1", "B2", "D5"); res.Valid {
		t.Error("Validate against a different span should fail")
	}
}

// TestValidatePoint 测试单格校验只比较位置
func TestValidatePoint(t *testing.T) {
	r, _ := newTestRegistry()
	v := NewValidator(r.Grid(), r)

	obj, err := r.PlacePoint("B12", PointOptions{ID: "goal", Kind: ObjectGift})
	if err != nil {
		t.Fatalf("PlacePoint() unexpected error: %v", err)
	}

	res := v.Validate("goal", "B12", "")
	if !res.Valid || !res.PositionMatch || res.SizeMatch != nil {
		t.Errorf("Validate(goal) = %+v, want valid without size check", res)
	}
	if res.Expected.Center != (grid.Point{X: 48, Y: 368}) {
		t.Errorf("Expected center = %+v, want (48, 368)", res.Expected.Center)
	}

	if res := v.Validate("goal", "B11", ""); res.Valid {
		t.Error("Validate against a neighbouring cell should fail")
	}

	r.SetActual("goal", Geometry{Center: grid.Point{X: obj.Position.X, Y: obj.Position.Y + 0.9}})
	if res := v.Validate("goal", "B12", ""); !res.Valid {
		t.Error("sub-pixel drift should stay within tolerance")
	}
}

// TestValidateErrors 测试校验的报告型错误
func TestValidateErrors(t *testing.T) {
	r, _ := newTestRegistry()
	v := NewValidator(r.Grid(), r)
	r.PlaceSpan("A1", "B1", SpanOptions{ID: "p1"})

	res := v.Validate("missing", "A1", "B1")
	if res.Valid || !errors.Is(res.Err, ErrNotFound) {
		t.Errorf("Validate(missing) = %+v, want ErrNotFound", res)
	}

	res = v.Validate("p1", "A1", "Q1")
	if res.Valid || !errors.Is(res.Err, grid.ErrInvalidColumn) {
		t.Errorf("Validate(bad coord) = %+v, want ErrInvalidColumn", res)
	}

	res = v.Validate("p1", "zz", "")
	if res.Valid || !errors.Is(res.Err, grid.ErrInvalidFormat) {
		t.Errorf("Validate(bad point) = %+v, want ErrInvalidFormat", res)
	}
}

// TestValidateAll 测试批量自洽校验
func TestValidateAll(t *testing.T) {
	r, _ := newTestRegistry()
	v := NewValidator(r.Grid(), r)

	r.PlaceSpan("B2", "D4", SpanOptions{ID: "platform"})
	r.PlaceSpan("A10", "C10", SpanOptions{ID: "blocks", UseMultiPiece: true})
	r.PlacePoint("J1", PointOptions{ID: "gift", Kind: ObjectGift})
	r.PlaceMovingPoint("E8", "D8", "H8", MovingOptions{ID: "mover"})

	results := v.ValidateAll()
	if len(results) != 4 {
		t.Fatalf("ValidateAll() returned %d results, want 4", len(results))
	}
	passed, failed := Summary(results)
	if passed != 4 || failed != 0 {
		t.Errorf("Summary = %d/%d, want 4/0", passed, failed)
	}

	wantOrder := []string{"platform", "blocks", "gift", "mover"}
	for i, res := range results {
		if res.ID != wantOrder[i] {
			t.Errorf("results[%d].ID = %s, want %s", i, res.ID, wantOrder[i])
		}
	}

	// 引擎移动了平台后，原坐标校验失败
	r.SetActual("mover", Geometry{Center: grid.Point{X: 200, Y: 240}, Width: 32, Height: 16})
	passed, failed = Summary(v.ValidateAll())
	if passed != 3 || failed != 1 {
		t.Errorf("Summary after move = %d/%d, want 3/1", passed, failed)
	}
}

// TestValidateAllGridChanged 测试放置后网格配置变化导致校验失败
func TestValidateAllGridChanged(t *testing.T) {
	r, _ := newTestRegistry()
	r.PlaceSpan("B2", "D4", SpanOptions{ID: "platform"})
	r.PlacePoint("C3", PointOptions{ID: "marker", Kind: ObjectRectangle})

	cfg := grid.DefaultConfig()
	cfg.CellWidth, cfg.CellHeight = 40, 40
	cfg.Width, cfg.Height = 400, 720
	resized, err := grid.New(cfg)
	if err != nil {
		t.Fatalf("grid.New() unexpected error: %v", err)
	}

	passed, failed := Summary(NewValidator(resized, r).ValidateAll())
	if passed != 0 || failed != 2 {
		t.Errorf("Summary = %d/%d, want 0/2", passed, failed)
	}
}

// TestTileSpan 测试拼接块布局计算
func TestTileSpan(t *testing.T) {
	g := grid.NewDefault()

	tests := []struct {
		name      string
		start     string
		end       string
		content   [4]int // x0, y0, x1, y1
		wantCount int
		wantScale float64
		wantFirst float64
	}{
		{"方形块单格", "A1", "A1", [4]int{0, 0, 32, 32}, 1, 1, 16},
		{"宽块整除", "A1", "D1", [4]int{0, 16, 64, 48}, 4, 0.5, 16},
		{"窄块向上取整", "B2", "D4", [4]int{12, 0, 52, 64}, 5, 0.5, 42},
		{"大图缩小", "A5", "J5", [4]int{0, 0, 128, 128}, 10, 0.25, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span, err := g.Span(tt.start, tt.end)
			if err != nil {
				t.Fatalf("Span() unexpected error: %v", err)
			}
			content := imageRect(tt.content)

			tiling, err := TileSpan(span, content, 32)
			if err != nil {
				t.Fatalf("TileSpan() unexpected error: %v", err)
			}
			if len(tiling.Centers) != tt.wantCount || tiling.Scale != tt.wantScale {
				t.Errorf("TileSpan() = %d pieces scale %v, want %d scale %v",
					len(tiling.Centers), tiling.Scale, tt.wantCount, tt.wantScale)
			}
			if tiling.Centers[0].X != tt.wantFirst {
				t.Errorf("first center X = %.1f, want %.1f", tiling.Centers[0].X, tt.wantFirst)
			}
			for _, c := range tiling.Centers {
				if c.Y != span.Center.Y {
					t.Errorf("piece Y = %.1f, want %.1f", c.Y, span.Center.Y)
				}
			}
			// 覆盖整个区域
			last := tiling.Centers[len(tiling.Centers)-1]
			if last.X+tiling.PieceWidth/2 < span.Right() {
				t.Errorf("tiling ends at %.1f, short of %.1f", last.X+tiling.PieceWidth/2, span.Right())
			}
		})
	}
}

// TestPieceScaleEmpty 测试全透明拼接块
func TestPieceScaleEmpty(t *testing.T) {
	if _, err := PieceScale(imageRect([4]int{}), 32); !errors.Is(err, ErrEmptyPiece) {
		t.Errorf("PieceScale(empty) error = %v, want ErrEmptyPiece", err)
	}
}
