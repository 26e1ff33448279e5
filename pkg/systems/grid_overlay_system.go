package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/hophop/pkg/grid"
	"github.com/decker502/hophop/pkg/placement"
)

var (
	gridLineColor  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x40}
	validColor     = color.NRGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xc0}
	invalidColor   = color.NRGBA{R: 0xff, G: 0x30, B: 0x30, A: 0xe0}
	overlayBgColor = color.NRGBA{A: 0xa0}
)

// GridOverlayRenderer 绘制调试层：网格线、坐标标签和放置校验结果
type GridOverlayRenderer struct {
	grid *grid.Grid
}

// NewGridOverlayRenderer 创建调试层渲染器
func NewGridOverlayRenderer(g *grid.Grid) *GridOverlayRenderer {
	return &GridOverlayRenderer{grid: g}
}

// DrawGrid 绘制网格线，并在每个格子左上角标注坐标
func (r *GridOverlayRenderer) DrawGrid(screen *ebiten.Image) {
	cw, ch := r.grid.CellSize()
	cols, rows := r.grid.Columns(), r.grid.Rows()
	w, h := float32(float64(cols)*cw), float32(float64(rows)*ch)

	for c := 0; c <= cols; c++ {
		x := float32(float64(c) * cw)
		vector.StrokeLine(screen, x, 0, x, h, 1, gridLineColor, false)
	}
	for row := 0; row <= rows; row++ {
		y := float32(float64(row) * ch)
		vector.StrokeLine(screen, 0, y, w, y, 1, gridLineColor, false)
	}

	for _, label := range cellLabels(r.grid) {
		ebitenutil.DebugPrintAt(screen, label.text, label.x, label.y)
	}
}

// DrawValidation 绘制每个放置的期望几何（绿色通过，红色失败）和汇总
func (r *GridOverlayRenderer) DrawValidation(screen *ebiten.Image, results []placement.Result) {
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		clr := validColor
		if !res.Valid {
			clr = invalidColor
		}

		g := res.Expected
		w, h := g.Width, g.Height
		if w <= 0 || h <= 0 {
			w, h = r.grid.CellSize()
		}
		vector.StrokeRect(screen,
			float32(g.Center.X-w/2), float32(g.Center.Y-h/2),
			float32(w), float32(h), 2, clr, false)
	}

	passed, failed := placement.Summary(results)
	text := fmt.Sprintf("VALID %d  INVALID %d", passed, failed)
	vector.DrawFilledRect(screen, 0, 0, float32(len(text)*6+8), 20, overlayBgColor, false)
	ebitenutil.DebugPrintAt(screen, text, 4, 2)
}

type overlayLabel struct {
	text string
	x, y int
}

// cellLabels 计算每个格子的坐标标签位置（行优先）
func cellLabels(g *grid.Grid) []overlayLabel {
	last := fmt.Sprintf("%c%d", g.Letters()[g.Columns()-1], g.Rows())
	cells, err := g.CellsInSpan("A1", last)
	if err != nil {
		return nil
	}

	cw, ch := g.CellSize()
	labels := make([]overlayLabel, 0, len(cells))
	for _, c := range cells {
		labels = append(labels, overlayLabel{
			text: c.String(),
			x:    int(float64(c.Col())*cw) + 1,
			y:    int(float64(c.Row()-1)*ch) + 1,
		})
	}
	return labels
}
