package utils

import (
	"image"
	"image/color"
	"testing"
)

// paint 在透明画布上填充不透明区域
func paint(bounds image.Rectangle, filled ...image.Rectangle) *image.NRGBA {
	img := image.NewNRGBA(bounds)
	for _, r := range filled {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				img.SetNRGBA(x, y, color.NRGBA{R: 0x80, A: 0xff})
			}
		}
	}
	return img
}

func TestAlphaBounds(t *testing.T) {
	tests := []struct {
		name string
		img  image.Image
		want image.Rectangle
	}{
		{
			name: "上下透明边距",
			img:  paint(image.Rect(0, 0, 64, 64), image.Rect(0, 16, 64, 48)),
			want: image.Rect(0, 16, 64, 48),
		},
		{
			name: "多个不连续区域",
			img:  paint(image.Rect(0, 0, 32, 32), image.Rect(2, 3, 4, 5), image.Rect(20, 10, 25, 30)),
			want: image.Rect(2, 3, 25, 30),
		},
		{
			name: "单个像素",
			img:  paint(image.Rect(0, 0, 8, 8), image.Rect(7, 7, 8, 8)),
			want: image.Rect(7, 7, 8, 8),
		},
		{
			name: "非零原点",
			img:  paint(image.Rect(10, 10, 20, 20), image.Rect(12, 11, 15, 19)),
			want: image.Rect(12, 11, 15, 19),
		},
		{
			name: "完全透明",
			img:  paint(image.Rect(0, 0, 16, 16)),
			want: image.Rectangle{},
		},
		{
			name: "不透明灰度图",
			img:  image.NewGray(image.Rect(0, 0, 5, 6)),
			want: image.Rect(0, 0, 5, 6),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AlphaBounds(tt.img); got != tt.want {
				t.Errorf("AlphaBounds() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAlphaBoundsSemiTransparent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.SetNRGBA(1, 2, color.NRGBA{A: 1})

	if got := AlphaBounds(img); got != image.Rect(1, 2, 2, 3) {
		t.Errorf("AlphaBounds() = %v, want any alpha > 0 to count", got)
	}
	if got := AlphaBounds(nil); !got.Empty() {
		t.Errorf("AlphaBounds(nil) = %v, want empty", got)
	}
}

func TestAlphaBoundsPaletted(t *testing.T) {
	palette := color.Palette{
		color.NRGBA{},                 // 0: 透明
		color.NRGBA{R: 0xff, A: 0xff}, // 1: 不透明
		color.NRGBA{G: 0xff, A: 0x00}, // 2: 透明（有颜色）
		color.NRGBA{B: 0xff, A: 0x01}, // 3: 半透明
	}

	tests := []struct {
		name   string
		pixels map[image.Point]uint8
		want   image.Rectangle
	}{
		{"全部透明索引", map[image.Point]uint8{{1, 1}: 0, {2, 2}: 2}, image.Rectangle{}},
		{"不透明索引", map[image.Point]uint8{{1, 2}: 1, {5, 3}: 1}, image.Rect(1, 2, 6, 4)},
		{"半透明索引", map[image.Point]uint8{{7, 7}: 3}, image.Rect(7, 7, 8, 8)},
		{"超出调色板的索引", map[image.Point]uint8{{0, 0}: 9, {4, 4}: 1}, image.Rect(4, 4, 5, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewPaletted(image.Rect(0, 0, 8, 8), palette)
			for p, idx := range tt.pixels {
				img.SetColorIndex(p.X, p.Y, idx)
			}
			if got := AlphaBounds(img); got != tt.want {
				t.Errorf("AlphaBounds() = %v, want %v", got, tt.want)
			}
		})
	}
}
