package utils

import "testing"

func TestCornerAt(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want Corner
	}{
		{"左上", 5, 5, CornerTopLeft},
		{"右上", 300, 10, CornerTopRight},
		{"左下", 0, 575, CornerBottomLeft},
		{"右下", 319, 560, CornerBottomRight},
		{"中间", 160, 288, CornerNone},
		{"上边缘中部", 160, 0, CornerNone},
		{"刚好在区域外", 48, 48, CornerNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CornerAt(tt.x, tt.y, 320, 576, 48); got != tt.want {
				t.Errorf("CornerAt(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}
