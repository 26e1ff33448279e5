package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/decker502/hophop/pkg/grid"
)

// TestParseGridConfig 测试网格配置解析和默认值
func TestParseGridConfig(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		want    grid.Config
		wantErr bool
	}{
		{
			name: "空配置使用标准值",
			yaml: "",
			want: grid.DefaultConfig(),
		},
		{
			name: "部分覆盖",
			yaml: "columns: 12\nwidth: 384\n",
			want: grid.Config{Width: 384, Height: 576, CellWidth: 32, CellHeight: 32, Columns: 12, Rows: 18},
		},
		{
			name: "完整配置",
			yaml: "width: 400\nheight: 720\ncellWidth: 40\ncellHeight: 40\ncolumns: 10\nrows: 18\n",
			want: grid.Config{Width: 400, Height: 720, CellWidth: 40, CellHeight: 40, Columns: 10, Rows: 18},
		},
		{
			name:    "列数超出字母范围",
			yaml:    "columns: 27\n",
			wantErr: true,
		},
		{
			name:    "负数格子尺寸",
			yaml:    "cellWidth: -32\n",
			wantErr: true,
		},
		{
			name:    "YAML 语法错误",
			yaml:    "columns: [\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGridConfig([]byte(tt.yaml))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseGridConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseGridConfig() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// TestParseGridConfigInvalid 测试验证错误可用 errors.Is 匹配
func TestParseGridConfigInvalid(t *testing.T) {
	_, err := ParseGridConfig([]byte("rows: 100\n"))
	if !errors.Is(err, grid.ErrInvalidConfig) {
		t.Errorf("error = %v, want ErrInvalidConfig", err)
	}
}

// TestLoadGridConfig 测试从文件加载网格配置
func TestLoadGridConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grid.yaml")
	if err := os.WriteFile(path, []byte("rows: 20\nheight: 640\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadGridConfig(path)
	if err != nil {
		t.Fatalf("LoadGridConfig() error: %v", err)
	}
	if cfg.Rows != 20 || cfg.Height != 640 || cfg.Columns != 10 {
		t.Errorf("LoadGridConfig() = %+v", cfg)
	}

	if _, err := LoadGridConfig(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want os.ErrNotExist", err)
	}
}

// TestListLayouts 测试按文件名排序列出布局脚本
func TestListLayouts(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"level2.yaml", "level1.yaml", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("placements: []\n"), 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	files, err := ListLayouts(dir)
	if err != nil {
		t.Fatalf("ListLayouts() error: %v", err)
	}
	if len(files) != 2 || filepath.Base(files[0]) != "level1.yaml" || filepath.Base(files[1]) != "level2.yaml" {
		t.Errorf("ListLayouts() = %v", files)
	}
}
