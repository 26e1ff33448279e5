package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/decker502/hophop/pkg/grid"
)

// GridConfig 网格配置文件（data/config/grid.yaml）
// 省略的字段使用标准配置：320×576 屏幕，10 列 × 18 行，32×32 像素格子
type GridConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	CellWidth  float64 `yaml:"cellWidth"`
	CellHeight float64 `yaml:"cellHeight"`
	Columns    int     `yaml:"columns"`
	Rows       int     `yaml:"rows"`
}

// LoadGridConfig 加载网格配置
func LoadGridConfig(path string) (grid.Config, error) {
	data, err := readFile(path)
	if err != nil {
		return grid.Config{}, fmt.Errorf("failed to read grid config file %s: %w", path, err)
	}

	cfg, err := ParseGridConfig(data)
	if err != nil {
		return grid.Config{}, fmt.Errorf("invalid grid config in %s: %w", path, err)
	}
	return cfg, nil
}

// ParseGridConfig 解析网格配置
func ParseGridConfig(data []byte) (grid.Config, error) {
	var gc GridConfig
	if err := yaml.Unmarshal(data, &gc); err != nil {
		return grid.Config{}, fmt.Errorf("failed to parse grid config YAML: %w", err)
	}

	applyGridDefaults(&gc)

	cfg := grid.Config{
		Width:      gc.Width,
		Height:     gc.Height,
		CellWidth:  gc.CellWidth,
		CellHeight: gc.CellHeight,
		Columns:    gc.Columns,
		Rows:       gc.Rows,
	}
	if err := cfg.Validate(); err != nil {
		return grid.Config{}, err
	}
	return cfg, nil
}

// applyGridDefaults 为未配置（零值）的字段设置标准值
func applyGridDefaults(gc *GridConfig) {
	def := grid.DefaultConfig()
	if gc.Width == 0 {
		gc.Width = def.Width
	}
	if gc.Height == 0 {
		gc.Height = def.Height
	}
	if gc.CellWidth == 0 {
		gc.CellWidth = def.CellWidth
	}
	if gc.CellHeight == 0 {
		gc.CellHeight = def.CellHeight
	}
	if gc.Columns == 0 {
		gc.Columns = def.Columns
	}
	if gc.Rows == 0 {
		gc.Rows = def.Rows
	}
}
