// Package config 加载网格配置和关卡布局脚本（YAML）
//
// 加载流程与其它配置一致：解析 YAML → 应用默认值 → 验证。
// embedded 包已初始化时从嵌入文件系统读取，否则从工作目录读取。
package config

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/decker502/hophop/pkg/embedded"
)

// 默认配置路径
const (
	DefaultGridConfigPath = "data/config/grid.yaml"
	DefaultLevelsDir      = "data/levels"
	DefaultResourcesPath  = "assets/config/resources.yaml"
)

// readFile 读取配置文件，优先使用嵌入文件系统
func readFile(path string) ([]byte, error) {
	if embedded.IsInitialized() {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}

// ListLayouts 返回目录中的布局脚本路径（按文件名排序）
func ListLayouts(dir string) ([]string, error) {
	pattern := dir + "/*.yaml"

	var (
		files []string
		err   error
	)
	if embedded.IsInitialized() {
		files, err = embedded.Glob(pattern)
	} else {
		files, err = filepath.Glob(pattern)
	}
	if err != nil {
		return nil, err
	}
	slices.Sort(files)
	return files, nil
}
