// Package embedded 提供游戏资源的统一访问接口
//
// //go:embed 只能嵌入当前包目录下的文件，资源的 embed.FS 声明在项目根目录（embed.go）
// 和 mobile 包中，启动时通过 Init 注入。命令行工具和测试可以注入 os.DirFS 或
// fstest.MapFS，加载代码不需要区分资源来源。
//
// 所有路径必须以 "assets/" 或 "data/" 开头。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
)

// ErrNotInitialized 在调用 Init 之前访问资源时返回
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

var (
	mu       sync.RWMutex
	assetsFS fs.FS
	dataFS   fs.FS
)

// Init 注入资源文件系统，必须在加载任何资源之前调用
func Init(assets, data fs.FS) {
	mu.Lock()
	defer mu.Unlock()
	assetsFS = assets
	dataFS = data
}

// IsInitialized 返回是否已注入资源文件系统
func IsInitialized() bool {
	mu.RLock()
	defer mu.RUnlock()
	return assetsFS != nil && dataFS != nil
}

// reset 清除注入的文件系统（测试用）
func reset() {
	Init(nil, nil)
}

// resolve 标准化路径并按前缀选择文件系统
func resolve(path string) (fs.FS, string, error) {
	mu.RLock()
	defer mu.RUnlock()

	if assetsFS == nil || dataFS == nil {
		return nil, "", ErrNotInitialized
	}

	path = strings.TrimPrefix(filepath.ToSlash(path), "./")
	switch {
	case strings.HasPrefix(path, "assets/"):
		return assetsFS, path, nil
	case strings.HasPrefix(path, "data/"):
		return dataFS, path, nil
	}
	return nil, "", fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/' or 'data/')", path)
}

// Open 打开资源文件
func Open(path string) (fs.File, error) {
	fsys, name, err := resolve(path)
	if err != nil {
		return nil, err
	}
	return fsys.Open(name)
}

// ReadFile 读取资源文件内容
func ReadFile(path string) ([]byte, error) {
	fsys, name, err := resolve(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(fsys, name)
}

// Exists 检查资源文件是否存在
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// Glob 匹配资源文件，如 "data/levels/*.yaml"
func Glob(pattern string) ([]string, error) {
	fsys, name, err := resolve(pattern)
	if err != nil {
		return nil, err
	}
	return fs.Glob(fsys, name)
}

// ReadDir 读取资源目录
func ReadDir(path string) ([]fs.DirEntry, error) {
	fsys, name, err := resolve(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadDir(fsys, name)
}
