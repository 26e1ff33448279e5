// Package app 提供关卡编辑器应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"
	"path"
	"slices"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/hophop/pkg/config"
	"github.com/decker502/hophop/pkg/game"
	"github.com/decker502/hophop/pkg/grid"
	"github.com/decker502/hophop/pkg/scenes"
	"github.com/decker502/hophop/pkg/utils"
)

// AppName 用于 gdata 存储目录
const AppName = "hophop"

// ErrNoLevels 关卡目录中没有布局脚本
var ErrNoLevels = errors.New("no level layouts found")

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Level 启动关卡：布局文件路径，或关卡目录中的文件名（如 "level2"）
	// 为空时加载关卡目录中的第一个布局
	Level string
	// GridConfigPath 网格配置路径，为空时使用 config.DefaultGridConfigPath
	GridConfigPath string
	// LevelsDir 关卡布局目录，为空时使用 config.DefaultLevelsDir
	LevelsDir string
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	grid         *grid.Grid
	verbose      bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 注入资源文件系统。
// 非 Verbose 模式下初始化期间的日志被丢弃；初始化失败时恢复原来的日志输出，
// 调用者可以直接用 log 报告错误。
func NewApp(cfg Config) (a *App, err error) {
	if !cfg.Verbose {
		prevOutput, prevFlags := log.Writer(), log.Flags()
		log.SetOutput(io.Discard)
		log.SetFlags(0)
		defer func() {
			if err != nil {
				log.SetOutput(prevOutput)
				log.SetFlags(prevFlags)
			}
		}()
	}
	if cfg.GridConfigPath == "" {
		cfg.GridConfigPath = config.DefaultGridConfigPath
	}
	if cfg.LevelsDir == "" {
		cfg.LevelsDir = config.DefaultLevelsDir
	}

	gridConfig, err := config.LoadGridConfig(cfg.GridConfigPath)
	if err != nil {
		return nil, fmt.Errorf("网格配置加载失败: %w", err)
	}
	g, err := grid.New(gridConfig)
	if err != nil {
		return nil, fmt.Errorf("网格配置无效: %w", err)
	}
	log.Printf("[App] Grid: %d columns x %d rows (%s)", g.Columns(), g.Rows(), g.Letters())

	resourceManager := game.NewResourceManager()
	if err := resourceManager.LoadResourceConfig(config.DefaultResourcesPath); err != nil {
		return nil, fmt.Errorf("资源配置加载失败: %w", err)
	}
	if err := resourceManager.LoadAll(); err != nil {
		return nil, fmt.Errorf("图片资源加载失败: %w", err)
	}

	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: storage dir unavailable: %v", err)
	}
	settings := game.OpenSettingsManager(AppName)

	levels, err := config.ListLayouts(cfg.LevelsDir)
	if err != nil {
		return nil, fmt.Errorf("关卡目录读取失败: %w", err)
	}
	levelPath, err := resolveLevel(cfg.Level, levels, cfg.LevelsDir)
	if err != nil {
		return nil, err
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SetLevels(levels)
	sceneManager.SetSceneFactory(func(levelPath string) (game.Scene, error) {
		scene, err := scenes.NewGameScene(scenes.GameSceneOptions{
			Grid:         g,
			Images:       resourceManager,
			Settings:     settings,
			SceneManager: sceneManager,
			LayoutPath:   levelPath,
		})
		if err != nil {
			return nil, err
		}
		return scene, nil
	})

	log.Printf("[App] Starting level: %s", levelPath)
	if err := sceneManager.LoadLevel(levelPath); err != nil {
		return nil, err
	}

	if settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		grid:         g,
		verbose:      cfg.Verbose,
	}, nil
}

// resolveLevel 把启动参数解析为布局文件路径
func resolveLevel(level string, levels []string, dir string) (string, error) {
	if level == "" {
		if len(levels) == 0 {
			return "", fmt.Errorf("%w in %s", ErrNoLevels, dir)
		}
		return levels[0], nil
	}
	if strings.HasSuffix(level, ".yaml") || strings.Contains(level, "/") {
		return level, nil
	}

	candidate := path.Join(dir, level+".yaml")
	if !slices.Contains(levels, candidate) {
		return "", fmt.Errorf("level %q not found in %s", level, dir)
	}
	return candidate, nil
}

// Update 更新应用逻辑，每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		a.saveOnExit()
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			w, h := a.Layout(0, 0)
			ebiten.SetWindowSize(w*2, h*2)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		a.settings.SetFullscreen(fullscreen)
		if !fullscreen {
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// saveOnExit 窗口关闭时保存当前场景的状态
func (a *App) saveOnExit() {
	if saveable, ok := a.sceneManager.GetCurrentScene().(game.Saveable); ok {
		if !saveable.SaveOnExit() {
			log.Printf("[App] Warning: failed to save on exit")
		}
		return
	}
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时两侧填充黑色，画面使用线性滤波缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸（网格配置的画面大小）
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := a.grid.Config()
	return int(cfg.Width), int(cfg.Height)
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
