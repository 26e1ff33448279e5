package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/hophop/pkg/config"
	"github.com/decker502/hophop/pkg/ecs"
	"github.com/decker502/hophop/pkg/game"
	"github.com/decker502/hophop/pkg/grid"
	"github.com/decker502/hophop/pkg/placement"
	"github.com/decker502/hophop/pkg/systems"
	"github.com/decker502/hophop/pkg/utils"
)

// 触屏角落按钮的边长（像素）
const touchCornerSize = 48

var backgroundColor = color.NRGBA{R: 0x87, G: 0xce, B: 0xeb, A: 0xff}

// sceneCommand 调试命令，键盘和触屏都映射到这里
type sceneCommand int

const (
	cmdToggleGrid sceneCommand = iota
	cmdToggleValidation
	cmdRevalidate
	cmdNextLevel
)

// GameSceneOptions 创建关卡场景所需的依赖
type GameSceneOptions struct {
	Grid         *grid.Grid
	Images       ImageSource
	Settings     *game.SettingsManager
	SceneManager *game.SceneManager // 可为 nil（不支持切换关卡）
	LayoutPath   string
}

// GameScene 一个关卡布局对应的场景
//
// 创建时按顺序执行布局脚本中的放置操作，然后对所有放置做一次自洽校验。
// 调试快捷键：
//   - G: 显示/隐藏网格和坐标标签
//   - V: 显示/隐藏校验结果
//   - R: 重新校验
//   - N: 切换到下一个关卡
//
// 移动端点击左上角切换网格，右上角切换校验结果，右下角切换关卡。
type GameScene struct {
	grid         *grid.Grid
	settings     *game.SettingsManager
	sceneManager *game.SceneManager
	layout       *config.LayoutConfig

	entityManager *ecs.EntityManager
	registry      *placement.Registry
	validator     *placement.Validator
	results       []placement.Result

	renderSystem    *systems.RenderSystem
	movingSystem    *systems.MovingPlatformSystem
	overlayRenderer *systems.GridOverlayRenderer
}

// NewGameScene 加载布局并创建关卡场景
// 布局文件、坐标或放置失败都会返回错误，不创建场景
func NewGameScene(opts GameSceneOptions) (*GameScene, error) {
	layout, err := config.LoadLayoutConfig(opts.LayoutPath)
	if err != nil {
		return nil, err
	}
	if err := layout.CheckCoordinates(opts.Grid); err != nil {
		return nil, fmt.Errorf("layout %s: %w", layout.ID, err)
	}

	em := ecs.NewEntityManager()
	registry := placement.NewRegistry(opts.Grid, NewEcsScene(em, opts.Images))

	s := &GameScene{
		grid:            opts.Grid,
		settings:        opts.Settings,
		sceneManager:    opts.SceneManager,
		layout:          layout,
		entityManager:   em,
		registry:        registry,
		validator:       placement.NewValidator(opts.Grid, registry),
		renderSystem:    systems.NewRenderSystem(em),
		movingSystem:    systems.NewMovingPlatformSystem(em, registry),
		overlayRenderer: systems.NewGridOverlayRenderer(opts.Grid),
	}

	if _, err := layout.Apply(registry); err != nil {
		registry.Clear()
		return nil, err
	}
	s.revalidate()

	log.Printf("[GameScene] Level %s (%s) ready: %d placements, %d entities",
		layout.ID, layout.Name, registry.Len(), em.Len())
	return s, nil
}

// Registry 返回关卡的放置记录
func (s *GameScene) Registry() *placement.Registry {
	return s.registry
}

// Results 返回最近一次校验结果
func (s *GameScene) Results() []placement.Result {
	return s.results
}

// revalidate 重新校验所有放置并记录汇总
func (s *GameScene) revalidate() {
	s.results = s.validator.ValidateAll()
	passed, failed := placement.Summary(s.results)
	log.Printf("[GameScene] Validation: %d valid, %d invalid", passed, failed)
}

// Update 处理调试输入并推进移动平台
func (s *GameScene) Update(deltaTime float64) {
	for _, cmd := range s.pollCommands() {
		s.handleCommand(cmd)
	}
	s.step(deltaTime)
}

// step 推进一帧，不读取输入
func (s *GameScene) step(deltaTime float64) {
	s.movingSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

// pollCommands 读取本帧的键盘和触屏输入
func (s *GameScene) pollCommands() []sceneCommand {
	var cmds []sceneCommand

	keys := []struct {
		key ebiten.Key
		cmd sceneCommand
	}{
		{ebiten.KeyG, cmdToggleGrid},
		{ebiten.KeyV, cmdToggleValidation},
		{ebiten.KeyR, cmdRevalidate},
		{ebiten.KeyN, cmdNextLevel},
	}
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k.key) {
			cmds = append(cmds, k.cmd)
		}
	}

	if utils.IsMobile() {
		if pressed, x, y := utils.IsJustTouchedOrClicked(); pressed {
			b := s.grid.Bounds()
			switch utils.CornerAt(x, y, b.Dx(), b.Dy(), touchCornerSize) {
			case utils.CornerTopLeft:
				cmds = append(cmds, cmdToggleGrid)
			case utils.CornerTopRight:
				cmds = append(cmds, cmdToggleValidation)
			case utils.CornerBottomRight:
				cmds = append(cmds, cmdNextLevel)
			}
		}
	}
	return cmds
}

func (s *GameScene) handleCommand(cmd sceneCommand) {
	switch cmd {
	case cmdToggleGrid:
		log.Printf("[GameScene] Grid overlay: %v", s.settings.ToggleGrid())
	case cmdToggleValidation:
		if s.settings.ToggleValidation() {
			s.revalidate()
		}
	case cmdRevalidate:
		s.revalidate()
	case cmdNextLevel:
		if s.sceneManager == nil {
			return
		}
		if err := s.sceneManager.NextLevel(); err != nil {
			log.Printf("[GameScene] Error: %v", err)
		}
	}
}

// Draw 绘制背景、放置的对象和调试层
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	s.renderSystem.Draw(screen)

	settings := s.settings.GetSettings()
	if settings.ShowGrid {
		s.overlayRenderer.DrawGrid(screen)
	}
	if settings.ShowValidation {
		s.overlayRenderer.DrawValidation(screen, s.results)
	}
}

// SaveOnExit 实现 game.Saveable：保存调试显示设置
func (s *GameScene) SaveOnExit() bool {
	if err := s.settings.Save(); err != nil {
		log.Printf("[GameScene] Warning: %v", err)
		return false
	}
	return true
}
