package game

import (
	"errors"
	"fmt"
	"log"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrNoSceneFactory 未设置场景工厂时加载关卡
var ErrNoSceneFactory = errors.New("scene factory not set")

// SceneFactory 根据布局文件路径创建关卡场景
// 由 app 包注入，避免 game 包依赖 scenes 包
type SceneFactory func(levelPath string) (Scene, error)

// SceneManager 管理当前活动场景和关卡列表
// 同一时间只有一个场景的 Update 和 Draw 会被调用
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory

	levels       []string // 布局文件路径，按顺序切换
	currentLevel string
}

// NewSceneManager 创建场景管理器，初始没有活动场景
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SetLevels 设置可切换的关卡列表
func (sm *SceneManager) SetLevels(levels []string) {
	sm.levels = slices.Clone(levels)
}

// Levels 返回关卡列表的副本
func (sm *SceneManager) Levels() []string {
	return slices.Clone(sm.levels)
}

// CurrentLevel 返回当前关卡的布局路径，未加载时为空
func (sm *SceneManager) CurrentLevel() string {
	return sm.currentLevel
}

// SwitchTo 直接切换到指定场景
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// LoadLevel 加载指定布局的关卡场景
// 创建失败时保留当前场景
func (sm *SceneManager) LoadLevel(levelPath string) error {
	log.Printf("[SceneManager] Loading level: %s", levelPath)

	if sm.sceneFactory == nil {
		return ErrNoSceneFactory
	}

	scene, err := sm.sceneFactory(levelPath)
	if err != nil {
		log.Printf("[SceneManager] Error: failed to create level %s: %v", levelPath, err)
		return fmt.Errorf("load level %s: %w", levelPath, err)
	}

	sm.SwitchTo(scene)
	sm.currentLevel = levelPath
	log.Printf("[SceneManager] Switched to level: %s", levelPath)
	return nil
}

// NextLevel 加载列表中的下一个关卡，最后一个之后回到第一个
func (sm *SceneManager) NextLevel() error {
	if len(sm.levels) == 0 {
		return fmt.Errorf("next level: no levels configured")
	}

	next := 0
	if i := slices.Index(sm.levels, sm.currentLevel); i >= 0 {
		next = (i + 1) % len(sm.levels)
	}
	return sm.LoadLevel(sm.levels[next])
}

// Update 更新当前场景
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw 绘制当前场景
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
