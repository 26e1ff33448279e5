package game

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png" // 注册 PNG 解码器
	"log"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"

	"github.com/decker502/hophop/pkg/embedded"
	"github.com/decker502/hophop/pkg/utils"
)

// ErrUnknownResource 资源ID未在清单中登记
var ErrUnknownResource = errors.New("unknown resource")

// ImageAsset 一张已加载的图片
type ImageAsset struct {
	Source  image.Image     // 解码后的原始图片，用于像素扫描
	Content image.Rectangle // 非透明像素的包围盒
	Texture *ebiten.Image   // GPU 纹理，无头模式下为 nil
}

// ResourceManager 负责图片资源的加载和缓存
//
// 资源按ID登记在 assets/config/resources.yaml 中，首次使用时加载，之后复用缓存。
// embedded 包已初始化时从嵌入文件系统读取，否则从工作目录读取。
//
// 非线程安全：资源应在场景初始化阶段、主 goroutine 中加载。
type ResourceManager struct {
	headless    bool
	config      *ResourceConfig
	resourceMap map[string]string      // 资源ID -> 文件路径
	cache       map[string]*ImageAsset // 文件路径 -> 图片
}

// NewResourceManager 创建资源管理器，加载的图片会创建 ebiten 纹理
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		resourceMap: make(map[string]string),
		cache:       make(map[string]*ImageAsset),
	}
}

// NewHeadlessResourceManager 创建不创建纹理的资源管理器
// 用于命令行工具和测试，只需要图片像素和内容包围盒
func NewHeadlessResourceManager() *ResourceManager {
	rm := NewResourceManager()
	rm.headless = true
	return rm
}

// readFile 读取资源文件，优先使用嵌入文件系统
func readFile(path string) ([]byte, error) {
	if embedded.IsInitialized() {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}

// LoadResourceConfig 加载资源清单
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := readFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	var config ResourceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse resource config %s: %w", configPath, err)
	}

	rm.config = &config
	rm.resourceMap = make(map[string]string, len(config.Images))
	for _, img := range config.Images {
		fullPath := buildFullPath(config.BasePath, img.Path)
		if filepath.Ext(fullPath) == "" {
			fullPath += ".png"
		}
		rm.resourceMap[img.ID] = fullPath
	}

	log.Printf("[ResourceManager] Loaded resource config %s: %d images", configPath, len(rm.resourceMap))
	return nil
}

// RegisterImage 直接登记资源ID和路径（不需要清单文件）
func (rm *ResourceManager) RegisterImage(resourceID, path string) {
	rm.resourceMap[resourceID] = path
}

// ResourceIDs 返回已登记的资源ID（升序）
func (rm *ResourceManager) ResourceIDs() []string {
	return slices.Sorted(maps.Keys(rm.resourceMap))
}

// LoadImage 按文件路径加载图片并缓存
func (rm *ResourceManager) LoadImage(path string) (*ImageAsset, error) {
	if cached, exists := rm.cache[path]; exists {
		return cached, nil
	}

	data, err := readFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	asset := &ImageAsset{
		Source:  img,
		Content: utils.AlphaBounds(img),
	}
	if !rm.headless {
		asset.Texture = ebiten.NewImageFromImage(img)
	}

	rm.cache[path] = asset
	return asset, nil
}

// LoadImageByID 按资源ID加载图片
func (rm *ResourceManager) LoadImageByID(resourceID string) (*ImageAsset, error) {
	path, exists := rm.resourceMap[resourceID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownResource, resourceID)
	}
	return rm.LoadImage(path)
}

// GetImageByID 返回已缓存的图片，未加载时返回 nil
func (rm *ResourceManager) GetImageByID(resourceID string) *ImageAsset {
	path, exists := rm.resourceMap[resourceID]
	if !exists {
		return nil
	}
	return rm.cache[path]
}

// ContentBounds 返回资源图片非透明像素的包围盒
func (rm *ResourceManager) ContentBounds(resourceID string) (image.Rectangle, error) {
	asset, err := rm.LoadImageByID(resourceID)
	if err != nil {
		return image.Rectangle{}, err
	}
	return asset.Content, nil
}

// LoadAll 加载清单中的所有图片，返回第一个错误
func (rm *ResourceManager) LoadAll() error {
	for _, id := range rm.ResourceIDs() {
		if _, err := rm.LoadImageByID(id); err != nil {
			return err
		}
	}
	return nil
}
