package game

// ResourceConfig 图片资源清单（assets/config/resources.yaml）
//
// 结构：
//
//	version: "1.0"
//	base_path: assets
//	images:
//	  - id: block
//	    path: images/block
type ResourceConfig struct {
	Version  string          `yaml:"version"`
	BasePath string          `yaml:"base_path"`
	Images   []ImageResource `yaml:"images"`
}

// ImageResource 单个图片资源
// Path 相对 base_path，省略扩展名时默认 .png
type ImageResource struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// buildFullPath 拼接 base_path 和相对路径
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return relativePath
	}
	if len(relativePath) > 0 && relativePath[0] == '/' {
		return basePath + relativePath
	}
	return basePath + "/" + relativePath
}
