package scenes

import (
	"fmt"
	"image"
	"image/color"

	"github.com/decker502/hophop/pkg/placement"
)

// ContentSource 提供图片资源的内容包围盒
type ContentSource interface {
	ContentBounds(resourceID string) (image.Rectangle, error)
}

// RecordedObject 无头场景中记录的对象
type RecordedObject struct {
	Handle   placement.Handle
	Kind     string // "rectangle" 或 "image"
	X, Y     float64
	Width    float64 // 仅矩形
	Height   float64 // 仅矩形
	Fill     color.Color
	Resource string
	Scale    float64
	Body     bool
	Static   bool
	Groups   []string
}

// Recorder 不绘制任何东西的场景，只记录放置系统的调用
//
// 命令行工具用它在没有窗口的情况下执行布局脚本并校验结果。
type Recorder struct {
	content ContentSource
	next    placement.Handle
	objects map[placement.Handle]*RecordedObject
	order   []placement.Handle
}

// NewRecorder 创建无头场景
// content 为 nil 时，所有图片资源的内容包围盒都按 32×32 计算
func NewRecorder(content ContentSource) *Recorder {
	return &Recorder{
		content: content,
		objects: make(map[placement.Handle]*RecordedObject),
	}
}

func (r *Recorder) add(obj *RecordedObject) placement.Handle {
	r.next++
	obj.Handle = r.next
	r.objects[r.next] = obj
	r.order = append(r.order, r.next)
	return r.next
}

// CreateRectangle 实现 placement.Scene
func (r *Recorder) CreateRectangle(cx, cy, w, h float64, fill color.Color) placement.Handle {
	return r.add(&RecordedObject{Kind: "rectangle", X: cx, Y: cy, Width: w, Height: h, Fill: fill})
}

// CreateImage 实现 placement.Scene
func (r *Recorder) CreateImage(cx, cy float64, resourceID string, scale float64) placement.Handle {
	return r.add(&RecordedObject{Kind: "image", X: cx, Y: cy, Resource: resourceID, Scale: scale})
}

// AttachCollisionBody 实现 placement.Scene
func (r *Recorder) AttachCollisionBody(h placement.Handle, isStatic bool) {
	if obj, ok := r.objects[h]; ok {
		obj.Body = true
		obj.Static = isStatic
	}
}

// AddToCollisionGroup 实现 placement.Scene
func (r *Recorder) AddToCollisionGroup(h placement.Handle, group string) {
	if obj, ok := r.objects[h]; ok {
		obj.Groups = append(obj.Groups, group)
	}
}

// Destroy 实现 placement.Scene
func (r *Recorder) Destroy(h placement.Handle) {
	delete(r.objects, h)
}

// ContentBounds 实现 placement.Scene
func (r *Recorder) ContentBounds(resourceID string) (image.Rectangle, error) {
	if r.content == nil {
		return image.Rect(0, 0, 32, 32), nil
	}
	bounds, err := r.content.ContentBounds(resourceID)
	if err != nil {
		return image.Rectangle{}, fmt.Errorf("content bounds of %s: %w", resourceID, err)
	}
	return bounds, nil
}

// Objects 返回仍存在的对象（创建顺序）
func (r *Recorder) Objects() []RecordedObject {
	out := make([]RecordedObject, 0, len(r.objects))
	for _, h := range r.order {
		if obj, ok := r.objects[h]; ok {
			out = append(out, *obj)
		}
	}
	return out
}

// Get 按句柄查询对象
func (r *Recorder) Get(h placement.Handle) (RecordedObject, bool) {
	obj, ok := r.objects[h]
	if !ok {
		return RecordedObject{}, false
	}
	return *obj, true
}

// Len 返回仍存在的对象数量
func (r *Recorder) Len() int {
	return len(r.objects)
}
