package placement

import (
	"fmt"
	"image"
	"image/color"
)

// fakeObject 记录场景对象的创建参数
type fakeObject struct {
	kind     string // "rect" 或 "image"
	x, y     float64
	w, h     float64
	resource string
	scale    float64
	fill     color.Color
	body     bool
	static   bool
	groups   []string
}

// fakeScene 是测试用的内存场景
type fakeScene struct {
	next      Handle
	objects   map[Handle]*fakeObject
	destroyed []Handle
	content   map[string]image.Rectangle
}

func newFakeScene() *fakeScene {
	return &fakeScene{
		objects: make(map[Handle]*fakeObject),
		content: map[string]image.Rectangle{
			// 64x64 图片，内容区域 64x32（上下各有 16 像素透明边距）
			"block": image.Rect(0, 16, 64, 48),
			// 内容区域 40x64，缩放后宽 20 像素
			"tall":  image.Rect(12, 0, 52, 64),
			"gift":  image.Rect(0, 0, 24, 24),
			"empty": {},
		},
	}
}

func (s *fakeScene) add(obj *fakeObject) Handle {
	s.next++
	s.objects[s.next] = obj
	return s.next
}

func (s *fakeScene) CreateRectangle(cx, cy, w, h float64, fill color.Color) Handle {
	return s.add(&fakeObject{kind: "rect", x: cx, y: cy, w: w, h: h, fill: fill})
}

func (s *fakeScene) CreateImage(cx, cy float64, resourceID string, scale float64) Handle {
	return s.add(&fakeObject{kind: "image", x: cx, y: cy, resource: resourceID, scale: scale})
}

func (s *fakeScene) AttachCollisionBody(h Handle, isStatic bool) {
	if obj, ok := s.objects[h]; ok {
		obj.body = true
		obj.static = isStatic
	}
}

func (s *fakeScene) AddToCollisionGroup(h Handle, group string) {
	if obj, ok := s.objects[h]; ok {
		obj.groups = append(obj.groups, group)
	}
}

func (s *fakeScene) Destroy(h Handle) {
	delete(s.objects, h)
	s.destroyed = append(s.destroyed, h)
}

func (s *fakeScene) ContentBounds(resourceID string) (image.Rectangle, error) {
	r, ok := s.content[resourceID]
	if !ok {
		return image.Rectangle{}, fmt.Errorf("resource %s not loaded", resourceID)
	}
	return r, nil
}

func imageRect(r [4]int) image.Rectangle {
	return image.Rect(r[0], r[1], r[2], r[3])
}
