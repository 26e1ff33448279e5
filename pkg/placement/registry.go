// Package placement 根据网格坐标在场景中放置对象，并提供放置校验
//
// Registry 负责把坐标转换为像素几何，委托 Scene 创建对象，并按ID记录放置结果；
// Validator 根据原始坐标重新计算几何，与记录的实际几何比较，检测放置偏差。
//
// 关卡编辑调用发生在场景初始化阶段，Registry 的每个操作都持有同一把互斥锁，
// 允许引擎更新循环与编辑代码在不同 goroutine 中访问。放置方法和 Get 返回的
// 记录都是副本，不与记录表共享数据。
package placement

import (
	"fmt"
	"log"
	"sync"

	"github.com/decker502/hophop/pkg/grid"
)

// Registry 放置记录表
type Registry struct {
	mu      sync.Mutex
	grid    *grid.Grid
	scene   Scene
	objects map[string]*PlacedObject
	order   []string // 插入顺序，用于 List
}

// NewRegistry 创建放置记录表
//
// 参数：
//   - g: 网格坐标系统
//   - scene: 外部场景，负责实际创建和销毁对象
func NewRegistry(g *grid.Grid, scene Scene) *Registry {
	return &Registry{
		grid:    g,
		scene:   scene,
		objects: make(map[string]*PlacedObject),
	}
}

// Grid 返回记录表使用的网格
func (r *Registry) Grid() *grid.Grid { return r.grid }

// store 保存放置记录（调用者持有锁）
// 同ID的旧记录会被覆盖，其场景对象一并销毁，避免遗留无法追踪的对象
func (r *Registry) store(obj *PlacedObject) {
	if old, exists := r.objects[obj.ID]; exists {
		log.Printf("[GridPlacement] Replacing %s (%s), destroying %d old handle(s)", obj.ID, old.Kind, len(old.Handles))
		r.destroyHandles(old)
	} else {
		r.order = append(r.order, obj.ID)
	}
	r.objects[obj.ID] = obj
}

func (r *Registry) destroyHandles(obj *PlacedObject) {
	for _, h := range obj.Handles {
		r.scene.Destroy(h)
	}
}

// attachBody 添加碰撞体并加入分组
func (r *Registry) attachBody(h Handle, isStatic bool, group string) {
	r.scene.AttachCollisionBody(h, isStatic)
	if group != "" {
		r.scene.AddToCollisionGroup(h, group)
	}
}

// PlaceSpan 在两个坐标覆盖的区域放置平台
//
// 默认创建一个与区域等大的矩形；UseMultiPiece 时用拼接块图片从左到右填满区域。
// 默认添加静态碰撞体并加入 "platforms" 分组。
//
// 返回：
//   - *PlacedObject: 放置记录
//   - error: 坐标非法（grid.ErrInvalidCoordinate）或拼接块图片无法使用
func (r *Registry) PlaceSpan(start, end string, opts SpanOptions) (*PlacedObject, error) {
	span, err := r.grid.Span(start, end)
	if err != nil {
		return nil, fmt.Errorf("place span %s-%s: %w", start, end, err)
	}

	id := opts.ID
	if id == "" {
		id = fmt.Sprintf("span_%s_%s", start, end)
	}
	group := opts.Group
	if group == "" {
		group = DefaultGroup
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	log.Printf("[GridPlacement] Placing span %s from %s to %s", id, span.Start, span.End)
	log.Printf("[GridPlacement]   Position: (%.1f, %.1f) Size: %.0fx%.0fpx", span.Center.X, span.Center.Y, span.Width, span.Height)

	obj := &PlacedObject{
		ID:         id,
		Kind:       KindSpan,
		StartCoord: start,
		EndCoord:   end,
		Span:       span,
		Actual:     Geometry{Center: span.Center, Width: span.Width, Height: span.Height},
	}

	if opts.UseMultiPiece {
		if err := r.tileSpan(obj, opts, group); err != nil {
			return nil, fmt.Errorf("place span %s-%s: %w", start, end, err)
		}
	} else {
		fill := opts.Fill
		if fill == nil {
			fill = defaultSpanFill
		}
		h := r.scene.CreateRectangle(span.Center.X, span.Center.Y, span.Width, span.Height, fill)
		if !opts.NoPhysics {
			r.attachBody(h, true, group)
		}
		obj.Handles = []Handle{h}
	}

	r.store(obj)
	return obj.clone(), nil
}

// tileSpan 用拼接块填充区域（调用者持有锁）
func (r *Registry) tileSpan(obj *PlacedObject, opts SpanOptions, group string) error {
	resource := opts.PieceResource
	if resource == "" {
		resource = DefaultPieceResource
	}

	content, err := r.scene.ContentBounds(resource)
	if err != nil {
		return fmt.Errorf("piece %q: %w", resource, err)
	}

	cellWidth, _ := r.grid.CellSize()
	tiling, err := TileSpan(obj.Span, content, cellWidth)
	if err != nil {
		return fmt.Errorf("piece %q: %w", resource, err)
	}

	handles := make([]Handle, 0, len(tiling.Centers))
	for _, c := range tiling.Centers {
		h := r.scene.CreateImage(c.X, c.Y, resource, tiling.Scale)
		if !opts.NoPhysics {
			r.attachBody(h, true, group)
		}
		handles = append(handles, h)
	}

	obj.Kind = KindMultiPiece
	obj.Handles = handles
	obj.Pieces = tiling.Centers
	obj.PieceScale = tiling.Scale

	log.Printf("[GridPlacement]   Created %d pieces for %s (scale %.3f)", len(handles), obj.ID, tiling.Scale)
	return nil
}

// PlacePoint 在单个格子中心放置对象
//
// 返回：
//   - error: 坐标非法、ErrUnknownObjectKind 或 ErrMissingResource
func (r *Registry) PlacePoint(coord string, opts PointOptions) (*PlacedObject, error) {
	pos, err := r.grid.ToPixel(coord)
	if err != nil {
		return nil, fmt.Errorf("place %s at %s: %w", opts.Kind, coord, err)
	}

	resource := opts.Resource
	switch opts.Kind {
	case ObjectRectangle:
	case ObjectImage, ObjectSprite:
		if resource == "" {
			return nil, fmt.Errorf("place %s at %s: %w", opts.Kind, coord, ErrMissingResource)
		}
	case ObjectGift:
		if resource == "" {
			resource = DefaultGiftResource
		}
	default:
		return nil, fmt.Errorf("place %q at %s: %w", opts.Kind, coord, ErrUnknownObjectKind)
	}

	id := opts.ID
	if id == "" {
		id = fmt.Sprintf("%s_%s", opts.Kind, coord)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	log.Printf("[GridPlacement] Placing %s at %s (%.1f, %.1f)", opts.Kind, coord, pos.X, pos.Y)

	var h Handle
	actual := Geometry{Center: pos}
	if opts.Kind == ObjectRectangle {
		cw, ch := r.grid.CellSize()
		w, hgt := opts.Width, opts.Height
		if w <= 0 {
			w = cw
		}
		if hgt <= 0 {
			hgt = ch
		}
		fill := opts.Fill
		if fill == nil {
			fill = defaultPointFill
		}
		h = r.scene.CreateRectangle(pos.X, pos.Y, w, hgt, fill)
		actual.Width, actual.Height = w, hgt
	} else {
		scale := opts.Scale
		if scale <= 0 {
			scale = 1
		}
		h = r.scene.CreateImage(pos.X, pos.Y, resource, scale)
	}

	if opts.Physics {
		r.attachBody(h, opts.Static, opts.Group)
	}

	obj := &PlacedObject{
		ID:         id,
		Kind:       KindPoint,
		ObjectKind: opts.Kind,
		Coord:      coord,
		Position:   pos,
		Actual:     actual,
		Handles:    []Handle{h},
	}
	r.store(obj)
	return obj.clone(), nil
}

// PlaceMovingPoint 在格子中心放置水平往返移动的平台块
//
// 往返区间为 [ToPixel(from).X, ToPixel(to).X]。Registry 只记录区间和速度，
// 由引擎每帧读取 Oscillation 推进位置。
func (r *Registry) PlaceMovingPoint(coord, from, to string, opts MovingOptions) (*PlacedObject, error) {
	pos, err := r.grid.ToPixel(coord)
	if err != nil {
		return nil, fmt.Errorf("place moving block at %s: %w", coord, err)
	}
	fromPos, err := r.grid.ToPixel(from)
	if err != nil {
		return nil, fmt.Errorf("place moving block at %s: %w", coord, err)
	}
	toPos, err := r.grid.ToPixel(to)
	if err != nil {
		return nil, fmt.Errorf("place moving block at %s: %w", coord, err)
	}

	id := opts.ID
	if id == "" {
		id = fmt.Sprintf("moving_%s_%s_%s", coord, from, to)
	}
	resource := opts.PieceResource
	if resource == "" {
		resource = DefaultPieceResource
	}
	group := opts.Group
	if group == "" {
		group = DefaultGroup
	}
	speed := opts.Speed
	if speed == 0 {
		speed = DefaultMovingSpeed
	}
	direction := 1
	if speed < 0 {
		direction = -1
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	content, err := r.scene.ContentBounds(resource)
	if err != nil {
		return nil, fmt.Errorf("place moving block at %s: piece %q: %w", coord, resource, err)
	}
	cellWidth, _ := r.grid.CellSize()
	scale, err := PieceScale(content, cellWidth)
	if err != nil {
		return nil, fmt.Errorf("place moving block at %s: piece %q: %w", coord, resource, err)
	}

	log.Printf("[GridPlacement] Creating moving block %s at %s, traveling %s to %s", id, coord, from, to)

	h := r.scene.CreateImage(pos.X, pos.Y, resource, scale)
	if !opts.NoPhysics {
		// 动态碰撞体：由引擎每帧移动
		r.attachBody(h, false, group)
	}

	obj := &PlacedObject{
		ID:        id,
		Kind:      KindMoving,
		Coord:     coord,
		FromCoord: from,
		ToCoord:   to,
		Position:  pos,
		Actual: Geometry{
			Center: pos,
			Width:  float64(content.Dx()) * scale,
			Height: float64(content.Dy()) * scale,
		},
		PieceScale: scale,
		Oscillation: &Oscillation{
			StartX:    fromPos.X,
			EndX:      toPos.X,
			Speed:     speed,
			Direction: direction,
		},
		Handles: []Handle{h},
	}
	r.store(obj)

	log.Printf("[GridPlacement]   Moving block created: speed=%.0fpx/s", speed)
	return obj.clone(), nil
}

// Remove 移除放置记录并销毁其所有场景对象
// ID 不存在时返回 false，不产生任何副作用
func (r *Registry) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	obj, exists := r.objects[id]
	if !exists {
		return false
	}

	r.destroyHandles(obj)
	delete(r.objects, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	log.Printf("[GridPlacement] Removed object: %s", id)
	return true
}

// Clear 移除所有放置记录
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.order {
		r.destroyHandles(r.objects[id])
	}
	r.objects = make(map[string]*PlacedObject)
	r.order = nil
}

// Get 按ID查询放置记录，返回副本
// 修改副本不影响记录表，实际几何只能通过 SetActual 更新
func (r *Registry) Get(id string) (*PlacedObject, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	obj, exists := r.objects[id]
	if !exists {
		return nil, false
	}
	return obj.clone(), true
}

// List 返回当前所有放置ID的快照（插入顺序），并逐条打印放置信息
func (r *Registry) List() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	log.Printf("[GridPlacement] Placed objects: %d", len(r.order))
	ids := make([]string, len(r.order))
	for i, id := range r.order {
		obj := r.objects[id]
		log.Printf("[GridPlacement]   %s: %s at %s", id, obj.Kind, obj.Location())
		ids[i] = id
	}
	return ids
}

// Len 返回放置记录数量
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.order)
}

// Each 按插入顺序遍历放置记录，fn 返回 false 时停止
// 遍历期间持有锁，fn 中不能再调用 Registry 的方法，也不能保留 obj
func (r *Registry) Each(fn func(obj *PlacedObject) bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.order {
		if !fn(r.objects[id]) {
			return
		}
	}
}

// SetActual 更新放置记录的实际几何
// 供引擎在外部移动对象后同步，ID 不存在时返回 false
func (r *Registry) SetActual(id string, g Geometry) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	obj, exists := r.objects[id]
	if !exists {
		return false
	}
	obj.Actual = g
	return true
}
