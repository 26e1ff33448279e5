package placement

import "errors"

var (
	// ErrUnknownObjectKind PlacePoint 收到不支持的对象类型
	ErrUnknownObjectKind = errors.New("unknown object kind")
	// ErrMissingResource 图片类对象没有指定资源ID
	ErrMissingResource = errors.New("image placement requires a resource id")
	// ErrNotFound 放置ID不存在
	ErrNotFound = errors.New("placement not found")
	// ErrEmptyPiece 拼接块图片没有任何非透明像素
	ErrEmptyPiece = errors.New("piece image has no opaque content")
)
