package grid

import (
	"errors"
	"fmt"
)

// ErrInvalidCoordinate 是所有坐标解析错误的公共父错误
// 调用者可使用 errors.Is(err, ErrInvalidCoordinate) 统一判断
var ErrInvalidCoordinate = errors.New("invalid coordinate")

var (
	// ErrInvalidFormat 坐标文本不符合 "<列字母><行号>" 格式（如 "b5"、"A"）
	ErrInvalidFormat = fmt.Errorf("%w format", ErrInvalidCoordinate)
	// ErrInvalidColumn 列字母超出配置的列范围（如 10 列网格中的 "K1"）
	ErrInvalidColumn = fmt.Errorf("%w column", ErrInvalidCoordinate)
	// ErrInvalidRow 行号超出 [1, Rows] 范围（如 18 行网格中的 "A19"）
	ErrInvalidRow = fmt.Errorf("%w row", ErrInvalidCoordinate)
)

// CoordinateError 记录出错的坐标文本及错误类别
//
// Unwrap 返回具体的哨兵错误（ErrInvalidFormat / ErrInvalidColumn / ErrInvalidRow），
// 因此 errors.Is 既能匹配具体类别，也能匹配 ErrInvalidCoordinate。
type CoordinateError struct {
	Text string // 调用者传入的原始文本
	Hint string // 期望格式提示，如 "use A-J" 或 "use 1-18"
	Err  error  // 具体的哨兵错误
}

func (e *CoordinateError) Error() string {
	if e.Hint == "" {
		return fmt.Sprintf("%v: %q", e.Err, e.Text)
	}
	return fmt.Sprintf("%v: %q (%s)", e.Err, e.Text, e.Hint)
}

func (e *CoordinateError) Unwrap() error {
	return e.Err
}
