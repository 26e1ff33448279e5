//go:build mobile

package utils

// IsMobile 移动端编译时返回 true，触屏点击代替键盘切换调试层
func IsMobile() bool {
	return true
}
