package components

// OscillationComponent 移动平台的运行时方向
// 往返区间和速度保存在放置记录中，组件只记录当前方向（1 向右，-1 向左）
type OscillationComponent struct {
	Direction int
}
