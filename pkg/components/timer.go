package components

// TimerComponent 一次性计时器组件
// 每个待触发的延迟回调对应一个实体，触发或取消后实体被销毁
type TimerComponent struct {
	Name        string  // 计时器名称，如 "reveal_loading_end"
	TargetTime  float64 // 目标时间（秒）
	CurrentTime float64 // 当前已过时间（秒）
	IsReady     bool    // 计时器是否已完成
	Cancelled   bool    // 已取消，不再触发
	Seq         uint64  // 创建序号，同一时刻到期时按序号触发
	Callback    func()  // 到期回调，在游戏循环线程上执行
}
