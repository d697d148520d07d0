package config

// 揭示序列时间参数（秒）
//
// 三个一次性计时器都相对于激活时刻：
//
//	LoadingDuration                          → 加载动画结束
//	animationDelay + VisibleOffset           → 容器淡入
//	animationDelay + LoadedOffset            → 照片级联开始
const (
	// DefaultAnimationDelay animationDelay 未配置时的默认值
	DefaultAnimationDelay = 0.5

	// LoadingDuration 加载覆盖层显示时长
	LoadingDuration = 2.0

	// VisibleOffset 容器淡入相对 animationDelay 的偏移
	VisibleOffset = 2.0

	// LoadedOffset 照片动画开始相对 animationDelay 的偏移
	LoadedOffset = 2.4

	// ContainerFadeDuration 容器透明度 0→1 的时长（easeOut）
	ContainerFadeDuration = 0.4
)

// 级联入场参数
const (
	// CascadeSpringStiffness 照片入场弹簧刚度
	CascadeSpringStiffness = 70.0

	// CascadeSpringDamping 照片入场弹簧阻尼
	CascadeSpringDamping = 12.0

	// CascadeSpringMass 照片入场弹簧质量
	CascadeSpringMass = 1.0

	// CascadeOrderDelay 每个 order 追加的弹簧启动延迟
	CascadeOrderDelay = 0.15

	// StaggerChildren 兄弟卡片出现的逐个延迟
	StaggerChildren = 0.15

	// DelayChildren 兄弟卡片出现的初始延迟
	DelayChildren = 0.1
)

// 加载环参数
const (
	// LoadingCardSize 加载环中缩略卡片边长（h-20 w-20）
	LoadingCardSize = 80.0

	// LoadingRingRadius 环半径
	LoadingRingRadius = 150.0

	// LoadingRingStepDegrees 相邻卡片的角度间隔（360/5）
	LoadingRingStepDegrees = 72.0

	// LoadingRingScale 环上卡片缩放
	LoadingRingScale = 0.8

	// LoadingRingCycle 从中心飞到环位置的循环时长（easeInOut，无限循环）
	LoadingRingCycle = 3.0

	// LoadingSpinPeriod 内层自转一圈的时长（linear，无限循环）
	LoadingSpinPeriod = 4.0

	// LoadingEntranceDuration 入场透明度动画时长
	LoadingEntranceDuration = 0.3

	// LoadingEntranceOrderDelay 每个 order 追加的入场延迟
	LoadingEntranceOrderDelay = 0.1

	// LoadingOverlayAlpha 加载覆盖层黑色不透明度（bg-black/80）
	LoadingOverlayAlpha = 0.8
)

// 卡片手势参数
const (
	// TiltMinDegrees 静止倾斜角下限（含）
	TiltMinDegrees = 1.0

	// TiltMaxDegrees 静止倾斜角上限（不含）
	TiltMaxDegrees = 4.0

	// HoverScale 悬停缩放
	HoverScale = 1.1

	// HoverRotateDegrees 悬停附加旋转（按方向取符号）
	HoverRotateDegrees = 2.0

	// PressScale 按下缩放
	PressScale = 1.2

	// DragScale 拖拽缩放
	DragScale = 1.1

	// RaisedZIndex 悬停/按下/拖拽期间的层级
	RaisedZIndex = 9999

	// RestingZIndex 卡片内部默认层级
	RestingZIndex = 1

	// DragThreshold 按下后移动超过该距离（像素）才进入拖拽
	DragThreshold = 3.0

	// DragElastic 约束盒收缩到原点时的拖拽弹性系数
	DragElastic = 0.5

	// PointerResetX 指针离开后的跟踪偏移 X（固定值，不是盒子中心）
	PointerResetX = 200.0

	// PointerResetY 指针离开后的跟踪偏移 Y
	PointerResetY = 200.0
)

// 手势过渡使用的默认弹簧（缩放、旋转、拖拽回弹）
const (
	// GestureSpringStiffness 手势弹簧刚度
	GestureSpringStiffness = 500.0

	// GestureSpringDamping 手势弹簧阻尼
	GestureSpringDamping = 25.0

	// GestureSpringMass 手势弹簧质量
	GestureSpringMass = 1.0
)

// 背景视频参数
const (
	// BackdropOpacity 视频本身的不透明度
	BackdropOpacity = 0.5

	// BackdropDimAlpha 视频上方黑色遮罩的不透明度
	BackdropDimAlpha = 0.5

	// BackdropFPS 解码输出帧率
	BackdropFPS = 30

	// BackdropFrameBuffer 解码协程与游戏循环之间的帧缓冲数量
	BackdropFrameBuffer = 4
)

// CascadeDelay 某张卡片入场弹簧的启动延迟
func CascadeDelay(order int) float64 {
	return float64(order) * CascadeOrderDelay
}

// AppearDelay 某个渲染位置的兄弟错峰出现延迟
func AppearDelay(childIndex int) float64 {
	return DelayChildren + float64(childIndex)*StaggerChildren
}

// LoadingEntranceDelay 加载环缩略图的入场延迟
func LoadingEntranceDelay(order int) float64 {
	return float64(order) * LoadingEntranceOrderDelay
}
