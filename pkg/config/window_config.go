package config

// 窗口与舞台布局常量
const (
	// GameWindowWidth 逻辑屏幕宽度（Layout 返回值，与实际窗口大小无关）
	GameWindowWidth = 1280

	// GameWindowHeight 逻辑屏幕高度
	GameWindowHeight = 720

	// WindowTitle 窗口标题
	WindowTitle = "Photo Gallery"

	// AppName 设置存储使用的应用名（gdata 以此区分数据目录）
	AppName = "gonewx_gallery"

	// FixedDeltaTime 每个 tick 的固定时间步长（秒），Ebitengine 默认 60 TPS
	FixedDeltaTime = 1.0 / 60.0
)

// 卡片舞台：所有照片卡片共享一个 220x220 的定位盒，
// 盒子左上角即为卡片 (x=0, y=0) 的静止位置
const (
	// CardWidth 照片卡片宽度
	CardWidth = 220.0

	// CardHeight 照片卡片高度
	CardHeight = 220.0

	// CardCornerRadius 卡片圆角半径（rounded-3xl）
	CardCornerRadius = 24.0

	// StageOriginX 定位盒左上角 X（水平居中）
	StageOriginX = (GameWindowWidth - CardWidth) / 2

	// StageOriginY 定位盒左上角 Y（垂直居中）
	StageOriginY = (GameWindowHeight - CardHeight) / 2
)

// 网格图案覆盖层（仅装饰）
const (
	// GridOverlayTop 网格带顶部 Y
	GridOverlayTop = 200.0

	// GridOverlayHeight 网格带高度
	GridOverlayHeight = 300.0

	// GridCellSize 网格间距（3rem）
	GridCellSize = 48.0

	// GridOverlayAlpha 网格线整体不透明度
	GridOverlayAlpha = 0.2
)
