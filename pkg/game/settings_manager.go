package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// GallerySettings 全局显示设置
type GallerySettings struct {
	// 显示设置
	Fullscreen bool `yaml:"fullscreen"` // 启动时是否全屏
	ShowGrid   bool `yaml:"showGrid"`   // 是否绘制顶部网格

	// 背景视频
	BackdropEnabled bool    `yaml:"backdropEnabled"` // 是否播放背景视频
	BackdropScale   float64 `yaml:"backdropScale"`   // 解码分辨率相对窗口的比例，0 表示按主机性能自动选择
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GallerySettings {
	return &GallerySettings{
		Fullscreen:      false,
		ShowGrid:        true,
		BackdropEnabled: true,
		BackdropScale:   0,
	}
}

// SettingsManager 设置管理器
// 负责设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager   // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *GallerySettings // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 保留给调用方，加载失败不会返回错误
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	// 尝试加载已保存的设置
	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// 从默认值开始解码，缺失的字段保留默认
	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.BackdropScale = clampScale(loaded.BackdropScale)

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *GallerySettings {
	return sm.settings
}

// SetFullscreen 设置全屏模式
//
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// SetShowGrid 设置网格显示
func (sm *SettingsManager) SetShowGrid(enabled bool) {
	sm.settings.ShowGrid = enabled
}

// SetBackdropEnabled 设置背景视频开关
func (sm *SettingsManager) SetBackdropEnabled(enabled bool) {
	sm.settings.BackdropEnabled = enabled
}

// SetBackdropScale 设置背景解码比例
//
// 比例被限制在 [0.25, 1]；0 表示自动
func (sm *SettingsManager) SetBackdropScale(scale float64) {
	sm.settings.BackdropScale = clampScale(scale)
}

// clampScale 将解码比例限制在 0（自动）或 [0.25, 1]
func clampScale(scale float64) float64 {
	if scale <= 0 {
		return 0
	}
	if scale < 0.25 {
		return 0.25
	}
	if scale > 1.0 {
		return 1.0
	}
	return scale
}
