package systems

import (
	"log"

	"github.com/gonewx/gallery/pkg/config"
)

// RevealPhase 画廊揭示阶段，只会前进不会后退
type RevealPhase int

const (
	// PhaseLoading 加载覆盖层显示中
	PhaseLoading RevealPhase = iota
	// PhaseIdle 加载结束，容器尚未淡入
	PhaseIdle
	// PhaseVisible 容器淡入
	PhaseVisible
	// PhaseLoaded 照片级联入场
	PhaseLoaded
)

func (p RevealPhase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseIdle:
		return "idle"
	case PhaseVisible:
		return "visible"
	case PhaseLoaded:
		return "loaded"
	}
	return "unknown"
}

// RevealEvent 三个计时器各自对应的状态变化
type RevealEvent int

const (
	// EventLoadingEnded Loading 变为 false
	EventLoadingEnded RevealEvent = iota
	// EventVisible Visible 变为 true
	EventVisible
	// EventLoaded Loaded 变为 true
	EventLoaded
)

func (e RevealEvent) String() string {
	switch e {
	case EventLoadingEnded:
		return "loading-ended"
	case EventVisible:
		return "visible"
	case EventLoaded:
		return "loaded"
	}
	return "unknown"
}

// RevealSequencer 三阶段揭示序列
//
// Activate 登记三个一次性计时器：
//
//	+2.0s                      Loading = false
//	+(animationDelay + 2.0)s   Visible = true
//	+(animationDelay + 2.4)s   Loaded  = true
//
// Deactivate 取消全部未触发的计时器，之后状态不再变化。
// animationDelay 为负时不做校验，Visible 可能早于 Loading 结束。
type RevealSequencer struct {
	scheduler Scheduler
	handles   []TimerHandle
	active    bool
	delay     float64

	loading bool
	visible bool
	loaded  bool

	listeners      []func(RevealEvent)
	phaseListeners []func(RevealPhase)
	lastPhase      RevealPhase
}

// NewRevealSequencer 创建揭示序列（尚未激活）
func NewRevealSequencer(scheduler Scheduler) *RevealSequencer {
	return &RevealSequencer{
		scheduler: scheduler,
		loading:   true,
		lastPhase: PhaseLoading,
	}
}

// OnEvent 注册状态变化回调，按注册顺序调用
func (r *RevealSequencer) OnEvent(fn func(RevealEvent)) {
	r.listeners = append(r.listeners, fn)
}

// OnPhaseChange 注册阶段变化回调，每次阶段跃迁调用一次
func (r *RevealSequencer) OnPhaseChange(fn func(RevealPhase)) {
	r.phaseListeners = append(r.phaseListeners, fn)
}

// Activate 从零开始揭示序列；已激活时先取消旧计时器
func (r *RevealSequencer) Activate(animationDelay float64) {
	r.Deactivate()

	r.active = true
	r.delay = animationDelay
	r.loading = true
	r.visible = false
	r.loaded = false
	r.notifyPhase()

	r.handles = []TimerHandle{
		r.scheduler.Schedule("reveal_loading_end", config.LoadingDuration, func() {
			r.loading = false
			r.emit(EventLoadingEnded)
		}),
		r.scheduler.Schedule("reveal_visible", animationDelay+config.VisibleOffset, func() {
			r.visible = true
			r.emit(EventVisible)
		}),
		r.scheduler.Schedule("reveal_loaded", animationDelay+config.LoadedOffset, func() {
			r.loaded = true
			r.emit(EventLoaded)
		}),
	}

	if animationDelay < 0 {
		log.Printf("[RevealSequencer] Warning: negative animationDelay %.2f, visible may precede loading end", animationDelay)
	}
	log.Printf("[RevealSequencer] Activated (animationDelay=%.2fs)", animationDelay)
}

// Deactivate 取消全部未触发的计时器
func (r *RevealSequencer) Deactivate() {
	if !r.active {
		return
	}
	for _, h := range r.handles {
		r.scheduler.Cancel(h)
	}
	r.handles = nil
	r.active = false
	log.Printf("[RevealSequencer] Deactivated")
}

func (r *RevealSequencer) emit(e RevealEvent) {
	log.Printf("[RevealSequencer] %s (phase=%s)", e, r.Phase())
	for _, fn := range r.listeners {
		fn(e)
	}
	r.notifyPhase()
}

func (r *RevealSequencer) notifyPhase() {
	phase := r.Phase()
	if phase == r.lastPhase {
		return
	}
	r.lastPhase = phase
	for _, fn := range r.phaseListeners {
		fn(phase)
	}
}

// IsActive 是否处于激活状态
func (r *RevealSequencer) IsActive() bool { return r.active }

// AnimationDelay 最近一次激活使用的延迟
func (r *RevealSequencer) AnimationDelay() float64 { return r.delay }

// IsLoading 加载覆盖层是否显示
func (r *RevealSequencer) IsLoading() bool { return r.loading }

// IsVisible 容器是否已开始淡入
func (r *RevealSequencer) IsVisible() bool { return r.visible }

// IsLoaded 照片级联是否已开始
func (r *RevealSequencer) IsLoaded() bool { return r.loaded }

// Phase 由三个标志推导出的当前阶段（取已达到的最高阶段）
func (r *RevealSequencer) Phase() RevealPhase {
	switch {
	case r.loaded:
		return PhaseLoaded
	case r.visible:
		return PhaseVisible
	case r.loading:
		return PhaseLoading
	}
	return PhaseIdle
}
