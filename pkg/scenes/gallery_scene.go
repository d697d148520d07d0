package scenes

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/gonewx/gallery/pkg/config"
	"github.com/gonewx/gallery/pkg/ecs"
	"github.com/gonewx/gallery/pkg/entities"
	"github.com/gonewx/gallery/pkg/game"
	"github.com/gonewx/gallery/pkg/motion"
	"github.com/gonewx/gallery/pkg/systems"
	"github.com/gonewx/gallery/pkg/utils"
	"github.com/gonewx/gallery/pkg/video"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Scene is a type alias for game.Scene to maintain backward compatibility.
type Scene = game.Scene

// GalleryResources 画廊场景需要的图片来源
// *game.ResourceManager 实现了此接口
type GalleryResources interface {
	entities.ImageLoader
	LoadThumbnail(path string, size int) *ebiten.Image
}

// GalleryOptions 画廊场景的构造参数
type GalleryOptions struct {
	Data           *config.GalleryData
	AnimationDelay float64
	ShowGrid       bool

	// 以下均可为 nil：无图片时显示替代文本，无背景播放器时只绘制遮罩
	Resources GalleryResources
	AltFont   *text.GoTextFace
	Backdrop  *video.Backdrop

	// Pointer 为 nil 时读取 Ebitengine 输入
	Pointer utils.PointerSource
	// Rand 倾斜角随机源，nil 使用全局随机源
	Rand *rand.Rand
}

// GalleryScene 画廊主场景
//
// 时间线（相对 OnEnter）：
//
//	0s                  加载环出现
//	2.0s                加载环移除，卡片可交互
//	delay + 2.0s        容器 0.4s 淡入
//	delay + 2.4s        卡片级联入场
type GalleryScene struct {
	entityManager *ecs.EntityManager

	timerSystem   *systems.TimerSystem
	sequencer     *systems.RevealSequencer
	motionSystem  *systems.CardMotionSystem
	gestureSystem *systems.CardGestureSystem
	ringSystem    *systems.LoadingRingSystem
	renderSystem  *systems.GalleryRenderSystem

	resources GalleryResources
	backdrop  *video.Backdrop

	photos  []config.PhotoDescriptor
	cards   []ecs.EntityID
	opacity *motion.Value // 容器透明度

	animationDelay float64
	showGrid       bool
	entered        bool
}

// NewGalleryScene 创建画廊场景并生成全部照片卡片
// 序列在 OnEnter 时才激活
func NewGalleryScene(opts GalleryOptions) (*GalleryScene, error) {
	if opts.Data == nil || len(opts.Data.Photos) == 0 {
		return nil, fmt.Errorf("gallery scene needs at least one photo")
	}
	pointer := opts.Pointer
	if pointer == nil {
		pointer = utils.EbitenPointer{}
	}

	em := ecs.NewEntityManager()
	timerSystem := systems.NewTimerSystem(em)

	s := &GalleryScene{
		entityManager:  em,
		timerSystem:    timerSystem,
		sequencer:      systems.NewRevealSequencer(timerSystem),
		motionSystem:   systems.NewCardMotionSystem(em),
		gestureSystem:  systems.NewCardGestureSystem(em, pointer),
		ringSystem:     systems.NewLoadingRingSystem(em),
		renderSystem:   systems.NewGalleryRenderSystem(em, opts.AltFont),
		resources:      opts.Resources,
		backdrop:       opts.Backdrop,
		photos:         opts.Data.Photos,
		opacity:        motion.NewValue(0),
		animationDelay: opts.AnimationDelay,
		showGrid:       opts.ShowGrid,
	}

	var loader entities.ImageLoader
	if opts.Resources != nil {
		loader = opts.Resources
	}
	for i, desc := range s.photos {
		id, err := entities.NewPhotoCardEntity(em, loader, opts.Rand, desc, i, len(s.photos))
		if err != nil {
			return nil, fmt.Errorf("create photo card: %w", err)
		}
		s.cards = append(s.cards, id)
	}

	s.sequencer.OnEvent(s.handleRevealEvent)
	s.sequencer.OnPhaseChange(func(p systems.RevealPhase) {
		log.Printf("[GalleryScene] Phase -> %s at %.3fs", p, s.timerSystem.Now())
	})

	log.Printf("[GalleryScene] Created %d photo cards (animation delay %.2fs)", len(s.cards), s.animationDelay)
	return s, nil
}

// handleRevealEvent 把序列的状态变化映射到各系统
func (s *GalleryScene) handleRevealEvent(e systems.RevealEvent) {
	switch e {
	case systems.EventLoadingEnded:
		s.ringSystem.Clear()
		s.gestureSystem.SetEnabled(true)
	case systems.EventVisible:
		s.opacity.TweenTo(1, config.ContainerFadeDuration, 0, utils.EaseOut)
	case systems.EventLoaded:
		s.motionSystem.StartCascade()
	}
}

// OnEnter 激活揭示序列并显示加载环
func (s *GalleryScene) OnEnter() {
	s.entered = true
	s.opacity.Set(0)
	s.gestureSystem.SetEnabled(false)
	s.sequencer.Activate(s.animationDelay)
	s.ringSystem.Spawn(s.photos, s.thumbnail)
}

// OnExit 取消未触发的计时器并停止背景解码
func (s *GalleryScene) OnExit() {
	s.entered = false
	s.sequencer.Deactivate()
	s.ringSystem.Clear()
	s.gestureSystem.SetEnabled(false)
	s.motionSystem.ResetCascade()
	if s.backdrop != nil {
		s.backdrop.Stop()
	}
	s.entityManager.RemoveMarkedEntities()
}

func (s *GalleryScene) thumbnail(desc config.PhotoDescriptor) *ebiten.Image {
	if s.resources == nil {
		return nil
	}
	return s.resources.LoadThumbnail(desc.Src, int(config.LoadingCardSize))
}

// SetAnimationDelay 修改动画延迟并从零重新开始序列
func (s *GalleryScene) SetAnimationDelay(delay float64) {
	s.animationDelay = delay
	if s.entered {
		s.motionSystem.ResetCascade()
		s.OnEnter()
	}
}

// SetShowGrid 切换网格层
func (s *GalleryScene) SetShowGrid(show bool) {
	s.showGrid = show
}

// Update 更新场景
// 计时器最后推进，到期回调启动的动画从下一帧开始计时
func (s *GalleryScene) Update(deltaTime float64) {
	if s.backdrop != nil {
		s.backdrop.Update(deltaTime)
	}
	s.opacity.Update(deltaTime)
	s.ringSystem.Update(deltaTime)
	s.gestureSystem.Update(deltaTime)
	s.motionSystem.Update(deltaTime)
	s.timerSystem.Update(deltaTime)

	s.entityManager.RemoveMarkedEntities()
}

// Draw 按层绘制场景
func (s *GalleryScene) Draw(screen *ebiten.Image) {
	var frame *ebiten.Image
	if s.backdrop != nil {
		frame = s.backdrop.Image()
	}
	s.renderSystem.DrawBackdrop(screen, frame)

	if s.showGrid {
		s.renderSystem.DrawGrid(screen)
	}

	s.renderSystem.DrawCards(screen, s.opacity.Get())

	if s.ringSystem.Active() {
		s.renderSystem.DrawLoadingOverlay(screen, s.ringSystem.Rings())
	}
}

// Sequencer 揭示序列
func (s *GalleryScene) Sequencer() *systems.RevealSequencer { return s.sequencer }

// EntityManager 场景的实体管理器
func (s *GalleryScene) EntityManager() *ecs.EntityManager { return s.entityManager }

// Cards 照片卡片实体，按 order 排列
func (s *GalleryScene) Cards() []ecs.EntityID { return s.cards }

// Opacity 容器当前透明度
func (s *GalleryScene) Opacity() float64 { return s.opacity.Get() }

// LoadingVisible 加载覆盖层是否显示
func (s *GalleryScene) LoadingVisible() bool { return s.ringSystem.Active() }

// Interactive 卡片是否响应指针
func (s *GalleryScene) Interactive() bool { return s.gestureSystem.Enabled() }

// Now 场景时钟（秒）
func (s *GalleryScene) Now() float64 { return s.timerSystem.Now() }
