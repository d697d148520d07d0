package systems

import (
	"math"
	"sort"

	"github.com/gonewx/gallery/pkg/components"
	"github.com/gonewx/gallery/pkg/config"
	"github.com/gonewx/gallery/pkg/ecs"
	"github.com/gonewx/gallery/pkg/motion"
	"github.com/gonewx/gallery/pkg/utils"
)

// CardGestureSystem 处理照片卡片的悬停、按下、拖拽与指针跟踪
//
// 手势目标优先级：拖拽 > 按下 > 悬停 > 静止
//
//	拖拽：scale 1.1，z 9999，位移 = 指针位移 × 0.5（约束盒收缩到原点）
//	按下：scale 1.2，z 9999
//	悬停：scale 1.1，附加旋转 ±2°，z 9999
//
// 松手后拖拽位移以弹簧回到原点。
type CardGestureSystem struct {
	entityManager *ecs.EntityManager
	pointer       utils.PointerSource

	enabled     bool
	lastPressed bool

	// 当前被按住的卡片（指针捕获），0 表示无
	pressedCard ecs.EntityID
}

// NewCardGestureSystem 创建手势系统，初始为禁用状态
func NewCardGestureSystem(em *ecs.EntityManager, pointer utils.PointerSource) *CardGestureSystem {
	return &CardGestureSystem{
		entityManager: em,
		pointer:       pointer,
	}
}

// SetEnabled 加载覆盖层显示期间禁用交互；禁用时释放所有手势状态
func (s *CardGestureSystem) SetEnabled(enabled bool) {
	if s.enabled == enabled {
		return
	}
	s.enabled = enabled
	if !enabled {
		s.releaseAll()
	}
}

// Enabled 是否接受指针输入
func (s *CardGestureSystem) Enabled() bool {
	return s.enabled
}

// CardCenter 返回卡片当前中心的屏幕坐标
func CardCenter(transform *components.CardTransformComponent) (float64, float64) {
	return config.StageOriginX + transform.X() + config.CardWidth/2,
		config.StageOriginY + transform.Y() + config.CardHeight/2
}

// CardLayoutOrigin 返回卡片布局盒（未旋转、未缩放）左上角的屏幕坐标
func CardLayoutOrigin(transform *components.CardTransformComponent) (float64, float64) {
	return config.StageOriginX + transform.X(), config.StageOriginY + transform.Y()
}

// DrawOrder 返回卡片的绘制顺序（先画的在下）
//
// 按有效层级升序；层级相同时按 ChildIndex 升序，与倒序渲染列表一致。
func DrawOrder(em *ecs.EntityManager) []ecs.EntityID {
	ids := ecs.GetEntitiesWith2[*components.PhotoCardComponent, *components.CardTransformComponent](em)
	sort.SliceStable(ids, func(i, j int) bool {
		a, _ := ecs.GetComponent[*components.PhotoCardComponent](em, ids[i])
		b, _ := ecs.GetComponent[*components.PhotoCardComponent](em, ids[j])
		za, zb := a.EffectiveZIndex(), b.EffectiveZIndex()
		if za != zb {
			return za < zb
		}
		return a.ChildIndex < b.ChildIndex
	})
	return ids
}

// HitTest 返回指针下最上层的卡片，没有则返回 0
func HitTest(em *ecs.EntityManager, x, y float64) ecs.EntityID {
	order := DrawOrder(em)
	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		transform, _ := ecs.GetComponent[*components.CardTransformComponent](em, id)
		cx, cy := CardCenter(transform)
		if utils.PointInRotatedRect(x, y, cx, cy, config.CardWidth, config.CardHeight,
			transform.Rotation(), transform.Scale.Get()) {
			return id
		}
	}
	return 0
}

// Update 读取指针并更新所有卡片的手势状态
func (s *CardGestureSystem) Update(deltaTime float64) {
	if !s.enabled {
		return
	}

	p := s.pointer.Pointer()
	justPressed := p.Pressed && !s.lastPressed
	justReleased := !p.Pressed && s.lastPressed
	s.lastPressed = p.Pressed

	// 悬停目标：按住期间保持捕获的卡片，否则取指针下最上层卡片
	var hovered ecs.EntityID
	if p.Present || p.Pressed {
		hovered = HitTest(s.entityManager, p.X, p.Y)
	}
	if s.pressedCard != 0 && hovered != s.pressedCard {
		if transform, ok := ecs.GetComponent[*components.CardTransformComponent](s.entityManager, s.pressedCard); ok {
			cx, cy := CardCenter(transform)
			if utils.PointInRotatedRect(p.X, p.Y, cx, cy, config.CardWidth, config.CardHeight,
				transform.Rotation(), transform.Scale.Get()) {
				hovered = s.pressedCard
			}
		}
	}

	if justPressed && hovered != 0 {
		s.press(hovered, p)
	}

	if s.pressedCard != 0 {
		s.updateDrag(p)
	}

	if justReleased && s.pressedCard != 0 {
		s.release(s.pressedCard)
	}

	for _, id := range ecs.GetEntitiesWith2[*components.PhotoCardComponent, *components.CardTransformComponent](s.entityManager) {
		card, _ := ecs.GetComponent[*components.PhotoCardComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.CardTransformComponent](s.entityManager, id)

		isHovered := id == hovered
		if isHovered {
			ox, oy := CardLayoutOrigin(transform)
			card.PointerX = p.X - ox
			card.PointerY = p.Y - oy
		} else if card.IsHovered {
			card.ResetPointer()
		}
		card.IsHovered = isHovered

		s.applyTargets(card, transform)
	}
}

func (s *CardGestureSystem) press(id ecs.EntityID, p utils.PointerState) {
	card, ok := ecs.GetComponent[*components.PhotoCardComponent](s.entityManager, id)
	if !ok {
		return
	}
	card.IsPressed = true
	card.PressX, card.PressY = p.X, p.Y
	s.pressedCard = id
}

func (s *CardGestureSystem) updateDrag(p utils.PointerState) {
	card, ok := ecs.GetComponent[*components.PhotoCardComponent](s.entityManager, s.pressedCard)
	if !ok {
		s.pressedCard = 0
		return
	}
	transform, _ := ecs.GetComponent[*components.CardTransformComponent](s.entityManager, s.pressedCard)

	dx, dy := p.X-card.PressX, p.Y-card.PressY
	if !card.IsDragging && math.Hypot(dx, dy) > config.DragThreshold {
		card.IsDragging = true
	}
	if card.IsDragging && transform != nil {
		transform.DragX.Set(dx * config.DragElastic)
		transform.DragY.Set(dy * config.DragElastic)
	}
}

func (s *CardGestureSystem) release(id ecs.EntityID) {
	if card, ok := ecs.GetComponent[*components.PhotoCardComponent](s.entityManager, id); ok {
		card.IsPressed = false
		card.IsDragging = false
	}
	if transform, ok := ecs.GetComponent[*components.CardTransformComponent](s.entityManager, id); ok {
		transform.DragX.SpringTo(0, motion.GestureSpring, 0)
		transform.DragY.SpringTo(0, motion.GestureSpring, 0)
	}
	s.pressedCard = 0
}

func (s *CardGestureSystem) releaseAll() {
	if s.pressedCard != 0 {
		s.release(s.pressedCard)
	}
	s.lastPressed = false
	for _, id := range ecs.GetEntitiesWith2[*components.PhotoCardComponent, *components.CardTransformComponent](s.entityManager) {
		card, _ := ecs.GetComponent[*components.PhotoCardComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.CardTransformComponent](s.entityManager, id)
		if card.IsHovered {
			card.ResetPointer()
		}
		card.IsHovered = false
		s.applyTargets(card, transform)
	}
}

// applyTargets 根据手势状态设置缩放与悬停旋转的弹簧目标
func (s *CardGestureSystem) applyTargets(card *components.PhotoCardComponent, transform *components.CardTransformComponent) {
	scale := 1.0
	switch {
	case card.IsDragging:
		scale = config.DragScale
	case card.IsPressed:
		scale = config.PressScale
	case card.IsHovered:
		scale = config.HoverScale
	}
	transform.Scale.SpringTo(scale, motion.GestureSpring, 0)

	hoverRotate := 0.0
	if card.IsHovered {
		hoverRotate = config.HoverRotateDegrees * card.Descriptor.Direction.Sign()
	}
	transform.HoverRotate.SpringTo(hoverRotate, motion.GestureSpring, 0)
}
