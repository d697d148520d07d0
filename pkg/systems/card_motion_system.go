package systems

import (
	"log"

	"github.com/gonewx/gallery/pkg/components"
	"github.com/gonewx/gallery/pkg/config"
	"github.com/gonewx/gallery/pkg/ecs"
	"github.com/gonewx/gallery/pkg/motion"
)

// CardMotionSystem 照片卡片的级联入场与动画推进
//
// StartCascade 之后：
//   - 每张卡片在 order*0.15s 后以入场弹簧从 (0,0) 运动到 (x, y)
//   - 每张卡片在 0.1s + 0.15s*ChildIndex 后标记为已出现（兄弟错峰）
//
// Update 推进所有卡片的全部动画值（入场、倾斜、手势）。
type CardMotionSystem struct {
	entityManager *ecs.EntityManager

	// 级联开始后经过的时间；未开始时为 -1
	cascadeElapsed float64
}

// NewCardMotionSystem 创建卡片动画系统
func NewCardMotionSystem(em *ecs.EntityManager) *CardMotionSystem {
	return &CardMotionSystem{
		entityManager:  em,
		cascadeElapsed: -1,
	}
}

// StartCascade 开始级联入场（Loaded 变为 true 时调用）
// 场景在计时器之前推进本系统，级联时间从下一帧开始累加
func (s *CardMotionSystem) StartCascade() {
	s.cascadeElapsed = 0
	for _, id := range ecs.GetEntitiesWith2[*components.PhotoCardComponent, *components.CardTransformComponent](s.entityManager) {
		card, _ := ecs.GetComponent[*components.PhotoCardComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.CardTransformComponent](s.entityManager, id)

		delay := config.CascadeDelay(card.Descriptor.Order)
		transform.OffsetX.SpringTo(card.Descriptor.XOffset, motion.CascadeSpring, delay)
		transform.OffsetY.SpringTo(card.Descriptor.YOffset, motion.CascadeSpring, delay)
		// 零延迟的卡片在 Loaded 当帧即开始
		card.Appeared = card.AppearDelay <= timerEpsilon
		card.CascadeStarted = delay <= timerEpsilon

		log.Printf("[CardMotionSystem] photo %d: spring in %.2fs, appear in %.2fs",
			card.Descriptor.ID, delay, card.AppearDelay)
	}
}

// ResetCascade 回到隐藏布局（重新激活序列时调用）
func (s *CardMotionSystem) ResetCascade() {
	s.cascadeElapsed = -1
	for _, id := range ecs.GetEntitiesWith2[*components.PhotoCardComponent, *components.CardTransformComponent](s.entityManager) {
		card, _ := ecs.GetComponent[*components.PhotoCardComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.CardTransformComponent](s.entityManager, id)
		transform.OffsetX.SpringTo(0, motion.GestureSpring, 0)
		transform.OffsetY.SpringTo(0, motion.GestureSpring, 0)
		card.Appeared = false
		card.CascadeStarted = false
	}
}

// CascadeRunning 级联是否已经开始
func (s *CardMotionSystem) CascadeRunning() bool {
	return s.cascadeElapsed >= 0
}

// Update 推进所有卡片动画
func (s *CardMotionSystem) Update(deltaTime float64) {
	if s.cascadeElapsed >= 0 {
		s.cascadeElapsed += deltaTime
	}

	for _, id := range ecs.GetEntitiesWith2[*components.PhotoCardComponent, *components.CardTransformComponent](s.entityManager) {
		card, _ := ecs.GetComponent[*components.PhotoCardComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.CardTransformComponent](s.entityManager, id)

		for _, v := range transform.Values() {
			v.Update(deltaTime)
		}

		if s.cascadeElapsed < 0 {
			continue
		}
		if !card.Appeared && s.cascadeElapsed+timerEpsilon >= card.AppearDelay {
			card.Appeared = true
		}
		if !card.CascadeStarted && s.cascadeElapsed+timerEpsilon >= config.CascadeDelay(card.Descriptor.Order) {
			card.CascadeStarted = true
		}
	}
}
