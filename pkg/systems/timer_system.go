package systems

import (
	"log"
	"sort"

	"github.com/gonewx/gallery/pkg/components"
	"github.com/gonewx/gallery/pkg/ecs"
)

// timerEpsilon 吸收逐帧累加 dt 产生的浮点误差
// 120 × (1/60) 的累加结果可能略小于 2.0
const timerEpsilon = 1e-9

// TimerHandle 已登记计时器的句柄
type TimerHandle ecs.EntityID

// Scheduler 一次性延迟回调的调度能力
//
// 回调总是在游戏循环线程上执行；Cancel 之后回调保证不会再被调用。
type Scheduler interface {
	Schedule(name string, delay float64, fn func()) TimerHandle
	Cancel(h TimerHandle)
}

// TimerSystem 基于 TimerComponent 的调度器
//
// 时间只由 Update(dt) 推进，因此在测试中就是一个可控的假时钟。
type TimerSystem struct {
	entityManager *ecs.EntityManager
	nextSeq       uint64
	now           float64
}

var _ Scheduler = (*TimerSystem)(nil)

// NewTimerSystem 创建计时器系统
func NewTimerSystem(em *ecs.EntityManager) *TimerSystem {
	return &TimerSystem{entityManager: em}
}

// Now 系统创建以来累计推进的时间（秒）
func (s *TimerSystem) Now() float64 {
	return s.now
}

// Schedule 登记一个 delay 秒后触发的回调
// delay <= 0 的回调在下一次 Update 时触发
func (s *TimerSystem) Schedule(name string, delay float64, fn func()) TimerHandle {
	id := s.entityManager.CreateEntity()
	s.nextSeq++
	s.entityManager.AddComponent(id, &components.TimerComponent{
		Name:       name,
		TargetTime: delay,
		Seq:        s.nextSeq,
		Callback:   fn,
	})
	return TimerHandle(id)
}

// Cancel 取消计时器；对已触发或已取消的句柄调用是安全的
func (s *TimerSystem) Cancel(h TimerHandle) {
	id := ecs.EntityID(h)
	timer, ok := ecs.GetComponent[*components.TimerComponent](s.entityManager, id)
	if !ok || timer.Cancelled || timer.IsReady {
		return
	}
	timer.Cancelled = true
	timer.Callback = nil
	s.entityManager.DestroyEntity(id)
}

// Pending 返回尚未触发且未取消的计时器数量
func (s *TimerSystem) Pending() int {
	count := 0
	for _, id := range ecs.GetEntitiesWith1[*components.TimerComponent](s.entityManager) {
		timer, _ := ecs.GetComponent[*components.TimerComponent](s.entityManager, id)
		if !timer.Cancelled && !timer.IsReady {
			count++
		}
	}
	return count
}

// Update 推进所有计时器，按到期时间顺序触发
//
// 同一帧内多个计时器到期时，按 (TargetTime, Seq) 升序执行；
// 回调中取消的其他计时器不会在本帧继续触发。
func (s *TimerSystem) Update(deltaTime float64) {
	s.now += deltaTime

	due := make([]*components.TimerComponent, 0)
	dueIDs := make(map[*components.TimerComponent]ecs.EntityID)

	for _, id := range ecs.GetEntitiesWith1[*components.TimerComponent](s.entityManager) {
		timer, _ := ecs.GetComponent[*components.TimerComponent](s.entityManager, id)
		if timer.Cancelled || timer.IsReady {
			continue
		}
		timer.CurrentTime += deltaTime
		if timer.CurrentTime+timerEpsilon >= timer.TargetTime {
			due = append(due, timer)
			dueIDs[timer] = id
		}
	}

	sort.Slice(due, func(i, j int) bool {
		if due[i].TargetTime != due[j].TargetTime {
			return due[i].TargetTime < due[j].TargetTime
		}
		return due[i].Seq < due[j].Seq
	})

	for _, timer := range due {
		if timer.Cancelled {
			continue
		}
		timer.IsReady = true
		s.entityManager.DestroyEntity(dueIDs[timer])
		if timer.Callback != nil {
			log.Printf("[TimerSystem] %s fired at %.3fs", timer.Name, s.now)
			timer.Callback()
		}
		timer.Callback = nil
	}
}
