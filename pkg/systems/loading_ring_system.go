package systems

import (
	"log"

	"github.com/gonewx/gallery/pkg/components"
	"github.com/gonewx/gallery/pkg/config"
	"github.com/gonewx/gallery/pkg/ecs"
	"github.com/gonewx/gallery/pkg/entities"
	"github.com/gonewx/gallery/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// LoadingRingPose 环形缩略卡片在某一时刻的姿态（相对覆盖层中心）
type LoadingRingPose struct {
	X, Y    float64
	Rotate  float64 // 外层旋转（度）
	Spin    float64 // 内层自转（度）
	Scale   float64
	Opacity float64
}

// Rotation 外层与内层旋转之和
func (p LoadingRingPose) Rotation() float64 {
	return p.Rotate + p.Spin
}

// PoseOf 计算环形卡片的当前姿态
//
// 入场时透明度与缩放一起从 0 过渡到 1；
// 循环往返时从中心 (0,0,0°,1) 过渡到 (ringX, ringY, order·72°, 0.8)，每 3s 重新开始。
func PoseOf(ring *components.LoadingRingComponent) LoadingRingPose {
	travel := ring.Travel.Value()
	entrance := ring.Opacity.Value()
	return LoadingRingPose{
		X:       ring.RingX * travel,
		Y:       ring.RingY * travel,
		Rotate:  ring.TargetRotate * travel,
		Spin:    ring.Spin.Value(),
		Scale:   entrance * utils.Lerp(1, config.LoadingRingScale, travel),
		Opacity: entrance,
	}
}

// LoadingRingSystem 管理加载覆盖层中的五张环形缩略卡片
type LoadingRingSystem struct {
	entityManager *ecs.EntityManager
	rings         []ecs.EntityID
}

// NewLoadingRingSystem 创建加载环系统
func NewLoadingRingSystem(em *ecs.EntityManager) *LoadingRingSystem {
	return &LoadingRingSystem{entityManager: em}
}

// Spawn 为每张照片创建一张环形缩略卡片；已存在时先清除
// thumbnail 返回某张照片的缩略图，可以为 nil
func (s *LoadingRingSystem) Spawn(photos []config.PhotoDescriptor, thumbnail func(config.PhotoDescriptor) *ebiten.Image) {
	s.Clear()
	for _, desc := range photos {
		var img *ebiten.Image
		if thumbnail != nil {
			img = thumbnail(desc)
		}
		s.rings = append(s.rings, entities.NewLoadingRingEntity(s.entityManager, img, desc))
	}
	log.Printf("[LoadingRingSystem] Spawned %d ring cards", len(photos))
}

// Clear 移除全部环形卡片（加载结束时调用）
// 实体在本帧末的 RemoveMarkedEntities 中真正删除
func (s *LoadingRingSystem) Clear() {
	if len(s.rings) == 0 {
		return
	}
	for _, id := range s.rings {
		s.entityManager.DestroyEntity(id)
	}
	log.Printf("[LoadingRingSystem] Cleared %d ring cards", len(s.rings))
	s.rings = nil
}

// Active 环形卡片是否在显示
func (s *LoadingRingSystem) Active() bool {
	return len(s.rings) > 0
}

// Rings 当前环形卡片，按 order 排列
func (s *LoadingRingSystem) Rings() []ecs.EntityID {
	return s.rings
}

// Update 推进所有环形卡片的补间
func (s *LoadingRingSystem) Update(deltaTime float64) {
	for _, id := range s.rings {
		ring, ok := ecs.GetComponent[*components.LoadingRingComponent](s.entityManager, id)
		if !ok {
			continue
		}
		ring.Travel.Update(deltaTime)
		ring.Spin.Update(deltaTime)
		ring.Opacity.Update(deltaTime)
	}
}
