package entities

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/gonewx/gallery/pkg/components"
	"github.com/gonewx/gallery/pkg/config"
	"github.com/gonewx/gallery/pkg/ecs"
	"github.com/gonewx/gallery/pkg/motion"
	"github.com/gonewx/gallery/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// ImageLoader 按路径加载卡片图片（已裁剪为卡片尺寸）
type ImageLoader interface {
	LoadCardImage(src string, width, height int) (*ebiten.Image, error)
}

// NewPhotoCardEntity 创建一张照片卡片实体
// 参数:
//   - manager: EntityManager 实例
//   - loader: 图片加载器，加载失败时卡片显示替代文本
//   - rng: 倾斜角随机源，nil 使用全局随机源
//   - desc: 照片描述
//   - index: 在按 order 排序的列表中的位置
//   - count: 照片总数
//
// 返回: 创建的实体ID
func NewPhotoCardEntity(manager *ecs.EntityManager, loader ImageLoader, rng *rand.Rand,
	desc config.PhotoDescriptor, index, count int) (ecs.EntityID, error) {

	magnitude, err := utils.GetRandomNumberInRange(rng, config.TiltMinDegrees, config.TiltMaxDegrees)
	if err != nil {
		return 0, fmt.Errorf("photo %d tilt: %w", desc.ID, err)
	}
	tilt := magnitude * desc.Direction.Sign()

	var img *ebiten.Image
	if loader != nil {
		img, err = loader.LoadCardImage(desc.Src, config.CardWidth, config.CardHeight)
		if err != nil {
			log.Printf("[PhotoCardFactory] Warning: failed to load %s, showing alt text: %v", desc.Src, err)
			img = nil
		}
	}

	id := manager.CreateEntity()

	// 渲染顺序为倒序列表，order 最大的卡片是第 0 个子元素
	childIndex := count - 1 - index

	ecs.AddComponent(manager, id, &components.PhotoCardComponent{
		Descriptor:  desc,
		TiltAngle:   tilt,
		ChildIndex:  childIndex,
		AppearDelay: config.AppearDelay(childIndex),
		PointerX:    config.PointerResetX,
		PointerY:    config.PointerResetY,
	})

	transform := components.NewCardTransformComponent()
	transform.Rotate.SpringTo(tilt, motion.GestureSpring, 0)
	ecs.AddComponent(manager, id, transform)

	ecs.AddComponent(manager, id, &components.SpriteComponent{
		Image:   img,
		AltText: desc.Alt,
		Width:   config.CardWidth,
		Height:  config.CardHeight,
	})

	return id, nil
}

// NewLoadingRingEntity 创建加载覆盖层中的一张环形缩略卡片
func NewLoadingRingEntity(manager *ecs.EntityManager, img *ebiten.Image, desc config.PhotoDescriptor) ecs.EntityID {
	id := manager.CreateEntity()

	ringX, ringY := utils.RingOffset(desc.Order, config.LoadingRingRadius, config.LoadingRingStepDegrees)

	ecs.AddComponent(manager, id, &components.LoadingRingComponent{
		Order:        desc.Order,
		RingX:        ringX,
		RingY:        ringY,
		Travel:       motion.NewTween(0, 1, config.LoadingRingCycle, 0, utils.EaseInOut, true),
		TargetRotate: float64(desc.Order) * config.LoadingRingStepDegrees,
		Spin:         motion.NewTween(0, 360, config.LoadingSpinPeriod, 0, utils.EaseLinear, true),
		Opacity: motion.NewTween(0, 1, config.LoadingEntranceDuration,
			config.LoadingEntranceDelay(desc.Order), utils.EaseLinear, false),
	})

	ecs.AddComponent(manager, id, &components.SpriteComponent{
		Image:   img,
		AltText: desc.Alt,
		Width:   config.LoadingCardSize,
		Height:  config.LoadingCardSize,
	})

	return id
}
