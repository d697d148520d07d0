package systems

import (
	"math/rand"
	"testing"

	"github.com/gonewx/gallery/pkg/components"
	"github.com/gonewx/gallery/pkg/config"
	"github.com/gonewx/gallery/pkg/ecs"
	"github.com/gonewx/gallery/pkg/entities"
	"github.com/gonewx/gallery/pkg/utils"
)

const testDT = 1.0 / 60.0

// fakePointer 可由测试直接控制的指针源
type fakePointer struct {
	state utils.PointerState
}

func (p *fakePointer) Pointer() utils.PointerState { return p.state }

// moveTo 移动到屏幕坐标 (x, y)，保持按键状态
func (p *fakePointer) moveTo(x, y float64) {
	p.state.X, p.state.Y = x, y
	p.state.Present = true
}

// createTestCards 按默认画廊数据创建全部照片卡片
func createTestCards(t *testing.T, em *ecs.EntityManager) []ecs.EntityID {
	t.Helper()
	photos := config.DefaultGalleryData().Photos
	rng := rand.New(rand.NewSource(42))
	ids := make([]ecs.EntityID, 0, len(photos))
	for i, desc := range photos {
		id, err := entities.NewPhotoCardEntity(em, nil, rng, desc, i, len(photos))
		if err != nil {
			t.Fatalf("create card %d: %v", desc.ID, err)
		}
		ids = append(ids, id)
	}
	return ids
}

// createUntiltedCard 创建一张不倾斜的卡片，便于精确的命中测试
func createUntiltedCard(t *testing.T, em *ecs.EntityManager, desc config.PhotoDescriptor) ecs.EntityID {
	t.Helper()
	id, err := entities.NewPhotoCardEntity(em, nil, rand.New(rand.NewSource(1)), desc, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	transform := mustTransform(t, em, id)
	transform.Rotate.Set(0)
	return id
}

func mustCard(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.PhotoCardComponent {
	t.Helper()
	card, ok := ecs.GetComponent[*components.PhotoCardComponent](em, id)
	if !ok {
		t.Fatalf("entity %d has no PhotoCardComponent", id)
	}
	return card
}

func mustTransform(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.CardTransformComponent {
	t.Helper()
	transform, ok := ecs.GetComponent[*components.CardTransformComponent](em, id)
	if !ok {
		t.Fatalf("entity %d has no CardTransformComponent", id)
	}
	return transform
}
