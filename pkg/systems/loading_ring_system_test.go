package systems

import (
	"math"
	"testing"

	"github.com/gonewx/gallery/pkg/components"
	"github.com/gonewx/gallery/pkg/config"
	"github.com/gonewx/gallery/pkg/ecs"
)

func spawnRing(t *testing.T) (*ecs.EntityManager, *LoadingRingSystem) {
	t.Helper()
	em := ecs.NewEntityManager()
	sys := NewLoadingRingSystem(em)
	sys.Spawn(config.DefaultGalleryData().Photos, nil)
	return em, sys
}

func ringOf(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.LoadingRingComponent {
	t.Helper()
	ring, ok := ecs.GetComponent[*components.LoadingRingComponent](em, id)
	if !ok {
		t.Fatalf("entity %d has no LoadingRingComponent", id)
	}
	return ring
}

func TestLoadingRingEntrance(t *testing.T) {
	em, sys := spawnRing(t)
	if !sys.Active() || len(sys.Rings()) != 5 {
		t.Fatalf("expected 5 ring cards, got %d", len(sys.Rings()))
	}

	for _, id := range sys.Rings() {
		if pose := PoseOf(ringOf(t, em, id)); pose.Opacity != 0 || pose.Scale != 0 {
			t.Errorf("ring card starts visible: %+v", pose)
		}
	}

	// 0.35s: order 0 已完全出现，order 4（延迟 0.4s）尚未开始
	for i := 0; i < 21; i++ {
		sys.Update(testDT)
	}
	for _, id := range sys.Rings() {
		ring := ringOf(t, em, id)
		pose := PoseOf(ring)
		switch ring.Order {
		case 0:
			if pose.Opacity != 1 {
				t.Errorf("order 0 opacity = %.3f, want 1", pose.Opacity)
			}
		case 4:
			if pose.Opacity != 0 {
				t.Errorf("order 4 opacity = %.3f, want 0", pose.Opacity)
			}
		}
	}
}

func TestLoadingRingTravelLoops(t *testing.T) {
	em, sys := spawnRing(t)

	// 1.5s 时处于半程，easeInOut 在中点为 0.5
	for i := 0; i < 90; i++ {
		sys.Update(testDT)
	}
	for _, id := range sys.Rings() {
		ring := ringOf(t, em, id)
		pose := PoseOf(ring)
		angle := float64(ring.Order) * 72 * math.Pi / 180
		wantX := math.Cos(angle) * 150 * 0.5
		wantY := math.Sin(angle) * 150 * 0.5
		if math.Abs(pose.X-wantX) > 1.5 || math.Abs(pose.Y-wantY) > 1.5 {
			t.Errorf("order %d at 1.5s = (%.2f, %.2f), want about (%.2f, %.2f)", ring.Order, pose.X, pose.Y, wantX, wantY)
		}
		if math.Abs(pose.Rotate-float64(ring.Order)*36) > 1 {
			t.Errorf("order %d rotate = %.2f", ring.Order, pose.Rotate)
		}
		if math.Abs(pose.Scale-0.9) > 0.01 {
			t.Errorf("order %d scale = %.3f, want about 0.9", ring.Order, pose.Scale)
		}
	}

	// 3s 后从中心重新开始
	for i := 0; i < 91; i++ {
		sys.Update(testDT)
	}
	for _, id := range sys.Rings() {
		pose := PoseOf(ringOf(t, em, id))
		if math.Hypot(pose.X, pose.Y) > 5 {
			t.Errorf("ring card did not restart from centre: (%.2f, %.2f)", pose.X, pose.Y)
		}
	}
}

func TestLoadingRingSpin(t *testing.T) {
	em, sys := spawnRing(t)
	for i := 0; i < 60; i++ {
		sys.Update(testDT)
	}
	pose := PoseOf(ringOf(t, em, sys.Rings()[0]))
	if math.Abs(pose.Spin-90) > 1e-6 {
		t.Errorf("spin after 1s = %.3f, want 90", pose.Spin)
	}
}

func TestLoadingRingClear(t *testing.T) {
	em, sys := spawnRing(t)
	sys.Clear()
	if sys.Active() {
		t.Fatal("Active after Clear")
	}
	em.RemoveMarkedEntities()
	if n := len(ecs.GetEntitiesWith1[*components.LoadingRingComponent](em)); n != 0 {
		t.Errorf("%d ring entities remain after Clear", n)
	}

	// 重复 Clear 与重新 Spawn
	sys.Clear()
	sys.Spawn(config.DefaultGalleryData().Photos, nil)
	if len(sys.Rings()) != 5 {
		t.Errorf("respawn created %d ring cards", len(sys.Rings()))
	}
}
