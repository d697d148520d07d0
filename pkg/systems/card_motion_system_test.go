package systems

import (
	"math"
	"testing"

	"github.com/gonewx/gallery/pkg/config"
	"github.com/gonewx/gallery/pkg/ecs"
)

func TestCascadeStartTimes(t *testing.T) {
	em := ecs.NewEntityManager()
	ids := createTestCards(t, em)
	sys := NewCardMotionSystem(em)

	sys.Update(testDT)
	for _, id := range ids {
		if mustCard(t, em, id).CascadeStarted {
			t.Fatal("cascade must not start before StartCascade")
		}
	}

	sys.StartCascade()
	if !sys.CascadeRunning() {
		t.Fatal("CascadeRunning = false after StartCascade")
	}

	started := make(map[int]float64)
	elapsed := 0.0
	record := func() {
		for _, id := range ids {
			card := mustCard(t, em, id)
			if _, ok := started[card.Descriptor.Order]; !ok && card.CascadeStarted {
				started[card.Descriptor.Order] = elapsed
			}
		}
	}
	record()
	for frame := 0; frame < 60; frame++ {
		sys.Update(testDT)
		elapsed += testDT
		record()
	}

	for order := 0; order < 5; order++ {
		at, ok := started[order]
		if !ok {
			t.Fatalf("order %d never started", order)
		}
		want := float64(order) * 0.15
		if math.Abs(at-want) > testDT/2 {
			t.Errorf("order %d started at %.3fs, want %.3fs", order, at, want)
		}
	}
}

func TestCascadeHoldsOriginUntilDelay(t *testing.T) {
	em := ecs.NewEntityManager()
	ids := createTestCards(t, em)
	sys := NewCardMotionSystem(em)
	sys.StartCascade()

	// 0.5s 时 order 4（延迟 0.6s）仍在原点
	for i := 0; i < 30; i++ {
		sys.Update(testDT)
	}
	for _, id := range ids {
		card := mustCard(t, em, id)
		transform := mustTransform(t, em, id)
		if card.Descriptor.Order == 4 {
			if transform.OffsetX.Get() != 0 || transform.OffsetY.Get() != 0 {
				t.Errorf("order 4 moved early: (%.2f, %.2f)", transform.OffsetX.Get(), transform.OffsetY.Get())
			}
		}
		if card.Descriptor.Order == 0 && transform.OffsetX.Get() == 0 {
			t.Error("order 0 has not moved after 0.5s")
		}
	}
}

func TestCascadeSettlesAtOffsets(t *testing.T) {
	em := ecs.NewEntityManager()
	ids := createTestCards(t, em)
	sys := NewCardMotionSystem(em)
	sys.StartCascade()

	for i := 0; i < 5*60; i++ {
		sys.Update(testDT)
	}
	for _, id := range ids {
		card := mustCard(t, em, id)
		transform := mustTransform(t, em, id)
		if math.Abs(transform.OffsetX.Get()-card.Descriptor.XOffset) > 0.05 ||
			math.Abs(transform.OffsetY.Get()-card.Descriptor.YOffset) > 0.05 {
			t.Errorf("photo %d at (%.2f, %.2f), want (%.0f, %.0f)", card.Descriptor.ID,
				transform.OffsetX.Get(), transform.OffsetY.Get(), card.Descriptor.XOffset, card.Descriptor.YOffset)
		}
		if !card.Appeared {
			t.Errorf("photo %d never appeared", card.Descriptor.ID)
		}
	}
}

func TestCascadeOvershoots(t *testing.T) {
	em := ecs.NewEntityManager()
	ids := createTestCards(t, em)
	sys := NewCardMotionSystem(em)
	sys.StartCascade()

	// 欠阻尼弹簧（ζ≈0.72）会越过目标
	var order0 ecs.EntityID
	for _, id := range ids {
		if mustCard(t, em, id).Descriptor.Order == 0 {
			order0 = id
		}
	}
	minX := 0.0
	for i := 0; i < 2*60; i++ {
		sys.Update(testDT)
		minX = math.Min(minX, mustTransform(t, em, order0).OffsetX.Get())
	}
	if minX >= -320 {
		t.Errorf("expected overshoot past -320, min x = %.2f", minX)
	}
}

func TestAppearStagger(t *testing.T) {
	em := ecs.NewEntityManager()
	ids := createTestCards(t, em)
	sys := NewCardMotionSystem(em)
	sys.StartCascade()

	appeared := make(map[int]float64)
	elapsed := 0.0
	for frame := 0; frame < 60; frame++ {
		sys.Update(testDT)
		elapsed += testDT
		for _, id := range ids {
			card := mustCard(t, em, id)
			if _, ok := appeared[card.ChildIndex]; !ok && card.Appeared {
				appeared[card.ChildIndex] = elapsed
			}
		}
	}
	for child := 0; child < 5; child++ {
		want := config.AppearDelay(child)
		at := appeared[child]
		if math.Abs(at-want) > testDT/2 {
			t.Errorf("child %d appeared at %.3fs, want %.3fs", child, at, want)
		}
	}
}

func TestResetCascade(t *testing.T) {
	em := ecs.NewEntityManager()
	ids := createTestCards(t, em)
	sys := NewCardMotionSystem(em)
	sys.StartCascade()
	for i := 0; i < 3*60; i++ {
		sys.Update(testDT)
	}

	sys.ResetCascade()
	if sys.CascadeRunning() {
		t.Fatal("CascadeRunning = true after ResetCascade")
	}
	for i := 0; i < 2*60; i++ {
		sys.Update(testDT)
	}
	for _, id := range ids {
		card := mustCard(t, em, id)
		transform := mustTransform(t, em, id)
		if math.Abs(transform.OffsetX.Get()) > 0.05 || math.Abs(transform.OffsetY.Get()) > 0.05 {
			t.Errorf("photo %d not back at origin: (%.2f, %.2f)", card.Descriptor.ID,
				transform.OffsetX.Get(), transform.OffsetY.Get())
		}
		if card.CascadeStarted || card.Appeared {
			t.Errorf("photo %d flags not reset", card.Descriptor.ID)
		}
	}
}
