package systems

import (
	"reflect"
	"testing"

	"github.com/gonewx/gallery/pkg/ecs"
)

func TestTimerFiresAfterDelay(t *testing.T) {
	em := ecs.NewEntityManager()
	ts := NewTimerSystem(em)

	fired := 0
	ts.Schedule("once", 0.5, func() { fired++ })

	ts.Update(0.25)
	if fired != 0 {
		t.Fatalf("timer fired early at 0.25s")
	}
	ts.Update(0.25)
	if fired != 1 {
		t.Fatalf("timer should fire at 0.5s, fired=%d", fired)
	}
	ts.Update(1)
	if fired != 1 {
		t.Errorf("one-shot timer fired again, fired=%d", fired)
	}
	em.RemoveMarkedEntities()
	if ts.Pending() != 0 || em.EntityCount() != 0 {
		t.Errorf("fired timer entity should be removed, pending=%d entities=%d", ts.Pending(), em.EntityCount())
	}
}

func TestTimerAccumulatedFramesReachTarget(t *testing.T) {
	em := ecs.NewEntityManager()
	ts := NewTimerSystem(em)

	firedAt := -1
	ts.Schedule("two_seconds", 2.0, func() { firedAt = 0 })

	for frame := 1; frame <= 120; frame++ {
		ts.Update(1.0 / 60.0)
		if firedAt == 0 {
			firedAt = frame
		}
	}
	if firedAt != 120 {
		t.Errorf("2.0s timer should fire on frame 120 at 60 TPS, fired on %d", firedAt)
	}
}

func TestTimerOrderWithinOneUpdate(t *testing.T) {
	em := ecs.NewEntityManager()
	ts := NewTimerSystem(em)

	var order []string
	ts.Schedule("late", 0.3, func() { order = append(order, "late") })
	ts.Schedule("early", 0.1, func() { order = append(order, "early") })
	ts.Schedule("tie-a", 0.2, func() { order = append(order, "tie-a") })
	ts.Schedule("tie-b", 0.2, func() { order = append(order, "tie-b") })

	ts.Update(1)

	want := []string{"early", "tie-a", "tie-b", "late"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("fire order = %v, want %v", order, want)
	}
}

func TestTimerCancel(t *testing.T) {
	em := ecs.NewEntityManager()
	ts := NewTimerSystem(em)

	fired := false
	h := ts.Schedule("cancelled", 0.1, func() { fired = true })
	ts.Cancel(h)
	ts.Cancel(h) // 重复取消是安全的

	ts.Update(1)
	if fired {
		t.Error("cancelled timer must not fire")
	}
	if ts.Pending() != 0 {
		t.Errorf("pending = %d, want 0", ts.Pending())
	}
}

func TestTimerCancelFromEarlierCallback(t *testing.T) {
	em := ecs.NewEntityManager()
	ts := NewTimerSystem(em)

	var second TimerHandle
	secondFired := false
	ts.Schedule("first", 0.1, func() { ts.Cancel(second) })
	second = ts.Schedule("second", 0.2, func() { secondFired = true })

	// 两个计时器在同一帧到期，先触发的回调取消了后一个
	ts.Update(0.5)
	if secondFired {
		t.Error("timer cancelled by an earlier callback in the same update must not fire")
	}
}

func TestTimerScheduledFromCallbackWaitsForNextUpdate(t *testing.T) {
	em := ecs.NewEntityManager()
	ts := NewTimerSystem(em)

	nested := false
	ts.Schedule("outer", 0, func() {
		ts.Schedule("inner", 0, func() { nested = true })
	})

	ts.Update(0.01)
	if nested {
		t.Error("timer scheduled inside a callback should not fire in the same update")
	}
	ts.Update(0.01)
	if !nested {
		t.Error("nested zero-delay timer should fire on the next update")
	}
}
