package systems

import (
	"math"
	"testing"

	"github.com/gonewx/gallery/pkg/ecs"
)

type revealRecord struct {
	event RevealEvent
	at    float64
}

// runReveal 以 60 TPS 推进 seconds 秒，记录每个事件发生的时间
func runReveal(t *testing.T, delay, seconds float64) ([]revealRecord, *RevealSequencer, *TimerSystem) {
	t.Helper()
	em := ecs.NewEntityManager()
	ts := NewTimerSystem(em)
	seq := NewRevealSequencer(ts)

	var records []revealRecord
	seq.OnEvent(func(e RevealEvent) {
		records = append(records, revealRecord{event: e, at: ts.Now()})
	})
	seq.Activate(delay)

	frames := int(math.Round(seconds * 60))
	for i := 0; i < frames; i++ {
		ts.Update(1.0 / 60.0)
		em.RemoveMarkedEntities()
	}
	return records, seq, ts
}

func TestRevealTimeline(t *testing.T) {
	for _, delay := range []float64{0, 0.5, 1.25, 3} {
		records, seq, _ := runReveal(t, delay, delay+3)

		if len(records) != 3 {
			t.Fatalf("delay %v: expected 3 events, got %d", delay, len(records))
		}
		want := []revealRecord{
			{EventLoadingEnded, 2.0},
			{EventVisible, delay + 2.0},
			{EventLoaded, delay + 2.4},
		}
		for i, w := range want {
			got := records[i]
			if got.event != w.event {
				t.Errorf("delay %v: event %d = %s, want %s", delay, i, got.event, w.event)
			}
			// 60 TPS 下最多晚一帧
			if got.at < w.at-1e-9 || got.at > w.at+1.0/60.0+1e-9 {
				t.Errorf("delay %v: %s at %.4fs, want %.4fs", delay, got.event, got.at, w.at)
			}
		}
		if seq.Phase() != PhaseLoaded {
			t.Errorf("delay %v: final phase = %s, want loaded", delay, seq.Phase())
		}
	}
}

func TestRevealScenarioDefaultDelay(t *testing.T) {
	em := ecs.NewEntityManager()
	ts := NewTimerSystem(em)
	seq := NewRevealSequencer(ts)
	seq.Activate(0.5)

	step := func(seconds float64) {
		for i := 0; i < int(math.Round(seconds*60)); i++ {
			ts.Update(1.0 / 60.0)
		}
	}

	step(1.9)
	if !seq.IsLoading() || seq.Phase() != PhaseLoading {
		t.Fatalf("t=1.9s: loading should still be shown, phase=%s", seq.Phase())
	}
	step(0.1)
	if seq.IsLoading() || seq.Phase() != PhaseIdle {
		t.Fatalf("t=2.0s: loading overlay should be hidden, phase=%s", seq.Phase())
	}
	step(0.5)
	if !seq.IsVisible() || seq.Phase() != PhaseVisible {
		t.Fatalf("t=2.5s: container should be visible, phase=%s", seq.Phase())
	}
	step(0.4)
	if !seq.IsLoaded() || seq.Phase() != PhaseLoaded {
		t.Fatalf("t=2.9s: photo cascade should begin, phase=%s", seq.Phase())
	}
}

func TestRevealDeactivateBeforeAnyTimer(t *testing.T) {
	em := ecs.NewEntityManager()
	ts := NewTimerSystem(em)
	seq := NewRevealSequencer(ts)

	mutations := 0
	seq.OnEvent(func(RevealEvent) { mutations++ })
	seq.Activate(0.5)

	ts.Update(1.0)
	seq.Deactivate()
	for i := 0; i < 600; i++ {
		ts.Update(1.0 / 60.0)
	}

	if mutations != 0 {
		t.Errorf("expected no state changes after deactivate, got %d", mutations)
	}
	if !seq.IsLoading() || seq.IsVisible() || seq.IsLoaded() {
		t.Error("flags must keep their initial values after deactivate")
	}
	if ts.Pending() != 0 {
		t.Errorf("all timers should be cancelled, pending=%d", ts.Pending())
	}
}

func TestRevealDeactivateMidSequence(t *testing.T) {
	em := ecs.NewEntityManager()
	ts := NewTimerSystem(em)
	seq := NewRevealSequencer(ts)
	seq.Activate(0.5)

	for i := 0; i < 150; i++ { // 2.5s：Loading 结束、Visible 已触发
		ts.Update(1.0 / 60.0)
	}
	seq.Deactivate()
	for i := 0; i < 300; i++ {
		ts.Update(1.0 / 60.0)
	}

	if !seq.IsVisible() {
		t.Error("visible should have fired before deactivation")
	}
	if seq.IsLoaded() {
		t.Error("loaded must not fire after deactivation")
	}
}

func TestRevealReactivationRestarts(t *testing.T) {
	em := ecs.NewEntityManager()
	ts := NewTimerSystem(em)
	seq := NewRevealSequencer(ts)

	var events []RevealEvent
	seq.OnEvent(func(e RevealEvent) { events = append(events, e) })

	seq.Activate(0.5)
	for i := 0; i < 180; i++ { // 3.0s：全部触发
		ts.Update(1.0 / 60.0)
	}
	if seq.Phase() != PhaseLoaded {
		t.Fatalf("phase = %s, want loaded", seq.Phase())
	}

	seq.Activate(1.0)
	if seq.Phase() != PhaseLoading || !seq.IsLoading() {
		t.Fatalf("re-activation should reset to loading, phase=%s", seq.Phase())
	}
	if ts.Pending() != 3 {
		t.Errorf("re-activation should schedule 3 timers, pending=%d", ts.Pending())
	}

	events = nil
	for i := 0; i < 200; i++ { // 3.33s > 1.0+2.4
		ts.Update(1.0 / 60.0)
	}
	if len(events) != 3 || seq.AnimationDelay() != 1.0 {
		t.Errorf("restarted sequence should emit 3 events, got %v", events)
	}
}

func TestRevealReactivationCancelsOldTimers(t *testing.T) {
	em := ecs.NewEntityManager()
	ts := NewTimerSystem(em)
	seq := NewRevealSequencer(ts)

	seq.Activate(0)
	ts.Update(1.0)
	seq.Activate(5) // 旧序列的 +2.0 / +2.4 不得触发

	ts.Update(1.5) // 距第一次激活 2.5s，距第二次 1.5s
	if !seq.IsLoading() || seq.IsVisible() || seq.IsLoaded() {
		t.Errorf("timers from the first activation leaked: loading=%v visible=%v loaded=%v",
			seq.IsLoading(), seq.IsVisible(), seq.IsLoaded())
	}
}

// 负的 animationDelay 不做校验：Visible/Loaded 会早于 Loading 结束
func TestRevealNegativeDelayInvertsOrder(t *testing.T) {
	records, seq, _ := runReveal(t, -1, 3)

	if len(records) != 3 {
		t.Fatalf("expected 3 events, got %d", len(records))
	}
	got := []RevealEvent{records[0].event, records[1].event, records[2].event}
	want := []RevealEvent{EventVisible, EventLoaded, EventLoadingEnded}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event order = %v, want %v", got, want)
		}
	}
	// 推导阶段不会回退
	if seq.Phase() != PhaseLoaded {
		t.Errorf("phase = %s, want loaded", seq.Phase())
	}
}

func TestRevealPhaseNeverRegresses(t *testing.T) {
	for _, delay := range []float64{-3, -0.3, 0, 0.5, 2} {
		em := ecs.NewEntityManager()
		ts := NewTimerSystem(em)
		seq := NewRevealSequencer(ts)
		seq.Activate(delay)

		last := seq.Phase()
		for i := 0; i < 60*6; i++ {
			ts.Update(1.0 / 60.0)
			p := seq.Phase()
			if p < last {
				t.Fatalf("delay %v: phase regressed from %s to %s", delay, last, p)
			}
			last = p
		}
	}
}

func TestRevealPhaseStrings(t *testing.T) {
	names := map[RevealPhase]string{
		PhaseLoading: "loading", PhaseIdle: "idle", PhaseVisible: "visible", PhaseLoaded: "loaded",
	}
	for p, want := range names {
		if p.String() != want {
			t.Errorf("%d.String() = %q, want %q", p, p.String(), want)
		}
	}
}

func TestRevealPhaseChangeListener(t *testing.T) {
	em := ecs.NewEntityManager()
	ts := NewTimerSystem(em)
	seq := NewRevealSequencer(ts)

	var phases []RevealPhase
	seq.OnPhaseChange(func(p RevealPhase) { phases = append(phases, p) })
	seq.Activate(0.5)

	for i := 0; i < 4*60; i++ {
		ts.Update(1.0 / 60.0)
		em.RemoveMarkedEntities()
	}

	want := []RevealPhase{PhaseIdle, PhaseVisible, PhaseLoaded}
	if len(phases) != len(want) {
		t.Fatalf("phases = %v, want %v", phases, want)
	}
	for i := range want {
		if phases[i] != want[i] {
			t.Errorf("phase %d = %s, want %s", i, phases[i], want[i])
		}
	}
}
