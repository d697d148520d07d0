// Package main provides a headless timeline tool for the gallery reveal sequence.
//
// Usage:
//
//	go run ./cmd/verify_reveal [flags]
//
// Flags:
//
//	--delay <s>      Animation delay (default: 0.5)
//	--duration <s>   Simulated time (default: 6)
//	--data <dir>     Directory containing data/gallery.yaml (default: built-in data)
//	--exit-at <s>    Leave the scene at this time, 0 keeps it active (default: 0)
//	--verbose        Enable verbose logging
//
// Purpose:
//   - Print phase transitions, per-card cascade start times and stagger appearances at 60 TPS
//   - Check that leaving the scene cancels pending transitions
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/gonewx/gallery/pkg/components"
	"github.com/gonewx/gallery/pkg/config"
	"github.com/gonewx/gallery/pkg/ecs"
	"github.com/gonewx/gallery/pkg/embedded"
	"github.com/gonewx/gallery/pkg/game"
	"github.com/gonewx/gallery/pkg/scenes"
	"github.com/gonewx/gallery/pkg/systems"
	"github.com/gonewx/gallery/pkg/utils"
)

var (
	delayFlag    = flag.Float64("delay", config.DefaultAnimationDelay, "Animation delay in seconds")
	durationFlag = flag.Float64("duration", 6, "Simulated time in seconds")
	dataFlag     = flag.String("data", "", "Directory containing data/gallery.yaml")
	exitAtFlag   = flag.Float64("exit-at", 0, "Leave the scene at this time (0 = never)")
	verboseFlag  = flag.Bool("verbose", false, "Enable verbose logging")
)

// idlePointer 始终不在屏幕上的指针
type idlePointer struct{}

func (idlePointer) Pointer() utils.PointerState { return utils.PointerState{} }

func loadData() (*config.GalleryData, error) {
	if *dataFlag == "" {
		return config.DefaultGalleryData(), nil
	}
	embedded.Init(os.DirFS(*dataFlag), *dataFlag)
	return config.LoadGalleryData(config.GalleryDataPath)
}

func main() {
	flag.Parse()

	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	data, err := loadData()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load gallery data: %v\n", err)
		os.Exit(1)
	}

	scene, err := scenes.NewGalleryScene(scenes.GalleryOptions{
		Data:           data,
		AnimationDelay: *delayFlag,
		Pointer:        idlePointer{},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "create scene: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("=== Reveal timeline (delay %.2fs, %d photos) ===\n", *delayFlag, len(data.Photos))

	scene.Sequencer().OnPhaseChange(func(p systems.RevealPhase) {
		fmt.Printf("%7.3fs  phase -> %s\n", scene.Now(), p)
	})

	sm := game.NewSceneManager()
	sm.SwitchTo(scene)

	em := scene.EntityManager()
	started := make(map[ecs.EntityID]bool)
	appeared := make(map[ecs.EntityID]bool)
	faded := false
	exited := false

	frames := int(math.Round(*durationFlag / config.FixedDeltaTime))
	for i := 0; i < frames; i++ {
		sm.Update(config.FixedDeltaTime)

		if !exited && *exitAtFlag > 0 && scene.Now()+1e-9 >= *exitAtFlag {
			sm.Close()
			exited = true
			fmt.Printf("%7.3fs  scene exited\n", scene.Now())
		}

		if !faded && scene.Opacity() >= 1 {
			faded = true
			fmt.Printf("%7.3fs  container fully visible\n", scene.Now())
		}

		for _, id := range scene.Cards() {
			card, ok := ecs.GetComponent[*components.PhotoCardComponent](em, id)
			if !ok {
				continue
			}
			if card.CascadeStarted && !started[id] {
				started[id] = true
				fmt.Printf("%7.3fs  photo %d (order %d) springs towards (%.0f, %.0f), tilt %+.2f°\n",
					scene.Now(), card.Descriptor.ID, card.Descriptor.Order,
					card.Descriptor.XOffset, card.Descriptor.YOffset, card.TiltAngle)
			}
			if card.Appeared && !appeared[id] {
				appeared[id] = true
				fmt.Printf("%7.3fs  photo %d appears (child %d, stagger %.2fs)\n",
					scene.Now(), card.Descriptor.ID, card.ChildIndex, card.AppearDelay)
			}
		}
	}

	fmt.Println()
	fmt.Println("=== Final card offsets ===")
	for _, id := range scene.Cards() {
		card, _ := ecs.GetComponent[*components.PhotoCardComponent](em, id)
		transform, _ := ecs.GetComponent[*components.CardTransformComponent](em, id)
		fmt.Printf("photo %d: (%7.2f, %7.2f) rotate %+.2f°\n", card.Descriptor.ID,
			transform.OffsetX.Get(), transform.OffsetY.Get(), transform.Rotation())
	}

	seq := scene.Sequencer()
	fmt.Printf("\nloading=%v visible=%v loaded=%v\n", seq.IsLoading(), seq.IsVisible(), seq.IsLoaded())
}
