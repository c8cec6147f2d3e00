package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cart-chase/audio"
	"github.com/lixenwraith/cart-chase/config"
	"github.com/lixenwraith/cart-chase/core"
	"github.com/lixenwraith/cart-chase/input"
	"github.com/lixenwraith/cart-chase/modes"
	"github.com/lixenwraith/cart-chase/parameter"
	"github.com/lixenwraith/cart-chase/render"
)

var (
	configFlag = flag.String("config", "", "TOML config file")
	debugFlag  = flag.Bool("debug", false, "Write logs/cart-chase.log")
	seedFlag   = flag.Uint64("seed", 0, "Simulation seed, 0 picks one")
	muteFlag   = flag.Bool("mute", false, "Disable audio")
	keysFlag   = flag.String("keys", "", "TOML keymap file merged over the bindings")
)

// maxFrameStep caps dt after a stall so bodies never jump across the arena
const maxFrameStep = 0.1

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := core.SetupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Resolve(config.Options{Path: *configFlag, Seed: *seedFlag, Mute: *muteFlag})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config: %v\n", err)
		os.Exit(1)
	}
	keys, err := input.ResolveKeyTable(cfg.Keys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Keys: %v\n", err)
		os.Exit(1)
	}
	if *keysFlag != "" {
		if keys, err = input.LoadKeyFile(*keysFlag, keys); err != nil {
			fmt.Fprintf(os.Stderr, "Keys: %v\n", err)
			os.Exit(1)
		}
	}

	// Audio is optional: failures leave the manager silent
	sounds := audio.NewSoundManager(cfg.Audio)
	if err := sounds.Initialize(); err != nil {
		log.Printf("audio: initialization failed: %v (continuing without audio)", err)
	}
	defer sounds.Cleanup()

	play, err := modes.NewPlayMode(cfg.Seed, keys, modes.NewFactory(cfg, sounds, keys))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start game: %v\n", err)
		os.Exit(1)
	}
	defer play.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashCleanup(screen.Fini)
	defer screen.Fini()

	run(screen, play, keys)
}

// run is the frame loop: input events are serialised onto this goroutine through eventChan
func run(screen tcell.Screen, play *modes.PlayMode, keys input.KeyTable) {
	renderer := render.NewTerminalRenderer(screen)
	presses := modes.NewTerminalInput(keys, parameter.KeyHoldInitial, parameter.KeyHoldRepeat)

	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()
	last := time.Now()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				key := modes.TerminalKey(ev)
				if key == "" {
					continue
				}
				now := time.Now()
				down, fresh := presses.Press(key, now)
				if !fresh {
					continue
				}
				switch play.HandleEvent(down, now) {
				case modes.CommandQuit:
					return
				case modes.CommandRestart:
					// Keys held into the new round would never see their release
					presses.ReleaseAll()
				}
			case *tcell.EventResize:
				renderer.Resize(screen.Size())
				screen.Sync()
			}

		case now := <-frameTicker.C:
			for _, up := range presses.Expire(now) {
				play.HandleEvent(up, now)
			}

			dt := min(now.Sub(last).Seconds(), maxFrameStep)
			last = now
			play.Tick(dt, now)

			renderer.RenderFrame(render.Frame{
				Snapshot: play.Game().Snapshot(),
				Status:   play.Game().Status(),
				Title:    play.Title(),
				Flash:    play.Flash(now),
			})
		}
	}
}
