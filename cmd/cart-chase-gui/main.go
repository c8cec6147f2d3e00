package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lixenwraith/cart-chase/audio"
	"github.com/lixenwraith/cart-chase/config"
	"github.com/lixenwraith/cart-chase/core"
	"github.com/lixenwraith/cart-chase/gui"
	"github.com/lixenwraith/cart-chase/input"
	"github.com/lixenwraith/cart-chase/modes"
)

var (
	configFlag = flag.String("config", "", "TOML config file")
	debugFlag  = flag.Bool("debug", false, "Write logs/cart-chase.log")
	seedFlag   = flag.Uint64("seed", 0, "Simulation seed, 0 picks one")
	muteFlag   = flag.Bool("mute", false, "Disable audio")
	keysFlag   = flag.String("keys", "", "TOML keymap file merged over the bindings")
)

func main() {
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

	if err := gui.NewWindow(play).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Window: %v\n", err)
		os.Exit(1)
	}
}
