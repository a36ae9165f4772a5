package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"

	"StageDJ/audio"
	"StageDJ/emulator"
	"StageDJ/emulator/host"
	"StageDJ/feed"
	"StageDJ/processing"
	"StageDJ/repo"

	"github.com/sirkon/errors"
	"github.com/sirkon/message"
)

// speaker adapts the oto player to the state machine's Player.
type speaker struct {
	*audio.Player
}

func (s speaker) Play(src audio.Source) (processing.Playback, error) {
	pb, err := s.Player.Play(src)
	if err != nil {
		return nil, err
	}
	return pb, nil
}

func main() {
	folder, err := repo.SetupPaths()
	if err != nil {
		message.Critical(errors.Wrap(err, "set up StageDJ folder"))
	}

	configPath := flag.String("config", repo.ConfigPath(folder), "path to config.yml")
	feedAddr := flag.String("feed", "", "serve the websocket status feed on this address, overrides config")
	flag.Parse()

	cfg, err := repo.LoadConfig(*configPath)
	if err != nil {
		message.Critical(errors.Wrap(err, "load config"))
	}
	if *feedAddr != "" {
		cfg.Feed = *feedAddr
	}

	volume := processing.VolumePolicy{Base: cfg.Volume, PausedMultiplier: cfg.PausedMultiplier}
	machine := processing.NewMachine(cfg, speaker{audio.NewPlayer(volume.Base)}, volume)

	var observers []processing.Observer

	if path := cfg.HooksPath(); path != "" {
		hooks := processing.NewHooks()
		defer hooks.Close()
		if err := hooks.LoadFile(path); err != nil {
			message.Critical(errors.Wrap(err, "load hooks"))
		}
		observers = append(observers, hooks)
	}

	if cfg.Feed != "" {
		hub := feed.NewHub()
		defer hub.Close()
		go func() {
			message.Infof("status feed on ws://%s", cfg.Feed)
			if err := http.ListenAndServe(cfg.Feed, hub); err != nil {
				message.Errorf("status feed: %s", err)
			}
		}()
		observers = append(observers, hub)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := NewApp(
		emulator.NewLocator(host.New(), cfg.Process),
		cfg.MemoryLayout(),
		machine,
		cfg.PollEvery(),
		cfg.BackoffEvery(),
		observers...,
	)

	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		message.Error(err)
	}
}
