package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomz197/gunrunner/internal/asset"
	"github.com/tomz197/gunrunner/internal/audio"
	"github.com/tomz197/gunrunner/internal/audio/synth"
	"github.com/tomz197/gunrunner/internal/config"
	"github.com/tomz197/gunrunner/internal/draw"
	"github.com/tomz197/gunrunner/internal/logging"
	"github.com/tomz197/gunrunner/internal/loop/client"
	gameconfig "github.com/tomz197/gunrunner/internal/loop/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Logs never go to the game's own terminal.
	var logOut io.Writer = io.Discard
	if path := config.GetEnv("GUNRUNNER_LOG", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := logging.New(logOut, config.GetEnv("GUNRUNNER_LOG_LEVEL", "info"))

	fps, ok := config.GetEnvInt("GUNRUNNER_FPS", gameconfig.TickRate)
	if !ok || fps <= 0 {
		logger.Warn("invalid GUNRUNNER_FPS, using default", "default", gameconfig.TickRate)
		fps = gameconfig.TickRate
	}
	audioOn, ok := config.GetEnvBool("GUNRUNNER_AUDIO", true)
	if !ok {
		logger.Warn("invalid GUNRUNNER_AUDIO, audio stays on")
	}

	var sounds audio.Player = audio.Nop{}
	if audioOn {
		sm := synth.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			logger.Warn("audio disabled", "err", err)
		} else {
			defer sm.Close()
		}
		sounds = sm
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog := asset.Unavailable()
	if dir := config.GetEnv("GUNRUNNER_ASSETS", ""); dir != "" {
		catalog = asset.NewCatalog()
		go func() {
			if err := asset.Load(ctx, catalog, asset.FileLoader{FS: os.DirFS(dir)}, logger); err != nil {
				logger.Warn("asset loading stopped", "err", err)
			}
		}()
	}

	restore, err := draw.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return err
	}
	defer restore()

	c := client.NewClient(os.Stdin, os.Stdout, client.ClientOptions{
		Sounds:       sounds,
		Assets:       catalog,
		Logger:       logger,
		TickInterval: time.Second / time.Duration(fps),
	})
	logger.Info("game started", "fps", fps, "audio", audioOn)
	return c.Run(ctx)
}
