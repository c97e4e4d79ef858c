// Command canvas runs the game in a window, or in the browser when built for
// GOOS=js GOARCH=wasm and served by cmd/web.
package main

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/gunrunner/internal/asset"
	"github.com/tomz197/gunrunner/internal/config"
	"github.com/tomz197/gunrunner/internal/logging"
	ebitenbackend "github.com/tomz197/gunrunner/internal/render/ebiten"
)

//go:embed assets
var embedded embed.FS

func main() {
	logger := logging.New(os.Stderr, config.GetEnv("GUNRUNNER_LOG_LEVEL", "info"))

	volume, ok := config.GetEnvFloat("GUNRUNNER_VOLUME", 0.8)
	if !ok {
		logger.Warn("invalid GUNRUNNER_VOLUME, using default", "value", volume)
	}

	// Loading runs alongside the title screen; missing files fall back to
	// placeholders.
	catalog := asset.NewCatalog()
	loader := ebitenbackend.NewLoader(assetFS())
	go func() {
		if err := asset.Load(context.Background(), catalog, loader, logger); err != nil {
			logger.Error("load assets", "err", err)
		}
	}()

	game, err := ebitenbackend.NewGame(ebitenbackend.Options{
		Assets:         catalog,
		Volume:         volume,
		Logger:         logger,
		UseDeviceScale: true,
	})
	if err != nil {
		logger.Fatal("create game", "err", err)
	}

	ebiten.SetWindowTitle("Gunrunner")
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("run game", "err", err)
	}
	logger.Info("game closed", "outcome", game.Session().Outcome())
}

// assetFS returns GUNRUNNER_ASSETS when set, the embedded assets otherwise.
func assetFS() fs.FS {
	if dir := config.GetEnv("GUNRUNNER_ASSETS", ""); dir != "" {
		return os.DirFS(dir)
	}
	sub, err := fs.Sub(embedded, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}
