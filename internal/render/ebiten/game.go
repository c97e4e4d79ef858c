package ebiten

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/gunrunner/internal/asset"
	"github.com/tomz197/gunrunner/internal/audio"
	"github.com/tomz197/gunrunner/internal/input"
	"github.com/tomz197/gunrunner/internal/loop"
	"github.com/tomz197/gunrunner/internal/loop/config"
	"github.com/tomz197/gunrunner/internal/render"
)

// Options configures a Game.
type Options struct {
	Assets *asset.Catalog
	Volume float64
	Logger *log.Logger
	// UseDeviceScale renders at device pixels and scales the game by the
	// device scale factor. When false the scale is always 1.
	UseDeviceScale bool
}

// Game adapts a loop.Session to ebiten.Game.
type Game struct {
	session  *loop.Session
	assets   *asset.Catalog
	surface  *Surface
	pointers pointers
	volume   float64
	sounds   *audio.Switch
	logger   *log.Logger

	useDeviceScale bool
	viewport       config.Viewport
}

var _ ebiten.Game = (*Game)(nil)

// NewGame creates a game waiting for its assets.
func NewGame(opts Options) (*Game, error) {
	surface, err := NewSurface()
	if err != nil {
		return nil, fmt.Errorf("create surface: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	assets := opts.Assets
	if assets == nil {
		assets = asset.Unavailable()
	}

	// Sounds are decoded once assets settle; until then the switch is silent.
	sounds := audio.NewSwitch(audio.Nop{})
	viewport := config.Viewport{Width: 1280, Height: 720, Scale: 1}
	return &Game{
		session: loop.NewSession(loop.SessionOptions{
			ID:       "canvas",
			Viewport: viewport,
			Sounds:   sounds,
			Logger:   logger,
		}),
		assets:         assets,
		surface:        surface,
		pointers:       pointers{pad: input.NewTouchPad(input.NewLayout(viewport.Width, viewport.Height))},
		volume:         opts.Volume,
		sounds:         sounds,
		logger:         logger,
		useDeviceScale: opts.UseDeviceScale,
		viewport:       viewport,
	}, nil
}

// Session returns the game session.
func (g *Game) Session() *loop.Session {
	return g.session
}

// Update advances one tick. Escape quits on desktop.
func (g *Game) Update() error {
	if anyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.session.SetViewport(g.viewport)
	tapped := g.pointers.update()
	start := tapped || anyJustPressed(ebiten.KeyEnter, ebiten.KeyNumpadEnter)

	switch g.session.Phase() {
	case loop.PhaseLoading:
		if g.assets.Ready() {
			g.sounds.Set(NewSounds(g.assets, g.volume, g.logger))
			g.session.AssetsReady()
		}
	case loop.PhaseReady, loop.PhaseEnded:
		if start {
			if err := g.session.Start(); err != nil {
				g.logger.Warn("start session", "err", err)
			}
			g.pointers.pad.Reset()
		}
	case loop.PhaseRunning:
		readKeyboard(&g.session.Intents)
		g.pointers.pad.Apply(&g.session.Intents)
		g.session.Update()
	}
	return nil
}

// Draw renders the current phase.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Target(screen)
	w, h := g.surface.Size()
	big := render.TextOptions{Size: math.Max(28, 48*h/600), Color: render.ColorText, Align: render.AlignCenter}
	small := render.TextOptions{Size: math.Max(16, 24*h/600), Color: render.ColorText, Align: render.AlignCenter}

	switch g.session.Phase() {
	case loop.PhaseLoading:
		g.surface.Fill(render.ColorBackground)
		settled, total := g.assets.Progress()
		g.surface.Text(fmt.Sprintf("Loading %d/%d", settled, total), w/2, h/2, small)
	case loop.PhaseReady:
		g.surface.Fill(render.ColorBackground)
		g.surface.FillRect(0, 0, w, h, render.ColorVeil)
		g.surface.Text("GUNRUNNER", w/2, h/2-g.viewport.Scale*40, big)
		g.surface.Text("Press ENTER or tap to start", w/2, h/2+g.viewport.Scale*30, small)
	default:
		render.Pass(g.surface, g.session.World, g.assets)
		if g.pointers.used && g.session.Phase() == loop.PhaseRunning {
			render.Controls(g.surface, g.pointers.pad)
		}
	}
}

// Layout fits a 16:9 play area into the window and renders it at device
// pixels. The viewport and touch layout follow every change.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := 1.0
	if g.useDeviceScale {
		scale = ebiten.Monitor().DeviceScaleFactor()
	}
	w, h := render.FitAspect(float64(outsideWidth), float64(outsideHeight))
	v := config.Viewport{Width: math.Round(w * scale), Height: math.Round(h * scale), Scale: scale}
	if v != g.viewport {
		g.viewport = v
		g.pointers.pad.Layout = input.NewLayout(v.Width, v.Height)
		g.pointers.pad.Reset()
	}
	return int(v.Width), int(v.Height)
}
