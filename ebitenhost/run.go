package ebitenhost

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/marquee"
)

// RunConfig configures the window and loop created by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	ShowFPS       bool
	ClearColor    marquee.Color
	Draw          DrawOptions

	// OnUpdate, if set, runs every tick after input has been dispatched.
	// dt is the tick length in seconds. Returning an error stops the loop.
	OnUpdate func(dt float64) error
}

// game implements ebiten.Game for Run.
type game struct {
	doc   *marquee.Document
	input *Input
	cfg   RunConfig
}

func (g *game) Update() error {
	g.input.Update()
	if g.cfg.OnUpdate != nil {
		return g.cfg.OnUpdate(1 / float64(ebiten.TPS()))
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.cfg.ClearColor.A > 0 {
		screen.Fill(g.cfg.ClearColor.RGBA())
	}
	Draw(screen, g.doc, g.cfg.Draw)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *game) Layout(int, int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and runs doc until the window is closed or OnUpdate
// returns an error. For full control, implement ebiten.Game yourself and
// call Input.Update and Draw directly.
func Run(doc *marquee.Document, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		root := doc.Root()
		cfg.Width, cfg.Height = int(root.Width), int(root.Height)
	}
	if cfg.Draw.Style == (Style{}) {
		cfg.Draw.Style = DefaultStyle()
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(&game{doc: doc, input: NewInput(doc), cfg: cfg})
}
