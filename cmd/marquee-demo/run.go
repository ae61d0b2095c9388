package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spf13/cobra"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/marquee"
	"github.com/phanxgames/marquee/ebitenhost"
)

const (
	screenW = 640
	screenH = 480
)

var (
	colorBackground = marquee.Color{R: 0.137, G: 0.118, B: 0.176, A: 1}
	colorPanel      = marquee.Color{R: 0.2, G: 0.19, B: 0.25, A: 1}
	colorItem       = marquee.Color{R: 0.85, G: 0.85, B: 0.9, A: 1}
	colorInput      = marquee.Color{R: 0.9, G: 0.6, B: 0.3, A: 1}
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Select rows of a natively scrolled list",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd, buildList)
	},
}

var canvasCmd = &cobra.Command{
	Use:   "canvas",
	Short: "Select tiles on a virtually scrolled canvas",
	Long:  `Tiles live on a bounded canvas panned by a viewport. Press Home to pan back to the origin.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd, buildCanvas)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(canvasCmd)
	rootCmd.RunE = listCmd.RunE
}

// demo is what a builder hands back to runDemo.
type demo struct {
	container *marquee.Node
	opts      marquee.Options
	draw      ebitenhost.DrawOptions
	onUpdate  func(dt float64) error
}

type builder func(doc *marquee.Document, opts marquee.Options) demo

func runDemo(cmd *cobra.Command, build builder) error {
	logger := newLogger(cmd)

	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}

	doc := marquee.NewDocument(screenW, screenH, marquee.WithDocumentLogger(logger))
	if path, _ := cmd.Flags().GetString("script"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		runner, err := marquee.LoadTestScript(data)
		if err != nil {
			return err
		}
		doc.SetTestRunner(runner)
	}

	d := build(doc, opts)

	reg := marquee.NewRegistry(doc, marquee.WithLogger(logger))
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		reg.SetDebugMode(true)
	}
	if err := reg.Init(d.container, d.opts); err != nil {
		return err
	}
	if _, err := reg.On(d.container, marquee.EventSelected, func(ev marquee.Event) {
		logger.Info("selected", "count", len(ev.Elements))
	}); err != nil {
		return err
	}

	d.draw.Style = ebitenhost.DefaultStyle()
	return ebitenhost.Run(doc, ebitenhost.RunConfig{
		Title:      "Marquee - Box Selection",
		Width:      screenW,
		Height:     screenH,
		ShowFPS:    true,
		ClearColor: colorBackground,
		Draw:       d.draw,
		OnUpdate:   d.onUpdate,
	})
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadOptions reads the --config file (if any) and applies explicitly set
// flags over it.
func loadOptions(cmd *cobra.Command) (marquee.Options, error) {
	opts := marquee.DefaultOptions()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return opts, fmt.Errorf("open config: %w", err)
		}
		defer f.Close()
		if opts, err = marquee.LoadOptions(f); err != nil {
			return opts, err
		}
	}

	flags := map[string]string{
		"distance":  "distance",
		"threshold": "scrollingThreshold",
		"speed":     "scrollSpeedMultiplier",
		"filter":    "filter",
	}
	for flag, key := range flags {
		if !cmd.Flags().Changed(flag) {
			continue
		}
		// Set converts the flag's text weakly to the option's type.
		if err := opts.Set(key, cmd.Flags().Lookup(flag).Value.String()); err != nil {
			return opts, fmt.Errorf("--%s: %w", flag, err)
		}
	}
	return opts, nil
}

// buildList lays out a bordered list taller and wider than its box, with a
// few embedded inputs that cancel a gesture started on them.
func buildList(doc *marquee.Document, opts marquee.Options) demo {
	const (
		cols   = 3
		rows   = 60
		cellW  = 180
		cellH  = 28
		margin = 4
	)
	list := marquee.NewContainer("list", 400, 400)
	list.X, list.Y = 120, 40
	list.Border = 2
	list.ScrollbarSize = 10
	list.Clip = true
	list.Color = colorPanel
	list.ScrollWidth = cols * cellW
	list.ScrollHeight = rows * cellH
	doc.Root().AddChild(list)

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			x, y := float64(c*cellW+margin), float64(r*cellH+margin)
			w, h := float64(cellW-2*margin), float64(cellH-2*margin)
			tag := "li"
			if r%10 == 9 && c == 1 {
				tag = "input"
			}
			item := marquee.NewElement(fmt.Sprintf("r%dc%d", r, c), tag, x, y, w, h)
			item.Color = colorItem
			if tag == "input" {
				item.Color = colorInput
			}
			item.AddClass("item")
			list.AddChild(item)
		}
	}

	if opts.Filter == marquee.DefaultOptions().Filter {
		opts.Filter = "li"
	}
	return demo{container: list, opts: opts}
}

// buildCanvas scatters tiles over a bounded canvas and scrolls it with a
// Viewport instead of the container's own scroll.
func buildCanvas(doc *marquee.Document, opts marquee.Options) demo {
	const (
		extent = 2000
		step   = 80
		tile   = 56
	)
	canvas := marquee.NewContainer("canvas", 560, 400)
	canvas.X, canvas.Y = 40, 40
	canvas.Border = 2
	canvas.Clip = true
	canvas.Color = colorPanel
	doc.Root().AddChild(canvas)

	for y := -extent; y < extent; y += step {
		for x := -extent; x < extent; x += step {
			t := marquee.NewElement(fmt.Sprintf("t%d_%d", x, y), "tile",
				float64(x), float64(y), tile, tile)
			t.Color = colorItem
			canvas.AddChild(t)
		}
	}

	vp := marquee.NewViewport(canvas.ClientWidth(), canvas.ClientHeight())
	vp.SetBounds(marquee.Rect{X: -extent, Y: -extent, Width: 2 * extent, Height: 2 * extent})
	opts.Scroller = vp.Factory()
	if opts.Filter == marquee.DefaultOptions().Filter {
		opts.Filter = "tile"
	}

	return demo{
		container: canvas,
		opts:      opts,
		draw: ebitenhost.DrawOptions{
			ContentOffset: func(n *marquee.Node) marquee.Vec2 {
				if n != canvas {
					return marquee.Vec2{}
				}
				return vp.ScrollOffset()
			},
		},
		onUpdate: func(dt float64) error {
			if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
				vp.ScrollTo(0, 0, 0.6, ease.OutCubic)
			}
			vp.Update(float32(dt))
			return nil
		},
	}
}
