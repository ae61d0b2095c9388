package ebitenhost

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/marquee"
)

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
// Every rectangle is drawn by scaling and tinting it.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// Style holds the colors used by Draw.
type Style struct {
	Border     marquee.Color // node borders
	Selected   marquee.Color // fill of nodes carrying the selected class
	BoxFill    marquee.Color
	BoxOutline marquee.Color
	Scrollbar  marquee.Color
}

// DefaultStyle returns the default palette.
func DefaultStyle() Style {
	return Style{
		Border:     marquee.Color{R: 0.35, G: 0.35, B: 0.4, A: 1},
		Selected:   marquee.Color{R: 0.25, G: 0.55, B: 0.95, A: 1},
		BoxFill:    marquee.Color{R: 0.3, G: 0.6, B: 1, A: 0.2},
		BoxOutline: marquee.Color{R: 0.3, G: 0.6, B: 1, A: 0.9},
		Scrollbar:  marquee.Color{R: 0.5, G: 0.5, B: 0.55, A: 0.8},
	}
}

// DrawOptions configures Draw.
type DrawOptions struct {
	Style Style

	// ContentOffset returns an extra translation for the children of
	// container, used when a container scrolls virtually (see
	// marquee.Viewport). The selection glass is never translated, since the
	// selection box is already in view coordinates. Nil means no offset.
	ContentOffset func(container *marquee.Node) marquee.Vec2
}

// Draw renders doc's tree onto dst: node fills and borders, scrollbars of
// scrollable nodes, the selected highlight and the selection box.
func Draw(dst *ebiten.Image, doc *marquee.Document, opts DrawOptions) {
	root := doc.Root()
	drawNode(dst, root, marquee.Vec2{}, &opts)
}

// drawNode draws n whose parent content origin sits at origin, clipping
// children to the client box when n.Clip is set.
func drawNode(dst *ebiten.Image, n *marquee.Node, origin marquee.Vec2, opts *DrawOptions) {
	if !n.Visible {
		return
	}
	box := marquee.Rect{X: origin.X + n.X, Y: origin.Y + n.Y, Width: n.Width, Height: n.Height}

	switch {
	case n.HasClass(marquee.ClassBox):
		fillRect(dst, box, opts.Style.BoxFill)
		strokeRect(dst, box, 1, opts.Style.BoxOutline)
		return
	case n.HasClass(marquee.ClassGlass):
		// transparent
	case n.HasClass(marquee.ClassSelected):
		fillRect(dst, box, opts.Style.Selected)
	default:
		fillRect(dst, box, n.Color)
	}
	if n.Border > 0 {
		strokeRect(dst, box, n.Border, opts.Style.Border)
	}

	client := marquee.Rect{
		X: box.X + n.Border, Y: box.Y + n.Border,
		Width: n.ClientWidth(), Height: n.ClientHeight(),
	}
	if n.Scrollable() && n.ScrollbarSize > 0 {
		drawScrollbars(dst, n, client, opts.Style.Scrollbar)
	}
	if n.NumChildren() == 0 {
		return
	}

	target := dst
	if n.Clip {
		r := image.Rect(int(client.X), int(client.Y), int(client.Right()), int(client.Bottom()))
		target = dst.SubImage(r.Intersect(dst.Bounds())).(*ebiten.Image)
	}
	childOrigin := marquee.Vec2{X: client.X - n.ScrollX, Y: client.Y - n.ScrollY}
	var shifted marquee.Vec2
	if opts.ContentOffset != nil {
		shifted = childOrigin.Add(opts.ContentOffset(n))
	} else {
		shifted = childOrigin
	}
	for _, child := range n.Children() {
		if child.HasClass(marquee.ClassGlass) {
			drawNode(target, child, childOrigin, opts)
			continue
		}
		drawNode(target, child, shifted, opts)
	}
}

// drawScrollbars draws the thumbs of n's scrollbars in the space reserved
// on the right and bottom of client.
func drawScrollbars(dst *ebiten.Image, n *marquee.Node, client marquee.Rect, c marquee.Color) {
	size := n.ScrollbarSize
	if ch := n.ContentHeight(); ch > client.Height {
		thumb := client.Height * client.Height / ch
		y := client.Y + n.ScrollY*client.Height/ch
		fillRect(dst, marquee.Rect{X: client.Right(), Y: y, Width: size, Height: thumb}, c)
	}
	if cw := n.ContentWidth(); cw > client.Width {
		thumb := client.Width * client.Width / cw
		x := client.X + n.ScrollX*client.Width/cw
		fillRect(dst, marquee.Rect{X: x, Y: client.Bottom(), Width: thumb, Height: size}, c)
	}
}

func fillRect(dst *ebiten.Image, r marquee.Rect, c marquee.Color) {
	if r.Width <= 0 || r.Height <= 0 || c.A <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(r.Width, r.Height)
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.ScaleWithColor(c.RGBA())
	dst.DrawImage(ensureWhitePixel(), &op)
}

func strokeRect(dst *ebiten.Image, r marquee.Rect, width float64, c marquee.Color) {
	fillRect(dst, marquee.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: width}, c)
	fillRect(dst, marquee.Rect{X: r.X, Y: r.Bottom() - width, Width: r.Width, Height: width}, c)
	fillRect(dst, marquee.Rect{X: r.X, Y: r.Y, Width: width, Height: r.Height}, c)
	fillRect(dst, marquee.Rect{X: r.Right() - width, Y: r.Y, Width: width, Height: r.Height}, c)
}
