package briar

import (
	"image"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Draw paints the widget tree onto screen in painter order. Children draw
// over their parent; siblings draw in ZIndex order with ties keeping child
// order. Viewports clip their children via SubImage, which preserves the
// screen coordinate space.
func (s *Stage) Draw(screen *ebiten.Image) {
	refreshWorldOffsets(s.root, 0, 0, false)
	drawWidget(screen, s.root)
}

func drawWidget(dst *ebiten.Image, w *Widget) {
	if !w.Visible {
		return
	}

	switch w.Type {
	case WidgetPlate:
		drawPlate(dst, w)
	case WidgetImage:
		drawImage(dst, w)
	case WidgetLabel:
		drawLabel(dst, w)
		// WidgetContainer and WidgetViewport have no visual of their own.
	}

	if len(w.children) == 0 {
		return
	}

	target := dst
	if w.Type == WidgetViewport {
		r := w.WorldRect()
		target = dst.SubImage(image.Rect(
			int(r.X), int(r.Y),
			int(r.Right()), int(r.Bottom()),
		)).(*ebiten.Image)
	}
	for _, child := range w.sortedOrder() {
		drawWidget(target, child)
	}
}

// drawPlate fills the widget's rectangle with its color by scaling WhitePixel.
func drawPlate(dst *ebiten.Image, w *Widget) {
	if w.Color.A <= 0 || w.Width <= 0 || w.Height <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(w.Width, w.Height)
	op.GeoM.Translate(w.worldX, w.worldY)
	scaleColor(&op, w.Color)
	dst.DrawImage(WhitePixel, &op)
}

// drawImage draws the widget's image, scaled when Width/Height differ from
// the image's intrinsic size.
func drawImage(dst *ebiten.Image, w *Widget) {
	if w.Image == nil || w.Color.A <= 0 {
		return
	}
	b := w.Image.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	if iw == 0 || ih == 0 {
		return
	}
	var op ebiten.DrawImageOptions
	if w.Width != iw || w.Height != ih {
		op.GeoM.Scale(w.Width/iw, w.Height/ih)
	}
	op.GeoM.Translate(w.worldX, w.worldY)
	scaleColor(&op, w.Color)
	dst.DrawImage(w.Image, &op)
}

// drawLabel draws single-line text with the widget's font. Bitmap fonts draw
// glyph by glyph from the font's atlas page; TTF fonts draw through
// Ebitengine's text/v2.
func drawLabel(dst *ebiten.Image, w *Widget) {
	if w.Text == "" || w.Font == nil || w.Color.A <= 0 {
		return
	}

	textW, _ := w.Font.MeasureString(w.Text)
	var alignOffset float64
	switch w.Align {
	case TextAlignCenter:
		alignOffset = (w.Width - textW) / 2
	case TextAlignRight:
		alignOffset = w.Width - textW
	}

	switch f := w.Font.(type) {
	case *BitmapFont:
		drawBitmapText(dst, w, f, alignOffset)
	case *TTFFont:
		op := &text.DrawOptions{}
		op.GeoM.Translate(w.worldX+alignOffset, w.worldY)
		op.ColorScale.Scale(
			float32(w.Color.R),
			float32(w.Color.G),
			float32(w.Color.B),
			float32(w.Color.A),
		)
		op.LineSpacing = f.lh
		text.Draw(dst, w.Text, f.face, op)
	default:
		// Unknown Font implementations measure but do not draw.
	}
}

func drawBitmapText(dst *ebiten.Image, w *Widget, f *BitmapFont, alignOffset float64) {
	if f.page == nil {
		return
	}
	var cursorX float64
	var prevRune rune
	var hasPrev bool

	for i := 0; i < len(w.Text); {
		r, size := utf8.DecodeRuneInString(w.Text[i:])
		i += size

		g := f.glyph(r)
		if g == nil {
			hasPrev = false
			continue
		}
		if hasPrev {
			cursorX += float64(f.kern(prevRune, r))
		}

		if g.width > 0 && g.height > 0 {
			src := f.page.SubImage(image.Rect(
				int(g.x), int(g.y),
				int(g.x)+int(g.width), int(g.y)+int(g.height),
			)).(*ebiten.Image)
			var op ebiten.DrawImageOptions
			op.GeoM.Translate(
				w.worldX+alignOffset+cursorX+float64(g.xOffset),
				w.worldY+float64(g.yOffset),
			)
			scaleColor(&op, w.Color)
			dst.DrawImage(src, &op)
		}

		cursorX += float64(g.xAdvance)
		prevRune = r
		hasPrev = true
	}
}

// scaleColor applies a premultiplied color scale to draw options.
func scaleColor(op *ebiten.DrawImageOptions, c Color) {
	op.ColorScale.Scale(
		float32(c.R*c.A),
		float32(c.G*c.A),
		float32(c.B*c.A),
		float32(c.A),
	)
}
