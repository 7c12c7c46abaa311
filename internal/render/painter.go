//go:build ebiten

package render

import (
	"image/color"

	"github.com/MichaelDuPlessis/game-of-life/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps one pixel per cell in an offscreen image.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	if w > 0 && h > 0 {
		gp.img = ebiten.NewImage(w, h)
	}
	return gp
}

// Blit uploads the grid into the painter image and draws it scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *life.Grid, on, off color.Color, scale int) {
	if gp.img == nil || g.Width() != gp.w || g.Height() != gp.h {
		return
	}
	fillCellsRGBA(gp.buf, g.Cells(), on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
