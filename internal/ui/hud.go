//go:build ebiten

package ui

import (
	"image/color"

	"github.com/MichaelDuPlessis/game-of-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 8
	lineHeight   = 16
)

var (
	panelBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor      = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	valueColor      = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	hintColor       = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

var keyHints = []string{
	"space pause",
	"n     step",
	"r     reset",
	"s     new seed",
	"q     quit",
}

// HUD renders the status panel to the right of the grid.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int
	status     core.Status
}

// NewHUD constructs a HUD with the given panel width in pixels.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width}
}

// Width returns the panel width.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update caches the status shown on the next Draw.
func (h *HUD) Update(st core.Status) {
	if h == nil {
		return
	}
	h.status = st
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelBackground)

	face := basicfont.Face7x13
	y := panelPadding + lineHeight
	text.Draw(h.panel, "Life", face, panelPadding, y, titleColor)
	for _, line := range h.status.Lines() {
		y += lineHeight
		text.Draw(h.panel, line, face, panelPadding, y, valueColor)
	}
	y += lineHeight / 2
	for _, hint := range keyHints {
		y += lineHeight
		text.Draw(h.panel, hint, face, panelPadding, y, hintColor)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
