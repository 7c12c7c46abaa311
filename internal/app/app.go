//go:build ebiten

package app

import (
	"image/color"

	"github.com/MichaelDuPlessis/game-of-life/internal/core"
	"github.com/MichaelDuPlessis/game-of-life/internal/render"
	"github.com/MichaelDuPlessis/game-of-life/internal/ui"
	pcore "github.com/MichaelDuPlessis/game-of-life/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 160

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	sess    *core.Session
	painter *render.GridPainter
	hud     *ui.HUD

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided session.
func New(sess *core.Session, scale int, paused bool) *Game {
	size := sess.Size()
	return &Game{
		sess:     sess,
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(hudWidth),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
		paused:   paused,
	}
}

// Reset regenerates the board from seed.
func (g *Game) Reset(seed int64) {
	g.sess.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.sess.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(pcore.ClockSeed())
	}

	if !g.paused || g.tickOnce {
		g.sess.Step()
		g.tickOnce = false
	}
	g.hud.Update(g.sess.Status(g.paused))
	return nil
}

// Draw renders the current generation and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sess.Grid(), g.onColor, g.offColor, g.scale)
	s := g.sess.Size()
	g.hud.Draw(screen, s.W*g.scale, s.H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sess.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
