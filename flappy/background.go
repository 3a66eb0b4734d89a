package flappy

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/tmajcher/prizewheel/config"
	"github.com/tmajcher/prizewheel/render"
)

// Background draws the decorative world behind the action: a vertical
// sky gradient, clouds, a far skyline, nearer buildings, trees and the
// scrolling ground, each layer sliding at its own fraction of world
// travel. Everything derives from hashed indices and the game's scroll
// offset, so the scenery is stable for a position and costs no state.
//
// The far layers also carry a slow wall-clock breeze, so the sky keeps
// moving while the simulation itself is paused or frozen on death.
type Background struct {
	render.Toggle

	game   *Game
	cfg    config.GameConfig
	colors Colors

	// Banners are towed behind the plane, one per pass
	Banners []string

	epoch time.Time
	sky   []tcell.Color
}

func NewBackground(game *Game, cfg config.GameConfig, colors Colors) *Background {
	return &Background{
		game:    game,
		cfg:     cfg,
		colors:  colors,
		Banners: []string{"have a lovely day"},
	}
}

// parallax factors per layer, far to near
const (
	cloudDrift    = 0.12
	skylineDrift  = 0.25
	buildingDrift = 0.45
	treeDrift     = 0.80
)

// breeze is ambient motion in cells per wall-clock second; only the
// layers far enough to read as atmosphere get any
const (
	cloudBreeze    = 0.9
	skylineBreeze  = 0.35
	buildingBreeze = 0.12
	planeSpeed     = 30.0
)

func (b *Background) Render(ctx render.Context, buf *render.Buffer) {
	groundY := int(b.game.GroundY())
	if groundY <= 0 || ctx.Width <= 0 {
		return
	}
	if b.epoch.IsZero() {
		b.epoch = ctx.Real
	}
	scroll := b.game.Scroll()
	ambient := ctx.Real.Sub(b.epoch).Seconds()

	sky := b.skyColors(groundY)
	for y := 0; y < groundY; y++ {
		buf.HLine(0, y, ctx.Width, ' ', tcell.StyleDefault.Background(sky[y]))
	}

	b.drawClouds(buf, ctx.Width, groundY, scroll, ambient, sky)
	b.drawSkyline(buf, ctx.Width, groundY, scroll, ambient, sky)
	b.drawBuildings(buf, ctx.Width, groundY, scroll, ambient)
	b.drawTrees(buf, ctx.Width, groundY, scroll)
	b.drawGround(buf, ctx.Width, ctx.Height, groundY, scroll)
	b.drawPlane(buf, ctx.Width, ambient)
}

// skyColors caches the per-row gradient between retunes of the horizon
func (b *Background) skyColors(groundY int) []tcell.Color {
	if len(b.sky) == groundY {
		return b.sky
	}
	b.sky = make([]tcell.Color, groundY)
	for y := 0; y < groundY; y++ {
		t := float64(y) / math.Max(float64(groundY-1), 1)
		b.sky[y] = render.Lerp(b.colors.SkyTop, b.colors.SkyBottom, t)
	}
	return b.sky
}

var cloudSprite = []rune("▗▟██▙▖")

func (b *Background) drawClouds(buf *render.Buffer, w, groundY int, scroll, ambient float64, sky []tcell.Color) {
	span := float64(w + len(cloudSprite) + 8)
	band := groundY/2 - 1
	if band < 1 {
		band = 1
	}
	for i := 0; i < b.cfg.CloudCount; i++ {
		base := hashFloat(i*3+1) * span
		x := int(wrap(base-scroll*cloudDrift-ambient*cloudBreeze, span)) - len(cloudSprite)
		y := 1 + int(hashFloat(i*3+2)*float64(band))
		if y >= groundY {
			continue
		}
		style := tcell.StyleDefault.Foreground(b.colors.Cloud).Background(sky[y])
		for j, r := range cloudSprite {
			buf.Set(x+j, y, r, style)
		}
	}
}

func (b *Background) drawSkyline(buf *render.Buffer, w, groundY int, scroll, ambient float64, sky []tcell.Color) {
	bg := tcell.StyleDefault.Background(b.colors.Skyline)
	for x := 0; x < w; x++ {
		idx := int(math.Floor(float64(x)+scroll*skylineDrift+ambient*skylineBreeze)) >> 2
		hgt := 2 + int(hash(idx)%4)
		for y := groundY - hgt; y < groundY; y++ {
			if y >= 0 {
				buf.Set(x, y, ' ', bg)
			}
		}
		if top := groundY - hgt - 1; top >= 0 {
			buf.Set(x, top, '▄', tcell.StyleDefault.Foreground(b.colors.Skyline).Background(sky[top]))
		}
	}
}

func (b *Background) drawBuildings(buf *render.Buffer, w, groundY int, scroll, ambient float64) {
	bg := tcell.StyleDefault.Background(b.colors.Building)
	win := tcell.StyleDefault.Foreground(b.colors.Window).Background(b.colors.Building)
	for x := 0; x < w; x++ {
		shifted := int(math.Floor(float64(x) + scroll*buildingDrift + ambient*buildingBreeze))
		tower := shifted / 7
		if hash(tower)%3 == 0 {
			continue
		}
		hgt := 3 + int(hash(tower+7919)%5)
		for y := groundY - hgt; y < groundY; y++ {
			if y < 0 {
				continue
			}
			if shifted%7%3 == 1 && (groundY-y)%2 == 0 && hash(tower*31+y)%4 == 0 {
				buf.Set(x, y, '▪', win)
			} else {
				buf.Set(x, y, ' ', bg)
			}
		}
	}
}

func (b *Background) drawTrees(buf *render.Buffer, w, groundY int, scroll float64) {
	y := groundY - 1
	if y < 0 {
		return
	}
	for x := 0; x < w; x++ {
		idx := int(math.Floor(float64(x) + scroll*treeDrift))
		if hashFloat(idx) >= b.cfg.TreeDensity {
			continue
		}
		// keep whatever layer is behind the tree as backdrop
		cell, _ := buf.Get(x, y)
		_, bg, _ := cell.Style.Decompose()
		buf.Set(x, y, '▲', tcell.StyleDefault.Foreground(b.colors.Tree).Background(bg))
	}
}

func (b *Background) drawGround(buf *render.Buffer, w, h, groundY int, scroll float64) {
	dirt := tcell.StyleDefault.Background(b.colors.Dirt)
	for x := 0; x < w; x++ {
		shade := b.colors.Ground
		if (x+int(scroll))%4 >= 2 {
			shade = b.colors.GroundDark
		}
		buf.Set(x, groundY, '▀', tcell.StyleDefault.Foreground(shade).Background(b.colors.Dirt))
	}
	for y := groundY + 1; y < h; y++ {
		buf.HLine(0, y, w, ' ', dirt)
		for x := 0; x < w; x++ {
			if hash(x*131+y)%17 == 0 {
				buf.Set(x, y, '·', tcell.StyleDefault.Foreground(b.colors.GroundDark).Background(b.colors.Dirt))
			}
		}
	}
}

// drawPlane flies on wall time rather than game ticks, so it crosses
// the sky even while the run sits paused or dead. Each pass tows the
// next banner from the pool.
func (b *Background) drawPlane(buf *render.Buffer, w int, ambient float64) {
	if b.cfg.PlaneSeconds <= 0 || len(b.Banners) == 0 {
		return
	}
	cycle := int(ambient / b.cfg.PlaneSeconds)
	progress := ambient - float64(cycle)*b.cfg.PlaneSeconds

	banner := []rune("  ~ " + b.Banners[cycle%len(b.Banners)] + " ~")
	x := w + 2 - int(progress*planeSpeed)
	if x < -(len(banner) + 2) {
		return
	}

	draw := func(col int, r rune, fg tcell.Color) {
		cell, ok := buf.Get(col, 2)
		if !ok {
			return
		}
		_, bg, _ := cell.Style.Decompose()
		buf.Set(col, 2, r, tcell.StyleDefault.Foreground(fg).Background(bg))
	}
	draw(x, '✈', b.colors.Plane)
	for j, r := range banner {
		draw(x+1+j, r, b.colors.Cloud)
	}
}

func wrap(v, span float64) float64 {
	m := math.Mod(v, span)
	if m < 0 {
		m += span
	}
	return m
}

// hash mixes an index into well-spread bits; splitmix finalizer
func hash(n int) uint64 {
	x := uint64(n) * 0x9E3779B97F4A7C15
	x ^= x >> 29
	x *= 0xBF58476D1CE4E5B9
	x ^= x >> 32
	return x
}

func hashFloat(n int) float64 {
	return float64(hash(n)>>11) / (1 << 53)
}
