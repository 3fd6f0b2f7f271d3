package rainstorm

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/rainstorm/internal/core"
	"github.com/vovakirdan/rainstorm/internal/games/rainstorm/weather"
)

// Visual characters for rendering
const (
	RainChar      = '|'
	SplashChar    = '.'
	SplashWide    = '~'
	BoltChar      = '*'
	SkyFlashChar  = '░'
	GroundChar    = '.'
	MuzzleChar    = '*'
	HealthFull    = '█'
	HealthEmpty   = '░'
	healthBarSize = 10
)

// sprite is three rows drawn bottom-aligned on the actor's feet, facing right.
type sprite [3]string

var mirrorRunes = strings.NewReplacer(
	"/", `\`, `\`, "/",
	"(", ")", ")", "(",
	"<", ">", ">", "<",
)

// mirror flips a sprite to face left.
func (s sprite) mirror() sprite {
	var out sprite
	for i, row := range s {
		r := []rune(mirrorRunes.Replace(row))
		for a, b := 0, len(r)-1; a < b; a, b = a+1, b-1 {
			r[a], r[b] = r[b], r[a]
		}
		out[i] = string(r)
	}
	return out
}

func playerSprite(state PlayerState, frame int) sprite {
	switch state {
	case PlayerWalking:
		if frame%2 == 0 {
			return sprite{" o ", "/|=", "/ \\"}
		}
		return sprite{" o ", "/|=", " | "}
	case PlayerRunning:
		if frame%2 == 0 {
			return sprite{" o ", "-|=", "/ >"}
		}
		return sprite{" o ", "-|=", "< \\"}
	case PlayerShooting:
		return sprite{" o ", "-|=", "/ \\"}
	case PlayerRecharging:
		if frame%2 == 0 {
			return sprite{" o ", "/|_", "/ \\"}
		}
		return sprite{" o ", "/|-", "/ \\"}
	case PlayerDying:
		switch {
		case frame == 0:
			return sprite{" o ", "/|\\", "/ \\"}
		case frame == 1:
			return sprite{"   ", " o ", "/|\\"}
		case frame == 2:
			return sprite{"   ", "   ", "o|\\"}
		default:
			return sprite{"   ", "   ", "o__"}
		}
	default:
		return sprite{" o ", "/|=", "/ \\"}
	}
}

func enemySprite(state EnemyState, frame int) sprite {
	switch state {
	case EnemyAttacking:
		if frame >= attackHitFrame {
			return sprite{" @ ", " |=", "/ \\"}
		}
		return sprite{" @ ", " |-", "/ \\"}
	case EnemyDying:
		switch {
		case frame < 3:
			return sprite{" @ ", "/|\\", "/ \\"}
		case frame < 6:
			return sprite{"   ", " @ ", "/|\\"}
		default:
			return sprite{"   ", "   ", "@__"}
		}
	case EnemyDead:
		return sprite{"   ", "   ", "x__"}
	default:
		if frame%2 == 0 {
			return sprite{" @ ", " |-", "/ \\"}
		}
		return sprite{" @ ", " |-", " | "}
	}
}

// drawSprite draws s with its bottom-center cell at (cx, cy). Spaces are
// transparent.
func drawSprite(dst *core.Screen, s sprite, cx, cy int, c core.Color) {
	for row, line := range s {
		y := cy - (len(s) - 1) + row
		for col, r := range []rune(line) {
			if r == ' ' {
				continue
			}
			dst.SetColored(cx-1+col, y, r, c)
		}
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	w := g.world
	g.drawGround(dst)
	if s := w.Storm(); s != nil {
		g.drawStorm(dst, s)
	}

	for _, e := range w.Enemies().Snapshot() {
		g.drawEnemy(dst, e)
	}
	g.drawPlayer(dst, w.Player())
	g.drawHUD(dst)

	switch {
	case w.Player().DeathPrompt():
		drawMessageBox(dst, core.ColorBrightRed,
			"You Died!",
			fmt.Sprintf("Score: %d  Kills: %d", w.Player().Score(), w.Kills()),
			"Press R to Restart",
			"Press Q to Exit")
	case g.paused:
		drawMessageBox(dst, core.ColorBrightWhite, "PAUSED", "Press P to resume")
	}
}

func (g *Game) bandRows() (int, int) {
	_, h := g.bounds.Size()
	top, bottom := groundBand(g.cfg.World.GroundTop, g.cfg.World.GroundBottom, h)
	_, topRow := g.bounds.ToCell(core.Vec2{Y: top})
	_, bottomRow := g.bounds.ToCell(core.Vec2{Y: bottom})
	return topRow, bottomRow
}

func (g *Game) drawGround(dst *core.Screen) {
	topRow, bottomRow := g.bandRows()
	for y := topRow - 1; y <= bottomRow; y++ {
		for x := 0; x < dst.Width(); x++ {
			if (x+2*y)%5 == 0 {
				dst.SetColored(x, y, GroundChar, core.ColorDarkGray)
			}
		}
	}
}

func (g *Game) drawStorm(dst *core.Screen, s *weather.Storm) {
	topRow, _ := g.bandRows()

	if s.Flashing() {
		for y := 1; y < topRow-1; y++ {
			dst.DrawHLine(0, y, dst.Width(), SkyFlashChar, core.ColorGray)
		}
	}

	for _, b := range s.Bolts() {
		for i := 1; i < len(b.Points); i++ {
			x0, y0 := g.bounds.ToCell(b.Points[i-1])
			x1, y1 := g.bounds.ToCell(b.Points[i])
			dst.DrawLine(x0, y0, x1, y1, BoltChar, core.ColorBrightYellow)
		}
	}

	for _, d := range s.Drops() {
		x, y := g.bounds.ToCell(d.Pos)
		if y >= 1 {
			dst.SetColored(x, y, RainChar, core.ColorBlue)
		}
	}

	for _, sp := range s.Splashes() {
		x, y := g.bounds.ToCell(sp.Pos)
		dst.SetColored(x, y, SplashChar, core.ColorCyan)
		if sp.Radius > g.bounds.UnitsPerCol/2 {
			dst.SetColored(x-1, y, SplashWide, core.ColorCyan)
			dst.SetColored(x+1, y, SplashWide, core.ColorCyan)
		}
	}
}

func (g *Game) drawEnemy(dst *core.Screen, e EnemySnapshot) {
	s := enemySprite(e.State, e.Frame)
	if e.FacingLeft {
		s = s.mirror()
	}

	color := core.ColorGreen
	switch e.State {
	case EnemyAttacking:
		color = core.ColorBrightGreen
	case EnemyDying, EnemyDead:
		color = core.ColorGray
	}

	x, y := g.bounds.ToCell(e.Pos)
	drawSprite(dst, s, x, y, color)
}

func (g *Game) drawPlayer(dst *core.Screen, p *Player) {
	s := playerSprite(p.State(), p.Frame())
	if p.FacingLeft() {
		s = s.mirror()
	}

	color := core.ColorBrightWhite
	if p.IsHit() || p.IsDead() {
		color = core.ColorBrightRed
	}

	x, y := g.bounds.ToCell(p.Position())
	drawSprite(dst, s, x, y, color)

	if p.State() == PlayerShooting && p.Frame() == shotEffectFrame {
		mx := x + 2
		if p.FacingLeft() {
			mx = x - 2
		}
		dst.SetColored(mx, y-1, MuzzleChar, core.ColorBrightYellow)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	p := g.world.Player()

	filled := 0
	if p.MaxHealth() > 0 {
		filled = p.Health() * healthBarSize / p.MaxHealth()
	}
	barColor := core.ColorGreen
	switch {
	case p.Health()*4 <= p.MaxHealth():
		barColor = core.ColorRed
	case p.Health()*2 <= p.MaxHealth():
		barColor = core.ColorYellow
	}

	x := 1
	dst.DrawText(x, 0, "HP ")
	x += 3
	bar := strings.Repeat(string(HealthFull), filled) + strings.Repeat(string(HealthEmpty), healthBarSize-filled)
	dst.DrawTextColored(x, 0, bar, barColor)
	x += healthBarSize + 1

	ammo := fmt.Sprintf("Ammo %d/%d", p.Ammo(), p.Magazine())
	if p.IsRecharging() {
		dst.DrawTextColored(x, 0, "RELOADING", core.ColorYellow)
		x += len("RELOADING") + 2
	} else {
		ammoColor := core.ColorDefault
		if p.Ammo() == 0 {
			ammoColor = core.ColorRed
		}
		dst.DrawTextColored(x, 0, ammo, ammoColor)
		x += len(ammo) + 2
	}

	stats := fmt.Sprintf("Score %d  Kills %d  Lvl %d", p.Score(), g.world.Kills(), g.world.Enemies().Level())
	dst.DrawText(x, 0, stats)
}

// drawMessageBox draws a framed message in the center of the screen with
// the first line as the title.
func drawMessageBox(dst *core.Screen, titleColor core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	boxW := width + 4
	boxH := len(lines) + 3
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	r := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(r, ' ')
	dst.DrawBox(r)

	for i, l := range lines {
		y := boxY + 1 + i
		if i > 0 {
			y++ // gap under the title
		}
		c := core.ColorDefault
		if i == 0 {
			c = titleColor
		}
		dst.DrawTextColored(boxX+(boxW-len(l))/2, y, l, c)
	}
}
