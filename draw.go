package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/skyhop/ecs"
	"github.com/milk9111/skyhop/ecs/component"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

var hudFace = ebtext.NewGoXFace(basicfont.Face7x13)

const (
	lineHeight    = 16
	stripeSpacing = 60
)

func drawWorld(screen *ebiten.Image, w *ecs.World) {
	pal := &w.Spec.Palette
	cam := &w.Camera
	screen.Fill(pal.Background.Or(colornames.Black))

	// backdrop stripes scroll slower than the world
	stripe := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x10}
	for y := math.Mod(cam.BackgroundOffset, stripeSpacing) - stripeSpacing; y < cam.Height; y += stripeSpacing {
		vector.FillRect(screen, 0, float32(y), float32(cam.Width), 2, stripe, false)
	}

	platformColor := pal.Platform.Or(colornames.White)
	w.Platforms.Each(func(_ int, p *component.Platform) {
		x, y := cam.ToScreen(p.X, p.Y)
		vector.FillRect(screen, float32(x), float32(y), float32(p.Width), float32(p.Height), platformColor, false)
	})

	coinColor := pal.Coin.Or(colornames.Gold)
	starColor := pal.Star.Or(colornames.Deepskyblue)
	w.Pickups.Each(func(_ int, p *component.Pickup) {
		x, y := cam.ToScreen(p.X, p.Y)
		clr := coinColor
		if p.Kind == component.Star {
			clr = starColor
		}
		// narrow the sprite through its strip to fake a spin
		inset := 0.0
		if p.Anim.Frames > 1 {
			phase := float64(p.Anim.Frame) / float64(p.Anim.Frames)
			inset = p.Width / 2 * math.Abs(math.Sin(phase*math.Pi))
		}
		vector.FillRect(screen, float32(x+inset/2), float32(y), float32(p.Width-inset), float32(p.Height), clr, true)
	})

	drawPlayer(screen, w)
}

func drawPlayer(screen *ebiten.Image, w *ecs.World) {
	p := &w.Player
	x, y := w.Camera.ToScreen(p.X, p.Y)
	width, height := p.Width, p.Height

	switch p.Animation {
	case component.AnimJump:
		width, height = p.Width*0.85, p.Height*1.1
	case component.AnimSkid:
		width, height = p.Width*1.1, p.Height*0.95
	case component.AnimRun:
		// bob on alternate frames
		if p.Anim.Frame%2 == 1 {
			height = p.Height * 0.95
		}
	}
	x += (p.Width - width) / 2
	y += p.Height - height

	vector.FillRect(screen, float32(x), float32(y), float32(width), float32(height), w.Spec.Palette.Player.Or(colornames.Tomato), false)

	eyeX := x + width*0.65
	if p.Facing == component.FacingLeft {
		eyeX = x + width*0.2
	}
	vector.FillRect(screen, float32(eyeX), float32(y+height*0.15), float32(width*0.15), float32(height*0.1), colornames.Black, false)
}

func drawHUD(screen *ebiten.Image, w *ecs.World) {
	sess := &w.Session
	if sess.Mode == component.ModeMenu {
		return
	}
	clr := w.Spec.Palette.Text.Or(colornames.White)
	drawText(screen, fmt.Sprintf("score %d", sess.Score), 8, 6, clr)
	drawText(screen, fmt.Sprintf("coins %d  stars %d", sess.Coins, sess.Stars), 8, 6+lineHeight, clr)

	hearts := fmt.Sprintf("health %d", sess.Health)
	hw, _ := ebtext.Measure(hearts, hudFace, lineHeight)
	drawText(screen, hearts, w.Camera.Width-hw-8, 6, clr)
}

func drawMenu(screen *ebiten.Image, w *ecs.World) {
	cam := &w.Camera
	vector.FillRect(screen, 0, 0, float32(cam.Width), float32(cam.Height), color.NRGBA{A: 0xa0}, false)

	clr := w.Spec.Palette.Text.Or(colornames.White)
	drawCentered(screen, "SKYHOP", cam.Width, cam.Height/3, clr)
	drawCentered(screen, "press enter or x to start", cam.Width, cam.Height/3+2*lineHeight, clr)
	drawCentered(screen, "arrows move  x jump  esc pause  r restart", cam.Width, cam.Height/3+4*lineHeight, colornames.Gray)
}

func drawGameOver(screen *ebiten.Image, w *ecs.World, clip *reportClipboard) {
	sess := &w.Session
	cam := &w.Camera
	vector.FillRect(screen, 0, 0, float32(cam.Width), float32(cam.Height), color.NRGBA{A: uint8(sess.GameOverFade)}, false)
	if !sess.SummaryShown {
		return
	}

	clr := w.Spec.Palette.Text.Or(colornames.White)
	report := sess.Report()
	y := cam.Height / 4
	drawCentered(screen, "GAME OVER", cam.Width, y, clr)
	y += 2 * lineHeight
	for _, line := range []string{
		fmt.Sprintf("distance %d", report.Distance),
		fmt.Sprintf("coins %d", report.Coins),
		fmt.Sprintf("stars %d", report.Stars),
		fmt.Sprintf("score %d", report.Score),
	} {
		drawCentered(screen, line, cam.Width, y, clr)
		y += lineHeight
	}
	y += lineHeight

	if !sess.Entry.Active {
		drawCentered(screen, "enter: play again  tab: submit", cam.Width, y, clr)
		if clip.Available() {
			drawCentered(screen, "c: copy summary", cam.Width, y+lineHeight, colornames.Gray)
			if clip.Copied() {
				drawCentered(screen, "copied", cam.Width, y+2*lineHeight, colornames.Lightgreen)
			}
		}
		return
	}

	drawCentered(screen, "enter your initials", cam.Width, y, clr)
	y += 2 * lineHeight
	name := sess.Entry.Name()
	slot := 24.0
	left := (cam.Width - slot*float64(len(name))) / 2
	for i := range len(name) {
		x := left + slot*float64(i)
		drawText(screen, name[i:i+1], x+8, y, clr)
		if i == sess.Entry.Selected {
			vector.FillRect(screen, float32(x+4), float32(y+lineHeight), float32(slot-8), 2, clr, false)
		}
	}
	drawCentered(screen, "up/down letter  left/right move  enter done", cam.Width, y+3*lineHeight, colornames.Gray)
}

func drawDebug(screen *ebiten.Image, w *ecs.World) {
	p := &w.Player
	sess := &w.Session
	msg := fmt.Sprintf("FPS: %.2f\nstate %s anim %s\nspeed %.2f vy %.2f\nhighest %.0f diff %.2f scroll %.2f\nplatforms %d pickups %d",
		ebiten.ActualFPS(),
		p.State, p.Animation,
		p.Speed, p.YVelocity,
		sess.Highest, sess.Difficulty, sess.ScrollSpeed,
		w.Platforms.Len(), w.Pickups.Len(),
	)
	ebitenutil.DebugPrintAt(screen, msg, 8, int(w.Camera.Height)-5*lineHeight)
}

func drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	ebtext.Draw(screen, s, hudFace, op)
}

func drawCentered(screen *ebiten.Image, s string, width, y float64, clr color.Color) {
	tw, _ := ebtext.Measure(s, hudFace, lineHeight)
	drawText(screen, s, (width-tw)/2, y, clr)
}
