package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/skyhop/ecs"
	"github.com/milk9111/skyhop/ecs/component"
	"github.com/milk9111/skyhop/prefabs"
	"golang.org/x/image/colornames"
)

// hudRows is the number of rows above the playfield.
const hudRows = 1

// viewport scales the camera window onto the terminal grid.
type viewport struct {
	cols, rows int
	sx, sy     float64
	cam        component.Camera
}

func newViewport(cols, rows int, cam component.Camera) viewport {
	v := viewport{cols: cols, rows: rows, cam: cam}
	if cam.Width > 0 {
		v.sx = float64(cols) / cam.Width
	}
	if cam.Height > 0 && rows > hudRows {
		v.sy = float64(rows-hudRows) / cam.Height
	}
	return v
}

// cells returns the grid span covered by a world rectangle. Spans are at least
// one cell so thin platforms stay visible.
func (v viewport) cells(x, y, w, h float64) (c0, r0, c1, r1 int) {
	sx, sy := v.cam.ToScreen(x, y)
	c0 = int(math.Floor(sx * v.sx))
	r0 = int(math.Floor(sy*v.sy)) + hudRows
	c1 = int(math.Ceil((sx+w)*v.sx)) - 1
	r1 = int(math.Ceil((sy+h)*v.sy)) - 1 + hudRows
	if c1 < c0 {
		c1 = c0
	}
	if r1 < r0 {
		r1 = r0
	}
	return c0, r0, c1, r1
}

func (v viewport) fill(screen tcell.Screen, x, y, w, h float64, ch rune, style tcell.Style) {
	c0, r0, c1, r1 := v.cells(x, y, w, h)
	for r := max(r0, hudRows); r <= r1 && r < v.rows; r++ {
		for c := max(c0, 0); c <= c1 && c < v.cols; c++ {
			screen.SetContent(c, r, ch, nil, style)
		}
	}
}

func paletteStyle(c *prefabs.YAMLColor, fallback color.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.FromImageColor(c.Or(fallback)))
}

func render(screen tcell.Screen, w *ecs.World) {
	screen.Clear()
	cols, rows := screen.Size()
	v := newViewport(cols, rows, w.Camera)
	pal := &w.Spec.Palette

	platformStyle := paletteStyle(pal.Platform, colornames.White)
	w.Platforms.Each(func(_ int, p *component.Platform) {
		v.fill(screen, p.X, p.Y, p.Width, p.Height, '=', platformStyle)
	})

	coinStyle := paletteStyle(pal.Coin, colornames.Gold)
	starStyle := paletteStyle(pal.Star, colornames.Deepskyblue)
	w.Pickups.Each(func(_ int, p *component.Pickup) {
		ch, style := 'o', coinStyle
		if p.Kind == component.Star {
			ch, style = '*', starStyle
		}
		v.fill(screen, p.X, p.Y, p.Width, p.Height, ch, style)
	})

	p := &w.Player
	v.fill(screen, p.X, p.Y, p.Width, p.Height, '@', paletteStyle(pal.Player, colornames.Tomato).Bold(true))

	text := paletteStyle(pal.Text, colornames.White)
	sess := &w.Session
	switch {
	case sess.Mode == component.ModeMenu:
		center(screen, rows/3, "SKYHOP", text.Bold(true))
		center(screen, rows/3+2, "enter or x to start, q to quit", text)
	case sess.GameOver:
		renderGameOver(screen, w, text)
	default:
		putStr(screen, 0, 0, fmt.Sprintf("score %d  coins %d  stars %d  health %d",
			sess.Score, sess.Coins, sess.Stars, sess.Health), text)
		if sess.Paused {
			center(screen, rows/2, "PAUSED", text.Reverse(true))
		}
	}

	screen.Show()
}

func renderGameOver(screen tcell.Screen, w *ecs.World, style tcell.Style) {
	sess := &w.Session
	_, rows := screen.Size()
	if !sess.SummaryShown {
		center(screen, rows/2, "GAME OVER", style.Dim(true))
		return
	}

	row := rows / 4
	center(screen, row, "GAME OVER", style.Bold(true))
	row += 2
	center(screen, row, sess.Report().String(), style)
	row += 2
	if !sess.Entry.Active {
		center(screen, row, "enter: play again  tab: submit", style)
		return
	}

	name := sess.Entry.Name()
	center(screen, row, "enter your initials", style)
	row += 2
	cols, _ := screen.Size()
	left := (cols - 2*len(name)) / 2
	for i := range len(name) {
		s := style
		if i == sess.Entry.Selected {
			s = s.Reverse(true)
		}
		screen.SetContent(left+2*i, row, rune(name[i]), nil, s)
	}
}

func putStr(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func center(screen tcell.Screen, y int, s string, style tcell.Style) {
	cols, _ := screen.Size()
	putStr(screen, (cols-len(s))/2, y, s, style)
}
