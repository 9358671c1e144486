package main

import (
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/skyhop/ecs"
	"github.com/milk9111/skyhop/ecs/component"
	"github.com/milk9111/skyhop/ecs/system"
	"github.com/milk9111/skyhop/prefabs"
)

type Game struct {
	frames int
	debug  bool
	quit   bool

	world   *ecs.World
	watcher *prefabs.Watcher
	pauseUI *ebitenui.UI
	clip    *reportClipboard
}

func NewGame(spec *prefabs.GameSpec, seed int64, watcher *prefabs.Watcher, debug bool) *Game {
	g := &Game{
		debug:   debug,
		world:   system.NewGameWorld(spec, seed),
		watcher: watcher,
		clip:    newReportClipboard(),
	}
	g.pauseUI = NewPauseUI(g)
	if debug {
		log.Printf("game: seed %d", seed)
	}
	return g
}

func (g *Game) Update() error {
	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		return ebiten.Termination
	}

	g.pollWatcher()

	sess := &g.world.Session
	if sess.Paused && !sess.GameOver {
		g.pauseUI.Update()
	}
	if g.quit {
		return ebiten.Termination
	}

	g.world.Update(pollButtons())
	g.handleEvents()

	if sess.GameOver && sess.SummaryShown && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.clip.Copy(sess.Report())
	}

	return nil
}

// pollWatcher hands any reloaded spec to the world without blocking.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	select {
	case spec, ok := <-g.watcher.Specs:
		if ok && spec != nil {
			g.world.SetPendingSpec(spec)
			log.Printf("spec: reloaded, applying on next run")
		}
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("spec: reload failed: %v", err)
		}
	default:
	}
}

func (g *Game) handleEvents() {
	for _, ev := range g.world.Events().Drain() {
		switch ev.Kind {
		case ecs.EventNewGame:
			g.clip.Forget()
			if g.debug {
				log.Printf("event: %s", ev.Kind)
			}
		case ecs.EventGameOver:
			if report, ok := ev.Data.(component.RunReport); ok {
				log.Printf("game over: %s", report)
			}
		case ecs.EventNameEntered:
			log.Printf("name entered: %v (%d points)", ev.Data, g.world.Session.Score)
		default:
			if g.debug {
				if ev.Data != nil {
					log.Printf("event: %s %v", ev.Kind, ev.Data)
				} else {
					log.Printf("event: %s", ev.Kind)
				}
			}
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawWorld(screen, g.world)
	drawHUD(screen, g.world)

	sess := &g.world.Session
	switch {
	case sess.Mode == component.ModeMenu:
		drawMenu(screen, g.world)
	case sess.GameOver:
		drawGameOver(screen, g.world, g.clip)
	case sess.Paused:
		g.pauseUI.Draw(screen)
	}

	if g.debug {
		drawDebug(screen, g.world)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return g.world.Camera.Width, g.world.Camera.Height
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
