// Command skyhop-term plays skyhop in a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/skyhop/ecs"
	"github.com/milk9111/skyhop/ecs/system"
	"github.com/milk9111/skyhop/prefabs"
)

const tickRate = 16 * time.Millisecond // ~60 FPS

type Game struct {
	screen  tcell.Screen
	world   *ecs.World
	holds   *keyHolds
	watcher *prefabs.Watcher
}

func NewGame(screen tcell.Screen, spec *prefabs.GameSpec, seed int64, watcher *prefabs.Watcher) (*Game, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()
	return &Game{
		screen:  screen,
		world:   system.NewGameWorld(spec, seed),
		holds:   newKeyHolds(),
		watcher: watcher,
	}, nil
}

// handleInput returns false once the player asks to quit.
func (g *Game) handleInput(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev) {
			return false
		}
		if btn, ok := buttonForKey(ev); ok {
			g.holds.Press(btn, now)
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

func (g *Game) tick(now time.Time) {
	if g.watcher != nil {
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

	g.world.Update(g.holds.Buttons(now))
	for _, ev := range g.world.Events().Drain() {
		log.Printf("event: %s %v", ev.Kind, ev.Data)
	}
	render(g.screen, g.world)
}

func (g *Game) run() {
	ticker := time.NewTicker(tickRate)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				// screen finalized
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !g.handleInput(ev, time.Now()) {
				return
			}
		case now := <-ticker.C:
			g.tick(now)
		}
	}
}

func main() {
	seed := flag.Int64("seed", 0, "random seed (0 uses the clock)")
	specPath := flag.String("spec", "", "path to a game spec yaml (defaults to prefabs/game.yaml)")
	watch := flag.Bool("watch", false, "reload the game spec when it changes on disk")
	logPath := flag.String("log", "", "write log output to this file")
	flag.Parse()

	// the terminal belongs to the game, so logs go to a file or nowhere
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	name := prefabs.DefaultSpecFile
	if *specPath != "" {
		prefabs.Dir = filepath.Dir(*specPath)
		name = filepath.Base(*specPath)
	}
	spec, err := prefabs.LoadGameSpec(name)
	if err != nil {
		log.Printf("failed to load game spec: %v; using defaults", err)
		spec = prefabs.DefaultGameSpec()
	}

	var watcher *prefabs.Watcher
	if *watch {
		if watcher, err = prefabs.NewWatcher(name); err != nil {
			log.Printf("watch disabled: %v", err)
			watcher = nil
		} else {
			defer watcher.Close()
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	game, err := NewGame(screen, spec, *seed, watcher)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	game.run()
}
