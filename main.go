package main

import (
	"flag"
	"log"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/skyhop/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	seed := flag.Int64("seed", 0, "random seed (0 uses the clock)")
	specPath := flag.String("spec", "", "path to a game spec yaml (defaults to prefabs/game.yaml)")
	watch := flag.Bool("watch", false, "reload the game spec when it changes on disk")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	spec, specName := loadSpec(*specPath, *debug)

	var watcher *prefabs.Watcher
	if *watch {
		w, err := prefabs.NewWatcher(specName)
		if err != nil {
			log.Printf("watch disabled: %v", err)
		} else {
			watcher = w
			defer watcher.Close()
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(int(spec.Screen.Width), int(spec.Screen.Height))
	ebiten.SetWindowTitle("skyhop")

	game := NewGame(spec, *seed, watcher, *debug)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// loadSpec reads the tuning file, preferring an explicit path. A path override
// also becomes the prefab directory so the watcher and curve scripts follow it.
func loadSpec(path string, debug bool) (*prefabs.GameSpec, string) {
	name := prefabs.DefaultSpecFile
	if path != "" {
		prefabs.Dir = filepath.Dir(path)
		name = filepath.Base(path)
	}
	if debug {
		if mod, ok := prefabs.ModTime(name); ok {
			log.Printf("spec: using %s from disk (modified %s)", filepath.Join(prefabs.Dir, name), mod.Format(time.RFC3339))
		} else {
			log.Printf("spec: using embedded %s", name)
		}
	}

	spec, err := prefabs.LoadGameSpec(name)
	if err != nil {
		log.Printf("failed to load game spec: %v; using defaults", err)
		return prefabs.DefaultGameSpec(), name
	}
	return spec, name
}
