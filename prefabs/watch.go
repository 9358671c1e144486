package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 100 * time.Millisecond

// Watcher reloads a game spec whenever a tuning file or curve script changes on
// disk. Each successfully decoded spec is delivered on Specs; decode and watch
// failures go to Errors.
type Watcher struct {
	watcher  *fsnotify.Watcher
	specName string
	Specs    chan *GameSpec
	Errors   chan error
	closeCh  chan struct{}
	doneCh   chan struct{}
	once     sync.Once
}

// NewWatcher watches dirs (defaults to Dir and its scripts folder) and reloads
// specName on change.
func NewWatcher(specName string, dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if len(dirs) == 0 {
		dirs = []string{Dir, filepath.Join(Dir, "scripts")}
	}
	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher:  w,
		specName: specName,
		Specs:    make(chan *GameSpec, 1),
		Errors:   make(chan error, 1),
		closeCh:  make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.doneCh
		close(w.Specs)
		close(w.Errors)
	})
	return err
}

// run reloads once no relevant event has arrived for reloadDebounce, so an
// editor's truncate-then-write save is read in one piece.
func (w *Watcher) run() {
	defer close(w.doneCh)
	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isSpecFile(event.Name) && !isScriptFile(event.Name) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(reloadDebounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(reloadDebounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			spec, err := LoadGameSpec(w.specName)
			if err != nil {
				w.sendErr(err)
				continue
			}
			w.sendSpec(spec)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendErr(err)
		case <-w.closeCh:
			return
		}
	}
}

// sendSpec keeps only the newest spec when the consumer falls behind.
func (w *Watcher) sendSpec(spec *GameSpec) {
	for {
		select {
		case w.Specs <- spec:
			return
		case <-w.closeCh:
			return
		default:
		}
		select {
		case <-w.Specs:
		default:
		}
	}
}

func (w *Watcher) sendErr(err error) {
	select {
	case w.Errors <- err:
	default:
	}
}

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func isScriptFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".tengo"
}
