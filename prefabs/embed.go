package prefabs

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

//go:embed *.yaml scripts/*.tengo
var files embed.FS

// Dir is the on-disk prefab directory checked before the embedded copies.
var Dir = "prefabs"

const scriptsDir = "scripts"

// Load returns a tuning file, preferring the copy under Dir so edits apply
// without a rebuild.
func Load(name string) ([]byte, error) {
	return read(cleanPath(name))
}

// LoadScript returns a curve script. Names may omit the scripts/ folder.
func LoadScript(name string) ([]byte, error) {
	clean := cleanPath(name)
	if !strings.HasPrefix(clean, scriptsDir+"/") {
		clean = path.Join(scriptsDir, clean)
	}
	return read(clean)
}

// ModTime reports when the on-disk copy of name last changed. ok is false when
// only the embedded copy exists.
func ModTime(name string) (time.Time, bool) {
	info, err := os.Stat(diskPath(cleanPath(name)))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func read(clean string) ([]byte, error) {
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return fs.ReadFile(files, clean)
}

// cleanPath turns "prefabs/x.yaml", "./x.yaml" or "x.yaml" into the embedded
// name "x.yaml".
func cleanPath(name string) string {
	if name == "" {
		return ""
	}
	s := path.Clean(filepath.ToSlash(name))
	s = strings.TrimPrefix(s, "prefabs/")
	return s
}

func diskPath(clean string) string {
	return filepath.Join(Dir, filepath.FromSlash(clean))
}
