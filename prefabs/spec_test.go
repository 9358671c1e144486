package prefabs

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

func useDir(t *testing.T, dir string) {
	t.Helper()
	prev := Dir
	Dir = dir
	t.Cleanup(func() { Dir = prev })
}

func TestEmbeddedGameSpec(t *testing.T) {
	useDir(t, t.TempDir())
	spec, err := LoadGameSpec(DefaultSpecFile)
	if err != nil {
		t.Fatalf("load embedded spec: %v", err)
	}
	if spec.Screen.Width != 400 || spec.Screen.Height != 600 {
		t.Fatalf("screen %+v", spec.Screen)
	}
	if spec.Player.JumpHoldFrames != 0 || spec.Player.JumpPower != 20 {
		t.Fatalf("player %+v", spec.Player)
	}
	if spec.Curves.Scroll.Script != "scroll.tengo" || spec.LegacyDoubleAccel {
		t.Fatalf("curves %+v legacy %v", spec.Curves, spec.LegacyDoubleAccel)
	}
	if len(spec.Spawner.Widths) != 11 || spec.Spawner.Widths[0] != 100 || spec.Spawner.Widths[10] != 200 {
		t.Fatalf("widths %v", spec.Spawner.Widths)
	}
	if _, err := LoadScript(spec.Curves.Scroll.Script); err != nil {
		t.Fatalf("scroll script: %v", err)
	}
}

func TestDecodeOverlaysDefaults(t *testing.T) {
	spec, err := DecodeGameSpec([]byte("player:\n  max_speed: 7\nspawner:\n  widths: [80, 90]\n  width_jitter: 10\n"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if spec.Player.MaxSpeed != 7 || spec.Player.JumpPower != 20 {
		t.Fatalf("player %+v", spec.Player)
	}
	if len(spec.Spawner.Widths) != 2 || spec.Spawner.Lanes != 5 {
		t.Fatalf("spawner %+v", spec.Spawner)
	}

	if _, err := DecodeGameSpec([]byte("player: [")); err == nil {
		t.Fatalf("expected yaml error")
	}
	if _, err := DecodeGameSpec([]byte("pools:\n  platform_capacity: 2\n")); !errors.Is(err, ErrInvalidSpec) {
		t.Fatalf("expected ErrInvalidSpec, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(s *GameSpec)
	}{
		{"screen", func(s *GameSpec) { s.Screen.Width = 0 }},
		{"player_size", func(s *GameSpec) { s.Player.Height = -1 }},
		{"speed", func(s *GameSpec) { s.Player.Deceleration = 0 }},
		{"gravity", func(s *GameSpec) { s.Player.Gravity = 0 }},
		{"hold_frames", func(s *GameSpec) { s.Player.JumpHoldFrames = -1 }},
		{"health", func(s *GameSpec) { s.Player.Health = 0 }},
		{"animation", func(s *GameSpec) { s.Player.Animation.Run = 0 }},
		{"pool", func(s *GameSpec) { s.Pools.PlatformCapacity = 3 }},
		{"increment", func(s *GameSpec) { s.Spawner.PlatformIncrement = 0 }},
		{"no_widths", func(s *GameSpec) { s.Spawner.Widths = nil }},
		{"jitter_too_wide", func(s *GameSpec) { s.Spawner.WidthJitter = 100 }},
		{"lanes", func(s *GameSpec) { s.Spawner.Lanes = 0 }},
		{"chances", func(s *GameSpec) { s.Spawner.CoinChance, s.Spawner.StarChance = 80, 30 }},
		{"pickup", func(s *GameSpec) { s.Pickups.Width = 0 }},
		{"threshold", func(s *GameSpec) { s.Camera.ScrollThreshold = 1 }},
		{"smooth", func(s *GameSpec) { s.Camera.Smooth = 2 }},
		{"curve_max", func(s *GameSpec) { s.Curves.Scroll.Max = 0.5 }},
		{"curve_empty", func(s *GameSpec) { s.Curves.Difficulty.Knots = nil }},
		{"curve_unsorted", func(s *GameSpec) {
			s.Curves.Difficulty.Knots = []KnotSpec{{At: 10, Value: 1}, {At: 0, Value: 2}}
		}},
		{"curve_repeat", func(s *GameSpec) {
			s.Curves.Difficulty.Knots = []KnotSpec{{At: 0, Value: 1}, {At: 0, Value: 2}}
		}},
		{"curve_decreasing", func(s *GameSpec) {
			s.Curves.Scroll.Knots = []KnotSpec{{At: 0, Value: 2}, {At: 10, Value: 1}}
		}},
		{"scoring", func(s *GameSpec) { s.Scoring.DistancePerPoint = 0 }},
		{"fade", func(s *GameSpec) { s.GameOver.FadeStep = 0 }},
	}

	if err := DefaultGameSpec().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spec := DefaultGameSpec()
			c.mutate(spec)
			if err := spec.Validate(); !errors.Is(err, ErrInvalidSpec) {
				t.Fatalf("expected ErrInvalidSpec, got %v", err)
			}
		})
	}
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    color.Color
		wantErr bool
	}{
		{"named", "gold", colornames.Gold, false},
		{"named_upper", "Tomato", colornames.Tomato, false},
		{"hex", "#102030", color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, false},
		{"hex_alpha", "10203040", color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, false},
		{"bad_length", "#123", nil, true},
		{"bad_digit", "#zz2030", nil, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var out struct {
				C YAMLColor `yaml:"c"`
			}
			err := yaml.Unmarshal([]byte("c: \""+c.in+"\"\n"), &out)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if out.C.Color != c.want {
				t.Fatalf("color %v, want %v", out.C.Color, c.want)
			}
		})
	}

	var unset *YAMLColor
	if unset.Or(colornames.Red) != colornames.Red {
		t.Fatalf("nil color should fall back")
	}
}

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#101018", color.NRGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff}, false},
		{"ff000080", color.NRGBA{R: 0xff, A: 0x80}, false},
		{"#FFFFFF", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, false},
		{"", color.NRGBA{}, true},
		{"#1234567", color.NRGBA{}, true},
		{"#10101g", color.NRGBA{}, true},
	}

	for _, c := range cases {
		got, err := parseHexColor(c.in)
		if c.wantErr {
			if err == nil {
				t.Fatalf("parseHexColor(%q): expected error", c.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("parseHexColor(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("parseHexColor(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestLoadPrefersDiskCopy(t *testing.T) {
	dir := t.TempDir()
	useDir(t, dir)
	if err := os.MkdirAll(filepath.Join(dir, "scripts"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, DefaultSpecFile), []byte("screen:\n  width: 500\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "scripts", "scroll.tengo"), []byte("value = 2"), 0o644); err != nil {
		t.Fatal(err)
	}

	spec, err := LoadGameSpec("prefabs/" + DefaultSpecFile)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if spec.Screen.Width != 500 {
		t.Fatalf("disk copy not used, width %v", spec.Screen.Width)
	}
	if _, ok := ModTime(DefaultSpecFile); !ok {
		t.Fatalf("expected a mod time for the disk copy")
	}
	src, err := LoadScript("prefabs/scripts/scroll.tengo")
	if err != nil || string(src) != "value = 2" {
		t.Fatalf("script %q err %v", src, err)
	}
	if _, err := LoadScript("difficulty.tengo"); err != nil {
		t.Fatalf("embedded fallback: %v", err)
	}

	if _, err := LoadGameSpec("missing.yaml"); err == nil {
		t.Fatalf("expected error for a missing spec")
	}
	if _, err := LoadGameSpecFile(filepath.Join(dir, "nope.yaml")); err == nil {
		t.Fatalf("expected error for a missing file")
	}
}
