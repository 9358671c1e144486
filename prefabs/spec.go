package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// DefaultSpecFile is the embedded tuning file used when no override is given.
const DefaultSpecFile = "game.yaml"

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

// GameSpec holds every tuning value the simulation reads.
type GameSpec struct {
	Screen   ScreenSpec   `yaml:"screen"`
	Player   PlayerSpec   `yaml:"player"`
	Pools    PoolSpec     `yaml:"pools"`
	Spawner  SpawnerSpec  `yaml:"spawner"`
	Pickups  PickupSpec   `yaml:"pickups"`
	Camera   CameraSpec   `yaml:"camera"`
	Curves   CurvesSpec   `yaml:"curves"`
	Scoring  ScoringSpec  `yaml:"scoring"`
	GameOver GameOverSpec `yaml:"game_over"`
	Palette  PaletteSpec  `yaml:"palette"`

	// LegacyDoubleAccel applies the horizontal speed rule twice per tick.
	LegacyDoubleAccel bool `yaml:"legacy_double_accel"`
}

type ScreenSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type PlayerSpec struct {
	Width          float64       `yaml:"width"`
	Height         float64       `yaml:"height"`
	StartX         float64       `yaml:"start_x"`
	StartY         float64       `yaml:"start_y"`
	MaxSpeed       float64       `yaml:"max_speed"`
	Acceleration   float64       `yaml:"acceleration"`
	Deceleration   float64       `yaml:"deceleration"`
	Gravity        float64       `yaml:"gravity"`
	JumpPower      float64       `yaml:"jump_power"`
	JumpHoldFrames int           `yaml:"jump_hold_frames"`
	Health         int           `yaml:"health"`
	Animation      AnimationSpec `yaml:"animation"`
}

// AnimationSpec lists frame counts per player animation and the ticks per frame.
type AnimationSpec struct {
	Stand int `yaml:"stand"`
	Run   int `yaml:"run"`
	Skid  int `yaml:"skid"`
	Jump  int `yaml:"jump"`
	Delay int `yaml:"delay"`
}

type PoolSpec struct {
	PlatformCapacity int `yaml:"platform_capacity"`
	PickupCapacity   int `yaml:"pickup_capacity"`
}

type SpawnerSpec struct {
	PlatformIncrement float64 `yaml:"platform_increment"`
	PlatformHeight    float64 `yaml:"platform_height"`
	Widths            []int   `yaml:"widths"`
	WidthJitter       int     `yaml:"width_jitter"`
	Lanes             int     `yaml:"lanes"`
	LaneOffset        float64 `yaml:"lane_offset"`
	CoinChance        int     `yaml:"coin_chance"`
	StarChance        int     `yaml:"star_chance"`
	DespawnMargin     float64 `yaml:"despawn_margin"`
}

type PickupSpec struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Hover      float64 `yaml:"hover"`
	CoinFrames int     `yaml:"coin_frames"`
	StarFrames int     `yaml:"star_frames"`
	Delay      int     `yaml:"delay"`
}

type CameraSpec struct {
	ScrollThreshold    float64 `yaml:"scroll_threshold"`
	Smooth             float64 `yaml:"smooth"`
	BackgroundParallax float64 `yaml:"background_parallax"`
	DeathMargin        float64 `yaml:"death_margin"`
}

type CurvesSpec struct {
	Difficulty CurveSpec `yaml:"difficulty"`
	Scroll     CurveSpec `yaml:"scroll"`
}

// CurveSpec describes a non-decreasing function of altitude. Knots are
// interpolated linearly; Script, when set, names a tengo script that computes the
// value instead and falls back to the knots on error.
type CurveSpec struct {
	Max    float64    `yaml:"max"`
	Knots  []KnotSpec `yaml:"knots"`
	Script string     `yaml:"script"`
}

type KnotSpec struct {
	At    float64 `yaml:"at"`
	Value float64 `yaml:"value"`
}

type ScoringSpec struct {
	CoinScore        int     `yaml:"coin_score"`
	DistancePerPoint float64 `yaml:"distance_per_point"`
}

type GameOverSpec struct {
	FadeStep int `yaml:"fade_step"`
}

type PaletteSpec struct {
	Background *YAMLColor `yaml:"background"`
	Platform   *YAMLColor `yaml:"platform"`
	Player     *YAMLColor `yaml:"player"`
	Coin       *YAMLColor `yaml:"coin"`
	Star       *YAMLColor `yaml:"star"`
	Text       *YAMLColor `yaml:"text"`
}

// DefaultGameSpec returns the reference tuning.
func DefaultGameSpec() *GameSpec {
	widths := make([]int, 0, 11)
	for w := 100; w <= 200; w += 10 {
		widths = append(widths, w)
	}
	return &GameSpec{
		Screen: ScreenSpec{Width: 400, Height: 600},
		Player: PlayerSpec{
			Width:        32,
			Height:       64,
			StartX:       10,
			StartY:       511,
			MaxSpeed:     5,
			Acceleration: 0.25,
			Deceleration: 0.2,
			Gravity:      8,
			JumpPower:    20,
			Health:       3,
			Animation:    AnimationSpec{Stand: 1, Run: 2, Skid: 1, Jump: 1, Delay: 6},
		},
		Pools: PoolSpec{PlatformCapacity: 12, PickupCapacity: 12},
		Spawner: SpawnerSpec{
			PlatformIncrement: 96,
			PlatformHeight:    25,
			Widths:            widths,
			WidthJitter:       50,
			Lanes:             5,
			LaneOffset:        40,
			CoinChance:        25,
			StarChance:        5,
			DespawnMargin:     100,
		},
		Pickups: PickupSpec{Width: 16, Height: 16, Hover: 8, CoinFrames: 4, StarFrames: 1, Delay: 8},
		Camera: CameraSpec{
			ScrollThreshold:    0.25,
			Smooth:             0.15,
			BackgroundParallax: 0.5,
			DeathMargin:        50,
		},
		Curves: CurvesSpec{
			Difficulty: CurveSpec{Max: 2, Knots: []KnotSpec{{At: 0, Value: 1}, {At: 12000, Value: 2}}},
			Scroll:     CurveSpec{Max: 5, Knots: []KnotSpec{{At: 0, Value: 1}, {At: 30000, Value: 5}}},
		},
		Scoring:  ScoringSpec{CoinScore: 10, DistancePerPoint: 10},
		GameOver: GameOverSpec{FadeStep: 5},
		Palette: PaletteSpec{
			Background: &YAMLColor{Color: colornames.Black},
			Platform:   &YAMLColor{Color: colornames.White},
			Player:     &YAMLColor{Color: colornames.Tomato},
			Coin:       &YAMLColor{Color: colornames.Gold},
			Star:       &YAMLColor{Color: colornames.Deepskyblue},
			Text:       &YAMLColor{Color: colornames.White},
		},
	}
}

// DecodeGameSpec overlays YAML data on the defaults and validates the result.
func DecodeGameSpec(data []byte) (*GameSpec, error) {
	spec := DefaultGameSpec()
	if err := yaml.Unmarshal(data, spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal game spec: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return spec, nil
}

// LoadGameSpec loads a spec by prefab name (disk copy first, then embedded).
func LoadGameSpec(name string) (*GameSpec, error) {
	data, err := Load(name)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", name, err)
	}
	spec, err := DecodeGameSpec(data)
	if err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return spec, nil
}

// LoadGameSpecFile loads a spec from an arbitrary path.
func LoadGameSpecFile(path string) (*GameSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("prefabs: read %s: %w", path, err)
	}
	spec, err := DecodeGameSpec(data)
	if err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", path, err)
	}
	return spec, nil
}

// Validate checks the invariants the simulation depends on.
func (s *GameSpec) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: nil spec", ErrInvalidSpec)
	}
	if s.Screen.Width <= 0 || s.Screen.Height <= 0 {
		return fmt.Errorf("%w: screen size %vx%v", ErrInvalidSpec, s.Screen.Width, s.Screen.Height)
	}
	p := s.Player
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: player size %vx%v", ErrInvalidSpec, p.Width, p.Height)
	}
	if p.MaxSpeed <= 0 || p.Acceleration <= 0 || p.Deceleration <= 0 {
		return fmt.Errorf("%w: player speed tuning must be positive", ErrInvalidSpec)
	}
	if p.Gravity <= 0 || p.JumpPower <= 0 {
		return fmt.Errorf("%w: gravity and jump_power must be positive", ErrInvalidSpec)
	}
	if p.JumpHoldFrames < 0 {
		return fmt.Errorf("%w: jump_hold_frames %d", ErrInvalidSpec, p.JumpHoldFrames)
	}
	if p.Health <= 0 {
		return fmt.Errorf("%w: health %d", ErrInvalidSpec, p.Health)
	}
	a := p.Animation
	if a.Stand <= 0 || a.Run <= 0 || a.Skid <= 0 || a.Jump <= 0 || a.Delay <= 0 {
		return fmt.Errorf("%w: animation frames and delay must be positive", ErrInvalidSpec)
	}
	// the starting layout alone needs four platform slots
	if s.Pools.PlatformCapacity < 4 || s.Pools.PickupCapacity < 0 {
		return fmt.Errorf("%w: pool capacities %d/%d", ErrInvalidSpec, s.Pools.PlatformCapacity, s.Pools.PickupCapacity)
	}

	sp := s.Spawner
	if sp.PlatformIncrement <= 0 || sp.PlatformHeight <= 0 {
		return fmt.Errorf("%w: platform_increment and platform_height must be positive", ErrInvalidSpec)
	}
	if len(sp.Widths) == 0 {
		return fmt.Errorf("%w: no platform widths", ErrInvalidSpec)
	}
	for _, w := range sp.Widths {
		if w-sp.WidthJitter <= 0 {
			return fmt.Errorf("%w: width %d minus jitter %d is not positive", ErrInvalidSpec, w, sp.WidthJitter)
		}
	}
	if sp.WidthJitter < 0 || sp.Lanes <= 0 {
		return fmt.Errorf("%w: width_jitter %d lanes %d", ErrInvalidSpec, sp.WidthJitter, sp.Lanes)
	}
	if sp.CoinChance < 0 || sp.StarChance < 0 || sp.CoinChance+sp.StarChance > 100 {
		return fmt.Errorf("%w: pickup chances %d+%d", ErrInvalidSpec, sp.CoinChance, sp.StarChance)
	}
	if sp.DespawnMargin < 0 {
		return fmt.Errorf("%w: despawn_margin %v", ErrInvalidSpec, sp.DespawnMargin)
	}

	pk := s.Pickups
	if pk.Width <= 0 || pk.Height <= 0 || pk.CoinFrames <= 0 || pk.StarFrames <= 0 || pk.Delay <= 0 {
		return fmt.Errorf("%w: pickup size and animation must be positive", ErrInvalidSpec)
	}

	if s.Camera.ScrollThreshold <= 0 || s.Camera.ScrollThreshold >= 1 {
		return fmt.Errorf("%w: scroll_threshold %v", ErrInvalidSpec, s.Camera.ScrollThreshold)
	}
	if s.Camera.Smooth < 0 || s.Camera.Smooth > 1 {
		return fmt.Errorf("%w: camera smooth %v", ErrInvalidSpec, s.Camera.Smooth)
	}

	if err := s.Curves.Difficulty.validate("difficulty"); err != nil {
		return err
	}
	if err := s.Curves.Scroll.validate("scroll"); err != nil {
		return err
	}

	if s.Scoring.CoinScore < 0 || s.Scoring.DistancePerPoint <= 0 {
		return fmt.Errorf("%w: scoring %+v", ErrInvalidSpec, s.Scoring)
	}
	if s.GameOver.FadeStep <= 0 {
		return fmt.Errorf("%w: fade_step %d", ErrInvalidSpec, s.GameOver.FadeStep)
	}
	return nil
}

func (c CurveSpec) validate(name string) error {
	if c.Max < 1 {
		return fmt.Errorf("%w: %s max %v below 1", ErrInvalidSpec, name, c.Max)
	}
	if len(c.Knots) == 0 {
		return fmt.Errorf("%w: %s curve has no knots", ErrInvalidSpec, name)
	}
	sorted := sort.SliceIsSorted(c.Knots, func(i, j int) bool { return c.Knots[i].At < c.Knots[j].At })
	if !sorted {
		return fmt.Errorf("%w: %s knots not sorted by altitude", ErrInvalidSpec, name)
	}
	for i := 1; i < len(c.Knots); i++ {
		if c.Knots[i].At == c.Knots[i-1].At {
			return fmt.Errorf("%w: %s knots repeat altitude %v", ErrInvalidSpec, name, c.Knots[i].At)
		}
		if c.Knots[i].Value < c.Knots[i-1].Value {
			return fmt.Errorf("%w: %s curve decreases at %v", ErrInvalidSpec, name, c.Knots[i].At)
		}
	}
	return nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := colornames.Map[strings.ToLower(value.Value)]; ok {
		c.Color = named
		return nil
	}

	clr, err := parseHexColor(value.Value)
	if err != nil {
		return err
	}
	c.Color = clr
	return nil
}

// parseHexColor reads "#rrggbb" or "#rrggbbaa"; the leading # is optional.
func parseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color format: %s", s)
	}

	ch := [4]uint8{3: 0xff}
	for i := 0; i < len(hex)/2; i++ {
		v, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color %s: %w", s, err)
		}
		ch[i] = uint8(v)
	}
	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}

// Or returns the wrapped color, or fallback when c is unset.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}
