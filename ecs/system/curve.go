package system

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/skyhop/common"
	"github.com/milk9111/skyhop/prefabs"
)

var errCurveValue = errors.New("curve: script value is not a finite number")

// Curve maps the highest altitude reached to a difficulty-style multiplier in
// [1, max].
type Curve interface {
	Value(highest float64) float64
}

// KnotCurve interpolates linearly between knots and holds the end values
// outside them.
type KnotCurve struct {
	Knots []prefabs.KnotSpec
	Max   float64
}

func (c KnotCurve) Value(highest float64) float64 {
	return clampCurve(c.raw(highest), c.Max)
}

func (c KnotCurve) raw(highest float64) float64 {
	if len(c.Knots) == 0 {
		return 1
	}
	first := c.Knots[0]
	if highest <= first.At {
		return first.Value
	}
	for i := 1; i < len(c.Knots); i++ {
		prev, next := c.Knots[i-1], c.Knots[i]
		if highest <= next.At {
			t := (highest - prev.At) / (next.At - prev.At)
			return common.Lerp(prev.Value, next.Value, t)
		}
	}
	return c.Knots[len(c.Knots)-1].Value
}

func clampCurve(v, max float64) float64 {
	if max < 1 {
		max = 1
	}
	return common.Clamp(v, 1, max)
}

// ScriptCurve evaluates a tengo script that reads `highest` and sets `value`.
// After the first script failure it logs once and uses Fallback for good.
type ScriptCurve struct {
	Name     string
	Fallback KnotCurve

	compiled *tengo.Compiled
	failed   bool
	lastIn   float64
	lastOut  float64
	primed   bool
}

// NewScriptCurve compiles src.
func NewScriptCurve(name string, src []byte, fallback KnotCurve) (*ScriptCurve, error) {
	script := tengo.NewScript(src)
	_ = script.Add("highest", 0.0)
	_ = script.Add("value", 1.0)
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("curve: compile %s: %w", name, err)
	}
	return &ScriptCurve{Name: name, Fallback: fallback, compiled: compiled}, nil
}

func (c *ScriptCurve) Value(highest float64) float64 {
	if c.failed || c.compiled == nil {
		return c.Fallback.Value(highest)
	}
	if c.primed && highest == c.lastIn {
		return c.lastOut
	}

	v, err := c.eval(highest)
	if err != nil {
		log.Printf("progress: curve script %s: %v; using knots", c.Name, err)
		c.failed = true
		return c.Fallback.Value(highest)
	}
	c.lastIn, c.lastOut, c.primed = highest, clampCurve(v, c.Fallback.Max), true
	return c.lastOut
}

func (c *ScriptCurve) eval(highest float64) (float64, error) {
	if err := c.compiled.Set("highest", highest); err != nil {
		return 0, err
	}
	if err := c.compiled.Run(); err != nil {
		return 0, err
	}
	v := c.compiled.Get("value").Float()
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errCurveValue
	}
	return v, nil
}

// NewCurve builds the curve described by spec. A script that cannot be loaded or
// compiled is logged and replaced by the knots.
func NewCurve(spec prefabs.CurveSpec) Curve {
	knots := KnotCurve{Knots: spec.Knots, Max: spec.Max}
	if spec.Script == "" {
		return knots
	}
	src, err := prefabs.LoadScript(spec.Script)
	if err != nil {
		log.Printf("progress: load curve script %s: %v; using knots", spec.Script, err)
		return knots
	}
	curve, err := NewScriptCurve(spec.Script, src, knots)
	if err != nil {
		log.Printf("progress: %v; using knots", err)
		return knots
	}
	return curve
}
