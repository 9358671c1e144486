package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/skyhop/ecs/component"
)

// keyBindings maps each button to the keys that hold it down.
var keyBindings = []struct {
	button component.Button
	keys   []ebiten.Key
}{
	{component.ButtonUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{component.ButtonDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
	{component.ButtonLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{component.ButtonRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{component.ButtonJump, []ebiten.Key{ebiten.KeyX, ebiten.KeySpace}},
	{component.ButtonZ, []ebiten.Key{ebiten.KeyZ}},
	{component.ButtonPause, []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP}},
	{component.ButtonConfirm, []ebiten.Key{ebiten.KeyEnter}},
	{component.ButtonRestart, []ebiten.Key{ebiten.KeyR}},
	{component.ButtonSubmit, []ebiten.Key{ebiten.KeyTab}},
}

// gamepadBindings mirrors the keyboard layout on a standard gamepad.
var gamepadBindings = []struct {
	button component.Button
	pad    ebiten.StandardGamepadButton
}{
	{component.ButtonUp, ebiten.StandardGamepadButtonLeftTop},
	{component.ButtonDown, ebiten.StandardGamepadButtonLeftBottom},
	{component.ButtonLeft, ebiten.StandardGamepadButtonLeftLeft},
	{component.ButtonRight, ebiten.StandardGamepadButtonLeftRight},
	{component.ButtonJump, ebiten.StandardGamepadButtonRightBottom},
	{component.ButtonZ, ebiten.StandardGamepadButtonRightLeft},
	{component.ButtonPause, ebiten.StandardGamepadButtonCenterRight},
	{component.ButtonConfirm, ebiten.StandardGamepadButtonRightRight},
	{component.ButtonRestart, ebiten.StandardGamepadButtonCenterLeft},
	{component.ButtonSubmit, ebiten.StandardGamepadButtonRightTop},
}

// pollButtons snapshots the keyboard and any connected gamepads.
func pollButtons() component.Buttons {
	var b component.Buttons
	for _, bind := range keyBindings {
		for _, k := range bind.keys {
			if ebiten.IsKeyPressed(k) {
				b = b.With(bind.button)
				break
			}
		}
	}

	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, bind := range gamepadBindings {
			if ebiten.IsStandardGamepadButtonPressed(id, bind.pad) {
				b = b.With(bind.button)
			}
		}
		// left stick
		x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if x < -0.5 {
			b = b.With(component.ButtonLeft)
		} else if x > 0.5 {
			b = b.With(component.ButtonRight)
		}
	}
	return b
}
