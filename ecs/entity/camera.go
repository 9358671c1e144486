package entity

import (
	"github.com/milk9111/skyhop/ecs/component"
	"github.com/milk9111/skyhop/prefabs"
)

func NewCamera(spec *prefabs.ScreenSpec) component.Camera {
	return component.Camera{Width: spec.Width, Height: spec.Height}
}
