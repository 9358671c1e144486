package component

import "github.com/milk9111/skyhop/common"

type Platform struct {
	X, Y          float64
	Width, Height float64
	Hitbox        common.Rect
}

// NewPlatform returns a platform with its hitbox cached.
func NewPlatform(x, y, width, height float64) Platform {
	p := Platform{X: x, Y: y, Width: width, Height: height}
	p.UpdateHitbox()
	return p
}

func (p *Platform) UpdateHitbox() {
	p.Hitbox = common.NewRect(p.X, p.Y, p.Width, p.Height)
}
