package component

import (
	"fmt"

	"github.com/milk9111/skyhop/common"
)

type PickupKind int

const (
	Coin PickupKind = iota
	Star
)

func (k PickupKind) Valid() bool { return k == Coin || k == Star }

func (k PickupKind) String() string {
	switch k {
	case Coin:
		return "coin"
	case Star:
		return "star"
	default:
		return fmt.Sprintf("PickupKind(%d)", int(k))
	}
}

// Pickup is a collectible hovering above the platform it spawned with.
type Pickup struct {
	Kind          PickupKind
	X, Y          float64
	Width, Height float64
	Hitbox        common.Rect
	Anim          Animation
}

func (p *Pickup) UpdateHitbox() {
	p.Hitbox = common.NewRect(p.X, p.Y, p.Width, p.Height)
}
