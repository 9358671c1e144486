package ecs

import "errors"

var (
	ErrPoolFull       = errors.New("ecs: pool full")
	ErrSlotAlive      = errors.New("ecs: slot already alive")
	ErrSlotOutOfRange = errors.New("ecs: slot out of range")
)

// Pool is a fixed-capacity arena of slots reused through an alive flag. It never
// grows and never compacts, so a slot index stays stable for the lifetime of the
// value stored in it.
type Pool[T any] struct {
	slots []T
	alive []bool
	count int
}

func NewPool[T any](capacity int) *Pool[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Pool[T]{
		slots: make([]T, capacity),
		alive: make([]bool, capacity),
	}
}

// Cap returns the number of slots.
func (p *Pool[T]) Cap() int {
	if p == nil {
		return 0
	}
	return len(p.slots)
}

// Len returns the number of alive slots.
func (p *Pool[T]) Len() int {
	if p == nil {
		return 0
	}
	return p.count
}

func (p *Pool[T]) Alive(i int) bool {
	if p == nil || i < 0 || i >= len(p.alive) {
		return false
	}
	return p.alive[i]
}

// Get returns the slot at i whether or not it is alive, or nil when i is out of
// range.
func (p *Pool[T]) Get(i int) *T {
	if p == nil || i < 0 || i >= len(p.slots) {
		return nil
	}
	return &p.slots[i]
}

// Spawn stores v in the lowest dead slot.
func (p *Pool[T]) Spawn(v T) (int, error) {
	if p == nil {
		return -1, ErrPoolFull
	}
	for i, alive := range p.alive {
		if !alive {
			p.put(i, v)
			return i, nil
		}
	}
	return -1, ErrPoolFull
}

// SpawnAt stores v in slot i, which must be dead.
func (p *Pool[T]) SpawnAt(i int, v T) error {
	if p == nil || i < 0 || i >= len(p.slots) {
		return ErrSlotOutOfRange
	}
	if p.alive[i] {
		return ErrSlotAlive
	}
	p.put(i, v)
	return nil
}

func (p *Pool[T]) put(i int, v T) {
	p.slots[i] = v
	p.alive[i] = true
	p.count++
}

// Kill marks slot i dead. It reports whether the slot was alive.
func (p *Pool[T]) Kill(i int) bool {
	if !p.Alive(i) {
		return false
	}
	p.alive[i] = false
	p.count--
	return true
}

// Clear kills every slot and zeroes the stored values.
func (p *Pool[T]) Clear() {
	if p == nil {
		return
	}
	var zero T
	for i := range p.slots {
		p.slots[i] = zero
		p.alive[i] = false
	}
	p.count = 0
}

// Each calls fn for every alive slot in index order. fn may kill the slot it is
// given.
func (p *Pool[T]) Each(fn func(i int, v *T)) {
	if p == nil || fn == nil {
		return
	}
	for i := range p.slots {
		if p.alive[i] {
			fn(i, &p.slots[i])
		}
	}
}

// First returns the lowest alive slot for which match is true.
func (p *Pool[T]) First(match func(v *T) bool) (int, bool) {
	if p == nil || match == nil {
		return -1, false
	}
	for i := range p.slots {
		if p.alive[i] && match(&p.slots[i]) {
			return i, true
		}
	}
	return -1, false
}
