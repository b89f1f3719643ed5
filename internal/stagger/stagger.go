// Package stagger computes per-item entrance animations whose delay grows
// with the item's position.
package stagger

import (
	"fmt"
	"html/template"
	"time"
)

// Transition is the duration of a single item's entrance.
const Transition = 500 * time.Millisecond

const (
	baseClass    = "stagger-item"
	visibleClass = "stagger-item is-visible"
	hiddenOffset = "20px"
)

// Descriptor is the animation state of the item at Index.
type Descriptor struct {
	Index   int
	Delay   time.Duration
	Visible bool
}

// Generate returns n hidden descriptors where descriptor i is delayed by
// i*step. A negative n yields none; a negative step yields zero delays.
func Generate(n int, step time.Duration) []Descriptor {
	if n <= 0 {
		return []Descriptor{}
	}
	if step < 0 {
		step = 0
	}

	out := make([]Descriptor, n)
	for i := range out {
		out[i] = Descriptor{Index: i, Delay: time.Duration(i) * step}
	}
	return out
}

// For returns one descriptor per item.
func For[T any](items []T, step time.Duration) []Descriptor {
	return Generate(len(items), step)
}

// Reveal returns a visible copy of d.
func (d Descriptor) Reveal() Descriptor {
	d.Visible = true
	return d
}

// DelayMillis returns the delay in whole milliseconds.
func (d Descriptor) DelayMillis() int64 {
	return d.Delay.Milliseconds()
}

// Style returns the inline CSS for the current state.
func (d Descriptor) Style() template.CSS {
	transition := fmt.Sprintf("transition: opacity %dms ease-out, transform %dms ease-out;",
		Transition.Milliseconds(), Transition.Milliseconds())
	if d.Visible {
		return template.CSS("opacity: 1; transform: translateY(0); " + transition)
	}
	return template.CSS("opacity: 0; transform: translateY(" + hiddenOffset + "); " + transition)
}

// Class returns the class names for the current state.
func (d Descriptor) Class() string {
	if d.Visible {
		return visibleClass
	}
	return baseClass
}
