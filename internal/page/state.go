// Package page models the load state of a content page.
package page

import (
	"time"

	"github.com/Zachkp/portfolio/internal/stagger"
)

// Status is the phase a page is in.
type Status int

const (
	StatusLoading Status = iota
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is exactly one of Loading, Ready(items) or Failed(reason). The zero
// value is Loading.
type State[T any] struct {
	status Status
	items  []T
	reason string
}

// Loading returns the initial state.
func Loading[T any]() State[T] {
	return State[T]{status: StatusLoading}
}

// Ready returns a loaded state. A nil slice is stored as empty.
func Ready[T any](items []T) State[T] {
	if items == nil {
		items = []T{}
	}
	return State[T]{status: StatusReady, items: items}
}

// Failed returns an error state carrying a user-facing reason.
func Failed[T any](reason string) State[T] {
	return State[T]{status: StatusFailed, reason: reason}
}

func (s State[T]) Status() Status  { return s.status }
func (s State[T]) IsLoading() bool { return s.status == StatusLoading }
func (s State[T]) IsReady() bool   { return s.status == StatusReady }
func (s State[T]) IsFailed() bool  { return s.status == StatusFailed }

// Items returns the loaded items; nil unless Ready.
func (s State[T]) Items() []T { return s.items }

// Reason returns the failure message; empty unless Failed.
func (s State[T]) Reason() string { return s.reason }

// Animations returns one descriptor per loaded item.
func (s State[T]) Animations(step time.Duration) []stagger.Descriptor {
	return stagger.For(s.items, step)
}
