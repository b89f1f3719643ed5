package stagger

import (
	"sync"
	"time"
)

// Sequence owns one timer per descriptor and flips each descriptor to
// visible when its timer fires. Stop cancels whatever has not fired; once
// Stop returns no further callback runs.
type Sequence struct {
	mu          sync.Mutex
	descriptors []Descriptor
	timers      []*time.Timer
	revealed    int
	started     bool
	stopped     bool
	done        chan struct{}
}

// NewSequence prepares a sequence for n items spaced by step.
func NewSequence(n int, step time.Duration) *Sequence {
	s := &Sequence{
		descriptors: Generate(n, step),
		done:        make(chan struct{}),
	}
	if len(s.descriptors) == 0 {
		close(s.done)
	}
	return s
}

// Start schedules every descriptor. onReveal, if non-nil, is called with
// the revealed descriptor while the sequence lock is held, so it must not
// call back into the Sequence. Start is a no-op after the first call or
// after Stop.
func (s *Sequence) Start(onReveal func(Descriptor)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started || s.stopped {
		return
	}
	s.started = true

	s.timers = make([]*time.Timer, len(s.descriptors))
	for i, d := range s.descriptors {
		i := i
		s.timers[i] = time.AfterFunc(d.Delay, func() { s.fire(i, onReveal) })
	}
}

func (s *Sequence) fire(i int, onReveal func(Descriptor)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped || s.descriptors[i].Visible {
		return
	}
	s.descriptors[i] = s.descriptors[i].Reveal()
	s.revealed++
	if onReveal != nil {
		onReveal(s.descriptors[i])
	}
	if s.revealed == len(s.descriptors) {
		close(s.done)
	}
}

// Stop cancels all pending timers. It is safe to call more than once.
func (s *Sequence) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}
	s.stopped = true
	for _, t := range s.timers {
		t.Stop()
	}
}

// Done is closed once every descriptor has been revealed. It is never
// closed for a sequence stopped early.
func (s *Sequence) Done() <-chan struct{} {
	return s.done
}

// Descriptors returns a snapshot of the current states.
func (s *Sequence) Descriptors() []Descriptor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Descriptor(nil), s.descriptors...)
}

// Visible returns how many descriptors have been revealed.
func (s *Sequence) Visible() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revealed
}

// Len returns the number of descriptors.
func (s *Sequence) Len() int {
	return len(s.descriptors)
}
