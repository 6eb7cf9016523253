package router

import "sync"

// Reveal tracks which sections have entered the viewport. Once a section is
// revealed it stays revealed; navigation re-renders call Observe again for the
// sections currently in the DOM and already-revealed ones keep their state.
type Reveal struct {
	mu       sync.Mutex
	observed map[string]bool
	revealed map[string]bool
}

func NewReveal() *Reveal {
	return &Reveal{
		observed: make(map[string]bool),
		revealed: make(map[string]bool),
	}
}

// Observe registers the sections present after a render.
func (r *Reveal) Observe(ids ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		r.observed[id] = true
	}
}

// Intersect records that a section entered the viewport. Unobserved sections
// are ignored. Returns whether the section is now revealed.
func (r *Reveal) Intersect(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.observed[id] {
		return false
	}
	r.revealed[id] = true
	return true
}

// Revealed reports whether a section has been revealed.
func (r *Reveal) Revealed(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.revealed[id]
}
