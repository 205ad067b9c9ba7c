package window

import (
	"sync"

	"github.com/google/uuid"
)

// Closer is what the registry needs from a window.
type Closer interface {
	Close()
}

// Registry tracks open windows. It is the only state shared between
// windows, and calls onEmpty once the last registered window leaves.
type Registry struct {
	mu      sync.Mutex
	windows map[uuid.UUID]Closer
	order   []uuid.UUID
	onEmpty func()
}

// NewRegistry creates an empty registry.
func NewRegistry(onEmpty func()) *Registry {
	return &Registry{
		windows: make(map[uuid.UUID]Closer),
		onEmpty: onEmpty,
	}
}

// Add registers w under id. Adding an id twice replaces the window.
func (r *Registry) Add(id uuid.UUID, w Closer) {
	r.mu.Lock()
	if _, ok := r.windows[id]; !ok {
		r.order = append(r.order, id)
	}
	r.windows[id] = w
	r.mu.Unlock()
}

// Remove forgets id. Removing an unknown id is a no-op. onEmpty runs outside
// the lock when this removal leaves the registry empty.
func (r *Registry) Remove(id uuid.UUID) {
	r.mu.Lock()
	if _, ok := r.windows[id]; !ok {
		r.mu.Unlock()
		return
	}
	delete(r.windows, id)
	for i, other := range r.order {
		if other == id {
			r.order = append(r.order[:i:i], r.order[i+1:]...)
			break
		}
	}
	empty := len(r.windows) == 0
	onEmpty := r.onEmpty
	r.mu.Unlock()

	if empty && onEmpty != nil {
		onEmpty()
	}
}

// Len returns the number of open windows.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.windows)
}

// IDs returns the open window identifiers in registration order.
func (r *Registry) IDs() []uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]uuid.UUID(nil), r.order...)
}

// CloseAll asks every window to close, newest first. Windows remove
// themselves as they close.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	targets := make([]Closer, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		targets = append(targets, r.windows[r.order[i]])
	}
	r.mu.Unlock()

	for _, w := range targets {
		w.Close()
	}
}
