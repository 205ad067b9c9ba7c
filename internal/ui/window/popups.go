package window

import (
	"context"

	"github.com/google/uuid"
)

type discarder interface {
	Discard(ctx context.Context)
}

// pendingPopups holds the popups a window opened that are still latent. They
// are discarded with their opener, so a popup the engine never settles does
// not outlive every visible window.
type pendingPopups struct {
	order  []uuid.UUID
	popups map[uuid.UUID]discarder
}

func newPendingPopups() pendingPopups {
	return pendingPopups{popups: make(map[uuid.UUID]discarder)}
}

func (p *pendingPopups) add(id uuid.UUID, popup discarder) {
	if _, ok := p.popups[id]; !ok {
		p.order = append(p.order, id)
	}
	p.popups[id] = popup
}

// remove forgets a popup that was revealed or closed. Unknown ids are ignored.
func (p *pendingPopups) remove(id uuid.UUID) {
	if _, ok := p.popups[id]; !ok {
		return
	}
	delete(p.popups, id)
	for i, v := range p.order {
		if v == id {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
}

func (p *pendingPopups) len() int {
	return len(p.popups)
}

// discardAll empties the set first, so a Discard that calls back into remove
// finds nothing to do.
func (p *pendingPopups) discardAll(ctx context.Context) {
	order, popups := p.order, p.popups
	p.order = nil
	p.popups = make(map[uuid.UUID]discarder)
	for _, id := range order {
		popups[id].Discard(ctx)
	}
}
