package server

import "sync"

// hub fans change notifications out to websocket subscribers. A slow
// subscriber misses intermediate notifications, never the latest one.
type hub struct {
	mu   sync.Mutex
	subs map[chan uint64]struct{}
	seq  uint64
}

func newHub() *hub {
	return &hub{subs: make(map[chan uint64]struct{})}
}

// subscribe returns a channel carrying change sequence numbers and a
// function that ends the subscription.
func (h *hub) subscribe() (<-chan uint64, func()) {
	ch := make(chan uint64, 1)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	return ch, func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if _, ok := h.subs[ch]; ok {
			delete(h.subs, ch)
			close(ch)
		}
	}
}

// publish records a change and notifies every subscriber.
func (h *hub) publish() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.seq++
	for ch := range h.subs {
		select {
		case <-ch:
		default:
		}
		ch <- h.seq
	}
	return h.seq
}

// current returns the latest sequence number.
func (h *hub) current() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.seq
}

// size returns the number of subscribers.
func (h *hub) size() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
