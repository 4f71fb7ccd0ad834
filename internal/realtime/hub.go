package realtime

import "sync"

// Hub fans out change signals to live watchers. A signal carries no data:
// on every tick the watcher re-reads the current state, which makes rapid
// bursts of updates safe to coalesce and deliveries before a state change
// harmless no-ops.
type Hub struct {
	mu   sync.Mutex
	subs map[string]map[chan struct{}]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[chan struct{}]struct{})}
}

// Subscribe registers a watcher on a topic. The returned cancel func MUST be
// called when the watcher goes away (stream closed or hand-off cancelled),
// otherwise the subscription keeps listening for the topic's lifetime.
func (h *Hub) Subscribe(topic string) (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	h.mu.Lock()
	if h.subs[topic] == nil {
		h.subs[topic] = make(map[chan struct{}]struct{})
	}
	h.subs[topic][ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if set, ok := h.subs[topic]; ok {
			delete(set, ch)
			if len(set) == 0 {
				delete(h.subs, topic)
			}
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// Publish wakes every watcher of the topic. Non-blocking: a watcher that
// already has a pending signal just coalesces.
func (h *Hub) Publish(topic string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs[topic] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Topics.
const TopicRemisiones = "remisiones"

func TopicSession(id string) string { return "session:" + id }
