package webkit

import (
	"sort"
	"sync"

	"github.com/subjectbrowser/subject/internal/application/port"
)

// eventHub fans engine events out to subscribers until it is closed.
type eventHub struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func(port.WebViewEvent)
	closed bool
}

func newEventHub() *eventHub {
	return &eventHub{subs: make(map[int]func(port.WebViewEvent))}
}

func (h *eventHub) subscribe(fn func(port.WebViewEvent)) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed || fn == nil {
		return func() {}
	}
	id := h.nextID
	h.nextID++
	h.subs[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
		})
	}
}

// emit delivers ev in subscription order. Handlers may unsubscribe while running.
func (h *eventHub) emit(ev port.WebViewEvent) {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	ids := make([]int, 0, len(h.subs))
	for id := range h.subs {
		ids = append(ids, id)
	}
	h.mu.Unlock()

	sort.Ints(ids)
	for _, id := range ids {
		h.mu.Lock()
		fn, ok := h.subs[id]
		closed := h.closed
		h.mu.Unlock()
		if ok && !closed {
			fn(ev)
		}
	}
}

func (h *eventHub) close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	h.subs = make(map[int]func(port.WebViewEvent))
}
