package client

import (
	"sync"
	"time"
)

// Reasons a session is terminated.
const (
	ReasonRefreshFailed = "refresh_failed"
	ReasonRetryRejected = "retry_rejected"
)

// SessionEvent announces that the credential store was cleared by the
// pipeline and the user has to log in again.
type SessionEvent struct {
	Reason string
	Err    error
	At     time.Time
}

// Events fans session-terminated notifications out to subscribers. The
// hosting application subscribes and navigates to its login entry point.
type Events struct {
	mu   sync.Mutex
	next int
	subs map[int]func(SessionEvent)
}

func NewEvents() *Events {
	return &Events{subs: make(map[int]func(SessionEvent))}
}

// Subscribe registers fn and returns a function that removes it.
func (e *Events) Subscribe(fn func(SessionEvent)) (cancel func()) {
	e.mu.Lock()
	id := e.next
	e.next++
	e.subs[id] = fn
	e.mu.Unlock()

	return func() {
		e.mu.Lock()
		delete(e.subs, id)
		e.mu.Unlock()
	}
}

// emit calls subscribers synchronously, outside the lock, so a subscriber
// may unsubscribe from inside its callback.
func (e *Events) emit(ev SessionEvent) {
	e.mu.Lock()
	fns := make([]func(SessionEvent), 0, len(e.subs))
	for _, fn := range e.subs {
		fns = append(fns, fn)
	}
	e.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}
