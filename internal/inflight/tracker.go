package inflight

import "sync"

// Tracker remembers which submissions are still waiting on the API so the same actor cannot
// start the same operation twice. It never cancels or times out a pending call.
type Tracker struct {
	mu      sync.Mutex
	pending map[string]struct{}
}

func NewTracker() *Tracker {
	return &Tracker{
		pending: make(map[string]struct{}),
	}
}

// Begin marks key as pending. ok is false when key is already pending; otherwise done must be
// called once the request finishes.
func (t *Tracker) Begin(key string) (done func(), ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, busy := t.pending[key]; busy {
		return func() {}, false
	}

	t.pending[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			t.mu.Lock()
			delete(t.pending, key)
			t.mu.Unlock()
		})
	}, true
}

func Key(operation, actor string) string {
	return operation + ":" + actor
}
