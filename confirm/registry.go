package confirm

import (
	"sync"
	"time"
)

// DefaultIdleTTL is how long an idle flow is kept after it was last handed out.
const DefaultIdleTTL = 30 * time.Minute

type flowKey struct {
	uid        string
	collection string
}

type trackedFlow struct {
	flow     *Flow
	lastUsed time.Time
}

// Registry holds one Flow per (user, collection). Flows that are idle and
// were not handed out for longer than the ttl are dropped.
type Registry struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	flows map[flowKey]trackedFlow
}

func NewRegistry() *Registry {
	return &Registry{
		ttl:   DefaultIdleTTL,
		now:   time.Now,
		flows: make(map[flowKey]trackedFlow),
	}
}

// Flow returns the flow of uid on collection, creating an idle one on first use.
func (r *Registry) Flow(uid, collection string) *Flow {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sweepLocked()

	k := flowKey{uid, collection}

	tf, ok := r.flows[k]
	if !ok {
		tf.flow = NewFlow()
	}

	tf.lastUsed = r.now()
	r.flows[k] = tf

	return tf.flow
}

// Len is the number of flows currently held.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.flows)
}

// pending and deleting flows are kept whatever their age
func (r *Registry) sweepLocked() {
	now := r.now()

	for k, tf := range r.flows {
		if now.Sub(tf.lastUsed) > r.ttl && tf.flow.State() == Idle {
			delete(r.flows, k)
		}
	}
}
