package service

import (
	"sync"

	"github.com/kindfood/erp-system/session/domain"
)

// Listener receives the current user of a uid, or nil once signed out.
type Listener func(user *domain.User)

// AuthStateSource delivers auth state changes of one uid.
type AuthStateSource interface {
	Subscribe(uid string, l Listener) (unsubscribe func(), err error)
}

// Hub broadcasts per-uid auth state changes to subscribed observers.
// A new subscriber immediately receives the current state.
type Hub struct {
	mu        sync.Mutex
	closed    bool
	nextID    int
	users     map[string]*domain.User
	listeners map[string]map[int]Listener
}

func NewHub() *Hub {
	return &Hub{
		users:     make(map[string]*domain.User),
		listeners: make(map[string]map[int]Listener),
	}
}

func (h *Hub) Subscribe(uid string, l Listener) (func(), error) {
	h.mu.Lock()

	if h.closed {
		h.mu.Unlock()
		return nil, domain.ErrHubClosed
	}

	id := h.nextID
	h.nextID++

	if h.listeners[uid] == nil {
		h.listeners[uid] = make(map[int]Listener)
	}

	h.listeners[uid][id] = l
	current := h.users[uid]

	h.mu.Unlock()

	l(current)

	var once sync.Once

	return func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()

			delete(h.listeners[uid], id)

			if len(h.listeners[uid]) == 0 {
				delete(h.listeners, uid)
			}
		})
	}, nil
}

// Publish records user as the state of uid and notifies its listeners.
// A nil user means signed out.
func (h *Hub) Publish(uid string, user *domain.User) {
	h.mu.Lock()

	if h.closed {
		h.mu.Unlock()
		return
	}

	if user == nil {
		delete(h.users, uid)
	} else {
		h.users[uid] = user
	}

	ls := make([]Listener, 0, len(h.listeners[uid]))
	for _, l := range h.listeners[uid] {
		ls = append(ls, l)
	}

	h.mu.Unlock()

	for _, l := range ls {
		l(user)
	}
}

// Remember seeds the state of uid from an authenticated request when the hub has none,
// without notifying anyone.
func (h *Hub) Remember(uid string, user *domain.User) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.users[uid]; !ok && user != nil {
		h.users[uid] = user
	}
}

// Close stops delivering notifications. Subscribers are expected to unmount.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	h.listeners = make(map[string]map[int]Listener)
}
