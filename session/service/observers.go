package service

import "sync"

// Observers indexes the mounted observers by uid so sign-out can flag them.
type Observers struct {
	mu  sync.Mutex
	all map[string]map[*Observer]struct{}
}

func NewObservers() *Observers {
	return &Observers{
		all: make(map[string]map[*Observer]struct{}),
	}
}

func (r *Observers) Add(uid string, o *Observer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.all[uid] == nil {
		r.all[uid] = make(map[*Observer]struct{})
	}

	r.all[uid][o] = struct{}{}
}

func (r *Observers) Remove(uid string, o *Observer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.all[uid], o)

	if len(r.all[uid]) == 0 {
		delete(r.all, uid)
	}
}

func (r *Observers) BeginLogout(uid string) {
	for _, o := range r.of(uid) {
		o.BeginLogout()
	}
}

func (r *Observers) AbortLogout(uid string) {
	for _, o := range r.of(uid) {
		o.AbortLogout()
	}
}

func (r *Observers) of(uid string) []*Observer {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := make([]*Observer, 0, len(r.all[uid]))
	for o := range r.all[uid] {
		res = append(res, o)
	}

	return res
}
