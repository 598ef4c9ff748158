package service

import (
	"sync"
	"time"

	"github.com/kindfood/erp-system/common"
	"github.com/kindfood/erp-system/session/domain"
)

type stopper interface {
	Stop() bool
}

type afterFunc func(d time.Duration, f func()) stopper

func realAfterFunc(d time.Duration, f func()) stopper {
	return time.AfterFunc(d, f)
}

// Observer tracks the auth state of one mounted page.
// At most one display delay timer is outstanding, and no update happens once unmounted.
type Observer struct {
	mu          sync.Mutex
	source      AuthStateSource
	uid         string
	delay       time.Duration
	afterFunc   afterFunc
	onChange    func(domain.Session)
	onNavigate  func(route string)
	session     domain.Session
	alive       bool
	timer       stopper
	generation  int
	unsubscribe func()
}

// NewObserver returns an unmounted observer for uid. onChange receives every session update,
// onNavigate the route the page must move to.
func NewObserver(source AuthStateSource, uid string, delay time.Duration, onChange func(domain.Session), onNavigate func(string)) *Observer {
	return &Observer{
		source:     source,
		uid:        uid,
		delay:      delay,
		afterFunc:  realAfterFunc,
		onChange:   onChange,
		onNavigate: onNavigate,
		session:    domain.Session{IsLoading: true},
	}
}

// Mount registers the single listener on the source.
func (o *Observer) Mount() error {
	o.mu.Lock()
	o.alive = true
	o.mu.Unlock()

	unsubscribe, err := o.source.Subscribe(o.uid, o.notify)
	if err != nil {
		o.mu.Lock()
		o.alive = false
		o.mu.Unlock()

		return err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.alive {
		unsubscribe()
		return nil
	}

	o.unsubscribe = unsubscribe

	return nil
}

// Unmount deregisters the listener and cancels the pending timer.
func (o *Observer) Unmount() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.alive = false

	if o.unsubscribe != nil {
		o.unsubscribe()
		o.unsubscribe = nil
	}

	o.stopTimer()
}

// Session returns the current state. The user is hidden while loading.
func (o *Observer) Session() domain.Session {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.snapshot()
}

func (o *Observer) BeginLogout() {
	o.setLoggingOut(true)
}

func (o *Observer) AbortLogout() {
	o.setLoggingOut(false)
}

func (o *Observer) setLoggingOut(v bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.alive {
		return
	}

	o.session.IsLoggingOut = v
	o.emit()
}

func (o *Observer) notify(user *domain.User) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.alive {
		return
	}

	o.session.IsLoading = true
	o.stopTimer()

	if user != nil {
		o.emit()

		o.generation++
		gen := o.generation
		o.timer = o.afterFunc(o.delay, func() {
			o.settle(gen, user)
		})

		return
	}

	o.session.User = nil
	o.session.IsLoading = false

	if o.session.IsLoggingOut {
		o.session.IsLoggingOut = false
		o.emit()
		o.navigate(common.RouteHome)

		return
	}

	o.emit()
}

func (o *Observer) settle(gen int, user *domain.User) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.alive || gen != o.generation {
		return
	}

	o.timer = nil
	o.session.User = user
	o.session.IsLoading = false
	o.emit()
}

func (o *Observer) stopTimer() {
	if o.timer != nil {
		o.timer.Stop()
		o.timer = nil
	}

	o.generation++
}

func (o *Observer) snapshot() domain.Session {
	s := o.session
	if s.IsLoading {
		s.User = nil
	}

	return s
}

func (o *Observer) emit() {
	if o.onChange != nil {
		o.onChange(o.snapshot())
	}
}

func (o *Observer) navigate(route string) {
	if o.onNavigate != nil {
		o.onNavigate(route)
	}
}
