package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kindfood/erp-system/common"
	"github.com/kindfood/erp-system/session/domain"
)

type fakeTimer struct {
	d       time.Duration
	f       func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	wasActive := !t.stopped
	t.stopped = true

	return wasActive
}

type observerHarness struct {
	hub       *Hub
	observer  *Observer
	timers    []*fakeTimer
	sessions  []domain.Session
	navigated []string
}

func newObserverHarness(t *testing.T) *observerHarness {
	h := &observerHarness{hub: NewHub()}

	h.observer = NewObserver(h.hub, "u1", 1500*time.Millisecond,
		func(s domain.Session) { h.sessions = append(h.sessions, s) },
		func(route string) { h.navigated = append(h.navigated, route) },
	)

	h.observer.afterFunc = func(d time.Duration, f func()) stopper {
		ft := &fakeTimer{d: d, f: f}
		h.timers = append(h.timers, ft)

		return ft
	}

	return h
}

func (h *observerHarness) outstanding() int {
	n := 0

	for _, ft := range h.timers {
		if !ft.stopped {
			n++
		}
	}

	return n
}

var chef = &domain.User{UID: "u1", Email: "chef@kindfood.tw"}

func TestObserver_UserPresentAfterDisplayDelay(t *testing.T) {
	h := newObserverHarness(t)
	h.hub.Publish("u1", chef)

	require.NoError(t, h.observer.Mount())

	require.Len(t, h.timers, 1)
	assert.Equal(t, 1500*time.Millisecond, h.timers[0].d)

	s := h.observer.Session()
	assert.True(t, s.IsLoading)
	assert.Nil(t, s.User)

	h.timers[0].f()

	s = h.observer.Session()
	assert.False(t, s.IsLoading)
	assert.Equal(t, chef, s.User)

	for _, emitted := range h.sessions {
		if emitted.IsLoading {
			assert.Nil(t, emitted.User)
		}
	}
}

func TestObserver_OneOutstandingTimer(t *testing.T) {
	h := newObserverHarness(t)
	require.NoError(t, h.observer.Mount())

	h.hub.Publish("u1", chef)
	h.hub.Publish("u1", chef)
	h.hub.Publish("u1", chef)

	assert.Len(t, h.timers, 3)
	assert.Equal(t, 1, h.outstanding())

	// A superseded timer firing late must not settle the session.
	h.timers[0].f()
	assert.True(t, h.observer.Session().IsLoading)

	h.timers[2].f()
	assert.False(t, h.observer.Session().IsLoading)
}

func TestObserver_SignOutNavigatesHomeWhenLoggingOut(t *testing.T) {
	h := newObserverHarness(t)
	h.hub.Publish("u1", chef)
	require.NoError(t, h.observer.Mount())
	h.timers[0].f()

	h.observer.BeginLogout()
	assert.True(t, h.observer.Session().IsLoggingOut)

	h.hub.Publish("u1", nil)

	s := h.observer.Session()
	assert.Nil(t, s.User)
	assert.False(t, s.IsLoading)
	assert.False(t, s.IsLoggingOut)
	assert.Equal(t, []string{common.RouteHome}, h.navigated)
}

func TestObserver_SignOutWithoutLogoutStays(t *testing.T) {
	h := newObserverHarness(t)
	require.NoError(t, h.observer.Mount())

	h.hub.Publish("u1", nil)

	assert.Empty(t, h.navigated)
	assert.False(t, h.observer.Session().IsLoading)
}

func TestObserver_AbortLogout(t *testing.T) {
	h := newObserverHarness(t)
	require.NoError(t, h.observer.Mount())

	h.observer.BeginLogout()
	h.observer.AbortLogout()
	h.hub.Publish("u1", nil)

	assert.Empty(t, h.navigated)
}

func TestObserver_NoUpdateAfterUnmount(t *testing.T) {
	h := newObserverHarness(t)
	h.hub.Publish("u1", chef)
	require.NoError(t, h.observer.Mount())

	h.observer.Unmount()
	assert.Equal(t, 0, h.outstanding())

	emitted := len(h.sessions)

	h.timers[0].f()
	h.hub.Publish("u1", nil)
	h.observer.BeginLogout()

	assert.Len(t, h.sessions, emitted)
	assert.True(t, h.observer.Session().IsLoading)
}

func TestObserver_MountOnClosedHub(t *testing.T) {
	h := newObserverHarness(t)
	h.hub.Close()

	assert.ErrorIs(t, h.observer.Mount(), domain.ErrHubClosed)
}

func TestObservers(t *testing.T) {
	h := newObserverHarness(t)
	require.NoError(t, h.observer.Mount())

	r := NewObservers()
	r.Add("u1", h.observer)

	r.BeginLogout("u1")
	assert.True(t, h.observer.Session().IsLoggingOut)

	r.AbortLogout("u1")
	assert.False(t, h.observer.Session().IsLoggingOut)

	r.Remove("u1", h.observer)
	r.BeginLogout("u1")
	assert.False(t, h.observer.Session().IsLoggingOut)
}
