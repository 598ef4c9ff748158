package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kindfood/erp-system/bomtable/domain"
)

type ownedDraft struct {
	owner string
	draft domain.Draft
}

// DraftStore keeps open drafts in memory, per user, until they are submitted,
// discarded or left idle longer than the ttl.
type DraftStore struct {
	mu     sync.Mutex
	ttl    time.Duration
	now    func() time.Time
	newID  func() string
	drafts map[string]ownedDraft
}

func NewDraftStore(ttl time.Duration) *DraftStore {
	return &DraftStore{
		ttl:    ttl,
		now:    time.Now,
		newID:  uuid.NewString,
		drafts: make(map[string]ownedDraft),
	}
}

// Put stores a new draft for uid and returns it with its id and expiry set.
func (s *DraftStore) Put(uid string, d domain.Draft) domain.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()

	d.ID = s.newID()
	d.ExpiresAt = s.now().Add(s.ttl)
	s.drafts[d.ID] = ownedDraft{uid, d}

	return d
}

func (s *DraftStore) Get(uid, id string) (domain.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	od, err := s.lookupLocked(uid, id)
	if err != nil {
		return domain.Draft{}, err
	}

	return od.draft, nil
}

// Update replaces the draft with the result of fn and extends its expiry. The draft is
// unchanged when fn fails.
func (s *DraftStore) Update(uid, id string, fn func(domain.Draft) (domain.Draft, error)) (domain.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	od, err := s.lookupLocked(uid, id)
	if err != nil {
		return domain.Draft{}, err
	}

	d, err := fn(od.draft)
	if err != nil {
		return od.draft, err
	}

	d.ID = id
	d.ExpiresAt = s.now().Add(s.ttl)
	s.drafts[id] = ownedDraft{uid, d}

	return d, nil
}

func (s *DraftStore) Delete(uid, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if od, ok := s.drafts[id]; ok && od.owner == uid {
		delete(s.drafts, id)
	}
}

// Len returns the number of live drafts.
func (s *DraftStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()

	return len(s.drafts)
}

func (s *DraftStore) lookupLocked(uid, id string) (ownedDraft, error) {
	od, ok := s.drafts[id]
	if !ok || od.owner != uid {
		return ownedDraft{}, domain.ErrDraftNotFound
	}

	if !s.now().Before(od.draft.ExpiresAt) {
		delete(s.drafts, id)
		return ownedDraft{}, domain.ErrDraftNotFound
	}

	return od, nil
}

func (s *DraftStore) sweepLocked() {
	now := s.now()

	for id, od := range s.drafts {
		if !now.Before(od.draft.ExpiresAt) {
			delete(s.drafts, id)
		}
	}
}
