package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kindfood/erp-system/bomtable/domain"
)

type clock struct {
	t time.Time
}

func (c *clock) now() time.Time { return c.t }

func newTestDraftStore(ttl time.Duration) (*DraftStore, *clock) {
	c := &clock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	n := 0

	s := NewDraftStore(ttl)
	s.now = c.now
	s.newID = func() string {
		n++
		return "d" + string(rune('0'+n))
	}

	return s, c
}

func TestDraftStore_Ownership(t *testing.T) {
	s, _ := newTestDraftStore(time.Hour)

	d := s.Put("u1", domain.Draft{TableID: "t1"})
	assert.Equal(t, "d1", d.ID)

	_, err := s.Get("u2", d.ID)
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)

	s.Delete("u2", d.ID)
	assert.Equal(t, 1, s.Len())

	got, err := s.Get("u1", d.ID)
	require.NoError(t, err)
	assert.Equal(t, "t1", got.TableID)

	s.Delete("u1", d.ID)
	assert.Equal(t, 0, s.Len())
}

func TestDraftStore_Expiry(t *testing.T) {
	s, c := newTestDraftStore(time.Hour)

	d := s.Put("u1", domain.Draft{TableID: "t1"})

	c.t = c.t.Add(50 * time.Minute)

	_, err := s.Update("u1", d.ID, func(d domain.Draft) (domain.Draft, error) {
		d.TableName = "touched"
		return d, nil
	})
	require.NoError(t, err)

	// the update extended the expiry
	c.t = c.t.Add(50 * time.Minute)

	got, err := s.Get("u1", d.ID)
	require.NoError(t, err)
	assert.Equal(t, "touched", got.TableName)

	c.t = c.t.Add(time.Hour)

	_, err = s.Get("u1", d.ID)
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)
	assert.Equal(t, 0, s.Len())
}

func TestDraftStore_FailedUpdateKeepsDraft(t *testing.T) {
	s, _ := newTestDraftStore(time.Hour)

	d := s.Put("u1", domain.Draft{TableName: "before"})
	failure := errors.New("rejected")

	_, err := s.Update("u1", d.ID, func(d domain.Draft) (domain.Draft, error) {
		d.TableName = "after"
		return d, failure
	})
	assert.ErrorIs(t, err, failure)

	got, err := s.Get("u1", d.ID)
	require.NoError(t, err)
	assert.Equal(t, "before", got.TableName)
}
