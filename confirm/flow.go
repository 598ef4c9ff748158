package confirm

import (
	"context"
	"errors"
	"sync"

	"github.com/qmuntal/stateless"
)

type State string

const (
	Idle                State = "idle"
	PendingConfirmation State = "pendingConfirmation"
	Deleting            State = "deleting"
)

const (
	triggerIntent    = "intent"
	triggerCancel    = "cancel"
	triggerConfirm   = "confirm"
	triggerCompleted = "completed"
)

var (
	ErrNothingPending = errors.New("no delete is pending confirmation")
	ErrBusy           = errors.New("a delete is in progress")
	ErrInvalidTarget  = errors.New("invalid delete target")
)

// DeleteFunc removes one document of the backing collection.
type DeleteFunc func(ctx context.Context, id string) error

// Flow is the two step destructive action of one user on one collection.
// Exactly one target is pending at a time; a new intent replaces it.
type Flow struct {
	mu      sync.Mutex
	machine *stateless.StateMachine
	target  string
}

func NewFlow() *Flow {
	f := &Flow{
		machine: stateless.NewStateMachine(Idle),
	}

	f.machine.Configure(Idle).
		OnEntry(f.clearTarget).
		Permit(triggerIntent, PendingConfirmation)

	f.machine.Configure(PendingConfirmation).
		OnEntryFrom(triggerIntent, f.setTarget).
		PermitReentry(triggerIntent).
		Permit(triggerCancel, Idle).
		Permit(triggerConfirm, Deleting)

	f.machine.Configure(Deleting).
		Permit(triggerCompleted, Idle)

	return f
}

func (f *Flow) setTarget(_ context.Context, args ...any) error {
	f.target = args[0].(string)
	return nil
}

func (f *Flow) clearTarget(_ context.Context, _ ...any) error {
	f.target = ""
	return nil
}

// State returns the current state of the flow.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.machine.MustState().(State)
}

// Target returns the id waiting for confirmation, or "" when idle.
func (f *Flow) Target() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.target
}

// Intent marks id for deletion, replacing any pending target.
func (f *Flow) Intent(id string) error {
	if id == "" {
		return ErrInvalidTarget
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.machine.MustState() == Deleting {
		return ErrBusy
	}

	return f.machine.Fire(triggerIntent, id)
}

// Cancel drops the pending target.
func (f *Flow) Cancel() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.machine.MustState() != PendingConfirmation {
		return ErrNothingPending
	}

	return f.machine.Fire(triggerCancel)
}

// Confirm deletes the pending target with del and returns the flow to Idle,
// whether the delete succeeded, failed or panicked. It returns the deleted id.
func (f *Flow) Confirm(ctx context.Context, del DeleteFunc) (target string, err error) {
	f.mu.Lock()

	switch f.machine.MustState() {
	case Deleting:
		f.mu.Unlock()
		return "", ErrBusy
	case Idle:
		f.mu.Unlock()
		return "", ErrNothingPending
	}

	target = f.target

	if err := f.machine.Fire(triggerConfirm); err != nil {
		f.mu.Unlock()
		return "", err
	}

	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		defer f.mu.Unlock()

		if cerr := f.machine.Fire(triggerCompleted); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return target, del(ctx, target)
}
