package models

import (
	"sync"

	person "pcdir/internal/person/models"
	"pcdir/internal/sentinel"
)

// Entry is one managed computer record within the directory.
//
// The id and hardware are fixed at creation. The owner pointer is shared with
// every other entry whose owner has the same email address and must be treated
// as read-only. The mutable state block (OS, mailbox, status) is guarded by
// the entry's own mutex, so entries are safe to use from multiple goroutines;
// maintenance-lock acquisition is non-blocking and fails fast on contention.
type Entry struct {
	id       int
	hardware Hardware
	owner    *person.Person

	mu      sync.Mutex
	os      OperatingSystem
	mailbox mailbox
	status  Status
}

// NewEntry creates an entry in the On state. The store is the only caller;
// it assigns ids densely in insertion order and resolves owner sharing.
func NewEntry(id int, hardware Hardware, os OperatingSystem, owner *person.Person) *Entry {
	return &Entry{
		id:       id,
		hardware: hardware,
		owner:    owner,
		os:       os,
		status:   Status{Kind: StatusOn},
	}
}

// ID is the entry's insertion index. Ids are dense, zero-based, assigned once,
// and never reused or renumbered.
func (e *Entry) ID() int {
	return e.id
}

func (e *Entry) Hardware() Hardware {
	return e.hardware
}

// Owner returns the shared owner identity, or nil for unowned machines.
func (e *Entry) Owner() *person.Person {
	return e.owner
}

// OwnedBy reports whether the entry's owner has the given email address.
func (e *Entry) OwnedBy(email person.EmailAddress) bool {
	return e.owner != nil && e.owner.Email == email
}

func (e *Entry) OS() OperatingSystem {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.os
}

func (e *Entry) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

// Mailbox returns a snapshot of the pending messages in delivery order.
func (e *Entry) Mailbox() []Message {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mailbox.snapshot()
}

func (e *Entry) MailboxLen() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mailbox.len()
}

// Deliver enqueues msg if and only if the machine is On. The check and the
// enqueue are one atomic step, so a delivery never races a power or
// maintenance transition.
func (e *Entry) Deliver(msg Message) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.status.IsOn() {
		return false
	}
	e.mailbox.enqueue(msg)
	return true
}

// PowerOff turns the machine off. A machine under maintenance cannot be
// powered off until the lock is released.
func (e *Entry) PowerOff() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.status.Kind == StatusOff {
		return nil
	}
	if !e.status.CanTransitionTo(StatusOff) {
		return sentinel.ErrInvalidState
	}
	e.status = Status{Kind: StatusOff}
	return nil
}

// PowerOn turns an Off machine back on.
func (e *Entry) PowerOn() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.status.Kind == StatusOn {
		return nil
	}
	if !e.status.CanTransitionTo(StatusOn) {
		return sentinel.ErrInvalidState
	}
	e.status = Status{Kind: StatusOn}
	return nil
}

// AcquireMaintenanceLock grants exclusive permission to overwrite the OS
// field. At most one handle is outstanding per entry:
//
//   - On: transitions to BeingMaintained{reason} and returns the handle.
//   - BeingMaintained: fails with *InMaintenanceError carrying the holder's
//     reason, never the requested one.
//   - Off: fails with sentinel.ErrUnavailable.
//
// The call never blocks. Callers must pair it with a deferred Release so the
// lock is returned on every exit path:
//
//	handle, err := entry.AcquireMaintenanceLock("kernel upgrade")
//	if err != nil { ... }
//	defer handle.Release()
func (e *Entry) AcquireMaintenanceLock(reason string) (*MaintenanceHandle, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch e.status.Kind {
	case StatusBeingMaintained:
		return nil, &InMaintenanceError{Reason: e.status.Reason}
	case StatusOff:
		return nil, sentinel.ErrUnavailable
	}
	e.status = Status{Kind: StatusBeingMaintained, Reason: reason}
	return &MaintenanceHandle{entry: e}, nil
}
