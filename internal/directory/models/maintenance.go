package models

// MaintenanceHandle is the scoped guard over a PC's mutable state. While the
// handle is live, the only mutation it permits is overwriting the OS field.
// Release restores the On status no matter what the reason was or whether the
// OS actually changed; it is idempotent, and a released handle is inert.
type MaintenanceHandle struct {
	entry    *Entry
	released bool
}

// UpdateOS overwrites the OS descriptor of the locked entry. Calls on a
// released handle have no effect.
func (h *MaintenanceHandle) UpdateOS(os OperatingSystem) {
	h.entry.mu.Lock()
	defer h.entry.mu.Unlock()
	if h.released {
		return
	}
	h.entry.os = os
}

// Release ends the maintenance window and transitions the entry back to On.
// Callers defer it immediately after acquisition so the lock is returned on
// every exit path, including panics.
func (h *MaintenanceHandle) Release() {
	h.entry.mu.Lock()
	defer h.entry.mu.Unlock()
	if h.released {
		return
	}
	h.released = true
	h.entry.status = Status{Kind: StatusOn}
}
