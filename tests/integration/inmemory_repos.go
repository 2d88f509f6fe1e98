package integration

import (
	"context"
	"sync"
	"time"

	"custodial-voucher/internal/core/domain"
)

// recordingAuditRepo keeps audit entries in memory for assertions.
type recordingAuditRepo struct {
	mu      sync.Mutex
	entries []domain.AuditLog
}

func (r *recordingAuditRepo) Create(_ context.Context, log *domain.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *log)
	return nil
}

func (r *recordingAuditRepo) count(action domain.AuditAction) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.entries {
		if e.Action == action {
			n++
		}
	}
	return n
}

// steppedClock is a settable clock shared by the services and the token service.
type steppedClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *steppedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *steppedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
