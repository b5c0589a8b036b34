// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package directory

import (
	"sync"
	"time"
)

// DefaultDebounce is the quiescence window used for coalescing index
// refreshes triggered by rapid successive mutations.
const DefaultDebounce = 300 * time.Millisecond

// Debouncer coalesces bursts of triggers into a single call: the function
// runs once the triggers have been quiet for the configured duration. Each
// Trigger resets the countdown.
type Debouncer struct {
	mu sync.Mutex
	d  time.Duration
	t  *time.Timer
	fn func()
}

// NewDebouncer returns a debouncer that invokes fn on its own goroutine
// after d of quiet.
func NewDebouncer(d time.Duration, fn func()) *Debouncer {
	return &Debouncer{d: d, fn: fn}
}

// Trigger schedules fn, replacing any pending schedule.
func (b *Debouncer) Trigger() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.t != nil {
		b.t.Stop()
	}
	b.t = time.AfterFunc(b.d, b.fn)
}

// Stop cancels any pending invocation.
func (b *Debouncer) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.t != nil {
		b.t.Stop()
		b.t = nil
	}
}
