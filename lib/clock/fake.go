// Copyright 2026 The Emacsctl Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"sync"
	"time"
)

// NewFake returns a Fake initialized to the given time. Sleeps return
// immediately after recording their duration and advancing the fake
// time; tickers fire only when the test calls Tick. This keeps tests
// deterministic and free of real waiting.
func NewFake(initial time.Time) *Fake {
	return &Fake{current: initial}
}

// Fake is a deterministic Clock for testing. It is safe for concurrent
// use by multiple goroutines.
type Fake struct {
	mu      sync.Mutex
	current time.Time
	sleeps  []time.Duration
	tickers []chan time.Time
}

// Now returns the fake current time.
func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current
}

// Sleep records the requested duration, advances the fake time by it,
// and returns immediately.
func (f *Fake) Sleep(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sleeps = append(f.sleeps, d)
	f.current = f.current.Add(d)
}

// Sleeps returns the durations passed to Sleep, in call order.
func (f *Fake) Sleeps() []time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]time.Duration(nil), f.sleeps...)
}

// NewTicker returns a Ticker whose channel receives only when the test
// calls Tick. The interval is ignored beyond the validity check.
func (f *Fake) NewTicker(d time.Duration) *Ticker {
	if d <= 0 {
		panic("non-positive interval for NewTicker")
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	// Capacity 1 matches time.Ticker: a slow consumer drops ticks
	// rather than queueing them.
	channel := make(chan time.Time, 1)
	f.tickers = append(f.tickers, channel)
	return &Ticker{C: channel, stop: func() {}}
}

// Tick advances the fake time by d and delivers one tick to every
// ticker created so far. Ticks to full channels are dropped, matching
// time.Ticker semantics.
func (f *Fake) Tick(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.current = f.current.Add(d)
	for _, channel := range f.tickers {
		select {
		case channel <- f.current:
		default:
		}
	}
}
