// Package state holds the client-side containers mirroring server
// entities. Each container owns one collection, a request status and the
// last error. Containers resolve racing in-flight requests by settle
// order: whichever response lands last wins, regardless of dispatch
// order. The sequence counter makes that order observable.
package state

import "sync"

type Status string

const (
	StatusIdle      Status = "idle"
	StatusPending   Status = "pending"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// tracker is the request bookkeeping embedded in every container. Its
// mutex also guards the embedding container's collection. The zero value
// is a ready idle tracker.
type tracker struct {
	mu         sync.RWMutex
	status     Status
	lastErr    error
	nextSeq    uint64
	settledSeq uint64 // sequence of the most recently settled request
}

// Begin marks a dispatch and hands back its sequence number. Status moves
// to pending and the previous error clears; a settled status never flips
// to another settled status without passing through pending.
func (t *tracker) Begin() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status = StatusPending
	t.lastErr = nil
	t.nextSeq++
	return t.nextSeq
}

// settleLocked records the outcome of request seq. Callers hold mu.
// Applied unconditionally: settle order is authoritative, not dispatch
// order.
func (t *tracker) settleLocked(seq uint64, err error) {
	t.settledSeq = seq
	if err != nil {
		t.status = StatusFailed
		t.lastErr = err
		return
	}
	t.status = StatusSucceeded
	t.lastErr = nil
}

// Fail settles request seq with err.
func (t *tracker) Fail(seq uint64, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.settleLocked(seq, err)
}

func (t *tracker) Status() Status {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.status == "" {
		return StatusIdle
	}
	return t.status
}

func (t *tracker) LastError() error {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lastErr
}

// SettledSeq reports which dispatch determined the current state.
func (t *tracker) SettledSeq() uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.settledSeq
}

func (t *tracker) resetLocked() {
	t.status = StatusIdle
	t.lastErr = nil
}
