package memory

import (
	"context"
	"sync"
	"time"
)

type quotaRecord struct {
	lastRequest time.Time
	count       int
}

// QuotaRepo tracks per-user daily request consumption in process memory.
// State lives for the lifetime of the process; records from earlier days
// are overwritten in place on the next consumption.
type QuotaRepo struct {
	mu      sync.Mutex
	limit   int
	now     func() time.Time
	records map[int64]quotaRecord
}

func NewQuotaRepo(limit int) *QuotaRepo {
	if limit <= 0 {
		limit = 1
	}
	return &QuotaRepo{
		limit:   limit,
		now:     time.Now,
		records: make(map[int64]quotaRecord),
	}
}

// MayConsume reports whether the user still has quota for the current
// local calendar day.
func (r *QuotaRepo) MayConsume(_ context.Context, userID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[userID]
	if !ok {
		return true, nil
	}
	if !sameDay(record.lastRequest, r.now()) {
		return true, nil
	}
	return record.count < r.limit, nil
}

// RecordConsumption charges one request against the user for today.
// A record from an earlier day is replaced, not merged.
func (r *QuotaRepo) RecordConsumption(_ context.Context, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	record, ok := r.records[userID]
	if ok && sameDay(record.lastRequest, now) {
		record.count++
		record.lastRequest = now
		r.records[userID] = record
		return nil
	}

	r.records[userID] = quotaRecord{lastRequest: now, count: 1}
	return nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
