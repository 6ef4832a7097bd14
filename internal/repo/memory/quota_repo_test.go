package memory

import (
	"context"
	"testing"
	"time"
)

func TestQuotaBlocksAfterConsumption(t *testing.T) {
	repo := NewQuotaRepo(1)
	ctx := context.Background()
	userID := int64(42)

	allowed, err := repo.MayConsume(ctx, userID)
	if err != nil {
		t.Fatalf("may consume: %v", err)
	}
	if !allowed {
		t.Fatal("expected first request of the day to be allowed")
	}

	if err := repo.RecordConsumption(ctx, userID); err != nil {
		t.Fatalf("record consumption: %v", err)
	}

	allowed, err = repo.MayConsume(ctx, userID)
	if err != nil {
		t.Fatalf("may consume: %v", err)
	}
	if allowed {
		t.Fatal("expected second request of the day to be blocked")
	}
}

func TestQuotaResetsOnDayRollover(t *testing.T) {
	repo := NewQuotaRepo(1)
	ctx := context.Background()
	userID := int64(42)

	current := time.Date(2026, 3, 10, 23, 50, 0, 0, time.Local)
	repo.now = func() time.Time { return current }

	if err := repo.RecordConsumption(ctx, userID); err != nil {
		t.Fatalf("record consumption: %v", err)
	}

	allowed, err := repo.MayConsume(ctx, userID)
	if err != nil {
		t.Fatalf("may consume: %v", err)
	}
	if allowed {
		t.Fatal("expected request to be blocked before midnight")
	}

	current = current.Add(20 * time.Minute)

	allowed, err = repo.MayConsume(ctx, userID)
	if err != nil {
		t.Fatalf("may consume: %v", err)
	}
	if !allowed {
		t.Fatal("expected quota to reset after midnight")
	}
}

func TestQuotaStaleRecordOverwritten(t *testing.T) {
	repo := NewQuotaRepo(1)
	ctx := context.Background()
	userID := int64(42)

	current := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	repo.now = func() time.Time { return current }

	if err := repo.RecordConsumption(ctx, userID); err != nil {
		t.Fatalf("record consumption: %v", err)
	}

	current = current.AddDate(0, 0, 3)

	if err := repo.RecordConsumption(ctx, userID); err != nil {
		t.Fatalf("record consumption: %v", err)
	}

	record := repo.records[userID]
	if record.count != 1 {
		t.Fatalf("expected stale record to be replaced with count 1, got %d", record.count)
	}
	if !sameDay(record.lastRequest, current) {
		t.Fatalf("expected record date to be today, got %v", record.lastRequest)
	}

	allowed, err := repo.MayConsume(ctx, userID)
	if err != nil {
		t.Fatalf("may consume: %v", err)
	}
	if allowed {
		t.Fatal("expected replacement record to count against today")
	}
}

func TestQuotaUsersAreIndependent(t *testing.T) {
	repo := NewQuotaRepo(1)
	ctx := context.Background()

	if err := repo.RecordConsumption(ctx, 1); err != nil {
		t.Fatalf("record consumption: %v", err)
	}

	allowed, err := repo.MayConsume(ctx, 2)
	if err != nil {
		t.Fatalf("may consume: %v", err)
	}
	if !allowed {
		t.Fatal("expected another user to keep their quota")
	}
}
