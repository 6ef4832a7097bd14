package access

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
)

type stubMemberStatusRepo struct {
	status string
	err    error
	calls  int
}

func (s *stubMemberStatusRepo) MemberStatus(_ context.Context, _, _ int64) (string, error) {
	s.calls++
	return s.status, s.err
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestIsPrivilegedByStatus(t *testing.T) {
	testCases := []struct {
		status     string
		privileged bool
	}{
		{status: StatusAdministrator, privileged: true},
		{status: StatusCreator, privileged: true},
		{status: "member", privileged: false},
		{status: "left", privileged: false},
		{status: "kicked", privileged: false},
	}

	for _, tc := range testCases {
		t.Run(tc.status, func(t *testing.T) {
			svc := NewService(&stubMemberStatusRepo{status: tc.status}, quietLogger())
			if got := svc.IsPrivileged(context.Background(), -100200300, 42); got != tc.privileged {
				t.Fatalf("status %q: expected privileged=%v, got %v", tc.status, tc.privileged, got)
			}
		})
	}
}

func TestIsPrivilegedFailsClosedOnLookupError(t *testing.T) {
	repo := &stubMemberStatusRepo{err: errors.New("chat not found")}
	svc := NewService(repo, quietLogger())

	if svc.IsPrivileged(context.Background(), -100200300, 42) {
		t.Fatal("expected lookup failure to be treated as not privileged")
	}
	if repo.calls != 1 {
		t.Fatalf("expected a single lookup attempt, got %d", repo.calls)
	}
}

func TestIsPrivilegedNeverCached(t *testing.T) {
	repo := &stubMemberStatusRepo{status: StatusAdministrator}
	svc := NewService(repo, quietLogger())

	for i := 0; i < 3; i++ {
		if !svc.IsPrivileged(context.Background(), -100200300, 42) {
			t.Fatalf("expected privileged result on call #%d", i+1)
		}
	}
	if repo.calls != 3 {
		t.Fatalf("expected a fresh lookup per request, got %d", repo.calls)
	}
}
