package test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"likebot/internal/repo/likesapi"
	"likebot/internal/repo/memory"
	"likebot/internal/services/likes"
)

type stubGate struct {
	privileged bool
}

func (g stubGate) IsPrivileged(_ context.Context, _, _ int64) bool {
	return g.privileged
}

func TestLikeRequestEndToEnd(t *testing.T) {
	var apiCalls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&apiCalls, 1)
		_, _ = w.Write([]byte("✅ Like Sent!\n" +
			"- Name > PlayerOne\n" +
			"- Uid > 123456789\n" +
			"- Level > 60\n" +
			"[Exp : 152300]\n" +
			"- Likes BeFore > 100\n" +
			"- Likes After > 105\n" +
			"- Likes Given > 5"))
	}))
	defer server.Close()

	apiClient, err := likesapi.NewClient(server.URL+"/like/{region}/{uid}?key={key}", "secret", time.Second)
	if err != nil {
		t.Fatalf("new likes api client: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := likes.NewService(stubGate{}, memory.NewQuotaRepo(1), apiClient, logger)

	req := likes.Request{
		ChatID:    -100200300,
		UserID:    42,
		IsPrivate: false,
		Args:      []string{"na", "123456789"},
	}

	result := svc.HandleLike(context.Background(), req)
	if result.Outcome != likes.OutcomeSuccess {
		t.Fatalf("expected success, got %q", result.Outcome)
	}
	if result.Info.Name != "PlayerOne" || result.Info.LikesGiven != "5" {
		t.Fatalf("unexpected parsed info: %+v", result.Info)
	}

	result = svc.HandleLike(context.Background(), req)
	if result.Outcome != likes.OutcomeQuotaExceeded {
		t.Fatalf("expected quota exceeded on the second request, got %q", result.Outcome)
	}
	if got := atomic.LoadInt32(&apiCalls); got != 1 {
		t.Fatalf("expected the second request to stop before the api, got %d calls", got)
	}

	badReq := req
	badReq.Args = []string{"na", "abc"}
	result = svc.HandleLike(context.Background(), badReq)
	if result.Outcome != likes.OutcomeBadUID {
		t.Fatalf("expected bad uid outcome, got %q", result.Outcome)
	}
}
