package likes

import (
	"context"
	"log/slog"
	"regexp"
	"sync"

	"likebot/internal/domain/model"
)

var uidFormat = regexp.MustCompile(`^[0-9]+$`)

// Gate answers whether a caller bypasses the daily quota in a chat.
type Gate interface {
	IsPrivileged(ctx context.Context, chatID, userID int64) bool
}

// Ledger tracks per-user daily consumption.
type Ledger interface {
	MayConsume(ctx context.Context, userID int64) (bool, error)
	RecordConsumption(ctx context.Context, userID int64) error
}

// API fetches the raw likes API response for a uid/region pair.
type API interface {
	FetchLikes(ctx context.Context, uid string, region string) (string, error)
}

type Outcome string

const (
	OutcomeBadArgs         Outcome = "bad_args"
	OutcomeBadUID          Outcome = "bad_uid"
	OutcomeGroupOnly       Outcome = "group_only"
	OutcomeQuotaExceeded   Outcome = "quota_exceeded"
	OutcomeUpstreamFailure Outcome = "upstream_failure"
	OutcomeLimitReached    Outcome = "limit_reached"
	OutcomeSuccess         Outcome = "success"
)

// Request is one inbound /like command.
type Request struct {
	ChatID    int64
	UserID    int64
	IsPrivate bool
	Args      []string
}

// Result is the terminal state of one request. Info is populated only for
// OutcomeSuccess and OutcomeLimitReached.
type Result struct {
	Outcome Outcome
	Info    model.LikeInfo
}

// Service orchestrates one /like command: validate, authorize, consult the
// ledger, call the API, parse, decide.
type Service struct {
	gate   Gate
	ledger Ledger
	api    API
	logger *slog.Logger

	userMu    sync.Mutex
	userLocks map[int64]*sync.Mutex
}

func NewService(gate Gate, ledger Ledger, api API, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		gate:      gate,
		ledger:    ledger,
		api:       api,
		logger:    logger,
		userLocks: make(map[int64]*sync.Mutex),
	}
}

// HandleLike runs one request to a terminal outcome. It never returns an
// error: every failure maps to exactly one outcome for the caller to render.
func (s *Service) HandleLike(ctx context.Context, req Request) Result {
	if len(req.Args) != 2 {
		return Result{Outcome: OutcomeBadArgs}
	}
	region, uid := req.Args[0], req.Args[1]
	if !uidFormat.MatchString(uid) {
		return Result{Outcome: OutcomeBadUID}
	}
	if req.IsPrivate {
		return Result{Outcome: OutcomeGroupOnly}
	}

	if s.gate.IsPrivileged(ctx, req.ChatID, req.UserID) {
		return s.handlePrivileged(ctx, req.UserID, uid, region)
	}
	return s.handleLimited(ctx, req.UserID, uid, region)
}

// Privileged callers are never gated, but their consumption is still
// recorded for bookkeeping, even when the API call fails.
func (s *Service) handlePrivileged(ctx context.Context, userID int64, uid, region string) Result {
	raw, err := s.api.FetchLikes(ctx, uid, region)
	if recErr := s.ledger.RecordConsumption(ctx, userID); recErr != nil {
		s.logger.Error("record consumption", "error", recErr, "user_id", userID)
	}
	if err != nil {
		s.logger.Error("fetch likes", "error", err, "uid", uid, "region", region)
		return Result{Outcome: OutcomeUpstreamFailure}
	}
	return decide(raw)
}

func (s *Service) handleLimited(ctx context.Context, userID int64, uid, region string) Result {
	// The check-then-act sequence below is not atomic on its own: the API
	// call suspends, so two in-flight requests from the same user could
	// both pass MayConsume. The per-user lock spans the whole sequence.
	unlock := s.lockUser(userID)
	defer unlock()

	allowed, err := s.ledger.MayConsume(ctx, userID)
	if err != nil {
		s.logger.Error("check quota", "error", err, "user_id", userID)
		return Result{Outcome: OutcomeUpstreamFailure}
	}
	if !allowed {
		return Result{Outcome: OutcomeQuotaExceeded}
	}

	raw, err := s.api.FetchLikes(ctx, uid, region)
	if err != nil {
		// Not charged: the user gets another attempt today.
		s.logger.Error("fetch likes", "error", err, "uid", uid, "region", region)
		return Result{Outcome: OutcomeUpstreamFailure}
	}

	if recErr := s.ledger.RecordConsumption(ctx, userID); recErr != nil {
		s.logger.Error("record consumption", "error", recErr, "user_id", userID)
	}

	return decide(raw)
}

func decide(raw string) Result {
	info := ParseResponse(raw)
	if info.LikesGiven == "0" {
		return Result{Outcome: OutcomeLimitReached, Info: info}
	}
	return Result{Outcome: OutcomeSuccess, Info: info}
}

func (s *Service) lockUser(userID int64) func() {
	s.userMu.Lock()
	lock, ok := s.userLocks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.userLocks[userID] = lock
	}
	s.userMu.Unlock()

	lock.Lock()
	return lock.Unlock
}
