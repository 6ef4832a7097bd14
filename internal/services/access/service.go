package access

import (
	"context"
	"log/slog"
)

// Member statuses reported by the chat platform for privileged users.
const (
	StatusAdministrator = "administrator"
	StatusCreator       = "creator"
)

type MemberStatusRepo interface {
	MemberStatus(ctx context.Context, chatID, userID int64) (string, error)
}

// Service decides whether a caller is exempt from the daily quota in a
// given chat. Decisions are computed fresh per request and never cached.
type Service struct {
	repo   MemberStatusRepo
	logger *slog.Logger
}

func NewService(repo MemberStatusRepo, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// IsPrivileged reports whether the user is an administrator or the owner
// of the chat. A failed lookup fails closed: the error is logged and the
// caller is treated as not privileged.
func (s *Service) IsPrivileged(ctx context.Context, chatID, userID int64) bool {
	if s.repo == nil {
		return false
	}

	status, err := s.repo.MemberStatus(ctx, chatID, userID)
	if err != nil {
		s.logger.Error("check member status", "error", err, "chat_id", chatID, "user_id", userID)
		return false
	}

	return status == StatusAdministrator || status == StatusCreator
}
