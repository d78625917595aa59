package unitofwork

import (
	"context"

	"miva-analytics-be/internal/repository/contract"
)

// UnitOfWork scopes repository access to one dashboard interaction.
// The transaction methods exist so ad-hoc SQL can run inside an explicit
// READ ONLY transaction; the fixed query set never mutates anything.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	BeginReadOnly(ctx context.Context) error
	Commit() error
	Rollback() error

	ChatFeedbackRepository() contract.ChatFeedbackRepository
	ChatSessionRepository() contract.ChatSessionRepository
	ChatMessageRepository() contract.ChatMessageRepository
	OtpVerificationRepository() contract.OtpVerificationRepository
	UserFeedbackRepository() contract.UserFeedbackRepository
	ConversationHistoryRepository() contract.ConversationHistoryRepository
	RawQueryRepository() contract.RawQueryRepository
}
