package unitofwork

import (
	"context"
	"fmt"

	"miva-analytics-be/internal/repository/contract"
	"miva-analytics-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{db: db}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

// BeginReadOnly opens a transaction the database itself refuses to let
// write. Ad-hoc operator SQL runs under this guard.
func (u *UnitOfWorkImpl) BeginReadOnly(ctx context.Context) error {
	if err := u.Begin(ctx); err != nil {
		return err
	}
	if err := u.tx.Exec("SET TRANSACTION READ ONLY").Error; err != nil {
		_ = u.Rollback()
		return err
	}
	return nil
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository accessors

func (u *UnitOfWorkImpl) ChatFeedbackRepository() contract.ChatFeedbackRepository {
	return implementation.NewChatFeedbackRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ChatSessionRepository() contract.ChatSessionRepository {
	return implementation.NewChatSessionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ChatMessageRepository() contract.ChatMessageRepository {
	return implementation.NewChatMessageRepository(u.getDB())
}

func (u *UnitOfWorkImpl) OtpVerificationRepository() contract.OtpVerificationRepository {
	return implementation.NewOtpVerificationRepository(u.getDB())
}

func (u *UnitOfWorkImpl) UserFeedbackRepository() contract.UserFeedbackRepository {
	return implementation.NewUserFeedbackRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ConversationHistoryRepository() contract.ConversationHistoryRepository {
	return implementation.NewConversationHistoryRepository(u.getDB())
}

func (u *UnitOfWorkImpl) RawQueryRepository() contract.RawQueryRepository {
	return implementation.NewRawQueryRepository(u.getDB())
}
