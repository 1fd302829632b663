package approvermock

import (
	"context"

	domain "approve-hub/internal/domain/approver"

	"gorm.io/gorm"
)

// Ensure compile-time compliance
var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn          func(ctx context.Context, a *domain.Approver) error
	GetByApproverIDFn func(ctx context.Context, approverID string) (*domain.Approver, error)
	SaveFn            func(ctx context.Context, a *domain.Approver) error
	ListByGroupIDFn   func(ctx context.Context, groupID uint64) ([]domain.Approver, error)
	CountByGroupIDFn  func(ctx context.Context, groupID uint64) (int64, error)
	DeleteCascadeFn   func(ctx context.Context, id uint64) error
}

func (m *Repo) Create(ctx context.Context, a *domain.Approver) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByApproverID(ctx context.Context, approverID string) (*domain.Approver, error) {
	if m.GetByApproverIDFn != nil {
		return m.GetByApproverIDFn(ctx, approverID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) Save(ctx context.Context, a *domain.Approver) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

func (m *Repo) ListByGroupID(ctx context.Context, groupID uint64) ([]domain.Approver, error) {
	if m.ListByGroupIDFn != nil {
		return m.ListByGroupIDFn(ctx, groupID)
	}
	return nil, nil
}

func (m *Repo) CountByGroupID(ctx context.Context, groupID uint64) (int64, error) {
	if m.CountByGroupIDFn != nil {
		return m.CountByGroupIDFn(ctx, groupID)
	}
	return 0, nil
}

func (m *Repo) DeleteCascade(ctx context.Context, id uint64) error {
	if m.DeleteCascadeFn != nil {
		return m.DeleteCascadeFn(ctx, id)
	}
	return nil
}
