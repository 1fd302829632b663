package groupmock

import (
	"context"
	"time"

	domain "approve-hub/internal/domain/group"

	"gorm.io/gorm"
)

// Ensure compile-time compliance
var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Fill in the function fields you need in a test; unfilled getters report
// record-not-found, unfilled writers succeed.
type Repo struct {
	CreateFn               func(ctx context.Context, g *domain.Group) error
	GetByGroupIDFn         func(ctx context.Context, groupID string) (*domain.Group, error)
	GetBySlugFn            func(ctx context.Context, slug string) (*domain.Group, error)
	SaveFn                 func(ctx context.Context, g *domain.Group) error
	TouchFn                func(ctx context.Context, id uint64, at time.Time) error
	DeleteCascadeFn        func(ctx context.Context, id uint64) error
	DeleteInactiveBeforeFn func(ctx context.Context, cutoff time.Time, preserveID uint64) (int64, error)
}

func (m *Repo) Create(ctx context.Context, g *domain.Group) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, g)
	}
	return nil
}

func (m *Repo) GetByGroupID(ctx context.Context, groupID string) (*domain.Group, error) {
	if m.GetByGroupIDFn != nil {
		return m.GetByGroupIDFn(ctx, groupID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Group, error) {
	if m.GetBySlugFn != nil {
		return m.GetBySlugFn(ctx, slug)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) Save(ctx context.Context, g *domain.Group) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, g)
	}
	return nil
}

func (m *Repo) Touch(ctx context.Context, id uint64, at time.Time) error {
	if m.TouchFn != nil {
		return m.TouchFn(ctx, id, at)
	}
	return nil
}

func (m *Repo) DeleteCascade(ctx context.Context, id uint64) error {
	if m.DeleteCascadeFn != nil {
		return m.DeleteCascadeFn(ctx, id)
	}
	return nil
}

func (m *Repo) DeleteInactiveBefore(ctx context.Context, cutoff time.Time, preserveID uint64) (int64, error) {
	if m.DeleteInactiveBeforeFn != nil {
		return m.DeleteInactiveBeforeFn(ctx, cutoff, preserveID)
	}
	return 0, nil
}
