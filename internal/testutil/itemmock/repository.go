package itemmock

import (
	"context"

	domain "approve-hub/internal/domain/item"

	"gorm.io/gorm"
)

// Ensure compile-time compliance
var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn               func(ctx context.Context, i *domain.Item) error
	GetByItemIDFn          func(ctx context.Context, itemID string) (*domain.Item, error)
	GetByIDFn              func(ctx context.Context, id uint64) (*domain.Item, error)
	SaveFn                 func(ctx context.Context, i *domain.Item) error
	ListByGroupIDFn        func(ctx context.Context, groupID uint64) ([]domain.Item, error)
	CreateChecksFn         func(ctx context.Context, checks []domain.Check) error
	GetCheckByCheckIDFn    func(ctx context.Context, checkID string) (*domain.Check, error)
	SaveCheckFn            func(ctx context.Context, c *domain.Check) error
	ListChecksByItemIDFn   func(ctx context.Context, itemID uint64) ([]domain.Check, error)
	HasCheckFn             func(ctx context.Context, itemID, approverID uint64) (bool, error)
	CreateCommentFn        func(ctx context.Context, c *domain.Comment) error
	ListCommentsByItemIDFn func(ctx context.Context, itemID uint64) ([]domain.Comment, error)
}

func (m *Repo) Create(ctx context.Context, i *domain.Item) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, i)
	}
	return nil
}

func (m *Repo) GetByItemID(ctx context.Context, itemID string) (*domain.Item, error) {
	if m.GetByItemIDFn != nil {
		return m.GetByItemIDFn(ctx, itemID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Item, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) Save(ctx context.Context, i *domain.Item) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, i)
	}
	return nil
}

func (m *Repo) ListByGroupID(ctx context.Context, groupID uint64) ([]domain.Item, error) {
	if m.ListByGroupIDFn != nil {
		return m.ListByGroupIDFn(ctx, groupID)
	}
	return nil, nil
}

func (m *Repo) CreateChecks(ctx context.Context, checks []domain.Check) error {
	if m.CreateChecksFn != nil {
		return m.CreateChecksFn(ctx, checks)
	}
	return nil
}

func (m *Repo) GetCheckByCheckID(ctx context.Context, checkID string) (*domain.Check, error) {
	if m.GetCheckByCheckIDFn != nil {
		return m.GetCheckByCheckIDFn(ctx, checkID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) SaveCheck(ctx context.Context, c *domain.Check) error {
	if m.SaveCheckFn != nil {
		return m.SaveCheckFn(ctx, c)
	}
	return nil
}

func (m *Repo) ListChecksByItemID(ctx context.Context, itemID uint64) ([]domain.Check, error) {
	if m.ListChecksByItemIDFn != nil {
		return m.ListChecksByItemIDFn(ctx, itemID)
	}
	return nil, nil
}

func (m *Repo) HasCheck(ctx context.Context, itemID, approverID uint64) (bool, error) {
	if m.HasCheckFn != nil {
		return m.HasCheckFn(ctx, itemID, approverID)
	}
	return false, nil
}

func (m *Repo) CreateComment(ctx context.Context, c *domain.Comment) error {
	if m.CreateCommentFn != nil {
		return m.CreateCommentFn(ctx, c)
	}
	return nil
}

func (m *Repo) ListCommentsByItemID(ctx context.Context, itemID uint64) ([]domain.Comment, error) {
	if m.ListCommentsByItemIDFn != nil {
		return m.ListCommentsByItemIDFn(ctx, itemID)
	}
	return nil, nil
}
