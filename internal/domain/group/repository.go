package group

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, g *Group) error
	GetByGroupID(ctx context.Context, groupID string) (*Group, error)
	GetBySlug(ctx context.Context, slug string) (*Group, error)
	Save(ctx context.Context, g *Group) error

	// Touch bumps last_active_at; a no-op (not an error) if the row is gone.
	Touch(ctx context.Context, id uint64, at time.Time) error

	// DeleteCascade removes the group and every approver, item, check and
	// comment scoped to it.
	DeleteCascade(ctx context.Context, id uint64) error

	// DeleteInactiveBefore cascades deletion of every group whose
	// last_active_at is older than cutoff, except preserveID (0 = none).
	// Returns the number of groups removed.
	DeleteInactiveBefore(ctx context.Context, cutoff time.Time, preserveID uint64) (int64, error)
}
