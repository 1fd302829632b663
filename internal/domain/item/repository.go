package item

import "context"

type Repository interface {
	Create(ctx context.Context, i *Item) error
	GetByItemID(ctx context.Context, itemID string) (*Item, error)
	GetByID(ctx context.Context, id uint64) (*Item, error)
	Save(ctx context.Context, i *Item) error
	ListByGroupID(ctx context.Context, groupID uint64) ([]Item, error)

	// Checks
	CreateChecks(ctx context.Context, checks []Check) error
	GetCheckByCheckID(ctx context.Context, checkID string) (*Check, error)
	SaveCheck(ctx context.Context, c *Check) error
	ListChecksByItemID(ctx context.Context, itemID uint64) ([]Check, error)
	HasCheck(ctx context.Context, itemID, approverID uint64) (bool, error)

	// Comments (append-only)
	CreateComment(ctx context.Context, c *Comment) error
	ListCommentsByItemID(ctx context.Context, itemID uint64) ([]Comment, error)
}
