package approver

import "context"

type Repository interface {
	Create(ctx context.Context, a *Approver) error
	GetByApproverID(ctx context.Context, approverID string) (*Approver, error)
	Save(ctx context.Context, a *Approver) error
	ListByGroupID(ctx context.Context, groupID uint64) ([]Approver, error)
	CountByGroupID(ctx context.Context, groupID uint64) (int64, error)

	// DeleteCascade removes the approver together with their checks.
	DeleteCascade(ctx context.Context, id uint64) error
}
