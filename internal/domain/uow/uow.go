package uow

import (
	"context"

	"approve-hub/internal/domain/approver"
	"approve-hub/internal/domain/group"
	"approve-hub/internal/domain/item"
)

type Repos struct {
	Groups    group.Repository
	Approvers approver.Repository
	Items     item.Repository
}

// UnitOfWork runs multi-write flows (check fan-out, cascade deletes) as a
// single transaction so an interruption never leaves e.g. an approver
// without their backfilled checks.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
