package approver

import (
	"context"
	"errors"
	"strings"
	"time"

	approverDomain "approve-hub/internal/domain/approver"
	groupDomain "approve-hub/internal/domain/group"
	itemDomain "approve-hub/internal/domain/item"
	"approve-hub/internal/domain/uow"
	"approve-hub/pkg/id"

	"gorm.io/gorm"
)

var ErrInvalidInput = errors.New("invalid input")

type ApproverDTO struct {
	ApproverID string    `json:"approver_id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
}

type Usecase struct {
	groupRepo    groupDomain.Repository
	approverRepo approverDomain.Repository
	uow          uow.UnitOfWork
	now          func() time.Time
}

func NewUsecase(groups groupDomain.Repository, approvers approverDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{
		groupRepo:    groups,
		approverRepo: approvers,
		uow:          tx,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (u *Usecase) WithClock(now func() time.Time) *Usecase {
	u.now = now
	return u
}

// Add creates the approver and backfills one pending check per item that
// already exists in the group, all in one transaction. Backfill skips
// (item, approver) pairs that already hold a check.
func (u *Usecase) Add(ctx context.Context, groupID, name string) (*ApproverDTO, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidInput
	}

	var dto *ApproverDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		g, err := r.Groups.GetByGroupID(ctx, groupID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return groupDomain.ErrNotFound
			}
			return err
		}

		a := &approverDomain.Approver{
			ApproverID: id.NewID32(),
			GroupID:    g.ID,
			Name:       name,
		}
		if err := r.Approvers.Create(ctx, a); err != nil {
			return err
		}

		items, err := r.Items.ListByGroupID(ctx, g.ID)
		if err != nil {
			return err
		}
		var backfill []itemDomain.Check
		for _, it := range items {
			exists, err := r.Items.HasCheck(ctx, it.ID, a.ID)
			if err != nil {
				return err
			}
			if exists {
				continue
			}
			backfill = append(backfill, itemDomain.Check{
				CheckID:    id.NewID32(),
				ItemID:     it.ID,
				ApproverID: a.ID,
			})
		}
		if err := r.Items.CreateChecks(ctx, backfill); err != nil {
			return err
		}

		if err := r.Groups.Touch(ctx, g.ID, u.now()); err != nil {
			return err
		}
		dto = &ApproverDTO{ApproverID: a.ApproverID, Name: a.Name, CreatedAt: a.CreatedAt}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Rename(ctx context.Context, approverID, name string) (*ApproverDTO, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidInput
	}

	a, err := u.approverRepo.GetByApproverID(ctx, approverID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, approverDomain.ErrNotFound
		}
		return nil, err
	}

	a.Name = name
	if err := u.approverRepo.Save(ctx, a); err != nil {
		return nil, err
	}
	if err := u.groupRepo.Touch(ctx, a.GroupID, u.now()); err != nil {
		return nil, err
	}
	return &ApproverDTO{ApproverID: a.ApproverID, Name: a.Name, CreatedAt: a.CreatedAt}, nil
}

// Delete removes the approver and their checks. Past items keep their other
// approvers' checks untouched.
func (u *Usecase) Delete(ctx context.Context, approverID string) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		a, err := r.Approvers.GetByApproverID(ctx, approverID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return approverDomain.ErrNotFound
			}
			return err
		}
		if err := r.Approvers.DeleteCascade(ctx, a.ID); err != nil {
			return err
		}
		return r.Groups.Touch(ctx, a.GroupID, u.now())
	})
}
