package group

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

// Random 8-hex tokens collide rarely; ten draws is plenty. Exhaustion is
// surfaced as groupDomain.ErrSlugExhausted, never a silent reuse.
const slugMaxAttempts = 10

var ErrInvalidInput = errors.New("invalid input")

type Usecase struct {
	groupRepo    groupDomain.Repository
	approverRepo approverDomain.Repository
	itemRepo     itemDomain.Repository
	uow          uow.UnitOfWork

	inactiveWindow time.Duration
	now            func() time.Time
}

// NewUsecase: repos for reads, a UoW for cascade flows, and the idle window
// after which the sweep purges a group.
func NewUsecase(groups groupDomain.Repository, approvers approverDomain.Repository, items itemDomain.Repository, tx uow.UnitOfWork, inactiveWindow time.Duration) *Usecase {
	return &Usecase{
		groupRepo:      groups,
		approverRepo:   approvers,
		itemRepo:       items,
		uow:            tx,
		inactiveWindow: inactiveWindow,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the time source; tests inject a fixed clock.
func (u *Usecase) WithClock(now func() time.Time) *Usecase {
	u.now = now
	return u
}

func (u *Usecase) Create(ctx context.Context, in CreateGroupInput) (*GroupDTO, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, ErrInvalidInput
	}

	slug, err := u.generateUniqueSlug(ctx)
	if err != nil {
		return nil, err
	}

	g := &groupDomain.Group{
		GroupID:      id.NewID32(),
		Slug:         slug,
		Title:        title,
		LastActiveAt: u.now(),
	}
	if err := u.groupRepo.Create(ctx, g); err != nil {
		return nil, err
	}
	return toGroupDTO(g), nil
}

func (u *Usecase) generateUniqueSlug(ctx context.Context) (string, error) {
	for i := 0; i < slugMaxAttempts; i++ {
		slug := id.NewSlug()
		_, err := u.groupRepo.GetBySlug(ctx, slug)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return slug, nil
		}
		if err != nil {
			return "", err
		}
		// slug taken, draw again
	}
	return "", groupDomain.ErrSlugExhausted
}

func (u *Usecase) Rename(ctx context.Context, groupID, title string) (*GroupDTO, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrInvalidInput
	}

	g, err := u.groupRepo.GetByGroupID(ctx, groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, groupDomain.ErrNotFound
		}
		return nil, err
	}

	g.Title = title
	g.LastActiveAt = u.now()
	if err := u.groupRepo.Save(ctx, g); err != nil {
		return nil, err
	}
	return toGroupDTO(g), nil
}

// Delete removes the group and everything under it. Irreversible.
func (u *Usecase) Delete(ctx context.Context, groupID string) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		g, err := r.Groups.GetByGroupID(ctx, groupID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return groupDomain.ErrNotFound
			}
			return err
		}
		return r.Groups.DeleteCascade(ctx, g.ID)
	})
}

// SweepInactive purges groups idle longer than the configured window.
// Invoked on page access, not a timer; preserveID (0 = none) keeps the group
// currently being viewed alive even if it is itself past the cutoff.
func (u *Usecase) SweepInactive(ctx context.Context, preserveID uint64) (int64, error) {
	cutoff := u.now().Add(-u.inactiveWindow)
	var removed int64
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		var txErr error
		removed, txErr = r.Groups.DeleteInactiveBefore(ctx, cutoff, preserveID)
		return txErr
	})
	return removed, err
}

// Resolve maps a share slug to the group, without side effects.
func (u *Usecase) Resolve(ctx context.Context, slug string) (*GroupDTO, error) {
	g, err := u.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, groupDomain.ErrNotFound
		}
		return nil, err
	}
	return toGroupDTO(g), nil
}

// View loads the full page tree for a share link. Page access counts as
// activity: it sweeps stale groups (preserving this one) and touches it.
func (u *Usecase) View(ctx context.Context, slug string) (*GroupViewDTO, error) {
	g, err := u.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, groupDomain.ErrNotFound
		}
		return nil, err
	}

	if _, err := u.SweepInactive(ctx, g.ID); err != nil {
		return nil, err
	}

	now := u.now()
	if err := u.groupRepo.Touch(ctx, g.ID, now); err != nil {
		return nil, err
	}
	g.LastActiveAt = now

	approvers, err := u.approverRepo.ListByGroupID(ctx, g.ID)
	if err != nil {
		return nil, err
	}
	items, err := u.itemRepo.ListByGroupID(ctx, g.ID)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint64]approverDomain.Approver, len(approvers))
	approverDTOs := make([]ApproverDTO, 0, len(approvers))
	for _, a := range approvers {
		byID[a.ID] = a
		approverDTOs = append(approverDTOs, ApproverDTO{ApproverID: a.ApproverID, Name: a.Name, CreatedAt: a.CreatedAt})
	}

	itemDTOs := make([]ItemDTO, 0, len(items))
	for _, it := range items {
		checks, err := u.itemRepo.ListChecksByItemID(ctx, it.ID)
		if err != nil {
			return nil, err
		}
		comments, err := u.itemRepo.ListCommentsByItemID(ctx, it.ID)
		if err != nil {
			return nil, err
		}

		checkDTOs := make([]CheckDTO, 0, len(checks))
		for _, ck := range checks {
			a := byID[ck.ApproverID]
			checkDTOs = append(checkDTOs, CheckDTO{
				CheckID:      ck.CheckID,
				ApproverID:   a.ApproverID,
				ApproverName: a.Name,
				Approved:     ck.Approved,
				ApprovedAt:   ck.ApprovedAt,
			})
		}
		commentDTOs := make([]CommentDTO, 0, len(comments))
		for _, cm := range comments {
			commentDTOs = append(commentDTOs, CommentDTO{CommentID: cm.CommentID, Author: cm.Author, Body: cm.Body, CreatedAt: cm.CreatedAt})
		}

		itemDTOs = append(itemDTOs, ItemDTO{
			ItemID:    it.ItemID,
			Title:     it.Title,
			Requester: it.Requester,
			Details:   it.Details,
			CreatedAt: it.CreatedAt,
			Approved:  itemDomain.Approved(checks),
			Checks:    checkDTOs,
			Comments:  commentDTOs,
		})
	}

	return &GroupViewDTO{GroupDTO: *toGroupDTO(g), Approvers: approverDTOs, Items: itemDTOs}, nil
}

func toGroupDTO(g *groupDomain.Group) *GroupDTO {
	return &GroupDTO{
		GroupID:      g.GroupID,
		Slug:         g.Slug,
		Title:        g.Title,
		SharePath:    "/g/" + g.Slug,
		CreatedAt:    g.CreatedAt,
		LastActiveAt: g.LastActiveAt,
	}
}
