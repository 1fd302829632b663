package item

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

type CreateItemInput struct {
	GroupID   string
	Title     string
	Details   string
	Requester string // optional, stored null when blank
}

type ItemDTO struct {
	ItemID     string    `json:"item_id"`
	Title      string    `json:"title"`
	Requester  *string   `json:"requester"`
	Details    string    `json:"details"`
	CreatedAt  time.Time `json:"created_at"`
	CheckCount int       `json:"check_count"`
}

type CheckDTO struct {
	CheckID    string     `json:"check_id"`
	Approved   bool       `json:"approved"`
	ApprovedAt *time.Time `json:"approved_at"`
}

type CommentDTO struct {
	CommentID string    `json:"comment_id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

type Usecase struct {
	groupRepo    groupDomain.Repository
	approverRepo approverDomain.Repository
	itemRepo     itemDomain.Repository
	uow          uow.UnitOfWork
	now          func() time.Time
}

func NewUsecase(groups groupDomain.Repository, approvers approverDomain.Repository, items itemDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{
		groupRepo:    groups,
		approverRepo: approvers,
		itemRepo:     items,
		uow:          tx,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (u *Usecase) WithClock(now func() time.Time) *Usecase {
	u.now = now
	return u
}

// Create persists the item and fans out one pending check per approver the
// group currently has, in one transaction. A group with zero approvers is
// rejected: an item must always have at least one reviewer. Approvers added
// later are backfilled by the add-approver flow, not here.
func (u *Usecase) Create(ctx context.Context, in CreateItemInput) (*ItemDTO, error) {
	title := strings.TrimSpace(in.Title)
	details := strings.TrimSpace(in.Details)
	if title == "" || details == "" {
		return nil, ErrInvalidInput
	}

	var requester *string
	if v := strings.TrimSpace(in.Requester); v != "" {
		requester = &v
	}

	var dto *ItemDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		g, err := r.Groups.GetByGroupID(ctx, in.GroupID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return groupDomain.ErrNotFound
			}
			return err
		}

		approvers, err := r.Approvers.ListByGroupID(ctx, g.ID)
		if err != nil {
			return err
		}
		if len(approvers) == 0 {
			return itemDomain.ErrNoApprovers
		}

		it := &itemDomain.Item{
			ItemID:    id.NewID32(),
			GroupID:   g.ID,
			Title:     title,
			Requester: requester,
			Details:   details,
		}
		if err := r.Items.Create(ctx, it); err != nil {
			return err
		}

		checks := make([]itemDomain.Check, 0, len(approvers))
		for _, a := range approvers {
			checks = append(checks, itemDomain.Check{
				CheckID:    id.NewID32(),
				ItemID:     it.ID,
				ApproverID: a.ID,
			})
		}
		if err := r.Items.CreateChecks(ctx, checks); err != nil {
			return err
		}

		if err := r.Groups.Touch(ctx, g.ID, u.now()); err != nil {
			return err
		}
		dto = &ItemDTO{
			ItemID:     it.ItemID,
			Title:      it.Title,
			Requester:  it.Requester,
			Details:    it.Details,
			CreatedAt:  it.CreatedAt,
			CheckCount: len(checks),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Update edits title and details in place. Existing check states and the
// requester field are left alone.
func (u *Usecase) Update(ctx context.Context, itemID, title, details string) (*ItemDTO, error) {
	title = strings.TrimSpace(title)
	details = strings.TrimSpace(details)
	if title == "" || details == "" {
		return nil, ErrInvalidInput
	}

	it, err := u.itemRepo.GetByItemID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, itemDomain.ErrNotFound
		}
		return nil, err
	}

	it.Title = title
	it.Details = details
	if err := u.itemRepo.Save(ctx, it); err != nil {
		return nil, err
	}
	if err := u.groupRepo.Touch(ctx, it.GroupID, u.now()); err != nil {
		return nil, err
	}
	return &ItemDTO{ItemID: it.ItemID, Title: it.Title, Requester: it.Requester, Details: it.Details, CreatedAt: it.CreatedAt}, nil
}

// Toggle flips one approver's sign-off. Reversible both ways; un-approving
// clears approved_at. The slug is the only credential, so no identity check
// ties the caller to the approver.
func (u *Usecase) Toggle(ctx context.Context, checkID string, approved bool) (*CheckDTO, error) {
	ck, err := u.itemRepo.GetCheckByCheckID(ctx, checkID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, itemDomain.ErrCheckNotFound
		}
		return nil, err
	}

	now := u.now()
	ck.Approved = approved
	if approved {
		ck.ApprovedAt = &now
	} else {
		ck.ApprovedAt = nil
	}
	if err := u.itemRepo.SaveCheck(ctx, ck); err != nil {
		return nil, err
	}

	it, err := u.itemRepo.GetByID(ctx, ck.ItemID)
	if err != nil {
		return nil, err
	}
	if err := u.groupRepo.Touch(ctx, it.GroupID, now); err != nil {
		return nil, err
	}
	return &CheckDTO{CheckID: ck.CheckID, Approved: ck.Approved, ApprovedAt: ck.ApprovedAt}, nil
}

// AddComment appends a comment. Comments are never edited or deleted.
func (u *Usecase) AddComment(ctx context.Context, itemID, author, body string) (*CommentDTO, error) {
	author = strings.TrimSpace(author)
	body = strings.TrimSpace(body)
	if author == "" || body == "" {
		return nil, ErrInvalidInput
	}

	it, err := u.itemRepo.GetByItemID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, itemDomain.ErrNotFound
		}
		return nil, err
	}

	cm := &itemDomain.Comment{
		CommentID: id.NewID32(),
		ItemID:    it.ID,
		Author:    author,
		Body:      body,
	}
	if err := u.itemRepo.CreateComment(ctx, cm); err != nil {
		return nil, err
	}
	if err := u.groupRepo.Touch(ctx, it.GroupID, u.now()); err != nil {
		return nil, err
	}
	return &CommentDTO{CommentID: cm.CommentID, Author: cm.Author, Body: cm.Body, CreatedAt: cm.CreatedAt}, nil
}
