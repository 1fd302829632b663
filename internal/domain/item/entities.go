package item

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("approval item not found")
	ErrCheckNotFound = errors.New("approval check not found")
	// ErrNoApprovers: an item must always have at least one reviewer, so
	// creation inside a group with zero approvers is rejected.
	ErrNoApprovers = errors.New("group has no approvers")
)

// Table: approval_items
type Item struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Public identifier (32-char lowercase hex)
	ItemID string `gorm:"column:item_id;type:char(32);not null;uniqueIndex:ux_items_item_id"`
	// FK to groups.id (numeric)
	GroupID   uint64    `gorm:"column:group_id;not null;index:idx_items_group"`
	Title     string    `gorm:"column:title;size:255;not null"`
	Requester *string   `gorm:"column:requester;size:255"`
	Details   string    `gorm:"column:details;type:text;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Item) TableName() string { return "approval_items" }

// Table: approval_checks. One approver's sign-off state on one item;
// unique per (item, approver) pair.
type Check struct {
	ID      uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	CheckID string `gorm:"column:check_id;type:char(32);not null;uniqueIndex:ux_checks_check_id"`
	// FK to approval_items.id
	ItemID uint64 `gorm:"column:item_id;not null;uniqueIndex:ux_checks_item_approver"`
	// FK to approvers.id
	ApproverID uint64     `gorm:"column:approver_id;not null;uniqueIndex:ux_checks_item_approver;index:idx_checks_approver"`
	Approved   bool       `gorm:"column:approved;not null;default:false"`
	ApprovedAt *time.Time `gorm:"column:approved_at"`
	CreatedAt  time.Time  `gorm:"column:created_at;autoCreateTime"`
}

func (Check) TableName() string { return "approval_checks" }

// Table: comments. Append-only; author is free text, not tied to an approver.
type Comment struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	CommentID string    `gorm:"column:comment_id;type:char(32);not null;uniqueIndex:ux_comments_comment_id"`
	ItemID    uint64    `gorm:"column:item_id;not null;index:idx_comments_item"`
	Author    string    `gorm:"column:author;size:255;not null"`
	Body      string    `gorm:"column:body;type:text;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Comment) TableName() string { return "comments" }

// Approved reports whether every check has been ticked. An item with zero
// checks is never considered approved.
func Approved(checks []Check) bool {
	if len(checks) == 0 {
		return false
	}
	for _, c := range checks {
		if !c.Approved {
			return false
		}
	}
	return true
}
