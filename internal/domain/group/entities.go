package group

import (
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("group not found")
	// ErrSlugExhausted means the random-slug retry budget ran out.
	// Expected to be exceedingly rare; callers must surface it, not swallow it.
	ErrSlugExhausted = errors.New("failed to generate unique group slug")
)

// Table: groups
type Group struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Public identifier (32-char lowercase hex)
	GroupID string `gorm:"column:group_id;type:char(32);not null;uniqueIndex:ux_groups_group_id"`
	// Share token: anyone holding /g/<slug> has full access to the group.
	Slug         string    `gorm:"column:slug;type:char(8);not null;uniqueIndex:ux_groups_slug"`
	Title        string    `gorm:"column:title;size:255;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	LastActiveAt time.Time `gorm:"column:last_active_at;index;not null"`
}

func (Group) TableName() string { return "groups" }
