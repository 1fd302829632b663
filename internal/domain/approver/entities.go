package approver

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("approver not found")

// Table: approvers
type Approver struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Public identifier (32-char lowercase hex)
	ApproverID string `gorm:"column:approver_id;type:char(32);not null;uniqueIndex:ux_approvers_approver_id"`
	// FK to groups.id (numeric)
	GroupID   uint64    `gorm:"column:group_id;not null;index:idx_approvers_group"`
	Name      string    `gorm:"column:name;size:255;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Approver) TableName() string { return "approvers" }
