package mysql

import (
	"testing"
	"time"

	approverDomain "approve-hub/internal/domain/approver"
	groupDomain "approve-hub/internal/domain/group"
	itemDomain "approve-hub/internal/domain/item"
	"approve-hub/pkg/id"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB creates an in-memory sqlite DB with the full schema. The
// domain models carry no MySQL-only column types, so they migrate as-is.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&groupDomain.Group{},
		&approverDomain.Approver{},
		&itemDomain.Item{},
		&itemDomain.Check{},
		&itemDomain.Comment{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeGroup(title string) *groupDomain.Group {
	return &groupDomain.Group{
		GroupID:      id.NewID32(),
		Slug:         id.NewSlug(),
		Title:        title,
		LastActiveAt: time.Now().UTC(),
	}
}

func makeApprover(groupID uint64, name string) *approverDomain.Approver {
	return &approverDomain.Approver{
		ApproverID: id.NewID32(),
		GroupID:    groupID,
		Name:       name,
	}
}

func makeItem(groupID uint64, title string) *itemDomain.Item {
	return &itemDomain.Item{
		ItemID:  id.NewID32(),
		GroupID: groupID,
		Title:   title,
		Details: "details for " + title,
	}
}

func makeCheck(itemID, approverID uint64) itemDomain.Check {
	return itemDomain.Check{
		CheckID:    id.NewID32(),
		ItemID:     itemID,
		ApproverID: approverID,
	}
}

func count(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}
