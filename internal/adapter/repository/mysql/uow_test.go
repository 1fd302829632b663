package mysql

import (
	"context"
	"errors"
	"testing"

	approverDomain "approve-hub/internal/domain/approver"
	groupDomain "approve-hub/internal/domain/group"
	itemDomain "approve-hub/internal/domain/item"
	"approve-hub/internal/domain/uow"
	"approve-hub/pkg/id"
)

func TestGormUoW_WithinTx_Commit(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	guow := NewGormUoW(db)

	g := makeGroup("G")
	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Groups.Create(ctx, g); err != nil {
			return err
		}
		a := makeApprover(g.ID, "Alice")
		if err := r.Approvers.Create(ctx, a); err != nil {
			return err
		}
		it := makeItem(g.ID, "Item")
		if err := r.Items.Create(ctx, it); err != nil {
			return err
		}
		return r.Items.CreateChecks(ctx, []itemDomain.Check{makeCheck(it.ID, a.ID)})
	})
	if err != nil {
		t.Fatalf("WithinTx: %v", err)
	}

	if n := count(t, db, &groupDomain.Group{}); n != 1 {
		t.Fatalf("groups = %d, want 1", n)
	}
	if n := count(t, db, &itemDomain.Check{}); n != 1 {
		t.Fatalf("checks = %d, want 1", n)
	}
}

func TestGormUoW_WithinTx_RollbackOnError(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	guow := NewGormUoW(db)

	boom := errors.New("boom")
	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		g := makeGroup("G")
		if err := r.Groups.Create(ctx, g); err != nil {
			return err
		}
		if err := r.Approvers.Create(ctx, makeApprover(g.ID, "Alice")); err != nil {
			return err
		}
		// fail after two writes: neither may survive
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}

	if n := count(t, db, &groupDomain.Group{}); n != 0 {
		t.Fatalf("groups = %d, want 0 after rollback", n)
	}
	if n := count(t, db, &approverDomain.Approver{}); n != 0 {
		t.Fatalf("approvers = %d, want 0 after rollback", n)
	}
}

func TestGormUoW_AddApproverFlowIsAtomic(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	guow := NewGormUoW(db)

	// seed a group with an item outside the tx
	g := makeGroup("G")
	if err := NewGroupRepository(db).Create(ctx, g); err != nil {
		t.Fatalf("seed: %v", err)
	}
	it := makeItem(g.ID, "Item")
	if err := NewItemRepository(db).Create(ctx, it); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// approver insert + backfill, duplicated check id forces a late failure
	dup := id.NewID32()
	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		a := makeApprover(g.ID, "Alice")
		if err := r.Approvers.Create(ctx, a); err != nil {
			return err
		}
		ck := makeCheck(it.ID, a.ID)
		ck.CheckID = dup
		if err := r.Items.CreateChecks(ctx, []itemDomain.Check{ck}); err != nil {
			return err
		}
		ck2 := makeCheck(it.ID, a.ID+1)
		ck2.CheckID = dup // unique index violation
		return r.Items.CreateChecks(ctx, []itemDomain.Check{ck2})
	})
	if err == nil {
		t.Fatal("expected unique-constraint error")
	}

	// no half-applied approver state
	if n := count(t, db, &approverDomain.Approver{}); n != 0 {
		t.Fatalf("approvers = %d, want 0 after rollback", n)
	}
	if n := count(t, db, &itemDomain.Check{}); n != 0 {
		t.Fatalf("checks = %d, want 0 after rollback", n)
	}
}
