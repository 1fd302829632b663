package mysql

import (
	"context"
	"time"

	approverDomain "approve-hub/internal/domain/approver"
	groupDomain "approve-hub/internal/domain/group"
	itemDomain "approve-hub/internal/domain/item"

	"gorm.io/gorm"
)

type GroupRepository struct{ db *gorm.DB }

func NewGroupRepository(db *gorm.DB) *GroupRepository { return &GroupRepository{db: db} }

func (r *GroupRepository) Create(ctx context.Context, g *groupDomain.Group) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *GroupRepository) Save(ctx context.Context, g *groupDomain.Group) error {
	return r.db.WithContext(ctx).Save(g).Error
}

func (r *GroupRepository) GetByGroupID(ctx context.Context, groupID string) (*groupDomain.Group, error) {
	var out groupDomain.Group
	res := r.db.WithContext(ctx).Where("group_id = ?", groupID).First(&out)
	return &out, res.Error
}

func (r *GroupRepository) GetBySlug(ctx context.Context, slug string) (*groupDomain.Group, error) {
	var out groupDomain.Group
	res := r.db.WithContext(ctx).Where("slug = ?", slug).First(&out)
	return &out, res.Error
}

func (r *GroupRepository) Touch(ctx context.Context, id uint64, at time.Time) error {
	// Zero rows affected is fine: the group may have been swept meanwhile.
	return r.db.WithContext(ctx).
		Model(&groupDomain.Group{}).
		Where("id = ?", id).
		Update("last_active_at", at).Error
}

func (r *GroupRepository) DeleteCascade(ctx context.Context, id uint64) error {
	return r.deleteCascade(r.db.WithContext(ctx), id)
}

// deleteCascade removes everything scoped to one group. Explicit subquery
// deletes rather than engine FK cascades, so the sqlite test harness and
// MySQL behave identically.
func (r *GroupRepository) deleteCascade(tx *gorm.DB, id uint64) error {
	itemIDs := tx.Session(&gorm.Session{NewDB: true}).
		Model(&itemDomain.Item{}).Select("id").Where("group_id = ?", id)

	if err := tx.Where("item_id IN (?)", itemIDs).Delete(&itemDomain.Comment{}).Error; err != nil {
		return err
	}
	if err := tx.Where("item_id IN (?)", itemIDs).Delete(&itemDomain.Check{}).Error; err != nil {
		return err
	}
	if err := tx.Where("group_id = ?", id).Delete(&itemDomain.Item{}).Error; err != nil {
		return err
	}
	if err := tx.Where("group_id = ?", id).Delete(&approverDomain.Approver{}).Error; err != nil {
		return err
	}
	return tx.Where("id = ?", id).Delete(&groupDomain.Group{}).Error
}

func (r *GroupRepository) DeleteInactiveBefore(ctx context.Context, cutoff time.Time, preserveID uint64) (int64, error) {
	var stale []groupDomain.Group
	q := r.db.WithContext(ctx).Where("last_active_at < ?", cutoff)
	if preserveID != 0 {
		q = q.Where("id <> ?", preserveID)
	}
	if err := q.Find(&stale).Error; err != nil {
		return 0, err
	}

	tx := r.db.WithContext(ctx)
	for _, g := range stale {
		if err := r.deleteCascade(tx, g.ID); err != nil {
			return 0, err
		}
	}
	return int64(len(stale)), nil
}
