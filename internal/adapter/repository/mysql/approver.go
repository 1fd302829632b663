package mysql

import (
	"context"

	approverDomain "approve-hub/internal/domain/approver"
	itemDomain "approve-hub/internal/domain/item"

	"gorm.io/gorm"
)

type ApproverRepository struct{ db *gorm.DB }

func NewApproverRepository(db *gorm.DB) *ApproverRepository { return &ApproverRepository{db: db} }

func (r *ApproverRepository) Create(ctx context.Context, a *approverDomain.Approver) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ApproverRepository) Save(ctx context.Context, a *approverDomain.Approver) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *ApproverRepository) GetByApproverID(ctx context.Context, approverID string) (*approverDomain.Approver, error) {
	var out approverDomain.Approver
	res := r.db.WithContext(ctx).Where("approver_id = ?", approverID).First(&out)
	return &out, res.Error
}

func (r *ApproverRepository) ListByGroupID(ctx context.Context, groupID uint64) ([]approverDomain.Approver, error) {
	var out []approverDomain.Approver
	res := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("created_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *ApproverRepository) CountByGroupID(ctx context.Context, groupID uint64) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&approverDomain.Approver{}).
		Where("group_id = ?", groupID).
		Count(&n)
	return n, res.Error
}

// DeleteCascade removes the approver and every check they held.
func (r *ApproverRepository) DeleteCascade(ctx context.Context, id uint64) error {
	tx := r.db.WithContext(ctx)
	if err := tx.Where("approver_id = ?", id).Delete(&itemDomain.Check{}).Error; err != nil {
		return err
	}
	return tx.Where("id = ?", id).Delete(&approverDomain.Approver{}).Error
}
