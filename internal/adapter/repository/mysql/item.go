package mysql

import (
	"context"

	itemDomain "approve-hub/internal/domain/item"

	"gorm.io/gorm"
)

type ItemRepository struct{ db *gorm.DB }

func NewItemRepository(db *gorm.DB) *ItemRepository { return &ItemRepository{db: db} }

func (r *ItemRepository) Create(ctx context.Context, i *itemDomain.Item) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *ItemRepository) Save(ctx context.Context, i *itemDomain.Item) error {
	return r.db.WithContext(ctx).Save(i).Error
}

func (r *ItemRepository) GetByItemID(ctx context.Context, itemID string) (*itemDomain.Item, error) {
	var out itemDomain.Item
	res := r.db.WithContext(ctx).Where("item_id = ?", itemID).First(&out)
	return &out, res.Error
}

func (r *ItemRepository) GetByID(ctx context.Context, id uint64) (*itemDomain.Item, error) {
	var out itemDomain.Item
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *ItemRepository) ListByGroupID(ctx context.Context, groupID uint64) ([]itemDomain.Item, error) {
	var out []itemDomain.Item
	res := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("created_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *ItemRepository) CreateChecks(ctx context.Context, checks []itemDomain.Check) error {
	if len(checks) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&checks).Error
}

func (r *ItemRepository) GetCheckByCheckID(ctx context.Context, checkID string) (*itemDomain.Check, error) {
	var out itemDomain.Check
	res := r.db.WithContext(ctx).Where("check_id = ?", checkID).First(&out)
	return &out, res.Error
}

func (r *ItemRepository) SaveCheck(ctx context.Context, c *itemDomain.Check) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ItemRepository) ListChecksByItemID(ctx context.Context, itemID uint64) ([]itemDomain.Check, error) {
	var out []itemDomain.Check
	res := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

func (r *ItemRepository) HasCheck(ctx context.Context, itemID, approverID uint64) (bool, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&itemDomain.Check{}).
		Where("item_id = ? AND approver_id = ?", itemID, approverID).
		Count(&n)
	return n > 0, res.Error
}

func (r *ItemRepository) CreateComment(ctx context.Context, c *itemDomain.Comment) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ItemRepository) ListCommentsByItemID(ctx context.Context, itemID uint64) ([]itemDomain.Comment, error) {
	var out []itemDomain.Comment
	res := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("created_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}
