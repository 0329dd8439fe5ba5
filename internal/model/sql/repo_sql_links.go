package sql

import (
	"context"
	"fmt"

	"weddingbook/internal/entity"

	"gorm.io/gorm"
)

// GetItemLink loads the link row only if it is joined to the given item.
// gorm.ErrRecordNotFound means the link does not exist or belongs elsewhere.
func (r *GormRepository) GetItemLink(ctx context.Context, itemID, linkID uint) (*entity.DbLink, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if itemID == 0 || linkID == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var join entity.DbItemLink
	err := r.db.WithContext(ctx).
		Preload("Link").
		Where("item_id = ? AND link_id = ?", itemID, linkID).
		First(&join).Error
	if err != nil {
		return nil, err
	}
	return &join.Link, nil
}

// UpdateLink mutates a link row in place by its own id.
func (r *GormRepository) UpdateLink(ctx context.Context, id uint, updates entity.LinkUpdates) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return gorm.ErrRecordNotFound
	}
	if updates.IsEmpty() {
		return nil
	}

	result := r.db.WithContext(ctx).Model(&entity.DbLink{}).Where("id = ?", id).Updates(updates.ToMap())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
