package sql

import (
	"context"
	"fmt"

	"weddingbook/internal/entity"

	"gorm.io/gorm"
)

// ListCategories returns all categories ordered by ascending id.
func (r *GormRepository) ListCategories(ctx context.Context) ([]entity.DbCategory, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}

	var categories []entity.DbCategory
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory inserts a new category. A duplicate name surfaces as
// gorm.ErrDuplicatedKey via error translation.
func (r *GormRepository) CreateCategory(ctx context.Context, category *entity.DbCategory) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if category == nil {
		return fmt.Errorf("category is nil")
	}
	return r.db.WithContext(ctx).Create(category).Error
}

// UpdateCategory updates category fields.
func (r *GormRepository) UpdateCategory(ctx context.Context, id uint, updates entity.CategoryUpdates) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return gorm.ErrRecordNotFound
	}
	if updates.IsEmpty() {
		return nil
	}

	result := r.db.WithContext(ctx).Model(&entity.DbCategory{}).Where("id = ?", id).Updates(updates.ToMap())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListTags returns all tags ordered by ascending id.
func (r *GormRepository) ListTags(ctx context.Context) ([]entity.DbTag, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}

	var tags []entity.DbTag
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// CreateTag inserts a new tag.
func (r *GormRepository) CreateTag(ctx context.Context, tag *entity.DbTag) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if tag == nil {
		return fmt.Errorf("tag is nil")
	}
	return r.db.WithContext(ctx).Create(tag).Error
}

// UpdateTag updates tag fields.
func (r *GormRepository) UpdateTag(ctx context.Context, id uint, updates entity.TagUpdates) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return gorm.ErrRecordNotFound
	}
	if updates.IsEmpty() {
		return nil
	}

	result := r.db.WithContext(ctx).Model(&entity.DbTag{}).Where("id = ?", id).Updates(updates.ToMap())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
