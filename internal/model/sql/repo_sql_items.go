package sql

import (
	"context"
	"fmt"

	"weddingbook/internal/entity"

	"gorm.io/gorm"
)

// ListItems returns items matching the facet selections, with their
// category/tag/link join rows expanded. Each non-empty facet list builds an
// OR-group over the join relation; facets combine with AND.
func (r *GormRepository) ListItems(ctx context.Context, query *entity.ItemQuery) ([]entity.DbItem, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}

	tx := r.db.WithContext(ctx).Model(&entity.DbItem{}).
		Preload("Categories.Category").
		Preload("Tags.Tag").
		Preload("Links.Link")

	if query != nil {
		if len(query.Categories) > 0 {
			sub := r.db.Model(&entity.DbItemCategory{}).
				Select("item_categories.item_id").
				Joins("JOIN categories ON categories.id = item_categories.category_id").
				Where("categories.name IN ?", query.Categories)
			tx = tx.Where("items.id IN (?)", sub)
		}
		if len(query.Tags) > 0 {
			sub := r.db.Model(&entity.DbItemTag{}).
				Select("item_tags.item_id").
				Joins("JOIN tags ON tags.id = item_tags.tag_id").
				Where("tags.name IN ?", query.Tags)
			tx = tx.Where("items.id IN (?)", sub)
		}
		if len(query.Links) > 0 {
			sub := r.db.Model(&entity.DbItemLink{}).
				Select("item_links.item_id").
				Joins("JOIN links ON links.id = item_links.link_id").
				Where("links.type IN ?", query.Links)
			tx = tx.Where("items.id IN (?)", sub)
		}
		if query.Offset > 0 {
			tx = tx.Offset(query.Offset)
		}
		if query.Limit > 0 {
			tx = tx.Limit(query.Limit)
		}
	}

	var items []entity.DbItem
	if err := tx.Order("items.id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetItem loads one item with all associations expanded.
func (r *GormRepository) GetItem(ctx context.Context, id uint) (*entity.DbItem, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var item entity.DbItem
	err := r.db.WithContext(ctx).
		Preload("Categories.Category").
		Preload("Tags.Tag").
		Preload("Links.Link").
		First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateItem inserts the item row plus its association rows in one
// transaction: join rows connect to existing category/tag rows by unique
// name, link rows are created fresh and joined. A nonexistent category or
// tag name fails the whole transaction.
func (r *GormRepository) CreateItem(ctx context.Context, item *entity.DbItem, categories, tags []string, links []entity.LinkPayload) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if item == nil {
		return fmt.Errorf("item is nil")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(item).Error; err != nil {
			return err
		}

		for _, name := range categories {
			var category entity.DbCategory
			if err := tx.Where("name = ?", name).First(&category).Error; err != nil {
				return fmt.Errorf("connect category %q: %w", name, err)
			}
			join := entity.DbItemCategory{ItemID: item.ID, CategoryID: category.ID}
			if err := tx.Create(&join).Error; err != nil {
				return err
			}
		}

		for _, name := range tags {
			var tag entity.DbTag
			if err := tx.Where("name = ?", name).First(&tag).Error; err != nil {
				return fmt.Errorf("connect tag %q: %w", name, err)
			}
			join := entity.DbItemTag{ItemID: item.ID, TagID: tag.ID}
			if err := tx.Create(&join).Error; err != nil {
				return err
			}
		}

		for _, payload := range links {
			link := entity.DbLink{URL: payload.URL, Type: payload.Type, IsMain: payload.IsMain}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
			join := entity.DbItemLink{ItemID: item.ID, LinkID: link.ID}
			if err := tx.Create(&join).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// UpdateItem applies the present fields to the item's scalar columns only.
func (r *GormRepository) UpdateItem(ctx context.Context, id uint, updates entity.ItemUpdates) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return gorm.ErrRecordNotFound
	}
	if updates.IsEmpty() {
		return nil
	}

	result := r.db.WithContext(ctx).Model(&entity.DbItem{}).Where("id = ?", id).Updates(updates.ToMap())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
