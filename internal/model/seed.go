package model

import (
	"context"
	"errors"

	"weddingbook/internal/entity"

	"gorm.io/gorm"
)

// SeedTaxonomy ensures the fixed category and tag rows exist. Item creation
// connects to these rows by unique name, so they must be present before the
// first item is registered. Safe to run on every start.
func SeedTaxonomy(ctx context.Context, repo Repository) error {
	if repo == nil {
		return nil
	}

	existingCategories, err := repo.ListCategories(ctx)
	if err != nil {
		return err
	}
	known := make(map[string]struct{}, len(existingCategories))
	for _, category := range existingCategories {
		known[category.Name] = struct{}{}
	}
	for _, name := range entity.ItemCategories {
		if _, ok := known[name]; ok {
			continue
		}
		if err := repo.CreateCategory(ctx, &entity.DbCategory{Name: name}); err != nil {
			// 并发启动时可能撞到唯一索引，忽略重复
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				continue
			}
			return err
		}
	}

	existingTags, err := repo.ListTags(ctx)
	if err != nil {
		return err
	}
	knownTags := make(map[string]struct{}, len(existingTags))
	for _, tag := range existingTags {
		knownTags[tag.Name] = struct{}{}
	}
	for _, name := range entity.ItemTags {
		if _, ok := knownTags[name]; ok {
			continue
		}
		if err := repo.CreateTag(ctx, &entity.DbTag{Name: name}); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				continue
			}
			return err
		}
	}

	return nil
}
