package service

import (
	"context"
	"errors"
	"path"
	"strings"

	"weddingbook/internal/entity"
	"weddingbook/internal/model"
	"weddingbook/internal/storage"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// defaultPageSize 列表默认每页条数
const defaultPageSize = 12

// ItemService 商家目录服务：构造分面查询、展平关联行、解析缩略图签名 URL。
type ItemService struct {
	repo          model.Repository
	resolver      storage.Resolver
	thumbnailRoot string
	log           logrus.FieldLogger
}

// NewItemService 创建目录服务实例。logger 显式注入，不依赖全局单例。
func NewItemService(repo model.Repository, resolver storage.Resolver, thumbnailRoot string, logger logrus.FieldLogger) *ItemService {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &ItemService{
		repo:          repo,
		resolver:      resolver,
		thumbnailRoot: strings.Trim(strings.TrimSpace(thumbnailRoot), "/"),
		log:           logger,
	}
}

// normaliseQuery applies the pagination defaults: limit is the page size
// (12 when unset), offset the start row.
func normaliseQuery(query *entity.ItemQuery) *entity.ItemQuery {
	normalised := entity.ItemQuery{}
	if query != nil {
		normalised = *query
	}
	if normalised.Limit <= 0 {
		normalised.Limit = defaultPageSize
	}
	if normalised.Offset < 0 {
		normalised.Offset = 0
	}
	return &normalised
}

// ListItems returns denormalized item views matching the facet selections.
// Thumbnails are replaced by signed URLs; any storage failure aborts the
// whole listing, no partial results.
func (s *ItemService) ListItems(ctx context.Context, query *entity.ItemQuery) ([]entity.ItemView, error) {
	items, err := s.repo.ListItems(ctx, normaliseQuery(query))
	if err != nil {
		s.log.WithError(err).Error("failed to list items")
		return nil, ErrUnavailable
	}

	views := make([]entity.ItemView, 0, len(items))
	for _, item := range items {
		view := flattenItem(item)

		// 逐条解析，不做批量
		resolved, err := s.resolver.ResolveURL(ctx, s.thumbnailKey(item.Thumbnail))
		if err != nil {
			s.log.WithError(err).WithField("item_id", item.ID).Error("failed to resolve thumbnail url")
			return nil, ErrUnavailable
		}
		view.Thumbnail = resolved

		views = append(views, view)
	}
	return views, nil
}

// GetItem returns one item with its association rows expanded. The thumbnail
// stays a raw object key here; only the listing resolves URLs.
func (s *ItemService) GetItem(ctx context.Context, id uint) (*entity.ItemDetail, error) {
	item, err := s.repo.GetItem(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		s.log.WithError(err).WithField("item_id", id).Error("failed to load item")
		return nil, ErrUnavailable
	}
	detail := flattenItemDetail(item)
	return &detail, nil
}

// ListCategories returns all categories ordered by ascending id.
func (s *ItemService) ListCategories(ctx context.Context) ([]entity.DbCategory, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		s.log.WithError(err).Error("failed to list categories")
		return nil, ErrUnavailable
	}
	return categories, nil
}

// ListTags returns all tags ordered by ascending id.
func (s *ItemService) ListTags(ctx context.Context) ([]entity.DbTag, error) {
	tags, err := s.repo.ListTags(ctx)
	if err != nil {
		s.log.WithError(err).Error("failed to list tags")
		return nil, ErrUnavailable
	}
	return tags, nil
}

// CreateItem registers a vendor with its category/tag connections and fresh
// link rows in one transaction. Returns the scalar item fields only.
func (s *ItemService) CreateItem(ctx context.Context, req entity.ItemCreateRequest) (*entity.DbItem, error) {
	item := &entity.DbItem{
		Name:        req.Name,
		Thumbnail:   req.Thumbnail,
		Description: req.Description,
		ImgMaxCount: req.ImgMaxCount,
	}

	if err := s.repo.CreateItem(ctx, item, req.Categories, req.Tags, req.Links); err != nil {
		s.log.WithError(err).WithField("name", req.Name).Error("failed to create item")
		return nil, ErrUnavailable
	}
	return item, nil
}

// CreateCategory inserts one category row.
func (s *ItemService) CreateCategory(ctx context.Context, name string) (*entity.DbCategory, error) {
	category := &entity.DbCategory{Name: name}
	if err := s.repo.CreateCategory(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateCategory
		}
		s.log.WithError(err).WithField("name", name).Error("failed to create category")
		return nil, ErrUnavailable
	}
	return category, nil
}

// CreateTag inserts one tag row.
func (s *ItemService) CreateTag(ctx context.Context, name string) (*entity.DbTag, error) {
	tag := &entity.DbTag{Name: name}
	if err := s.repo.CreateTag(ctx, tag); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateTag
		}
		s.log.WithError(err).WithField("name", name).Error("failed to create tag")
		return nil, ErrUnavailable
	}
	return tag, nil
}

// UpdateItem applies the present fields to the item's scalar columns and
// returns the updated row. Associations are never touched.
func (s *ItemService) UpdateItem(ctx context.Context, id uint, req entity.ItemUpdateRequest) (*entity.DbItem, error) {
	updates := entity.ItemUpdates{
		Name:        req.Name,
		Thumbnail:   req.Thumbnail,
		Description: req.Description,
		ImgMaxCount: req.ImgMaxCount,
	}

	if err := s.repo.UpdateItem(ctx, id, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		s.log.WithError(err).WithField("item_id", id).Error("failed to update item")
		return nil, ErrUnavailable
	}

	item, err := s.repo.GetItem(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		s.log.WithError(err).WithField("item_id", id).Error("failed to reload item after update")
		return nil, ErrUnavailable
	}
	return item, nil
}

// UpdateLinkOnItem mutates the link row in place after checking it actually
// belongs to the item, then re-fetches the owning item with links expanded.
func (s *ItemService) UpdateLinkOnItem(ctx context.Context, itemID, linkID uint, req entity.LinkUpdateRequest) (*entity.ItemDetail, error) {
	if _, err := s.repo.GetItemLink(ctx, itemID, linkID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLinkNotFound
		}
		s.log.WithError(err).WithField("link_id", linkID).Error("failed to load item link")
		return nil, ErrUnavailable
	}

	updates := entity.LinkUpdates{
		URL:    req.URL,
		Type:   req.Type,
		IsMain: req.IsMain,
	}
	if err := s.repo.UpdateLink(ctx, linkID, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLinkNotFound
		}
		s.log.WithError(err).WithField("link_id", linkID).Error("failed to update link")
		return nil, ErrUnavailable
	}

	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		s.log.WithError(err).WithField("item_id", itemID).Error("failed to reload item after link update")
		return nil, ErrUnavailable
	}
	detail := flattenItemDetail(item)
	return &detail, nil
}

// UpdateCategory renames a category row.
func (s *ItemService) UpdateCategory(ctx context.Context, id uint, name string) (*entity.DbCategory, error) {
	updates := entity.CategoryUpdates{Name: &name}
	if err := s.repo.UpdateCategory(ctx, id, updates); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrCategoryNotFound
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, ErrDuplicateCategory
		}
		s.log.WithError(err).WithField("category_id", id).Error("failed to update category")
		return nil, ErrUnavailable
	}
	return &entity.DbCategory{ID: id, Name: name}, nil
}

// UpdateTag renames a tag row.
func (s *ItemService) UpdateTag(ctx context.Context, id uint, name string) (*entity.DbTag, error) {
	updates := entity.TagUpdates{Name: &name}
	if err := s.repo.UpdateTag(ctx, id, updates); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrTagNotFound
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, ErrDuplicateTag
		}
		s.log.WithError(err).WithField("tag_id", id).Error("failed to update tag")
		return nil, ErrUnavailable
	}
	return &entity.DbTag{ID: id, Name: name}, nil
}

// thumbnailKey extracts the object key from the stored thumbnail value. The
// stored value may be a bare key or carry a URL prefix; everything up to the
// configured root is dropped and the root re-joined onto the remainder.
func (s *ItemService) thumbnailKey(stored string) string {
	cleaned := strings.TrimLeft(strings.TrimSpace(stored), "/")
	if s.thumbnailRoot == "" {
		return cleaned
	}
	marker := s.thumbnailRoot + "/"
	if idx := strings.Index(cleaned, marker); idx >= 0 {
		return path.Join(s.thumbnailRoot, cleaned[idx+len(marker):])
	}
	return path.Join(s.thumbnailRoot, cleaned)
}

// flattenItem projects an item with preloaded join rows into the
// denormalized listing shape: category names, tag names, {type, link} pairs.
func flattenItem(item entity.DbItem) entity.ItemView {
	view := entity.ItemView{
		ID:          item.ID,
		Name:        item.Name,
		Thumbnail:   item.Thumbnail,
		Description: item.Description,
		ImgMaxCount: item.ImgMaxCount,
		Categories:  make([]string, 0, len(item.Categories)),
		Tags:        make([]string, 0, len(item.Tags)),
		Links:       make([]entity.ItemLinkView, 0, len(item.Links)),
	}
	for _, join := range item.Categories {
		view.Categories = append(view.Categories, join.Category.Name)
	}
	for _, join := range item.Tags {
		view.Tags = append(view.Tags, join.Tag.Name)
	}
	for _, join := range item.Links {
		view.Links = append(view.Links, entity.ItemLinkView{Type: join.Link.Type, URL: join.Link.URL})
	}
	return view
}

// flattenItemDetail keeps the full association rows, shedding only the join
// wrappers.
func flattenItemDetail(item *entity.DbItem) entity.ItemDetail {
	detail := entity.ItemDetail{
		ID:          item.ID,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
		Name:        item.Name,
		Thumbnail:   item.Thumbnail,
		Description: item.Description,
		ImgMaxCount: item.ImgMaxCount,
		Categories:  make([]entity.DbCategory, 0, len(item.Categories)),
		Tags:        make([]entity.DbTag, 0, len(item.Tags)),
		Links:       make([]entity.DbLink, 0, len(item.Links)),
	}
	for _, join := range item.Categories {
		detail.Categories = append(detail.Categories, join.Category)
	}
	for _, join := range item.Tags {
		detail.Tags = append(detail.Tags, join.Tag)
	}
	for _, join := range item.Links {
		detail.Links = append(detail.Links, join.Link)
	}
	return detail
}
