package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"weddingbook/internal/config"
	"weddingbook/internal/entity"
	"weddingbook/internal/model"
)

// fakeResolver substitutes a deterministic URL for every object key.
type fakeResolver struct{}

func (fakeResolver) ResolveURL(_ context.Context, objectKey string) (string, error) {
	return "https://cdn.test/" + objectKey + "?sig=test", nil
}

func (fakeResolver) ResolveByPrefix(_ context.Context, prefix string) ([]string, error) {
	return []string{"https://cdn.test/" + prefix + "/a.jpg?sig=test"}, nil
}

// failingResolver rejects every resolution.
type failingResolver struct{}

func (failingResolver) ResolveURL(context.Context, string) (string, error) {
	return "", errors.New("presign failed")
}

func (failingResolver) ResolveByPrefix(context.Context, string) ([]string, error) {
	return nil, errors.New("presign failed")
}

func newTestRepo(t *testing.T) model.Repository {
	t.Helper()

	cfg := &config.Config{
		DBType: model.DBTypeSQLite,
		DBPath: filepath.Join(t.TempDir(), "service_test.db"),
	}
	repo, err := model.InitRepository(cfg)
	if err != nil {
		t.Fatalf("InitRepository() error = %v", err)
	}
	if err := model.SeedTaxonomy(context.Background(), repo); err != nil {
		t.Fatalf("SeedTaxonomy() error = %v", err)
	}
	return repo
}

func newTestItemService(t *testing.T) *ItemService {
	t.Helper()
	return NewItemService(newTestRepo(t), fakeResolver{}, "wedding-book", nil)
}

func mustCreateItem(t *testing.T, svc *ItemService, req entity.ItemCreateRequest) *entity.DbItem {
	t.Helper()
	item, err := svc.CreateItem(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateItem(%q) error = %v", req.Name, err)
	}
	return item
}

func snapItemRequest(name string) entity.ItemCreateRequest {
	return entity.ItemCreateRequest{
		Name:        name,
		Thumbnail:   "wedding-book/" + name + ".jpg",
		Description: name + " studio",
		ImgMaxCount: 10,
		Categories:  []string{entity.CategorySnap},
		Tags:        []string{entity.TagWarm},
	}
}

func TestListItemsNoFacetsReturnsAll(t *testing.T) {
	svc := newTestItemService(t)
	ctx := context.Background()

	mustCreateItem(t, svc, snapItemRequest("aube"))
	mustCreateItem(t, svc, snapItemRequest("bonheur"))

	views, err := svc.ListItems(ctx, nil)
	if err != nil {
		t.Fatalf("ListItems() error = %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("ListItems() returned %d items, want 2", len(views))
	}
	if views[0].ID >= views[1].ID {
		t.Errorf("items not ordered by ascending id: %d then %d", views[0].ID, views[1].ID)
	}
}

func TestListItemsFacetUnionWithinFacet(t *testing.T) {
	svc := newTestItemService(t)
	ctx := context.Background()

	snap := snapItemRequest("snapper")
	mustCreateItem(t, svc, snap)

	hall := snapItemRequest("grandhall")
	hall.Categories = []string{entity.CategoryHall}
	mustCreateItem(t, svc, hall)

	dress := snapItemRequest("atelier")
	dress.Categories = []string{entity.CategoryDress}
	mustCreateItem(t, svc, dress)

	// 同一分面内取并集
	views, err := svc.ListItems(ctx, &entity.ItemQuery{
		Categories: []string{entity.CategorySnap, entity.CategoryHall},
	})
	if err != nil {
		t.Fatalf("ListItems() error = %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("ListItems(snap|hall) returned %d items, want 2", len(views))
	}
	for _, view := range views {
		if view.Name == "atelier" {
			t.Errorf("dress-only item leaked into snap|hall selection")
		}
	}
}

func TestListItemsFacetsCombineWithAnd(t *testing.T) {
	svc := newTestItemService(t)
	ctx := context.Background()

	warm := snapItemRequest("warmsnap")
	mustCreateItem(t, svc, warm)

	emo := snapItemRequest("emosnap")
	emo.Tags = []string{entity.TagEmo}
	mustCreateItem(t, svc, emo)

	views, err := svc.ListItems(ctx, &entity.ItemQuery{
		Categories: []string{entity.CategorySnap},
		Tags:       []string{entity.TagWarm},
	})
	if err != nil {
		t.Fatalf("ListItems() error = %v", err)
	}
	if len(views) != 1 || views[0].Name != "warmsnap" {
		t.Fatalf("ListItems(snap AND warm) = %+v, want only warmsnap", views)
	}
}

func TestListItemsPagination(t *testing.T) {
	svc := newTestItemService(t)
	ctx := context.Background()

	names := []string{"p1", "p2", "p3"}
	for _, name := range names {
		mustCreateItem(t, svc, snapItemRequest(name))
	}

	views, err := svc.ListItems(ctx, &entity.ItemQuery{Limit: 2, Offset: 1})
	if err != nil {
		t.Fatalf("ListItems() error = %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("ListItems(limit=2 offset=1) returned %d items, want 2", len(views))
	}
	if views[0].Name != "p2" || views[1].Name != "p3" {
		t.Errorf("page window = [%s, %s], want [p2, p3]", views[0].Name, views[1].Name)
	}
}

func TestListItemsResolvesThumbnail(t *testing.T) {
	svc := newTestItemService(t)
	ctx := context.Background()

	req := snapItemRequest("resolved")
	req.Thumbnail = "wedding-book/thumb/943.jpg"
	mustCreateItem(t, svc, req)

	views, err := svc.ListItems(ctx, nil)
	if err != nil {
		t.Fatalf("ListItems() error = %v", err)
	}
	want := "https://cdn.test/wedding-book/thumb/943.jpg?sig=test"
	if views[0].Thumbnail != want {
		t.Errorf("Thumbnail = %q, want %q", views[0].Thumbnail, want)
	}
}

func TestListItemsStorageFailureAbortsListing(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewItemService(repo, failingResolver{}, "wedding-book", nil)
	ctx := context.Background()

	if err := repo.CreateItem(ctx, &entity.DbItem{
		Name:      "doomed",
		Thumbnail: "wedding-book/doomed.jpg",
	}, nil, nil, nil); err != nil {
		t.Fatalf("CreateItem() error = %v", err)
	}

	if _, err := svc.ListItems(ctx, nil); !errors.Is(err, ErrUnavailable) {
		t.Errorf("ListItems() error = %v, want ErrUnavailable", err)
	}
}

func TestCreateGetRoundTrip(t *testing.T) {
	svc := newTestItemService(t)
	ctx := context.Background()

	created := mustCreateItem(t, svc, entity.ItemCreateRequest{
		Name:        "fullhouse",
		Thumbnail:   "wedding-book/fullhouse.jpg",
		Description: "full service vendor",
		ImgMaxCount: 20,
		Categories:  []string{entity.CategoryStudio, entity.CategoryFilm},
		Tags:        []string{entity.TagMod},
		Links: []entity.LinkPayload{
			{URL: "https://instagram.com/fullhouse", Type: entity.LinkTypeInstagram, IsMain: true},
			{URL: "https://fullhouse.example.com", Type: entity.LinkTypeSelf},
		},
	})
	if created.ID == 0 {
		t.Fatal("CreateItem() did not assign an id")
	}

	detail, err := svc.GetItem(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetItem(%d) error = %v", created.ID, err)
	}
	if detail.Name != "fullhouse" {
		t.Errorf("Name = %q, want fullhouse", detail.Name)
	}
	if len(detail.Categories) != 2 {
		t.Errorf("len(Categories) = %d, want 2", len(detail.Categories))
	}
	if len(detail.Tags) != 1 || detail.Tags[0].Name != entity.TagMod {
		t.Errorf("Tags = %+v, want single mod", detail.Tags)
	}
	if len(detail.Links) != 2 {
		t.Fatalf("len(Links) = %d, want 2", len(detail.Links))
	}
	if !detail.Links[0].IsMain && !detail.Links[1].IsMain {
		t.Error("no link kept the is_main flag")
	}
	// 详情不做签名 URL 替换
	if detail.Thumbnail != "wedding-book/fullhouse.jpg" {
		t.Errorf("Thumbnail = %q, want raw object key", detail.Thumbnail)
	}
}

func TestCreateItemUnknownCategoryFails(t *testing.T) {
	svc := newTestItemService(t)

	req := snapItemRequest("lonely")
	req.Categories = []string{"castle"}
	if _, err := svc.CreateItem(context.Background(), req); !errors.Is(err, ErrUnavailable) {
		t.Errorf("CreateItem(unknown category) error = %v, want ErrUnavailable", err)
	}
}

func TestGetItemNotFound(t *testing.T) {
	svc := newTestItemService(t)

	if _, err := svc.GetItem(context.Background(), 999); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("GetItem(999) error = %v, want ErrItemNotFound", err)
	}
}

func TestCreateCategoryDuplicate(t *testing.T) {
	svc := newTestItemService(t)
	ctx := context.Background()

	// 种子分类已存在
	if _, err := svc.CreateCategory(ctx, entity.CategoryDress); !errors.Is(err, ErrDuplicateCategory) {
		t.Errorf("CreateCategory(seeded name) error = %v, want ErrDuplicateCategory", err)
	}
}

func TestCreateTagDuplicate(t *testing.T) {
	svc := newTestItemService(t)
	ctx := context.Background()

	// 种子标签已存在
	if _, err := svc.CreateTag(ctx, entity.TagEmo); !errors.Is(err, ErrDuplicateTag) {
		t.Errorf("CreateTag(seeded name) error = %v, want ErrDuplicateTag", err)
	}
}

func TestListCategoriesSeeded(t *testing.T) {
	svc := newTestItemService(t)

	categories, err := svc.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("ListCategories() error = %v", err)
	}
	if len(categories) != len(entity.ItemCategories) {
		t.Fatalf("len(categories) = %d, want %d", len(categories), len(entity.ItemCategories))
	}
	for i, category := range categories {
		if category.Name != entity.ItemCategories[i] {
			t.Errorf("categories[%d] = %q, want %q", i, category.Name, entity.ItemCategories[i])
		}
	}
}

func TestUpdateItemPartial(t *testing.T) {
	svc := newTestItemService(t)
	ctx := context.Background()

	created := mustCreateItem(t, svc, snapItemRequest("renameme"))

	newName := "renamed"
	updated, err := svc.UpdateItem(ctx, created.ID, entity.ItemUpdateRequest{Name: &newName})
	if err != nil {
		t.Fatalf("UpdateItem() error = %v", err)
	}
	if updated.Name != "renamed" {
		t.Errorf("Name = %q, want renamed", updated.Name)
	}
	// 未出现的字段保持原值
	if updated.Description != created.Description {
		t.Errorf("Description changed: %q -> %q", created.Description, updated.Description)
	}
}

func TestUpdateItemNotFound(t *testing.T) {
	svc := newTestItemService(t)

	name := "ghost"
	if _, err := svc.UpdateItem(context.Background(), 999, entity.ItemUpdateRequest{Name: &name}); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("UpdateItem(999) error = %v, want ErrItemNotFound", err)
	}
}

func TestUpdateLinkOnItem(t *testing.T) {
	svc := newTestItemService(t)
	ctx := context.Background()

	req := snapItemRequest("linked")
	req.Links = []entity.LinkPayload{
		{URL: "https://instagram.com/linked", Type: entity.LinkTypeInstagram, IsMain: true},
	}
	created := mustCreateItem(t, svc, req)

	detail, err := svc.GetItem(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetItem() error = %v", err)
	}
	linkID := detail.Links[0].ID

	newURL := "https://linked.example.com"
	newType := entity.LinkTypeSelf
	updated, err := svc.UpdateLinkOnItem(ctx, created.ID, linkID, entity.LinkUpdateRequest{
		URL:  &newURL,
		Type: &newType,
	})
	if err != nil {
		t.Fatalf("UpdateLinkOnItem() error = %v", err)
	}
	if len(updated.Links) != 1 {
		t.Fatalf("len(Links) = %d, want 1", len(updated.Links))
	}
	if updated.Links[0].URL != newURL || updated.Links[0].Type != newType {
		t.Errorf("link = %+v, want url=%q type=%q", updated.Links[0], newURL, newType)
	}
}

func TestUpdateLinkOnItemRejectsForeignLink(t *testing.T) {
	svc := newTestItemService(t)
	ctx := context.Background()

	owner := snapItemRequest("owner")
	owner.Links = []entity.LinkPayload{
		{URL: "https://instagram.com/owner", Type: entity.LinkTypeInstagram},
	}
	created := mustCreateItem(t, svc, owner)
	other := mustCreateItem(t, svc, snapItemRequest("other"))

	detail, err := svc.GetItem(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetItem() error = %v", err)
	}
	linkID := detail.Links[0].ID

	// 链接属于 owner，不能通过 other 改
	newURL := "https://stolen.example.com"
	if _, err := svc.UpdateLinkOnItem(ctx, other.ID, linkID, entity.LinkUpdateRequest{URL: &newURL}); !errors.Is(err, ErrLinkNotFound) {
		t.Errorf("UpdateLinkOnItem(foreign item) error = %v, want ErrLinkNotFound", err)
	}
}

func TestUpdateCategoryNotFound(t *testing.T) {
	svc := newTestItemService(t)

	if _, err := svc.UpdateCategory(context.Background(), 999, "nope"); !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("UpdateCategory(999) error = %v, want ErrCategoryNotFound", err)
	}
}

func TestUpdateTagDuplicateName(t *testing.T) {
	svc := newTestItemService(t)
	ctx := context.Background()

	tags, err := svc.ListTags(ctx)
	if err != nil {
		t.Fatalf("ListTags() error = %v", err)
	}

	// 把第一个标签改成第二个标签的名字
	if _, err := svc.UpdateTag(ctx, tags[0].ID, tags[1].Name); !errors.Is(err, ErrDuplicateTag) {
		t.Errorf("UpdateTag(duplicate name) error = %v, want ErrDuplicateTag", err)
	}
}

func TestThumbnailKeyExtraction(t *testing.T) {
	svc := NewItemService(nil, fakeResolver{}, "wedding-book", nil)

	tests := []struct {
		name   string
		stored string
		want   string
	}{
		{"bare key", "wedding-book/943.jpg", "wedding-book/943.jpg"},
		{"url prefix", "https://bucket.example.com/wedding-book/thumb/1.jpg", "wedding-book/thumb/1.jpg"},
		{"missing root", "thumb/2.jpg", "wedding-book/thumb/2.jpg"},
		{"leading slash", "/wedding-book/3.jpg", "wedding-book/3.jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.thumbnailKey(tt.stored); got != tt.want {
				t.Errorf("thumbnailKey(%q) = %q, want %q", tt.stored, got, tt.want)
			}
		})
	}
}
