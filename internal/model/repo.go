package model

import (
	"context"

	"weddingbook/internal/entity"
)

// Repository 定义数据库操作接口
type Repository interface {
	// 商家目录
	ListItems(ctx context.Context, query *entity.ItemQuery) ([]entity.DbItem, error)
	GetItem(ctx context.Context, id uint) (*entity.DbItem, error)
	CreateItem(ctx context.Context, item *entity.DbItem, categories, tags []string, links []entity.LinkPayload) error
	UpdateItem(ctx context.Context, id uint, updates entity.ItemUpdates) error

	// 分类与标签（固定取值集合）
	ListCategories(ctx context.Context) ([]entity.DbCategory, error)
	CreateCategory(ctx context.Context, category *entity.DbCategory) error
	UpdateCategory(ctx context.Context, id uint, updates entity.CategoryUpdates) error
	ListTags(ctx context.Context) ([]entity.DbTag, error)
	CreateTag(ctx context.Context, tag *entity.DbTag) error
	UpdateTag(ctx context.Context, id uint, updates entity.TagUpdates) error

	// 链接
	GetItemLink(ctx context.Context, itemID, linkID uint) (*entity.DbLink, error)
	UpdateLink(ctx context.Context, id uint, updates entity.LinkUpdates) error

	// 延迟任务
	CreateTask(ctx context.Context, task *entity.DbTask) error
	ListTasks(ctx context.Context, query *entity.TaskQuery) ([]entity.DbTask, error)

	// 用户管理
	CreateUser(ctx context.Context, user *entity.DbUser) error
	GetUserByEmail(ctx context.Context, email string) (*entity.DbUser, error)
	GetUserByID(ctx context.Context, id uint) (*entity.DbUser, error)
	CountUsers(ctx context.Context) (int64, error)
}
