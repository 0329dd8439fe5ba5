package service

import "errors"

// 目录服务对外暴露的领域错误。存储层错误在此收敛：
// 已知错误码映射为 not-found / conflict，其余一律折叠为 ErrUnavailable，
// 内部细节不泄露给调用方。
var (
	// ErrUnavailable 存储层未知错误的统一出口，提示稍后重试。
	ErrUnavailable = errors.New("service temporarily unavailable, retry later")

	ErrItemNotFound     = errors.New("item not found")
	ErrLinkNotFound     = errors.New("link not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrTagNotFound      = errors.New("tag not found")

	ErrDuplicateCategory = errors.New("duplicate category")
	ErrDuplicateTag      = errors.New("duplicate tag")

	ErrDuplicateUser = errors.New("user already registered")
	ErrUserNotFound  = errors.New("user not found")
)
