package api

import (
	"errors"
	"net/http"

	"weddingbook/internal/service"

	"github.com/gin-gonic/gin"
)

// 错误码定义
const (
	// 通用错误码
	ErrCodeInvalidRequest     = "ERR_INVALID_REQUEST"
	ErrCodeUnauthorized       = "ERR_UNAUTHORIZED"
	ErrCodeForbidden          = "ERR_FORBIDDEN"
	ErrCodeNotFound           = "ERR_NOT_FOUND"
	ErrCodeInternalError      = "ERR_INTERNAL_ERROR"
	ErrCodeServiceUnavailable = "ERR_SERVICE_UNAVAILABLE"

	// 认证错误码
	ErrCodeInvalidCredentials = "ERR_INVALID_CREDENTIALS"
	ErrCodeEmailExists        = "ERR_EMAIL_EXISTS"
	ErrCodeRegistrationClosed = "ERR_REGISTRATION_CLOSED"
	ErrCodeSessionExpired     = "ERR_SESSION_EXPIRED"
	ErrCodeUserNotFound       = "ERR_USER_NOT_FOUND"

	// 资源错误码
	ErrCodeItemNotFound     = "ERR_ITEM_NOT_FOUND"
	ErrCodeLinkNotFound     = "ERR_LINK_NOT_FOUND"
	ErrCodeCategoryNotFound = "ERR_CATEGORY_NOT_FOUND"
	ErrCodeTagNotFound      = "ERR_TAG_NOT_FOUND"
	ErrCodeCategoryExists   = "ERR_CATEGORY_EXISTS"
	ErrCodeTagExists        = "ERR_TAG_EXISTS"

	// 业务逻辑错误码
	ErrCodeMissingField      = "ERR_MISSING_FIELD"
	ErrCodeInvalidCategory   = "ERR_INVALID_CATEGORY"
	ErrCodeInvalidTag        = "ERR_INVALID_TAG"
	ErrCodeInvalidLinkType   = "ERR_INVALID_LINK_TYPE"
	ErrCodeInvalidTaskType   = "ERR_INVALID_TASK_TYPE"
	ErrCodeInvalidTaskStatus = "ERR_INVALID_TASK_STATUS"
)

// APIError 统一的 API 错误响应结构
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorResponse 返回统一格式的错误响应
func ErrorResponse(c *gin.Context, status int, code string, message string) {
	c.JSON(status, APIError{
		Code:    code,
		Message: message,
	})
}

// ErrorResponseWithDetails 返回带详情的错误响应
func ErrorResponseWithDetails(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, APIError{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// 常用错误响应快捷函数

// BadRequest 400 错误请求
func BadRequest(c *gin.Context, code string, message string) {
	ErrorResponse(c, http.StatusBadRequest, code, message)
}

// Unauthorized 401 未授权
func Unauthorized(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusUnauthorized, ErrCodeUnauthorized, message)
}

// Forbidden 403 禁止访问
func Forbidden(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusForbidden, ErrCodeForbidden, message)
}

// NotFound 404 资源不存在
func NotFound(c *gin.Context, code string, message string) {
	ErrorResponse(c, http.StatusNotFound, code, message)
}

// Conflict 409 资源冲突
func Conflict(c *gin.Context, code string, message string) {
	ErrorResponse(c, http.StatusConflict, code, message)
}

// InternalError 500 服务器内部错误
func InternalError(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusInternalServerError, ErrCodeInternalError, message)
}

// ServiceUnavailable 503 服务不可用
func ServiceUnavailable(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, message)
}

// MissingField 缺少必填字段
func MissingField(c *gin.Context, field string) {
	ErrorResponseWithDetails(c, http.StatusBadRequest, ErrCodeMissingField, field+" is required", gin.H{"field": field})
}

// InvalidPayload 无效的请求体
func InvalidPayload(c *gin.Context) {
	ErrorResponse(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request payload")
}

// CatalogError 把服务层哨兵错误映射为统一错误响应
func CatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrItemNotFound):
		NotFound(c, ErrCodeItemNotFound, "商家不存在")
	case errors.Is(err, service.ErrLinkNotFound):
		NotFound(c, ErrCodeLinkNotFound, "链接不存在")
	case errors.Is(err, service.ErrCategoryNotFound):
		NotFound(c, ErrCodeCategoryNotFound, "分类不存在")
	case errors.Is(err, service.ErrTagNotFound):
		NotFound(c, ErrCodeTagNotFound, "标签不存在")
	case errors.Is(err, service.ErrDuplicateCategory):
		Conflict(c, ErrCodeCategoryExists, "分类名称已存在")
	case errors.Is(err, service.ErrDuplicateTag):
		Conflict(c, ErrCodeTagExists, "标签名称已存在")
	case errors.Is(err, service.ErrDuplicateUser):
		Conflict(c, ErrCodeEmailExists, "邮箱已被注册")
	case errors.Is(err, service.ErrUserNotFound):
		NotFound(c, ErrCodeUserNotFound, "用户不存在")
	default:
		ServiceUnavailable(c, "请稍后再试")
	}
}
