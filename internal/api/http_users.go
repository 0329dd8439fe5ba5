package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"weddingbook/internal/auth"
	"weddingbook/internal/entity"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RegisterUser POST /users
//
// 管理员注册不直接建账号：凭据进延迟任务队列，由进程外 worker 审核后
// 创建。非管理员注册先收下请求，等待邮箱验证流程接入。
func (h *HTTPHandler) RegisterUser(c *gin.Context) {
	if h.repo == nil {
		ServiceUnavailable(c, "user repository not available")
		return
	}

	var req entity.UserRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	password := strings.TrimSpace(req.Password)
	if email == "" || password == "" {
		BadRequest(c, ErrCodeInvalidRequest, "email and password are required")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), handlerTimeout)
	defer cancel()

	if _, err := h.repo.GetUserByEmail(ctx, email); err == nil {
		Conflict(c, ErrCodeEmailExists, "邮箱已被注册")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		logrus.WithError(err).WithField("email", email).Error("failed to check email during registration")
		ServiceUnavailable(c, "请稍后再试")
		return
	}

	if req.IsAdmin {
		task, err := h.taskService.RegisterSignup(ctx, email, password, 0)
		if err != nil {
			CatalogError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"status":  "pending",
			"task_id": task.ID,
		})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}

// RegisterSuperUser POST /users/super
//
// 一次性引导接口：仅在系统还没有任何用户时创建首个管理员账号。
func (h *HTTPHandler) RegisterSuperUser(c *gin.Context) {
	if h.repo == nil {
		ServiceUnavailable(c, "user repository not available")
		return
	}

	var req entity.UserRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	password := strings.TrimSpace(req.Password)
	if email == "" || password == "" {
		BadRequest(c, ErrCodeInvalidRequest, "email and password are required")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), handlerTimeout)
	defer cancel()

	count, err := h.repo.CountUsers(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to count users during bootstrap")
		ServiceUnavailable(c, "请稍后再试")
		return
	}
	if count > 0 {
		ErrorResponse(c, http.StatusForbidden, ErrCodeRegistrationClosed, "引导注册已关闭")
		return
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		logrus.WithError(err).Error("failed to hash password")
		InternalError(c, "failed to register user")
		return
	}

	user := &entity.DbUser{
		Email:    email,
		Password: hash,
		IsAdmin:  true,
		Nickname: strings.TrimSpace(req.Nickname),
	}

	if err := h.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			Conflict(c, ErrCodeEmailExists, "邮箱已被注册")
			return
		}
		logrus.WithError(err).Error("failed to create initial user")
		InternalError(c, "failed to register user")
		return
	}

	token, expiresAt, err := h.authManager.GenerateToken(user)
	if err != nil {
		logrus.WithError(err).Error("failed to create token for user")
		InternalError(c, "failed to create session")
		return
	}

	c.JSON(http.StatusCreated, entity.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      makeUserSummary(user),
	})
}
