package api

import (
	"time"

	"weddingbook/internal/auth"
	"weddingbook/internal/config"
	"weddingbook/internal/model"
	"weddingbook/internal/service"
	"weddingbook/internal/storage"

	"github.com/sirupsen/logrus"
)

// HTTPHandler HTTP 请求处理器
type HTTPHandler struct {
	cfg         config.Config
	repo        model.Repository
	resolver    storage.Resolver
	authManager *auth.Manager

	// 服务层
	itemService *service.ItemService
	taskService *service.TaskService
}

// NewHTTPHandler 创建 HTTP 处理器实例
func NewHTTPHandler(cfg config.Config, repo model.Repository, resolver storage.Resolver, logger logrus.FieldLogger) (*HTTPHandler, error) {
	expiry := time.Duration(cfg.JWTExpirationMinutes) * time.Minute
	authManager, err := auth.NewManager(cfg.JWTSecret, cfg.JWTIssuer, expiry)
	if err != nil {
		return nil, err
	}

	return &HTTPHandler{
		cfg:         cfg,
		repo:        repo,
		resolver:    resolver,
		authManager: authManager,
		itemService: service.NewItemService(repo, resolver, cfg.StorageThumbnailRoot, logger),
		taskService: service.NewTaskService(repo, logger),
	}, nil
}
