package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"weddingbook/internal/api"
	"weddingbook/internal/config"
	"weddingbook/internal/model"
	"weddingbook/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	// 初始化配置
	cfg, err := config.ParseConfig()
	if err != nil {
		logrus.WithError(err).Error("Failed to parse config")
		return
	}

	// 初始化logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.InfoLevel)

	repo, err := model.InitRepository(&cfg)
	if err != nil {
		logrus.WithError(err).Error("failed to initialise repository")
		return
	}

	// 固定分类/标签行必须先于首个商家创建
	if repo != nil {
		if err := model.SeedTaxonomy(context.Background(), repo); err != nil {
			logrus.WithError(err).Warn("failed to seed catalog taxonomy")
		}
	}

	resolver, err := storage.NewResolver(cfg)
	if err != nil {
		logrus.WithError(err).Error("failed to initialise storage resolver")
		return
	}

	httpHandler, err := api.NewHTTPHandler(cfg, repo, resolver, logger)
	if err != nil {
		logrus.WithError(err).Error("failed to initialise http handler")
		return
	}

	// 设置Gin模式
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// 添加中间件
	r.Use(LoggingMiddleware())
	r.Use(CORSMiddleware())
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	authGroup := r.Group("/auth")
	authGroup.POST("/login", httpHandler.Login)
	authGroup.GET("/me", httpHandler.AuthMiddleware(), httpHandler.Me)

	users := r.Group("/users")
	users.POST("", httpHandler.RegisterUser)
	users.POST("/super", httpHandler.RegisterSuperUser)

	items := r.Group("/items")
	items.GET("", httpHandler.ListItems)
	items.GET("/categories", httpHandler.ListCategories)
	items.GET("/tags", httpHandler.ListTags)
	items.GET("/:id", httpHandler.GetItem)

	itemAdmin := items.Group("")
	itemAdmin.Use(httpHandler.AuthMiddleware(), httpHandler.RequireAdmin())
	itemAdmin.POST("", httpHandler.CreateItem)
	itemAdmin.POST("/categories", httpHandler.CreateCategory)
	itemAdmin.POST("/tags", httpHandler.CreateTag)
	itemAdmin.PATCH("/:id", httpHandler.UpdateItem)
	itemAdmin.PATCH("/:id/links/:linkId", httpHandler.UpdateItemLink)
	itemAdmin.PUT("/categories/:id", httpHandler.UpdateCategory)
	itemAdmin.PUT("/tags/:id", httpHandler.UpdateTag)

	tasks := r.Group("/tasks")
	tasks.Use(httpHandler.AuthMiddleware(), httpHandler.RequireAdmin())
	tasks.GET("", httpHandler.ListTasks)
	tasks.POST("", httpHandler.CreateTask)

	// 本地存储时直接用静态路由提供对象文件
	if localResolver, ok := resolver.(*storage.LocalResolver); ok {
		publicPrefix := strings.TrimSpace(cfg.StoragePublicBaseURL)
		if publicPrefix == "" {
			publicPrefix = "/files"
		}
		if !strings.HasPrefix(publicPrefix, "http://") && !strings.HasPrefix(publicPrefix, "https://") {
			if !strings.HasPrefix(publicPrefix, "/") {
				publicPrefix = "/" + publicPrefix
			}
			r.Static(publicPrefix, localResolver.LocalBaseDir())
		}
	}

	serverHost := fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort)
	logger.WithField("host", serverHost).Info("服务器启动")
	// 创建HTTP服务器
	httpServer := &http.Server{
		Addr:         serverHost,
		Handler:      r,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	err = httpServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		logger.WithError(err).Error("服务器启动失败")
	}
}

// CORSMiddleware CORS跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
		c.Header("Access-Control-Allow-Credentials", "true")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// LoggingMiddleware 日志记录中间件
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		// 处理请求
		c.Next()
		// 记录请求结束
		duration := time.Since(start)
		logrus.WithFields(logrus.Fields{
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"status":    c.Writer.Status(),
			"duration":  duration.String(),
			"size":      c.Writer.Size(),
			"client_ip": c.ClientIP(),
		}).Info("http_request")
	}
}
