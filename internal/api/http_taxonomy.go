package api

import (
	"context"
	"net/http"
	"strings"

	"weddingbook/internal/entity"

	"github.com/gin-gonic/gin"
)

// ListCategories GET /items/categories
func (h *HTTPHandler) ListCategories(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), handlerTimeout)
	defer cancel()

	categories, err := h.itemService.ListCategories(ctx)
	if err != nil {
		CatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// CreateCategory POST /items/categories (admin)
func (h *HTTPHandler) CreateCategory(c *gin.Context) {
	var req entity.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		MissingField(c, "name")
		return
	}
	if !entity.IsItemCategory(name) {
		ErrorResponseWithDetails(c, http.StatusBadRequest, ErrCodeInvalidCategory,
			"unknown category", gin.H{"value": name})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), handlerTimeout)
	defer cancel()

	category, err := h.itemService.CreateCategory(ctx, name)
	if err != nil {
		CatalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

// UpdateCategory PUT /items/categories/:id (admin)
func (h *HTTPHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req entity.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		MissingField(c, "name")
		return
	}
	if !entity.IsItemCategory(name) {
		ErrorResponseWithDetails(c, http.StatusBadRequest, ErrCodeInvalidCategory,
			"unknown category", gin.H{"value": name})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), handlerTimeout)
	defer cancel()

	category, err := h.itemService.UpdateCategory(ctx, id, name)
	if err != nil {
		CatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// ListTags GET /items/tags
func (h *HTTPHandler) ListTags(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), handlerTimeout)
	defer cancel()

	tags, err := h.itemService.ListTags(ctx)
	if err != nil {
		CatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, tags)
}

// CreateTag POST /items/tags (admin)
func (h *HTTPHandler) CreateTag(c *gin.Context) {
	var req entity.TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		MissingField(c, "name")
		return
	}
	if !entity.IsItemTag(name) {
		ErrorResponseWithDetails(c, http.StatusBadRequest, ErrCodeInvalidTag,
			"unknown tag", gin.H{"value": name})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), handlerTimeout)
	defer cancel()

	tag, err := h.itemService.CreateTag(ctx, name)
	if err != nil {
		CatalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tag)
}

// UpdateTag PUT /items/tags/:id (admin)
func (h *HTTPHandler) UpdateTag(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req entity.TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		MissingField(c, "name")
		return
	}
	if !entity.IsItemTag(name) {
		ErrorResponseWithDetails(c, http.StatusBadRequest, ErrCodeInvalidTag,
			"unknown tag", gin.H{"value": name})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), handlerTimeout)
	defer cancel()

	tag, err := h.itemService.UpdateTag(ctx, id, name)
	if err != nil {
		CatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, tag)
}
