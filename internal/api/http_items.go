package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"weddingbook/internal/entity"

	"github.com/gin-gonic/gin"
)

const handlerTimeout = 5 * time.Second

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		BadRequest(c, ErrCodeInvalidRequest, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// validateFacets 在边界校验分面取值的枚举成员资格
func validateFacets(c *gin.Context, query *entity.ItemQuery) bool {
	for _, name := range query.Categories {
		if !entity.IsItemCategory(name) {
			ErrorResponseWithDetails(c, http.StatusBadRequest, ErrCodeInvalidCategory,
				"unknown category", gin.H{"value": name})
			return false
		}
	}
	for _, name := range query.Tags {
		if !entity.IsItemTag(name) {
			ErrorResponseWithDetails(c, http.StatusBadRequest, ErrCodeInvalidTag,
				"unknown tag", gin.H{"value": name})
			return false
		}
	}
	for _, name := range query.Links {
		if !entity.IsLinkType(name) {
			ErrorResponseWithDetails(c, http.StatusBadRequest, ErrCodeInvalidLinkType,
				"unknown link type", gin.H{"value": name})
			return false
		}
	}
	return true
}

// ListItems GET /items 分面筛选 + 展平 + 缩略图签名 URL
func (h *HTTPHandler) ListItems(c *gin.Context) {
	var query entity.ItemQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		InvalidPayload(c)
		return
	}
	if query.Limit < 0 || query.Offset < 0 {
		BadRequest(c, ErrCodeInvalidRequest, "limit and offset must be non-negative")
		return
	}
	if !validateFacets(c, &query) {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), handlerTimeout)
	defer cancel()

	views, err := h.itemService.ListItems(ctx, &query)
	if err != nil {
		CatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// GetItem GET /items/:id
func (h *HTTPHandler) GetItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), handlerTimeout)
	defer cancel()

	detail, err := h.itemService.GetItem(ctx, id)
	if err != nil {
		CatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// CreateItem POST /items (admin)
func (h *HTTPHandler) CreateItem(c *gin.Context) {
	var req entity.ItemCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}
	for _, name := range req.Categories {
		if !entity.IsItemCategory(name) {
			ErrorResponseWithDetails(c, http.StatusBadRequest, ErrCodeInvalidCategory,
				"unknown category", gin.H{"value": name})
			return
		}
	}
	for _, name := range req.Tags {
		if !entity.IsItemTag(name) {
			ErrorResponseWithDetails(c, http.StatusBadRequest, ErrCodeInvalidTag,
				"unknown tag", gin.H{"value": name})
			return
		}
	}
	for _, link := range req.Links {
		if !entity.IsLinkType(link.Type) {
			ErrorResponseWithDetails(c, http.StatusBadRequest, ErrCodeInvalidLinkType,
				"unknown link type", gin.H{"value": link.Type})
			return
		}
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), handlerTimeout)
	defer cancel()

	item, err := h.itemService.CreateItem(ctx, req)
	if err != nil {
		CatalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateItem PATCH /items/:id (admin) 仅更新标量列
func (h *HTTPHandler) UpdateItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req entity.ItemUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), handlerTimeout)
	defer cancel()

	item, err := h.itemService.UpdateItem(ctx, id, req)
	if err != nil {
		CatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// UpdateItemLink PATCH /items/:id/links/:linkId (admin)
func (h *HTTPHandler) UpdateItemLink(c *gin.Context) {
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	linkID, ok := parseIDParam(c, "linkId")
	if !ok {
		return
	}

	var req entity.LinkUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}
	if req.Type != nil && !entity.IsLinkType(*req.Type) {
		ErrorResponseWithDetails(c, http.StatusBadRequest, ErrCodeInvalidLinkType,
			"unknown link type", gin.H{"value": *req.Type})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), handlerTimeout)
	defer cancel()

	detail, err := h.itemService.UpdateLinkOnItem(ctx, itemID, linkID, req)
	if err != nil {
		CatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}
