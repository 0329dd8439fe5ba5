package entity

// ItemQuery carries pagination and facet selections for the item listing.
// Each facet list ORs its values; supplied facets combine with AND.
type ItemQuery struct {
	Limit      int      `form:"limit" json:"limit"`
	Offset     int      `form:"offset" json:"offset"`
	Categories []string `form:"categories" json:"categories" collection_format:"csv"`
	Tags       []string `form:"tags" json:"tags" collection_format:"csv"`
	Links      []string `form:"links" json:"links" collection_format:"csv"`
}

// LinkPayload describes one link attached at item creation time.
type LinkPayload struct {
	URL    string `json:"link" binding:"required,url"`
	Type   string `json:"type" binding:"required"`
	IsMain bool   `json:"is_main"`
}

// ItemCreateRequest 创建商家请求。分类与标签按唯一名称连接到已有行，
// 链接随商家一并新建。
type ItemCreateRequest struct {
	Name        string        `json:"name" binding:"required"`
	Thumbnail   string        `json:"thumbnail" binding:"required"`
	Description string        `json:"description" binding:"required"`
	ImgMaxCount int           `json:"img_max_count" binding:"required"`
	Categories  []string      `json:"categories"`
	Tags        []string      `json:"tags"`
	Links       []LinkPayload `json:"links"`
}

// ItemUpdateRequest applies only the fields present to the item's scalar
// columns; associations are never touched here.
type ItemUpdateRequest struct {
	Name        *string `json:"name,omitempty"`
	Thumbnail   *string `json:"thumbnail,omitempty"`
	Description *string `json:"description,omitempty"`
	ImgMaxCount *int    `json:"img_max_count,omitempty"`
}

// LinkUpdateRequest mutates a link row in place by its own id.
type LinkUpdateRequest struct {
	URL    *string `json:"link,omitempty"`
	Type   *string `json:"type,omitempty"`
	IsMain *bool   `json:"is_main,omitempty"`
}

type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type TagRequest struct {
	Name string `json:"name" binding:"required"`
}
