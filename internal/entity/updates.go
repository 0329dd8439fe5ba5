package entity

// ItemUpdates 商家更新字段
type ItemUpdates struct {
	Name        *string
	Thumbnail   *string
	Description *string
	ImgMaxCount *int
}

// ToMap 转换为 GORM 更新 map（内部使用）
func (u ItemUpdates) ToMap() map[string]interface{} {
	updates := make(map[string]interface{})
	if u.Name != nil {
		updates["name"] = *u.Name
	}
	if u.Thumbnail != nil {
		updates["thumbnail"] = *u.Thumbnail
	}
	if u.Description != nil {
		updates["description"] = *u.Description
	}
	if u.ImgMaxCount != nil {
		updates["img_max_count"] = *u.ImgMaxCount
	}
	return updates
}

// IsEmpty 检查是否没有任何更新字段
func (u ItemUpdates) IsEmpty() bool {
	return len(u.ToMap()) == 0
}

// LinkUpdates 链接更新字段
type LinkUpdates struct {
	URL    *string
	Type   *string
	IsMain *bool
}

// ToMap 转换为 GORM 更新 map（内部使用）
func (u LinkUpdates) ToMap() map[string]interface{} {
	updates := make(map[string]interface{})
	if u.URL != nil {
		updates["link"] = *u.URL
	}
	if u.Type != nil {
		updates["type"] = *u.Type
	}
	if u.IsMain != nil {
		updates["is_main"] = *u.IsMain
	}
	return updates
}

// IsEmpty 检查是否没有任何更新字段
func (u LinkUpdates) IsEmpty() bool {
	return len(u.ToMap()) == 0
}

// CategoryUpdates 分类更新字段
type CategoryUpdates struct {
	Name *string
}

// ToMap 转换为 GORM 更新 map（内部使用）
func (u CategoryUpdates) ToMap() map[string]interface{} {
	updates := make(map[string]interface{})
	if u.Name != nil {
		updates["name"] = *u.Name
	}
	return updates
}

// IsEmpty 检查是否没有任何更新字段
func (u CategoryUpdates) IsEmpty() bool {
	return len(u.ToMap()) == 0
}

// TagUpdates 标签更新字段
type TagUpdates struct {
	Name *string
}

// ToMap 转换为 GORM 更新 map（内部使用）
func (u TagUpdates) ToMap() map[string]interface{} {
	updates := make(map[string]interface{})
	if u.Name != nil {
		updates["name"] = *u.Name
	}
	return updates
}

// IsEmpty 检查是否没有任何更新字段
func (u TagUpdates) IsEmpty() bool {
	return len(u.ToMap()) == 0
}
