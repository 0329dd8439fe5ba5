package entity

import "time"

// 商家分类固定取值
const (
	CategorySnap    = "snap"
	CategoryHall    = "hall"
	CategoryHairMkp = "hair&makeup"
	CategoryDress   = "dress"
	CategorySuit    = "suit"
	CategoryStudio  = "studio"
	CategoryBouquet = "bouquet"
	CategoryFilm    = "film"
)

// 商家标签固定取值
const (
	TagEmo  = "emo"
	TagLuv  = "luv"
	TagFre  = "fre"
	TagMod  = "mod"
	TagWarm = "warm"
)

// 链接分类固定取值
const (
	LinkTypeInstagram = "instagram"
	LinkTypeSelf      = "self"
)

// ItemCategories lists every valid category name, in seed order.
var ItemCategories = []string{
	CategorySnap, CategoryHall, CategoryHairMkp, CategoryDress,
	CategorySuit, CategoryStudio, CategoryBouquet, CategoryFilm,
}

// ItemTags lists every valid tag name, in seed order.
var ItemTags = []string{TagEmo, TagLuv, TagFre, TagMod, TagWarm}

// LinkTypes lists every valid link type.
var LinkTypes = []string{LinkTypeInstagram, LinkTypeSelf}

func containsString(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

// IsItemCategory reports whether v is a member of the fixed category set.
func IsItemCategory(v string) bool { return containsString(ItemCategories, v) }

// IsItemTag reports whether v is a member of the fixed tag set.
func IsItemTag(v string) bool { return containsString(ItemTags, v) }

// IsLinkType reports whether v is a member of the fixed link type set.
func IsLinkType(v string) bool { return containsString(LinkTypes, v) }

// DbItem represents a persisted wedding vendor.
//
// Thumbnail holds an object key under the configured storage root, not a
// direct URL; listing substitutes a signed URL for it.
type DbItem struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Name        string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Thumbnail   string    `gorm:"column:thumbnail;type:varchar(1024);not null" json:"thumbnail"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	ImgMaxCount int       `gorm:"column:img_max_count;not null;default:0" json:"img_max_count"`

	Categories []DbItemCategory `gorm:"foreignKey:ItemID" json:"-"`
	Tags       []DbItemTag      `gorm:"foreignKey:ItemID" json:"-"`
	Links      []DbItemLink     `gorm:"foreignKey:ItemID" json:"-"`
}

// TableName 指定表名
func (DbItem) TableName() string {
	return "items"
}

// DbCategory represents one of the fixed vendor categories.
type DbCategory struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `gorm:"column:name;size:64;uniqueIndex;not null" json:"name"`
}

// TableName 指定表名
func (DbCategory) TableName() string {
	return "categories"
}

// DbTag represents one of the fixed vendor tags.
type DbTag struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `gorm:"column:name;size:64;uniqueIndex;not null" json:"name"`
}

// TableName 指定表名
func (DbTag) TableName() string {
	return "tags"
}

// DbLink represents a vendor site link. A link row is owned by exactly one
// item through the item_links join row, but stays addressable by its own id.
type DbLink struct {
	ID     uint   `gorm:"primarykey" json:"id"`
	URL    string `gorm:"column:link;type:varchar(1024);not null" json:"link"`
	Type   string `gorm:"column:type;size:32;not null" json:"type"`
	IsMain bool   `gorm:"column:is_main;not null;default:false" json:"is_main"`
}

// TableName 指定表名
func (DbLink) TableName() string {
	return "links"
}

// DbItemCategory 商家与分类的关联表。
type DbItemCategory struct {
	ItemID     uint      `gorm:"primaryKey" json:"item_id"`
	CategoryID uint      `gorm:"primaryKey" json:"category_id"`
	CreatedAt  time.Time `json:"created_at"`

	Category DbCategory `gorm:"foreignKey:CategoryID" json:"category"`
}

// TableName 指定表名
func (DbItemCategory) TableName() string {
	return "item_categories"
}

// DbItemTag 商家与标签的关联表。
type DbItemTag struct {
	ItemID    uint      `gorm:"primaryKey" json:"item_id"`
	TagID     uint      `gorm:"primaryKey" json:"tag_id"`
	CreatedAt time.Time `json:"created_at"`

	Tag DbTag `gorm:"foreignKey:TagID" json:"tag"`
}

// TableName 指定表名
func (DbItemTag) TableName() string {
	return "item_tags"
}

// DbItemLink 商家与链接的关联表。
type DbItemLink struct {
	ItemID    uint      `gorm:"primaryKey" json:"item_id"`
	LinkID    uint      `gorm:"primaryKey" json:"link_id"`
	CreatedAt time.Time `json:"created_at"`

	Link DbLink `gorm:"foreignKey:LinkID" json:"link"`
}

// TableName 指定表名
func (DbItemLink) TableName() string {
	return "item_links"
}

// ItemLinkView is the flattened link shape returned by the listing endpoint.
type ItemLinkView struct {
	Type string `json:"type"`
	URL  string `json:"link"`
}

// ItemView is the denormalized vendor shape returned by the listing endpoint.
// Thumbnail carries a signed URL, not the stored object key.
type ItemView struct {
	ID          uint           `json:"id"`
	Name        string         `json:"name"`
	Thumbnail   string         `json:"thumbnail"`
	Description string         `json:"description"`
	ImgMaxCount int            `json:"img_max_count"`
	Categories  []string       `json:"categories"`
	Tags        []string       `json:"tags"`
	Links       []ItemLinkView `json:"links"`
}

// ItemDetail is the single-item shape with full association rows expanded.
type ItemDetail struct {
	ID          uint         `json:"id"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	Name        string       `json:"name"`
	Thumbnail   string       `json:"thumbnail"`
	Description string       `json:"description"`
	ImgMaxCount int          `json:"img_max_count"`
	Categories  []DbCategory `json:"categories"`
	Tags        []DbTag      `json:"tags"`
	Links       []DbLink     `json:"links"`
}
