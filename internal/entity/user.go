package entity

import "time"

// 用户角色固定取值
const (
	RoleUser  = 0
	RoleAdmin = 1
)

// DbUser represents a persisted user account.
type DbUser struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Email     string    `gorm:"column:email;type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"column:password;type:varchar(255);not null" json:"-"`
	IsAdmin   bool      `gorm:"column:is_admin;not null;default:false" json:"is_admin"`
	Nickname  string    `gorm:"column:nickname;type:varchar(255)" json:"nickname"`
	Provider  string    `gorm:"column:provider;type:varchar(50)" json:"provider,omitempty"`
	SocialID  string    `gorm:"column:social_id;type:varchar(255)" json:"social_id,omitempty"`
}

// TableName 指定表名
func (DbUser) TableName() string {
	return "users"
}

// Role maps the admin flag onto the numeric role claim.
func (u *DbUser) Role() int {
	if u != nil && u.IsAdmin {
		return RoleAdmin
	}
	return RoleUser
}

// UserSummary is a lightweight user description returned to clients.
type UserSummary struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Nickname  string    `json:"nickname"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      UserSummary `json:"user"`
}

// UserRegisterRequest 注册请求；is_admin 为 true 时走延迟任务队列。
type UserRegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	IsAdmin  bool   `json:"is_admin"`
	Nickname string `json:"nickname"`
}
