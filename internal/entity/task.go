package entity

import "time"

// 任务类型固定取值
const (
	TaskKindScrap     = 1
	TaskKindPromotion = 2
	TaskKindRegist    = 3
)

// 任务状态固定取值，仅允许向前流转：
// PENDING → IN_PROGRESS → {COMPLETE, ERROR}
const (
	TaskStatusComplete   = 1
	TaskStatusPending    = 2
	TaskStatusInProgress = 3
	TaskStatusError      = 4
)

// IsTaskKind reports whether v is a known task kind.
func IsTaskKind(v int) bool {
	switch v {
	case TaskKindScrap, TaskKindPromotion, TaskKindRegist:
		return true
	default:
		return false
	}
}

// IsTaskStatus reports whether v is a known task status.
func IsTaskStatus(v int) bool {
	switch v {
	case TaskStatusComplete, TaskStatusPending, TaskStatusInProgress, TaskStatusError:
		return true
	default:
		return false
	}
}

// DbTask represents a deferred admin action. Rows are created in PENDING and
// picked up by an out-of-process worker; this service never advances status.
type DbTask struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Type      int       `gorm:"column:type;not null;index" json:"type"`
	Status    int       `gorm:"column:status;not null;index" json:"status"`
	Message   string    `gorm:"column:message;type:text;not null" json:"message"`
	UserID    uint      `gorm:"column:user_id;not null;index" json:"user_id"`
}

// TableName 指定表名
func (DbTask) TableName() string {
	return "tasks"
}

// TaskQuery filters the task listing; nil fields impose no constraint.
type TaskQuery struct {
	Status *int `form:"status" json:"status"`
	Type   *int `form:"type" json:"type"`
}

// TaskRegisterRequest enqueues a deferred action. Message is an opaque
// payload; REGIST uses pipe/equals pairs like "email=a@b.c|password=secret".
type TaskRegisterRequest struct {
	Type    int    `json:"type" binding:"required"`
	Message string `json:"message" binding:"required"`
}
