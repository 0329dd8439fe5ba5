package sql

import (
	"context"
	"fmt"

	"weddingbook/internal/entity"
)

// CreateTask persists a new deferred task row.
func (r *GormRepository) CreateTask(ctx context.Context, task *entity.DbTask) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if task == nil {
		return fmt.Errorf("task is nil")
	}
	return r.db.WithContext(ctx).Create(task).Error
}

// ListTasks returns tasks filtered by optional status and kind.
func (r *GormRepository) ListTasks(ctx context.Context, query *entity.TaskQuery) ([]entity.DbTask, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}

	tx := r.db.WithContext(ctx).Model(&entity.DbTask{})
	if query != nil {
		if query.Status != nil {
			tx = tx.Where("status = ?", *query.Status)
		}
		if query.Type != nil {
			tx = tx.Where("type = ?", *query.Type)
		}
	}

	var tasks []entity.DbTask
	if err := tx.Order("id ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}
