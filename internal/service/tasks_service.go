package service

import (
	"context"
	"fmt"

	"weddingbook/internal/entity"
	"weddingbook/internal/model"

	"github.com/sirupsen/logrus"
)

// TaskService 延迟任务登记簿：只记录任务，从不执行。
type TaskService struct {
	repo model.Repository
	log  logrus.FieldLogger
}

// NewTaskService 创建任务服务实例。logger 显式注入，不依赖全局单例。
func NewTaskService(repo model.Repository, logger logrus.FieldLogger) *TaskService {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &TaskService{repo: repo, log: logger}
}

// Register records a deferred task. Every task starts in the pending state
// regardless of what the caller supplies.
func (s *TaskService) Register(ctx context.Context, kind int, message string, userID uint) (*entity.DbTask, error) {
	task := &entity.DbTask{
		Type:    kind,
		Status:  entity.TaskStatusPending,
		Message: message,
		UserID:  userID,
	}
	if err := s.repo.CreateTask(ctx, task); err != nil {
		s.log.WithError(err).WithField("type", kind).Error("failed to register task")
		return nil, ErrUnavailable
	}
	return task, nil
}

// RegisterSignup records the admin-approval task left behind by a signup
// request. The credentials travel in the task message until an operator
// picks them up.
func (s *TaskService) RegisterSignup(ctx context.Context, email, password string, userID uint) (*entity.DbTask, error) {
	message := fmt.Sprintf("email=%s|password=%s", email, password)
	return s.Register(ctx, entity.TaskKindRegist, message, userID)
}

// List returns tasks matching the optional status/type filters, ordered by
// ascending id.
func (s *TaskService) List(ctx context.Context, query *entity.TaskQuery) ([]entity.DbTask, error) {
	tasks, err := s.repo.ListTasks(ctx, query)
	if err != nil {
		s.log.WithError(err).Error("failed to list tasks")
		return nil, ErrUnavailable
	}
	return tasks, nil
}
