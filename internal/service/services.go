package service

import (
	"github.com/zentask/zentask-server/internal/config"
	"github.com/zentask/zentask-server/internal/logger"
	"github.com/zentask/zentask-server/internal/store"
)

type Services struct {
	AuthService AuthService
	TaskService TaskService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg, logger),
		TaskService: NewTaskService(storages.TaskRepository, logger),
	}
}
