package usecase

import (
	"smart-day-planner/internal/backlog/repository"
	"smart-day-planner/pkg/log"
)

// implUseCase is the private implementation of backlog.UseCase.
type implUseCase struct {
	repo repository.TaskRepository
	l    log.Logger
}

// New creates a new backlog UseCase implementation.
func New(repo repository.TaskRepository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
