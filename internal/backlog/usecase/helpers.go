package usecase

import "smart-day-planner/internal/model"

// coalesce returns the first non-empty string, used for partial updates.
// If a new value is provided, use it; otherwise fall back to the existing value.
func (uc *implUseCase) coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}

func validStatus(s model.TaskStatus) bool {
	switch s {
	case model.TaskStatusPending, model.TaskStatusScheduled, model.TaskStatusArchived:
		return true
	}
	return false
}
