package sqlite

import "smart-day-planner/internal/model"

type taskFilter struct {
	id     string
	status model.TaskStatus
}

func buildTaskConditions(f taskFilter) ([]string, []any) {
	conds := make([]string, 0, 2)
	args := make([]any, 0, 2)

	if f.id != "" {
		conds = append(conds, "id = ?")
		args = append(args, f.id)
	}

	if f.status != "" {
		conds = append(conds, "status = ?")
		args = append(args, f.status)
	}

	return conds, args
}
