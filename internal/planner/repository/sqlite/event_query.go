package sqlite

import "smart-day-planner/internal/planner/repository"

func buildEventConditions(opts repository.ListEventsOptions) ([]string, []any) {
	conds := make([]string, 0, 2)
	args := make([]any, 0, 2)

	if opts.Date != "" {
		conds = append(conds, "date = ?")
		args = append(args, opts.Date)
	}

	if opts.Source != "" {
		conds = append(conds, "source = ?")
		args = append(args, opts.Source)
	}

	return conds, args
}
