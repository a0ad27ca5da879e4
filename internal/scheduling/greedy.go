package scheduling

import (
	"context"
	"sort"
	"time"

	"smart-day-planner/pkg/timepref"
)

// GreedyStrategy pins exact-preference tasks at their requested minute and
// packs the rest front-to-back on a 15-minute grid. It is a pure function of
// its request: the tracker and cursor live on the stack, never on the struct,
// so concurrent calls cannot interfere.
type GreedyStrategy struct{}

// NewGreedyStrategy creates the deterministic day-planning strategy.
func NewGreedyStrategy() *GreedyStrategy {
	return &GreedyStrategy{}
}

// Name implements Strategy.
func (g *GreedyStrategy) Name() string {
	return StrategyGreedy
}

type pinnedTask struct {
	task   Task
	anchor int
}

type flexibleTask struct {
	task      Task
	anchor    int
	hasAnchor bool
}

// PlanDay implements Strategy.
//
// Pinned tasks are processed in input order and either commit at their anchor
// or are dropped; they are never relocated. Flexible tasks are stable-sorted
// by priority and share a single forward-moving cursor. Once the window can
// no longer fit a flexible task, the whole flexible phase stops.
func (g *GreedyStrategy) PlanDay(ctx context.Context, req Request) (Plan, error) {
	if req.Tasks == nil {
		return Plan{}, ErrNilTasks
	}

	now := req.Now
	if now.IsZero() {
		now = time.Now()
	}

	today := SameDay(now, req.Date)
	workStart := WorkdayStart
	if today {
		workStart = CeilSlot(MinuteOf(now))
	}

	tracker := NewOccupancyTracker(req.Busy, req.Date)

	var pinned []pinnedTask
	var flexible []flexibleTask
	for _, task := range req.Tasks {
		pref, ok := timepref.Parse(task.TimePreference)
		switch {
		case ok && pref.Exact:
			pinned = append(pinned, pinnedTask{task: task, anchor: pref.Minute})
		case ok:
			flexible = append(flexible, flexibleTask{task: task, anchor: pref.Minute, hasAnchor: true})
		default:
			flexible = append(flexible, flexibleTask{task: task})
		}
	}

	plan := Plan{Date: req.Date}

	// Pinned phase. Input order, priority is ignored. On a today plan an
	// anchor already in the past is unusable.
	for _, p := range pinned {
		if p.task.DurationMinutes <= 0 {
			continue
		}
		end := p.anchor + p.task.DurationMinutes
		if end > WorkdayEnd {
			continue
		}
		if today && p.anchor < workStart {
			continue
		}
		if tracker.Conflicts(p.anchor, end) {
			continue
		}
		tracker.Insert(p.anchor, end)
		plan.Assignments = append(plan.Assignments, Assignment{
			TaskID:          p.task.ID,
			StartMinute:     p.anchor,
			DurationMinutes: p.task.DurationMinutes,
		})
	}

	// Flexible phase. Most urgent first, ties keep input order.
	sort.SliceStable(flexible, func(i, j int) bool {
		return flexible[i].task.Priority < flexible[j].task.Priority
	})

	cursor := workStart
	for _, f := range flexible {
		if f.task.DurationMinutes <= 0 {
			continue
		}

		searchStart := cursor
		if f.hasAnchor && f.anchor > searchStart {
			searchStart = f.anchor
		}
		searchStart = CeilSlot(searchStart)

		placed := false
		for searchStart+f.task.DurationMinutes <= WorkdayEnd {
			end := searchStart + f.task.DurationMinutes
			if !tracker.Conflicts(searchStart, end) {
				tracker.Insert(searchStart, end)
				plan.Assignments = append(plan.Assignments, Assignment{
					TaskID:          f.task.ID,
					StartMinute:     searchStart,
					DurationMinutes: f.task.DurationMinutes,
				})
				cursor = end + TaskBuffer
				placed = true
				break
			}
			searchStart += SlotSize
		}

		// Window exhausted: the remaining flexible tasks are abandoned.
		if !placed {
			break
		}
	}

	return plan, nil
}
