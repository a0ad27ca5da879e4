package scheduling

import "context"

// Strategy names accepted in configuration.
const (
	StrategyGreedy = "greedy"
)

// Strategy is a pluggable planning engine. The greedy strategy is the
// deterministic default; an assisted engine can implement the same interface
// and be selected by name without callers changing.
type Strategy interface {
	// Name identifies the strategy in config and logs.
	Name() string

	// PlanDay computes the assignments for one civil day.
	PlanDay(ctx context.Context, req Request) (Plan, error)
}

// ByName returns the strategy registered under the given name. Unknown names
// fall back to the greedy strategy.
func ByName(name string) Strategy {
	switch name {
	case StrategyGreedy:
		return NewGreedyStrategy()
	default:
		return NewGreedyStrategy()
	}
}
