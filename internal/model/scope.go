package model

// Environment names with environment-dependent behavior (swagger exposure, gin mode).
const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)

// Scope identifies who triggered an operation. The planner itself is
// single-tenant; scope is carried for logging and audit only.
type Scope struct {
	UserID   string
	Username string
}
