package model

// Environment identifies the runtime environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries the caller identity through use-case boundaries.
type Scope struct {
	UserID   string
	Username string
}
