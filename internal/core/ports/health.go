package ports

//go:generate mockgen -source=health.go -destination=mocks/mock_health.go -package=mocks

import "context"

// HealthChecker reports the health of a backing store (PostgreSQL, Redis).
type HealthChecker interface {
	Ping(ctx context.Context) error
	Name() string
}
