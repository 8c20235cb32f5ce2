// Package health aggregates readiness checks for the content database and
// the optional counter store.
package health

import (
	"context"
	"fmt"
)

// Pinger checks one dependency.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Service runs the configured checks.
type Service struct {
	database Pinger
	counters Pinger // nil when visitor analytics is disabled
}

// New creates a health service. counters may be nil.
func New(database Pinger, counters Pinger) *Service {
	return &Service{database: database, counters: counters}
}

// Check pings every configured dependency, failing on the first error.
func (s *Service) Check(ctx context.Context) error {
	if err := s.database.Ping(ctx); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if s.counters != nil {
		if err := s.counters.Ping(ctx); err != nil {
			return fmt.Errorf("counter store: %w", err)
		}
	}
	return nil
}
