// Package stats exposes portal visit analytics. The feature is optional:
// without a configured counter store the service degrades to no-ops and
// zero summaries instead of failing requests.
package stats

import (
	"context"

	"go.uber.org/zap"
)

// Repository defines the counter storage contract.
type Repository interface {
	Track(ctx context.Context) error
	Total(ctx context.Context) (int64, error)
	Today(ctx context.Context) (int64, error)
}

// Summary is the dashboard view of the visit counters.
type Summary struct {
	TotalVisitors int64 `json:"total_visitors"`
	TodayVisitors int64 `json:"today_visitors"`
}

// Service handles visit tracking and summaries.
type Service struct {
	repo   Repository
	logger *zap.Logger
}

// New creates a stats service. repo may be nil when analytics is disabled.
func New(repo Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Enabled reports whether a counter store is configured.
func (s *Service) Enabled() bool {
	return s.repo != nil
}

// Track records one visit, best effort. Tracking failures are logged and
// swallowed: analytics must never break a content request.
func (s *Service) Track(ctx context.Context) {
	if s.repo == nil {
		return
	}
	if err := s.repo.Track(ctx); err != nil {
		s.logger.Debug("visit tracking failed", zap.Error(err))
	}
}

// Summarize returns the current counters; zeros when analytics is disabled.
func (s *Service) Summarize(ctx context.Context) (Summary, error) {
	if s.repo == nil {
		return Summary{}, nil
	}

	total, err := s.repo.Total(ctx)
	if err != nil {
		return Summary{}, err
	}
	today, err := s.repo.Today(ctx)
	if err != nil {
		return Summary{}, err
	}
	return Summary{TotalVisitors: total, TodayVisitors: today}, nil
}
