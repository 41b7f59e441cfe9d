// Package usecase implements the business logic for the stats feature.
package usecase

import (
	"context"

	"college_backend/internal/feature/stats/domain/entity"
)

// StatsRepository abstracts the aggregate queries behind the statistics endpoint.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type StatsRepository interface {
	// Overview returns the college-wide entity counts.
	Overview(ctx context.Context) (*entity.Overview, error)

	// AttendanceSummary returns one student's attendance tally.
	AttendanceSummary(ctx context.Context, studentID uint) (*entity.AttendanceSummary, error)
}

// StatsUsecase provides business logic for the statistics endpoints.
type StatsUsecase struct {
	repo StatsRepository
}

// NewStatsUsecase creates a new StatsUsecase with the given repository.
func NewStatsUsecase(repo StatsRepository) *StatsUsecase {
	return &StatsUsecase{repo: repo}
}

// Overview returns the college-wide entity counts.
func (u *StatsUsecase) Overview(ctx context.Context) (*entity.Overview, error) {
	return u.repo.Overview(ctx)
}

// StudentOverview returns the entity counts together with the student's
// own attendance summary.
func (u *StatsUsecase) StudentOverview(ctx context.Context, studentID uint) (*entity.Overview, *entity.AttendanceSummary, error) {
	overview, err := u.repo.Overview(ctx)
	if err != nil {
		return nil, nil, err
	}
	summary, err := u.repo.AttendanceSummary(ctx, studentID)
	if err != nil {
		return nil, nil, err
	}
	return overview, summary, nil
}
