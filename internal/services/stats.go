package services

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/samber/lo"
	"github.com/tuyendunghub/job-board/internal/entities"
	"github.com/tuyendunghub/job-board/internal/repositories"
)

const (
	recentJobsLimit  = 5
	overviewCacheKey = "overview"
)

type statsRepository interface {
	CountAll(ctx context.Context) (int64, error)
	CountByActive(ctx context.Context, active bool) (int64, error)
	CountActiveByType(ctx context.Context) ([]repositories.JobTypeCount, error)
	Recent(ctx context.Context, limit int) ([]entities.Job, error)
}

type RecentJob struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Company   string    `json:"company"`
	CreatedAt time.Time `json:"created_at"`
}

type StatsOverview struct {
	TotalJobs    int64                       `json:"total_jobs"`
	ActiveJobs   int64                       `json:"active_jobs"`
	InactiveJobs int64                       `json:"inactive_jobs"`
	JobsByType   []repositories.JobTypeCount `json:"jobs_by_type"`
	RecentJobs   []RecentJob                 `json:"recent_jobs"`
}

type StatsService struct {
	jobs  statsRepository
	cache *gocache.Cache
}

func NewStatsService(jobs statsRepository) *StatsService {
	return &StatsService{jobs: jobs, cache: gocache.New(30*time.Second, time.Minute)}
}

func (s *StatsService) Overview(ctx context.Context) (*StatsOverview, error) {

	if cached, found := s.cache.Get(overviewCacheKey); found {
		return cached.(*StatsOverview), nil
	}

	total, err := s.jobs.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	active, err := s.jobs.CountByActive(ctx, true)
	if err != nil {
		return nil, err
	}

	inactive, err := s.jobs.CountByActive(ctx, false)
	if err != nil {
		return nil, err
	}

	byType, err := s.jobs.CountActiveByType(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.jobs.Recent(ctx, recentJobsLimit)
	if err != nil {
		return nil, err
	}

	overview := &StatsOverview{
		TotalJobs:    total,
		ActiveJobs:   active,
		InactiveJobs: inactive,
		JobsByType:   byType,
		RecentJobs: lo.Map(recent, func(job entities.Job, _ int) RecentJob {
			return RecentJob{
				ID:        job.ID,
				Title:     job.Title,
				Company:   job.Company,
				CreatedAt: job.CreatedAt,
			}
		}),
	}

	s.cache.SetDefault(overviewCacheKey, overview)
	return overview, nil
}

// Invalidate drops the cached overview; called after every job mutation.
func (s *StatsService) Invalidate() {
	s.cache.Delete(overviewCacheKey)
}
