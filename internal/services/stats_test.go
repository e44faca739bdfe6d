package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tuyendunghub/job-board/internal/repositories"
)

func newTestStatsService(t *testing.T) (*StatsService, *JobService) {
	t.Helper()

	_, repo := newTestJobService(t)
	stats := NewStatsService(repo)
	return stats, NewJobService(repo, stats)
}

func Test_Overview_CountsActiveAndInactiveJobs(t *testing.T) {
	stats, jobs := newTestStatsService(t)

	for i := 0; i < 3; i++ {
		_, err := jobs.Create(context.Background(), validInput())
		require.NoError(t, err)
	}

	input := validInput()
	input.JobType = "Internship"
	created, err := jobs.Create(context.Background(), input)
	require.NoError(t, err)
	_, err = jobs.Toggle(context.Background(), created.ID)
	require.NoError(t, err)

	overview, err := stats.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(4), overview.TotalJobs)
	assert.Equal(t, int64(3), overview.ActiveJobs)
	assert.Equal(t, int64(1), overview.InactiveJobs)
	assert.Equal(t, []repositories.JobTypeCount{{JobType: "Full-time", Count: 3}}, overview.JobsByType)
	assert.Len(t, overview.RecentJobs, 4)
	assert.Equal(t, "Engineer", overview.RecentJobs[0].Title)
}

func Test_Overview_CacheIsInvalidatedByMutations(t *testing.T) {
	stats, jobs := newTestStatsService(t)

	overview, err := stats.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), overview.TotalJobs)

	_, err = jobs.Create(context.Background(), validInput())
	require.NoError(t, err)

	overview, err = stats.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), overview.TotalJobs)
}

func Test_Overview_RecentJobsCappedAtFive(t *testing.T) {
	stats, jobs := newTestStatsService(t)

	for i := 0; i < 7; i++ {
		_, err := jobs.Create(context.Background(), validInput())
		require.NoError(t, err)
	}

	overview, err := stats.Overview(context.Background())
	require.NoError(t, err)
	assert.Len(t, overview.RecentJobs, 5)
}
