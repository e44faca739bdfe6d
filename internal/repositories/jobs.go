package repositories

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/tuyendunghub/job-board/internal/entities"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type Jobs struct {
	db *gorm.DB
}

func NewJobsRepository(db *gorm.DB) *Jobs {
	return &Jobs{db: db}
}

type JobFilter struct {
	Search     string // substring match against title OR company
	Location   string // substring match
	JobType    string // exact match
	ActiveOnly bool
	Limit      int
	Offset     int
}

// Find returns one page of jobs plus the total count under the same filter.
// Count and page are two independent queries; a concurrent write between them
// can make the count drift from the page.
func (repo *Jobs) Find(ctx context.Context, filter JobFilter) ([]entities.Job, int64, error) {

	var total int64
	if err := repo.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count jobs")
	}

	jobs := []entities.Job{}
	err := repo.filtered(ctx, filter).
		Order("created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to find jobs")
	}

	return jobs, total, nil
}

func (repo *Jobs) filtered(ctx context.Context, filter JobFilter) *gorm.DB {
	query := repo.db.WithContext(ctx).Model(&entities.Job{})

	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(company) LIKE ?", pattern, pattern)
	}
	if filter.Location != "" {
		query = query.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(filter.Location)+"%")
	}
	if filter.JobType != "" {
		query = query.Where("job_type = ?", filter.JobType)
	}

	return query
}

func (repo *Jobs) GetByID(ctx context.Context, id uint, activeOnly bool) (*entities.Job, error) {

	query := repo.db.WithContext(ctx)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var job entities.Job
	if err := query.First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (repo *Jobs) Create(ctx context.Context, job *entities.Job) error {
	return repo.db.WithContext(ctx).Create(job).Error
}

// Save writes every column of an already-loaded row and bumps updated_at.
func (repo *Jobs) Save(ctx context.Context, job *entities.Job) error {
	return repo.db.WithContext(ctx).Save(job).Error
}

func (repo *Jobs) Delete(ctx context.Context, id uint) error {
	res := repo.db.WithContext(ctx).Delete(&entities.Job{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (repo *Jobs) CountAll(ctx context.Context) (int64, error) {

	var count int64
	if err := repo.db.WithContext(ctx).Model(&entities.Job{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *Jobs) CountByActive(ctx context.Context, active bool) (int64, error) {

	var count int64
	if err := repo.db.WithContext(ctx).Model(&entities.Job{}).Where("is_active = ?", active).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type JobTypeCount struct {
	JobType string `json:"job_type"`
	Count   int64  `json:"count"`
}

// CountActiveByType groups active jobs by job_type.
func (repo *Jobs) CountActiveByType(ctx context.Context) ([]JobTypeCount, error) {

	counts := []JobTypeCount{}
	err := repo.db.WithContext(ctx).Model(&entities.Job{}).
		Select("job_type, COUNT(*) as count").
		Where("is_active = ?", true).
		Group("job_type").
		Order("count DESC").
		Scan(&counts).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count jobs by type")
	}
	return counts, nil
}

func (repo *Jobs) Recent(ctx context.Context, limit int) ([]entities.Job, error) {

	jobs := []entities.Job{}
	err := repo.db.WithContext(ctx).Model(&entities.Job{}).
		Select("id", "title", "company", "created_at").
		Order("created_at DESC").
		Limit(limit).
		Find(&jobs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to get recent jobs")
	}
	return jobs, nil
}
