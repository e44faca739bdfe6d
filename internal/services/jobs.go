package services

import (
	"context"

	"github.com/pkg/errors"
	"github.com/tuyendunghub/job-board/internal/entities"
	"github.com/tuyendunghub/job-board/internal/repositories"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100

	defaultCurrency = "VND"
	defaultJobType  = "Full-time"
)

type jobRepository interface {
	Find(ctx context.Context, filter repositories.JobFilter) ([]entities.Job, int64, error)
	GetByID(ctx context.Context, id uint, activeOnly bool) (*entities.Job, error)
	Create(ctx context.Context, job *entities.Job) error
	Save(ctx context.Context, job *entities.Job) error
	Delete(ctx context.Context, id uint) error
}

type statsInvalidator interface {
	Invalidate()
}

type JobService struct {
	jobs  jobRepository
	stats statsInvalidator
}

func NewJobService(jobs jobRepository, stats statsInvalidator) *JobService {
	return &JobService{jobs: jobs, stats: stats}
}

// ListParams carries raw client input; page and limit are sanitized here, so
// negative or oversized values never reach the repository.
type ListParams struct {
	Search   string
	Location string
	JobType  string
	Page     int
	Limit    int
}

func (p *ListParams) sanitize() {
	if p.Page < 1 {
		p.Page = defaultPage
	}
	if p.Limit < 1 {
		p.Limit = defaultLimit
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
}

type JobPage struct {
	Jobs       []entities.Job
	Page       int
	Limit      int
	Total      int64
	TotalPages int
}

func (page JobPage) HasNext() bool {
	return page.Page < page.TotalPages
}

func (page JobPage) HasPrev() bool {
	return page.Page > 1
}

// PublicList returns only active jobs and supports search, location and
// job_type filters.
func (s *JobService) PublicList(ctx context.Context, params ListParams) (*JobPage, error) {
	params.sanitize()
	return s.list(ctx, repositories.JobFilter{
		Search:     params.Search,
		Location:   params.Location,
		JobType:    params.JobType,
		ActiveOnly: true,
		Limit:      params.Limit,
		Offset:     (params.Page - 1) * params.Limit,
	}, params)
}

// AdminList sees every job regardless of status; only search is supported.
func (s *JobService) AdminList(ctx context.Context, params ListParams) (*JobPage, error) {
	params.sanitize()
	return s.list(ctx, repositories.JobFilter{
		Search: params.Search,
		Limit:  params.Limit,
		Offset: (params.Page - 1) * params.Limit,
	}, params)
}

func (s *JobService) list(ctx context.Context, filter repositories.JobFilter, params ListParams) (*JobPage, error) {

	jobs, total, err := s.jobs.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(params.Limit) - 1) / int64(params.Limit))
	return &JobPage{
		Jobs:       jobs,
		Page:       params.Page,
		Limit:      params.Limit,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

func (s *JobService) PublicGet(ctx context.Context, id uint) (*entities.Job, error) {
	return s.get(ctx, id, true)
}

func (s *JobService) AdminGet(ctx context.Context, id uint) (*entities.Job, error) {
	return s.get(ctx, id, false)
}

func (s *JobService) get(ctx context.Context, id uint, activeOnly bool) (*entities.Job, error) {
	job, err := s.jobs.GetByID(ctx, id, activeOnly)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return job, nil
}

// JobInput is a full description of a job's mutable fields. Absent optional
// fields are zeroed on update, matching the replace semantics of the API.
type JobInput struct {
	Title          string
	Company        string
	Location       string
	Description    string
	Requirements   string
	Benefits       string
	SalaryMin      *int
	SalaryMax      *int
	SalaryCurrency string
	JobType        string
	ContactEmail   string
	ContactPhone   string
	IsActive       *bool
}

func (input JobInput) validate() error {
	if input.SalaryMin != nil && input.SalaryMax != nil && *input.SalaryMin > *input.SalaryMax {
		return ErrSalaryRange
	}
	return nil
}

func (input JobInput) apply(job *entities.Job) {
	job.Title = input.Title
	job.Company = input.Company
	job.Location = input.Location
	job.Description = input.Description
	job.Requirements = input.Requirements
	job.Benefits = input.Benefits
	job.SalaryMin = input.SalaryMin
	job.SalaryMax = input.SalaryMax
	job.ContactEmail = input.ContactEmail
	job.ContactPhone = input.ContactPhone

	job.SalaryCurrency = input.SalaryCurrency
	if job.SalaryCurrency == "" {
		job.SalaryCurrency = defaultCurrency
	}

	job.JobType = input.JobType
	if job.JobType == "" {
		job.JobType = defaultJobType
	}

	// undefined is_active means active
	job.IsActive = input.IsActive == nil || *input.IsActive
}

func (s *JobService) Create(ctx context.Context, input JobInput) (*entities.Job, error) {

	if err := input.validate(); err != nil {
		return nil, err
	}

	var job entities.Job
	input.apply(&job)

	if err := s.jobs.Create(ctx, &job); err != nil {
		return nil, err
	}

	s.stats.Invalidate()
	return &job, nil
}

// Update replaces every mutable column of an existing job.
func (s *JobService) Update(ctx context.Context, id uint, input JobInput) (*entities.Job, error) {

	if err := input.validate(); err != nil {
		return nil, err
	}

	job, err := s.get(ctx, id, false)
	if err != nil {
		return nil, err
	}

	input.apply(job)

	if err := s.jobs.Save(ctx, job); err != nil {
		return nil, err
	}

	s.stats.Invalidate()
	return job, nil
}

func (s *JobService) Delete(ctx context.Context, id uint) error {

	err := s.jobs.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrJobNotFound
		}
		return err
	}

	s.stats.Invalidate()
	return nil
}

// Toggle flips is_active in place and reports the new state.
func (s *JobService) Toggle(ctx context.Context, id uint) (*entities.Job, error) {

	job, err := s.get(ctx, id, false)
	if err != nil {
		return nil, err
	}

	job.IsActive = !job.IsActive

	if err := s.jobs.Save(ctx, job); err != nil {
		return nil, err
	}

	s.stats.Invalidate()
	return job, nil
}
