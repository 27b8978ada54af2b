package usecase

import (
	"context"

	"jobboard_backend/internal/feature/jobs/domain/entity"
)

// JobRepository abstracts the persistence layer for job entities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type JobRepository interface {
	// Create persists a new job to the storage.
	Create(ctx context.Context, job *entity.Job) error

	// FindByID retrieves a job by ID, returning ErrJobNotFound when absent.
	FindByID(ctx context.Context, id uint) (*entity.Job, error)

	// Update persists changes to an existing job.
	Update(ctx context.Context, job *entity.Job) error

	// Delete removes a job from the storage.
	Delete(ctx context.Context, job *entity.Job) error

	// List executes a ListQuery and returns the matching page of jobs plus
	// the total match count ignoring pagination.
	List(ctx context.Context, q ListQuery) ([]entity.Job, int64, error)
}

// CompanyRepository abstracts company lookup and implicit creation.
type CompanyRepository interface {
	// FindOrCreate returns the company with the given name, creating it
	// atomically with the default domain when it does not exist yet.
	FindOrCreate(ctx context.Context, name string) (*entity.Company, error)
}

// StatsInvalidator drops cached stats for a user after their jobs change.
// A nil invalidator disables invalidation (no cache configured).
type StatsInvalidator interface {
	Invalidate(ctx context.Context, userID uint)
}

// CreateJobInput carries the fields accepted when creating a job.
// Company, Position and WorkLocation are required; Status and WorkType
// default to pending and full-time.
type CreateJobInput struct {
	Company      string
	Position     string
	WorkLocation string
	Status       string
	WorkType     string
	Title        string
	Description  string
	Salary       string
	Experience   string
}

// UpdateJobInput carries the fields accepted when updating a job.
type UpdateJobInput struct {
	Company      string
	Position     string
	WorkLocation string
	Status       string
	WorkType     string
}

// JobPage is one page of a job listing together with pagination totals.
type JobPage struct {
	Jobs      []entity.Job `json:"jobs"`
	TotalJobs int64        `json:"totalJobs"`
	NumOfPage int          `json:"numOfPage"`
	Page      int          `json:"page"`
}

// jobsUsecase implements job CRUD and listing for authenticated users.
type jobsUsecase struct {
	jobs      JobRepository
	companies CompanyRepository
	stats     StatsInvalidator
}

// NewJobsUsecase creates a new instance of jobsUsecase. stats may be nil
// when no stats cache is configured.
func NewJobsUsecase(jobs JobRepository, companies CompanyRepository, stats StatsInvalidator) *jobsUsecase {
	return &jobsUsecase{
		jobs:      jobs,
		companies: companies,
		stats:     stats,
	}
}

// Create stores a new job for the given user, resolving the company by name
// and creating it on first sight.
func (u *jobsUsecase) Create(ctx context.Context, userID uint, in CreateJobInput) (*entity.Job, error) {
	status := in.Status
	if status == "" {
		status = entity.StatusPending
	}
	if !entity.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	workType := in.WorkType
	if workType == "" {
		workType = entity.WorkTypeFullTime
	}
	if !entity.ValidWorkType(workType) {
		return nil, ErrInvalidWorkType
	}

	company, err := u.companies.FindOrCreate(ctx, in.Company)
	if err != nil {
		return nil, err
	}

	job := &entity.Job{
		Title:        in.Title,
		Description:  in.Description,
		Salary:       in.Salary,
		Position:     in.Position,
		Status:       status,
		WorkType:     workType,
		WorkLocation: in.WorkLocation,
		Experience:   in.Experience,
		CompanyID:    company.ID,
		Company:      company,
		CreatedBy:    userID,
	}
	if err := u.jobs.Create(ctx, job); err != nil {
		return nil, err
	}

	u.invalidateStats(ctx, userID)
	return job, nil
}

// List returns one page of the user's jobs according to the raw request
// parameters. The query builder never rejects input, so the only failures
// are store errors.
func (u *jobsUsecase) List(ctx context.Context, userID uint, p ListParams) (*JobPage, error) {
	q := BuildListQuery(userID, p)

	jobs, total, err := u.jobs.List(ctx, q)
	if err != nil {
		return nil, err
	}

	return &JobPage{
		Jobs:      jobs,
		TotalJobs: total,
		NumOfPage: NumOfPage(total, q.Limit),
		Page:      q.Page,
	}, nil
}

// Update modifies a job after verifying the caller created it.
func (u *jobsUsecase) Update(ctx context.Context, userID, jobID uint, in UpdateJobInput) (*entity.Job, error) {
	job, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.CreatedBy != userID {
		return nil, ErrNotJobOwner
	}

	if in.Status != "" && !entity.ValidStatus(in.Status) {
		return nil, ErrInvalidStatus
	}
	if in.WorkType != "" && !entity.ValidWorkType(in.WorkType) {
		return nil, ErrInvalidWorkType
	}

	if job.Company == nil || job.Company.Name != in.Company {
		company, err := u.companies.FindOrCreate(ctx, in.Company)
		if err != nil {
			return nil, err
		}
		job.CompanyID = company.ID
		job.Company = company
	}

	job.Position = in.Position
	job.WorkLocation = in.WorkLocation
	if in.Status != "" {
		job.Status = in.Status
	}
	if in.WorkType != "" {
		job.WorkType = in.WorkType
	}

	if err := u.jobs.Update(ctx, job); err != nil {
		return nil, err
	}

	u.invalidateStats(ctx, userID)
	return job, nil
}

// Delete removes a job after verifying the caller created it.
func (u *jobsUsecase) Delete(ctx context.Context, userID, jobID uint) error {
	job, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		return err
	}
	if job.CreatedBy != userID {
		return ErrNotJobOwner
	}

	if err := u.jobs.Delete(ctx, job); err != nil {
		return err
	}

	u.invalidateStats(ctx, userID)
	return nil
}

func (u *jobsUsecase) invalidateStats(ctx context.Context, userID uint) {
	if u.stats != nil {
		u.stats.Invalidate(ctx, userID)
	}
}
