package dto

import "jobboard_backend/internal/feature/jobs/domain/entity"

// JobResponse wraps a single job.
type JobResponse struct {
	Job *entity.Job `json:"job"`
}
