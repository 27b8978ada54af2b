// Package usecase implements the business logic for the jobs feature:
// the list query builder, job CRUD with creator-only authorization, and
// the stats aggregation.
package usecase

import "errors"

var (
	// ErrJobNotFound is returned when no job exists with the requested ID.
	ErrJobNotFound = errors.New("job not found")

	// ErrNotJobOwner is returned when a user tries to modify or delete a job
	// created by someone else. The check runs before any mutation.
	ErrNotJobOwner = errors.New("you are not authorized to modify this job")

	// ErrInvalidStatus is returned when a job status is outside the known enum.
	ErrInvalidStatus = errors.New("status must be one of pending, reject, interview")

	// ErrInvalidWorkType is returned when a work type is outside the known enum.
	ErrInvalidWorkType = errors.New("work type must be one of full-time, part-time, internship, contract")
)
