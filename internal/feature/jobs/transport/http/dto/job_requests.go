// Package dto defines data transfer objects for the jobs feature's HTTP transport layer.
package dto

// CreateJobReq represents the request body for the /job/create-job endpoint.
// Company, position and work location are required; status and work type
// default server-side to pending and full-time.
type CreateJobReq struct {
	Company      string `json:"company" binding:"required"`
	Position     string `json:"position" binding:"required,max=100"`
	WorkLocation string `json:"work_location" binding:"required"`
	Status       string `json:"status"`
	WorkType     string `json:"work_type"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Salary       string `json:"salary"`
	Experience   string `json:"experience"`
}

// UpdateJobReq represents the request body for the /job/update-job/:id
// endpoint.
type UpdateJobReq struct {
	Company      string `json:"company" binding:"required"`
	Position     string `json:"position" binding:"required,max=100"`
	WorkLocation string `json:"work_location" binding:"required"`
	Status       string `json:"status"`
	WorkType     string `json:"work_type"`
}

// ListJobsReq represents the query parameters of the /job/get-jobs
// endpoint. Everything is optional and arrives as raw strings; the query
// builder owns coercion and defaulting.
type ListJobsReq struct {
	Status       string `form:"status"`
	WorkType     string `form:"workType"`
	WorkLocation string `form:"workLocation"`
	Search       string `form:"search"`
	Sort         string `form:"sort"`
	Page         string `form:"page"`
	Limit        string `form:"limit"`
}
