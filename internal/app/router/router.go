// Package router wires the HTTP routes onto a gin engine.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "jobboard_backend/internal/feature/auth/transport/handler"
	jobshandler "jobboard_backend/internal/feature/jobs/transport/handler"
	platformhandler "jobboard_backend/internal/platform/http/handler"
	jwtmw "jobboard_backend/internal/platform/jwt"
)

// NewRouter builds the gin engine with the full /api/v1 surface.
// The job board serves a browser frontend, so CORS is enabled globally.
func NewRouter(jwtSecret string, authH *authhandler.AuthHandler, jobsH *jobshandler.JobsHandler) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/healthz", platformhandler.Health)

	v1 := r.Group("/api/v1")

	// No authentication required
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authH.Register)
		auth.POST("/login", authH.Login)
	}

	// Everything below requires a bearer token
	authRequired := jwtmw.AuthRequired(jwtSecret)

	user := v1.Group("/user")
	user.Use(authRequired)
	{
		user.PUT("/update-user", authH.UpdateUser)
	}

	job := v1.Group("/job")
	job.Use(authRequired)
	{
		job.POST("/create-job", jobsH.CreateJob)
		job.GET("/get-jobs", jobsH.GetJobs)
		job.PATCH("/update-job/:id", jobsH.UpdateJob)
		job.DELETE("/delete-job/:id", jobsH.DeleteJob)
		job.GET("/job-stats", jobsH.JobStats)
	}

	return r
}
