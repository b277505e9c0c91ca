package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/workhive/jobboard/internal/server/services"
)

type createJobRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"desc" binding:"required"`
	Deadline    string `json:"lastDate" binding:"required"`
	Company     string `json:"company" binding:"required"`
}

func (s *Server) createJob(c *gin.Context) {
	claims, ok := identityFromContext(c)
	if !ok || claims.Subject == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "invalid token"})
		return
	}

	var req createJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "missing required fields"})
		return
	}

	job, err := s.jobs.Create(c.Request.Context(), services.CreateJobParams{
		Title:       req.Title,
		Description: req.Description,
		Deadline:    req.Deadline,
		Company:     req.Company,
		OwnerID:     claims.Subject,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "job saved successfully", "job": job})
}

func (s *Server) listJobs(c *gin.Context) {
	jobs, err := s.jobs.List(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}
