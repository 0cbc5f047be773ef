package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"wrapapply/pkg/models"
	"wrapapply/pkg/services"
	"wrapapply/pkg/validation"
)

// Handlers contains all HTTP handlers for the API
type Handlers struct {
	applicationService services.ApplicationService
}

// NewHandlers creates a new Handlers instance
func NewHandlers(applicationService services.ApplicationService) *Handlers {
	return &Handlers{
		applicationService: applicationService,
	}
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Home is the liveness test route
func (h *Handlers) Home(c *gin.Context) {
	c.JSON(http.StatusOK, "Welcome, your app is working well")
}

// HandleApplication processes one wrap application submission
func (h *Handlers) HandleApplication(c *gin.Context) {
	var app models.Application

	// Bind multipart form fields to the application record
	if err := c.ShouldBind(&app); err != nil {
		log.Printf("Error parsing form data: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid form data",
		})
		return
	}

	// Run the rule set; reject with the first violation
	result := validation.Validate(app)
	if !result.Valid {
		log.Printf("Rejected application: %s: %s", result.Field, result.Message)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"field":   result.Field,
			"message": result.Message,
		})
		return
	}

	// Dispatch the notification; the result decides the status branch
	response := h.applicationService.Submit(*result.Record)

	status := http.StatusOK
	if !response.Success {
		status = http.StatusInternalServerError
	}
	c.JSON(status, response)
}
