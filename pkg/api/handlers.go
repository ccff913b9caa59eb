package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"solar-lead-webhook/pkg/logger"
	"solar-lead-webhook/pkg/models"
	"solar-lead-webhook/pkg/services"
)

// Handlers contains all HTTP handlers for the API
type Handlers struct {
	submissionService services.LeadSubmissionService
}

// NewHandlers creates a new Handlers instance
func NewHandlers(submissionService services.LeadSubmissionService) *Handlers {
	return &Handlers{
		submissionService: submissionService,
	}
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// HandleLeadSubmission processes incoming webhook requests from the survey
// form. The body may be a single submission object or an array of them; a
// single object keeps the original response contract (no body on success,
// a rejection message otherwise), an array gets per-element outcomes.
func (h *Handlers) HandleLeadSubmission(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		logger.GetLogger().Error("Error reading request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error reading request"})
		return
	}

	// Raw bodies carry lead PII, so only log them at debug.
	logger.GetLogger().Debug("Received webhook body", zap.ByteString("body", body))

	subs, single, err := decodeSubmissions(body)
	if err != nil {
		logger.GetLogger().Error("Error parsing JSON", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format"})
		return
	}

	results := h.submissionService.ProcessSubmissions(c.Request.Context(), subs)

	if single {
		if len(results) > 0 && !results[0].Accepted {
			c.JSON(http.StatusOK, gin.H{"message": "Contact not valid"})
			return
		}
		c.Status(http.StatusOK)
		return
	}

	out := make([]gin.H, 0, len(results))
	for _, r := range results {
		if r.Accepted {
			out = append(out, gin.H{"status": "accepted"})
		} else {
			out = append(out, gin.H{"status": "rejected"})
		}
	}
	c.JSON(http.StatusOK, gin.H{"results": out})
}

// decodeSubmissions parses the body as either one submission object or an
// array of submissions. It reports whether the single-object contract
// applies to the response.
func decodeSubmissions(body []byte) ([]models.Submission, bool, error) {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var subs []models.Submission
		if err := json.Unmarshal(trimmed, &subs); err != nil {
			return nil, false, err
		}
		return subs, false, nil
	}

	var sub models.Submission
	if err := json.Unmarshal(trimmed, &sub); err != nil {
		return nil, false, err
	}
	return []models.Submission{sub}, true, nil
}
