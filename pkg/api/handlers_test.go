package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solar-lead-webhook/pkg/models"
	"solar-lead-webhook/pkg/services"
)

// stubSubmissionService returns canned per-submission outcomes.
type stubSubmissionService struct {
	results []services.SubmissionResult
	got     []models.Submission
}

func (s *stubSubmissionService) ProcessSubmissions(_ context.Context, subs []models.Submission) []services.SubmissionResult {
	s.got = subs
	return s.results
}

func newTestRouter(svc services.LeadSubmissionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handlers := NewHandlers(svc)
	router.POST("/webhook", handlers.HandleLeadSubmission)
	router.GET("/health", handlers.HealthCheck)
	return router
}

func post(router *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestHandleLeadSubmissionSingleAccepted(t *testing.T) {
	svc := &stubSubmissionService{results: []services.SubmissionResult{{Accepted: true}}}
	router := newTestRouter(svc)

	w := post(router, `{"first_name": "Max", "zipcode": "66123", "questions": {"Sind Sie Eigentümer der Immobilie?": "Ja"}}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
	require.Len(t, svc.got, 1)
	assert.Equal(t, "Max", svc.got[0].FirstName)
	assert.Equal(t, models.Zipcode("66123"), svc.got[0].Zipcode)
}

func TestHandleLeadSubmissionSingleRejected(t *testing.T) {
	svc := &stubSubmissionService{results: []services.SubmissionResult{{Accepted: false}}}
	router := newTestRouter(svc)

	w := post(router, `{"first_name": "Max", "zipcode": "12345"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "Contact not valid"}`, w.Body.String())
}

func TestHandleLeadSubmissionBatch(t *testing.T) {
	svc := &stubSubmissionService{results: []services.SubmissionResult{
		{Accepted: true}, {Accepted: false}, {Accepted: true},
	}}
	router := newTestRouter(svc)

	w := post(router, `[{"zipcode": "66123"}, {"zipcode": "12345"}, {"zipcode": "66456"}]`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"results": [{"status": "accepted"}, {"status": "rejected"}, {"status": "accepted"}]}`, w.Body.String())
	assert.Len(t, svc.got, 3)
}

func TestHandleLeadSubmissionSingleElementArrayUsesBatchContract(t *testing.T) {
	svc := &stubSubmissionService{results: []services.SubmissionResult{{Accepted: false}}}
	router := newTestRouter(svc)

	w := post(router, `[{"zipcode": "12345"}]`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"results": [{"status": "rejected"}]}`, w.Body.String())
}

func TestHandleLeadSubmissionSurvivesEmptyResults(t *testing.T) {
	// A service returning no outcomes must not take down the handler.
	svc := &stubSubmissionService{results: nil}
	router := newTestRouter(svc)

	w := post(router, `{"zipcode": "66123"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestHandleLeadSubmissionNumericZipcode(t *testing.T) {
	svc := &stubSubmissionService{results: []services.SubmissionResult{{Accepted: true}}}
	router := newTestRouter(svc)

	w := post(router, `{"zipcode": 66123}`)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, svc.got, 1)
	assert.Equal(t, models.Zipcode("66123"), svc.got[0].Zipcode)
}

func TestHandleLeadSubmissionInvalidJSON(t *testing.T) {
	svc := &stubSubmissionService{}
	router := newTestRouter(svc)

	w := post(router, `{"first_name": `)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "Invalid JSON format"}`, w.Body.String())
	assert.Nil(t, svc.got)
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(&stubSubmissionService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}
