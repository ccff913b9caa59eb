package services

import (
	"context"

	"go.uber.org/zap"

	"solar-lead-webhook/pkg/clients/customerapi"
	"solar-lead-webhook/pkg/logger"
	"solar-lead-webhook/pkg/mapper"
	"solar-lead-webhook/pkg/models"
)

// LeadSubmissionService defines the interface for handling lead submissions
type LeadSubmissionService interface {
	ProcessSubmissions(ctx context.Context, subs []models.Submission) []SubmissionResult
}

// SubmissionResult reports the outcome for one submission of a request.
type SubmissionResult struct {
	Accepted bool
}

type leadSubmissionServiceImpl struct {
	customerClient customerapi.Client
}

// NewLeadSubmissionService creates a new submission service
func NewLeadSubmissionService(customerClient customerapi.Client) LeadSubmissionService {
	return &leadSubmissionServiceImpl{
		customerClient: customerClient,
	}
}

// ProcessSubmissions runs every submission of a request through the same
// path: validate, build the outbound payload for accepted ones, and dispatch
// each accepted lead exactly once. Dispatch failures are logged but do not
// change the reported outcome, and nothing is retried.
func (s *leadSubmissionServiceImpl) ProcessSubmissions(ctx context.Context, subs []models.Submission) []SubmissionResult {
	results := make([]SubmissionResult, 0, len(subs))

	for _, sub := range subs {
		if !Validate(sub) {
			results = append(results, SubmissionResult{Accepted: false})
			continue
		}

		payload := mapper.BuildLeadPayload(sub)
		if err := s.customerClient.SendLead(ctx, payload); err != nil {
			logger.GetLogger().Error("Error dispatching lead", zap.Error(err))
		}

		results = append(results, SubmissionResult{Accepted: true})
	}

	return results
}
