package services

import (
	"strings"

	"go.uber.org/zap"

	"solar-lead-webhook/pkg/logger"
	"solar-lead-webhook/pkg/mapper"
	"solar-lead-webhook/pkg/models"
)

// eligiblePostcodePrefix is the postcode region the customer buys leads for.
const eligiblePostcodePrefix = "66"

// ownerConfirmations is the exact set of ownership answers that pass the
// gate. Tests pin this set; changing it changes which leads are forwarded.
var ownerConfirmations = map[string]struct{}{
	"Ja":     {},
	"jaTrue": {},
	"true":   {},
}

// Validate applies the lead acceptance rule: the postcode must fall into the
// supported region and the submission must carry a confirmed ownership
// answer. Every decision is logged before it is returned.
func Validate(sub models.Submission) bool {
	postcode := strings.TrimSpace(string(sub.Zipcode))
	answer, asked := sub.Questions[mapper.QuestionOwner]
	_, confirmed := ownerConfirmations[strings.TrimSpace(answer)]

	if strings.HasPrefix(postcode, eligiblePostcodePrefix) && asked && confirmed {
		logger.GetLogger().Info("Contact is valid",
			zap.String("postcode", postcode),
			zap.String("email", sub.Email))
		return true
	}

	logger.GetLogger().Info("Contact is invalid",
		zap.String("postcode", postcode),
		zap.String("email", sub.Email))
	return false
}
