package email

import (
	"context"
	"errors"
	"time"

	"ascend/internal/domain"
)

// Sender define la interfaz para envio de correos transaccionales.
type Sender interface {
	SendVerificationOTP(ctx context.Context, toEmail string, code string, expiresAt time.Time) error
	// SendAssessmentSummary mails a short recap after a completed
	// assessment: composite score, strongest area and biggest opportunity.
	SendAssessmentSummary(ctx context.Context, toEmail string, analysis domain.CompositeAnalysis) error
}

type disabledSender struct {
	reason string
}

func NewDisabledSender(reason string) Sender {
	return &disabledSender{reason: reason}
}

func (s *disabledSender) SendVerificationOTP(_ context.Context, _ string, _ string, _ time.Time) error {
	return s.err()
}

func (s *disabledSender) SendAssessmentSummary(_ context.Context, _ string, _ domain.CompositeAnalysis) error {
	return s.err()
}

func (s *disabledSender) err() error {
	if s.reason == "" {
		return errors.New("email sender disabled")
	}
	return errors.New(s.reason)
}
