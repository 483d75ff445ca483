package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"ascend/internal/domain"
	"ascend/internal/engine"
	"ascend/internal/repository"
)

// AssessmentService orquesta el flujo de evaluaciones: valida la entrada,
// corre el engine y persiste el resultado en el store del caller.
type AssessmentService struct {
	logger      *zap.Logger
	engine      *engine.Engine
	assessments repository.AssessmentRepository
	users       repository.UserRepository
	emailSender EmailSummarySender
	limiter     RateLimiter
}

// EmailSummarySender is the slice of email.Sender this service needs.
type EmailSummarySender interface {
	SendAssessmentSummary(ctx context.Context, toEmail string, analysis domain.CompositeAnalysis) error
}

func NewAssessmentService(
	logger *zap.Logger,
	eng *engine.Engine,
	assessments repository.AssessmentRepository,
	users repository.UserRepository,
	emailSender EmailSummarySender,
	limiter RateLimiter,
) *AssessmentService {
	if eng == nil {
		eng = engine.New(nil, engine.DefaultParams(), logger)
	}
	return &AssessmentService{
		logger:      logger,
		engine:      eng,
		assessments: assessments,
		users:       users,
		emailSender: emailSender,
		limiter:     limiter,
	}
}

var (
	ErrNoResponses        = errors.New("no responses submitted")
	ErrInvalidResponse    = errors.New("response out of range")
	ErrUnknownQuestion    = errors.New("unknown question id")
	ErrAssessmentNotFound = errors.New("assessment not found")
)

// Catalog expone el cuestionario para la UI.
func (s *AssessmentService) Catalog() []engine.Question {
	return s.engine.Catalog().Questions()
}

// SubmitAssessment validates a {questionID: response} submission, runs the
// analysis and persists the record. The summary email is best effort: a
// persisted assessment never fails because mail delivery did.
func (s *AssessmentService) SubmitAssessment(ctx context.Context, userID string, responses map[string]int) (domain.Assessment, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" || len(responses) == 0 {
		return domain.Assessment{}, ErrNoResponses
	}
	if s.limiter != nil && !s.limiter.Allow(userID) {
		return domain.Assessment{}, ErrRateLimited
	}
	for id, response := range responses {
		if response < 1 || response > 10 {
			return domain.Assessment{}, fmt.Errorf("%w: %s=%d", ErrInvalidResponse, id, response)
		}
	}

	items, unknown := s.engine.Catalog().ItemsFromResponses(responses)
	if len(unknown) > 0 {
		return domain.Assessment{}, fmt.Errorf("%w: %s", ErrUnknownQuestion, strings.Join(unknown, ", "))
	}

	assessment, err := s.engine.CreateAssessmentRecord(userID, items)
	if err != nil {
		return domain.Assessment{}, err
	}

	if s.assessments != nil {
		if err := s.assessments.Save(ctx, assessment); err != nil {
			return domain.Assessment{}, fmt.Errorf("save assessment: %w", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("assessment submitted",
			zap.String("assessment_id", assessment.ID),
			zap.String("user_id", userID),
			zap.Int("ascension_score", assessment.Analysis.AscensionScore),
		)
	}

	s.sendSummary(ctx, userID, assessment.Analysis)
	return assessment, nil
}

// GetAssessment returns one assessment, restricted to its owner.
func (s *AssessmentService) GetAssessment(ctx context.Context, userID, id string) (domain.Assessment, error) {
	if s.assessments == nil {
		return domain.Assessment{}, errors.New("assessment service not configured")
	}
	assessment, err := s.assessments.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Assessment{}, ErrAssessmentNotFound
		}
		return domain.Assessment{}, err
	}
	if assessment.UserID != strings.TrimSpace(userID) {
		return domain.Assessment{}, ErrAssessmentNotFound
	}
	return assessment, nil
}

func (s *AssessmentService) ListAssessments(ctx context.Context, userID string, limit int) ([]domain.Assessment, error) {
	if s.assessments == nil {
		return nil, errors.New("assessment service not configured")
	}
	return s.assessments.ListByUser(ctx, strings.TrimSpace(userID), limit)
}

func (s *AssessmentService) LatestAssessment(ctx context.Context, userID string) (domain.Assessment, error) {
	if s.assessments == nil {
		return domain.Assessment{}, errors.New("assessment service not configured")
	}
	assessment, err := s.assessments.LatestByUser(ctx, strings.TrimSpace(userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Assessment{}, ErrAssessmentNotFound
		}
		return domain.Assessment{}, err
	}
	return assessment, nil
}

// BuildPlan derives the protocol for a stored assessment.
func (s *AssessmentService) BuildPlan(ctx context.Context, userID, assessmentID string) (domain.Protocol, error) {
	assessment, err := s.GetAssessment(ctx, userID, assessmentID)
	if err != nil {
		return domain.Protocol{}, err
	}
	return s.engine.BuildPlan(assessment.Analysis), nil
}

func (s *AssessmentService) sendSummary(ctx context.Context, userID string, analysis domain.CompositeAnalysis) {
	if s.emailSender == nil || s.users == nil {
		return
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil || user.Email == "" {
		return
	}
	if err := s.emailSender.SendAssessmentSummary(ctx, user.Email, analysis); err != nil {
		if s.logger != nil {
			s.logger.Warn("send assessment summary failed", zap.Error(err), zap.String("user_id", userID))
		}
	}
}
