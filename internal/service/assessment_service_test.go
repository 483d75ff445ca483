package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"ascend/internal/domain"
	"ascend/internal/engine"
)

type mockAssessmentRepo struct {
	byID  map[string]domain.Assessment
	order []string
}

func newMockAssessmentRepo() *mockAssessmentRepo {
	return &mockAssessmentRepo{byID: make(map[string]domain.Assessment)}
}

func (m *mockAssessmentRepo) Save(_ context.Context, assessment domain.Assessment) error {
	m.byID[assessment.ID] = assessment
	m.order = append(m.order, assessment.ID)
	return nil
}

func (m *mockAssessmentRepo) GetByID(_ context.Context, id string) (domain.Assessment, error) {
	assessment, ok := m.byID[id]
	if !ok {
		return domain.Assessment{}, pgx.ErrNoRows
	}
	return assessment, nil
}

func (m *mockAssessmentRepo) ListByUser(_ context.Context, userID string, limit int) ([]domain.Assessment, error) {
	var out []domain.Assessment
	for i := len(m.order) - 1; i >= 0; i-- {
		assessment := m.byID[m.order[i]]
		if assessment.UserID != userID {
			continue
		}
		out = append(out, assessment)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (m *mockAssessmentRepo) LatestByUser(ctx context.Context, userID string) (domain.Assessment, error) {
	list, err := m.ListByUser(ctx, userID, 1)
	if err != nil {
		return domain.Assessment{}, err
	}
	if len(list) == 0 {
		return domain.Assessment{}, pgx.ErrNoRows
	}
	return list[0], nil
}

func newTestAssessmentService(repo *mockAssessmentRepo, users *mockUserRepo, sender *mockEmailSender, limiter RateLimiter) *AssessmentService {
	eng := engine.New(nil, engine.DefaultParams(), zap.NewNop())
	return NewAssessmentService(zap.NewNop(), eng, repo, users, sender, limiter)
}

func TestAssessmentServiceSubmit(t *testing.T) {
	repo := newMockAssessmentRepo()
	users := newMockUserRepo()
	sender := &mockEmailSender{}
	svc := newTestAssessmentService(repo, users, sender, nil)

	user := domain.User{ID: "u1", Email: "user@example.com", CreatedAt: time.Now().UTC()}
	if err := users.Create(context.Background(), user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	responses := map[string]int{"pv01": 5, "pv02": 7, "mc01": 3}
	assessment, err := svc.SubmitAssessment(context.Background(), "u1", responses)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if assessment.ID == "" || assessment.UserID != "u1" {
		t.Fatalf("unexpected assessment identity: %+v", assessment)
	}
	if len(assessment.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(assessment.Items))
	}
	if len(assessment.Analysis.DimensionScores) != len(domain.AllDimensions()) {
		t.Fatalf("expected score for every dimension")
	}

	stored, err := repo.GetByID(context.Background(), assessment.ID)
	if err != nil {
		t.Fatalf("expected assessment persisted, got %v", err)
	}
	if stored.Analysis.AscensionScore != assessment.Analysis.AscensionScore {
		t.Fatalf("persisted analysis mismatch")
	}
	if sender.summaries != 1 || sender.lastTo != "user@example.com" {
		t.Fatalf("expected summary email sent once to owner, got %d to %q", sender.summaries, sender.lastTo)
	}
}

func TestAssessmentServiceSubmit_Validation(t *testing.T) {
	repo := newMockAssessmentRepo()
	svc := newTestAssessmentService(repo, newMockUserRepo(), &mockEmailSender{}, nil)

	if _, err := svc.SubmitAssessment(context.Background(), "u1", nil); !errors.Is(err, ErrNoResponses) {
		t.Fatalf("expected ErrNoResponses for empty submission, got %v", err)
	}
	if _, err := svc.SubmitAssessment(context.Background(), "", map[string]int{"pv01": 5}); !errors.Is(err, ErrNoResponses) {
		t.Fatalf("expected ErrNoResponses for missing user, got %v", err)
	}
	if _, err := svc.SubmitAssessment(context.Background(), "u1", map[string]int{"pv01": 0}); !errors.Is(err, ErrInvalidResponse) {
		t.Fatalf("expected ErrInvalidResponse for low value, got %v", err)
	}
	if _, err := svc.SubmitAssessment(context.Background(), "u1", map[string]int{"pv01": 11}); !errors.Is(err, ErrInvalidResponse) {
		t.Fatalf("expected ErrInvalidResponse for high value, got %v", err)
	}
	if _, err := svc.SubmitAssessment(context.Background(), "u1", map[string]int{"zz99": 5}); !errors.Is(err, ErrUnknownQuestion) {
		t.Fatalf("expected ErrUnknownQuestion, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("expected nothing persisted on validation failures")
	}
}

func TestAssessmentServiceSubmit_RateLimited(t *testing.T) {
	svc := newTestAssessmentService(newMockAssessmentRepo(), newMockUserRepo(), &mockEmailSender{}, &mockLimiter{allow: false})

	_, err := svc.SubmitAssessment(context.Background(), "u1", map[string]int{"pv01": 5})
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
}

func TestAssessmentServiceSubmit_EmailFailureIsBestEffort(t *testing.T) {
	repo := newMockAssessmentRepo()
	users := newMockUserRepo()
	sender := &mockEmailSender{err: errors.New("smtp down")}
	svc := newTestAssessmentService(repo, users, sender, nil)

	user := domain.User{ID: "u1", Email: "user@example.com", CreatedAt: time.Now().UTC()}
	if err := users.Create(context.Background(), user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	if _, err := svc.SubmitAssessment(context.Background(), "u1", map[string]int{"pv01": 5}); err != nil {
		t.Fatalf("expected submit to succeed despite email failure, got %v", err)
	}
	if len(repo.byID) != 1 {
		t.Fatalf("expected assessment persisted")
	}
}

func TestAssessmentServiceGet_OwnerOnly(t *testing.T) {
	repo := newMockAssessmentRepo()
	svc := newTestAssessmentService(repo, newMockUserRepo(), &mockEmailSender{}, nil)

	assessment, err := svc.SubmitAssessment(context.Background(), "u1", map[string]int{"pv01": 5})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	got, err := svc.GetAssessment(context.Background(), "u1", assessment.ID)
	if err != nil {
		t.Fatalf("get by owner: %v", err)
	}
	if got.ID != assessment.ID {
		t.Fatalf("unexpected assessment %s", got.ID)
	}

	if _, err := svc.GetAssessment(context.Background(), "u2", assessment.ID); !errors.Is(err, ErrAssessmentNotFound) {
		t.Fatalf("expected ErrAssessmentNotFound for other user, got %v", err)
	}
	if _, err := svc.GetAssessment(context.Background(), "u1", "missing"); !errors.Is(err, ErrAssessmentNotFound) {
		t.Fatalf("expected ErrAssessmentNotFound for missing id, got %v", err)
	}
}

func TestAssessmentServiceLatestAndList(t *testing.T) {
	repo := newMockAssessmentRepo()
	svc := newTestAssessmentService(repo, newMockUserRepo(), &mockEmailSender{}, nil)

	if _, err := svc.LatestAssessment(context.Background(), "u1"); !errors.Is(err, ErrAssessmentNotFound) {
		t.Fatalf("expected ErrAssessmentNotFound with no history, got %v", err)
	}

	first, err := svc.SubmitAssessment(context.Background(), "u1", map[string]int{"pv01": 3})
	if err != nil {
		t.Fatalf("submit first: %v", err)
	}
	second, err := svc.SubmitAssessment(context.Background(), "u1", map[string]int{"pv01": 8})
	if err != nil {
		t.Fatalf("submit second: %v", err)
	}

	latest, err := svc.LatestAssessment(context.Background(), "u1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest.ID != second.ID {
		t.Fatalf("expected latest %s, got %s", second.ID, latest.ID)
	}

	list, err := svc.ListAssessments(context.Background(), "u1", 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].ID != second.ID || list[1].ID != first.ID {
		t.Fatalf("expected newest-first history, got %+v", list)
	}
}

func TestAssessmentServiceBuildPlan(t *testing.T) {
	repo := newMockAssessmentRepo()
	svc := newTestAssessmentService(repo, newMockUserRepo(), &mockEmailSender{}, nil)

	assessment, err := svc.SubmitAssessment(context.Background(), "u1", map[string]int{"pv01": 4, "mc01": 8})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	plan, err := svc.BuildPlan(context.Background(), "u1", assessment.ID)
	if err != nil {
		t.Fatalf("build plan: %v", err)
	}
	if len(plan.Daily.Morning.Activities) == 0 || len(plan.WeeklyThemes) != 7 {
		t.Fatalf("unexpected plan shape: %+v", plan)
	}

	if _, err := svc.BuildPlan(context.Background(), "u2", assessment.ID); !errors.Is(err, ErrAssessmentNotFound) {
		t.Fatalf("expected ErrAssessmentNotFound for other user, got %v", err)
	}
}
