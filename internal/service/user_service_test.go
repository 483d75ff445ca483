package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"ascend/internal/domain"
)

type mockUserRepo struct {
	usersByID    map[string]domain.User
	usersByEmail map[string]string
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		usersByID:    make(map[string]domain.User),
		usersByEmail: make(map[string]string),
	}
}

func (m *mockUserRepo) Create(_ context.Context, user domain.User) error {
	m.usersByID[user.ID] = user
	if user.Email != "" {
		m.usersByEmail[user.Email] = user.ID
	}
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (domain.User, error) {
	user, ok := m.usersByID[id]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return user, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (domain.User, error) {
	id, ok := m.usersByEmail[email]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return m.GetByID(context.Background(), id)
}

func (m *mockUserRepo) UpdateOTP(_ context.Context, id, otpHash string, otpExpiresAt time.Time) error {
	user, ok := m.usersByID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	user.OtpCodeHash = otpHash
	user.OtpExpiresAt = &otpExpiresAt
	m.usersByID[id] = user
	return nil
}

func (m *mockUserRepo) VerifyEmail(_ context.Context, id string, verifiedAt time.Time) error {
	user, ok := m.usersByID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	user.EmailVerifiedAt = &verifiedAt
	user.OtpCodeHash = ""
	user.OtpExpiresAt = nil
	m.usersByID[id] = user
	return nil
}

type mockEmailSender struct {
	lastTo      string
	lastCode    string
	lastExpires time.Time
	summaries   int
	err         error
}

func (m *mockEmailSender) SendVerificationOTP(_ context.Context, toEmail string, code string, expiresAt time.Time) error {
	m.lastTo = toEmail
	m.lastCode = code
	m.lastExpires = expiresAt
	return m.err
}

func (m *mockEmailSender) SendAssessmentSummary(_ context.Context, toEmail string, _ domain.CompositeAnalysis) error {
	m.lastTo = toEmail
	m.summaries++
	return m.err
}

func TestUserServiceCreateUserAndAuthenticate(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(zap.NewNop(), repo, &mockEmailSender{}, nil)

	user, err := svc.CreateUser(context.Background(), CreateUserInput{
		Email:       " User@Example.com ",
		DisplayName: "Test",
		Password:    "hunter22",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if user.Email != "user@example.com" {
		t.Fatalf("expected normalized email, got %s", user.Email)
	}
	if user.PasswordHash == "" || user.PasswordHash == "hunter22" {
		t.Fatalf("expected hashed password, got %q", user.PasswordHash)
	}

	got, err := svc.Authenticate(context.Background(), "user@example.com", "hunter22")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("expected user %s, got %s", user.ID, got.ID)
	}

	if _, err := svc.Authenticate(context.Background(), "user@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "nobody@example.com", "hunter22"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestUserServiceCreateUser_InvalidEmail(t *testing.T) {
	svc := NewUserService(zap.NewNop(), newMockUserRepo(), &mockEmailSender{}, nil)
	if _, err := svc.CreateUser(context.Background(), CreateUserInput{Email: "   "}); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
}

func TestUserServiceRequestOTP_NewUser(t *testing.T) {
	repo := newMockUserRepo()
	sender := &mockEmailSender{}
	svc := NewUserService(zap.NewNop(), repo, sender, nil)

	start := time.Now().UTC()
	user, err := svc.RequestOTP(context.Background(), "user@example.com", "Test")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if user.Email != "user@example.com" {
		t.Fatalf("expected email user@example.com, got %s", user.Email)
	}
	if sender.lastTo != "user@example.com" {
		t.Fatalf("expected email to be sent to user@example.com, got %s", sender.lastTo)
	}
	if sender.lastCode == "" {
		t.Fatalf("expected otp code to be sent")
	}
	if sender.lastExpires.Before(start.Add(9*time.Minute)) {
		t.Fatalf("expected otp expiry at least 9 minutes ahead, got %v", sender.lastExpires)
	}
	if sender.lastExpires.After(start.Add(11 * time.Minute)) {
		t.Fatalf("expected otp expiry around 10 minutes, got %v", sender.lastExpires)
	}

	stored, err := repo.GetByEmail(context.Background(), "user@example.com")
	if err != nil {
		t.Fatalf("expected user stored, got %v", err)
	}
	if stored.OtpCodeHash == "" || stored.OtpExpiresAt == nil {
		t.Fatalf("expected otp to be stored")
	}
}

func TestUserServiceVerifyOTP_Success(t *testing.T) {
	repo := newMockUserRepo()
	sender := &mockEmailSender{}
	svc := NewUserService(zap.NewNop(), repo, sender, nil)

	_, err := svc.RequestOTP(context.Background(), "user@example.com", "")
	if err != nil {
		t.Fatalf("expected request otp success, got %v", err)
	}
	if sender.lastCode == "" {
		t.Fatalf("expected code to be captured")
	}

	user, err := svc.VerifyOTP(context.Background(), "user@example.com", sender.lastCode)
	if err != nil {
		t.Fatalf("expected verify success, got %v", err)
	}
	if user.EmailVerifiedAt == nil {
		t.Fatalf("expected email verified")
	}

	stored, err := repo.GetByEmail(context.Background(), "user@example.com")
	if err != nil {
		t.Fatalf("expected user stored, got %v", err)
	}
	if stored.OtpCodeHash != "" || stored.OtpExpiresAt != nil {
		t.Fatalf("expected otp cleared after verification")
	}
}

func TestUserServiceVerifyOTP_Expired(t *testing.T) {
	repo := newMockUserRepo()
	sender := &mockEmailSender{}
	svc := NewUserService(zap.NewNop(), repo, sender, nil)

	code, hash, _, err := generateOTP()
	if err != nil {
		t.Fatalf("generate otp failed: %v", err)
	}
	expiredAt := time.Now().UTC().Add(-1 * time.Minute)
	user := domain.User{
		ID:           "u1",
		Email:        "user@example.com",
		OtpCodeHash:  hash,
		OtpExpiresAt: &expiredAt,
		CreatedAt:    time.Now().UTC(),
	}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("create user failed: %v", err)
	}

	_, err = svc.VerifyOTP(context.Background(), "user@example.com", code)
	if !errors.Is(err, ErrOTPExpired) {
		t.Fatalf("expected ErrOTPExpired, got %v", err)
	}
}

func TestUserServiceVerifyOTP_WrongCode(t *testing.T) {
	repo := newMockUserRepo()
	sender := &mockEmailSender{}
	svc := NewUserService(zap.NewNop(), repo, sender, nil)

	if _, err := svc.RequestOTP(context.Background(), "user@example.com", ""); err != nil {
		t.Fatalf("request otp: %v", err)
	}

	wrong := "000000"
	if wrong == sender.lastCode {
		wrong = "000001"
	}
	if _, err := svc.VerifyOTP(context.Background(), "user@example.com", wrong); !errors.Is(err, ErrOTPInvalid) {
		t.Fatalf("expected ErrOTPInvalid, got %v", err)
	}
	if _, err := svc.VerifyOTP(context.Background(), "user@example.com", "abc"); !errors.Is(err, ErrOTPInvalid) {
		t.Fatalf("expected ErrOTPInvalid for malformed code, got %v", err)
	}
}

func TestUserServiceRequestOTP_EmailSendFailure(t *testing.T) {
	repo := newMockUserRepo()
	sender := &mockEmailSender{err: errors.New("smtp down")}
	svc := NewUserService(zap.NewNop(), repo, sender, nil)

	_, err := svc.RequestOTP(context.Background(), "user@example.com", "")
	if !errors.Is(err, ErrEmailSendFailure) {
		t.Fatalf("expected ErrEmailSendFailure, got %v", err)
	}
}

type mockLimiter struct {
	allow bool
}

func (m *mockLimiter) Allow(_ string) bool {
	return m.allow
}

func TestUserServiceRequestOTP_RateLimited(t *testing.T) {
	repo := newMockUserRepo()
	sender := &mockEmailSender{}
	limiter := &mockLimiter{allow: false}
	svc := NewUserService(zap.NewNop(), repo, sender, limiter)

	_, err := svc.RequestOTP(context.Background(), "user@example.com", "")
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
}
