package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/mywallet/wallet-api/internal/core/domain"
)

func newAuthService(users *stubUserRepo, sessions *stubSessionRepo) *AuthService {
	return NewAuthService(users, sessions, bcrypt.MinCost, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	users := newStubUserRepo()
	svc := newAuthService(users, newStubSessionRepo())

	if err := svc.Register(context.Background(), "alice", "alice@example.com", "pass123"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	stored, err := users.FindByEmail(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("user not persisted: %v", err)
	}
	if stored.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if len(stored.Incomes) != 0 || len(stored.Outcomes) != 0 {
		t.Fatalf("expected empty ledgers, got %d/%d", len(stored.Incomes), len(stored.Outcomes))
	}
}

func TestAuthService_Register_DuplicateName(t *testing.T) {
	users := newStubUserRepo()
	svc := newAuthService(users, newStubSessionRepo())

	if err := svc.Register(context.Background(), "bob", "bob@example.com", "pass123"); err != nil {
		t.Fatalf("seed register failed: %v", err)
	}

	// Same name with a different email; the name check fires first.
	if err := svc.Register(context.Background(), "bob", "other@example.com", "pass123"); !errors.Is(err, domain.ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	users := newStubUserRepo()
	svc := newAuthService(users, newStubSessionRepo())

	if err := svc.Register(context.Background(), "carol", "carol@example.com", "pass123"); err != nil {
		t.Fatalf("seed register failed: %v", err)
	}

	if err := svc.Register(context.Background(), "carol2", "carol@example.com", "pass123"); !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestAuthService_Register_DuplicateBeatsValidation(t *testing.T) {
	users := newStubUserRepo()
	svc := newAuthService(users, newStubSessionRepo())

	if err := svc.Register(context.Background(), "dave", "dave@example.com", "pass123"); err != nil {
		t.Fatalf("seed register failed: %v", err)
	}

	// Malformed email and password, but the taken name wins.
	if err := svc.Register(context.Background(), "dave", "not-an-email", "!"); !errors.Is(err, domain.ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName before validation, got %v", err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	users := newStubUserRepo()
	svc := newAuthService(users, newStubSessionRepo())

	err := svc.Register(context.Background(), "x", "eve@example.org", "!!")
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	// Short name, disallowed TLD, non-alphanumeric password: three rules.
	if len(ve.Fields) != 3 {
		t.Fatalf("expected 3 field messages, got %d: %v", len(ve.Fields), ve.Fields)
	}
	if all, _ := users.ListAll(context.Background()); len(all) != 0 {
		t.Fatalf("invalid signup must not persist a user")
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	users := newStubUserRepo()
	sessions := newStubSessionRepo()
	svc := newAuthService(users, sessions)

	if err := svc.Register(context.Background(), "frank", "frank@example.com", "s3cret"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, err := svc.Login(context.Background(), "frank@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	session, err := sessions.FindByToken(context.Background(), token)
	if err != nil {
		t.Fatalf("session not persisted: %v", err)
	}
	if session.UserName != "frank" {
		t.Fatalf("expected display name snapshot, got %q", session.UserName)
	}
	if session.UserID == "" {
		t.Fatalf("expected session to reference the user")
	}
}

func TestAuthService_Login_ConcurrentSessionsAllowed(t *testing.T) {
	users := newStubUserRepo()
	sessions := newStubSessionRepo()
	svc := newAuthService(users, sessions)

	if err := svc.Register(context.Background(), "gina", "gina@example.com", "pass123"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	t1, err := svc.Login(context.Background(), "gina@example.com", "pass123")
	if err != nil {
		t.Fatalf("first login failed: %v", err)
	}
	t2, err := svc.Login(context.Background(), "gina@example.com", "pass123")
	if err != nil {
		t.Fatalf("second login failed: %v", err)
	}
	if t1 == t2 {
		t.Fatalf("expected distinct tokens per login")
	}
	if all, _ := sessions.ListAll(context.Background()); len(all) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(all))
	}
}

func TestAuthService_Login_UnknownEmailIsNotFound(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), newStubSessionRepo())

	// Lookup runs before validation: even a malformed email for a user that
	// does not exist reports not-found, not a validation failure.
	if _, err := svc.Login(context.Background(), "not-an-email", "pass123"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Login_MalformedPasswordAfterLookup(t *testing.T) {
	users := newStubUserRepo()
	svc := newAuthService(users, newStubSessionRepo())

	if err := svc.Register(context.Background(), "henry", "henry@example.com", "pass123"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, err := svc.Login(context.Background(), "henry@example.com", "not alphanumeric!")
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for malformed password, got %v", err)
	}
}

func TestAuthService_Login_InvalidPassword_NoSession(t *testing.T) {
	users := newStubUserRepo()
	sessions := newStubSessionRepo()
	svc := newAuthService(users, sessions)

	if err := svc.Register(context.Background(), "irene", "irene@example.com", "goodpass"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := svc.Login(context.Background(), "irene@example.com", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if all, _ := sessions.ListAll(context.Background()); len(all) != 0 {
		t.Fatalf("failed login must not create a session, got %d", len(all))
	}
}
