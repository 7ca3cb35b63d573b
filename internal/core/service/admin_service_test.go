package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/mywallet/wallet-api/internal/core/domain"
)

func TestAdminService_ListUsers_RedactsHashes(t *testing.T) {
	users := newStubUserRepo()
	sessions := newStubSessionRepo()
	seedUser(t, users, sessions, "alice")
	svc := NewAdminService(users, sessions, zerolog.Nop())

	list, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 user, got %d", len(list))
	}

	raw, err := json.Marshal(list)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(strings.ToLower(string(raw)), "password") || strings.Contains(string(raw), "hash") {
		t.Fatalf("user listing leaks credentials: %s", raw)
	}
	if list[0].Incomes == nil || list[0].Outcomes == nil {
		t.Fatalf("expected empty lists, not nil")
	}
}

func TestAdminService_PurgeUsers(t *testing.T) {
	users := newStubUserRepo()
	sessions := newStubSessionRepo()
	seedUser(t, users, sessions, "bob")
	seedUser(t, users, sessions, "carol")
	svc := NewAdminService(users, sessions, zerolog.Nop())

	remaining, err := svc.PurgeUsers(context.Background())
	if err != nil {
		t.Fatalf("PurgeUsers failed: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("expected empty list after purge, got %d", len(remaining))
	}
}

func TestAdminService_ListSessions(t *testing.T) {
	users := newStubUserRepo()
	sessions := newStubSessionRepo()
	seedUser(t, users, sessions, "dana")
	svc := NewAdminService(users, sessions, zerolog.Nop())

	list, err := svc.ListSessions(context.Background())
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}
	if len(list) != 1 || list[0].UserName != "dana" {
		t.Fatalf("unexpected sessions: %+v", list)
	}
}

func TestAdminService_ComparePassword(t *testing.T) {
	users := newStubUserRepo()
	hash, err := bcrypt.GenerateFromPassword([]byte("pass123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if _, err := users.Insert(context.Background(), &domain.User{Name: "erin", Email: "erin@example.com", PasswordHash: string(hash)}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	svc := NewAdminService(users, newStubSessionRepo(), zerolog.Nop())

	match, err := svc.ComparePassword(context.Background(), "erin@example.com", "pass123")
	if err != nil || !match {
		t.Fatalf("expected match, got %v %v", match, err)
	}

	match, err = svc.ComparePassword(context.Background(), "erin@example.com", "wrong")
	if err != nil || match {
		t.Fatalf("expected mismatch, got %v %v", match, err)
	}

	if _, err := svc.ComparePassword(context.Background(), "ghost@example.com", "x"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
