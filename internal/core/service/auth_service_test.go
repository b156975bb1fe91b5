package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/aashnamahajan/DevelopersConnector/internal/core/domain"
)

type stubUserRepo struct {
	users  map[string]*domain.User // by id
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	created := cloneUser(user)
	r.nextID++
	created.ID = "user_" + strconv.Itoa(r.nextID)
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

type stubProfileRepo struct {
	profiles map[string]*domain.Profile // by user id
}

func newStubProfileRepo() *stubProfileRepo {
	return &stubProfileRepo{profiles: make(map[string]*domain.Profile)}
}

func cloneProfile(p *domain.Profile) *domain.Profile {
	if p == nil {
		return nil
	}
	clone := *p
	clone.Skills = append([]string(nil), p.Skills...)
	clone.Experience = append([]domain.Experience(nil), p.Experience...)
	clone.Education = append([]domain.Education(nil), p.Education...)
	return &clone
}

func (r *stubProfileRepo) Create(_ context.Context, p *domain.Profile) (*domain.Profile, error) {
	created := cloneProfile(p)
	created.ID = "profile_" + p.UserID
	r.profiles[p.UserID] = cloneProfile(created)
	return created, nil
}

func (r *stubProfileRepo) Save(_ context.Context, p *domain.Profile) (*domain.Profile, error) {
	if _, ok := r.profiles[p.UserID]; !ok {
		return nil, domain.ErrProfileNotFound
	}
	r.profiles[p.UserID] = cloneProfile(p)
	return cloneProfile(p), nil
}

func (r *stubProfileRepo) FindByUserID(_ context.Context, userID string) (*domain.Profile, error) {
	if p, ok := r.profiles[userID]; ok {
		return cloneProfile(p), nil
	}
	return nil, domain.ErrProfileNotFound
}

func (r *stubProfileRepo) List(_ context.Context) ([]*domain.Profile, error) {
	out := make([]*domain.Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, cloneProfile(p))
	}
	return out, nil
}

func (r *stubProfileRepo) DeleteByUserID(_ context.Context, userID string) error {
	delete(r.profiles, userID)
	return nil
}

func newTestAuthService(users *stubUserRepo, profiles *stubProfileRepo) (*AuthService, *TokenIssuer) {
	tokens := NewTokenIssuer("secret", time.Hour)
	return NewAuthService(users, profiles, tokens, nil, testLogger()), tokens
}

func TestAuthService_Register_Success(t *testing.T) {
	users := newStubUserRepo()
	svc, tokens := newTestAuthService(users, newStubProfileRepo())

	token, err := svc.Register(context.Background(), "Alice", "alice@example.com", "secret1")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	userID, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("returned token not verifiable: %v", err)
	}

	stored, err := users.FindByID(context.Background(), userID)
	if err != nil {
		t.Fatalf("token does not resolve to the created user: %v", err)
	}
	if stored.Email != "alice@example.com" {
		t.Fatalf("unexpected email: %s", stored.Email)
	}
	if stored.PasswordHash == "secret1" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if stored.Avatar == "" {
		t.Fatalf("expected avatar to be derived from email")
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc, _ := newTestAuthService(newStubUserRepo(), newStubProfileRepo())

	if _, err := svc.Register(context.Background(), "A", "a@x.com", "secret1"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "B", "a@x.com", "secret2"); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	users := newStubUserRepo()
	svc, tokens := newTestAuthService(users, newStubProfileRepo())

	if _, err := svc.Register(context.Background(), "Carol", "carol@example.com", "s3cret1"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, err := svc.Login(context.Background(), "carol@example.com", "s3cret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	userID, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if _, err := users.FindByID(context.Background(), userID); err != nil {
		t.Fatalf("token does not resolve to a stored user: %v", err)
	}
}

func TestAuthService_Login_CredentialFailuresCollapse(t *testing.T) {
	svc, _ := newTestAuthService(newStubUserRepo(), newStubProfileRepo())

	if _, err := svc.Register(context.Background(), "Dave", "dave@example.com", "goodpass"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, wrongPassword := svc.Login(context.Background(), "dave@example.com", "badpass")
	_, unknownEmail := svc.Login(context.Background(), "ghost@example.com", "whatever")

	if wrongPassword != domain.ErrInvalidCredentials {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPassword)
	}
	if unknownEmail != domain.ErrInvalidCredentials {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknownEmail)
	}
	if wrongPassword != unknownEmail {
		t.Fatalf("failure modes must be indistinguishable: %v vs %v", wrongPassword, unknownEmail)
	}
}

func TestAuthService_DeleteAccount_Cascades(t *testing.T) {
	users := newStubUserRepo()
	profiles := newStubProfileRepo()
	svc, tokens := newTestAuthService(users, profiles)

	token, err := svc.Register(context.Background(), "Eve", "eve@example.com", "secret1")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	userID, _ := tokens.Verify(token)
	if _, err := profiles.Create(context.Background(), &domain.Profile{UserID: userID, Status: "Developer"}); err != nil {
		t.Fatalf("seed profile: %v", err)
	}

	if err := svc.DeleteAccount(context.Background(), userID); err != nil {
		t.Fatalf("delete account: %v", err)
	}

	if _, err := users.FindByID(context.Background(), userID); err != domain.ErrUserNotFound {
		t.Fatalf("expected user gone, got %v", err)
	}
	if _, err := profiles.FindByUserID(context.Background(), userID); err != domain.ErrProfileNotFound {
		t.Fatalf("expected profile gone, got %v", err)
	}
}
