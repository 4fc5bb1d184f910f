package user

import (
	"context"
	"sync"
	"testing"

	"booktrack/models"
	"booktrack/utils"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User // keyed by id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) Create(u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, utils.NewNotFound("User not found")
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetAll() ([]models.User, error) { return nil, nil }

func (r *fakeUserRepo) CountByRole(role string) (int64, error) { return 0, nil }

func (r *fakeUserRepo) SetBlocked(id string, blocked bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return utils.NewNotFound("User not found")
	}
	u.Blocked = blocked
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

func registration(email, role string) models.UserCreate {
	return models.UserCreate{
		Email:    email,
		Password: "hunter22",
		Name:     "Test Account",
		Role:     role,
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}
	ctx := context.Background()

	resp, err := svc.Register(ctx, registration("a@example.com", models.RoleUser))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if resp.Token == "" {
		t.Error("registration should issue a token")
	}
	if resp.User.PasswordHash == "hunter22" {
		t.Error("password must not be stored in the clear")
	}

	login, err := svc.Login(ctx, models.UserLogin{Email: "a@example.com", Password: "hunter22"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if login.Token == "" {
		t.Error("login should issue a token")
	}
	if login.User.ID != resp.User.ID {
		t.Error("login returned a different account")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}
	ctx := context.Background()

	if _, err := svc.Register(ctx, registration("a@example.com", models.RoleUser)); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	_, err := svc.Register(ctx, registration("a@example.com", models.RoleProvider))
	if code, _ := utils.CodeOf(err); code != utils.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestRegisterUnknownRole(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	_, err := svc.Register(context.Background(), registration("a@example.com", "superuser"))
	if code, _ := utils.CodeOf(err); code != utils.CodeInvalidInput {
		t.Fatalf("expected invalid_input, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}
	ctx := context.Background()

	if _, err := svc.Register(ctx, registration("a@example.com", models.RoleUser)); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := svc.Login(ctx, models.UserLogin{Email: "a@example.com", Password: "wrong"})
	if code, _ := utils.CodeOf(err); code != utils.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	_, err := svc.Login(context.Background(), models.UserLogin{Email: "nobody@example.com", Password: "x"})
	if code, _ := utils.CodeOf(err); code != utils.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestLoginBlockedAccount(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}
	ctx := context.Background()

	resp, err := svc.Register(ctx, registration("a@example.com", models.RoleUser))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := repo.SetBlocked(resp.User.ID, true); err != nil {
		t.Fatalf("SetBlocked: %v", err)
	}

	_, err = svc.Login(ctx, models.UserLogin{Email: "a@example.com", Password: "hunter22"})
	if code, _ := utils.CodeOf(err); code != utils.CodeForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}
}
