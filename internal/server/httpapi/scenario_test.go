package httpapi

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/workhive/jobboard/internal/common"
	"github.com/workhive/jobboard/internal/server/models"
	"github.com/workhive/jobboard/internal/server/services"
)

// In-memory repositories so the scenario exercises the real services and
// transport together, end to end.

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User // keyed by email
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*models.User{}}
}

func (m *memUserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	m.users[user.Email] = user
	return user, nil
}

func (m *memUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[email]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

func (m *memUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

type memJobRepo struct {
	mu   sync.Mutex
	jobs []*models.Job
}

func (m *memJobRepo) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	job.ID = uuid.NewString()
	job.CreatedAt = time.Now()
	m.jobs = append([]*models.Job{job}, m.jobs...)
	return job, nil
}

func (m *memJobRepo) List(ctx context.Context) ([]*models.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*models.Job{}, m.jobs...), nil
}

// TestScenario_RegisterLoginProfilePostJob walks the full happy path of the
// application plus the uniform rejections around it.
func TestScenario_RegisterLoginProfilePostJob(t *testing.T) {
	cfg := testServerConfig()
	userRepo := newMemUserRepo()
	jobRepo := &memJobRepo{}
	us := services.NewUserService(userRepo, cfg)
	js := services.NewJobService(jobRepo)
	s := newTestServer(t, us, js)

	// register
	w := doRequest(t, s, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Alice", "email": "alice@x.com", "password": "secret1",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("register status = %d, body %s", w.Code, w.Body.String())
	}

	// duplicate registration is a conflict
	w = doRequest(t, s, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Alice", "email": "alice@x.com", "password": "secret1",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register status = %d, want 400", w.Code)
	}

	// login
	w = doRequest(t, s, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "alice@x.com", "password": "secret1",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", w.Code, w.Body.String())
	}
	token, _ := decodeBody(t, w)["token"].(string)
	if token == "" {
		t.Fatal("login returned no token")
	}

	// profile with the minted token
	w = doRequest(t, s, http.MethodGet, "/api/auth/profile", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("profile status = %d, body %s", w.Code, w.Body.String())
	}
	user, _ := decodeBody(t, w)["user"].(map[string]any)
	if user["name"] != "Alice" || user["email"] != "alice@x.com" {
		t.Fatalf("unexpected profile: %v", user)
	}
	if phone, ok := user["phone"]; !ok || phone != "" {
		t.Fatalf("optional fields must default to empty string, got %v", user)
	}
	if _, ok := user["password"]; ok {
		t.Fatal("profile response must never carry the password hash")
	}

	// profile without a header is rejected
	w = doRequest(t, s, http.MethodGet, "/api/auth/profile", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated profile status = %d, want 401", w.Code)
	}

	// post a job; owner comes from the verified identity
	w = doRequest(t, s, http.MethodPost, "/api/jobs", token, gin.H{
		"title": "Go developer", "desc": "Backend role",
		"lastDate": "2026-12-31", "company": "Acme",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create job status = %d, body %s", w.Code, w.Body.String())
	}
	job, _ := decodeBody(t, w)["job"].(map[string]any)
	if job["user"] != user["id"] {
		t.Fatalf("job owner = %v, want %v", job["user"], user["id"])
	}

	// the feed is global and newest first
	w = doRequest(t, s, http.MethodGet, "/api/jobs", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list jobs status = %d, body %s", w.Code, w.Body.String())
	}
	list, _ := decodeBody(t, w)["jobs"].([]any)
	if len(list) != 1 {
		t.Fatalf("expected 1 job, got %d", len(list))
	}
}

func TestScenario_LoginRejectionsAreUniform(t *testing.T) {
	cfg := testServerConfig()
	us := services.NewUserService(newMemUserRepo(), cfg)
	s := newTestServer(t, us, services.NewJobService(&memJobRepo{}))

	w := doRequest(t, s, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Alice", "email": "alice@x.com", "password": "secret1",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("register status = %d", w.Code)
	}

	wUnknown := doRequest(t, s, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "ghost@x.com", "password": "secret1",
	})
	wWrongPw := doRequest(t, s, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "alice@x.com", "password": "wrong",
	})

	if wUnknown.Code != http.StatusBadRequest || wWrongPw.Code != http.StatusBadRequest {
		t.Fatalf("statuses = %d, %d, want 400, 400", wUnknown.Code, wWrongPw.Code)
	}
	if wUnknown.Body.String() != wWrongPw.Body.String() {
		t.Fatalf("error shapes differ: %s vs %s", wUnknown.Body.String(), wWrongPw.Body.String())
	}
}
