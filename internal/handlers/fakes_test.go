package handlers_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/Gicotto/MyTaskApp/internal/auth"
	"github.com/Gicotto/MyTaskApp/internal/handlers"
	"github.com/Gicotto/MyTaskApp/internal/repository"
	"github.com/Gicotto/MyTaskApp/internal/routes"
	"github.com/Gicotto/MyTaskApp/models"
)

// ========================================================
// In-memory fakes for the repository interfaces
// ========================================================

type fakeTaskRepo struct {
	tasks  []models.Task
	nextID uint
	clock  time.Time
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{nextID: 1, clock: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeTaskRepo) List() ([]models.Task, error) {
	out := make([]models.Task, len(f.tasks))
	copy(out, f.tasks)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Created.Before(out[j].Created) })
	return out, nil
}

func (f *fakeTaskRepo) Get(id uint) (*models.Task, error) {
	for _, task := range f.tasks {
		if task.ID == id {
			stored := task
			return &stored, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeTaskRepo) Create(task *models.Task) error {
	task.ID = f.nextID
	f.nextID++
	if task.Created.IsZero() {
		f.clock = f.clock.Add(time.Second)
		task.Created = f.clock
	}
	f.tasks = append(f.tasks, *task)
	return nil
}

func (f *fakeTaskRepo) Update(task *models.Task) error {
	for i := range f.tasks {
		if f.tasks[i].ID == task.ID {
			f.tasks[i] = *task
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeTaskRepo) Delete(id uint) error {
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeFinanceRepo struct {
	txs    []models.Financial
	nextID uint
}

func newFakeFinanceRepo() *fakeFinanceRepo {
	return &fakeFinanceRepo{nextID: 1}
}

func (f *fakeFinanceRepo) ListByDate() ([]models.Financial, error) {
	out := make([]models.Financial, len(f.txs))
	copy(out, f.txs)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (f *fakeFinanceRepo) LastByID() (*models.Financial, error) {
	if len(f.txs) == 0 {
		return nil, repository.ErrNotFound
	}
	last := f.txs[0]
	for _, tx := range f.txs {
		if tx.ID > last.ID {
			last = tx
		}
	}
	return &last, nil
}

func (f *fakeFinanceRepo) Get(id uint) (*models.Financial, error) {
	for _, tx := range f.txs {
		if tx.ID == id {
			stored := tx
			return &stored, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeFinanceRepo) Create(tx *models.Financial) error {
	tx.ID = f.nextID
	f.nextID++
	if tx.Date.IsZero() {
		tx.Date = time.Now()
	}
	f.txs = append(f.txs, *tx)
	return nil
}

func (f *fakeFinanceRepo) Update(tx *models.Financial) error {
	for i := range f.txs {
		if f.txs[i].ID == tx.ID {
			f.txs[i] = *tx
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeFinanceRepo) Delete(id uint) error {
	for i := range f.txs {
		if f.txs[i].ID == id {
			f.txs = append(f.txs[:i], f.txs[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeUserRepo struct {
	users  map[string]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User), nextID: 1}
}

func (f *fakeUserRepo) FindByUsername(username string) (*models.User, error) {
	if u, ok := f.users[username]; ok {
		stored := *u
		return &stored, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) Create(user *models.User) error {
	if _, ok := f.users[user.Username]; ok {
		return errors.New("UNIQUE constraint failed: user.username")
	}
	user.ID = f.nextID
	f.nextID++
	stored := *user
	f.users[user.Username] = &stored
	return nil
}

type fakeRoleRepo struct {
	roles []models.Role
}

func newFakeRoleRepo() *fakeRoleRepo {
	return &fakeRoleRepo{roles: []models.Role{
		{ID: 1, Name: "accounting"},
		{ID: 2, Name: "management"},
	}}
}

func (f *fakeRoleRepo) List() ([]models.Role, error) { return f.roles, nil }

func (f *fakeRoleRepo) FindByNames(names []string) ([]models.Role, error) {
	var out []models.Role
	for _, r := range f.roles {
		for _, n := range names {
			if r.Name == n {
				out = append(out, r)
			}
		}
	}
	return out, nil
}

// ========================================================
// Test server plumbing
// ========================================================

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type testApp struct {
	engine  *gin.Engine
	tasks   *fakeTaskRepo
	finance *fakeFinanceRepo
	users   *fakeUserRepo
	auth    *auth.Service
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tasks := newFakeTaskRepo()
	finance := newFakeFinanceRepo()
	users := newFakeUserRepo()
	roles := newFakeRoleRepo()

	svc := auth.NewService(users, roles, []byte("test-secret"), time.Hour, nil)
	h := handlers.New(tasks, finance, users, roles, svc, testLogger())

	engine := gin.New()
	engine.LoadHTMLGlob("../../templates/*.html")
	routes.SetupRoutes(engine, h, svc)

	return &testApp{engine: engine, tasks: tasks, finance: finance, users: users, auth: svc}
}

// loginAs registers a user with the given roles and returns its session
// cookie.
func (app *testApp) loginAs(t *testing.T, username string, roleNames ...string) *http.Cookie {
	t.Helper()
	_, err := app.auth.Register(username, "s3cret", roleNames)
	require.NoError(t, err)
	token, err := app.auth.Login(username, "s3cret")
	require.NoError(t, err)
	return &http.Cookie{Name: "auth_token", Value: token}
}

func (app *testApp) get(path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	app.engine.ServeHTTP(w, req)
	return w
}

func (app *testApp) postForm(path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	app.engine.ServeHTTP(w, req)
	return w
}
