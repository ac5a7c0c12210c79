package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"jobify/internal/ai"
	"jobify/internal/auth"
	"jobify/internal/config"
	"jobify/internal/database"
	"jobify/internal/extract"
	"jobify/internal/handlers"
	"jobify/internal/models"
	"jobify/internal/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	testSecret    = "0123456789abcdef0123456789abcdef"
	adminEmail    = "admin@jobify.test"
	adminPassword = "admin-pass"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeStorage struct {
	mu      sync.Mutex
	uploads []string
	err     error
}

func (s *fakeStorage) Upload(_ context.Context, folder, filename string, _ []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	url := fmt.Sprintf("https://files.test/%s/%d-%s", folder, len(s.uploads)+1, filename)
	s.uploads = append(s.uploads, url)
	return url, nil
}

func (s *fakeStorage) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.uploads)
}

type fakeFetcher struct {
	data []byte
	err  error
	urls []string
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	f.urls = append(f.urls, url)
	return f.data, f.err
}

type stubModel struct {
	reply   string
	err     error
	prompts []string
}

func (m *stubModel) Generate(_ context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	return m.reply, m.err
}

type harness struct {
	t       *testing.T
	db      *gorm.DB
	router  *gin.Engine
	storage *fakeStorage
	fetcher *fakeFetcher
	model   *stubModel
	webDir  string
}

// harnessOption adjusts the server config before the router is built.
type harnessOption func(cfg *config.Config)

// withLocalStorage stores resumes on disk and serves them under /uploads.
func withLocalStorage(dir string) harnessOption {
	return func(cfg *config.Config) {
		cfg.Storage = config.StorageConfig{
			Driver:    "local",
			LocalDir:  dir,
			PublicURL: "http://jobify.test/uploads",
		}
	}
}

func newHarness(t *testing.T, opts ...harnessOption) *harness {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.Open(config.DBConfig{
		Driver: "sqlite",
		DSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
	})
	if err != nil {
		t.Fatalf("database.Open() error = %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db.DB() error = %v", err)
	}
	// one connection keeps the shared in-memory database free of lock errors
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	if err := database.Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	if err := database.SeedAdmin(db, config.AdminConfig{Email: adminEmail, Password: adminPassword}); err != nil {
		t.Fatalf("SeedAdmin() error = %v", err)
	}

	cfg := &config.Config{
		Server:  config.ServerConfig{Mode: gin.TestMode, WebDir: t.TempDir()},
		Storage: config.StorageConfig{Driver: "memory"},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	store, err := auth.NewStore(testSecret, false)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}

	h := &harness{
		t:       t,
		db:      db,
		storage: &fakeStorage{},
		fetcher: &fakeFetcher{data: []byte("Seven years of Go and PostgreSQL.")},
		model:   &stubModel{reply: `{"suggestion":"Strong backend profile.","stats":{"matchScore":82,"keySkills":["Go"]}}`},
		webDir:  cfg.Server.WebDir,
	}
	var resumes storage.Storage = h.storage
	if cfg.Storage.Driver == "local" {
		resumes = storage.NewLocal(cfg.Storage.LocalDir, cfg.Storage.PublicURL)
	}
	api := handlers.New(db, resumes, h.fetcher, extract.New(), ai.NewAnalyzer(h.model), cfg.Server.WebDir)
	h.router = NewRouter(cfg, api, store)
	return h
}

// client keeps the cookies a browser would.
type client struct {
	h       *harness
	cookies map[string]*http.Cookie
}

func (h *harness) client() *client {
	return &client{h: h, cookies: map[string]*http.Cookie{}}
}

func (c *client) do(req *http.Request) *httptest.ResponseRecorder {
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	c.h.router.ServeHTTP(rec, req)
	for _, ck := range rec.Result().Cookies() {
		if ck.MaxAge < 0 {
			delete(c.cookies, ck.Name)
			continue
		}
		c.cookies[ck.Name] = ck
	}
	return rec
}

func (c *client) json(method, path string, body any) *httptest.ResponseRecorder {
	c.h.t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			c.h.t.Fatalf("marshal body: %v", err)
		}
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req)
}

func (c *client) login(email, password string) *httptest.ResponseRecorder {
	c.h.t.Helper()
	rec := c.json(http.MethodPost, "/api/auth/login", gin.H{"email": email, "password": password})
	if rec.Code != http.StatusOK {
		c.h.t.Fatalf("login %s: status %d, body %s", email, rec.Code, rec.Body)
	}
	return rec
}

func (h *harness) admin() *client {
	c := h.client()
	c.login(adminEmail, adminPassword)
	return c
}

func (h *harness) user(name, email string) *client {
	h.t.Helper()
	c := h.client()
	rec := c.json(http.MethodPost, "/api/auth/register", gin.H{"name": name, "email": email, "password": "secret1"})
	if rec.Code != http.StatusCreated {
		h.t.Fatalf("register %s: status %d, body %s", email, rec.Code, rec.Body)
	}
	c.login(email, "secret1")
	return c
}

// createJob posts a job as admin and returns it.
func (h *harness) createJob(admin *client, job gin.H) models.Job {
	h.t.Helper()
	rec := admin.json(http.MethodPost, "/api/jobs", job)
	if rec.Code != http.StatusOK {
		h.t.Fatalf("create job: status %d, body %s", rec.Code, rec.Body)
	}
	var out models.Job
	decode(h.t, rec, &out)
	return out
}

type applicationForm struct {
	fields   map[string]string
	filename string
	resume   []byte
}

func validForm(jobID uint) applicationForm {
	return applicationForm{
		fields: map[string]string{
			"jobId":       fmt.Sprint(jobID),
			"fullName":    "Ada Lovelace",
			"email":       "ada@example.test",
			"coverLetter": "I would love to join.",
		},
		filename: "ada.pdf",
		resume:   []byte("Seven years of Go."),
	}
}

func (c *client) submit(form applicationForm) *httptest.ResponseRecorder {
	c.h.t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range form.fields {
		if err := w.WriteField(k, v); err != nil {
			c.h.t.Fatalf("write field: %v", err)
		}
	}
	if form.resume != nil {
		fw, err := w.CreateFormFile("resume", form.filename)
		if err != nil {
			c.h.t.Fatalf("create form file: %v", err)
		}
		fw.Write(form.resume)
	}
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/applications", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.do(req)
}

type submitResponse struct {
	Success     bool               `json:"success"`
	Application models.Application `json:"application"`
}

func (h *harness) apply(c *client, jobID uint) models.Application {
	h.t.Helper()
	rec := c.submit(validForm(jobID))
	if rec.Code != http.StatusCreated {
		h.t.Fatalf("submit: status %d, body %s", rec.Code, rec.Body)
	}
	var out submitResponse
	decode(h.t, rec, &out)
	return out.Application
}

func (h *harness) count(model any) int64 {
	h.t.Helper()
	var n int64
	if err := h.db.Model(model).Count(&n).Error; err != nil {
		h.t.Fatalf("count: %v", err)
	}
	return n
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
}
