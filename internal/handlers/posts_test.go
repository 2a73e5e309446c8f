package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/vaughan-dsouza/goposts/internal/models"
	"github.com/vaughan-dsouza/goposts/internal/utils"
)

type fakeService struct {
	created []models.CreatePostDTO
	post    *models.Post
	posts   []models.Post
	err     error
}

func (f *fakeService) CreatePost(_ context.Context, in models.CreatePostDTO) (*models.Post, error) {
	f.created = append(f.created, in)
	if f.err != nil {
		return nil, f.err
	}
	return f.post, nil
}

func (f *fakeService) GetAllPosts(context.Context) ([]models.Post, error) {
	return f.posts, f.err
}

func (f *fakeService) GetPostByID(context.Context, int64) (*models.Post, error) {
	return f.post, f.err
}

type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	StatusCode int             `json:"statusCode"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body %q)", err, rec.Body.String())
	}
	return env
}

func newTestHandler(svc *fakeService) *PostHandler {
	return NewPostHandler(svc, validator.New(validator.WithRequiredStructEnabled()), 1<<20, log.New(io.Discard, "", 0))
}

func withID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestCreatePost_Created(t *testing.T) {
	svc := &fakeService{post: &models.Post{
		ID: 1, Title: "Test Post", Content: "This is a test post content",
		AuthorID: "test-author", CreatedAt: "2024-05-01T10:00:00.000Z",
	}}
	h := newTestHandler(svc)

	body := `{"title":"Test Post","content":"This is a test post content","authorId":"test-author"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/posts", strings.NewReader(body))

	if err := h.CreatePost(rec, req); err != nil {
		t.Fatalf("CreatePost() error = %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
	}

	env := decodeEnvelope(t, rec)
	if !env.Success || env.Message != "Post created successfully" || env.StatusCode != http.StatusCreated {
		t.Errorf("envelope = %+v", env)
	}

	var post models.Post
	if err := json.Unmarshal(env.Data, &post); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if post.Title != "Test Post" || post.AuthorID != "test-author" || post.ID != 1 {
		t.Errorf("data = %+v", post)
	}

	want := models.CreatePostDTO{Title: "Test Post", Content: "This is a test post content", AuthorID: "test-author"}
	if len(svc.created) != 1 || svc.created[0] != want {
		t.Errorf("service received %+v, want [%+v]", svc.created, want)
	}
}

func TestCreatePost_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing title", `{"content":"c","authorId":"a"}`},
		{"missing content", `{"title":"t","authorId":"a"}`},
		{"missing authorId", `{"title":"t","content":"c"}`},
		{"empty title", `{"title":"","content":"c","authorId":"a"}`},
		{"empty object", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{}
			h := newTestHandler(svc)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/posts", strings.NewReader(tt.body))

			if err := h.CreatePost(rec, req); err != nil {
				t.Fatalf("CreatePost() error = %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}

			env := decodeEnvelope(t, rec)
			if env.Success || env.Message != "Missing required fields" || string(env.Data) != "null" {
				t.Errorf("envelope = %+v", env)
			}
			if len(svc.created) != 0 {
				t.Errorf("service called %d times, want 0", len(svc.created))
			}
		})
	}
}

func TestCreatePost_MalformedJSONIsForwarded(t *testing.T) {
	svc := &fakeService{}
	h := newTestHandler(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/posts", strings.NewReader(`{"title":`))

	err := h.CreatePost(rec, req)

	var httpErr *utils.HTTPError
	if !errors.As(err, &httpErr) || httpErr.StatusCode() != http.StatusBadRequest {
		t.Fatalf("CreatePost() error = %v, want 400 HTTPError", err)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("handler wrote %q, want nothing", rec.Body.String())
	}
}

func TestCreatePost_ServiceErrorIsForwarded(t *testing.T) {
	dbErr := errors.New("insert post: constraint violation")
	h := newTestHandler(&fakeService{err: dbErr})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/posts",
		strings.NewReader(`{"title":"t","content":"c","authorId":"a"}`))

	if err := h.CreatePost(rec, req); !errors.Is(err, dbErr) {
		t.Fatalf("CreatePost() error = %v, want %v", err, dbErr)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("handler wrote %q, want nothing", rec.Body.String())
	}
}

func TestGetPosts(t *testing.T) {
	tests := []struct {
		name     string
		posts    []models.Post
		wantData string
	}{
		{"empty", []models.Post{}, "[]"},
		{"one", []models.Post{{ID: 1, Title: "t", Content: "c", AuthorID: "a", CreatedAt: "x"}},
			`[{"id":1,"title":"t","content":"c","authorId":"a","createdAt":"x"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&fakeService{posts: tt.posts})

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)

			if err := h.GetPosts(rec, req); err != nil {
				t.Fatalf("GetPosts() error = %v", err)
			}
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
			}

			env := decodeEnvelope(t, rec)
			if !env.Success || env.Message != "Posts retrieved successfully" {
				t.Errorf("envelope = %+v", env)
			}
			if string(env.Data) != tt.wantData {
				t.Errorf("data = %s, want %s", env.Data, tt.wantData)
			}
		})
	}
}

func TestGetPosts_ServiceErrorIsForwarded(t *testing.T) {
	dbErr := errors.New("list posts: timeout")
	h := newTestHandler(&fakeService{err: dbErr})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)

	if err := h.GetPosts(rec, req); !errors.Is(err, dbErr) {
		t.Fatalf("GetPosts() error = %v, want %v", err, dbErr)
	}
}

func TestGetPostByID(t *testing.T) {
	found := &models.Post{ID: 5, Title: "t", Content: "c", AuthorID: "a", CreatedAt: "x"}

	tests := []struct {
		name        string
		id          string
		post        *models.Post
		wantStatus  int
		wantMessage string
	}{
		{"found", "5", found, http.StatusOK, "Post retrieved successfully"},
		{"not found", "9999", nil, http.StatusNotFound, "Post with id 9999 not found"},
		{"non numeric", "abc", found, http.StatusBadRequest, "Invalid post ID"},
		{"trailing garbage", "12abc", found, http.StatusBadRequest, "Invalid post ID"},
		{"empty", "", found, http.StatusBadRequest, "Invalid post ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&fakeService{post: tt.post})

			rec := httptest.NewRecorder()
			req := withID(httptest.NewRequest(http.MethodGet, "/api/posts/"+tt.id, nil), tt.id)

			if err := h.GetPostByID(rec, req); err != nil {
				t.Fatalf("GetPostByID() error = %v", err)
			}
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			env := decodeEnvelope(t, rec)
			if env.Message != tt.wantMessage {
				t.Errorf("message = %q, want %q", env.Message, tt.wantMessage)
			}
			if env.Success != (tt.wantStatus == http.StatusOK) {
				t.Errorf("success = %v for status %d", env.Success, tt.wantStatus)
			}
			if env.StatusCode != tt.wantStatus {
				t.Errorf("statusCode = %d, want %d", env.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestGetPostByID_ServiceErrorIsForwarded(t *testing.T) {
	dbErr := errors.New("get post 1: connection reset")
	h := newTestHandler(&fakeService{err: dbErr})

	rec := httptest.NewRecorder()
	req := withID(httptest.NewRequest(http.MethodGet, "/api/posts/1", nil), "1")

	if err := h.GetPostByID(rec, req); !errors.Is(err, dbErr) {
		t.Fatalf("GetPostByID() error = %v, want %v", err, dbErr)
	}
}

func TestHealthStatus(t *testing.T) {
	h := NewHealthHandler(3000)

	rec := httptest.NewRecorder()
	h.Status(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"status":"UP","port":3000}` {
		t.Errorf("body = %s", got)
	}
}
