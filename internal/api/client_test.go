package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vicheka.dev/internal/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(Config{BaseURL: srv.URL, Timeout: 5 * time.Second, UserAgent: "test-agent"}, WithHTTPClient(srv.Client()))
	require.NoError(t, err)
	return c, srv
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	assert.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNewRejectsRelativeBase(t *testing.T) {
	_, err := New(Config{BaseURL: "/api"})
	require.Error(t, err)
}

func TestImageURL(t *testing.T) {
	c, err := New(Config{BaseURL: "http://127.0.0.1:8000/"})
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:8000/storage/projects/a.png", c.ImageURL("projects/a.png"))
	assert.Equal(t, "", c.ImageURL(""))

	c, err = New(Config{BaseURL: "http://127.0.0.1:8000", StorageURL: "https://cdn.example.com/files/"})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/files/a.png", c.ImageURL("/a.png"))
}

func TestReadEndpoints(t *testing.T) {
	var gotPath, gotQuery string
	var gotHeader http.Header
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotQuery, gotHeader = r.URL.Path, r.URL.RawQuery, r.Header
		switch r.URL.Path {
		case "/api/projects":
			writeJSON(t, w, []models.Project{{ID: 1, Title: "Site"}})
		case "/api/tutorials":
			writeJSON(t, w, []models.Tutorial{{ID: 2, Title: "Grid"}})
		case "/api/categories":
			writeJSON(t, w, []models.Category{{ID: 3, Name: "CSS"}})
		case "/api/contact-methods":
			writeJSON(t, w, []models.ContactMethod{{ID: 4, Title: "Call", Type: "other"}})
		default:
			http.NotFound(w, r)
		}
	})
	ctx := context.Background()

	t.Run("projects", func(t *testing.T) {
		got, err := c.Projects(ctx)
		require.NoError(t, err)
		assert.Equal(t, "/api/projects", gotPath)
		require.Len(t, got, 1)
		assert.Equal(t, "Site", got[0].Title)
	})

	t.Run("tutorials", func(t *testing.T) {
		got, err := c.Tutorials(ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, 2, got[0].ID)
		assert.Empty(t, gotQuery)
	})

	t.Run("tutorials by category", func(t *testing.T) {
		_, err := c.TutorialsByCategory(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, "/api/tutorials", gotPath)
		assert.Equal(t, "category=7", gotQuery)
	})

	t.Run("categories", func(t *testing.T) {
		got, err := c.Categories(ctx)
		require.NoError(t, err)
		assert.Equal(t, []models.Category{{ID: 3, Name: "CSS"}}, got)
	})

	t.Run("contact methods", func(t *testing.T) {
		got, err := c.ContactMethods(ctx)
		require.NoError(t, err)
		assert.Equal(t, "/api/contact-methods", gotPath)
		require.Len(t, got, 1)
		assert.Equal(t, "Call", got[0].Title)
	})

	t.Run("headers", func(t *testing.T) {
		_, err := c.Projects(ctx)
		require.NoError(t, err)
		assert.Equal(t, "application/json", gotHeader.Get("Accept"))
		assert.Equal(t, "test-agent", gotHeader.Get("User-Agent"))
		assert.NotEmpty(t, gotHeader.Get("X-Request-ID"))
	})
}

func TestRequestIDPropagation(t *testing.T) {
	var got string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("X-Request-ID")
		writeJSON(t, w, []models.Project{})
	})

	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "host/abc-000001")
	_, err := c.Projects(ctx)
	require.NoError(t, err)
	assert.Equal(t, "host/abc-000001", got)
}

func TestNetworkErrors(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus int
		wantMsg    string
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "boom",
		},
		{
			name: "not found without body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantMsg:    "Not Found",
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"not": "an array"`))
			},
			wantStatus: http.StatusOK,
			wantMsg:    "decoding response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, tt.handler)

			_, err := c.Tutorials(context.Background())
			require.Error(t, err)

			var nerr *NetworkError
			require.True(t, errors.As(err, &nerr))
			assert.Equal(t, "tutorials", nerr.Op)
			assert.Equal(t, http.MethodGet, nerr.Method)
			assert.Equal(t, tt.wantStatus, nerr.StatusCode)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}

	t.Run("connection refused", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		base := srv.URL
		srv.Close()

		c, err := New(Config{BaseURL: base, Timeout: time.Second})
		require.NoError(t, err)

		_, err = c.Categories(context.Background())
		var nerr *NetworkError
		require.True(t, errors.As(err, &nerr))
		assert.Zero(t, nerr.StatusCode)
	})

	t.Run("cancelled context", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, []models.Project{})
		})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := c.Projects(ctx)
		var nerr *NetworkError
		require.True(t, errors.As(err, &nerr))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCreateProject(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/projects", r.URL.Path)
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Portfolio", r.FormValue("title"))
		assert.Equal(t, "My site", r.FormValue("description"))
		assert.Equal(t, "https://vicheka.dev", r.FormValue("link"))
		assert.Equal(t, "2", r.FormValue("category_id"))

		f, hdr, err := r.FormFile("image")
		require.NoError(t, err)
		defer f.Close()
		data, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, "cover.png", hdr.Filename)
		assert.Equal(t, "PNGDATA", string(data))

		w.WriteHeader(http.StatusCreated)
		writeJSON(t, w, models.Project{ID: 10, Title: "Portfolio", Image: "projects/cover.png"})
	})

	cat := 2
	got, err := c.CreateProject(context.Background(), ProjectInput{
		Title:       "Portfolio",
		Description: "My site",
		Link:        "https://vicheka.dev",
		CategoryID:  &cat,
		Image:       &Attachment{Filename: "cover.png", Content: strings.NewReader("PNGDATA")},
	})
	require.NoError(t, err)
	assert.Equal(t, 10, got.ID)
	assert.Equal(t, "projects/cover.png", got.Image)
}

func TestUpdateProjectWithoutImage(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/projects/7", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Renamed", r.FormValue("title"))
		_, _, err := r.FormFile("image")
		assert.ErrorIs(t, err, http.ErrMissingFile)
		_, hasLink := r.MultipartForm.Value["link"]
		assert.False(t, hasLink)

		writeJSON(t, w, models.Project{ID: 7, Title: "Renamed"})
	})

	got, err := c.UpdateProject(context.Background(), 7, ProjectInput{Title: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
}

func TestDeleteProject(t *testing.T) {
	var calls int
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/projects/3", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.DeleteProject(context.Background(), 3))
	assert.Equal(t, 1, calls)

	t.Run("failure is a network error", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})
		err := c.DeleteProject(context.Background(), 3)
		var nerr *NetworkError
		require.True(t, errors.As(err, &nerr))
		assert.Equal(t, http.StatusForbidden, nerr.StatusCode)
		assert.Equal(t, "delete project", nerr.Op)
	})
}
