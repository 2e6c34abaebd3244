package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"vicheka.dev/internal/listview"
	"vicheka.dev/internal/models"
)

type fakeBackend struct {
	projects    []models.Project
	tutorials   []models.Tutorial
	categories  []models.Category
	contacts    []models.ContactMethod
	categoryErr error
}

func (f *fakeBackend) Projects(context.Context) ([]models.Project, error) { return f.projects, nil }
func (f *fakeBackend) Tutorials(context.Context) ([]models.Tutorial, error) {
	return f.tutorials, nil
}
func (f *fakeBackend) Categories(context.Context) ([]models.Category, error) {
	return f.categories, f.categoryErr
}
func (f *fakeBackend) ContactMethods(context.Context) ([]models.ContactMethod, error) {
	return f.contacts, nil
}

func intp(n int) *int { return &n }

func newBackend() *fakeBackend {
	return &fakeBackend{
		projects: []models.Project{{ID: 1, Title: "Portfolio"}},
		tutorials: []models.Tutorial{
			{ID: 1, Title: "Tags", Category: intp(1), Slug: "html"},
			{ID: 2, Title: "Selectors", Category: intp(2), Slug: "css"},
			{ID: 3, Title: "Forms", Category: intp(1), Slug: "HTML"},
		},
		categories: []models.Category{{ID: 1, Name: "HTML"}, {ID: 2, Name: "CSS"}},
		contacts:   []models.ContactMethod{{ID: 1, Title: "Call", Type: "other", IconName: "fa-phone", URL: "tel:123"}},
	}
}

func TestProjectService(t *testing.T) {
	svc := NewProjectService(newBackend(), zap.NewNop())

	s := svc.Load(context.Background(), listview.Params{})
	require.True(t, s.IsReady())
	assert.Len(t, s.Visible(), 1)

	s = svc.Load(context.Background(), listview.Params{Expanded: intp(1)})
	require.NotNil(t, s.Expanded())
	assert.Equal(t, "Portfolio", s.Expanded().Title)
}

func TestTutorialService(t *testing.T) {
	backend := newBackend()
	svc := NewTutorialService(backend, zap.NewNop())

	t.Run("category and expansion from params", func(t *testing.T) {
		s := svc.Load(context.Background(), listview.Params{Category: intp(1), Expanded: intp(3)})
		require.True(t, s.IsReady())
		assert.Len(t, s.Categories(), 2)

		var titles []string
		for _, tt := range s.Visible() {
			titles = append(titles, tt.Title)
		}
		assert.Equal(t, []string{"Tags", "Forms"}, titles)
		require.NotNil(t, s.Expanded())
		assert.Equal(t, "Forms", s.Expanded().Title)

		hidden := svc.Load(context.Background(), listview.Params{Category: intp(1), Expanded: intp(2)})
		assert.Nil(t, hidden.Expanded())
	})

	t.Run("html page filters by slug", func(t *testing.T) {
		s := svc.LoadHTML(context.Background())
		require.True(t, s.IsReady())
		assert.Len(t, s.Items(), 2)
	})

	t.Run("category failure fails the browser", func(t *testing.T) {
		backend.categoryErr = errors.New("down")
		defer func() { backend.categoryErr = nil }()

		s := svc.Load(context.Background(), listview.Params{})
		assert.True(t, s.IsFailed())

		// the html page does not need categories
		assert.True(t, svc.LoadHTML(context.Background()).IsReady())
	})
}

func TestContactService(t *testing.T) {
	svc := NewContactService(newBackend(), zap.NewNop())

	s := svc.Load(context.Background())
	require.True(t, s.IsReady())
	require.Len(t, s.Items(), 1)
	assert.Equal(t, "Other", s.Items()[0].TypeLabel())
}
