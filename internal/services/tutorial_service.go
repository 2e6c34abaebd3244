package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"vicheka.dev/internal/listview"
	"vicheka.dev/internal/models"
)

// HTMLSlug is the free-text category of the HTML tutorials page
const HTMLSlug = "html"

// TutorialSource fetches tutorials and their categories from the backend
type TutorialSource interface {
	Tutorials(ctx context.Context) ([]models.Tutorial, error)
	Categories(ctx context.Context) ([]models.Category, error)
}

// TutorialService loads the tutorials browser and the HTML tutorials page
type TutorialService struct {
	browser *listview.Controller[models.Tutorial]
	html    *listview.Controller[models.Tutorial]
}

// NewTutorialService creates a new TutorialService
func NewTutorialService(src TutorialSource, logger *zap.Logger) *TutorialService {
	return &TutorialService{
		browser: listview.NewController("tutorials", src.Tutorials, logger).
			WithCategories(src.Categories),
		html: listview.NewController("html tutorials", bySlug(src.Tutorials, HTMLSlug), logger),
	}
}

// Load fetches tutorials and categories together and applies p
func (s *TutorialService) Load(ctx context.Context, p listview.Params) listview.State[models.Tutorial] {
	return s.browser.Load(ctx).Apply(p)
}

// LoadHTML fetches the tutorials tagged with the "html" slug
func (s *TutorialService) LoadHTML(ctx context.Context) listview.State[models.Tutorial] {
	return s.html.Load(ctx)
}

// bySlug narrows fetch to tutorials whose free-text category equals slug
func bySlug(fetch listview.Fetch[models.Tutorial], slug string) listview.Fetch[models.Tutorial] {
	return func(ctx context.Context) ([]models.Tutorial, error) {
		all, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]models.Tutorial, 0, len(all))
		for _, t := range all {
			if strings.EqualFold(t.Slug, slug) {
				out = append(out, t)
			}
		}
		return out, nil
	}
}
