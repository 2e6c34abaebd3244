package listview

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"vicheka.dev/internal/models"
)

// Fetch retrieves one resource collection
type Fetch[T any] func(ctx context.Context) ([]T, error)

// Controller loads the data behind one list page
type Controller[T models.ListItem] struct {
	name       string
	items      Fetch[T]
	categories Fetch[models.Category]
	logger     *zap.Logger
}

// NewController creates a Controller that fetches items with items
func NewController[T models.ListItem](name string, items Fetch[T], logger *zap.Logger) *Controller[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller[T]{name: name, items: items, logger: logger}
}

// WithCategories makes categories a second required fetch
func (c *Controller[T]) WithCategories(categories Fetch[models.Category]) *Controller[T] {
	c.categories = categories
	return c
}

// Load runs every required fetch concurrently and returns Ready only if all
// of them succeed. The first failure cancels the others and yields Failed.
// Retrying is calling Load again.
func (c *Controller[T]) Load(ctx context.Context) State[T] {
	start := time.Now()
	state := NewState[T]()

	var (
		items      []T
		categories []models.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = c.items(gctx)
		return err
	})
	if c.categories != nil {
		g.Go(func() error {
			var err error
			categories, err = c.categories(gctx)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		c.logger.Warn("Page data failed to load",
			zap.String("page", c.name),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err))
		return state.Fail(ErrorMessage)
	}

	c.logger.Debug("Page data loaded",
		zap.String("page", c.name),
		zap.Int("items", len(items)),
		zap.Int("categories", len(categories)),
		zap.Duration("duration", time.Since(start)))
	return state.Resolve(items, categories)
}
