// Package export renders the site's pages to static HTML files.
package export

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

// Page is the outcome of exporting one path
type Page struct {
	Path   string
	File   string
	Status int
	Err    error
}

// Exporter writes pages served by a handler into a directory tree
type Exporter struct {
	handler  http.Handler
	outDir   string
	logger   *zap.Logger
	progress io.Writer
}

// Option configures an Exporter
type Option func(*Exporter)

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(e *Exporter) { e.logger = l }
}

// WithProgress sets where the progress bar is drawn. Defaults to stderr.
func WithProgress(w io.Writer) Option {
	return func(e *Exporter) { e.progress = w }
}

// New creates an Exporter writing below outDir
func New(handler http.Handler, outDir string, opts ...Option) *Exporter {
	e := &Exporter{
		handler:  handler,
		outDir:   outDir,
		logger:   zap.NewNop(),
		progress: os.Stderr,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// FileFor maps a URL path to its index.html below outDir
func (e *Exporter) FileFor(path string) string {
	rel := strings.Trim(path, "/")
	return filepath.Join(e.outDir, filepath.FromSlash(rel), "index.html")
}

// Run renders every path in turn. A page that fails is reported in its
// Page and the rest still run; the error is non-nil if any page failed or
// ctx was cancelled.
func (e *Exporter) Run(ctx context.Context, paths []string) ([]Page, error) {
	if err := os.MkdirAll(e.outDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	bar := progressbar.NewOptions(len(paths),
		progressbar.OptionSetWriter(e.progress),
		progressbar.OptionSetDescription("Exporting pages"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	pages := make([]Page, 0, len(paths))
	failed := 0
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return pages, err
		}

		bar.Describe(path)
		page := e.export(ctx, path)
		if page.Err != nil {
			failed++
			e.logger.Warn("export failed", zap.String("path", path), zap.Error(page.Err))
		} else {
			e.logger.Debug("exported", zap.String("path", path), zap.String("file", page.File))
		}
		pages = append(pages, page)
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	if failed > 0 {
		return pages, fmt.Errorf("%d of %d pages failed", failed, len(paths))
	}
	return pages, nil
}

func (e *Exporter) export(ctx context.Context, path string) Page {
	page := Page{Path: path, File: e.FileFor(path)}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, path, nil)
	if err != nil {
		page.Err = fmt.Errorf("building request: %w", err)
		return page
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)

	page.Status = rec.Code
	if rec.Code != http.StatusOK {
		page.Err = fmt.Errorf("GET %s: status %d", path, rec.Code)
		return page
	}

	if err := os.MkdirAll(filepath.Dir(page.File), 0755); err != nil {
		page.Err = fmt.Errorf("creating directory: %w", err)
		return page
	}
	if err := os.WriteFile(page.File, rec.Body.Bytes(), 0644); err != nil {
		page.Err = fmt.Errorf("writing %s: %w", page.File, err)
	}
	return page
}
