package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"vicheka.dev/internal/models"
)

// Attachment is a binary file uploaded alongside a resource
type Attachment struct {
	Filename string
	Content  io.Reader
}

// ProjectInput is the payload for creating or updating a project
type ProjectInput struct {
	Title       string
	Description string
	Link        string
	CategoryID  *int
	Image       *Attachment
}

// CreateProject posts a new project and returns the stored representation
func (c *Client) CreateProject(ctx context.Context, in ProjectInput) (*models.Project, error) {
	return c.sendProject(ctx, "create project", c.endpoint("api/projects", nil), in)
}

// UpdateProject replaces project id. The backend takes updates as a
// multipart POST to the item URL, not a PUT.
func (c *Client) UpdateProject(ctx context.Context, id int, in ProjectInput) (*models.Project, error) {
	return c.sendProject(ctx, "update project", c.endpoint("api/projects/"+strconv.Itoa(id), nil), in)
}

// DeleteProject removes project id
func (c *Client) DeleteProject(ctx context.Context, id int) error {
	endpoint := c.endpoint("api/projects/"+strconv.Itoa(id), nil)
	req, err := c.newRequest(ctx, http.MethodDelete, endpoint, http.NoBody)
	if err != nil {
		return &NetworkError{Op: "delete project", Method: http.MethodDelete, URL: endpoint, Err: err}
	}
	return c.do("delete project", req, nil)
}

func (c *Client) sendProject(ctx context.Context, op, endpoint string, in ProjectInput) (*models.Project, error) {
	body, contentType, err := encodeProject(in)
	if err != nil {
		return nil, &NetworkError{Op: op, Method: http.MethodPost, URL: endpoint, Err: err}
	}

	req, err := c.newRequest(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, &NetworkError{Op: op, Method: http.MethodPost, URL: endpoint, Err: err}
	}
	req.Header.Set("Content-Type", contentType)

	var out models.Project
	if err := c.do(op, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// encodeProject builds the multipart form the backend expects
func encodeProject(in ProjectInput) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fields := [][2]string{
		{"title", in.Title},
		{"description", in.Description},
	}
	if in.Link != "" {
		fields = append(fields, [2]string{"link", in.Link})
	}
	if in.CategoryID != nil {
		fields = append(fields, [2]string{"category_id", strconv.Itoa(*in.CategoryID)})
	}
	for _, f := range fields {
		if err := mw.WriteField(f[0], f[1]); err != nil {
			return nil, "", fmt.Errorf("writing field %s: %w", f[0], err)
		}
	}

	if in.Image != nil {
		part, err := mw.CreateFormFile("image", in.Image.Filename)
		if err != nil {
			return nil, "", fmt.Errorf("creating image part: %w", err)
		}
		if _, err := io.Copy(part, in.Image.Content); err != nil {
			return nil, "", fmt.Errorf("copying image: %w", err)
		}
	}

	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("closing multipart body: %w", err)
	}
	return &buf, mw.FormDataContentType(), nil
}
