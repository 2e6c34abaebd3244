package services

import (
	"context"

	"go.uber.org/zap"

	"vicheka.dev/internal/listview"
	"vicheka.dev/internal/models"
)

// ContactSource fetches contact methods from the backend
type ContactSource interface {
	ContactMethods(ctx context.Context) ([]models.ContactMethod, error)
}

// ContactService loads the contact page
type ContactService struct {
	controller *listview.Controller[models.ContactMethod]
}

// NewContactService creates a new ContactService
func NewContactService(src ContactSource, logger *zap.Logger) *ContactService {
	return &ContactService{
		controller: listview.NewController("contact", src.ContactMethods, logger),
	}
}

// Load fetches all contact methods
func (s *ContactService) Load(ctx context.Context) listview.State[models.ContactMethod] {
	return s.controller.Load(ctx)
}
