package service

import (
	"errors"
	"fmt"

	"github.com/portfolio/internal/db"
	"github.com/portfolio/internal/view"
	"gorm.io/gorm"
)

var (
	// ErrServiceNotFound is returned when the offering does not exist.
	ErrServiceNotFound = errors.New("service not found")
	// ErrServiceInvalidInput is returned when a required field is missing or the icon is unknown.
	ErrServiceInvalidInput = errors.New("invalid service input")
)

// ServiceInput carries the fields of an offering. Nil fields are left untouched on update.
type ServiceInput struct {
	Title       *string
	Description *string
	Icon        *string
	Visible     *bool
}

// CatalogService manages the offerings listed in the services section.
type CatalogService struct {
	*Collection[db.Service, *db.Service]
}

func NewCatalogService(gdb *gorm.DB) *CatalogService {
	return &CatalogService{Collection: newCollection[db.Service, *db.Service](gdb, "services", ErrServiceNotFound)}
}

// Create appends a new offering. Icon defaults to view.DefaultServiceIcon.
func (s *CatalogService) Create(input ServiceInput) (*db.Service, error) {
	title, _ := trimmedPtr(input.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrServiceInvalidInput)
	}

	item := db.Service{Title: title, Icon: view.DefaultServiceIcon}
	item.IsVisible = true
	if err := applyServiceInput(&item, input); err != nil {
		return nil, err
	}

	if err := s.Collection.Create(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Update changes the given fields of an offering.
func (s *CatalogService) Update(id string, input ServiceInput) (*db.Service, error) {
	return s.Collection.Update(id, func(item *db.Service) error {
		return applyServiceInput(item, input)
	})
}

func applyServiceInput(item *db.Service, input ServiceInput) error {
	if title, ok := trimmedPtr(input.Title); ok {
		if title == "" {
			return fmt.Errorf("%w: title is required", ErrServiceInvalidInput)
		}
		item.Title = title
	}
	if description, ok := trimmedPtr(input.Description); ok {
		item.Description = description
	}
	if icon, ok := trimmedPtr(input.Icon); ok {
		icon = view.NormalizeKey(icon)
		if icon == "" {
			icon = view.DefaultServiceIcon
		}
		if !view.IsServiceIcon(icon) {
			return fmt.Errorf("%w: unknown icon %q", ErrServiceInvalidInput, icon)
		}
		item.Icon = icon
	}
	if input.Visible != nil {
		item.IsVisible = *input.Visible
	}
	return nil
}
