package service

import (
	"errors"
	"fmt"

	"github.com/portfolio/internal/db"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	// ErrProjectNotFound is returned when the project does not exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrProjectInvalidInput is returned when the title is missing.
	ErrProjectInvalidInput = errors.New("invalid project input")
)

// ProjectInput carries project fields. Technologies is the raw comma
// separated text typed by the admin.
type ProjectInput struct {
	Title        *string
	Description  *string
	Technologies *string
	ProjectURL   *string
	GithubURL    *string
	ImageURL     *string
	Visible      *bool
}

// ProjectService manages the portfolio projects.
type ProjectService struct {
	*Collection[db.Project, *db.Project]
}

func NewProjectService(gdb *gorm.DB) *ProjectService {
	return &ProjectService{Collection: newCollection[db.Project, *db.Project](gdb, "projects", ErrProjectNotFound)}
}

// Create appends a visible project unless input says otherwise.
func (s *ProjectService) Create(input ProjectInput) (*db.Project, error) {
	title, _ := trimmedPtr(input.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrProjectInvalidInput)
	}

	item := db.Project{Title: title, Technologies: datatypes.JSONSlice[string]{}}
	item.IsVisible = true
	if err := applyProjectInput(&item, input); err != nil {
		return nil, err
	}

	if err := s.Collection.Create(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *ProjectService) Update(id string, input ProjectInput) (*db.Project, error) {
	return s.Collection.Update(id, func(item *db.Project) error {
		return applyProjectInput(item, input)
	})
}

// SetImage stores the URL of an uploaded cover image.
func (s *ProjectService) SetImage(id, url string) (*db.Project, error) {
	return s.Update(id, ProjectInput{ImageURL: &url})
}

func applyProjectInput(item *db.Project, input ProjectInput) error {
	if title, ok := trimmedPtr(input.Title); ok {
		if title == "" {
			return fmt.Errorf("%w: title is required", ErrProjectInvalidInput)
		}
		item.Title = title
	}
	if description, ok := trimmedPtr(input.Description); ok {
		item.Description = description
	}
	if input.Technologies != nil {
		item.Technologies = datatypes.JSONSlice[string](SplitList(*input.Technologies))
	}
	if projectURL, ok := trimmedPtr(input.ProjectURL); ok {
		item.ProjectURL = projectURL
	}
	if githubURL, ok := trimmedPtr(input.GithubURL); ok {
		item.GithubURL = githubURL
	}
	if imageURL, ok := trimmedPtr(input.ImageURL); ok {
		item.ImageURL = imageURL
	}
	if input.Visible != nil {
		item.IsVisible = *input.Visible
	}
	return nil
}
