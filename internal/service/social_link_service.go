package service

import (
	"errors"
	"fmt"

	"github.com/portfolio/internal/db"
	"github.com/portfolio/internal/view"
	"gorm.io/gorm"
)

var (
	// ErrSocialLinkNotFound is returned when the link does not exist.
	ErrSocialLinkNotFound = errors.New("social link not found")
	// ErrSocialLinkInvalidInput is returned when platform or url is missing.
	ErrSocialLinkInvalidInput = errors.New("invalid social link input")
)

// SocialLinkInput carries link fields. Unknown platforms are stored as typed
// and rendered with the generic style.
type SocialLinkInput struct {
	Platform *string
	URL      *string
	Visible  *bool
}

// SocialLinkService manages the external profile links.
type SocialLinkService struct {
	*Collection[db.SocialLink, *db.SocialLink]
}

func NewSocialLinkService(gdb *gorm.DB) *SocialLinkService {
	return &SocialLinkService{Collection: newCollection[db.SocialLink, *db.SocialLink](gdb, "social links", ErrSocialLinkNotFound)}
}

func (s *SocialLinkService) Create(input SocialLinkInput) (*db.SocialLink, error) {
	platform, _ := trimmedPtr(input.Platform)
	url, _ := trimmedPtr(input.URL)
	if platform == "" {
		return nil, fmt.Errorf("%w: platform is required", ErrSocialLinkInvalidInput)
	}
	if url == "" {
		return nil, fmt.Errorf("%w: url is required", ErrSocialLinkInvalidInput)
	}

	item := db.SocialLink{}
	item.IsVisible = true
	if err := applySocialLinkInput(&item, input); err != nil {
		return nil, err
	}

	if err := s.Collection.Create(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *SocialLinkService) Update(id string, input SocialLinkInput) (*db.SocialLink, error) {
	return s.Collection.Update(id, func(item *db.SocialLink) error {
		return applySocialLinkInput(item, input)
	})
}

func applySocialLinkInput(item *db.SocialLink, input SocialLinkInput) error {
	if platform, ok := trimmedPtr(input.Platform); ok {
		platform = view.NormalizeKey(platform)
		if platform == "" {
			return fmt.Errorf("%w: platform is required", ErrSocialLinkInvalidInput)
		}
		item.Platform = platform
		item.Icon = platform
	}
	if url, ok := trimmedPtr(input.URL); ok {
		if url == "" {
			return fmt.Errorf("%w: url is required", ErrSocialLinkInvalidInput)
		}
		item.URL = url
	}
	if input.Visible != nil {
		item.IsVisible = *input.Visible
	}
	return nil
}
