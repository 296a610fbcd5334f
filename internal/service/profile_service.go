package service

import (
	"errors"
	"fmt"

	"github.com/portfolio/internal/db"
	"gorm.io/gorm"
)

// ErrProfileNotFound is returned when the singleton profile row is missing.
var ErrProfileNotFound = errors.New("profile not found")

// ErrProfileInvalidInput is returned when the owner name would become empty.
var ErrProfileInvalidInput = errors.New("invalid profile input")

// ProfileInput lists the editable profile fields. Nil fields are kept.
type ProfileInput struct {
	Name                *string
	Title               *string
	Bio                 *string
	Email               *string
	Phone               *string
	Location            *string
	ResumeText          *string
	ProfileImageVisible *bool
}

// ProfileService reads and edits the singleton owner profile.
type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(gdb *gorm.DB) *ProfileService {
	return &ProfileService{db: gdb}
}

// Get returns the profile. The oldest row wins if more than one exists.
func (s *ProfileService) Get() (*db.Profile, error) {
	var profile db.Profile
	if err := s.db.Order("created_at ASC").First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, storeError("get profile", err)
	}
	return &profile, nil
}

// Update applies the given fields and saves the profile.
func (s *ProfileService) Update(input ProfileInput) (*db.Profile, error) {
	return s.mutate("update profile", func(profile *db.Profile) error {
		if name, ok := trimmedPtr(input.Name); ok {
			if name == "" {
				return fmt.Errorf("%w: name is required", ErrProfileInvalidInput)
			}
			profile.Name = name
		}
		assignTrimmed(&profile.Title, input.Title)
		assignTrimmed(&profile.Bio, input.Bio)
		assignTrimmed(&profile.Email, input.Email)
		assignTrimmed(&profile.Phone, input.Phone)
		assignTrimmed(&profile.Location, input.Location)
		if input.ResumeText != nil {
			profile.ResumeText = *input.ResumeText
		}
		if input.ProfileImageVisible != nil {
			profile.ProfileImageVisible = *input.ProfileImageVisible
		}
		return nil
	})
}

// SetImage stores the URL of the uploaded profile picture.
func (s *ProfileService) SetImage(url string) (*db.Profile, error) {
	return s.mutate("set profile image", func(profile *db.Profile) error {
		profile.ProfileImageURL = url
		return nil
	})
}

// SetResumeFile stores the URL of the uploaded resume document.
func (s *ProfileService) SetResumeFile(url string) (*db.Profile, error) {
	return s.mutate("set resume file", func(profile *db.Profile) error {
		profile.ResumePDFURL = url
		return nil
	})
}

// ToggleImageVisibility flips whether the profile picture is shown publicly.
func (s *ProfileService) ToggleImageVisibility() (*db.Profile, error) {
	return s.mutate("toggle profile image", func(profile *db.Profile) error {
		profile.ProfileImageVisible = !profile.ProfileImageVisible
		return nil
	})
}

func (s *ProfileService) mutate(op string, apply func(*db.Profile) error) (*db.Profile, error) {
	profile, err := s.Get()
	if err != nil {
		return nil, err
	}
	if err := apply(profile); err != nil {
		return nil, err
	}
	if err := s.db.Save(profile).Error; err != nil {
		return nil, storeError(op, err)
	}
	return profile, nil
}

func assignTrimmed(target *string, value *string) {
	if trimmed, ok := trimmedPtr(value); ok {
		*target = trimmed
	}
}
