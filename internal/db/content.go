package db

import "gorm.io/datatypes"

// Service is an offering shown in the services section.
// Icon must be one of the keys exposed by view.ServiceIconOptions.
type Service struct {
	Model
	Listed
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text"`
	Icon        string `gorm:"size:50"`
}

// TableName keeps the table name aligned with the public schema.
func (Service) TableName() string { return "services" }

// Key returns the row identifier.
func (s *Service) Key() string { return s.ID }

// Project is a portfolio entry. Technologies keeps the order the admin typed.
type Project struct {
	Model
	Listed
	Title        string                      `gorm:"size:200;not null"`
	Description  string                      `gorm:"type:text"`
	Technologies datatypes.JSONSlice[string] `gorm:"type:json"`
	ProjectURL   string                      `gorm:"size:500"`
	GithubURL    string                      `gorm:"size:500"`
	ImageURL     string                      `gorm:"size:500"`
}

func (Project) TableName() string { return "projects" }

func (p *Project) Key() string { return p.ID }

// SocialLink points at an external profile. Platform selects label and brand color;
// unknown platforms fall back to a generic style when rendered.
type SocialLink struct {
	Model
	Listed
	Platform string `gorm:"size:50;not null"`
	URL      string `gorm:"size:500;not null"`
	Icon     string `gorm:"size:50"`
}

func (SocialLink) TableName() string { return "social_links" }

func (l *SocialLink) Key() string { return l.ID }

// SectionVisibility governs whether a named home page block is shown and where.
type SectionVisibility struct {
	Model
	Listed
	SectionName  string `gorm:"size:50;uniqueIndex;not null"`
	SectionTitle string `gorm:"size:200"`
}

func (SectionVisibility) TableName() string { return "sections_visibility" }

func (s *SectionVisibility) Key() string { return s.ID }
