package service

import (
	"errors"
	"strings"

	"github.com/portfolio/internal/db"
	"gorm.io/gorm"
)

// ErrSectionNotFound is returned when the section row does not exist.
var ErrSectionNotFound = errors.New("section not found")

// SectionService governs the order and visibility of the home page blocks.
// Sections are seeded at startup and never created or deleted here.
type SectionService struct {
	*Collection[db.SectionVisibility, *db.SectionVisibility]
}

func NewSectionService(gdb *gorm.DB) *SectionService {
	return &SectionService{Collection: newCollection[db.SectionVisibility, *db.SectionVisibility](gdb, "sections", ErrSectionNotFound)}
}

// Rename changes the display title of a section.
func (s *SectionService) Rename(id, title string) (*db.SectionVisibility, error) {
	return s.Collection.Update(id, func(item *db.SectionVisibility) error {
		item.SectionTitle = strings.TrimSpace(title)
		return nil
	})
}

// VisibleNames returns the names of visible sections in display order.
func (s *SectionService) VisibleNames() ([]string, error) {
	items, err := s.List(ListOptions{})
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.SectionName)
	}
	return names, nil
}
