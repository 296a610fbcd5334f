package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/portfolio/internal/db"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ErrSeoNotFound is returned when a persisted record points at a row that no longer exists.
var ErrSeoNotFound = errors.New("seo setting not found")

// SeoService merges stored page metadata with the defaults table.
type SeoService struct {
	db       *gorm.DB
	defaults SeoDefaults
}

// NewSeoService uses the built-in defaults when defaults is nil.
func NewSeoService(gdb *gorm.DB, defaults SeoDefaults) *SeoService {
	if defaults == nil {
		defaults = DefaultSeoTable()
	}
	return &SeoService{db: gdb, defaults: defaults}
}

// Defaults returns the built-in metadata of page.
func (s *SeoService) Defaults(page string) (SeoFields, error) {
	return s.defaults.For(normalizePage(page))
}

// Effective returns the metadata the public page renders with.
func (s *SeoService) Effective(page string) (SeoFields, error) {
	page = normalizePage(page)
	defaults, err := s.defaults.For(page)
	if err != nil {
		return SeoFields{}, err
	}

	row, err := s.find(page)
	if err != nil {
		return SeoFields{}, err
	}
	if row == nil {
		return MergeSeo(nil, defaults), nil
	}

	stored := fieldsFromRow(*row)
	return MergeSeo(&stored, defaults), nil
}

// Record returns the editing state of one page. Pages without a row are
// returned as UnsavedSeo prefilled with defaults.
func (s *SeoService) Record(page string) (SeoRecord, error) {
	page = normalizePage(page)
	defaults, err := s.defaults.For(page)
	if err != nil {
		return nil, err
	}

	row, err := s.find(page)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return UnsavedSeo{PageName: page, Values: defaults}, nil
	}
	return PersistedSeo{ID: row.ID, PageName: page, Values: fieldsFromRow(*row)}, nil
}

// Records returns one record per page in SeoPages order.
func (s *SeoService) Records() ([]SeoRecord, error) {
	var rows []db.SeoSetting
	if err := s.db.Where("page_name IN ?", SeoPages).Find(&rows).Error; err != nil {
		return nil, storeError("list seo settings", err)
	}

	byPage := make(map[string]db.SeoSetting, len(rows))
	for _, row := range rows {
		byPage[row.PageName] = row
	}

	records := make([]SeoRecord, 0, len(SeoPages))
	for _, page := range SeoPages {
		if row, ok := byPage[page]; ok {
			records = append(records, PersistedSeo{ID: row.ID, PageName: page, Values: fieldsFromRow(row)})
			continue
		}
		defaults, _ := s.defaults.For(page)
		records = append(records, UnsavedSeo{PageName: page, Values: defaults})
	}
	return records, nil
}

// ResetToDefaults replaces the editable values with the page defaults. Nothing is written.
func (s *SeoService) ResetToDefaults(record SeoRecord) (SeoRecord, error) {
	defaults, err := s.defaults.For(record.Page())
	if err != nil {
		return nil, err
	}
	return record.WithFields(defaults), nil
}

// Save inserts an UnsavedSeo and updates a PersistedSeo. An UnsavedSeo for a
// page that already has a row updates that row.
func (s *SeoService) Save(record SeoRecord) (PersistedSeo, error) {
	page := normalizePage(record.Page())
	if !IsSeoPage(page) {
		return PersistedSeo{}, fmt.Errorf("%w: %s", ErrSeoPageUnknown, record.Page())
	}
	fields := cleanSeoFields(record.Fields())

	var row db.SeoSetting
	switch rec := record.(type) {
	case PersistedSeo:
		if err := s.db.Where("id = ?", rec.ID).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return PersistedSeo{}, ErrSeoNotFound
			}
			return PersistedSeo{}, storeError("find seo setting", err)
		}
	case UnsavedSeo:
		existing, err := s.find(page)
		if err != nil {
			return PersistedSeo{}, err
		}
		if existing == nil {
			row = db.SeoSetting{PageName: page}
			applySeoFields(&row, fields)
			if err := s.db.Create(&row).Error; err != nil {
				return PersistedSeo{}, storeError("create seo setting", err)
			}
			return PersistedSeo{ID: row.ID, PageName: page, Values: fieldsFromRow(row)}, nil
		}
		row = *existing
	default:
		return PersistedSeo{}, fmt.Errorf("save seo: unsupported record %T", record)
	}

	applySeoFields(&row, fields)
	if err := s.db.Save(&row).Error; err != nil {
		return PersistedSeo{}, storeError("update seo setting", err)
	}
	return PersistedSeo{ID: row.ID, PageName: row.PageName, Values: fieldsFromRow(row)}, nil
}

func (s *SeoService) find(page string) (*db.SeoSetting, error) {
	var row db.SeoSetting
	if err := s.db.Where("page_name = ?", page).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storeError("find seo setting", err)
	}
	return &row, nil
}

func normalizePage(page string) string {
	return strings.ToLower(strings.TrimSpace(page))
}

func cleanSeoFields(fields SeoFields) SeoFields {
	return SeoFields{
		Title:       strings.TrimSpace(fields.Title),
		Description: strings.TrimSpace(fields.Description),
		Keywords:    cleanList(fields.Keywords),
		OGImageURL:  strings.TrimSpace(fields.OGImageURL),
	}
}

func applySeoFields(row *db.SeoSetting, fields SeoFields) {
	row.Title = fields.Title
	row.Description = fields.Description
	row.Keywords = datatypes.JSONSlice[string](fields.Keywords)
	row.OGImageURL = fields.OGImageURL
}

func fieldsFromRow(row db.SeoSetting) SeoFields {
	keywords := []string(row.Keywords)
	if keywords == nil {
		keywords = []string{}
	}
	return SeoFields{
		Title:       row.Title,
		Description: row.Description,
		Keywords:    keywords,
		OGImageURL:  row.OGImageURL,
	}
}
