package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/portfolio/internal/db"
	"github.com/portfolio/internal/view"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	defaultSiteName   = "Portfolio"
	defaultLogoLetter = "P"
	maxLogoLetters    = 2
)

var siteSettingKeys = []string{
	db.SettingKeySiteName,
	db.SettingKeyLogoLetter,
	db.SettingKeyLogoFont,
}

// SiteSettings is the resolved branding shown in the public chrome.
type SiteSettings struct {
	SiteName   string
	LogoLetter string
	LogoFont   string
}

// SiteSettingsInput is the branding form. Blank values fall back to defaults.
type SiteSettingsInput struct {
	SiteName   string
	LogoLetter string
	LogoFont   string
}

// SiteSettingService reads and writes the branding key/value rows.
type SiteSettingService struct {
	db *gorm.DB
}

func NewSiteSettingService(gdb *gorm.DB) *SiteSettingService {
	return &SiteSettingService{db: gdb}
}

// DefaultSiteSettings is the branding used before anything is stored.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{SiteName: defaultSiteName, LogoLetter: defaultLogoLetter, LogoFont: view.DefaultLogoFont}
}

// GetSettings overlays stored values on the defaults.
func (s *SiteSettingService) GetSettings() (SiteSettings, error) {
	result := DefaultSiteSettings()

	var records []db.SiteSetting
	if err := s.db.Where("setting_key IN ?", siteSettingKeys).Find(&records).Error; err != nil {
		return result, storeError("load site settings", err)
	}

	for _, record := range records {
		value := strings.TrimSpace(record.SettingValue)
		if value == "" {
			continue
		}
		switch record.SettingKey {
		case db.SettingKeySiteName:
			result.SiteName = value
		case db.SettingKeyLogoLetter:
			result.LogoLetter = normalizeLogoLetter(value)
		case db.SettingKeyLogoFont:
			result.LogoFont = normalizeLogoFont(value)
		}
	}

	return result, nil
}

// UpdateSettings stores every key in one transaction and returns the resolved branding.
func (s *SiteSettingService) UpdateSettings(input SiteSettingsInput) (SiteSettings, error) {
	sanitized := SiteSettings{
		SiteName:   strings.TrimSpace(input.SiteName),
		LogoLetter: normalizeLogoLetter(input.LogoLetter),
		LogoFont:   normalizeLogoFont(input.LogoFont),
	}
	if sanitized.SiteName == "" {
		sanitized.SiteName = defaultSiteName
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := upsertSetting(tx, db.SettingKeySiteName, sanitized.SiteName); err != nil {
			return err
		}
		if err := upsertSetting(tx, db.SettingKeyLogoLetter, sanitized.LogoLetter); err != nil {
			return err
		}
		return upsertSetting(tx, db.SettingKeyLogoFont, sanitized.LogoFont)
	})
	if err != nil {
		return SiteSettings{}, storeError("update site settings", err)
	}

	return sanitized, nil
}

func upsertSetting(tx *gorm.DB, key, value string) error {
	setting := db.SiteSetting{SettingKey: key, SettingValue: value}
	if err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"setting_value": value,
			"updated_at":    gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&setting).Error; err != nil {
		return fmt.Errorf("upsert setting %s: %w", key, err)
	}
	return nil
}

func normalizeLogoLetter(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return defaultLogoLetter
	}
	if utf8.RuneCountInString(trimmed) > maxLogoLetters {
		runes := []rune(trimmed)
		trimmed = string(runes[:maxLogoLetters])
	}
	return trimmed
}

func normalizeLogoFont(value string) string {
	trimmed := strings.TrimSpace(value)
	if !view.IsFont(trimmed) {
		return view.DefaultLogoFont
	}
	return trimmed
}
