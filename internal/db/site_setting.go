package db

// SiteSetting stores one branding key/value pair.
type SiteSetting struct {
	Model
	SettingKey   string `gorm:"size:100;uniqueIndex;not null"`
	SettingValue string `gorm:"type:text"`
}

func (SiteSetting) TableName() string { return "site_settings" }

const (
	// SettingKeySiteName is the display name shown in the public chrome.
	SettingKeySiteName = "site_name"
	// SettingKeyLogoLetter holds the one or two letters of the logo mark.
	SettingKeyLogoLetter = "logo_letter"
	// SettingKeyLogoFont is the font family used for the logo mark.
	SettingKeyLogoFont = "logo_font"
)
