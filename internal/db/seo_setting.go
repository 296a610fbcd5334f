package db

import "gorm.io/datatypes"

// SeoSetting overrides the built-in metadata of one public page.
// A page without a row uses its defaults.
type SeoSetting struct {
	Model
	PageName    string                      `gorm:"size:50;uniqueIndex;not null"`
	Title       string                      `gorm:"size:300"`
	Description string                      `gorm:"type:text"`
	Keywords    datatypes.JSONSlice[string] `gorm:"type:json"`
	OGImageURL  string                      `gorm:"column:og_image_url;size:500"`
}

func (SeoSetting) TableName() string { return "seo_settings" }
