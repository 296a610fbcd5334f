package db

// Profile is the singleton owner record the public pages are built around.
type Profile struct {
	Model
	Name                string `gorm:"size:200;not null"`
	Title               string `gorm:"size:200"`
	Bio                 string `gorm:"type:text"`
	Email               string `gorm:"size:200"`
	Phone               string `gorm:"size:50"`
	Location            string `gorm:"size:200"`
	ResumeText          string `gorm:"type:text"`
	ResumePDFURL        string `gorm:"column:resume_pdf_url;size:500"`
	ProfileImageURL     string `gorm:"size:500"`
	ProfileImageVisible bool   `gorm:"not null"`
}

// TableName keeps the singular table name of the singleton.
func (Profile) TableName() string { return "profile" }
