package db

// ContactMessage is a public contact form submission. Only IsRead changes after insert.
type ContactMessage struct {
	Model
	Name    string `gorm:"size:200;not null"`
	Email   string `gorm:"size:200;not null"`
	Subject string `gorm:"size:300"`
	Message string `gorm:"type:text;not null"`
	IsRead  bool   `gorm:"not null;index"`
}

func (ContactMessage) TableName() string { return "contact_messages" }
