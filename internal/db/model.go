package db

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Model is the shared primary key and timestamp block for content rows.
// Rows are hard-deleted, so there is no DeletedAt column.
type Model struct {
	ID        string `gorm:"primaryKey;size:36"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BeforeCreate assigns an opaque identifier when the caller did not set one.
func (m *Model) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// Sortable is implemented by collection rows that carry a display position.
type Sortable interface {
	Key() string
	Position() int
	SetPosition(position int)
}

// Toggleable is implemented by rows with a public visibility flag.
type Toggleable interface {
	Visible() bool
	SetVisible(visible bool)
}

// Listed marks the common block shared by every ordered, visibility-gated collection.
type Listed struct {
	SortOrder int  `gorm:"not null;default:0;index"`
	IsVisible bool `gorm:"not null"`
}

func (l *Listed) Position() int            { return l.SortOrder }
func (l *Listed) SetPosition(position int) { l.SortOrder = position }
func (l *Listed) Visible() bool            { return l.IsVisible }
func (l *Listed) SetVisible(visible bool)  { l.IsVisible = visible }
