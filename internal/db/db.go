package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DefaultPath is used when no database path is configured.
const DefaultPath = "portfolio.db"

// Options tunes how the connection is opened.
type Options struct {
	Path        string
	ProfileName string
	Silent      bool
}

// Open connects to SQLite, migrates every content table and seeds the
// singleton profile and the home page sections.
func Open(opts Options) (*gorm.DB, error) {
	path := strings.TrimSpace(opts.Path)
	if path == "" {
		path = DefaultPath
	}

	if err := ensureParentDir(path); err != nil {
		return nil, err
	}

	cfg := &gorm.Config{}
	if opts.Silent {
		cfg.Logger = logger.Default.LogMode(logger.Silent)
	}

	gdb, err := gorm.Open(sqlite.Open(path), cfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := Migrate(gdb); err != nil {
		return nil, err
	}
	if err := EnsureProfile(gdb, opts.ProfileName); err != nil {
		return nil, err
	}
	if err := EnsureSections(gdb); err != nil {
		return nil, err
	}

	return gdb, nil
}

// Migrate creates or updates the schema for every model.
func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(
		&User{},
		&Profile{},
		&Service{},
		&Project{},
		&SocialLink{},
		&SeoSetting{},
		&SectionVisibility{},
		&ContactMessage{},
		&SiteSetting{},
	); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	return nil
}

// EnsureProfile inserts the singleton profile row when the table is empty.
func EnsureProfile(gdb *gorm.DB, name string) error {
	var count int64
	if err := gdb.Model(&Profile{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count profile: %w", err)
	}
	if count > 0 {
		return nil
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = "Portfolio Owner"
	}
	profile := Profile{Name: name, ProfileImageVisible: true}
	if err := gdb.Create(&profile).Error; err != nil {
		return fmt.Errorf("seed profile: %w", err)
	}
	return nil
}

// DefaultSections lists the home page blocks in their initial order.
var DefaultSections = []SectionVisibility{
	{SectionName: "hero", SectionTitle: "Hero"},
	{SectionName: "about", SectionTitle: "About"},
	{SectionName: "services", SectionTitle: "Services"},
	{SectionName: "projects", SectionTitle: "Projects"},
}

// EnsureSections seeds the section visibility table with dense positions when empty.
func EnsureSections(gdb *gorm.DB) error {
	var count int64
	if err := gdb.Model(&SectionVisibility{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count sections: %w", err)
	}
	if count > 0 {
		return nil
	}

	return gdb.Transaction(func(tx *gorm.DB) error {
		for index, section := range DefaultSections {
			row := SectionVisibility{
				SectionName:  section.SectionName,
				SectionTitle: section.SectionTitle,
				Listed:       Listed{SortOrder: index, IsVisible: true},
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("seed section %s: %w", section.SectionName, err)
			}
		}
		return nil
	})
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}
