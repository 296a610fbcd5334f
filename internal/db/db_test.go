package db

import (
	"path/filepath"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestOpenSeedsOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "portfolio.db")

	gdb, err := Open(Options{Path: path, ProfileName: "  Jane  ", Silent: true})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := EnsureProfile(gdb, "Someone Else"); err != nil {
		t.Fatalf("ensure profile: %v", err)
	}
	if err := EnsureSections(gdb); err != nil {
		t.Fatalf("ensure sections: %v", err)
	}

	var profiles []Profile
	if err := gdb.Find(&profiles).Error; err != nil {
		t.Fatalf("list profiles: %v", err)
	}
	if len(profiles) != 1 || profiles[0].Name != "Jane" || !profiles[0].ProfileImageVisible {
		t.Fatalf("unexpected profiles %+v", profiles)
	}
	if profiles[0].ID == "" {
		t.Fatalf("expected generated id")
	}

	var sections []SectionVisibility
	if err := gdb.Order("sort_order ASC").Find(&sections).Error; err != nil {
		t.Fatalf("list sections: %v", err)
	}
	if len(sections) != len(DefaultSections) {
		t.Fatalf("expected %d sections, got %d", len(DefaultSections), len(sections))
	}
	for index, section := range sections {
		if section.SortOrder != index || !section.IsVisible || section.SectionName != DefaultSections[index].SectionName {
			t.Fatalf("unexpected section at %d: %+v", index, section)
		}
	}

	if sqlDB, err := gdb.DB(); err == nil {
		sqlDB.Close()
	}
}

func TestEnsureUserHashesOnce(t *testing.T) {
	gdb, err := Open(Options{Path: filepath.Join(t.TempDir(), "users.db"), Silent: true})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	if err := EnsureUser(gdb, "", "secret"); err != nil {
		t.Fatalf("blank username should be ignored: %v", err)
	}
	if err := EnsureUser(gdb, "admin", "first-pass"); err != nil {
		t.Fatalf("ensure user: %v", err)
	}
	if err := EnsureUser(gdb, "admin", "second-pass"); err != nil {
		t.Fatalf("ensure user again: %v", err)
	}

	var users []User
	if err := gdb.Find(&users).Error; err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected one user, got %d", len(users))
	}
	if err := bcrypt.CompareHashAndPassword([]byte(users[0].Password), []byte("first-pass")); err != nil {
		t.Fatalf("stored hash should match the first password: %v", err)
	}
}

func TestListedAccessors(t *testing.T) {
	var item Service
	item.SetPosition(3)
	item.SetVisible(true)
	if item.Position() != 3 || !item.Visible() || item.SortOrder != 3 {
		t.Fatalf("unexpected listed state %+v", item.Listed)
	}
}
