package service

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/portfolio/internal/db"
)

func testSeoDefaults() SeoDefaults {
	return SeoDefaults{
		PageHome: {Title: "Home default", Description: "Home description", Keywords: []string{"home"}, OGImageURL: "/og/home.png"},
	}
}

func TestMergeSeoPerFieldFallback(t *testing.T) {
	defaults := SeoFields{Title: "D-title", Description: "D-desc", Keywords: []string{"d"}, OGImageURL: "/d.png"}

	merged := MergeSeo(&SeoFields{Title: "", Description: "X", Keywords: []string{}}, defaults)
	if merged.Title != "D-title" || merged.Description != "X" || !equalStrings(merged.Keywords, []string{"d"}) || merged.OGImageURL != "/d.png" {
		t.Fatalf("unexpected merge: %+v", merged)
	}

	merged = MergeSeo(&SeoFields{Title: "T", Keywords: []string{" ", "k"}, OGImageURL: "/o.png"}, defaults)
	if merged.Title != "T" || merged.Description != "D-desc" || !equalStrings(merged.Keywords, []string{"k"}) || merged.OGImageURL != "/o.png" {
		t.Fatalf("unexpected merge: %+v", merged)
	}

	merged = MergeSeo(&SeoFields{Title: "   "}, defaults)
	if merged.Title != "D-title" {
		t.Fatalf("blank title should fall back, got %q", merged.Title)
	}
}

func TestMergeSeoNilOverrideReturnsDefaults(t *testing.T) {
	defaults := SeoFields{Title: "D", Description: "Desc", Keywords: []string{"a", "b"}}
	merged := MergeSeo(nil, defaults)
	if merged.Title != defaults.Title || merged.Description != defaults.Description || !equalStrings(merged.Keywords, defaults.Keywords) {
		t.Fatalf("expected defaults, got %+v", merged)
	}
}

func TestDefaultSeoTableCoversEveryPage(t *testing.T) {
	defaults := DefaultSeoTable()
	for _, page := range SeoPages {
		fields, err := defaults.For(page)
		if err != nil {
			t.Fatalf("defaults for %s: %v", page, err)
		}
		if fields.Title == "" || fields.Description == "" || len(fields.Keywords) == 0 {
			t.Fatalf("incomplete defaults for %s: %+v", page, fields)
		}
	}
	if _, err := defaults.For("blog"); !errors.Is(err, ErrSeoPageUnknown) {
		t.Fatalf("expected ErrSeoPageUnknown, got %v", err)
	}
}

func TestParseSeoDefaults(t *testing.T) {
	defaults, err := ParseSeoDefaults(strings.NewReader("pages:\n  Home:\n    title: Custom\n    keywords: [\" a \", \"\"]\n"))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	home, _ := defaults.For(PageHome)
	if home.Title != "Custom" || !equalStrings(home.Keywords, []string{"a"}) {
		t.Fatalf("unexpected home defaults: %+v", home)
	}
	about, _ := defaults.For(PageAbout)
	if about.Title != "" || len(about.Keywords) != 0 {
		t.Fatalf("missing page should have empty defaults, got %+v", about)
	}

	if _, err := ParseSeoDefaults(strings.NewReader("pages:\n  blog:\n    title: x\n")); !errors.Is(err, ErrSeoPageUnknown) {
		t.Fatalf("expected ErrSeoPageUnknown, got %v", err)
	}
}

func TestLoadSeoDefaultsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seo.yaml")
	if err := os.WriteFile(path, []byte("pages:\n  contact:\n    title: Write to me\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	defaults, err := LoadSeoDefaults(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	contact, _ := defaults.For(PageContact)
	if contact.Title != "Write to me" {
		t.Fatalf("unexpected contact title: %q", contact.Title)
	}

	if _, err := LoadSeoDefaults(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSeoServiceEffectiveWithoutRowUsesDefaults(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewSeoService(gdb, testSeoDefaults())

	fields, err := svc.Effective("home")
	if err != nil {
		t.Fatalf("effective failed: %v", err)
	}
	if fields.Title != "Home default" || fields.OGImageURL != "/og/home.png" {
		t.Fatalf("unexpected effective fields: %+v", fields)
	}

	if _, err := svc.Effective("blog"); !errors.Is(err, ErrSeoPageUnknown) {
		t.Fatalf("expected ErrSeoPageUnknown, got %v", err)
	}
}

func TestSeoServiceEffectiveMergesStoredRow(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewSeoService(gdb, testSeoDefaults())

	row := db.SeoSetting{PageName: PageHome, Title: "", Description: "Stored"}
	if err := gdb.Create(&row).Error; err != nil {
		t.Fatalf("seed row: %v", err)
	}

	fields, err := svc.Effective(PageHome)
	if err != nil {
		t.Fatalf("effective failed: %v", err)
	}
	if fields.Title != "Home default" || fields.Description != "Stored" || !equalStrings(fields.Keywords, []string{"home"}) {
		t.Fatalf("unexpected effective fields: %+v", fields)
	}
}

func TestSeoServiceRecordsAndSave(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewSeoService(gdb, testSeoDefaults())

	records, err := svc.Records()
	if err != nil {
		t.Fatalf("records failed: %v", err)
	}
	if len(records) != len(SeoPages) {
		t.Fatalf("expected %d records, got %d", len(SeoPages), len(records))
	}
	home, ok := records[0].(UnsavedSeo)
	if !ok {
		t.Fatalf("expected unsaved home record, got %T", records[0])
	}
	if home.Values.Title != "Home default" {
		t.Fatalf("unsaved record should be prefilled with defaults, got %+v", home.Values)
	}

	saved, err := svc.Save(home.WithFields(SeoFields{Title: " Mine ", Keywords: []string{"x", " "}}))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if saved.ID == "" || saved.Values.Title != "Mine" || !equalStrings(saved.Values.Keywords, []string{"x"}) {
		t.Fatalf("unexpected saved record: %+v", saved)
	}

	record, err := svc.Record(PageHome)
	if err != nil {
		t.Fatalf("record failed: %v", err)
	}
	persisted, ok := record.(PersistedSeo)
	if !ok || persisted.ID != saved.ID {
		t.Fatalf("expected persisted record %s, got %#v", saved.ID, record)
	}

	updated, err := svc.Save(persisted.WithFields(SeoFields{Title: "Again"}))
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.ID != saved.ID || updated.Values.Title != "Again" {
		t.Fatalf("expected update in place, got %+v", updated)
	}

	var count int64
	gdb.Model(&db.SeoSetting{}).Where("page_name = ?", PageHome).Count(&count)
	if count != 1 {
		t.Fatalf("expected one stored row, got %d", count)
	}

	if _, err := svc.Save(PersistedSeo{ID: "missing", PageName: PageHome}); !errors.Is(err, ErrSeoNotFound) {
		t.Fatalf("expected ErrSeoNotFound, got %v", err)
	}
	if _, err := svc.Save(UnsavedSeo{PageName: "blog"}); !errors.Is(err, ErrSeoPageUnknown) {
		t.Fatalf("expected ErrSeoPageUnknown, got %v", err)
	}
}

func TestSeoServiceUnsavedSaveUpdatesExistingRow(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewSeoService(gdb, testSeoDefaults())

	first, err := svc.Save(UnsavedSeo{PageName: PageAbout, Values: SeoFields{Title: "One"}})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	second, err := svc.Save(UnsavedSeo{PageName: PageAbout, Values: SeoFields{Title: "Two"}})
	if err != nil {
		t.Fatalf("second save failed: %v", err)
	}
	if first.ID != second.ID || second.Values.Title != "Two" {
		t.Fatalf("expected stale unsaved record to update row %s, got %+v", first.ID, second)
	}
}

func TestSeoServiceResetToDefaultsDoesNotWrite(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewSeoService(gdb, testSeoDefaults())

	saved, err := svc.Save(UnsavedSeo{PageName: PageHome, Values: SeoFields{Title: "Custom"}})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	reset, err := svc.ResetToDefaults(saved)
	if err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	persisted, ok := reset.(PersistedSeo)
	if !ok || persisted.ID != saved.ID || persisted.Values.Title != "Home default" {
		t.Fatalf("expected persisted record with defaults, got %#v", reset)
	}

	unsaved, err := svc.ResetToDefaults(UnsavedSeo{PageName: PageHome, Values: SeoFields{Title: "typed"}})
	if err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if _, ok := unsaved.(UnsavedSeo); !ok {
		t.Fatalf("expected unsaved variant, got %T", unsaved)
	}

	stored, err := svc.Record(PageHome)
	if err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if stored.Fields().Title != "Custom" {
		t.Fatalf("reset must not write, stored title %q", stored.Fields().Title)
	}
}
