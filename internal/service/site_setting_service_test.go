package service

import (
	"testing"

	"github.com/portfolio/internal/db"
	"github.com/portfolio/internal/view"
)

func TestSiteSettingServiceDefaults(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewSiteSettingService(gdb)

	settings, err := svc.GetSettings()
	if err != nil {
		t.Fatalf("get settings failed: %v", err)
	}
	if settings != DefaultSiteSettings() {
		t.Fatalf("expected defaults, got %+v", settings)
	}
	if settings.LogoFont != view.DefaultLogoFont {
		t.Fatalf("unexpected default font %q", settings.LogoFont)
	}
}

func TestSiteSettingServiceUpdate(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewSiteSettingService(gdb)

	updated, err := svc.UpdateSettings(SiteSettingsInput{SiteName: " Studio ", LogoLetter: "أحمد", LogoFont: "Comic Papyrus"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.SiteName != "Studio" || updated.LogoLetter != "أح" || updated.LogoFont != view.DefaultLogoFont {
		t.Fatalf("unexpected sanitized settings: %+v", updated)
	}

	if _, err := svc.UpdateSettings(SiteSettingsInput{SiteName: "", LogoLetter: "MS", LogoFont: "Georgia"}); err != nil {
		t.Fatalf("second update failed: %v", err)
	}

	settings, err := svc.GetSettings()
	if err != nil {
		t.Fatalf("get settings failed: %v", err)
	}
	if settings.SiteName != "Portfolio" || settings.LogoLetter != "MS" || settings.LogoFont != "Georgia" {
		t.Fatalf("unexpected stored settings: %+v", settings)
	}

	var count int64
	gdb.Model(&db.SiteSetting{}).Count(&count)
	if count != 3 {
		t.Fatalf("expected upsert to keep three rows, got %d", count)
	}
}
