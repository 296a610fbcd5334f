package locale

import "testing"

func TestNormalizeLanguage(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "", want: ""},
		{input: "ar", want: LanguageArabic},
		{input: "AR-EG", want: LanguageArabic},
		{input: "en-US", want: LanguageEnglish},
		{input: "fr", want: ""},
	}

	for _, tt := range tests {
		if got := NormalizeLanguage(tt.input); got != tt.want {
			t.Fatalf("NormalizeLanguage(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestLanguageFromAcceptLanguageHonorsOrder(t *testing.T) {
	if got := LanguageFromAcceptLanguage("fr-FR,en;q=0.8,ar;q=0.5"); got != LanguageEnglish {
		t.Fatalf("expected english, got %q", got)
	}
	if got := LanguageFromAcceptLanguage("ar-IQ,en;q=0.9"); got != LanguageArabic {
		t.Fatalf("expected arabic, got %q", got)
	}
	if got := LanguageFromAcceptLanguage("de"); got != "" {
		t.Fatalf("expected no match, got %q", got)
	}
}

func TestPreferenceDefaultsToArabic(t *testing.T) {
	pref := PreferenceForLanguage("")
	if pref.Language != LanguageArabic || pref.Dir != "rtl" {
		t.Fatalf("unexpected default preference: %#v", pref)
	}
	if PreferenceForLanguage("en").Dir != "ltr" {
		t.Fatal("english must be left to right")
	}
}

func TestPickFallsBack(t *testing.T) {
	if got := Pick("en", "Saved", "تم الحفظ"); got != "Saved" {
		t.Fatalf("expected english text, got %q", got)
	}
	if got := Pick("ar", "Saved", ""); got != "Saved" {
		t.Fatalf("expected english fallback, got %q", got)
	}
	if got := Pick("", "Saved", "تم الحفظ"); got != "تم الحفظ" {
		t.Fatalf("expected arabic default, got %q", got)
	}
}
