package view

import "strings"

// Option is a selectable key/label pair for admin dropdowns.
type Option struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// PlatformStyle describes how a social platform is rendered.
type PlatformStyle struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Color string `json:"color"`
}

var (
	platformDefinitions = []PlatformStyle{
		{Key: "github", Label: "GitHub", Color: "#181717"},
		{Key: "linkedin", Label: "LinkedIn", Color: "#0A66C2"},
		{Key: "twitter", Label: "Twitter / X", Color: "#000000"},
		{Key: "facebook", Label: "Facebook", Color: "#1877F2"},
		{Key: "instagram", Label: "Instagram", Color: "#E4405F"},
		{Key: "youtube", Label: "YouTube", Color: "#FF0000"},
		{Key: "whatsapp", Label: "WhatsApp", Color: "#25D366"},
		{Key: "telegram", Label: "Telegram", Color: "#26A5E4"},
		{Key: "email", Label: "Email", Color: "#EA4335"},
	}
	genericPlatform = PlatformStyle{Key: "", Label: "Link", Color: "#6366F1"}
	platformLookup  = func() map[string]PlatformStyle {
		lookup := make(map[string]PlatformStyle, len(platformDefinitions))
		for _, platform := range platformDefinitions {
			lookup[platform.Key] = platform
		}
		return lookup
	}()

	serviceIconDefinitions = []Option{
		{Key: "globe", Label: "Globe"},
		{Key: "smartphone", Label: "Smartphone"},
		{Key: "palette", Label: "Palette"},
		{Key: "code", Label: "Code"},
		{Key: "database", Label: "Database"},
		{Key: "cloud", Label: "Cloud"},
		{Key: "briefcase", Label: "Briefcase"},
		{Key: "cpu", Label: "CPU"},
	}

	fontDefinitions = []Option{
		{Key: "Times New Roman", Label: "Times New Roman"},
		{Key: "Arial", Label: "Arial"},
		{Key: "Georgia", Label: "Georgia"},
		{Key: "Courier New", Label: "Courier New"},
		{Key: "Tajawal", Label: "Tajawal"},
		{Key: "Verdana", Label: "Verdana"},
		{Key: "Impact", Label: "Impact"},
		{Key: "Comic Sans MS", Label: "Comic Sans MS"},
		{Key: "Trebuchet MS", Label: "Trebuchet MS"},
		{Key: "Palatino Linotype", Label: "Palatino Linotype"},
	}
)

// DefaultServiceIcon is used when a service is created without an icon.
const DefaultServiceIcon = "briefcase"

// DefaultLogoFont is the branding font used when none is stored.
const DefaultLogoFont = "Times New Roman"

// PlatformOptions exposes the known social platforms in display order.
func PlatformOptions() []PlatformStyle {
	return append([]PlatformStyle(nil), platformDefinitions...)
}

// Platform resolves the style of a platform key. Unknown keys get the generic untagged style.
func Platform(key string) PlatformStyle {
	normalized := NormalizeKey(key)
	if style, ok := platformLookup[normalized]; ok {
		return style
	}
	return genericPlatform
}

// IsKnownPlatform reports whether key names one of the built-in platforms.
func IsKnownPlatform(key string) bool {
	_, ok := platformLookup[NormalizeKey(key)]
	return ok
}

// ServiceIconOptions exposes the enumerated service icons.
func ServiceIconOptions() []Option {
	return append([]Option(nil), serviceIconDefinitions...)
}

// IsServiceIcon reports whether key is one of the enumerated service icons.
func IsServiceIcon(key string) bool {
	normalized := NormalizeKey(key)
	for _, icon := range serviceIconDefinitions {
		if icon.Key == normalized {
			return true
		}
	}
	return false
}

// FontOptions exposes the logo fonts offered by the branding screen.
func FontOptions() []Option {
	return append([]Option(nil), fontDefinitions...)
}

// IsFont reports whether name is one of the offered logo fonts. Matching is exact.
func IsFont(name string) bool {
	trimmed := strings.TrimSpace(name)
	for _, font := range fontDefinitions {
		if font.Key == trimmed {
			return true
		}
	}
	return false
}

// NormalizeKey lowercases and trims an enumerated key.
func NormalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
