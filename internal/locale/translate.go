package locale

// Pick returns the text matching the request language, defaulting to Arabic.
func Pick(language, english, arabic string) string {
	if NormalizeLanguage(language) == LanguageEnglish {
		if english != "" {
			return english
		}
		return arabic
	}
	if arabic != "" {
		return arabic
	}
	return english
}
