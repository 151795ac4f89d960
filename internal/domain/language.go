package domain

import "strings"

// Language identifies one of the localization bundles shipped with the game
// data. Values match the suffixes of the localization file names.
type Language string

const (
	LanguageBrazilian  Language = "brazilian"
	LanguageBulgarian  Language = "bulgarian"
	LanguageCzech      Language = "czech"
	LanguageDanish     Language = "danish"
	LanguageDutch      Language = "dutch"
	LanguageEnglish    Language = "english"
	LanguageFinnish    Language = "finnish"
	LanguageFrench     Language = "french"
	LanguageGerman     Language = "german"
	LanguageGreek      Language = "greek"
	LanguageHungarian  Language = "hungarian"
	LanguageIndonesian Language = "indonesian"
	LanguageItalian    Language = "italian"
	LanguageJapanese   Language = "japanese"
	LanguageKoreana    Language = "koreana"
	LanguageLatam      Language = "latam"
	LanguageNorwegian  Language = "norwegian"
	LanguagePolish     Language = "polish"
	LanguagePortuguese Language = "portuguese"
	LanguageRomanian   Language = "romanian"
	LanguageRussian    Language = "russian"
	LanguageSchinese   Language = "schinese"
	LanguageSpanish    Language = "spanish"
	LanguageSwedish    Language = "swedish"
	LanguageTchinese   Language = "tchinese"
	LanguageThai       Language = "thai"
	LanguageTurkish    Language = "turkish"
	LanguageUkrainian  Language = "ukrainian"
	LanguageVietnamese Language = "vietnamese"
)

// Languages lists every supported language.
var Languages = []Language{
	LanguageBrazilian, LanguageBulgarian, LanguageCzech, LanguageDanish,
	LanguageDutch, LanguageEnglish, LanguageFinnish, LanguageFrench,
	LanguageGerman, LanguageGreek, LanguageHungarian, LanguageIndonesian,
	LanguageItalian, LanguageJapanese, LanguageKoreana, LanguageLatam,
	LanguageNorwegian, LanguagePolish, LanguagePortuguese, LanguageRomanian,
	LanguageRussian, LanguageSchinese, LanguageSpanish, LanguageSwedish,
	LanguageTchinese, LanguageThai, LanguageTurkish, LanguageUkrainian,
	LanguageVietnamese,
}

// ParseLanguage maps a query string to a known language. Unrecognized or
// empty input falls back to English rather than failing the request.
func ParseLanguage(s string) Language {
	if s == "" {
		return LanguageEnglish
	}
	needle := strings.ToLower(s)
	for _, l := range Languages {
		if string(l) == needle {
			return l
		}
	}
	return LanguageEnglish
}
