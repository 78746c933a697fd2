// Package locales carries the static locale table the API joins against.
// Locales are not independently created or edited; the table is fixed at
// compile time, mirroring the upstream locale database.
package locales

// Locale describes an identifiable natural language plus its plural-rule
// metadata.
type Locale struct {
	Code        string `json:"code"`
	EnglishName string `json:"english_name"`
	NativeName  string `json:"native_name"`
	NPlurals    int    `json:"nplurals"`
}

var table = []Locale{
	{Code: "ar", EnglishName: "Arabic", NativeName: "العربية", NPlurals: 6},
	{Code: "cs", EnglishName: "Czech", NativeName: "Čeština", NPlurals: 3},
	{Code: "da", EnglishName: "Danish", NativeName: "Dansk", NPlurals: 2},
	{Code: "de", EnglishName: "German", NativeName: "Deutsch", NPlurals: 2},
	{Code: "el", EnglishName: "Greek", NativeName: "Ελληνικά", NPlurals: 2},
	{Code: "en", EnglishName: "English", NativeName: "English", NPlurals: 2},
	{Code: "es", EnglishName: "Spanish", NativeName: "Español", NPlurals: 2},
	{Code: "fi", EnglishName: "Finnish", NativeName: "Suomi", NPlurals: 2},
	{Code: "fr", EnglishName: "French", NativeName: "Français", NPlurals: 2},
	{Code: "he", EnglishName: "Hebrew", NativeName: "עברית", NPlurals: 2},
	{Code: "hu", EnglishName: "Hungarian", NativeName: "Magyar", NPlurals: 2},
	{Code: "id", EnglishName: "Indonesian", NativeName: "Bahasa Indonesia", NPlurals: 1},
	{Code: "it", EnglishName: "Italian", NativeName: "Italiano", NPlurals: 2},
	{Code: "ja", EnglishName: "Japanese", NativeName: "日本語", NPlurals: 1},
	{Code: "ko", EnglishName: "Korean", NativeName: "한국어", NPlurals: 1},
	{Code: "nl", EnglishName: "Dutch", NativeName: "Nederlands", NPlurals: 2},
	{Code: "pl", EnglishName: "Polish", NativeName: "Polski", NPlurals: 3},
	{Code: "pt", EnglishName: "Portuguese", NativeName: "Português", NPlurals: 2},
	{Code: "ru", EnglishName: "Russian", NativeName: "Русский", NPlurals: 3},
	{Code: "sv", EnglishName: "Swedish", NativeName: "Svenska", NPlurals: 2},
	{Code: "tr", EnglishName: "Turkish", NativeName: "Türkçe", NPlurals: 2},
	{Code: "uk", EnglishName: "Ukrainian", NativeName: "Українська", NPlurals: 3},
	{Code: "zh-cn", EnglishName: "Chinese (China)", NativeName: "简体中文", NPlurals: 1},
}

var bySlug = func() map[string]*Locale {
	m := make(map[string]*Locale, len(table))
	for i := range table {
		m[table[i].Code] = &table[i]
	}
	return m
}()

// BySlug returns the locale for the given code, or nil if unknown.
func BySlug(code string) *Locale {
	return bySlug[code]
}

// All returns the full locale table. The returned slice must not be
// modified.
func All() []Locale {
	return table
}
