package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
)

// Language is a supported UI language code.
type Language string

const (
	// LangEnglish is the default language.
	LangEnglish Language = "en"
	// LangHindi is the second member of the closed language set.
	LangHindi Language = "hi"
)

//go:embed locales/en.json locales/hi.json
var localeFS embed.FS

var locales = map[Language]map[string]string{}

func init() {
	mustLoadLocale(LangEnglish, "locales/en.json")
	mustLoadLocale(LangHindi, "locales/hi.json")
}

func mustLoadLocale(lang Language, file string) {
	data, err := localeFS.ReadFile(file)
	if err != nil {
		panic(fmt.Sprintf("i18n: load locale %s: %v", lang, err))
	}
	var parsed map[string]string
	if err := json.Unmarshal(data, &parsed); err != nil {
		panic(fmt.Sprintf("i18n: parse locale %s: %v", lang, err))
	}
	locales[lang] = parsed
}

// Normalize maps any tag outside the supported set to the default language.
func Normalize(tag string) Language {
	switch Language(strings.ToLower(strings.TrimSpace(tag))) {
	case LangHindi:
		return LangHindi
	default:
		return LangEnglish
	}
}

// Translator resolves localized strings for one language.
type Translator struct {
	lang Language
	data map[string]string
}

// NewTranslator builds a translator, normalizing unknown tags to English.
func NewTranslator(lang Language) Translator {
	data, ok := locales[lang]
	if !ok {
		lang = LangEnglish
		data = locales[LangEnglish]
	}
	return Translator{lang: lang, data: data}
}

// Lang returns the active language.
func (t Translator) Lang() Language {
	return t.lang
}

// T returns the localized string for key, falling back to the English table
// and finally to the key itself.
func (t Translator) T(key string) string {
	if val, ok := t.data[key]; ok {
		return val
	}
	if t.lang != LangEnglish {
		if val, ok := locales[LangEnglish][key]; ok {
			return val
		}
	}
	return key
}

// Format returns the localized string formatted with the given arguments.
func (t Translator) Format(key string, args ...any) string {
	return fmt.Sprintf(t.T(key), args...)
}

// Table returns a copy of the active string table, for surfaces that apply
// the whole table at once.
func (t Translator) Table() map[string]string {
	out := make(map[string]string, len(t.data))
	for k, v := range t.data {
		out[k] = v
	}
	return out
}
