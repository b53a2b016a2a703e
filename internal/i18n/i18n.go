// Package i18n holds the UI translation tables and picks one per request.
package i18n

import (
	"golang.org/x/text/language"

	"retroboard/internal/utils"
)

type Language string

const (
	English   Language = "en"
	Hungarian Language = "hu"
	French    Language = "fr"
)

type (
	Component = string
	Key       = string
)

// Translation 按组件分组的文案。缺少的 key 表示未翻译，"" 表示刻意留空
type Translation map[Component]map[Key]string

var tables = map[Language]Translation{
	English:   english,
	Hungarian: hungarian,
	French:    french,
}

// supported is ordered by preference; the first entry is the matcher's default.
var supported = []Language{English, Hungarian, French}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Hungarian,
	language.French,
})

var resolved = utils.NewCache[Language, Translation](len(supported), 0)

// Supported lists the available languages, English first.
func Supported() []Language {
	out := make([]Language, len(supported))
	copy(out, supported)
	return out
}

// Parse accepts a bare language code such as "hu".
func Parse(code string) (Language, bool) {
	lang := Language(code)
	_, ok := tables[lang]
	return lang, ok
}

// Lookup reports whether lang itself carries the key. No fallback is applied.
func Lookup(lang Language, component Component, key Key) (string, bool) {
	table, ok := tables[lang]
	if !ok {
		return "", false
	}
	value, ok := table[component][key]
	return value, ok
}

// Translate returns the text in lang, falling back to English and then to the key itself.
func Translate(lang Language, component Component, key Key) string {
	if value, ok := Lookup(lang, component, key); ok {
		return value
	}
	if value, ok := Lookup(English, component, key); ok {
		return value
	}
	return key
}

// Match negotiates an Accept-Language header (or a single tag) against the
// supported languages. Anything unparseable yields English.
func Match(acceptLanguage string) Language {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return English
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return English
	}
	return supported[index]
}

// Resolve returns the complete table for lang: every English key, overridden
// by lang's own entries. The result is shared and must not be modified.
func Resolve(lang Language) Translation {
	if _, ok := tables[lang]; !ok {
		lang = English
	}
	if cached, ok := resolved.Get(lang); ok {
		return cached
	}

	merged := make(Translation, len(english))
	for component, keys := range english {
		entries := make(map[Key]string, len(keys))
		for key, value := range keys {
			entries[key] = value
		}
		for key, value := range tables[lang][component] {
			entries[key] = value
		}
		merged[component] = entries
	}

	resolved.Set(lang, merged)
	return merged
}
