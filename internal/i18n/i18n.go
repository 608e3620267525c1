// Package i18n resolves semantic UI string keys to display text.
//
// English and German defaults are compiled in; a locales.csv file with
// Key,English,German columns can override or extend them. The core only
// ever asks for keys, never for language-specific prose.
package i18n

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"
)

var supported = []language.Tag{
	language.English,
	language.German,
}

var matcher = language.NewMatcher(supported)

// Translator maps UI string keys to display text in one language
type Translator struct {
	lang         string // "en" or "de"
	translations map[string]map[string]string
}

// New creates a translator for the given BCP-47 language tag. Unknown tags
// fall back to English via language matching ("de-AT" still gets German).
// When overridePath names an existing CSV file its entries replace the
// built-in defaults key by key.
func New(tag string, overridePath string) (*Translator, error) {
	parsed, err := language.Parse(tag)
	if err != nil {
		return nil, fmt.Errorf("invalid language %q: %w", tag, err)
	}
	_, index, _ := matcher.Match(parsed)

	lang := "en"
	if supported[index] == language.German {
		lang = "de"
	}

	translations := make(map[string]map[string]string, len(defaults))
	for key, entry := range defaults {
		translations[key] = entry
	}

	if overridePath != "" {
		overrides, err := loadLocalesCSV(overridePath)
		if err != nil {
			return nil, err
		}
		for key, entry := range overrides {
			translations[key] = entry
		}
	}

	return &Translator{lang: lang, translations: translations}, nil
}

// Language returns the resolved language code ("en" or "de")
func (t *Translator) Language() string {
	return t.lang
}

// T resolves a key and formats it with the given arguments. An unknown key
// comes back as the key itself so missing entries are obvious on screen
// instead of crashing a session.
func (t *Translator) T(key string, args ...any) string {
	text := key
	if entry, ok := t.translations[key]; ok {
		if s := entry[t.lang]; s != "" {
			text = s
		} else if s := entry["en"]; s != "" {
			text = s
		}
	}
	if len(args) == 0 {
		return text
	}
	return fmt.Sprintf(text, args...)
}

// loadLocalesCSV reads a Key,English,German table. A missing file yields no
// overrides; anything else that goes wrong is reported.
func loadLocalesCSV(path string) (map[string]map[string]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open locales file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read locales file: %w", err)
	}

	out := make(map[string]map[string]string)
	for i, row := range rows {
		if len(row) < 2 {
			continue
		}
		key := strings.TrimSpace(row[0])
		if key == "" || (i == 0 && strings.EqualFold(key, "key")) {
			continue
		}
		entry := map[string]string{"en": strings.TrimSpace(row[1])}
		if len(row) > 2 {
			entry["de"] = strings.TrimSpace(row[2])
		}
		out[key] = entry
	}
	return out, nil
}
