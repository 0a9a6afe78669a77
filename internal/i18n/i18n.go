// Package i18n serves the two-language (bn/en) string table. Keys are
// dotted identifiers; Bangla is the default language and English the
// fallback when a key is missing from the requested table.
package i18n

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultLanguage  = "bn"
	FallbackLanguage = "en"
)

// Translator holds one flattened key table per language.
type Translator struct {
	tables map[string]map[string]string
}

// Load reads the locale YAML file at path. The file has one top-level
// section per language code. Keys keep the exact case they have in the
// file; clients tag elements with these identifiers verbatim.
func Load(path string) (*Translator, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading locale file: %w", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing locale file: %w", err)
	}

	tables := make(map[string]map[string]string, len(doc))
	for lang, tree := range doc {
		table := make(map[string]string)
		flatten("", tree, table)
		tables[strings.ToLower(lang)] = table
	}
	return &Translator{tables: tables}, nil
}

// flatten walks a language subtree and records every leaf under its
// dotted key.
func flatten(prefix string, node any, out map[string]string) {
	switch v := node.(type) {
	case map[string]any:
		for k, child := range v {
			key := k
			if prefix != "" {
				key = prefix + "." + k
			}
			flatten(key, child, out)
		}
	case nil:
	case string:
		if prefix != "" {
			out[prefix] = v
		}
	default:
		if prefix != "" {
			out[prefix] = fmt.Sprintf("%v", v)
		}
	}
}

// T returns the string for key in lang. Missing keys fall back to the
// fallback language, then to the key itself so the UI never renders
// an empty string.
func (t *Translator) T(lang, key string) string {
	if s := t.tables[lang][key]; s != "" {
		return s
	}
	if s := t.tables[FallbackLanguage][key]; s != "" {
		return s
	}
	return key
}

// Table returns every key/string pair for one language, flattened to
// the dotted keys the client tags elements with. Unknown languages
// come back empty.
func (t *Translator) Table(lang string) map[string]string {
	src := t.tables[lang]
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// Supported reports whether lang has a table.
func (t *Translator) Supported(lang string) bool {
	_, ok := t.tables[lang]
	return ok
}

// Normalize maps arbitrary client input to a supported language code.
func (t *Translator) Normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if t.Supported(lang) {
		return lang
	}
	return DefaultLanguage
}
