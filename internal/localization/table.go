// Package localization loads per-build translation tables and resolves
// tokens with an English fallback.
package localization

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/raimannma/deadlock-assets-api/internal/domain"
)

// ErrNoTokens means no translation file for the language could be read.
var ErrNoTokens = errors.New("no localization tokens found")

// tokenGroups are the translation file families shipped with each build.
var tokenGroups = []string{"gc", "heroes", "main", "mods"}

// Table is a merged token lookup for one language. Tokens missing from the
// language are served from English, so every table answers the same key set.
type Table struct {
	lang   domain.Language
	tokens map[string]string
}

// file is the on-disk shape of a single translation file.
type file struct {
	Lang struct {
		Tokens map[string]string `json:"Tokens"`
	} `json:"lang"`
}

// Load reads all token groups for the language from dir and overlays them
// on the English tokens. Individual missing group files are tolerated.
func Load(dir string, lang domain.Language, log *slog.Logger) (*Table, error) {
	if log == nil {
		log = slog.Default()
	}

	tokens, err := loadTokens(dir, domain.LanguageEnglish, log)
	if err != nil {
		return nil, err
	}
	if lang != domain.LanguageEnglish {
		localized, err := loadTokens(dir, lang, log)
		if err != nil && !errors.Is(err, ErrNoTokens) {
			return nil, err
		}
		for token, value := range localized {
			tokens[token] = value
		}
	}
	return &Table{lang: lang, tokens: tokens}, nil
}

// NewTable builds a table from already merged tokens. Used by tests and by
// callers that assemble tokens themselves.
func NewTable(lang domain.Language, tokens map[string]string) *Table {
	if tokens == nil {
		tokens = map[string]string{}
	}
	return &Table{lang: lang, tokens: tokens}
}

func loadTokens(dir string, lang domain.Language, log *slog.Logger) (map[string]string, error) {
	tokens := make(map[string]string)
	found := false
	for _, group := range tokenGroups {
		path := filepath.Join(dir, fmt.Sprintf("citadel_%s_%s.json", group, lang))
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				log.Debug("Localization file missing", "path", path)
				continue
			}
			return nil, fmt.Errorf("failed to read localization file %s: %w", path, err)
		}

		var f file
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse localization file %s: %w", path, err)
		}
		for token, value := range f.Lang.Tokens {
			tokens[token] = value
		}
		found = true
	}
	if !found {
		return nil, fmt.Errorf("%w: language %s in %s", ErrNoTokens, lang, dir)
	}
	return tokens, nil
}

// Language returns the language this table serves.
func (t *Table) Language() domain.Language {
	return t.lang
}

// Lookup returns the translation for a token.
func (t *Table) Lookup(token string) (string, bool) {
	value, ok := t.tokens[token]
	return value, ok
}

// Get returns the translation for a token, or the token itself when no
// translation exists. A leading "#" on the token is ignored.
func (t *Table) Get(token string) string {
	if value, ok := t.tokens[strings.TrimPrefix(token, "#")]; ok {
		return value
	}
	return token
}

// Len reports the number of distinct tokens.
func (t *Table) Len() int {
	return len(t.tokens)
}
