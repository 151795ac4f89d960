package localization

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raimannma/deadlock-assets-api/internal/domain"
)

func writeTokens(t *testing.T, dir, group string, lang domain.Language, tokens map[string]string) {
	t.Helper()
	body := `{"lang": {"Tokens": {`
	first := true
	for token, value := range tokens {
		if !first {
			body += ","
		}
		body += fmt.Sprintf("%q: %q", token, value)
		first = false
	}
	body += `}}}`
	path := filepath.Join(dir, fmt.Sprintf("citadel_%s_%s.json", group, lang))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestLoad_EnglishFallback(t *testing.T) {
	dir := t.TempDir()
	writeTokens(t, dir, "main", domain.LanguageEnglish, map[string]string{
		"citadel_ability_dash": "Dash",
		"citadel_only_english": "Only English",
	})
	writeTokens(t, dir, "main", domain.LanguageGerman, map[string]string{
		"citadel_ability_dash": "Sprint",
	})

	table, err := Load(dir, domain.LanguageGerman, nil)
	require.NoError(t, err)

	// translated token wins, untranslated token falls back to English
	assert.Equal(t, "Sprint", table.Get("citadel_ability_dash"))
	assert.Equal(t, "Only English", table.Get("citadel_only_english"))
}

func TestLoad_MergesGroups(t *testing.T) {
	dir := t.TempDir()
	writeTokens(t, dir, "main", domain.LanguageEnglish, map[string]string{"token_a": "A"})
	writeTokens(t, dir, "heroes", domain.LanguageEnglish, map[string]string{"token_b": "B"})

	table, err := Load(dir, domain.LanguageEnglish, nil)
	require.NoError(t, err)

	assert.Equal(t, "A", table.Get("token_a"))
	assert.Equal(t, "B", table.Get("token_b"))
	assert.Equal(t, 2, table.Len())
}

func TestLoad_NoFiles(t *testing.T) {
	_, err := Load(t.TempDir(), domain.LanguageEnglish, nil)
	assert.ErrorIs(t, err, ErrNoTokens)
}

func TestLoad_MissingLanguageFallsBackToEnglish(t *testing.T) {
	dir := t.TempDir()
	writeTokens(t, dir, "main", domain.LanguageEnglish, map[string]string{"token_a": "A"})

	table, err := Load(dir, domain.LanguageKoreana, nil)
	require.NoError(t, err)
	assert.Equal(t, "A", table.Get("token_a"))
}

func TestTable_Get(t *testing.T) {
	table := NewTable(domain.LanguageEnglish, map[string]string{
		"citadel_ability_dash": "Dash",
	})

	tests := []struct {
		name     string
		token    string
		expected string
	}{
		{name: "known token", token: "citadel_ability_dash", expected: "Dash"},
		{name: "hash prefix stripped", token: "#citadel_ability_dash", expected: "Dash"},
		{name: "unknown token returned verbatim", token: "citadel_missing", expected: "citadel_missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, table.Get(tt.token))
		})
	}
}
