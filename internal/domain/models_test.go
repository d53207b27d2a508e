package domain_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docdigest/internal/domain"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", domain.Truncate("abc", 5))
	assert.Equal(t, "abc", domain.Truncate("abcde", 3))
	assert.Equal(t, "", domain.Truncate("", 10))

	// Counts runes, never splits a multi-byte character.
	accented := strings.Repeat("é", 10)
	assert.Equal(t, strings.Repeat("é", 4), domain.Truncate(accented, 4))
}

func TestSummaryRecord_SerializedAttributeNames(t *testing.T) {
	record := domain.SummaryRecord{
		FileName: "k1.txt",
		Bucket:   "b1",
		Text:     "hello world",
		Summary:  domain.PlaceholderSummary,
	}

	serialized, err := json.Marshal(record)
	require.NoError(t, err)

	var raw map[string]string
	require.NoError(t, json.Unmarshal(serialized, &raw))
	assert.Equal(t, "k1.txt", raw["NomFichier"])
	assert.Equal(t, "b1", raw["Bucket"])
	assert.Equal(t, "hello world", raw["Texte"])
	assert.Equal(t, "Résumé non généré.", raw["Résumé"])
}
