package categorize

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRules_Categories(t *testing.T) {
	rules, err := DefaultRules()
	require.NoError(t, err)

	categories := rules.Categories()
	assert.Equal(t, "Food", categories[0])
	assert.Equal(t, Other, categories[len(categories)-1])
	assert.Len(t, rules.Rules(), len(categories)-1)
}

func TestParseRules_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty", "categories: []"},
		{"bad pattern", "categories:\n  - name: A\n    patterns: ['(']"},
		{"reserved name", "categories:\n  - name: Other"},
		{"duplicate", "categories:\n  - name: A\n  - name: A"},
		{"unknown field", "categories:\n  - name: A\n    weight: 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRules([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadRules_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories:\n  - name: Pets\n    keywords: [vet]\n"), 0o600))

	rules, err := LoadRules(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Pets", Other}, rules.Categories())

	_, err = LoadRules(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
