package categorize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultLocal(t *testing.T) *LocalClassifier {
	t.Helper()
	rules, err := DefaultRules()
	require.NoError(t, err)
	return NewLocalClassifier(rules)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "room rent june", Normalize("  Room rent - June "))
	assert.Equal(t, "netflix", Normalize("Netflix!!!"))
	assert.Equal(t, "", Normalize(" ... "))
}

func TestLocalClassifier_DefaultRules(t *testing.T) {
	local := defaultLocal(t)

	tests := []struct {
		description string
		want        string
	}{
		{"Swiggy order dinner", "Food"},
		{"zomato", "Food"},
		{"Uber ride to office", "Transport"},
		{"ice cream", "Cravings"},
		{"Electricity bill March", "Utilities"},
		{"DMart groceries", "Grocery"},
		{"Netflix!!!", "Entertainment"},
		{"Apollo pharmacy medicines", "Healthcare"},
		{"Room rent - June", "Rent"},
		{"Jio recharge", "Mobile Recharges"},
		{"HP gas cylinder booking", "Cylinder"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			got, ok := local.Classify(tt.description)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocalClassifier_NoMatch(t *testing.T) {
	local := defaultLocal(t)

	for _, d := range []string{"xyz unknown merchant 42", "random 123", ""} {
		got, ok := local.Classify(d)
		assert.False(t, ok, d)
		assert.Empty(t, got, d)
	}
}

func TestLocalClassifier_Scoring(t *testing.T) {
	rules, err := ParseRules([]byte(`
categories:
  - name: First
    keywords: [alpha]
  - name: Second
    keywords: [alpha]
  - name: Phrase
    keywords: [beta gamma]
  - name: Single
    keywords: [beta, gamma]
    patterns: ['^zzz$']
  - name: Fuzzy
    keywords: [deltaforce]
`))
	require.NoError(t, err)
	local := NewLocalClassifier(rules)

	got, ok := local.Classify("alpha")
	require.True(t, ok)
	assert.Equal(t, "First", got, "ties go to the first declared category")

	// Phrase scores 4 for the two-word hit; Single scores 2+2 and loses the tie.
	got, _ = local.Classify("beta gamma")
	assert.Equal(t, "Phrase", got)

	got, _ = local.Classify("zzz")
	assert.Equal(t, "Single", got, "pattern match")

	got, ok = local.Classify("delt")
	assert.True(t, ok, "four character prefix gives fuzzy credit")
	assert.Equal(t, "Fuzzy", got)

	_, ok = local.Classify("del")
	assert.False(t, ok)
}

func TestLocalClassifier_MixedCaseRules(t *testing.T) {
	rules, err := ParseRules([]byte(`
categories:
  - name: Food
    keywords: ['Swiggy', 'pav  bhaji', 'Dosa-Plaza']
    patterns: ['Order.*Food']
  - name: Travel
    keywords: ['MakeMyTrip']
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"swiggy", "pav bhaji", "dosa plaza"}, rules.Rules()[0].Keywords)

	local := NewLocalClassifier(rules)
	for _, description := range []string{"Swiggy", "pav bhaji", "Order food", "DOSA PLAZA lunch"} {
		got, ok := local.Classify(description)
		assert.True(t, ok, description)
		assert.Equal(t, "Food", got, description)
	}

	got, ok := local.Classify("makemy")
	assert.True(t, ok, "fuzzy prefix works on lower-cased keywords")
	assert.Equal(t, "Travel", got)
}
