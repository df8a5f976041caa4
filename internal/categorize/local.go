package categorize

import (
	"regexp"
	"strings"
)

var (
	nonWord    = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
	whitespace = regexp.MustCompile(`\s+`)
)

// LocalClassifier scores descriptions against the rule table. It does no I/O.
type LocalClassifier struct {
	rules *RuleSet
}

func NewLocalClassifier(rules *RuleSet) *LocalClassifier {
	return &LocalClassifier{rules: rules}
}

func Normalize(description string) string {
	text := strings.ToLower(strings.TrimSpace(description))
	text = nonWord.ReplaceAllString(text, " ")
	text = whitespace.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Classify returns the best scoring category, or false when nothing scored.
func (l *LocalClassifier) Classify(description string) (string, bool) {
	text := Normalize(description)
	if text == "" {
		return "", false
	}
	tokens := strings.Fields(text)

	best, bestScore := "", 0
	for _, rule := range l.rules.rules {
		score := scoreRule(rule, text, tokens)
		// strict comparison keeps the earliest declared category on ties
		if score > bestScore {
			best, bestScore = rule.Name, score
		}
	}

	return best, bestScore > 0
}

func scoreRule(rule CategoryRule, text string, tokens []string) int {
	score := 0
	for _, keyword := range rule.Keywords {
		if strings.Contains(text, keyword) {
			score += 2 * len(strings.Fields(keyword))
			continue
		}
		if prefix, ok := fuzzyPrefix(keyword); ok && anyHasPrefix(tokens, prefix) {
			score++
		}
	}
	for _, pattern := range rule.Patterns {
		if pattern.MatchString(text) {
			score += 3
		}
	}
	return score
}

func fuzzyPrefix(keyword string) (string, bool) {
	runes := []rune(keyword)
	if len(runes) <= 3 {
		return "", false
	}
	return string(runes[:4]), true
}

func anyHasPrefix(tokens []string, prefix string) bool {
	for _, t := range tokens {
		if strings.HasPrefix(t, prefix) {
			return true
		}
	}
	return false
}
