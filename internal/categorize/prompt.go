package categorize

import (
	"strconv"
	"strings"
)

const (
	maxPromptWords = 5

	SystemInstruction = "You are an expense categorizer. Reply only with index:category pairs, one per line."
)

var stopwords = map[string]bool{
	"payment": true, "for": true, "the": true, "at": true, "to": true, "from": true,
	"and": true, "or": true, "in": true, "on": true, "a": true, "an": true,
}

// Shorten keeps the first few meaningful words of a description to bound prompt size.
func Shorten(description string) string {
	var kept []string
	for _, word := range strings.Fields(strings.ToLower(description)) {
		if stopwords[word] || len([]rune(word)) <= 1 {
			continue
		}
		kept = append(kept, word)
		if len(kept) == maxPromptWords {
			break
		}
	}
	if len(kept) == 0 {
		return strings.TrimSpace(description)
	}
	return strings.Join(kept, " ")
}

// BuildPrompt renders one sub-batch as a numbered list with the legal category set.
func BuildPrompt(categories []string, descriptions []string) string {
	var b strings.Builder
	b.WriteString("Categories: ")
	b.WriteString(strings.Join(categories, ", "))
	b.WriteString("\n\n")
	for i, d := range descriptions {
		b.WriteString(strconv.Itoa(i))
		b.WriteString(": ")
		b.WriteString(Shorten(d))
		b.WriteString("\n")
	}
	b.WriteString("\nReply ONLY with index:category, one per line.")
	return b.String()
}
