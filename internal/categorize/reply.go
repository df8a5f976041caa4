package categorize

import (
	"regexp"
	"strconv"
	"strings"
)

// ReplyFormatV1 is the "index:category" line format requested by BuildPrompt.
const ReplyFormatV1 = "index:category"

var replyPair = regexp.MustCompile(`(?i)(\d+)\s*[:\-]\s*([a-z &/]+)`)

// ParsedReply holds one category per prompt index.
type ParsedReply struct {
	Categories []string
	// Resolved is false where the category was defaulted to Other.
	Resolved  []bool
	Anomalies []string
}

// ParseReply maps a model reply onto count prompt indices. Every index gets a
// category from legal; anything missing, unknown or out of range becomes Other.
func ParseReply(reply string, count int, legal []string) ParsedReply {
	parsed := ParsedReply{
		Categories: make([]string, count),
		Resolved:   make([]bool, count),
	}
	for i := range parsed.Categories {
		parsed.Categories[i] = Other
	}

	for _, m := range replyPair.FindAllStringSubmatch(reply, -1) {
		idx, err := strconv.Atoi(m[1])
		if err != nil || idx < 0 || idx >= count {
			parsed.Anomalies = append(parsed.Anomalies, "index out of range: "+m[1])
			continue
		}
		if parsed.Resolved[idx] {
			continue
		}
		category, ok := matchCategory(m[2], legal)
		if !ok {
			parsed.Anomalies = append(parsed.Anomalies, "unknown category: "+strings.TrimSpace(m[2]))
			continue
		}
		parsed.Categories[idx] = category
		parsed.Resolved[idx] = true
	}

	for i, ok := range parsed.Resolved {
		if !ok {
			parsed.Anomalies = append(parsed.Anomalies, "missing index: "+strconv.Itoa(i))
		}
	}

	return parsed
}

func matchCategory(raw string, legal []string) (string, bool) {
	text := strings.ToLower(strings.TrimSpace(raw))
	if text == "" {
		return "", false
	}
	if text == "general" {
		return Other, true
	}
	for _, c := range legal {
		if strings.ToLower(c) == text {
			return c, true
		}
	}
	for _, c := range legal {
		lc := strings.ToLower(c)
		if strings.Contains(text, lc) || strings.Contains(lc, text) {
			return c, true
		}
	}
	return "", false
}
