package helpers

import (
	"strings"
)

const (
	excerptLength   = 150
	wordsPerMinute  = 200
	defaultReadTime = 1
)

// MakeExcerpt returns the first 150 characters of content followed by
// an ellipsis. Short content is returned unchanged.
func MakeExcerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= excerptLength {
		return content
	}
	return string(runes[:excerptLength]) + "..."
}

// EstimateReadTime returns the estimated reading time in minutes at
// 200 words per minute, always at least 1.
func EstimateReadTime(content string) int {
	words := len(strings.Fields(content))
	if words == 0 {
		return defaultReadTime
	}
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < defaultReadTime {
		return defaultReadTime
	}
	return minutes
}

// NormalizeTags lowercases and trims tags, dropping empties and
// duplicates while preserving order.
func NormalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		t := strings.ToLower(strings.TrimSpace(tag))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		normalized = append(normalized, t)
	}
	return normalized
}

// SplitTagsParam splits a comma-separated tags query parameter into a
// normalized slice.
func SplitTagsParam(param string) []string {
	if param == "" {
		return nil
	}
	return NormalizeTags(strings.Split(param, ","))
}
