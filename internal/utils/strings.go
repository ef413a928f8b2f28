package utils

import (
	"strings"

	"github.com/gosimple/unidecode"
)

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Fold lowercases s and strips diacritics ("Đà Lạt" -> "da lat").
func Fold(s string) string {
	return NormalizeSpace(strings.ToLower(unidecode.Unidecode(s)))
}

// ContainsFold reports whether needle occurs in haystack, ignoring case and diacritics.
// An empty needle matches everything.
func ContainsFold(haystack, needle string) bool {
	n := Fold(needle)
	if n == "" {
		return true
	}
	return strings.Contains(Fold(haystack), n)
}

// SplitSentences splits a '.'-delimited description into trimmed, non-empty items.
func SplitSentences(raw string) []string {
	out := []string{}
	for _, p := range strings.Split(raw, ".") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// SplitParagraphs splits content on line breaks into trimmed, non-empty paragraphs.
func SplitParagraphs(raw string) []string {
	out := []string{}
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	for _, p := range strings.Split(raw, "\n") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
