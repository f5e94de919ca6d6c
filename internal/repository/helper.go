package repository

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// likeEscape is the ESCAPE character used by KeywordPattern.
const likeEscape = "!"

var likeEscaper = strings.NewReplacer(
	likeEscape, likeEscape+likeEscape,
	"%", likeEscape+"%",
	"_", likeEscape+"_",
)

// NormalizeText trims s and converts it to NFC so that composed and
// decomposed Hangul compare equal.
func NormalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// SearchKey is the case-folded form of a title stored next to it and
// matched by KeywordPattern. Folding happens here rather than in SQL because
// sqlite's LOWER only folds ASCII.
func SearchKey(s string) string {
	return cases.Fold().String(NormalizeText(s))
}

// KeywordPattern turns a search keyword into a LIKE pattern over SearchKey
// values, matching it as a literal substring. It returns "" for a blank keyword.
func KeywordPattern(keyword string) string {
	k := SearchKey(keyword)
	if k == "" {
		return ""
	}
	return "%" + likeEscaper.Replace(k) + "%"
}
