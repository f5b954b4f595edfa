package model

import "strings"

// ElementQuery is a predicate over accessibility nodes. All provided
// predicates are ANDed; string predicates are case-insensitive substrings
// except Role and Title, which match exactly.
type ElementQuery struct {
	Role           string `json:"role,omitempty"`
	Title          string `json:"title,omitempty"`
	TitleContains  string `json:"title_contains,omitempty"`
	LabelContains  string `json:"label_contains,omitempty"`
	ValueContains  string `json:"value_contains,omitempty"`
	MaxResults     int    `json:"max_results,omitempty"`
}

// IsEmpty reports whether the query has no predicates set at all — used by
// endpoints that require at least one (e.g. /accessibility/elements).
func (q ElementQuery) IsEmpty() bool {
	return q.Role == "" && q.Title == "" && q.TitleContains == "" &&
		q.LabelContains == "" && q.ValueContains == ""
}

// Matches reports whether the element satisfies every predicate present on
// the query. Predicate-less fields are skipped (an absent predicate always
// holds).
func (q ElementQuery) Matches(el UIElementInfo) bool {
	if q.Role != "" && el.Role != q.Role {
		return false
	}
	if q.Title != "" && el.Title != q.Title {
		return false
	}
	if q.TitleContains != "" && !containsFold(el.Title, q.TitleContains) {
		return false
	}
	if q.LabelContains != "" && !containsFold(el.Label, q.LabelContains) {
		return false
	}
	if q.ValueContains != "" && !containsFold(el.Value, q.ValueContains) {
		return false
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
