package editor

import (
	"strings"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/content"
)

// Matches reports whether any value contains term, ignoring case.
// An empty term matches everything.
func Matches(term string, values ...string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), term) {
			return true
		}
	}
	return false
}

// Filter returns the items whose fields contain term. items is not modified.
func Filter[T any](items []T, term string, fields func(T) []string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if Matches(term, fields(item)...) {
			out = append(out, item)
		}
	}
	return out
}

// ContactFields are the contact inbox search fields
func ContactFields(c content.Contact) []string {
	return []string{c.Name, c.Email, c.Subject, c.Message}
}

// BlogFields are the blog list search fields
func BlogFields(p content.BlogPost) []string {
	return []string{p.Title, p.Excerpt, p.Author}
}
