package scopes

import (
	"slices"
	"sort"
	"strings"
)

const (
	// Separator splits multiple scopes inside one string.
	Separator = " "

	// Wildcard matches every scope.
	Wildcard = "*"

	// Delimiter splits a scope into resource and action ("order.create").
	Delimiter = "."
)

// Join builds a permission scope from a resource and an action.
//
//	scopes.Join("order", "create") // "order.create"
func Join(resource, action string) string {
	return resource + Delimiter + action
}

// Parse converts a space-separated scope string into a slice, trimming
// whitespace and dropping empty entries. Returns nil for empty input.
func Parse(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	parts := strings.Split(s, Separator)
	out := make([]string, 0, len(parts))
	for i := range parts {
		if parts[i] = strings.TrimSpace(parts[i]); parts[i] != "" {
			out = append(out, parts[i])
		}
	}
	return out
}

// String converts a scope slice back to its space-separated form.
func String(scopes []string) string {
	return strings.Join(scopes, Separator)
}

// Matches reports whether a scope satisfies a pattern.
//
// Matching rules:
//   - exact: "order.create" matches "order.create"
//   - global wildcard: "*" matches everything
//   - namespace wildcard: "finance.*" matches "finance.read" but not "finance"
func Matches(scope, pattern string) bool {
	if scope == pattern || pattern == Wildcard {
		return true
	}

	if strings.HasSuffix(pattern, Wildcard) {
		prefix := strings.TrimSuffix(pattern, Wildcard)
		prefix = strings.TrimSuffix(prefix, Delimiter)
		return strings.HasPrefix(scope, prefix+Delimiter)
	}

	return false
}

// Has reports whether any granted scope matches the wanted scope.
func Has(granted []string, scope string) bool {
	for _, g := range granted {
		if Matches(scope, g) {
			return true
		}
	}
	return false
}

// HasAll reports whether the granted scopes cover every required scope.
// An empty required list is trivially satisfied; a global wildcard grant
// covers everything.
func HasAll(granted, required []string) bool {
	if len(required) == 0 {
		return true
	}
	if len(granted) == 0 {
		return false
	}
	if slices.Contains(granted, Wildcard) {
		return true
	}

	for _, req := range required {
		if !Has(granted, req) {
			return false
		}
	}
	return true
}

// HasAny reports whether the granted scopes cover at least one required
// scope.
func HasAny(granted, required []string) bool {
	if len(required) == 0 {
		return true
	}
	if len(granted) == 0 {
		return false
	}
	if slices.Contains(granted, Wildcard) {
		return true
	}

	for _, req := range required {
		if Has(granted, req) {
			return true
		}
	}
	return false
}

// Normalize deduplicates and sorts a scope slice for stable storage and
// comparison. Returns nil for empty input.
func Normalize(scopes []string) []string {
	if len(scopes) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(scopes))
	out := make([]string, 0, len(scopes))
	for _, s := range scopes {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
