package domain

import "strings"

const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

// ParseRoles splits a stored role list on commas and whitespace. Empty
// tokens and duplicates are dropped, order is preserved.
func ParseRoles(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) == 0 {
		return nil
	}

	out := make([]string, 0, len(fields))
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}

// JoinRoles is the inverse of ParseRoles.
func JoinRoles(roles []string) string {
	return strings.Join(ParseRoles(strings.Join(roles, ",")), ",")
}

// HasAnyRole reports whether have contains at least one of want.
func HasAnyRole(have []string, want ...string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}
