package auth

import "strings"

// Authority is one granted role, as exposed to the authorisation layer
// (e.g. "ROLE_USER").
type Authority string

// RolePrefix is the scheme marker prepended to each stored role token
// when it is exposed as an Authority.
const RolePrefix = "ROLE_"

// DefaultAuthority is the authority string assigned to new signups.
const DefaultAuthority = "USER"

// ResolveAuthorities maps a stored comma-separated authority string into
// the set of granted authorities.
//
// Tokens are split on commas, trimmed of surrounding whitespace, and
// prefixed with RolePrefix. Empty tokens are dropped, so an empty input,
// trailing commas, and doubled commas all degrade to a smaller (possibly
// empty) set rather than an error. The result is never nil.
func ResolveAuthorities(authority string) []Authority {
	parts := strings.Split(authority, ",")
	resolved := make([]Authority, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		resolved = append(resolved, Authority(RolePrefix+part))
	}
	return resolved
}

// HasAuthority returns true if the granted set contains the authority.
func HasAuthority(granted []Authority, want Authority) bool {
	for _, a := range granted {
		if a == want {
			return true
		}
	}
	return false
}
