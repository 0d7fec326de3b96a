package entity

import (
	"slices"
	"strings"
)

// Role is an account capability carried in access tokens.
type Role string

const (
	// RoleMember is granted to every account.
	RoleMember Role = "member"
	// RoleModerator may reset shared collections to their defaults.
	RoleModerator Role = "moderator"
)

const roleSeparator = ","

func (r Role) String() string {
	return string(r)
}

func (r Role) known() bool {
	return r == RoleMember || r == RoleModerator
}

// Roles always contains RoleMember once normalized.
type Roles []Role

func (rs Roles) Has(role Role) bool {
	return slices.Contains(rs, role)
}

// Strings is the token claim form.
func (rs Roles) Strings() []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.String())
	}

	return out
}

// Encode is the column form, e.g. "member,moderator".
func (rs Roles) Encode() string {
	return strings.Join(rs.Normalize().Strings(), roleSeparator)
}

// Normalize drops unknown and repeated roles and puts RoleMember first.
func (rs Roles) Normalize() Roles {
	out := Roles{RoleMember}
	for _, r := range rs {
		r = Role(strings.TrimSpace(string(r)))
		if r.known() && !out.Has(r) {
			out = append(out, r)
		}
	}

	return out
}

// RolesFromStrings reads token claims.
func RolesFromStrings(ss []string) Roles {
	rs := make(Roles, 0, len(ss))
	for _, s := range ss {
		rs = append(rs, Role(s))
	}

	return rs.Normalize()
}

// DecodeRoles reads the column form written by Encode.
func DecodeRoles(encoded string) Roles {
	return RolesFromStrings(strings.Split(encoded, roleSeparator))
}
