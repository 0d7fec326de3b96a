package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoles_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   Roles
		want Roles
	}{
		{"empty gets member", nil, Roles{RoleMember}},
		{"moderator keeps member first", Roles{RoleModerator}, Roles{RoleMember, RoleModerator}},
		{"unknown and duplicates dropped", Roles{"admin", RoleModerator, RoleMember, RoleModerator}, Roles{RoleMember, RoleModerator}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}

func TestRoles_EncodeDecode(t *testing.T) {
	assert.Equal(t, "member,moderator", Roles{RoleModerator}.Encode())
	assert.Equal(t, Roles{RoleMember, RoleModerator}, DecodeRoles("member, moderator"))
	assert.Equal(t, Roles{RoleMember}, DecodeRoles(""))
}

func TestRolesFromStrings(t *testing.T) {
	roles := RolesFromStrings([]string{"moderator", "merchant"})

	assert.True(t, roles.Has(RoleModerator))
	assert.True(t, roles.Has(RoleMember))
	assert.Equal(t, []string{"member", "moderator"}, roles.Strings())
}
