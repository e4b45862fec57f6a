package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var allRoles = []string{RolePresident, RoleVicePresident, RoleTechLead, RoleMediaLead, RoleMember}

func TestAllowed(t *testing.T) {
	allow := []string{RolePresident, RoleVicePresident, RoleTechLead}

	assert.True(t, Allowed(RolePresident, allow))
	assert.True(t, Allowed(RoleTechLead, allow))
	assert.False(t, Allowed(RoleMember, allow))
	assert.False(t, Allowed(RoleMediaLead, allow))
	assert.False(t, Allowed("", allow))
	assert.False(t, Allowed(RolePresident, nil))
	// 大小写敏感，不做模糊匹配
	assert.False(t, Allowed("president", allow))
}

func TestAllowedIffMembership(t *testing.T) {
	lists := [][]string{
		{},
		{RoleMember},
		{RolePresident, RoleVicePresident, RoleTechLead},
		{RolePresident, RoleVicePresident, RoleTechLead, RoleMediaLead},
		allRoles,
	}
	for _, list := range lists {
		for _, role := range append(allRoles, "Guest", "") {
			in := false
			for _, r := range list {
				if r == role {
					in = true
				}
			}
			assert.Equal(t, in, Allowed(role, list), "role=%q list=%v", role, list)
		}
	}
}

func TestRolesFor(t *testing.T) {
	assert.Equal(t,
		[]string{RolePresident, RoleTechLead, RoleVicePresident},
		RolesFor(ActionProjectDelete))
	assert.Equal(t,
		[]string{RoleMediaLead, RolePresident, RoleTechLead, RoleVicePresident},
		RolesFor(ActionEventManage))
	assert.Equal(t,
		[]string{RolePresident, RoleVicePresident},
		RolesFor(ActionFinanceReview))
	assert.Len(t, RolesFor(ActionProjectCreate), len(allRoles))
	assert.Empty(t, RolesFor(Action("unknown")))
}

func TestCan(t *testing.T) {
	assert.True(t, Can(RolePresident, ActionProjectDelete))
	assert.False(t, Can(RoleMember, ActionProjectDelete))
	assert.True(t, Can(RoleMediaLead, ActionResourceDelete))
	assert.False(t, Can(RoleMediaLead, ActionRepositoryDelete))
	assert.False(t, Can("Guest", ActionProjectCreate))
}

func TestValidRole(t *testing.T) {
	for _, r := range allRoles {
		assert.True(t, ValidRole(r))
	}
	assert.False(t, ValidRole("Admin"))
}

func TestPublicHidesBankDetails(t *testing.T) {
	m := Member{ID: "1", BankDetails: BankDetails{AccountNumber: "123"}}
	p := m.Public()
	assert.Empty(t, p.BankDetails.AccountNumber)
	assert.Equal(t, "123", m.BankDetails.AccountNumber)
}
