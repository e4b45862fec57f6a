package model

import "sort"

// Role 成员角色，取值固定
type Role = string

const (
	RolePresident     Role = "President"
	RoleVicePresident Role = "Vice-President"
	RoleTechLead      Role = "Tech-Lead"
	RoleMediaLead     Role = "Media-Lead"
	RoleMember        Role = "Member"
)

// Action 受控的写操作
type Action string

const (
	ActionProjectCreate    Action = "project.create"
	ActionProjectUpdate    Action = "project.update"
	ActionProjectDelete    Action = "project.delete"
	ActionEventManage      Action = "event.manage"
	ActionFinanceCreate    Action = "finance.create"
	ActionFinanceReview    Action = "finance.review"
	ActionBountyManage     Action = "bounty.manage"
	ActionBountyClaim      Action = "bounty.claim"
	ActionRepositoryCreate Action = "repository.create"
	ActionRepositoryDelete Action = "repository.delete"
	ActionResourceCreate   Action = "resource.create"
	ActionResourceDelete   Action = "resource.delete"
)

var everyone = []Action{
	ActionProjectCreate, ActionFinanceCreate, ActionBountyClaim,
	ActionRepositoryCreate, ActionResourceCreate,
}

// RoleCapabilities 角色 -> 允许的操作，所有 Role-Gate 只查这一张表
var RoleCapabilities = map[Role][]Action{
	RolePresident: append([]Action{
		ActionProjectUpdate, ActionProjectDelete, ActionEventManage, ActionFinanceReview,
		ActionBountyManage, ActionRepositoryDelete, ActionResourceDelete,
	}, everyone...),
	RoleVicePresident: append([]Action{
		ActionProjectUpdate, ActionProjectDelete, ActionEventManage, ActionFinanceReview,
		ActionBountyManage, ActionRepositoryDelete, ActionResourceDelete,
	}, everyone...),
	RoleTechLead: append([]Action{
		ActionProjectUpdate, ActionProjectDelete, ActionEventManage,
		ActionBountyManage, ActionRepositoryDelete, ActionResourceDelete,
	}, everyone...),
	RoleMediaLead: append([]Action{
		ActionEventManage, ActionResourceDelete,
	}, everyone...),
	RoleMember: everyone,
}

// ValidRole 判断角色是否在固定集合内
func ValidRole(r string) bool {
	_, ok := RoleCapabilities[r]
	return ok
}

// RolesFor 由能力表推导某操作的角色白名单
func RolesFor(a Action) []string {
	var roles []string
	for role, actions := range RoleCapabilities {
		for _, x := range actions {
			if x == a {
				roles = append(roles, role)
				break
			}
		}
	}
	sort.Strings(roles)
	return roles
}

// Allowed 纯函数：role 属于白名单即放行，不考虑角色之间的层级
func Allowed(role string, allow []string) bool {
	for _, r := range allow {
		if r == role {
			return true
		}
	}
	return false
}

// Can 能力表判断
func Can(role string, a Action) bool {
	return Allowed(role, RolesFor(a))
}
