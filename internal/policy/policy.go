// Package policy 集中所有"角色能不能做"的判断，调用方不要再散落 role == X
package policy

import "violethacks/internal/domain"

type Action string

const (
	ActionUploadListing     Action = "listing.upload"      // SUPPORTER 及以上
	ActionAutoVerifyUpload  Action = "listing.auto_verify" // MODERATOR / ADMIN 上传即发布
	ActionModerateListing   Action = "listing.moderate"    // 仅 ADMIN
	ActionDeleteAnyListing  Action = "listing.delete_any"  // 仅 ADMIN（own 删除走所有权判断）
	ActionBanAccount        Action = "account.ban"         // 仅 ADMIN
	ActionChangeRole        Action = "account.role"        // 仅 ADMIN
	ActionEditAdminData     Action = "account.admin_data"  // 仅 ADMIN（备注/徽章）
	ActionViewAllAccounts   Action = "account.list"        // 仅 ADMIN
	ActionEditOwnProfile    Action = "profile.edit"        // 登录即可
	ActionPostComment       Action = "comment.post"        // 登录且未封禁（封禁在服务层查）
)

// 角色是分类不是数值："高于 MEMBER" 是集合判断，ADMIN-only 永远不含 MODERATOR
var table = map[Action]map[domain.Role]bool{
	ActionUploadListing:    {domain.RoleSupporter: true, domain.RoleModerator: true, domain.RoleAdmin: true},
	ActionAutoVerifyUpload: {domain.RoleModerator: true, domain.RoleAdmin: true},
	ActionModerateListing:  {domain.RoleAdmin: true},
	ActionDeleteAnyListing: {domain.RoleAdmin: true},
	ActionBanAccount:       {domain.RoleAdmin: true},
	ActionChangeRole:       {domain.RoleAdmin: true},
	ActionEditAdminData:    {domain.RoleAdmin: true},
	ActionViewAllAccounts:  {domain.RoleAdmin: true},
	ActionEditOwnProfile:   anyRole(),
	ActionPostComment:      anyRole(),
}

func anyRole() map[domain.Role]bool {
	return map[domain.Role]bool{
		domain.RoleMember: true, domain.RoleSupporter: true,
		domain.RoleModerator: true, domain.RoleAdmin: true,
	}
}

// Can 纯决策函数：未知动作或未知角色一律拒绝
func Can(role domain.Role, action Action) bool {
	allowed, ok := table[action]
	if !ok {
		return false
	}
	return allowed[role]
}

// CanTouchListing 内容编辑/删除的所有权规则：本人或 ADMIN
func CanTouchListing(actor *domain.Account, ownerID string) bool {
	if actor == nil {
		return false
	}
	return actor.ID == ownerID || Can(actor.Role, ActionDeleteAnyListing)
}
