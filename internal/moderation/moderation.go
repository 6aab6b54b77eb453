// Package moderation 列表审核生命周期：PENDING / VERIFIED / REJECTED
package moderation

import (
	"violethacks/internal/domain"
	"violethacks/internal/policy"
)

// InitialStatus 创建时的初始状态由创建者角色决定；
// MEMBER 连创建都不允许，直接返回 ErrInsufficientPrivilege
func InitialStatus(creator domain.Role) (domain.ModerationStatus, error) {
	if !policy.Can(creator, policy.ActionUploadListing) {
		return "", domain.ErrInsufficientPrivilege
	}
	if policy.Can(creator, policy.ActionAutoVerifyUpload) {
		return domain.ModerationVerified, nil
	}
	return domain.ModerationPending, nil
}

// CanTransition 三个状态两两可达，没有终态；自环是允许的空操作。
// 谁能触发（仅 ADMIN）由 policy.ActionModerateListing 把关，这里只管状态图
func CanTransition(from, to domain.ModerationStatus) bool {
	return from.Valid() && to.Valid()
}

// IsNoop 目标状态与当前一致时不产生任何写入
func IsNoop(from, to domain.ModerationStatus) bool { return from == to }
