package service

import (
	"strings"

	"violethacks/internal/domain"
	"violethacks/internal/policy"
	"violethacks/internal/repo"
)

type AccountService struct {
	accounts *repo.AccountRepo
}

func NewAccountService(accounts *repo.AccountRepo) *AccountService {
	return &AccountService{accounts: accounts}
}

// List 账号目录（管理端），按加入顺序
func (s *AccountService) List(actor *domain.Account, q string, offset, limit int) ([]domain.Account, int64, error) {
	if !policy.Can(actor.Role, policy.ActionViewAllAccounts) {
		return nil, 0, domain.ErrInsufficientPrivilege
	}
	return s.accounts.List(strings.TrimSpace(q), offset, limit)
}

// SetBanned 封禁只挡登录，账号记录保留；id 不存在返回 nil
func (s *AccountService) SetBanned(actor *domain.Account, id string, banned bool) (*domain.Account, error) {
	if !policy.Can(actor.Role, policy.ActionBanAccount) {
		return nil, domain.ErrInsufficientPrivilege
	}
	a, err := s.accounts.FindByID(id)
	if err != nil || a == nil {
		return nil, err
	}
	a.Banned = banned
	if err := s.accounts.Update(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AccountService) SetRole(actor *domain.Account, id string, role domain.Role) (*domain.Account, error) {
	if !policy.Can(actor.Role, policy.ActionChangeRole) {
		return nil, domain.ErrInsufficientPrivilege
	}
	a, err := s.accounts.FindByID(id)
	if err != nil || a == nil {
		return nil, err
	}
	a.Role = role // isAdmin 由 Role 派生，没有第二份状态要同步
	if err := s.accounts.Update(a); err != nil {
		return nil, err
	}
	return a, nil
}

// SetAdminData 管理员备注与徽章
func (s *AccountService) SetAdminData(actor *domain.Account, id, notes string, badges []string) (*domain.Account, error) {
	if !policy.Can(actor.Role, policy.ActionEditAdminData) {
		return nil, domain.ErrInsufficientPrivilege
	}
	a, err := s.accounts.FindByID(id)
	if err != nil || a == nil {
		return nil, err
	}
	a.AdminNotes = notes
	if badges == nil {
		badges = []string{}
	}
	a.Badges = badges
	if err := s.accounts.Update(a); err != nil {
		return nil, err
	}
	return a, nil
}

// UpdateProfile 本人改 bio/avatar；同样输入重复提交结果不变
func (s *AccountService) UpdateProfile(actor *domain.Account, bio, avatar string) (*domain.Account, error) {
	a, err := s.accounts.FindByID(actor.ID)
	if err != nil || a == nil {
		return nil, err
	}
	a.Bio = bio
	a.Avatar = avatar
	if err := s.accounts.Update(a); err != nil {
		return nil, err
	}
	return a, nil
}
